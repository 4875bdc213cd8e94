package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/model/dependabot"
	"github.com/guardian/github-lens/pkg/engine"
	"github.com/guardian/github-lens/pkg/engine/rules"
	"github.com/guardian/github-lens/pkg/engine/vuln"
	"github.com/guardian/github-lens/pkg/utils/logging"
	"github.com/guardian/github-lens/pkg/utils/metrics"
)

// EvaluateRepositories evaluates every repository of the snapshot that is not
// ignored, then replaces the stored verdicts and vulnerabilities with the
// result. Nothing is persisted when evaluation fails.
func (x *UseCase) EvaluateRepositories(ctx context.Context) ([]*model.EvaluationResult, error) {
	logger := logging.From(ctx)
	started := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues("evaluate").Observe(time.Since(started).Seconds())
	}()

	snapshot, err := x.snapshotRepository()
	if err != nil {
		return nil, err
	}
	result, err := x.resultRepository()
	if err != nil {
		return nil, err
	}

	allRepos, err := list(ctx, "repositories", snapshot.ListRepositories)
	if err != nil {
		return nil, err
	}
	branches, err := list(ctx, "branches", snapshot.ListBranches)
	if err != nil {
		return nil, err
	}
	ownership, err := list(ctx, "ownership", snapshot.ListOwnership)
	if err != nil {
		return nil, err
	}
	languages, err := list(ctx, "languages", snapshot.ListLanguages)
	if err != nil {
		return nil, err
	}
	workflows, err := list(ctx, "workflow_usages", snapshot.ListWorkflowUsages)
	if err != nil {
		return nil, err
	}
	issues, err := list(ctx, "snyk_issues", snapshot.ListSnykIssues)
	if err != nil {
		return nil, err
	}
	projects, err := list(ctx, "snyk_projects", snapshot.ListSnykProjects)
	if err != nil {
		return nil, err
	}

	var repos []*model.Repository
	for _, repo := range allRepos {
		if x.cfg.IsIgnored(repo.FullName) {
			continue
		}
		repos = append(repos, repo)
	}
	logger.Info("Discovered repositories",
		slog.Int("total", len(allRepos)),
		slog.Int("ignored", len(allRepos)-len(repos)),
	)

	augmented := rules.Augment(repos, ownership, languages, workflows)

	alerts, err := x.collectDependabotAlerts(ctx, augmented)
	if err != nil {
		return nil, err
	}

	now := logging.CtxTime(ctx)
	input := engine.NewInput(branches, issues, projects)

	results := make([]*model.EvaluationResult, 0, len(augmented))
	for _, repo := range augmented {
		res := engine.EvaluateRepository(repo, alerts[repo.FullName], input, x.cfg, now)
		results = append(results, res)
		recordEvaluation(res)

		if old := vuln.OldAlerts(repo, res.Vulnerabilities, x.cfg.SLA, now); len(old) > 0 {
			metrics.OldAlerts.Add(float64(len(old)))
			logger.Info("Found vulnerabilities past their deadline",
				slog.String("repo", repo.FullName),
				slog.Int("count", len(old)),
			)
		}
	}

	if err := x.persist(ctx, result, results, ownership); err != nil {
		return nil, err
	}

	logger.Info("Evaluated repositories", slog.Int("count", len(results)))
	return results, nil
}

// collectDependabotAlerts returns the open runtime alerts of unarchived
// production repositories by full name. Alerts are fetched live when GitHub is
// configured and read from the snapshot otherwise.
func (x *UseCase) collectDependabotAlerts(ctx context.Context, repos []*model.AugmentedRepository) (map[string][]dependabot.Alert, error) {
	var targets []*model.AugmentedRepository
	for _, repo := range repos {
		if !repo.Archived && repo.IsProduction() {
			targets = append(targets, repo)
		}
	}

	if x.clients.GitHub() == nil {
		return x.snapshotDependabotAlerts(ctx, targets)
	}

	fetched := make([][]dependabot.Alert, len(targets))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(x.concurrency)

	for i, repo := range targets {
		eg.Go(func() error {
			alerts, err := x.clients.GitHub().ListDependabotAlerts(egCtx, repo.Owner(), repo.RepoName())
			if err != nil {
				if egCtx.Err() != nil {
					return egCtx.Err()
				}
				logging.From(ctx).Debug("Could not get alerts. Dependabot may not be enabled.",
					slog.String("repo", repo.FullName),
					slog.Any("error", err),
				)
				return nil
			}
			fetched[i] = alerts
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to collect dependabot alerts")
	}

	alerts := make(map[string][]dependabot.Alert, len(targets))
	for i, repo := range targets {
		alerts[repo.FullName] = fetched[i]
	}
	return alerts, nil
}

func (x *UseCase) snapshotDependabotAlerts(ctx context.Context, targets []*model.AugmentedRepository) (map[string][]dependabot.Alert, error) {
	stored, err := list(ctx, "dependabot_alerts", x.clients.Snapshot().ListDependabotAlerts)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(targets))
	for _, repo := range targets {
		wanted[repo.FullName] = struct{}{}
	}

	alerts := make(map[string][]dependabot.Alert)
	for _, a := range stored {
		if _, ok := wanted[a.FullName]; !ok {
			continue
		}
		if a.Alert.State != dependabot.StateOpen || a.Alert.Dependency.Scope == dependabot.ScopeDevelopment {
			continue
		}
		alerts[a.FullName] = append(alerts[a.FullName], a.Alert)
	}
	return alerts, nil
}

func recordEvaluation(res *model.EvaluationResult) {
	metrics.RepositoriesEvaluated.Inc()

	v := res.Rules
	for rule, ok := range map[string]bool{
		"default_branch_name":    v.DefaultBranchName,
		"branch_protection":      v.BranchProtection,
		"admin_access":           v.AdminAccess,
		"archiving":              v.Archiving,
		"topics":                 v.Topics,
		"vulnerability_tracking": v.VulnerabilityTracking,
	} {
		if !ok {
			metrics.RuleFailures.WithLabelValues(rule).Inc()
		}
	}

	for _, vu := range res.Vulnerabilities {
		metrics.Vulnerabilities.WithLabelValues(string(vu.Source), string(vu.Severity)).Inc()
	}
}
