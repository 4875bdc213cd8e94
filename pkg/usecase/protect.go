package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/engine/protection"
	"github.com/guardian/github-lens/pkg/utils/logging"
	"github.com/guardian/github-lens/pkg/utils/metrics"
)

// ProtectBranches applies branch protection to a random batch of production
// or documentation repositories whose verdict shows none, then tells their
// owning teams. A failure on one repository does not stop the others.
func (x *UseCase) ProtectBranches(ctx context.Context) error {
	logger := logging.From(ctx)
	started := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues("protect").Observe(time.Since(started).Seconds())
	}()

	if x.clients.GitHub() == nil {
		logger.Warn("GitHub is not configured, skip branch protection")
		return nil
	}

	snapshot, err := x.snapshotRepository()
	if err != nil {
		return err
	}
	result, err := x.resultRepository()
	if err != nil {
		return err
	}

	verdicts, err := result.ListRuleVerdicts(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to load rule verdicts")
	}
	repos, err := list(ctx, "repositories", snapshot.ListRepositories)
	if err != nil {
		return err
	}
	ownership, err := list(ctx, "ownership", snapshot.ListOwnership)
	if err != nil {
		return err
	}
	teams, err := list(ctx, "teams", snapshot.ListTeams)
	if err != nil {
		return err
	}

	candidates := protection.Candidates(verdicts, repos)
	events := protection.SelectForRemediation(candidates, ownership, teams, x.cfg.RemediationBatchSize, x.shuffler)
	logger.Info("Selected repositories for branch protection",
		slog.Int("candidates", len(candidates)),
		slog.Int("selected", len(events)),
	)

	var failed []string
	for _, ev := range events {
		if err := x.protectBranch(ctx, ev); err != nil {
			metrics.BranchProtections.WithLabelValues(metrics.ResultFailure).Inc()
			logger.Warn("Failed to protect branch",
				slog.String("repo", ev.FullName),
				slog.Any("error", err),
			)
			failed = append(failed, ev.FullName)
		}
	}

	if len(failed) > 0 {
		return goerr.New("some repositories failed to get branch protection",
			goerr.V("success_count", len(events)-len(failed)),
			goerr.V("failure_count", len(failed)),
			goerr.V("failed_repos", failed),
		)
	}
	return nil
}

func (x *UseCase) protectBranch(ctx context.Context, ev *model.RemediationEvent) error {
	logger := logging.From(ctx)
	gh := x.clients.GitHub()
	owner, name, _ := strings.Cut(ev.FullName, "/")

	branch, err := gh.GetDefaultBranch(ctx, owner, name)
	if err != nil {
		return goerr.Wrap(err, "could not find default branch", goerr.V("repo", ev.FullName))
	}
	ev.Branch = branch

	current, err := gh.GetBranchProtection(ctx, owner, name, branch)
	if err != nil {
		return goerr.Wrap(err, "failed to get branch protection",
			goerr.V("repo", ev.FullName),
			goerr.V("branch", branch),
		)
	}

	if protection.Sufficient(current) {
		metrics.BranchProtections.WithLabelValues(metrics.ResultSkipped).Inc()
		logger.Info("No action required. Branch is already protected.",
			slog.String("repo", ev.FullName),
			slog.String("branch", branch),
		)
		return nil
	}

	ev.Protection = protection.Merge(current)
	logger.Info("Applying branch protection",
		slog.String("repo", ev.FullName),
		slog.String("branch", branch),
		slog.Any("protection", ev.Protection),
	)
	if err := gh.UpdateBranchProtection(ctx, owner, name, branch, ev.Protection); err != nil {
		return goerr.Wrap(err, "failed to update branch protection",
			goerr.V("repo", ev.FullName),
			goerr.V("branch", branch),
		)
	}
	metrics.BranchProtections.WithLabelValues(metrics.ResultSuccess).Inc()

	x.notifyOwners(ctx, ev)
	return nil
}

// notifyOwners tells each team about the change. Notification failures are
// logged only, since the protection is already in place.
func (x *UseCase) notifyOwners(ctx context.Context, ev *model.RemediationEvent) {
	logger := logging.From(ctx)
	if x.clients.Notifier() == nil {
		logger.Warn("Notifier is not configured, skip notifying teams", slog.String("repo", ev.FullName))
		return
	}

	for _, slug := range ev.TeamSlugs {
		err := x.clients.Notifier().Notify(ctx, protection.Notice(ev, slug, x.cfg))
		metrics.Notifications.WithLabelValues("branch_protection", metrics.ResultOf(err)).Inc()
		if err != nil {
			logger.Warn("Failed to notify team",
				slog.String("repo", ev.FullName),
				slog.String("team", slug),
				slog.Any("error", err),
			)
		}
	}
	logger.Info("Notified teams",
		slog.String("repo", ev.FullName),
		slog.Any("teams", ev.TeamSlugs),
	)
}
