package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/engine/depgraph"
	"github.com/guardian/github-lens/pkg/engine/rules"
	"github.com/guardian/github-lens/pkg/utils/logging"
	"github.com/guardian/github-lens/pkg/utils/metrics"
)

// SendDependencyGraphEvents asks the dependency graph integrator to add a
// submission workflow to a random batch of production repositories that
// lack one. Events are only published in PROD.
func (x *UseCase) SendDependencyGraphEvents(ctx context.Context) error {
	logger := logging.From(ctx)
	started := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues("depgraph").Observe(time.Since(started).Seconds())
	}()

	snapshot, err := x.snapshotRepository()
	if err != nil {
		return err
	}

	repos, err := list(ctx, "repositories", snapshot.ListRepositories)
	if err != nil {
		return err
	}
	ownership, err := list(ctx, "ownership", snapshot.ListOwnership)
	if err != nil {
		return err
	}
	languages, err := list(ctx, "languages", snapshot.ListLanguages)
	if err != nil {
		return err
	}
	workflows, err := list(ctx, "workflow_usages", snapshot.ListWorkflowUsages)
	if err != nil {
		return err
	}

	var kept []*model.Repository
	for _, repo := range repos {
		if !x.cfg.IsIgnored(repo.FullName) {
			kept = append(kept, repo)
		}
	}

	candidates := depgraph.ReposWithoutSubmissionWorkflow(rules.Augment(kept, ownership, languages, workflows))
	events := depgraph.Select(candidates, x.cfg.DependencyGraphBatchSize, x.shuffler)
	logger.Info("Selected repositories for dependency graph integration",
		slog.Int("candidates", len(candidates)),
		slog.Int("selected", len(events)),
	)

	if x.cfg.Stage != types.StageProd {
		for _, ev := range events {
			logger.Info("Would have sent event to Dependency Graph Integrator",
				slog.String("repo", ev.Name),
				slog.String("language", ev.Language),
			)
		}
		metrics.Notifications.WithLabelValues("dependency_graph", metrics.ResultSkipped).Add(float64(len(events)))
		return nil
	}
	if x.clients.Notifier() == nil {
		logger.Warn("Notifier is not configured, skip dependency graph events")
		return nil
	}

	var failed []string
	for _, ev := range events {
		err := x.clients.Notifier().PublishDependencyGraphEvent(ctx, ev)
		metrics.Notifications.WithLabelValues("dependency_graph", metrics.ResultOf(err)).Inc()
		if err != nil {
			logger.Warn("Failed to publish dependency graph event",
				slog.String("repo", ev.Name),
				slog.Any("error", err),
			)
			failed = append(failed, ev.Name)
			continue
		}
		logger.Info("Sent event to Dependency Graph Integrator",
			slog.String("repo", ev.Name),
			slog.String("language", ev.Language),
		)
	}

	if len(failed) > 0 {
		return goerr.New("some dependency graph events failed to publish",
			goerr.V("failure_count", len(failed)),
			goerr.V("failed_repos", failed),
		)
	}
	return nil
}
