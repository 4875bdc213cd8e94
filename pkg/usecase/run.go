package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/guardian/github-lens/pkg/utils/logging"
)

// Run performs a full cycle: evaluate and persist, send digests, protect
// branches and publish dependency graph events. Evaluation failure aborts the
// run. Later steps run even when an earlier one fails, and their errors are
// returned together.
func (x *UseCase) Run(ctx context.Context) error {
	runID, ctx := logging.CtxRunID(ctx)
	logger := logging.From(ctx).With(slog.String("run_id", string(runID)))
	ctx = logging.With(ctx, logger)

	logger.Info("Starting run", slog.Any("config", x.cfg))

	if _, err := x.EvaluateRepositories(ctx); err != nil {
		return goerr.Wrap(err, "failed to evaluate repositories")
	}

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"vulnerability digests", x.SendVulnerabilityDigests},
		{"branch protection", x.ProtectBranches},
		{"dependency graph events", x.SendDependencyGraphEvents},
	}

	var failed []string
	var errs []error
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			logger.Error("Run step failed", slog.String("step", step.name), slog.Any("error", err))
			failed = append(failed, step.name)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return goerr.Wrap(errors.Join(errs...), "some run steps failed", goerr.V("failed_steps", failed))
	}

	logger.Info("Done")
	return nil
}
