package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/guardian/github-lens/pkg/usecase"
	"github.com/guardian/github-lens/pkg/utils/logging"
)

// stepCommand wires one use case entry point to a sub command sharing the
// full flag set.
func stepCommand(name, usage string, step func(ctx context.Context, uc *usecase.UseCase) error) *cli.Command {
	var cfg appConfig

	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.With(ctx, logging.Default().With(slog.String("command", name)))

			uc, cleanup, err := cfg.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return step(ctx, uc)
		},
	}
}

func runCommand() *cli.Command {
	return stepCommand("run", "Evaluate repositories then send digests, protect branches and send dependency graph events",
		func(ctx context.Context, uc *usecase.UseCase) error {
			return uc.Run(ctx)
		})
}

func evaluateCommand() *cli.Command {
	return stepCommand("evaluate", "Evaluate repositories and store rule verdicts and vulnerabilities",
		func(ctx context.Context, uc *usecase.UseCase) error {
			results, err := uc.EvaluateRepositories(ctx)
			if err != nil {
				return err
			}
			logging.From(ctx).Info("evaluation finished", slog.Int("repositories", len(results)))
			return nil
		})
}

func digestCommand() *cli.Command {
	return stepCommand("digest", "Send vulnerability digests to owning teams",
		func(ctx context.Context, uc *usecase.UseCase) error {
			return uc.SendVulnerabilityDigests(ctx)
		})
}

func protectCommand() *cli.Command {
	return stepCommand("protect", "Apply branch protection to a batch of non compliant repositories",
		func(ctx context.Context, uc *usecase.UseCase) error {
			return uc.ProtectBranches(ctx)
		})
}

func depgraphCommand() *cli.Command {
	return stepCommand("depgraph", "Send dependency graph events for repositories without a submission workflow",
		func(ctx context.Context, uc *usecase.UseCase) error {
			return uc.SendDependencyGraphEvents(ctx)
		})
}
