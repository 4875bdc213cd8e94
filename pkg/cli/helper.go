package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/guardian/github-lens/pkg/cli/config"
	"github.com/guardian/github-lens/pkg/domain/interfaces"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/infra"
	"github.com/guardian/github-lens/pkg/usecase"
	"github.com/guardian/github-lens/pkg/utils/logging"
	"github.com/guardian/github-lens/pkg/utils/safe"
)

// appConfig gathers every flag group a use case needs.
type appConfig struct {
	githubApp    config.GitHubApp
	bigQuery     config.BigQuery
	postgres     config.Postgres
	firestore    config.Firestore
	snapshot     config.Snapshot
	notification config.Notification
	policy       config.Policy
	sentry       config.Sentry
}

func (x *appConfig) Flags() []cli.Flag {
	return slice.Flatten(
		x.policy.Flags(),
		x.githubApp.Flags(),
		x.postgres.Flags(),
		x.snapshot.Flags(),
		x.firestore.Flags(),
		x.bigQuery.Flags(),
		x.notification.Flags(),
		x.sentry.Flags(),
	)
}

func (x *appConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Policy", &x.policy),
		slog.Any("GitHubApp", x.githubApp),
		slog.Any("Postgres", &x.postgres),
		slog.Any("Snapshot", &x.snapshot),
		slog.Any("Firestore", &x.firestore),
		slog.Any("BigQuery", &x.bigQuery),
		slog.Any("Notification", &x.notification),
		slog.Any("Sentry", &x.sentry),
	)
}

// newUseCase connects every configured client. The returned function closes
// them and must be called even when a run fails.
func (x *appConfig) newUseCase(ctx context.Context) (*usecase.UseCase, func(), error) {
	var closers []io.Closer
	cleanup := func() {
		for _, c := range closers {
			safe.Close(c)
		}
	}

	uc, err := x.build(ctx, &closers)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return uc, cleanup, nil
}

func (x *appConfig) build(ctx context.Context, closers *[]io.Closer) (*usecase.UseCase, error) {
	logging.From(ctx).Info("configuration", slog.Any("config", x))

	if err := x.sentry.Configure(ctx); err != nil {
		return nil, err
	}

	cfg, err := x.policy.Config()
	if err != nil {
		return nil, err
	}

	var (
		options []infra.Option
		snap    interfaces.SnapshotRepository
		result  interfaces.ResultRepository
	)

	switch {
	case x.snapshot.Enabled():
		repo, err := x.snapshot.NewRepository()
		if err != nil {
			return nil, err
		}
		snap, result = repo, repo

	case x.postgres.Enabled():
		repo, err := x.postgres.NewRepository(ctx)
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, repo)
		snap, result = repo, repo

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "either --database-url or --snapshot-file is required")
	}

	if x.firestore.Enabled() {
		repo, err := x.firestore.NewRepository(ctx)
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, repo)
		result = repo
	}
	options = append(options, infra.WithSnapshot(snap), infra.WithResult(result))

	if x.githubApp.Enabled() {
		client, err := x.githubApp.New()
		if err != nil {
			return nil, err
		}
		options = append(options, infra.WithGitHub(client))
	} else {
		logging.From(ctx).Warn("GitHub App is not configured, alerts come from the snapshot and branch protection is skipped")
	}

	if bqClient, err := x.bigQuery.NewClient(ctx); err != nil {
		return nil, err
	} else if bqClient != nil {
		*closers = append(*closers, bqClient)
		options = append(options, infra.WithBigQuery(bqClient))
	}

	if x.notification.Enabled() {
		options = append(options, infra.WithNotifier(x.notification.New()))
	}

	return usecase.New(infra.New(options...), cfg), nil
}
