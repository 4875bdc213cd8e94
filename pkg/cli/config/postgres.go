package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/repository/postgres"
)

// Postgres is the database holding the collected tables. It also receives
// results unless Firestore is configured.
type Postgres struct {
	url     types.DatabaseURL `masq:"secret"`
	migrate bool
}

func (x *Postgres) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "database-url",
			Usage:       "PostgreSQL connection string of the collected tables",
			Category:    "Database",
			Destination: (*string)(&x.url),
			Sources:     cli.EnvVars("REPOCOP_DATABASE_URL", "DATABASE_URL"),
		},
		&cli.BoolFlag{
			Name:        "database-migrate",
			Usage:       "Create the result tables when missing",
			Category:    "Database",
			Value:       true,
			Destination: &x.migrate,
			Sources:     cli.EnvVars("REPOCOP_DATABASE_MIGRATE"),
		},
	}
}

func (x *Postgres) Enabled() bool {
	return x.url != ""
}

func (x *Postgres) NewRepository(ctx context.Context) (*postgres.Repository, error) {
	repo, err := postgres.New(ctx, x.url)
	if err != nil {
		return nil, err
	}
	if x.migrate {
		if err := repo.Migrate(ctx); err != nil {
			_ = repo.Close()
			return nil, err
		}
	}
	return repo, nil
}

func (x *Postgres) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("url.len", len(x.url)),
		slog.Bool("migrate", x.migrate),
	)
}
