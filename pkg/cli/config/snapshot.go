package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/guardian/github-lens/pkg/repository/memory"
)

// Snapshot reads the collected tables from a JSON file instead of Postgres.
type Snapshot struct {
	path string
}

func (x *Snapshot) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "snapshot-file",
			Usage:       "JSON snapshot of the collected tables, used instead of the database",
			Category:    "Database",
			Destination: &x.path,
			Sources:     cli.EnvVars("REPOCOP_SNAPSHOT_FILE"),
		},
	}
}

func (x *Snapshot) Enabled() bool {
	return x.path != ""
}

func (x *Snapshot) NewRepository() (*memory.Repository, error) {
	return memory.LoadSnapshot(x.path)
}

func (x *Snapshot) LogValue() slog.Value {
	return slog.GroupValue(slog.String("path", x.path))
}
