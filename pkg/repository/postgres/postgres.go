// Package postgres reads the collected organization snapshot from the
// collector tables and stores run results next to them.
package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/m-mizutani/goerr/v2"

	"github.com/guardian/github-lens/pkg/domain/interfaces"
	"github.com/guardian/github-lens/pkg/domain/types"
)

type Repository struct {
	db *sql.DB
}

var (
	_ interfaces.SnapshotRepository = (*Repository)(nil)
	_ interfaces.ResultRepository   = (*Repository)(nil)
)

func New(ctx context.Context, dsn types.DatabaseURL) (*Repository, error) {
	db, err := sql.Open("postgres", string(dsn))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open postgres")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to connect postgres")
	}

	return NewWithDB(db), nil
}

// NewWithDB wraps an already opened connection pool.
func NewWithDB(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Migrate creates the result tables when they do not exist. The snapshot
// tables belong to the collector and are never created here.
func (r *Repository) Migrate(ctx context.Context) error {
	for _, stmt := range []string{createRuleVerdictsTable, createVulnerabilitiesTable} {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return goerr.Wrap(err, "failed to migrate result tables")
		}
	}
	return nil
}

const createRuleVerdictsTable = `CREATE TABLE IF NOT EXISTS repocop_github_repository_rules (
	full_name              TEXT PRIMARY KEY,
	default_branch_name    BOOLEAN NOT NULL,
	branch_protection      BOOLEAN NOT NULL,
	team_based_access      BOOLEAN NOT NULL,
	admin_access           BOOLEAN NOT NULL,
	archiving              BOOLEAN NOT NULL,
	topics                 BOOLEAN NOT NULL,
	vulnerability_tracking BOOLEAN NOT NULL,
	evaluated_on           TIMESTAMPTZ NOT NULL
)`

const createVulnerabilitiesTable = `CREATE TABLE IF NOT EXISTS repocop_vulnerabilities (
	id               BIGSERIAL PRIMARY KEY,
	source           TEXT NOT NULL,
	full_name        TEXT NOT NULL,
	repo_owner       TEXT NOT NULL,
	open             BOOLEAN NOT NULL,
	severity         TEXT NOT NULL,
	package          TEXT NOT NULL,
	urls             TEXT[] NOT NULL,
	ecosystem        TEXT NOT NULL,
	alert_issue_date TIMESTAMPTZ NOT NULL,
	is_patchable     BOOLEAN NOT NULL,
	cves             TEXT[] NOT NULL,
	within_sla       BOOLEAN NOT NULL
)`
