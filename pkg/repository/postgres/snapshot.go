package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"github.com/m-mizutani/goerr/v2"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/model/dependabot"
	"github.com/guardian/github-lens/pkg/domain/model/snyk"
	"github.com/guardian/github-lens/pkg/utils/safe"
)

const (
	queryRepositories = `SELECT id, full_name, name, archived, topics, default_branch, created_at, updated_at, pushed_at
FROM github_repositories
ORDER BY id`

	queryBranches = `SELECT repository_id, name, protected, protection
FROM github_repository_branches`

	queryOwnership = `SELECT github_team_id, github_team_name, github_team_slug, full_name, role_name
FROM view_repo_ownership
WHERE role_name = 'admin'`

	queryTeams = `SELECT id, name, slug FROM github_teams`

	queryLanguages = `SELECT full_name, languages FROM github_languages`

	queryWorkflowUsages = `SELECT full_name, workflow_uses FROM guardian_github_actions_usage`

	queryDependabotAlerts = `SELECT full_name, alert FROM repocop_dependabot_alerts`

	querySnykIssues = `SELECT id, attributes, relationships FROM snyk_issues`

	querySnykProjects = `SELECT id, attributes FROM snyk_projects`
)

// query runs q and decodes every row with scan.
func query[T any](ctx context.Context, db *sql.DB, q string, scan func(rows *sql.Rows) (*T, error)) ([]*T, error) {
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query snapshot", goerr.V("query", q))
	}
	defer safe.Close(rows)

	var results []*T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan snapshot row", goerr.V("query", q))
		}
		results = append(results, v)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate snapshot rows", goerr.V("query", q))
	}

	return results, nil
}

func (r *Repository) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	return query(ctx, r.db, queryRepositories, func(rows *sql.Rows) (*model.Repository, error) {
		var (
			repo          model.Repository
			defaultBranch sql.NullString
			createdAt     sql.NullTime
			updatedAt     sql.NullTime
			pushedAt      sql.NullTime
		)
		if err := rows.Scan(&repo.ID, &repo.FullName, &repo.Name, &repo.Archived,
			pq.Array(&repo.Topics), &defaultBranch, &createdAt, &updatedAt, &pushedAt); err != nil {
			return nil, err
		}

		if defaultBranch.Valid {
			repo.DefaultBranch = &defaultBranch.String
		}
		repo.CreatedAt = nullTime(createdAt)
		repo.UpdatedAt = nullTime(updatedAt)
		repo.PushedAt = nullTime(pushedAt)
		return &repo, nil
	})
}

func (r *Repository) ListBranches(ctx context.Context) ([]*model.Branch, error) {
	return query(ctx, r.db, queryBranches, func(rows *sql.Rows) (*model.Branch, error) {
		var (
			branch    model.Branch
			protected sql.NullBool
		)
		if err := rows.Scan(&branch.RepositoryID, &branch.Name, &protected, &branch.Protection); err != nil {
			return nil, err
		}
		if protected.Valid {
			branch.Protected = &protected.Bool
		}
		return &branch, nil
	})
}

func (r *Repository) ListOwnership(ctx context.Context) ([]*model.Ownership, error) {
	return query(ctx, r.db, queryOwnership, func(rows *sql.Rows) (*model.Ownership, error) {
		var o model.Ownership
		if err := rows.Scan(&o.TeamID, &o.TeamName, &o.TeamSlug, &o.FullName, &o.RoleName); err != nil {
			return nil, err
		}
		return &o, nil
	})
}

func (r *Repository) ListTeams(ctx context.Context) ([]*model.Team, error) {
	return query(ctx, r.db, queryTeams, func(rows *sql.Rows) (*model.Team, error) {
		var team model.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.Slug); err != nil {
			return nil, err
		}
		return &team, nil
	})
}

func (r *Repository) ListLanguages(ctx context.Context) ([]*model.RepositoryLanguages, error) {
	return query(ctx, r.db, queryLanguages, func(rows *sql.Rows) (*model.RepositoryLanguages, error) {
		var l model.RepositoryLanguages
		if err := rows.Scan(&l.FullName, pq.Array(&l.Languages)); err != nil {
			return nil, err
		}
		return &l, nil
	})
}

func (r *Repository) ListWorkflowUsages(ctx context.Context) ([]*model.WorkflowUsage, error) {
	return query(ctx, r.db, queryWorkflowUsages, func(rows *sql.Rows) (*model.WorkflowUsage, error) {
		var u model.WorkflowUsage
		if err := rows.Scan(&u.FullName, pq.Array(&u.WorkflowUses)); err != nil {
			return nil, err
		}
		return &u, nil
	})
}

func (r *Repository) ListDependabotAlerts(ctx context.Context) ([]*dependabot.RepoAlert, error) {
	return query(ctx, r.db, queryDependabotAlerts, func(rows *sql.Rows) (*dependabot.RepoAlert, error) {
		var (
			alert dependabot.RepoAlert
			raw   []byte
		)
		if err := rows.Scan(&alert.FullName, &raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &alert.Alert); err != nil {
			return nil, goerr.Wrap(err, "failed to decode dependabot alert", goerr.V("full_name", alert.FullName))
		}
		return &alert, nil
	})
}

func (r *Repository) ListSnykIssues(ctx context.Context) ([]*snyk.Issue, error) {
	return query(ctx, r.db, querySnykIssues, func(rows *sql.Rows) (*snyk.Issue, error) {
		var (
			issue         snyk.Issue
			attributes    []byte
			relationships []byte
		)
		if err := rows.Scan(&issue.ID, &attributes, &relationships); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(attributes, &issue.Attributes); err != nil {
			return nil, goerr.Wrap(err, "failed to decode snyk issue attributes", goerr.V("id", issue.ID))
		}
		if err := json.Unmarshal(relationships, &issue.Relationships); err != nil {
			return nil, goerr.Wrap(err, "failed to decode snyk issue relationships", goerr.V("id", issue.ID))
		}
		return &issue, nil
	})
}

func (r *Repository) ListSnykProjects(ctx context.Context) ([]*snyk.Project, error) {
	return query(ctx, r.db, querySnykProjects, func(rows *sql.Rows) (*snyk.Project, error) {
		var (
			project    snyk.Project
			attributes []byte
		)
		if err := rows.Scan(&project.ID, &attributes); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(attributes, &project.Attributes); err != nil {
			return nil, goerr.Wrap(err, "failed to decode snyk project attributes", goerr.V("id", project.ID))
		}
		return &project, nil
	})
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
