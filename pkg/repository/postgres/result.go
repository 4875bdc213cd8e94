package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/m-mizutani/goerr/v2"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/utils/safe"
)

const (
	insertRuleVerdict = `INSERT INTO repocop_github_repository_rules
(full_name, default_branch_name, branch_protection, team_based_access, admin_access, archiving, topics, vulnerability_tracking, evaluated_on)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	selectRuleVerdicts = `SELECT full_name, default_branch_name, branch_protection, team_based_access, admin_access, archiving, topics, vulnerability_tracking, evaluated_on
FROM repocop_github_repository_rules`

	insertVulnerability = `INSERT INTO repocop_vulnerabilities
(source, full_name, repo_owner, open, severity, package, urls, ecosystem, alert_issue_date, is_patchable, cves, within_sla)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	selectVulnerabilities = `SELECT source, full_name, repo_owner, open, severity, package, urls, ecosystem, alert_issue_date, is_patchable, cves, within_sla
FROM repocop_vulnerabilities`
)

// replace deletes every row of table and inserts rows in one transaction.
func (r *Repository) replace(ctx context.Context, table, insert string, n int, args func(i int) []any) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction", goerr.V("table", table))
	}
	defer safe.Rollback(tx)

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return goerr.Wrap(err, "failed to delete previous rows", goerr.V("table", table))
	}

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return goerr.Wrap(err, "failed to prepare insert", goerr.V("table", table))
	}
	defer safe.Close(stmt)

	for i := range n {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return goerr.Wrap(err, "failed to insert row", goerr.V("table", table), goerr.V("index", i))
		}
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit transaction", goerr.V("table", table))
	}
	return nil
}

func (r *Repository) ReplaceRuleVerdicts(ctx context.Context, verdicts []*model.RuleVerdicts) error {
	return r.replace(ctx, "repocop_github_repository_rules", insertRuleVerdict, len(verdicts), func(i int) []any {
		v := verdicts[i]
		return []any{v.FullName, v.DefaultBranchName, v.BranchProtection, v.TeamBasedAccess,
			v.AdminAccess, v.Archiving, v.Topics, v.VulnerabilityTracking, v.EvaluatedOn}
	})
}

func (r *Repository) ListRuleVerdicts(ctx context.Context) ([]*model.RuleVerdicts, error) {
	return query(ctx, r.db, selectRuleVerdicts, func(rows *sql.Rows) (*model.RuleVerdicts, error) {
		var v model.RuleVerdicts
		if err := rows.Scan(&v.FullName, &v.DefaultBranchName, &v.BranchProtection, &v.TeamBasedAccess,
			&v.AdminAccess, &v.Archiving, &v.Topics, &v.VulnerabilityTracking, &v.EvaluatedOn); err != nil {
			return nil, err
		}
		return &v, nil
	})
}

func (r *Repository) ReplaceVulnerabilities(ctx context.Context, vulns []*model.Vulnerability) error {
	return r.replace(ctx, "repocop_vulnerabilities", insertVulnerability, len(vulns), func(i int) []any {
		v := vulns[i]
		return []any{string(v.Source), v.FullName, v.RepoOwner, v.Open, string(v.Severity), v.Package,
			pq.Array(nonNil(v.URLs)), v.Ecosystem, v.AlertIssueDate, v.IsPatchable, pq.Array(nonNil(v.CVEs)), v.WithinSLA}
	})
}

func (r *Repository) ListVulnerabilities(ctx context.Context) ([]*model.Vulnerability, error) {
	return query(ctx, r.db, selectVulnerabilities, func(rows *sql.Rows) (*model.Vulnerability, error) {
		var (
			v        model.Vulnerability
			source   string
			severity string
		)
		if err := rows.Scan(&source, &v.FullName, &v.RepoOwner, &v.Open, &severity, &v.Package,
			pq.Array(&v.URLs), &v.Ecosystem, &v.AlertIssueDate, &v.IsPatchable, pq.Array(&v.CVEs), &v.WithinSLA); err != nil {
			return nil, err
		}
		v.Source = types.VulnSource(source)
		v.Severity = types.Severity(severity)
		return &v, nil
	})
}

// nonNil keeps NOT NULL array columns satisfied.
func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
