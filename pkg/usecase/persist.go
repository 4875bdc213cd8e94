package usecase

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"

	"github.com/guardian/github-lens/pkg/domain/interfaces"
	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/engine/vuln"
	"github.com/guardian/github-lens/pkg/utils/errutil"
	"github.com/guardian/github-lens/pkg/utils/logging"
)

// persist replaces the stored results of the previous run. Vulnerabilities
// are stored once per owning team.
func (x *UseCase) persist(ctx context.Context, repo interfaces.ResultRepository, results []*model.EvaluationResult, ownership []*model.Ownership) error {
	verdicts := make([]*model.RuleVerdicts, 0, len(results))
	var found []model.Vulnerability
	for _, res := range results {
		v := res.Rules
		verdicts = append(verdicts, &v)
		found = append(found, res.Vulnerabilities...)
	}

	owned := vuln.AssignOwners(found, ownership)
	vulns := make([]*model.Vulnerability, len(owned))
	for i := range owned {
		vulns[i] = &owned[i]
	}

	if err := repo.ReplaceRuleVerdicts(ctx, verdicts); err != nil {
		return goerr.Wrap(err, "failed to save rule verdicts", goerr.V("count", len(verdicts)))
	}
	if err := repo.ReplaceVulnerabilities(ctx, vulns); err != nil {
		return goerr.Wrap(err, "failed to save vulnerabilities", goerr.V("count", len(vulns)))
	}

	if x.clients.BigQuery() == nil {
		logging.From(ctx).Debug("BigQuery is not configured, skip export")
		return nil
	}

	// The results are already stored, so an export failure is reported but
	// does not fail the run.
	runID, _ := logging.CtxRunID(ctx)
	if err := x.exportToBigQuery(ctx, runID, verdicts, vulns); err != nil {
		errutil.HandleError(ctx, "failed to export results to BigQuery", err)
	}
	return nil
}

type ruleVerdictRecord struct {
	RunID                 string    `bigquery:"run_id" json:"run_id"`
	FullName              string    `bigquery:"full_name" json:"full_name"`
	DefaultBranchName     bool      `bigquery:"default_branch_name" json:"default_branch_name"`
	BranchProtection      bool      `bigquery:"branch_protection" json:"branch_protection"`
	TeamBasedAccess       bool      `bigquery:"team_based_access" json:"team_based_access"`
	AdminAccess           bool      `bigquery:"admin_access" json:"admin_access"`
	Archiving             bool      `bigquery:"archiving" json:"archiving"`
	Topics                bool      `bigquery:"topics" json:"topics"`
	VulnerabilityTracking bool      `bigquery:"vulnerability_tracking" json:"vulnerability_tracking"`
	EvaluatedOn           time.Time `bigquery:"evaluated_on" json:"evaluated_on"`
}

// ruleVerdictRawRecord carries the timestamp the way the storage write API expects it.
type ruleVerdictRawRecord struct {
	ruleVerdictRecord
	EvaluatedOn int64 `bigquery:"evaluated_on" json:"evaluated_on"`
}

type vulnerabilityRecord struct {
	RunID          string    `bigquery:"run_id" json:"run_id"`
	Source         string    `bigquery:"source" json:"source"`
	FullName       string    `bigquery:"full_name" json:"full_name"`
	RepoOwner      string    `bigquery:"repo_owner" json:"repo_owner"`
	Open           bool      `bigquery:"open" json:"open"`
	Severity       string    `bigquery:"severity" json:"severity"`
	Package        string    `bigquery:"package" json:"package"`
	URLs           []string  `bigquery:"urls" json:"urls"`
	Ecosystem      string    `bigquery:"ecosystem" json:"ecosystem"`
	AlertIssueDate time.Time `bigquery:"alert_issue_date" json:"alert_issue_date"`
	IsPatchable    bool      `bigquery:"is_patchable" json:"is_patchable"`
	CVEs           []string  `bigquery:"cves" json:"cves"`
	WithinSLA      bool      `bigquery:"within_sla" json:"within_sla"`
}

type vulnerabilityRawRecord struct {
	vulnerabilityRecord
	AlertIssueDate int64 `bigquery:"alert_issue_date" json:"alert_issue_date"`
}

func (x *UseCase) exportToBigQuery(ctx context.Context, runID types.RunID, verdicts []*model.RuleVerdicts, vulns []*model.Vulnerability) error {
	bq := x.clients.BigQuery()

	schema, err := createOrUpdateBigQueryTable(ctx, bq, types.BQTableRuleVerdicts, &ruleVerdictRecord{})
	if err != nil {
		return err
	}
	rows := make([]any, 0, len(verdicts))
	for _, v := range verdicts {
		rec := ruleVerdictRecord{
			RunID:                 string(runID),
			FullName:              v.FullName,
			DefaultBranchName:     v.DefaultBranchName,
			BranchProtection:      v.BranchProtection,
			TeamBasedAccess:       v.TeamBasedAccess,
			AdminAccess:           v.AdminAccess,
			Archiving:             v.Archiving,
			Topics:                v.Topics,
			VulnerabilityTracking: v.VulnerabilityTracking,
			EvaluatedOn:           v.EvaluatedOn,
		}
		rows = append(rows, &ruleVerdictRawRecord{
			ruleVerdictRecord: rec,
			EvaluatedOn:       rec.EvaluatedOn.UnixMicro(),
		})
	}
	if err := bq.Insert(ctx, types.BQTableRuleVerdicts, schema, rows); err != nil {
		return goerr.Wrap(err, "failed to insert rule verdicts", goerr.V("count", len(rows)))
	}

	schema, err = createOrUpdateBigQueryTable(ctx, bq, types.BQTableVulnerabilities, &vulnerabilityRecord{})
	if err != nil {
		return err
	}
	rows = make([]any, 0, len(vulns))
	for _, v := range vulns {
		rec := vulnerabilityRecord{
			RunID:          string(runID),
			Source:         string(v.Source),
			FullName:       v.FullName,
			RepoOwner:      v.RepoOwner,
			Open:           v.Open,
			Severity:       string(v.Severity),
			Package:        v.Package,
			URLs:           v.URLs,
			Ecosystem:      v.Ecosystem,
			AlertIssueDate: v.AlertIssueDate,
			IsPatchable:    v.IsPatchable,
			CVEs:           v.CVEs,
			WithinSLA:      v.WithinSLA,
		}
		rows = append(rows, &vulnerabilityRawRecord{
			vulnerabilityRecord: rec,
			AlertIssueDate:      rec.AlertIssueDate.UnixMicro(),
		})
	}
	if err := bq.Insert(ctx, types.BQTableVulnerabilities, schema, rows); err != nil {
		return goerr.Wrap(err, "failed to insert vulnerabilities", goerr.V("count", len(rows)))
	}

	logging.From(ctx).Info("Exported results to BigQuery",
		slog.Int("verdicts", len(verdicts)),
		slog.Int("vulnerabilities", len(vulns)),
	)
	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, tableID types.BQTableID, record any) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer schema", goerr.V("table", tableID))
	}

	metaData, err := bq.GetMetadata(ctx, tableID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata", goerr.V("table", tableID))
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, tableID, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table", goerr.V("table", tableID))
		}
		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	merged, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema", goerr.V("table", tableID))
	}
	if err := bq.UpdateTable(ctx, tableID, bigquery.TableMetadataToUpdate{
		Schema: merged,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table", goerr.V("table", tableID))
	}

	return merged, nil
}
