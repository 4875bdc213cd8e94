package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/infra/bq"
)

type BigQuery struct {
	projectID types.GoogleProjectID
	datasetID types.BQDatasetID
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bq-project-id",
			Usage:       "BigQuery project ID (optional, export is skipped when empty)",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("REPOCOP_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bq-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Value:       "repocop",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("REPOCOP_BIGQUERY_DATASET_ID"),
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != "" && x.datasetID != ""
}

// NewClient returns nil without error when BigQuery is not configured.
func (x *BigQuery) NewClient(ctx context.Context) (*bq.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}
	return bq.New(ctx, x.projectID, x.datasetID)
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("projectID", x.projectID.String()),
		slog.String("datasetID", x.datasetID.String()),
	)
}
