package usecase_test

import (
	"context"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"

	"github.com/guardian/github-lens/pkg/domain/mock"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/usecase"
)

func TestCreateOrUpdateBigQueryTable(t *testing.T) {
	ctx := context.Background()
	record := &usecase.RuleVerdictRecordForTest{}
	inferred := gt.R1(bqs.Infer(record)).NoError(t)

	t.Run("creates a missing table", func(t *testing.T) {
		bq := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context, tableID types.BQTableID) (*bigquery.TableMetadata, error) {
				return nil, nil
			},
			CreateTableFunc: func(ctx context.Context, tableID types.BQTableID, md *bigquery.TableMetadata) error {
				return nil
			},
		}

		schema := gt.R1(usecase.CreateOrUpdateBigQueryTableForTest(ctx, bq, types.BQTableRuleVerdicts, record)).NoError(t)
		gt.True(t, bqs.Equal(schema, inferred))
		gt.A(t, bq.CreateTableCalls()).Length(1)
		gt.V(t, bq.CreateTableCalls()[0].TableID).Equal(types.BQTableRuleVerdicts)
	})

	t.Run("keeps an identical schema", func(t *testing.T) {
		bq := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context, tableID types.BQTableID) (*bigquery.TableMetadata, error) {
				return &bigquery.TableMetadata{Schema: inferred, ETag: "etag"}, nil
			},
		}

		_, err := usecase.CreateOrUpdateBigQueryTableForTest(ctx, bq, types.BQTableRuleVerdicts, record)
		gt.NoError(t, err)
		gt.V(t, len(bq.UpdateTableCalls())).Equal(0)
	})

	t.Run("merges a new column into the table", func(t *testing.T) {
		old := bigquery.Schema{
			{Name: "full_name", Type: bigquery.StringFieldType},
			{Name: "legacy", Type: bigquery.StringFieldType},
		}
		bq := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context, tableID types.BQTableID) (*bigquery.TableMetadata, error) {
				return &bigquery.TableMetadata{Schema: old, ETag: "etag-1"}, nil
			},
			UpdateTableFunc: func(ctx context.Context, tableID types.BQTableID, md bigquery.TableMetadataToUpdate, eTag string) error {
				return nil
			},
		}

		schema := gt.R1(usecase.CreateOrUpdateBigQueryTableForTest(ctx, bq, types.BQTableRuleVerdicts, record)).NoError(t)
		calls := bq.UpdateTableCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].ETag).Equal("etag-1")
		gt.V(t, len(schema)).Equal(len(inferred) + 1)
	})
}
