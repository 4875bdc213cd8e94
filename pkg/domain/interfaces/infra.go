package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHub Notifier

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/model/dependabot"
	"github.com/guardian/github-lens/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, tableID types.BQTableID, schema bigquery.Schema, rows []any) error

	GetMetadata(ctx context.Context, tableID types.BQTableID) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, tableID types.BQTableID, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, tableID types.BQTableID, md *bigquery.TableMetadata) error
}

type GitHub interface {
	// ListDependabotAlerts returns open critical and high alerts of runtime dependencies.
	ListDependabotAlerts(ctx context.Context, owner, repo string) ([]dependabot.Alert, error)
	GetDefaultBranch(ctx context.Context, owner, repo string) (string, error)
	// GetBranchProtection returns nil without error when the branch is not protected.
	GetBranchProtection(ctx context.Context, owner, repo, branch string) (*model.BranchProtection, error)
	UpdateBranchProtection(ctx context.Context, owner, repo, branch string, update *model.ProtectionUpdate) error
}

type Notifier interface {
	Notify(ctx context.Context, n *model.Notification) error
	PublishDependencyGraphEvent(ctx context.Context, ev *model.DependencyGraphEvent) error
}
