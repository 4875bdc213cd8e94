package interfaces

import (
	"context"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/model/dependabot"
	"github.com/guardian/github-lens/pkg/domain/model/snyk"
)

// SnapshotRepository reads the collected state of the organization.
type SnapshotRepository interface {
	// ListRepositories returns unarchived and archived repositories alike.
	ListRepositories(ctx context.Context) ([]*model.Repository, error)
	ListBranches(ctx context.Context) ([]*model.Branch, error)
	// ListOwnership returns admin ownership rows only.
	ListOwnership(ctx context.Context) ([]*model.Ownership, error)
	ListTeams(ctx context.Context) ([]*model.Team, error)
	ListLanguages(ctx context.Context) ([]*model.RepositoryLanguages, error)
	ListWorkflowUsages(ctx context.Context) ([]*model.WorkflowUsage, error)
	ListDependabotAlerts(ctx context.Context) ([]*dependabot.RepoAlert, error)
	ListSnykIssues(ctx context.Context) ([]*snyk.Issue, error)
	ListSnykProjects(ctx context.Context) ([]*snyk.Project, error)
}

// ResultRepository stores the output of the latest run. Every Replace call
// supersedes the previous contents wholesale.
type ResultRepository interface {
	ReplaceRuleVerdicts(ctx context.Context, verdicts []*model.RuleVerdicts) error
	ListRuleVerdicts(ctx context.Context) ([]*model.RuleVerdicts, error)
	ReplaceVulnerabilities(ctx context.Context, vulns []*model.Vulnerability) error
	ListVulnerabilities(ctx context.Context) ([]*model.Vulnerability, error)
}
