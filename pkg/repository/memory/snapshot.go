package memory

import (
	"context"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/model/dependabot"
	"github.com/guardian/github-lens/pkg/domain/model/snyk"
)

func (r *Repository) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	repos := read(r, func(s *Snapshot) []*model.Repository { return s.Repositories })
	for _, repo := range repos {
		repo.Topics = cloneStrings(repo.Topics)
	}
	return repos, nil
}

func (r *Repository) ListBranches(ctx context.Context) ([]*model.Branch, error) {
	return read(r, func(s *Snapshot) []*model.Branch { return s.Branches }), nil
}

func (r *Repository) ListOwnership(ctx context.Context) ([]*model.Ownership, error) {
	return read(r, func(s *Snapshot) []*model.Ownership { return s.Ownership }), nil
}

func (r *Repository) ListTeams(ctx context.Context) ([]*model.Team, error) {
	return read(r, func(s *Snapshot) []*model.Team { return s.Teams }), nil
}

func (r *Repository) ListLanguages(ctx context.Context) ([]*model.RepositoryLanguages, error) {
	langs := read(r, func(s *Snapshot) []*model.RepositoryLanguages { return s.Languages })
	for _, l := range langs {
		l.Languages = cloneStrings(l.Languages)
	}
	return langs, nil
}

func (r *Repository) ListWorkflowUsages(ctx context.Context) ([]*model.WorkflowUsage, error) {
	usages := read(r, func(s *Snapshot) []*model.WorkflowUsage { return s.WorkflowUsages })
	for _, u := range usages {
		u.WorkflowUses = cloneStrings(u.WorkflowUses)
	}
	return usages, nil
}

func (r *Repository) ListDependabotAlerts(ctx context.Context) ([]*dependabot.RepoAlert, error) {
	return read(r, func(s *Snapshot) []*dependabot.RepoAlert { return s.DependabotAlerts }), nil
}

func (r *Repository) ListSnykIssues(ctx context.Context) ([]*snyk.Issue, error) {
	return read(r, func(s *Snapshot) []*snyk.Issue { return s.SnykIssues }), nil
}

func (r *Repository) ListSnykProjects(ctx context.Context) ([]*snyk.Project, error) {
	return read(r, func(s *Snapshot) []*snyk.Project { return s.SnykProjects }), nil
}
