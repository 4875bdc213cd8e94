package rules

import "github.com/guardian/github-lens/pkg/domain/model"

// Augment joins repositories with their admin teams, languages and workflow
// usages by full name. Repositories missing from a table get an empty list.
func Augment(
	repos []*model.Repository,
	ownership []*model.Ownership,
	languages []*model.RepositoryLanguages,
	workflows []*model.WorkflowUsage,
) []*model.AugmentedRepository {
	admins := make(map[string][]string)
	for _, o := range ownership {
		if o.TeamSlug == "" {
			continue
		}
		admins[o.FullName] = append(admins[o.FullName], o.TeamSlug)
	}

	langs := make(map[string][]string)
	for _, l := range languages {
		langs[l.FullName] = append(langs[l.FullName], l.Languages...)
	}

	uses := make(map[string][]string)
	for _, w := range workflows {
		uses[w.FullName] = append(uses[w.FullName], w.WorkflowUses...)
	}

	result := make([]*model.AugmentedRepository, 0, len(repos))
	for _, repo := range repos {
		result = append(result, &model.AugmentedRepository{
			Repository:     *repo,
			AdminTeamSlugs: orEmpty(admins[repo.FullName]),
			Languages:      orEmpty(langs[repo.FullName]),
			WorkflowUsages: orEmpty(uses[repo.FullName]),
		})
	}

	return result
}

func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
