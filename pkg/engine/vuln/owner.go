package vuln

import (
	"github.com/guardian/github-lens/pkg/domain/model"
)

// AssignOwners returns one copy of each vulnerability per team administering
// its repository, with RepoOwner set to the team slug. Vulnerabilities of
// repositories without an admin team get model.RepoOwnerUnknown.
func AssignOwners(vulns []model.Vulnerability, ownership []*model.Ownership) []model.Vulnerability {
	owners := make(map[string][]string)
	for _, o := range ownership {
		if o.TeamSlug != "" {
			owners[o.FullName] = append(owners[o.FullName], o.TeamSlug)
		}
	}

	result := make([]model.Vulnerability, 0, len(vulns))
	for _, v := range vulns {
		slugs := owners[v.FullName]
		if len(slugs) == 0 {
			v.RepoOwner = model.RepoOwnerUnknown
			result = append(result, v)
			continue
		}
		for _, slug := range slugs {
			v.RepoOwner = slug
			result = append(result, v)
		}
	}
	return result
}
