package vuln

import (
	"slices"
	"time"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/model/snyk"
	"github.com/guardian/github-lens/pkg/domain/types"
)

var trackedBranches = []string{"main", "master"}

// ReposOnSnyk lists, without duplicates, the repositories whose main or
// master branch is imported into Snyk.
func ReposOnSnyk(projects []*snyk.Project) []string {
	var repos []string
	for _, p := range projects {
		tracked := slices.ContainsFunc(p.TagValues(snyk.TagBranch), func(branch string) bool {
			return slices.Contains(trackedBranches, branch)
		})
		if !tracked {
			continue
		}
		for _, repo := range p.TagValues(snyk.TagRepo) {
			if !slices.Contains(repos, repo) {
				repos = append(repos, repo)
			}
		}
	}
	return repos
}

// UrgentSnykAlerts normalizes the open critical and high Snyk issues of a
// production repository. Issues are matched through projects tagged with the
// repository's full name.
func UrgentSnykAlerts(repo *model.AugmentedRepository, issues []*snyk.Issue, projects []*snyk.Project, sla model.SLA, now time.Time) []model.Vulnerability {
	if !repo.IsProduction() {
		return nil
	}

	projectIDs := make(map[string]struct{})
	for _, p := range projects {
		if p.HasTagValue(repo.FullName) {
			projectIDs[p.ID] = struct{}{}
		}
	}

	var result []model.Vulnerability
	for _, issue := range issues {
		if _, ok := projectIDs[issue.ProjectID()]; !ok {
			continue
		}
		v := FromSnyk(repo.FullName, issue, projects, sla, now)
		if v.Open && (v.Severity == types.SeverityCritical || v.Severity == types.SeverityHigh) {
			result = append(result, v)
		}
	}
	return result
}
