// Package rules evaluates repositories against the organization's governance
// rules. Every rule is total: missing data makes a rule pass.
package rules

import (
	"slices"
	"time"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/types"
)

const defaultBranchName = "main"

// HasDefaultBranchNameMain checks that the default branch is called main.
func HasDefaultBranchNameMain(repo *model.AugmentedRepository) bool {
	return repo.DefaultBranch != nil && *repo.DefaultBranch == defaultBranchName
}

// HasBranchProtection checks the default branch of production and
// documentation repositories is protected. Other repositories are exempt, and
// a default branch without a branch record passes.
func HasBranchProtection(repo *model.AugmentedRepository, branches []*model.Branch) bool {
	exempt := !repo.HasAnyTopic(types.TopicProduction, types.TopicDocumentation)
	if exempt || repo.DefaultBranch == nil {
		return true
	}

	idx := slices.IndexFunc(branches, func(b *model.Branch) bool {
		return b.RepositoryID == repo.ID && b.Name == *repo.DefaultBranch
	})
	if idx < 0 {
		return true
	}

	protected := branches[idx].Protected
	return protected != nil && *protected
}

var adminExemptTopics = []types.Topic{
	types.TopicPrototype,
	types.TopicLearning,
	types.TopicHackday,
	types.TopicInteractive,
}

// HasAdminTeam checks that at least one team administers the repository.
func HasAdminTeam(repo *model.AugmentedRepository) bool {
	return repo.HasAnyTopic(adminExemptTopics...) || len(repo.AdminTeamSlugs) > 0
}

// HasStatusTopic checks that exactly one status topic is set.
func HasStatusTopic(repo *model.AugmentedRepository) bool {
	count := 0
	for _, t := range types.StatusTopics {
		if repo.HasTopic(t) {
			count++
		}
	}
	return count == 1
}

// MostRecentChange is the latest of the creation, update and push times, or
// nil if none is known.
func MostRecentChange(repo *model.AugmentedRepository) *time.Time {
	var latest *time.Time
	for _, t := range []*time.Time{repo.CreatedAt, repo.UpdatedAt, repo.PushedAt} {
		if t != nil && (latest == nil || t.After(*latest)) {
			latest = t
		}
	}
	return latest
}

// IsMaintained checks the repository changed within the last two years.
// Interactive repositories are exempt.
func IsMaintained(repo *model.AugmentedRepository, now time.Time) bool {
	if repo.HasTopic(types.TopicInteractive) {
		return true
	}

	latest := now
	if t := MostRecentChange(repo); t != nil {
		latest = *t
	}
	return latest.After(now.AddDate(-2, 0, 0))
}

func containsAll(set []string, values []string) bool {
	for _, v := range values {
		if !slices.Contains(set, v) {
			return false
		}
	}
	return true
}

// IsSupportedBySnyk checks the repository is imported into Snyk and Snyk
// understands all of its languages.
func IsSupportedBySnyk(repo *model.AugmentedRepository, reposOnSnyk []string) bool {
	return slices.Contains(reposOnSnyk, repo.FullName) && containsAll(SnykLanguages, repo.Languages)
}

// IsSupportedByDependabot checks every language is either read natively by
// Dependabot or has its dependency submission workflow in place.
func IsSupportedByDependabot(repo *model.AugmentedRepository) bool {
	for _, lang := range repo.Languages {
		if slices.Contains(DependabotLanguages, lang) {
			continue
		}
		if !HasSubmissionWorkflow(repo.WorkflowUsages, lang) {
			return false
		}
	}
	return true
}

// UnsupportedLanguages lists languages that neither Dependabot nor a
// submission workflow cover for the repository.
func UnsupportedLanguages(repo *model.AugmentedRepository) []string {
	var result []string
	for _, lang := range repo.Languages {
		if !slices.Contains(DependabotLanguages, lang) && !HasSubmissionWorkflow(repo.WorkflowUsages, lang) {
			result = append(result, lang)
		}
	}
	return result
}

// HasDependencyTracking checks that vulnerabilities of an unarchived
// production repository are tracked by Snyk or Dependabot.
func HasDependencyTracking(repo *model.AugmentedRepository, reposOnSnyk []string) bool {
	if repo.Archived || !repo.IsProduction() {
		return true
	}
	return IsSupportedBySnyk(repo, reposOnSnyk) || IsSupportedByDependabot(repo)
}

// Evaluate runs every rule against repo.
func Evaluate(repo *model.AugmentedRepository, branches []*model.Branch, reposOnSnyk []string, now time.Time) model.RuleVerdicts {
	return model.RuleVerdicts{
		FullName:              repo.FullName,
		DefaultBranchName:     HasDefaultBranchNameMain(repo),
		BranchProtection:      HasBranchProtection(repo, branches),
		TeamBasedAccess:       false,
		AdminAccess:           HasAdminTeam(repo),
		Archiving:             IsMaintained(repo, now),
		Topics:                HasStatusTopic(repo),
		VulnerabilityTracking: HasDependencyTracking(repo, reposOnSnyk),
		EvaluatedOn:           now,
	}
}
