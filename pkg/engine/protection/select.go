// Package protection selects repositories for automated branch protection and
// computes the protection to apply.
package protection

import (
	"github.com/guardian/github-lens/pkg/domain/interfaces"
	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/types"
)

type Shuffler = interfaces.Shuffler

// Candidates keeps the verdicts of unarchived repositories with a production
// or documentation topic. Other repositories are never changed automatically.
func Candidates(verdicts []*model.RuleVerdicts, repos []*model.Repository) []*model.RuleVerdicts {
	relevant := make(map[string]struct{})
	for _, r := range repos {
		if !r.Archived && r.HasAnyTopic(types.TopicProduction, types.TopicDocumentation) {
			relevant[r.FullName] = struct{}{}
		}
	}

	var result []*model.RuleVerdicts
	for _, v := range verdicts {
		if _, ok := relevant[v.FullName]; ok {
			result = append(result, v)
		}
	}
	return result
}

// ContactableOwners resolves the slugs of the teams owning fullName. Owners
// whose team is unknown are skipped.
func ContactableOwners(fullName string, ownership []*model.Ownership, teams []*model.Team) []string {
	slugs := make(map[int64]string, len(teams))
	for _, t := range teams {
		if t.Slug != "" {
			slugs[t.ID] = t.Slug
		}
	}

	var result []string
	for _, o := range ownership {
		if o.FullName != fullName {
			continue
		}
		if slug, ok := slugs[o.TeamID]; ok {
			result = append(result, slug)
		}
	}
	return result
}

// SelectForRemediation picks at most maxCount repositories that failed the
// branch protection rule and have someone to notify. The pick is random.
func SelectForRemediation(verdicts []*model.RuleVerdicts, ownership []*model.Ownership, teams []*model.Team, maxCount int, shuffler Shuffler) []*model.RemediationEvent {
	var events []*model.RemediationEvent
	for _, v := range verdicts {
		if v.BranchProtection {
			continue
		}
		slugs := ContactableOwners(v.FullName, ownership, teams)
		if len(slugs) == 0 {
			continue
		}
		events = append(events, &model.RemediationEvent{
			FullName:  v.FullName,
			TeamSlugs: slugs,
		})
	}

	shuffler.Shuffle(len(events), func(i, j int) {
		events[i], events[j] = events[j], events[i]
	})

	return events[:min(len(events), max(maxCount, 0))]
}
