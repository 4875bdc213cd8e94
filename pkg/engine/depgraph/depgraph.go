// Package depgraph finds production repositories whose languages need a
// dependency submission workflow that is not installed yet.
package depgraph

import (
	"slices"

	"github.com/guardian/github-lens/pkg/domain/interfaces"
	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/engine/rules"
)

// Candidate is a repository missing the submission workflow for Language.
type Candidate struct {
	Repo     *model.AugmentedRepository
	Language string
}

type Shuffler = interfaces.Shuffler

// ReposWithoutSubmissionWorkflow lists, per dependency graph language, the
// unarchived production repositories using it without its workflow. A
// repository using both languages appears once per language.
func ReposWithoutSubmissionWorkflow(repos []*model.AugmentedRepository) []Candidate {
	var result []Candidate
	for _, lang := range rules.DependencyGraphLanguages {
		for _, repo := range repos {
			if repo.Archived || !repo.IsProduction() {
				continue
			}
			if !slices.Contains(repo.Languages, lang) {
				continue
			}
			if rules.HasSubmissionWorkflow(repo.WorkflowUsages, lang) {
				continue
			}
			result = append(result, Candidate{Repo: repo, Language: lang})
		}
	}
	return result
}

// Event is the message sent to the integrator for a candidate.
func (x Candidate) Event() *model.DependencyGraphEvent {
	return &model.DependencyGraphEvent{
		Name:     x.Repo.RepoName(),
		Language: x.Language,
		Admins:   slices.Clone(x.Repo.AdminTeamSlugs),
	}
}

// Select shuffles the candidates and returns the events of the first n.
func Select(candidates []Candidate, n int, shuffler Shuffler) []*model.DependencyGraphEvent {
	shuffled := slices.Clone(candidates)
	shuffler.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	events := make([]*model.DependencyGraphEvent, 0, min(len(shuffled), max(n, 0)))
	for _, c := range shuffled[:min(len(shuffled), max(n, 0))] {
		events = append(events, c.Event())
	}
	return events
}
