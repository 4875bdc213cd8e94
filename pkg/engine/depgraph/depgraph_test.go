package depgraph_test

import (
	"math/rand/v2"
	"testing"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/engine/depgraph"
	"github.com/m-mizutani/gt"
)

func newRepo(fullName string, topics, languages, workflows []string) *model.AugmentedRepository {
	return &model.AugmentedRepository{
		Repository:     model.Repository{FullName: fullName, Topics: topics},
		AdminTeamSlugs: []string{"team-one"},
		Languages:      languages,
		WorkflowUsages: workflows,
	}
}

func TestReposWithoutSubmissionWorkflow(t *testing.T) {
	prod := []string{"production"}
	repos := []*model.AugmentedRepository{
		newRepo("guardian/scala-missing", prod, []string{"Scala"}, nil),
		newRepo("guardian/scala-done", prod, []string{"Scala"}, []string{"scalacenter/sbt-dependency-submission@v2"}),
		newRepo("guardian/kotlin-missing", prod, []string{"Kotlin", "Java"}, []string{"actions/checkout@v4"}),
		newRepo("guardian/kotlin-done", prod, []string{"Kotlin"}, []string{"gradle/actions/dependency-submission@v3"}),
		newRepo("guardian/both", prod, []string{"Scala", "Kotlin"}, nil),
		newRepo("guardian/typescript", prod, []string{"TypeScript"}, nil),
		newRepo("guardian/scala-hackday", []string{"hackday"}, []string{"Scala"}, nil),
	}

	var got []string
	for _, c := range depgraph.ReposWithoutSubmissionWorkflow(repos) {
		got = append(got, c.Repo.FullName+":"+c.Language)
	}
	gt.V(t, got).Equal([]string{
		"guardian/scala-missing:Scala",
		"guardian/both:Scala",
		"guardian/kotlin-missing:Kotlin",
		"guardian/both:Kotlin",
	})
}

func TestSelect(t *testing.T) {
	prod := []string{"production"}
	var candidates []depgraph.Candidate
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		candidates = append(candidates, depgraph.Candidate{
			Repo:     newRepo("guardian/"+name, prod, []string{"Scala"}, nil),
			Language: "Scala",
		})
	}

	t.Run("event shape", func(t *testing.T) {
		events := depgraph.Select(candidates[:1], 5, rand.New(rand.NewPCG(1, 1)))
		gt.V(t, events).Equal([]*model.DependencyGraphEvent{
			{Name: "a", Language: "Scala", Admins: []string{"team-one"}},
		})
	})

	t.Run("bounded and seeded", func(t *testing.T) {
		first := depgraph.Select(candidates, 5, rand.New(rand.NewPCG(7, 7)))
		second := depgraph.Select(candidates, 5, rand.New(rand.NewPCG(7, 7)))
		gt.V(t, len(first)).Equal(5)
		gt.V(t, first).Equal(second)
		gt.V(t, candidates[0].Repo.FullName).Equal("guardian/a")
	})

	t.Run("no candidates", func(t *testing.T) {
		gt.V(t, len(depgraph.Select(nil, 5, rand.New(rand.NewPCG(1, 1))))).Equal(0)
	})
}
