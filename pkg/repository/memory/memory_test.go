package memory_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/repository/memory"
	"github.com/guardian/github-lens/pkg/repository/testhelper"
)

func TestMemoryResultRepository(t *testing.T) {
	testhelper.TestAll(t, memory.New())
}

const snapshotJSON = `{
	"repositories": [
		{"id": 1, "full_name": "guardian/frontend", "name": "frontend", "topics": ["production"], "default_branch": "main"}
	],
	"branches": [{"repository_id": 1, "name": "main", "protected": true}],
	"ownership": [{"github_team_id": 10, "github_team_slug": "devx", "full_name": "guardian/frontend", "role_name": "admin"}],
	"teams": [{"id": 10, "name": "DevX", "slug": "devx"}],
	"languages": [{"full_name": "guardian/frontend", "languages": ["Scala"]}],
	"workflow_usages": [{"full_name": "guardian/frontend", "workflow_uses": ["actions/checkout@v4"]}],
	"dependabot_alerts": [{"full_name": "guardian/frontend", "alert": {"number": 3, "state": "open"}}],
	"snyk_issues": [{"id": "i1", "attributes": {"key": "k1"}}],
	"snyk_projects": [{"id": "p1", "attributes": {"name": "guardian/frontend", "type": "sbt"}}]
}`

func TestLoadSnapshot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	gt.NoError(t, os.WriteFile(path, []byte(snapshotJSON), 0600))

	repo := gt.R1(memory.LoadSnapshot(path)).NoError(t)

	repos := gt.R1(repo.ListRepositories(ctx)).NoError(t)
	gt.A(t, repos).Length(1)
	gt.V(t, repos[0].FullName).Equal("guardian/frontend")
	gt.V(t, *repos[0].DefaultBranch).Equal("main")

	branches := gt.R1(repo.ListBranches(ctx)).NoError(t)
	gt.True(t, *branches[0].Protected)

	owners := gt.R1(repo.ListOwnership(ctx)).NoError(t)
	gt.V(t, owners[0].TeamID).Equal(int64(10))

	teams := gt.R1(repo.ListTeams(ctx)).NoError(t)
	gt.V(t, teams[0].Slug).Equal("devx")

	langs := gt.R1(repo.ListLanguages(ctx)).NoError(t)
	gt.V(t, langs[0].Languages).Equal([]string{"Scala"})

	usages := gt.R1(repo.ListWorkflowUsages(ctx)).NoError(t)
	gt.V(t, usages[0].WorkflowUses).Equal([]string{"actions/checkout@v4"})

	alerts := gt.R1(repo.ListDependabotAlerts(ctx)).NoError(t)
	gt.V(t, alerts[0].Alert.Number).Equal(3)

	issues := gt.R1(repo.ListSnykIssues(ctx)).NoError(t)
	gt.V(t, issues[0].Attributes.Key).Equal("k1")

	projects := gt.R1(repo.ListSnykProjects(ctx)).NoError(t)
	gt.V(t, projects[0].Attributes.Type).Equal("sbt")
}

func TestLoadSnapshotErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := memory.LoadSnapshot(filepath.Join(t.TempDir(), "missing.json"))
		gt.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		gt.NoError(t, os.WriteFile(path, []byte("{"), 0600))
		_, err := memory.LoadSnapshot(path)
		gt.Error(t, err)
	})
}

func TestSnapshotIsCopied(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	repo.Update(func(s *memory.Snapshot) {
		s.Repositories = []*model.Repository{{FullName: "guardian/frontend", Topics: []string{"production"}}}
	})

	repos := gt.R1(repo.ListRepositories(ctx)).NoError(t)
	repos[0].FullName = "mutated"
	repos[0].Topics[0] = "mutated"

	again := gt.R1(repo.ListRepositories(ctx)).NoError(t)
	gt.V(t, again[0].FullName).Equal("guardian/frontend")
	gt.V(t, again[0].Topics).Equal([]string{"production"})
}
