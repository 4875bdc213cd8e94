package usecase_test

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/model/dependabot"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/repository/memory"
	"github.com/guardian/github-lens/pkg/utils/logging"
	"github.com/guardian/github-lens/pkg/utils/testutil"
)

// now is the first Tuesday of February 2024.
var now = time.Date(2024, 2, 6, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func testContext() context.Context {
	return logging.CtxWithTime(context.Background(), testutil.FixedClock(now))
}

func testShuffler() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func testConfig(stage types.Stage) model.Config {
	cfg := model.DefaultConfig()
	cfg.Stage = stage
	return cfg
}

func newSnapshot() *memory.Repository {
	recent := now.AddDate(0, 0, -1)
	return memory.NewWithSnapshot(&memory.Snapshot{
		Repositories: []*model.Repository{
			{ID: 1, FullName: "guardian/frontend", Name: "frontend", Topics: []string{"production"}, DefaultBranch: ptr("main"), PushedAt: &recent},
			{ID: 2, FullName: "guardian/docs", Name: "docs", Topics: []string{"documentation"}, DefaultBranch: ptr("main"), PushedAt: &recent},
			{ID: 3, FullName: "guardian/esd-legacy", Name: "esd-legacy", Topics: []string{"production"}, DefaultBranch: ptr("main"), PushedAt: &recent},
			{ID: 4, FullName: "guardian/toy", Name: "toy", Topics: []string{"prototype"}, DefaultBranch: ptr("master"), PushedAt: &recent},
		},
		Branches: []*model.Branch{
			{RepositoryID: 1, Name: "main", Protected: ptr(false)},
			{RepositoryID: 2, Name: "main", Protected: ptr(true)},
		},
		Ownership: []*model.Ownership{
			{TeamID: 10, TeamSlug: "devx", FullName: "guardian/frontend", RoleName: "admin"},
			{TeamID: 11, TeamSlug: "docs", FullName: "guardian/docs", RoleName: "admin"},
		},
		Teams: []*model.Team{
			{ID: 10, Name: "DevX", Slug: "devx"},
			{ID: 11, Name: "Docs", Slug: "docs"},
		},
		Languages: []*model.RepositoryLanguages{
			{FullName: "guardian/frontend", Languages: []string{"Scala", "TypeScript"}},
		},
	})
}

func criticalAlert(createdAt time.Time) dependabot.Alert {
	return dependabot.Alert{
		Number: 1,
		State:  dependabot.StateOpen,
		Dependency: dependabot.Dependency{
			Package: dependabot.Package{Ecosystem: "npm", Name: "lodash"},
			Scope:   "runtime",
		},
		SecurityAdvisory: dependabot.SecurityAdvisory{
			Severity:    "critical",
			Identifiers: []dependabot.Identifier{{Type: "CVE", Value: "CVE-2024-0001"}},
			References:  []dependabot.Reference{{URL: "https://github.com/advisories/GHSA-xxxx"}},
		},
		SecurityVulnerability: dependabot.SecurityVulnerability{
			Package:             dependabot.Package{Ecosystem: "npm", Name: "lodash"},
			FirstPatchedVersion: &dependabot.PatchedVersion{Identifier: "4.17.21"},
		},
		CreatedAt: createdAt,
	}
}
