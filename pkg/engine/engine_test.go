package engine_test

import (
	"testing"
	"time"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/model/dependabot"
	"github.com/guardian/github-lens/pkg/domain/model/snyk"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/engine"
	"github.com/m-mizutani/gt"
)

func ptr[T any](v T) *T { return &v }

func TestEvaluateRepository(t *testing.T) {
	now := time.Date(2024, 2, 6, 12, 0, 0, 0, time.UTC)
	cfg := model.DefaultConfig()

	repo := &model.AugmentedRepository{
		Repository: model.Repository{
			ID:            1,
			FullName:      "guardian/repo",
			Name:          "repo",
			Topics:        []string{"production"},
			DefaultBranch: ptr("main"),
			PushedAt:      ptr(now.AddDate(0, -1, 0)),
		},
		AdminTeamSlugs: []string{"team-one"},
		Languages:      []string{"Scala"},
		WorkflowUsages: []string{},
	}

	branches := []*model.Branch{{RepositoryID: 1, Name: "main", Protected: ptr(true)}}
	projects := []*snyk.Project{
		{ID: "p1", Attributes: snyk.ProjectAttributes{Type: "sbt", Tags: []snyk.Tag{
			{Key: snyk.TagRepo, Value: "guardian/repo"},
			{Key: snyk.TagBranch, Value: "main"},
		}}},
	}
	issues := []*snyk.Issue{
		{
			ID: "i1",
			Attributes: snyk.IssueAttributes{
				Status:                 snyk.StatusOpen,
				EffectiveSeverityLevel: "high",
				CreatedAt:              now.AddDate(0, 0, -1),
				Problems:               []snyk.Problem{{ID: "CVE-2018-6188", URL: "https://security.snyk.io/vuln/1"}},
			},
			Relationships: snyk.IssueRelationships{ScanItem: snyk.Relationship{Data: snyk.RelationshipData{ID: "p1"}}},
		},
	}
	alerts := []dependabot.Alert{
		{
			State: dependabot.StateOpen,
			SecurityAdvisory: dependabot.SecurityAdvisory{
				Severity:    "critical",
				Identifiers: []dependabot.Identifier{{Type: "CVE", Value: "CVE-2018-6188"}},
			},
			SecurityVulnerability: dependabot.SecurityVulnerability{
				Package: dependabot.Package{Ecosystem: "maven", Name: "jackson"},
			},
			CreatedAt: now.AddDate(0, 0, -5),
		},
	}

	result := engine.EvaluateRepository(repo, alerts, engine.NewInput(branches, issues, projects), cfg, now)

	gt.V(t, result.FullName).Equal("guardian/repo")
	gt.V(t, result.Rules).Equal(model.RuleVerdicts{
		FullName:              "guardian/repo",
		DefaultBranchName:     true,
		BranchProtection:      true,
		AdminAccess:           true,
		Archiving:             true,
		Topics:                true,
		VulnerabilityTracking: true,
		EvaluatedOn:           now,
	})

	gt.V(t, len(result.Vulnerabilities)).Equal(1)
	gt.V(t, result.Vulnerabilities[0].Source).Equal(types.VulnSourceDependabot)
	gt.V(t, result.Vulnerabilities[0].Severity).Equal(types.SeverityCritical)
	gt.False(t, result.Vulnerabilities[0].WithinSLA)
}

func TestEvaluateRepositoryPartialData(t *testing.T) {
	now := time.Date(2024, 2, 6, 12, 0, 0, 0, time.UTC)
	repo := &model.AugmentedRepository{Repository: model.Repository{FullName: "guardian/bare"}}

	result := engine.EvaluateRepository(repo, nil, engine.NewInput(nil, nil, nil), model.DefaultConfig(), now)
	gt.False(t, result.Rules.DefaultBranchName)
	gt.True(t, result.Rules.BranchProtection)
	gt.False(t, result.Rules.AdminAccess)
	gt.True(t, result.Rules.Archiving)
	gt.False(t, result.Rules.Topics)
	gt.True(t, result.Rules.VulnerabilityTracking)
	gt.V(t, len(result.Vulnerabilities)).Equal(0)
}
