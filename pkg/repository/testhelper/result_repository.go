// Package testhelper holds the behaviour every ResultRepository
// implementation must share.
package testhelper

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"

	"github.com/guardian/github-lens/pkg/domain/interfaces"
	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/types"
)

// TestAll runs all test cases for ResultRepository
func TestAll(t *testing.T, repo interfaces.ResultRepository) {
	t.Run("ReplaceRuleVerdicts", func(t *testing.T) {
		TestReplaceRuleVerdicts(t, repo)
	})
	t.Run("ReplaceVulnerabilities", func(t *testing.T) {
		TestReplaceVulnerabilities(t, repo)
	})
	t.Run("ReplaceWithEmpty", func(t *testing.T) {
		TestReplaceWithEmpty(t, repo)
	})
}

func newFullName() string {
	return fmt.Sprintf("owner-%s/repo-%s", uuid.NewString()[:8], uuid.NewString()[:8])
}

func evaluatedOn() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func TestReplaceRuleVerdicts(t *testing.T, repo interfaces.ResultRepository) {
	ctx := context.Background()
	now := evaluatedOn()

	first := []*model.RuleVerdicts{
		{FullName: newFullName(), DefaultBranchName: true, Topics: true, EvaluatedOn: now},
		{FullName: newFullName(), BranchProtection: true, AdminAccess: true, EvaluatedOn: now},
	}
	gt.NoError(t, repo.ReplaceRuleVerdicts(ctx, first))

	got, err := repo.ListRuleVerdicts(ctx)
	gt.NoError(t, err)
	gt.A(t, got).Length(2)

	byName := map[string]*model.RuleVerdicts{}
	for _, v := range got {
		byName[v.FullName] = v
	}
	for _, want := range first {
		v, ok := byName[want.FullName]
		gt.True(t, ok)
		gt.V(t, v.DefaultBranchName).Equal(want.DefaultBranchName)
		gt.V(t, v.BranchProtection).Equal(want.BranchProtection)
		gt.V(t, v.AdminAccess).Equal(want.AdminAccess)
		gt.V(t, v.Topics).Equal(want.Topics)
		gt.False(t, v.TeamBasedAccess)
		gt.True(t, v.EvaluatedOn.Equal(want.EvaluatedOn))
	}

	second := []*model.RuleVerdicts{
		{FullName: newFullName(), Archiving: true, EvaluatedOn: now.Add(time.Hour)},
	}
	gt.NoError(t, repo.ReplaceRuleVerdicts(ctx, second))

	got, err = repo.ListRuleVerdicts(ctx)
	gt.NoError(t, err)
	gt.A(t, got).Length(1)
	gt.V(t, got[0].FullName).Equal(second[0].FullName)
	gt.True(t, got[0].Archiving)
}

func TestReplaceVulnerabilities(t *testing.T, repo interfaces.ResultRepository) {
	ctx := context.Background()
	fullName := newFullName()
	owner, _, _ := strings.Cut(fullName, "/")

	vulns := []*model.Vulnerability{
		{
			Source:         types.VulnSourceDependabot,
			FullName:       fullName,
			RepoOwner:      owner,
			Open:           true,
			Severity:       types.SeverityCritical,
			Package:        "lodash",
			URLs:           []string{"https://github.com/advisories/GHSA-1", "https://nvd.nist.gov/vuln/detail/CVE-2024-0001"},
			Ecosystem:      "npm",
			AlertIssueDate: evaluatedOn().Add(-48 * time.Hour),
			IsPatchable:    true,
			CVEs:           []string{"CVE-2024-0001"},
			WithinSLA:      false,
		},
		{
			Source:         types.VulnSourceSnyk,
			FullName:       fullName,
			RepoOwner:      model.RepoOwnerUnknown,
			Open:           true,
			Severity:       types.SeverityHigh,
			Package:        "jackson-databind",
			URLs:           []string{},
			Ecosystem:      "maven",
			AlertIssueDate: evaluatedOn(),
			CVEs:           []string{},
			WithinSLA:      true,
		},
	}
	gt.NoError(t, repo.ReplaceVulnerabilities(ctx, vulns))

	got, err := repo.ListVulnerabilities(ctx)
	gt.NoError(t, err)
	gt.A(t, got).Length(2)
	slices.SortFunc(got, func(a, b *model.Vulnerability) int {
		return strings.Compare(a.Package, b.Package)
	})

	gt.V(t, got[0].Package).Equal("jackson-databind")
	gt.V(t, got[0].Source).Equal(types.VulnSourceSnyk)
	gt.V(t, got[0].RepoOwner).Equal(model.RepoOwnerUnknown)
	gt.V(t, len(got[0].CVEs)).Equal(0)
	gt.True(t, got[0].WithinSLA)

	gt.V(t, got[1].Package).Equal("lodash")
	gt.V(t, got[1].Severity).Equal(types.SeverityCritical)
	gt.V(t, got[1].URLs).Equal(vulns[0].URLs)
	gt.V(t, got[1].CVEs).Equal([]string{"CVE-2024-0001"})
	gt.True(t, got[1].IsPatchable)
	gt.True(t, got[1].AlertIssueDate.Equal(vulns[0].AlertIssueDate))

	// Listed values are copies.
	got[1].CVEs[0] = "mutated"
	again, err := repo.ListVulnerabilities(ctx)
	gt.NoError(t, err)
	for _, v := range again {
		gt.False(t, slices.Contains(v.CVEs, "mutated"))
	}
}

func TestReplaceWithEmpty(t *testing.T, repo interfaces.ResultRepository) {
	ctx := context.Background()

	gt.NoError(t, repo.ReplaceRuleVerdicts(ctx, []*model.RuleVerdicts{
		{FullName: newFullName(), EvaluatedOn: evaluatedOn()},
	}))
	gt.NoError(t, repo.ReplaceVulnerabilities(ctx, []*model.Vulnerability{
		{FullName: newFullName(), Severity: types.SeverityHigh, AlertIssueDate: evaluatedOn()},
	}))

	gt.NoError(t, repo.ReplaceRuleVerdicts(ctx, nil))
	gt.NoError(t, repo.ReplaceVulnerabilities(ctx, nil))

	verdicts, err := repo.ListRuleVerdicts(ctx)
	gt.NoError(t, err)
	gt.V(t, len(verdicts)).Equal(0)

	vulns, err := repo.ListVulnerabilities(ctx)
	gt.NoError(t, err)
	gt.V(t, len(vulns)).Equal(0)
}
