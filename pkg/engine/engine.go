// Package engine evaluates one repository: rule verdicts plus its reconciled
// vulnerabilities. It performs no I/O.
package engine

import (
	"time"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/model/dependabot"
	"github.com/guardian/github-lens/pkg/domain/model/snyk"
	"github.com/guardian/github-lens/pkg/engine/rules"
	"github.com/guardian/github-lens/pkg/engine/vuln"
)

// Input is the part of the snapshot relevant to every repository.
type Input struct {
	Branches     []*model.Branch
	SnykIssues   []*snyk.Issue
	SnykProjects []*snyk.Project
	ReposOnSnyk  []string
}

// NewInput derives ReposOnSnyk from the projects.
func NewInput(branches []*model.Branch, issues []*snyk.Issue, projects []*snyk.Project) *Input {
	return &Input{
		Branches:     branches,
		SnykIssues:   issues,
		SnykProjects: projects,
		ReposOnSnyk:  vuln.ReposOnSnyk(projects),
	}
}

// EvaluateRepository computes the verdicts of repo and the deduplicated union
// of its urgent Snyk issues and Dependabot alerts.
func EvaluateRepository(repo *model.AugmentedRepository, alerts []dependabot.Alert, input *Input, cfg model.Config, now time.Time) *model.EvaluationResult {
	vulns := vuln.UrgentSnykAlerts(repo, input.SnykIssues, input.SnykProjects, cfg.SLA, now)
	for i := range alerts {
		vulns = append(vulns, vuln.FromDependabot(repo.FullName, &alerts[i], cfg.SLA, now))
	}

	return &model.EvaluationResult{
		FullName:        repo.FullName,
		Rules:           rules.Evaluate(repo, input.Branches, input.ReposOnSnyk, now),
		Vulnerabilities: vuln.Dedupe(vulns),
	}
}
