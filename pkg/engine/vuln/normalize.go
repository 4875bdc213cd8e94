// Package vuln turns scanner findings into model.Vulnerability, removes
// duplicates and applies remediation deadlines.
package vuln

import (
	"slices"
	"strings"
	"time"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/model/dependabot"
	"github.com/guardian/github-lens/pkg/domain/model/snyk"
	"github.com/guardian/github-lens/pkg/domain/types"
)

const unknownEcosystem = "unknown ecosystem"

// FromDependabot normalizes a Dependabot alert raised on fullName.
func FromDependabot(fullName string, alert *dependabot.Alert, sla model.SLA, now time.Time) model.Vulnerability {
	var cves []string
	for _, id := range alert.SecurityAdvisory.Identifiers {
		if id.Type == "CVE" {
			cves = append(cves, id.Value)
		}
	}

	urls := make([]string, 0, len(alert.SecurityAdvisory.References))
	for _, ref := range alert.SecurityAdvisory.References {
		urls = append(urls, ref.URL)
	}

	severity := types.ParseSeverity(alert.SecurityAdvisory.Severity)

	return model.Vulnerability{
		Source:         types.VulnSourceDependabot,
		FullName:       fullName,
		Open:           alert.State == dependabot.StateOpen,
		Severity:       severity,
		Package:        alert.SecurityVulnerability.Package.Name,
		URLs:           SortURLs(urls),
		Ecosystem:      alert.SecurityVulnerability.Package.Ecosystem,
		AlertIssueDate: alert.CreatedAt,
		IsPatchable:    alert.SecurityVulnerability.FirstPatchedVersion != nil,
		CVEs:           orEmpty(cves),
		WithinSLA:      WithinSLA(alert.CreatedAt, severity, sla, now),
	}
}

// FilterSnykIDs keeps only CVE identifiers when there is at least one, so
// vendor identifiers never split a CVE group. Without any CVE all ids are kept.
func FilterSnykIDs(ids []string) []string {
	isCVE := func(id string) bool { return strings.HasPrefix(id, "CVE-") }
	if !slices.ContainsFunc(ids, isCVE) {
		return slices.Clone(ids)
	}

	var cves []string
	for _, id := range ids {
		if isCVE(id) {
			cves = append(cves, id)
		}
	}
	return cves
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

// FromSnyk normalizes a Snyk issue raised on fullName. The ecosystem comes
// from the project the issue was found in.
func FromSnyk(fullName string, issue *snyk.Issue, projects []*snyk.Project, sla model.SLA, now time.Time) model.Vulnerability {
	var (
		packages    []string
		isPatchable bool
	)
	for _, c := range issue.Attributes.Coordinates {
		if isTrue(c.IsUpgradeable) || isTrue(c.IsPatchable) || isTrue(c.IsPinnable) {
			isPatchable = true
		}
		for _, r := range c.Representations {
			if r.Dependency == nil || slices.Contains(packages, r.Dependency.PackageName) {
				continue
			}
			packages = append(packages, r.Dependency.PackageName)
		}
	}

	ecosystem := unknownEcosystem
	projectID := issue.ProjectID()
	if idx := slices.IndexFunc(projects, func(p *snyk.Project) bool { return p.ID == projectID }); idx >= 0 {
		if t := projects[idx].Attributes.Type; t != "" {
			ecosystem = t
		}
	}

	var (
		urls []string
		ids  []string
	)
	for _, p := range issue.Attributes.Problems {
		if p.URL != "" {
			urls = append(urls, p.URL)
		}
		ids = append(ids, p.ID)
	}

	severity := types.ParseSeverity(issue.Attributes.EffectiveSeverityLevel)

	return model.Vulnerability{
		Source:         types.VulnSourceSnyk,
		FullName:       fullName,
		Open:           issue.Attributes.Status == snyk.StatusOpen,
		Severity:       severity,
		Package:        strings.Join(packages, ", "),
		URLs:           orEmpty(urls),
		Ecosystem:      ecosystem,
		AlertIssueDate: issue.Attributes.CreatedAt,
		IsPatchable:    isPatchable,
		CVEs:           orEmpty(FilterSnykIDs(ids)),
		WithinSLA:      WithinSLA(issue.Attributes.CreatedAt, severity, sla, now),
	}
}

func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
