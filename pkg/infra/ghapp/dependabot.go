package ghapp

import (
	"context"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/guardian/github-lens/pkg/domain/model/dependabot"
)

const alertsPerPage = 100

// ListDependabotAlerts returns the open critical and high alerts of a
// repository, oldest first. Alerts on development dependencies are dropped.
// The endpoint pages by cursor, so the loop follows resp.After.
// https://docs.github.com/en/rest/dependabot/alerts#list-dependabot-alerts-for-a-repository
func (x *Client) ListDependabotAlerts(ctx context.Context, owner, repo string) ([]dependabot.Alert, error) {
	opts := &github.ListAlertsOptions{
		State:     github.String(dependabot.StateOpen),
		Severity:  github.String("critical,high"),
		Sort:      github.String("created"),
		Direction: github.String("asc"),
		ListCursorOptions: github.ListCursorOptions{
			PerPage: alertsPerPage,
		},
	}

	var alerts []dependabot.Alert
	for {
		if err := x.wait(ctx); err != nil {
			return nil, err
		}

		result, resp, err := x.client.Dependabot.ListRepoAlerts(ctx, owner, repo, opts)
		x.observe(ctx, "list_dependabot_alerts", resp, err)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list Dependabot alerts",
				goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("after", opts.After))
		}

		for _, alert := range result {
			if alert.GetDependency().GetScope() == dependabot.ScopeDevelopment {
				continue
			}
			alerts = append(alerts, toAlert(alert))
		}

		if resp.After == "" {
			break
		}
		opts.After = resp.After
	}

	return alerts, nil
}

func toAlert(a *github.DependabotAlert) dependabot.Alert {
	dep := a.GetDependency()
	adv := a.GetSecurityAdvisory()
	vuln := a.GetSecurityVulnerability()

	alert := dependabot.Alert{
		Number:  a.GetNumber(),
		State:   a.GetState(),
		HTMLURL: a.GetHTMLURL(),
		Dependency: dependabot.Dependency{
			Package:      toPackage(dep.GetPackage()),
			ManifestPath: dep.GetManifestPath(),
			Scope:        dep.GetScope(),
		},
		SecurityAdvisory: dependabot.SecurityAdvisory{
			GHSAID:   adv.GetGHSAID(),
			Summary:  adv.GetSummary(),
			Severity: adv.GetSeverity(),
		},
		SecurityVulnerability: dependabot.SecurityVulnerability{
			Package:                toPackage(vuln.GetPackage()),
			Severity:               vuln.GetSeverity(),
			VulnerableVersionRange: vuln.GetVulnerableVersionRange(),
		},
	}
	if a.CreatedAt != nil {
		alert.CreatedAt = a.CreatedAt.Time
	}
	if adv != nil {
		alert.SecurityAdvisory.CVEID = adv.CVEID
		for _, id := range adv.Identifiers {
			alert.SecurityAdvisory.Identifiers = append(alert.SecurityAdvisory.Identifiers,
				dependabot.Identifier{Type: id.GetType(), Value: id.GetValue()})
		}
		for _, ref := range adv.References {
			alert.SecurityAdvisory.References = append(alert.SecurityAdvisory.References,
				dependabot.Reference{URL: ref.GetURL()})
		}
	}
	if vuln != nil && vuln.FirstPatchedVersion != nil {
		alert.SecurityVulnerability.FirstPatchedVersion = &dependabot.PatchedVersion{
			Identifier: vuln.FirstPatchedVersion.GetIdentifier(),
		}
	}
	return alert
}

func toPackage(p *github.VulnerabilityPackage) dependabot.Package {
	return dependabot.Package{Ecosystem: p.GetEcosystem(), Name: p.GetName()}
}
