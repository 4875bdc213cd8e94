// Package digest composes the per-team vulnerability summaries.
package digest

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/engine/vuln"
)

// dateLayout renders dates as e.g. "Tue Feb 06 2024".
const dateLayout = "Mon Jan 02 2006"

// TopVulns picks the n most urgent vulnerabilities and orders them by
// repository name for display. Equal names keep urgency order.
func TopVulns(vulns []model.Vulnerability, n int) []model.Vulnerability {
	top := vuln.SortByUrgency(vulns)
	if len(top) > n {
		top = top[:n]
	}
	slices.SortStableFunc(top, func(a, b model.Vulnerability) int {
		return strings.Compare(a.FullName, b.FullName)
	})
	return top
}

// ForTeam builds the digest of the vulnerabilities attributed to team. It
// returns nil when the team has nothing outstanding.
func ForTeam(team *model.Team, vulns []model.Vulnerability, cfg model.Config) *model.VulnerabilityDigest {
	var owned []model.Vulnerability
	for _, v := range vulns {
		if v.RepoOwner == team.Slug {
			owned = append(owned, v)
		}
	}

	owned = vuln.Dedupe(owned)
	if len(owned) == 0 {
		return nil
	}

	return &model.VulnerabilityDigest{
		TeamSlug: team.Slug,
		Subject:  "Vulnerability Digest for " + team.Name,
		Message:  Render(owned, cfg.DigestSize),
		Actions:  []model.Action{cfg.DigestAction},
	}
}

// Render produces the digest message body for an already deduplicated list.
func Render(vulns []model.Vulnerability, size int) string {
	repos := make(map[string]struct{})
	for _, v := range vulns {
		repos[v.FullName] = struct{}{}
	}

	top := TopVulns(vulns, size)

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d vulnerabilities across %d repositories.\n", len(vulns), len(repos))
	fmt.Fprintf(&b, "Displaying the top %d most urgent.\n", len(top))
	b.WriteString("Note: DevX only aggregates vulnerability information for repositories with a production topic.")

	for _, v := range top {
		b.WriteString("\n\n")
		b.WriteString(paragraph(v))
	}
	return b.String()
}

func paragraph(v model.Vulnerability) string {
	ecosystem := v.Ecosystem
	if ecosystem == "maven" {
		ecosystem = "sbt or maven"
	}

	patchable := "may *not* be "
	if v.IsPatchable {
		patchable = "is "
	}

	return fmt.Sprintf("[%s](https://github.com/%s) contains a [%s vulnerability](%s).\n"+
		"Introduced via **%s** on %s, from %s.\n"+
		"This vulnerability %spatchable.",
		v.FullName, v.FullName, strings.ToUpper(v.Severity.String()), v.FirstURL(),
		v.Package, v.AlertIssueDate.Format(dateLayout), ecosystem,
		patchable,
	)
}

// ThreadKey groups successive digests of a team into one conversation.
func ThreadKey(teamSlug string) string {
	return "vulnerability-digest-" + teamSlug
}

// IsFirstOrThirdTuesdayOfMonth is evaluated on the calendar date of t in its
// own location.
func IsFirstOrThirdTuesdayOfMonth(t time.Time) bool {
	day := t.Day()
	return t.Weekday() == time.Tuesday && (day <= 7 || (day >= 15 && day <= 21))
}

// ShouldSend reports whether digests composed at t are delivered. Other
// stages and days only log them.
func ShouldSend(stage types.Stage, t time.Time) bool {
	return stage == types.StageProd && IsFirstOrThirdTuesdayOfMonth(t)
}
