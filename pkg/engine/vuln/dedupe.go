package vuln

import (
	"cmp"
	"slices"
	"strings"

	"github.com/guardian/github-lens/pkg/domain/model"
)

// Compare orders vulnerabilities by urgency: more severe first, then
// patchable before unpatchable. It is meant for stable sorts.
func Compare(a, b model.Vulnerability) int {
	if c := cmp.Compare(a.Severity.Rank(), b.Severity.Rank()); c != 0 {
		return c
	}
	switch {
	case a.IsPatchable == b.IsPatchable:
		return 0
	case a.IsPatchable:
		return -1
	default:
		return 1
	}
}

// SortByUrgency returns a copy of vulns in Compare order.
func SortByUrgency(vulns []model.Vulnerability) []model.Vulnerability {
	sorted := slices.Clone(vulns)
	slices.SortStableFunc(sorted, Compare)
	return sorted
}

// CVEKey is the dedup key: the sorted CVE identifiers joined by commas.
func CVEKey(cves []string) string {
	sorted := slices.Clone(cves)
	slices.Sort(sorted)
	return strings.Join(sorted, ",")
}

// Dedupe keeps one vulnerability per distinct CVE set, the most urgent one.
// Vulnerabilities without CVEs are all kept. The result lists the CVE groups in
// urgency order followed by the CVE-less vulnerabilities in input order. Every
// returned record has its CVEs sorted. The input is not modified.
func Dedupe(vulns []model.Vulnerability) []model.Vulnerability {
	var withCVEs, withoutCVEs []model.Vulnerability
	for _, v := range vulns {
		if len(v.CVEs) == 0 {
			withoutCVEs = append(withoutCVEs, v)
			continue
		}
		v.CVEs = slices.Sorted(slices.Values(v.CVEs))
		withCVEs = append(withCVEs, v)
	}

	seen := make(map[string]struct{}, len(withCVEs))
	result := make([]model.Vulnerability, 0, len(vulns))
	for _, v := range SortByUrgency(withCVEs) {
		key := strings.Join(v.CVEs, ",")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, v)
	}

	return append(result, withoutCVEs...)
}
