package vuln

import (
	"net/url"
	"slices"
	"strings"
)

// URLRank weights a reference URL for display order. Lower ranks come first:
// Snyk advisories, then GitHub advisory pages, then everything else.
// Unparsable URLs rank neutral.
func URLRank(raw string) int {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return 0
	}

	switch host := strings.ToLower(u.Hostname()); {
	case host == "snyk.io" || host == "security.snyk.io":
		return -2
	case host == "github.com" && strings.Contains(u.Path, "advisories"):
		return -1
	default:
		return 0
	}
}

// SortURLs returns a copy of urls ordered by URLRank. Equal ranks keep their order.
func SortURLs(urls []string) []string {
	sorted := slices.Clone(urls)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return URLRank(a) - URLRank(b)
	})
	return sorted
}
