package types

import "strings"

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityUnknown  Severity = "unknown"
)

var severityRank = map[Severity]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
	SeverityLow:      3,
	SeverityUnknown:  4,
}

// Rank orders severities from most (0) to least urgent. Unrecognized values
// rank with unknown.
func (x Severity) Rank() int {
	if r, ok := severityRank[x]; ok {
		return r
	}
	return severityRank[SeverityUnknown]
}

func (x Severity) String() string {
	return string(x)
}

// ParseSeverity maps scanner severity labels to Severity. Matching is case
// insensitive and anything unrecognized becomes SeverityUnknown.
func ParseSeverity(s string) Severity {
	v := Severity(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := severityRank[v]; ok {
		return v
	}
	return SeverityUnknown
}

type VulnSource string

const (
	VulnSourceDependabot VulnSource = "Dependabot"
	VulnSourceSnyk       VulnSource = "Snyk"
)
