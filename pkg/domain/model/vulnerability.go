package model

import (
	"time"

	"github.com/guardian/github-lens/pkg/domain/types"
)

// RepoOwnerUnknown is the owner assigned to vulnerabilities of repositories
// that no team administers.
const RepoOwnerUnknown = "unknown"

// Vulnerability is the scanner independent shape every finding is normalized into.
type Vulnerability struct {
	Source         types.VulnSource `json:"source" firestore:"source"`
	FullName       string           `json:"full_name" firestore:"full_name"`
	RepoOwner      string           `json:"repo_owner" firestore:"repo_owner"`
	Open           bool             `json:"open" firestore:"open"`
	Severity       types.Severity   `json:"severity" firestore:"severity"`
	Package        string           `json:"package" firestore:"package"`
	URLs           []string         `json:"urls" firestore:"urls"`
	Ecosystem      string           `json:"ecosystem" firestore:"ecosystem"`
	AlertIssueDate time.Time        `json:"alert_issue_date" firestore:"alert_issue_date"`
	IsPatchable    bool             `json:"is_patchable" firestore:"is_patchable"`
	CVEs           []string         `json:"cves" firestore:"cves"`
	WithinSLA      bool             `json:"within_sla" firestore:"within_sla"`
}

// FirstURL returns the most authoritative reference, or an empty string.
func (x Vulnerability) FirstURL() string {
	if len(x.URLs) == 0 {
		return ""
	}
	return x.URLs[0]
}
