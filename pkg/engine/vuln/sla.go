package vuln

import (
	"time"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/types"
)

// ExceedsSLA reports whether a finding raised at issueDate is older than the
// deadline for its severity. Severities without a deadline never exceed it.
func ExceedsSLA(issueDate time.Time, severity types.Severity, sla model.SLA, now time.Time) bool {
	days, ok := sla[severity]
	if !ok {
		return false
	}
	return issueDate.Before(now.AddDate(0, 0, -days))
}

// WithinSLA is the negation of ExceedsSLA, stored on each vulnerability.
func WithinSLA(issueDate time.Time, severity types.Severity, sla model.SLA, now time.Time) bool {
	return !ExceedsSLA(issueDate, severity, sla, now)
}

// OldAlerts returns the vulnerabilities of a production repository that are
// past their deadline. Other repositories have no old alerts.
func OldAlerts(repo *model.AugmentedRepository, vulns []model.Vulnerability, sla model.SLA, now time.Time) []model.Vulnerability {
	if !repo.IsProduction() {
		return nil
	}

	var old []model.Vulnerability
	for _, v := range vulns {
		if ExceedsSLA(v.AlertIssueDate, v.Severity, sla, now) {
			old = append(old, v)
		}
	}
	return old
}
