// Package metrics holds the Prometheus collectors of repocop. They register
// on the default registry and are served by the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RepositoriesEvaluated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "repocop_repositories_evaluated_total",
		Help: "Repositories evaluated against the rules",
	})

	// RuleFailures counts false verdicts by rule name.
	RuleFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "repocop_rule_failures_total",
		Help: "Repositories failing a rule, by rule",
	}, []string{"rule"})

	Vulnerabilities = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "repocop_vulnerabilities_total",
		Help: "Deduplicated vulnerabilities found, by source and severity",
	}, []string{"source", "severity"})

	OldAlerts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "repocop_old_alerts_total",
		Help: "Vulnerabilities of production repositories past their deadline",
	})

	// Notifications counts outbound messages by kind and result.
	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "repocop_notifications_total",
		Help: "Notifications and events sent, by kind and result",
	}, []string{"kind", "result"})

	BranchProtections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "repocop_branch_protections_total",
		Help: "Branch protection remediations, by result",
	}, []string{"result"})

	GitHubRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "repocop_github_requests_total",
		Help: "GitHub API requests, by operation and result",
	}, []string{"operation", "result"})

	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "repocop_stage_duration_seconds",
		Help:    "Duration of each run stage",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
	}, []string{"stage"})
)

// Result labels.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultSkipped = "skipped"
)

// ResultOf maps an error to a result label.
func ResultOf(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
