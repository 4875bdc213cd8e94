package model

import "time"

// RuleVerdicts is the persisted compliance record of one repository for one run.
type RuleVerdicts struct {
	FullName          string `json:"full_name" firestore:"full_name"`
	DefaultBranchName bool   `json:"default_branch_name" firestore:"default_branch_name"`
	BranchProtection  bool   `json:"branch_protection" firestore:"branch_protection"`
	// TeamBasedAccess has no rule behind it and is always false. It is kept so
	// the persisted record keeps its column.
	TeamBasedAccess       bool      `json:"team_based_access" firestore:"team_based_access"`
	AdminAccess           bool      `json:"admin_access" firestore:"admin_access"`
	Archiving             bool      `json:"archiving" firestore:"archiving"`
	Topics                bool      `json:"topics" firestore:"topics"`
	VulnerabilityTracking bool      `json:"vulnerability_tracking" firestore:"vulnerability_tracking"`
	EvaluatedOn           time.Time `json:"evaluated_on" firestore:"evaluated_on"`
}

// EvaluationResult bundles the verdicts and the reconciled vulnerabilities of one repository.
type EvaluationResult struct {
	FullName        string          `json:"full_name"`
	Rules           RuleVerdicts    `json:"repository_rules"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`
}
