package model

// BranchProtection is the current protection of a branch as reported by
// GitHub. A nil field means the setting was absent from the response.
type BranchProtection struct {
	RequiredStatusChecks       *StatusChecks       `json:"required_status_checks,omitempty"`
	RequiredPullRequestReviews *PullRequestReviews `json:"required_pull_request_reviews,omitempty"`
	EnforceAdmins              *bool               `json:"enforce_admins,omitempty"`
	AllowForcePushes           *bool               `json:"allow_force_pushes,omitempty"`
	AllowDeletions             *bool               `json:"allow_deletions,omitempty"`
	Restrictions               *PushRestrictions   `json:"restrictions,omitempty"`
}

type StatusChecks struct {
	Strict   bool     `json:"strict"`
	Contexts []string `json:"contexts"`
}

type PullRequestReviews struct {
	RequireCodeOwnerReviews      *bool `json:"require_code_owner_reviews,omitempty"`
	RequiredApprovingReviewCount *int  `json:"required_approving_review_count,omitempty"`
}

// PushRestrictions lists who may push. Users are logins, teams and apps are slugs.
type PushRestrictions struct {
	Users []string `json:"users"`
	Teams []string `json:"teams"`
	Apps  []string `json:"apps"`
}

// ProtectionUpdate is the complete protection to apply to a branch.
type ProtectionUpdate struct {
	RequiredStatusChecks         StatusChecks      `json:"required_status_checks"`
	EnforceAdmins                bool              `json:"enforce_admins"`
	RequireCodeOwnerReviews      bool              `json:"require_code_owner_reviews"`
	RequiredApprovingReviewCount int               `json:"required_approving_review_count"`
	AllowForcePushes             bool              `json:"allow_force_pushes"`
	AllowDeletions               bool              `json:"allow_deletions"`
	Restrictions                 *PushRestrictions `json:"restrictions"`
}

// RemediationEvent is a repository selected for branch protection together
// with the teams to notify. Branch and Protection are filled in when the
// change is applied.
type RemediationEvent struct {
	FullName   string            `json:"full_name"`
	TeamSlugs  []string          `json:"team_slugs"`
	Branch     string            `json:"branch,omitempty"`
	Protection *ProtectionUpdate `json:"protection,omitempty"`
}
