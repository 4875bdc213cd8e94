package protection

import (
	"slices"

	"github.com/guardian/github-lens/pkg/domain/model"
)

// Merge builds the protection to apply on top of current, which may be nil
// for an unprotected branch. Settings are only ever tightened: the approval
// count is kept if higher than one, and status check contexts and push
// restrictions are carried over.
func Merge(current *model.BranchProtection) *model.ProtectionUpdate {
	update := &model.ProtectionUpdate{
		RequiredStatusChecks:         model.StatusChecks{Strict: true, Contexts: []string{}},
		EnforceAdmins:                true,
		RequireCodeOwnerReviews:      true,
		RequiredApprovingReviewCount: 1,
		AllowForcePushes:             false,
		AllowDeletions:               false,
	}
	if current == nil {
		return update
	}

	if sc := current.RequiredStatusChecks; sc != nil && sc.Contexts != nil {
		update.RequiredStatusChecks.Contexts = slices.Clone(sc.Contexts)
	}
	if pr := current.RequiredPullRequestReviews; pr != nil && pr.RequiredApprovingReviewCount != nil {
		update.RequiredApprovingReviewCount = max(1, *pr.RequiredApprovingReviewCount)
	}
	if r := current.Restrictions; r != nil {
		update.Restrictions = &model.PushRestrictions{
			Users: slices.Clone(r.Users),
			Teams: slices.Clone(r.Teams),
			Apps:  slices.Clone(r.Apps),
		}
	}
	return update
}

// Sufficient reports whether current already meets the baseline. Every
// setting must be present: an absent value counts as insufficient.
func Sufficient(current *model.BranchProtection) bool {
	if current == nil || current.RequiredPullRequestReviews == nil {
		return false
	}
	reviews := current.RequiredPullRequestReviews

	return isTrue(reviews.RequireCodeOwnerReviews) &&
		reviews.RequiredApprovingReviewCount != nil && *reviews.RequiredApprovingReviewCount >= 1 &&
		isFalse(current.AllowForcePushes) &&
		isFalse(current.AllowDeletions) &&
		isTrue(current.EnforceAdmins)
}

func isTrue(b *bool) bool  { return b != nil && *b }
func isFalse(b *bool) bool { return b != nil && !*b }
