package ghapp

import (
	"context"
	"net/http"
	"net/url"

	"github.com/m-mizutani/goerr/v2"

	"github.com/guardian/github-lens/pkg/domain/model"
)

type enabledSetting struct {
	Enabled bool `json:"enabled"`
}

type loginRef struct {
	Login string `json:"login"`
}

type slugRef struct {
	Slug string `json:"slug"`
}

// protectionResponse is the shape of GET .../branches/{branch}/protection.
type protectionResponse struct {
	RequiredStatusChecks *struct {
		Strict   bool     `json:"strict"`
		Contexts []string `json:"contexts"`
	} `json:"required_status_checks"`
	RequiredPullRequestReviews *struct {
		RequireCodeOwnerReviews      *bool `json:"require_code_owner_reviews"`
		RequiredApprovingReviewCount *int  `json:"required_approving_review_count"`
	} `json:"required_pull_request_reviews"`
	EnforceAdmins    *enabledSetting `json:"enforce_admins"`
	AllowForcePushes *enabledSetting `json:"allow_force_pushes"`
	AllowDeletions   *enabledSetting `json:"allow_deletions"`
	Restrictions     *struct {
		Users []loginRef `json:"users"`
		Teams []slugRef  `json:"teams"`
		Apps  []slugRef  `json:"apps"`
	} `json:"restrictions"`
}

func enabled(s *enabledSetting) *bool {
	if s == nil {
		return nil
	}
	v := s.Enabled
	return &v
}

func (x *protectionResponse) toModel() *model.BranchProtection {
	p := &model.BranchProtection{
		EnforceAdmins:    enabled(x.EnforceAdmins),
		AllowForcePushes: enabled(x.AllowForcePushes),
		AllowDeletions:   enabled(x.AllowDeletions),
	}

	if sc := x.RequiredStatusChecks; sc != nil {
		p.RequiredStatusChecks = &model.StatusChecks{Strict: sc.Strict, Contexts: sc.Contexts}
	}
	if pr := x.RequiredPullRequestReviews; pr != nil {
		p.RequiredPullRequestReviews = &model.PullRequestReviews{
			RequireCodeOwnerReviews:      pr.RequireCodeOwnerReviews,
			RequiredApprovingReviewCount: pr.RequiredApprovingReviewCount,
		}
	}
	if r := x.Restrictions; r != nil {
		restrictions := &model.PushRestrictions{Users: []string{}, Teams: []string{}, Apps: []string{}}
		for _, u := range r.Users {
			restrictions.Users = append(restrictions.Users, u.Login)
		}
		for _, t := range r.Teams {
			restrictions.Teams = append(restrictions.Teams, t.Slug)
		}
		for _, a := range r.Apps {
			restrictions.Apps = append(restrictions.Apps, a.Slug)
		}
		p.Restrictions = restrictions
	}
	return p
}

func protectionPath(owner, repo, branch string) string {
	return "repos/" + owner + "/" + repo + "/branches/" + url.PathEscape(branch) + "/protection"
}

// GetBranchProtection returns nil without error when the branch is not protected.
// https://docs.github.com/en/rest/branches/branch-protection#get-branch-protection
func (x *Client) GetBranchProtection(ctx context.Context, owner, repo, branch string) (*model.BranchProtection, error) {
	req, err := x.client.NewRequest(http.MethodGet, protectionPath(owner, repo, branch), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build branch protection request")
	}

	var result protectionResponse
	resp, err := x.do(ctx, "get_branch_protection", req, &result)
	if isNotFound(resp, err) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get branch protection",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("branch", branch))
	}

	return result.toModel(), nil
}

// protectionRequest is the body of PUT .../branches/{branch}/protection.
// Every top level key is required by the API, restrictions may be null.
type protectionRequest struct {
	RequiredStatusChecks       model.StatusChecks `json:"required_status_checks"`
	EnforceAdmins              bool               `json:"enforce_admins"`
	RequiredPullRequestReviews struct {
		RequireCodeOwnerReviews      bool `json:"require_code_owner_reviews"`
		RequiredApprovingReviewCount int  `json:"required_approving_review_count"`
	} `json:"required_pull_request_reviews"`
	Restrictions     *model.PushRestrictions `json:"restrictions"`
	AllowForcePushes bool                    `json:"allow_force_pushes"`
	AllowDeletions   bool                    `json:"allow_deletions"`
}

func newProtectionRequest(update *model.ProtectionUpdate) *protectionRequest {
	body := &protectionRequest{
		RequiredStatusChecks: update.RequiredStatusChecks,
		EnforceAdmins:        update.EnforceAdmins,
		Restrictions:         update.Restrictions,
		AllowForcePushes:     update.AllowForcePushes,
		AllowDeletions:       update.AllowDeletions,
	}
	if body.RequiredStatusChecks.Contexts == nil {
		body.RequiredStatusChecks.Contexts = []string{}
	}
	body.RequiredPullRequestReviews.RequireCodeOwnerReviews = update.RequireCodeOwnerReviews
	body.RequiredPullRequestReviews.RequiredApprovingReviewCount = update.RequiredApprovingReviewCount
	return body
}

// UpdateBranchProtection replaces the protection of branch with update.
// https://docs.github.com/en/rest/branches/branch-protection#update-branch-protection
func (x *Client) UpdateBranchProtection(ctx context.Context, owner, repo, branch string, update *model.ProtectionUpdate) error {
	req, err := x.client.NewRequest(http.MethodPut, protectionPath(owner, repo, branch), newProtectionRequest(update))
	if err != nil {
		return goerr.Wrap(err, "failed to build branch protection update")
	}

	if _, err := x.do(ctx, "update_branch_protection", req, nil); err != nil {
		return goerr.Wrap(err, "failed to update branch protection",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("branch", branch))
	}
	return nil
}
