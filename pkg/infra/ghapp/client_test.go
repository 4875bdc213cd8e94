package ghapp_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/infra/ghapp"
	"github.com/guardian/github-lens/pkg/utils/testutil"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *ghapp.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := ghapp.NewWithHTTPClient(srv.Client(), ghapp.WithBaseURL(srv.URL), ghapp.WithRateLimit(0))
	gt.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	t.Run("app id is required", func(t *testing.T) {
		_, err := ghapp.New(0, 1, "key")
		gt.Error(t, err)
	})

	t.Run("installation id is required", func(t *testing.T) {
		_, err := ghapp.New(1, 0, "key")
		gt.Error(t, err)
	})

	t.Run("private key is required", func(t *testing.T) {
		_, err := ghapp.New(1, 1, "")
		gt.Error(t, err)
	})

	t.Run("invalid private key", func(t *testing.T) {
		_, err := ghapp.New(1, 1, "not a pem")
		gt.Error(t, err)
	})
}

func TestGetDefaultBranch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/guardian/repo", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"full_name":"guardian/repo","default_branch":"main"}`))
	})
	mux.HandleFunc("GET /repos/guardian/empty", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"full_name":"guardian/empty"}`))
	})
	client := newTestClient(t, mux)

	branch, err := client.GetDefaultBranch(context.Background(), "guardian", "repo")
	gt.NoError(t, err)
	gt.V(t, branch).Equal("main")

	_, err = client.GetDefaultBranch(context.Background(), "guardian", "empty")
	gt.Error(t, err)

	_, err = client.GetDefaultBranch(context.Background(), "guardian", "missing")
	gt.Error(t, err)
}

func TestListDependabotAlerts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/guardian/repo/dependabot/alerts", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != "open" || q.Get("severity") != "critical,high" || q.Get("sort") != "created" || q.Get("direction") != "asc" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch q.Get("after") {
		case "":
			w.Header().Set("Link", fmt.Sprintf(`<http://%s/repos/guardian/repo/dependabot/alerts?per_page=100&after=Y3Vyc29y>; rel="next"`, r.Host))
			_, _ = w.Write([]byte(`[
				{"number":1,"state":"open","dependency":{"package":{"ecosystem":"npm","name":"axios"},"scope":"runtime"},
				 "security_advisory":{"severity":"high","identifiers":[{"type":"CVE","value":"CVE-2021-3749"}],"references":[{"url":"https://nvd.nist.gov/vuln/detail/CVE-2021-3749"}]},
				 "security_vulnerability":{"package":{"ecosystem":"npm","name":"axios"},"first_patched_version":{"identifier":"0.21.2"}},
				 "created_at":"2024-01-01T00:00:00Z"},
				{"number":2,"state":"open","dependency":{"package":{"ecosystem":"npm","name":"jest"},"scope":"development"},
				 "security_advisory":{"severity":"critical"},"created_at":"2024-01-02T00:00:00Z"}
			]`))
		case "Y3Vyc29y":
			_, _ = w.Write([]byte(`[
				{"number":3,"state":"open","dependency":{"package":{"ecosystem":"maven","name":"log4j"},"scope":"runtime"},
				 "security_advisory":{"severity":"critical"},"created_at":"2024-01-03T00:00:00Z"}
			]`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})
	client := newTestClient(t, mux)

	alerts, err := client.ListDependabotAlerts(context.Background(), "guardian", "repo")
	gt.NoError(t, err)
	gt.V(t, len(alerts)).Equal(2)
	gt.V(t, alerts[0].Number).Equal(1)
	gt.V(t, alerts[0].SecurityAdvisory.Identifiers[0].Value).Equal("CVE-2021-3749")
	gt.V(t, alerts[0].SecurityAdvisory.References[0].URL).Equal("https://nvd.nist.gov/vuln/detail/CVE-2021-3749")
	gt.V(t, alerts[0].SecurityVulnerability.FirstPatchedVersion.Identifier).Equal("0.21.2")
	gt.True(t, alerts[0].CreatedAt.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	gt.V(t, alerts[1].Number).Equal(3)
	gt.V(t, alerts[1].Dependency.Package.Ecosystem).Equal("maven")
	gt.True(t, alerts[1].SecurityVulnerability.FirstPatchedVersion == nil)
}

func TestListDependabotAlertsFullCursorPage(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/guardian/big/dependabot/alerts", func(w http.ResponseWriter, r *http.Request) {
		calls++
		count := 1
		if r.URL.Query().Get("after") == "" {
			count = 100
			w.Header().Set("Link", fmt.Sprintf(`<http://%s/repos/guardian/big/dependabot/alerts?per_page=100&after=bmV4dA>; rel="next"`, r.Host))
		}

		body := make([]map[string]any, 0, count)
		for i := range count {
			body = append(body, map[string]any{
				"number":            i + 1,
				"state":             "open",
				"dependency":        map[string]any{"scope": "runtime"},
				"security_advisory": map[string]any{"severity": "high"},
			})
		}
		gt.NoError(t, json.NewEncoder(w).Encode(body))
	})
	client := newTestClient(t, mux)

	alerts, err := client.ListDependabotAlerts(context.Background(), "guardian", "big")
	gt.NoError(t, err)
	gt.V(t, calls).Equal(2)
	gt.V(t, len(alerts)).Equal(101)
}

func TestGetBranchProtection(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/guardian/protected/branches/main/protection", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"required_status_checks":{"strict":false,"contexts":["ci"]},
			"required_pull_request_reviews":{"require_code_owner_reviews":true,"required_approving_review_count":2},
			"enforce_admins":{"enabled":true},
			"allow_force_pushes":{"enabled":false},
			"restrictions":{"users":[{"login":"octocat"}],"teams":[{"slug":"devx"}],"apps":[]}
		}`))
	})
	mux.HandleFunc("GET /repos/guardian/open/branches/main/protection", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Branch not protected"}`))
	})
	mux.HandleFunc("GET /repos/guardian/broken/branches/main/protection", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	client := newTestClient(t, mux)
	ctx := context.Background()

	t.Run("protected branch", func(t *testing.T) {
		p, err := client.GetBranchProtection(ctx, "guardian", "protected", "main")
		gt.NoError(t, err)
		gt.V(t, p.RequiredStatusChecks).Equal(&model.StatusChecks{Strict: false, Contexts: []string{"ci"}})
		gt.V(t, *p.RequiredPullRequestReviews.RequiredApprovingReviewCount).Equal(2)
		gt.True(t, *p.EnforceAdmins)
		gt.False(t, *p.AllowForcePushes)
		gt.True(t, p.AllowDeletions == nil)
		gt.V(t, p.Restrictions).Equal(&model.PushRestrictions{
			Users: []string{"octocat"},
			Teams: []string{"devx"},
			Apps:  []string{},
		})
	})

	t.Run("unprotected branch", func(t *testing.T) {
		p, err := client.GetBranchProtection(ctx, "guardian", "open", "main")
		gt.NoError(t, err)
		gt.True(t, p == nil)
	})

	t.Run("server error", func(t *testing.T) {
		_, err := client.GetBranchProtection(ctx, "guardian", "broken", "main")
		gt.Error(t, err)
	})
}

func TestUpdateBranchProtection(t *testing.T) {
	var body map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /repos/guardian/repo/branches/main/protection", func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{}`))
	})
	client := newTestClient(t, mux)

	update := &model.ProtectionUpdate{
		RequiredStatusChecks:         model.StatusChecks{Strict: true},
		EnforceAdmins:                true,
		RequireCodeOwnerReviews:      true,
		RequiredApprovingReviewCount: 2,
	}
	gt.NoError(t, client.UpdateBranchProtection(context.Background(), "guardian", "repo", "main", update))

	gt.V(t, body["enforce_admins"]).Equal(any(true))
	gt.V(t, body["allow_force_pushes"]).Equal(any(false))
	gt.V(t, body["allow_deletions"]).Equal(any(false))
	gt.V(t, body["restrictions"]).Equal(nil)
	gt.V(t, body["required_status_checks"]).Equal(any(map[string]any{"strict": true, "contexts": []any{}}))
	gt.V(t, body["required_pull_request_reviews"]).Equal(any(map[string]any{
		"require_code_owner_reviews":      true,
		"required_approving_review_count": float64(2),
	}))
}

func TestListDependabotAlertsIntegration(t *testing.T) {
	appID, err := strconv.ParseInt(testutil.GetEnvOrSkip(t, "TEST_GITHUB_APP_ID"), 10, 64)
	gt.NoError(t, err)
	installID, err := strconv.ParseInt(testutil.GetEnvOrSkip(t, "TEST_GITHUB_INSTALL_ID"), 10, 64)
	gt.NoError(t, err)
	pem := testutil.GetEnvOrSkip(t, "TEST_GITHUB_PRIVATE_KEY")
	owner := testutil.GetEnvOrSkip(t, "TEST_GITHUB_OWNER")
	repo := testutil.GetEnvOrSkip(t, "TEST_GITHUB_REPO")

	client, err := ghapp.New(types.GitHubAppID(appID), types.GitHubAppInstallID(installID), types.GitHubAppPrivateKey(pem))
	gt.NoError(t, err)

	_, err = client.ListDependabotAlerts(context.Background(), owner, repo)
	gt.NoError(t, err)
}
