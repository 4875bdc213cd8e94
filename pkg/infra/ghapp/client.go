package ghapp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/time/rate"

	"github.com/guardian/github-lens/pkg/domain/interfaces"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/utils/logging"
	"github.com/guardian/github-lens/pkg/utils/metrics"
)

// DefaultRequestsPerSecond stays well below the installation token quota of
// 5000 requests per hour when bursts are short.
const DefaultRequestsPerSecond = 10

type Client struct {
	client  *github.Client
	limiter *rate.Limiter
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*options)

type options struct {
	baseURL   string
	rps       float64
	transport http.RoundTripper
}

// WithBaseURL points the client at a GitHub Enterprise server or a test server.
func WithBaseURL(u string) Option {
	return func(x *options) { x.baseURL = u }
}

// WithRateLimit caps outgoing requests per second. Zero or less disables it.
func WithRateLimit(rps float64) Option {
	return func(x *options) { x.rps = rps }
}

// WithTransport replaces the transport below the app authentication.
func WithTransport(tr http.RoundTripper) Option {
	return func(x *options) { x.transport = tr }
}

func newOptions(opts []Option) *options {
	o := &options{rps: DefaultRequestsPerSecond, transport: http.DefaultTransport}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// New builds a client authenticated as the installation installID of app appID.
func New(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, opts ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App ID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App installation ID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App private key is empty")
	}

	o := newOptions(opts)
	itr, err := ghinstallation.New(o.transport, int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport", goerr.V("app_id", appID))
	}
	if o.baseURL != "" {
		itr.BaseURL = strings.TrimSuffix(o.baseURL, "/")
	}

	return newClient(&http.Client{Transport: itr}, o)
}

// NewWithHTTPClient uses httpClient as is. The caller handles authentication.
func NewWithHTTPClient(httpClient *http.Client, opts ...Option) (*Client, error) {
	return newClient(httpClient, newOptions(opts))
}

func newClient(httpClient *http.Client, o *options) (*Client, error) {
	client := github.NewClient(httpClient)
	if o.baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(o.baseURL, "/") + "/")
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub base URL", goerr.V("url", o.baseURL))
		}
		client.BaseURL = u
	}

	x := &Client{client: client}
	if o.rps > 0 {
		x.limiter = rate.NewLimiter(rate.Limit(o.rps), 1)
	}
	return x, nil
}

func (x *Client) wait(ctx context.Context) error {
	if x.limiter == nil {
		return nil
	}
	if err := x.limiter.Wait(ctx); err != nil {
		return goerr.Wrap(err, "rate limiter wait aborted")
	}
	return nil
}

func isNotFound(resp *github.Response, err error) bool {
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return true
	}
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
}

// do sends req and records the outcome under operation.
func (x *Client) do(ctx context.Context, operation string, req *http.Request, v any) (*github.Response, error) {
	if err := x.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := x.client.Do(ctx, req, v)
	x.observe(ctx, operation, resp, err)
	return resp, err
}

func (x *Client) observe(ctx context.Context, operation string, resp *github.Response, err error) {
	metrics.GitHubRequests.WithLabelValues(operation, metrics.ResultOf(err)).Inc()

	if resp != nil {
		logging.From(ctx).Debug("GitHub API response",
			slog.String("operation", operation),
			slog.Int("status", resp.StatusCode),
			slog.Int("remaining", resp.Rate.Remaining),
		)
	}
}

func (x *Client) GetDefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	req, err := x.client.NewRequest(http.MethodGet, "repos/"+owner+"/"+repo, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to build repository request")
	}

	var r github.Repository
	if _, err := x.do(ctx, "get_repository", req, &r); err != nil {
		return "", goerr.Wrap(err, "failed to get repository", goerr.V("owner", owner), goerr.V("repo", repo))
	}

	if r.GetDefaultBranch() == "" {
		return "", goerr.Wrap(types.ErrInvalidGitHubData, "repository has no default branch",
			goerr.V("owner", owner), goerr.V("repo", repo))
	}
	return r.GetDefaultBranch(), nil
}
