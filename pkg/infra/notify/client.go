// Package notify delivers team notifications and dependency graph events to
// HTTP relays as JSON.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/guardian/github-lens/pkg/domain/interfaces"
	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/utils/logging"
	"github.com/guardian/github-lens/pkg/utils/safe"
)

// maxErrorBody limits how much of a failed response is kept in the error.
const maxErrorBody = 4096

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	httpClient  HTTPClient
	notifyURL   types.WebhookURL
	depGraphURL types.WebhookURL
}

var _ interfaces.Notifier = (*Client)(nil)

// New creates a client posting notifications to notifyURL and dependency
// graph events to depGraphURL. Either URL may be empty, the matching call
// then fails.
func New(httpClient HTTPClient, notifyURL, depGraphURL types.WebhookURL) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient:  httpClient,
		notifyURL:   notifyURL,
		depGraphURL: depGraphURL,
	}
}

func (x *Client) Notify(ctx context.Context, n *model.Notification) error {
	if err := x.post(ctx, x.notifyURL, n); err != nil {
		return goerr.Wrap(err, "failed to send notification",
			goerr.V("team", n.TeamSlug), goerr.V("subject", n.Subject))
	}
	logging.From(ctx).Info("Notification sent", slog.String("team", n.TeamSlug), slog.String("subject", n.Subject))
	return nil
}

func (x *Client) PublishDependencyGraphEvent(ctx context.Context, ev *model.DependencyGraphEvent) error {
	if err := x.post(ctx, x.depGraphURL, ev); err != nil {
		return goerr.Wrap(err, "failed to publish dependency graph event",
			goerr.V("repo", ev.Name), goerr.V("language", ev.Language))
	}
	logging.From(ctx).Info("Dependency graph event published", slog.String("repo", ev.Name), slog.String("language", ev.Language))
	return nil
}

func (x *Client) post(ctx context.Context, endpoint types.WebhookURL, body any) error {
	if endpoint == "" {
		return goerr.Wrap(types.ErrInvalidOption, "webhook URL is not configured")
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, string(endpoint), bytes.NewReader(raw))
	if err != nil {
		return goerr.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send request")
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return goerr.New("unexpected response status",
			goerr.V("status", resp.StatusCode), goerr.V("body", string(b)))
	}
	return nil
}
