package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/infra/notify"
)

type Notification struct {
	notifyURL   types.WebhookURL `masq:"secret"`
	depGraphURL types.WebhookURL `masq:"secret"`
	timeout     time.Duration
}

func (x *Notification) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "notify-url",
			Usage:       "Endpoint receiving team notifications as JSON",
			Category:    "Notification",
			Destination: (*string)(&x.notifyURL),
			Sources:     cli.EnvVars("REPOCOP_NOTIFY_URL"),
		},
		&cli.StringFlag{
			Name:        "depgraph-url",
			Usage:       "Endpoint receiving dependency graph integration events",
			Category:    "Notification",
			Destination: (*string)(&x.depGraphURL),
			Sources:     cli.EnvVars("REPOCOP_DEPGRAPH_URL"),
		},
		&cli.DurationFlag{
			Name:        "notify-timeout",
			Usage:       "Timeout of one outgoing request",
			Category:    "Notification",
			Value:       30 * time.Second,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("REPOCOP_NOTIFY_TIMEOUT"),
		},
	}
}

func (x *Notification) Enabled() bool {
	return x.notifyURL != "" || x.depGraphURL != ""
}

func (x *Notification) New() *notify.Client {
	return notify.New(&http.Client{Timeout: x.timeout}, x.notifyURL, x.depGraphURL)
}

func (x *Notification) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("notifyURL.set", x.notifyURL != ""),
		slog.Bool("depGraphURL.set", x.depGraphURL != ""),
		slog.Duration("timeout", x.timeout),
	)
}
