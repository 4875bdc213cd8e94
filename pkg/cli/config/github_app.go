package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/infra/ghapp"
)

type GitHubApp struct {
	id         types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	baseURL    string
	rateLimit  float64
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("REPOCOP_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID of the organization",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("REPOCOP_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key (PEM)",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("REPOCOP_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Category:    "GitHub App",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("REPOCOP_GITHUB_BASE_URL"),
		},
		&cli.FloatFlag{
			Name:        "github-rate-limit",
			Usage:       "Max GitHub API requests per second, 0 disables the limit",
			Category:    "GitHub App",
			Value:       ghapp.DefaultRequestsPerSecond,
			Destination: &x.rateLimit,
			Sources:     cli.EnvVars("REPOCOP_GITHUB_RATE_LIMIT"),
		},
	}
}

// Enabled reports whether an app ID was given. Without it, steps that need
// GitHub are skipped.
func (x *GitHubApp) Enabled() bool {
	return x.id != 0
}

func (x *GitHubApp) New() (*ghapp.Client, error) {
	opts := []ghapp.Option{ghapp.WithRateLimit(x.rateLimit)}
	if x.baseURL != "" {
		opts = append(opts, ghapp.WithBaseURL(x.baseURL))
	}
	return ghapp.New(x.id, x.installID, x.privateKey, opts...)
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("BaseURL", x.baseURL),
		slog.Float64("RateLimit", x.rateLimit),
	)
}
