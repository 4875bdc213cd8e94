package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/types"
)

// Policy builds the run configuration. Values come from model.DefaultConfig,
// then the optional policy file, then any non-zero flag.
type Policy struct {
	file                     string
	stage                    string
	org                      string
	ignoredPrefixes          []string
	digestSize               int
	remediationBatchSize     int
	dependencyGraphBatchSize int
}

// policyFile is the YAML layout of --policy-file.
type policyFile struct {
	Stage                     string         `yaml:"stage"`
	Org                       string         `yaml:"org"`
	IgnoredRepositoryPrefixes []string       `yaml:"ignored_repository_prefixes"`
	SLA                       map[string]int `yaml:"sla"`
	DigestSize                int            `yaml:"digest_size"`
	RemediationBatchSize      *int           `yaml:"remediation_batch_size"`
	DependencyGraphBatchSize  *int           `yaml:"dependency_graph_batch_size"`
	DigestAction              *struct {
		CTA string `yaml:"cta"`
		URL string `yaml:"url"`
	} `yaml:"digest_action"`
}

func (x *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy-file",
			Usage:       "YAML file overriding the default policy",
			Category:    "Policy",
			Destination: &x.file,
			Sources:     cli.EnvVars("REPOCOP_POLICY_FILE"),
		},
		&cli.StringFlag{
			Name:        "stage",
			Usage:       "Deployment stage [PROD|CODE|DEV], only PROD sends messages",
			Category:    "Policy",
			Destination: &x.stage,
			Sources:     cli.EnvVars("REPOCOP_STAGE", "STAGE"),
		},
		&cli.StringFlag{
			Name:        "org",
			Usage:       "GitHub organization",
			Category:    "Policy",
			Destination: &x.org,
			Sources:     cli.EnvVars("REPOCOP_GITHUB_ORG"),
		},
		&cli.StringSliceFlag{
			Name:        "ignored-prefix",
			Usage:       "Full name prefix of repositories to skip (repeatable)",
			Category:    "Policy",
			Destination: &x.ignoredPrefixes,
			Sources:     cli.EnvVars("REPOCOP_IGNORED_PREFIXES"),
		},
		&cli.IntFlag{
			Name:        "digest-size",
			Usage:       "Max vulnerabilities listed in one team digest",
			Category:    "Policy",
			Destination: &x.digestSize,
			Sources:     cli.EnvVars("REPOCOP_DIGEST_SIZE"),
		},
		&cli.IntFlag{
			Name:        "remediation-batch-size",
			Usage:       "Max repositories given branch protection per run",
			Category:    "Policy",
			Destination: &x.remediationBatchSize,
			Sources:     cli.EnvVars("REPOCOP_REMEDIATION_BATCH_SIZE"),
		},
		&cli.IntFlag{
			Name:        "depgraph-batch-size",
			Usage:       "Max dependency graph events per run",
			Category:    "Policy",
			Destination: &x.dependencyGraphBatchSize,
			Sources:     cli.EnvVars("REPOCOP_DEPGRAPH_BATCH_SIZE"),
		},
	}
}

func (x *Policy) Config() (model.Config, error) {
	cfg := model.DefaultConfig()

	if x.file != "" {
		if err := loadPolicyFile(x.file, &cfg); err != nil {
			return model.Config{}, err
		}
	}

	if x.stage != "" {
		cfg.Stage = types.Stage(x.stage)
	}
	if x.org != "" {
		cfg.Org = types.GitHubOrg(x.org)
	}
	if len(x.ignoredPrefixes) > 0 {
		cfg.IgnoredRepositoryPrefixes = x.ignoredPrefixes
	}
	if x.digestSize != 0 {
		cfg.DigestSize = x.digestSize
	}
	if x.remediationBatchSize != 0 {
		cfg.RemediationBatchSize = x.remediationBatchSize
	}
	if x.dependencyGraphBatchSize != 0 {
		cfg.DependencyGraphBatchSize = x.dependencyGraphBatchSize
	}

	if err := cfg.Validate(); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func loadPolicyFile(path string, cfg *model.Config) error {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return goerr.Wrap(err, "failed to read policy file", goerr.V("path", path))
	}

	var f policyFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return goerr.Wrap(types.ErrInvalidOption, "failed to parse policy file",
			goerr.V("path", path), goerr.V("error", err.Error()))
	}

	if f.Stage != "" {
		cfg.Stage = types.Stage(f.Stage)
	}
	if f.Org != "" {
		cfg.Org = types.GitHubOrg(f.Org)
	}
	if f.IgnoredRepositoryPrefixes != nil {
		cfg.IgnoredRepositoryPrefixes = f.IgnoredRepositoryPrefixes
	}
	if len(f.SLA) > 0 {
		sla := model.SLA{}
		for k, days := range f.SLA {
			sev := types.ParseSeverity(k)
			if sev == types.SeverityUnknown || days <= 0 {
				return goerr.Wrap(types.ErrInvalidOption, "invalid SLA entry in policy file",
					goerr.V("severity", k), goerr.V("days", days))
			}
			sla[sev] = days
		}
		cfg.SLA = sla
	}
	if f.DigestSize != 0 {
		cfg.DigestSize = f.DigestSize
	}
	if f.RemediationBatchSize != nil {
		cfg.RemediationBatchSize = *f.RemediationBatchSize
	}
	if f.DependencyGraphBatchSize != nil {
		cfg.DependencyGraphBatchSize = *f.DependencyGraphBatchSize
	}
	if f.DigestAction != nil {
		cfg.DigestAction = model.Action{CTA: f.DigestAction.CTA, URL: f.DigestAction.URL}
	}

	return nil
}

func (x *Policy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file", x.file),
		slog.String("stage", x.stage),
		slog.String("org", x.org),
		slog.Any("ignoredPrefixes", x.ignoredPrefixes),
		slog.Int("digestSize", x.digestSize),
		slog.Int("remediationBatchSize", x.remediationBatchSize),
		slog.Int("dependencyGraphBatchSize", x.dependencyGraphBatchSize),
	)
}
