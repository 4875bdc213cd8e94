package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/guardian/github-lens/pkg/cli/config"
	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/types"
)

func runPolicy(t *testing.T, args ...string) (model.Config, error) {
	t.Helper()

	var (
		policy config.Policy
		cfg    model.Config
		cfgErr error
	)
	cmd := &cli.Command{
		Name:  "test",
		Flags: policy.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, cfgErr = policy.Config()
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	return cfg, cfgErr
}

func writePolicyFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestPolicyDefaults(t *testing.T) {
	cfg, err := runPolicy(t)
	gt.NoError(t, err)

	def := model.DefaultConfig()
	gt.V(t, cfg.Org).Equal(def.Org)
	gt.V(t, cfg.DigestSize).Equal(def.DigestSize)
	gt.V(t, cfg.RemediationBatchSize).Equal(def.RemediationBatchSize)
	gt.V(t, cfg.SLA[types.SeverityCritical]).Equal(model.SLADaysCritical)
}

func TestPolicyFlags(t *testing.T) {
	cfg, err := runPolicy(t,
		"--stage", "PROD",
		"--org", "example",
		"--ignored-prefix", "example/old-",
		"--ignored-prefix", "example/tmp-",
		"--digest-size", "3",
		"--remediation-batch-size", "7",
	)
	gt.NoError(t, err)

	gt.V(t, cfg.Stage).Equal(types.StageProd)
	gt.V(t, cfg.Org).Equal(types.GitHubOrg("example"))
	gt.V(t, cfg.IgnoredRepositoryPrefixes).Equal([]string{"example/old-", "example/tmp-"})
	gt.V(t, cfg.DigestSize).Equal(3)
	gt.V(t, cfg.RemediationBatchSize).Equal(7)
	gt.True(t, cfg.IsIgnored("example/tmp-test"))
}

func TestPolicyFile(t *testing.T) {
	path := writePolicyFile(t, `
stage: CODE
org: example
ignored_repository_prefixes: []
sla:
  critical: 1
  high: 14
digest_size: 5
remediation_batch_size: 0
digest_action:
  cta: Read the docs
  url: https://example.com/docs
`)

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := runPolicy(t, "--policy-file", path)
		gt.NoError(t, err)

		gt.V(t, cfg.Stage).Equal(types.StageCode)
		gt.V(t, cfg.Org).Equal(types.GitHubOrg("example"))
		gt.A(t, cfg.IgnoredRepositoryPrefixes).Length(0)
		gt.V(t, cfg.SLA).Equal(model.SLA{types.SeverityCritical: 1, types.SeverityHigh: 14})
		gt.V(t, cfg.DigestSize).Equal(5)
		gt.V(t, cfg.RemediationBatchSize).Equal(0)
		gt.V(t, cfg.DependencyGraphBatchSize).Equal(model.DefaultDependencyGraphBatchSize)
		gt.V(t, cfg.DigestAction.URL).Equal("https://example.com/docs")
	})

	t.Run("flags override file", func(t *testing.T) {
		cfg, err := runPolicy(t, "--policy-file", path, "--stage", "PROD", "--digest-size", "8")
		gt.NoError(t, err)

		gt.V(t, cfg.Stage).Equal(types.StageProd)
		gt.V(t, cfg.DigestSize).Equal(8)
	})
}

func TestPolicyInvalid(t *testing.T) {
	t.Run("unknown stage", func(t *testing.T) {
		_, err := runPolicy(t, "--stage", "prod")
		gt.Error(t, err)
	})

	t.Run("negative batch size", func(t *testing.T) {
		_, err := runPolicy(t, "--remediation-batch-size", "-1")
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runPolicy(t, "--policy-file", filepath.Join(t.TempDir(), "nope.yaml"))
		gt.Error(t, err)
	})

	t.Run("unknown SLA severity", func(t *testing.T) {
		path := writePolicyFile(t, "sla:\n  urgent: 3\n")
		_, err := runPolicy(t, "--policy-file", path)
		gt.Error(t, err)
	})

	t.Run("broken yaml", func(t *testing.T) {
		path := writePolicyFile(t, "stage: [PROD\n")
		_, err := runPolicy(t, "--policy-file", path)
		gt.Error(t, err)
	})
}
