package model

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// SLADaysCritical and SLADaysHigh are the days allowed to fix a finding of
	// that severity. Other severities have no deadline.
	SLADaysCritical = 2
	SLADaysHigh     = 30

	DefaultDigestSize               = 10
	DefaultRemediationBatchSize     = 5
	DefaultDependencyGraphBatchSize = 5
)

// SLA maps a severity to the number of days it may stay open.
type SLA map[types.Severity]int

func DefaultSLA() SLA {
	return SLA{
		types.SeverityCritical: SLADaysCritical,
		types.SeverityHigh:     SLADaysHigh,
	}
}

var DefaultDigestAction = Action{
	CTA: "See 'Prioritise the vulnerabilities' of these docs for vulnerability obligations",
	URL: "https://security-hq.gutools.co.uk/documentation/vulnerability-management",
}

// Config is the immutable run configuration handed to every entry point.
type Config struct {
	App                       string
	Stage                     types.Stage
	Org                       types.GitHubOrg
	IgnoredRepositoryPrefixes []string
	SLA                       SLA
	DigestSize                int
	RemediationBatchSize      int
	DependencyGraphBatchSize  int
	DigestAction              Action
}

func DefaultConfig() Config {
	return Config{
		App:                       "repocop",
		Stage:                     types.StageDev,
		Org:                       "guardian",
		IgnoredRepositoryPrefixes: []string{"guardian/esd-", "guardian/pluto-"},
		SLA:                       DefaultSLA(),
		DigestSize:                DefaultDigestSize,
		RemediationBatchSize:      DefaultRemediationBatchSize,
		DependencyGraphBatchSize:  DefaultDependencyGraphBatchSize,
		DigestAction:              DefaultDigestAction,
	}
}

// IsIgnored reports whether fullName belongs to another organization than
// Org or starts with one of the ignored prefixes. An empty Org matches any
// owner.
func (x Config) IsIgnored(fullName string) bool {
	if x.Org != "" {
		owner, _, _ := strings.Cut(fullName, "/")
		if !strings.EqualFold(owner, x.Org.String()) {
			return true
		}
	}
	return slices.ContainsFunc(x.IgnoredRepositoryPrefixes, func(prefix string) bool {
		return strings.HasPrefix(fullName, prefix)
	})
}

// SourceSystem identifies this deployment in outbound notifications.
func (x Config) SourceSystem() string {
	return x.App + " " + x.Stage.String()
}

func (x Config) Validate() error {
	if err := x.Stage.Validate(); err != nil {
		return err
	}
	if x.DigestSize <= 0 || x.RemediationBatchSize < 0 || x.DependencyGraphBatchSize < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "digest size must be positive and batch sizes must not be negative",
			goerr.V("digest_size", x.DigestSize),
			goerr.V("remediation_batch_size", x.RemediationBatchSize),
			goerr.V("dependency_graph_batch_size", x.DependencyGraphBatchSize),
		)
	}
	return nil
}

func (x Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("app", x.App),
		slog.String("stage", x.Stage.String()),
		slog.String("org", x.Org.String()),
		slog.Any("ignored_prefixes", x.IgnoredRepositoryPrefixes),
		slog.Any("sla", x.SLA),
		slog.Int("digest_size", x.DigestSize),
		slog.Int("remediation_batch_size", x.RemediationBatchSize),
		slog.Int("dependency_graph_batch_size", x.DependencyGraphBatchSize),
	)
}
