package memory

import (
	"context"

	"github.com/guardian/github-lens/pkg/domain/model"
)

func (r *Repository) ReplaceRuleVerdicts(ctx context.Context, verdicts []*model.RuleVerdicts) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.verdicts = clone(verdicts)
	return nil
}

func (r *Repository) ListRuleVerdicts(ctx context.Context) ([]*model.RuleVerdicts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clone(r.verdicts), nil
}

func (r *Repository) ReplaceVulnerabilities(ctx context.Context, vulns []*model.Vulnerability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vulns = clone(vulns)
	for _, v := range r.vulns {
		v.URLs = cloneStrings(v.URLs)
		v.CVEs = cloneStrings(v.CVEs)
	}
	return nil
}

func (r *Repository) ListVulnerabilities(ctx context.Context) ([]*model.Vulnerability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vulns := clone(r.vulns)
	for _, v := range vulns {
		v.URLs = cloneStrings(v.URLs)
		v.CVEs = cloneStrings(v.CVEs)
	}
	return vulns, nil
}
