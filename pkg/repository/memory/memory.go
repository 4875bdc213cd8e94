// Package memory keeps the snapshot and the results in process memory. It
// backs tests and single shot runs fed from a snapshot file.
package memory

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/guardian/github-lens/pkg/domain/interfaces"
	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/model/dependabot"
	"github.com/guardian/github-lens/pkg/domain/model/snyk"
)

// Snapshot is the full input of a run, also the layout of a snapshot file.
type Snapshot struct {
	Repositories     []*model.Repository          `json:"repositories"`
	Branches         []*model.Branch              `json:"branches"`
	Ownership        []*model.Ownership           `json:"ownership"`
	Teams            []*model.Team                `json:"teams"`
	Languages        []*model.RepositoryLanguages `json:"languages"`
	WorkflowUsages   []*model.WorkflowUsage       `json:"workflow_usages"`
	DependabotAlerts []*dependabot.RepoAlert      `json:"dependabot_alerts"`
	SnykIssues       []*snyk.Issue                `json:"snyk_issues"`
	SnykProjects     []*snyk.Project              `json:"snyk_projects"`
}

type Repository struct {
	mu       sync.RWMutex
	snapshot Snapshot
	verdicts []*model.RuleVerdicts
	vulns    []*model.Vulnerability
}

var (
	_ interfaces.SnapshotRepository = (*Repository)(nil)
	_ interfaces.ResultRepository   = (*Repository)(nil)
)

func New() *Repository {
	return &Repository{}
}

// NewWithSnapshot starts from an already built snapshot.
func NewWithSnapshot(s *Snapshot) *Repository {
	r := New()
	r.snapshot = *s
	return r
}

// LoadSnapshot reads a JSON snapshot file.
func LoadSnapshot(path string) (*Repository, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read snapshot file", goerr.V("path", path))
	}

	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, goerr.Wrap(err, "failed to parse snapshot file", goerr.V("path", path))
	}
	return NewWithSnapshot(&s), nil
}

// Update lets tests change the snapshot in place.
func (r *Repository) Update(f func(s *Snapshot)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f(&r.snapshot)
}

func clone[T any](src []*T) []*T {
	dst := make([]*T, 0, len(src))
	for _, v := range src {
		c := *v
		dst = append(dst, &c)
	}
	return dst
}

func read[T any](r *Repository, get func(s *Snapshot) []*T) []*T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clone(get(&r.snapshot))
}

func cloneStrings(v []string) []string {
	if v == nil {
		return nil
	}
	return slices.Clone(v)
}
