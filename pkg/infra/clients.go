package infra

import (
	"github.com/guardian/github-lens/pkg/domain/interfaces"
)

// Clients bundles the external systems a run talks to. Any of them may be nil
// when not configured, and the use cases skip the corresponding step.
type Clients struct {
	github   interfaces.GitHub
	bqClient interfaces.BigQuery
	notifier interfaces.Notifier
	snapshot interfaces.SnapshotRepository
	result   interfaces.ResultRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) Notifier() interfaces.Notifier {
	return x.notifier
}
func (x *Clients) Snapshot() interfaces.SnapshotRepository {
	return x.snapshot
}
func (x *Clients) Result() interfaces.ResultRepository {
	return x.result
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithNotifier(client interfaces.Notifier) Option {
	return func(x *Clients) {
		x.notifier = client
	}
}

func WithSnapshot(repo interfaces.SnapshotRepository) Option {
	return func(x *Clients) {
		x.snapshot = repo
	}
}

func WithResult(repo interfaces.ResultRepository) Option {
	return func(x *Clients) {
		x.result = repo
	}
}
