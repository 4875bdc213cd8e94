package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/guardian/github-lens/pkg/domain/mock"
	"github.com/guardian/github-lens/pkg/infra"
	"github.com/guardian/github-lens/pkg/repository/memory"
)

func TestNew(t *testing.T) {
	t.Run("nothing configured", func(t *testing.T) {
		clients := infra.New()
		gt.True(t, clients.GitHub() == nil)
		gt.True(t, clients.BigQuery() == nil)
		gt.True(t, clients.Notifier() == nil)
		gt.True(t, clients.Snapshot() == nil)
		gt.True(t, clients.Result() == nil)
	})

	t.Run("options are applied", func(t *testing.T) {
		gh := &mock.GitHubMock{}
		bq := &mock.BigQueryMock{}
		notifier := &mock.NotifierMock{}
		repo := memory.New()

		clients := infra.New(
			infra.WithGitHub(gh),
			infra.WithBigQuery(bq),
			infra.WithNotifier(notifier),
			infra.WithSnapshot(repo),
			infra.WithResult(repo),
		)

		gt.V(t, clients.GitHub()).Equal(gh)
		gt.V(t, clients.BigQuery()).Equal(bq)
		gt.V(t, clients.Notifier()).Equal(notifier)
		gt.V(t, clients.Snapshot()).Equal(repo)
		gt.V(t, clients.Result()).Equal(repo)
	})
}
