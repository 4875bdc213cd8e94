package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/guardian/github-lens/pkg/domain/mock"
	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/infra"
	"github.com/guardian/github-lens/pkg/repository/memory"
	"github.com/guardian/github-lens/pkg/usecase"
	"github.com/guardian/github-lens/pkg/utils/logging"
	"github.com/guardian/github-lens/pkg/utils/testutil"
)

func storedVulnerabilities(t *testing.T) *memory.Repository {
	result := memory.New()
	gt.NoError(t, result.ReplaceVulnerabilities(context.Background(), []*model.Vulnerability{
		{
			Source: types.VulnSourceDependabot, FullName: "guardian/frontend", RepoOwner: "devx", Open: true,
			Severity: types.SeverityCritical, Package: "lodash", Ecosystem: "npm",
			URLs: []string{"https://github.com/advisories/GHSA-xxxx"}, CVEs: []string{"CVE-2024-0001"},
			AlertIssueDate: now.AddDate(0, 0, -3), IsPatchable: true,
		},
		{
			Source: types.VulnSourceSnyk, FullName: "guardian/orphan", RepoOwner: model.RepoOwnerUnknown, Open: true,
			Severity: types.SeverityHigh, Package: "jackson", Ecosystem: "maven", CVEs: []string{},
			AlertIssueDate: now,
		},
	}))
	return result
}

func TestSendVulnerabilityDigests(t *testing.T) {
	notifier := &mock.NotifierMock{
		NotifyFunc: func(ctx context.Context, n *model.Notification) error { return nil },
	}

	uc := usecase.New(infra.New(
		infra.WithSnapshot(newSnapshot()),
		infra.WithResult(storedVulnerabilities(t)),
		infra.WithNotifier(notifier),
	), testConfig(types.StageProd))

	gt.NoError(t, uc.SendVulnerabilityDigests(testContext()))

	calls := notifier.NotifyCalls()
	gt.A(t, calls).Length(1)
	n := calls[0].N
	gt.V(t, n.TeamSlug).Equal("devx")
	gt.V(t, n.Subject).Equal("Vulnerability Digest for DevX")
	gt.V(t, n.ThreadKey).Equal("vulnerability-digest-devx")
	gt.V(t, n.SourceSystem).Equal("repocop PROD")
	gt.V(t, n.Actions).Equal([]model.Action{model.DefaultDigestAction})
	gt.S(t, n.Message).Contains("Found 1 vulnerabilities across 1 repositories.")
	gt.S(t, n.Message).Contains("lodash")
}

func TestSendVulnerabilityDigestsSchedule(t *testing.T) {
	testCases := map[string]struct {
		stage types.Stage
		at    time.Time
	}{
		"not production":  {stage: types.StageCode, at: now},
		"second tuesday":  {stage: types.StageProd, at: now.AddDate(0, 0, 7)},
		"not a tuesday":   {stage: types.StageProd, at: now.AddDate(0, 0, 1)},
		"fourth tuesday":  {stage: types.StageProd, at: now.AddDate(0, 0, 21)},
		"development run": {stage: types.StageDev, at: now},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			notifier := &mock.NotifierMock{}
			uc := usecase.New(infra.New(
				infra.WithSnapshot(newSnapshot()),
				infra.WithResult(storedVulnerabilities(t)),
				infra.WithNotifier(notifier),
			), testConfig(tc.stage))

			ctx := logging.CtxWithTime(context.Background(), testutil.FixedClock(tc.at))
			gt.NoError(t, uc.SendVulnerabilityDigests(ctx))
			gt.V(t, len(notifier.NotifyCalls())).Equal(0)
		})
	}

	t.Run("third tuesday sends", func(t *testing.T) {
		notifier := &mock.NotifierMock{
			NotifyFunc: func(ctx context.Context, n *model.Notification) error { return nil },
		}
		uc := usecase.New(infra.New(
			infra.WithSnapshot(newSnapshot()),
			infra.WithResult(storedVulnerabilities(t)),
			infra.WithNotifier(notifier),
		), testConfig(types.StageProd))

		ctx := logging.CtxWithTime(context.Background(), testutil.FixedClock(now.AddDate(0, 0, 14)))
		gt.NoError(t, uc.SendVulnerabilityDigests(ctx))
		gt.A(t, notifier.NotifyCalls()).Length(1)
	})
}

func TestSendVulnerabilityDigestsFailure(t *testing.T) {
	notifier := &mock.NotifierMock{
		NotifyFunc: func(ctx context.Context, n *model.Notification) error {
			return errors.New("relay unavailable")
		},
	}

	uc := usecase.New(infra.New(
		infra.WithSnapshot(newSnapshot()),
		infra.WithResult(storedVulnerabilities(t)),
		infra.WithNotifier(notifier),
	), testConfig(types.StageProd))

	err := uc.SendVulnerabilityDigests(testContext())
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("some vulnerability digests failed to send")
}
