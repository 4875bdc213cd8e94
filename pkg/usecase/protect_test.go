package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/guardian/github-lens/pkg/domain/mock"
	"github.com/guardian/github-lens/pkg/domain/model"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/engine/protection"
	"github.com/guardian/github-lens/pkg/infra"
	"github.com/guardian/github-lens/pkg/repository/memory"
	"github.com/guardian/github-lens/pkg/usecase"
)

func storedVerdicts(t *testing.T) *memory.Repository {
	result := memory.New()
	gt.NoError(t, result.ReplaceRuleVerdicts(context.Background(), []*model.RuleVerdicts{
		{FullName: "guardian/frontend", BranchProtection: false, EvaluatedOn: now},
		{FullName: "guardian/docs", BranchProtection: true, EvaluatedOn: now},
		{FullName: "guardian/toy", BranchProtection: false, EvaluatedOn: now},
	}))
	return result
}

func TestProtectBranches(t *testing.T) {
	gh := &mock.GitHubMock{
		GetDefaultBranchFunc: func(ctx context.Context, owner, repo string) (string, error) {
			return "main", nil
		},
		GetBranchProtectionFunc: func(ctx context.Context, owner, repo, branch string) (*model.BranchProtection, error) {
			return nil, nil
		},
		UpdateBranchProtectionFunc: func(ctx context.Context, owner, repo, branch string, update *model.ProtectionUpdate) error {
			return nil
		},
	}
	notifier := &mock.NotifierMock{
		NotifyFunc: func(ctx context.Context, n *model.Notification) error { return nil },
	}

	uc := usecase.New(infra.New(
		infra.WithSnapshot(newSnapshot()),
		infra.WithResult(storedVerdicts(t)),
		infra.WithGitHub(gh),
		infra.WithNotifier(notifier),
	), testConfig(types.StageProd), usecase.WithShuffler(testShuffler()))

	gt.NoError(t, uc.ProtectBranches(testContext()))

	updates := gh.UpdateBranchProtectionCalls()
	gt.A(t, updates).Length(1)
	gt.V(t, updates[0].Owner).Equal("guardian")
	gt.V(t, updates[0].Repo).Equal("frontend")
	gt.V(t, updates[0].Branch).Equal("main")
	gt.V(t, updates[0].Update).Equal(protection.Merge(nil))

	notices := notifier.NotifyCalls()
	gt.A(t, notices).Length(1)
	gt.V(t, notices[0].N.TeamSlug).Equal("devx")
	gt.S(t, notices[0].N.Subject).Contains("guardian/frontend")
}

func TestProtectBranchesAlreadyProtected(t *testing.T) {
	gh := &mock.GitHubMock{
		GetDefaultBranchFunc: func(ctx context.Context, owner, repo string) (string, error) {
			return "main", nil
		},
		GetBranchProtectionFunc: func(ctx context.Context, owner, repo, branch string) (*model.BranchProtection, error) {
			return &model.BranchProtection{
				RequiredPullRequestReviews: &model.PullRequestReviews{
					RequireCodeOwnerReviews:      ptr(true),
					RequiredApprovingReviewCount: ptr(2),
				},
				EnforceAdmins:    ptr(true),
				AllowForcePushes: ptr(false),
				AllowDeletions:   ptr(false),
			}, nil
		},
	}
	notifier := &mock.NotifierMock{}

	uc := usecase.New(infra.New(
		infra.WithSnapshot(newSnapshot()),
		infra.WithResult(storedVerdicts(t)),
		infra.WithGitHub(gh),
		infra.WithNotifier(notifier),
	), testConfig(types.StageProd), usecase.WithShuffler(testShuffler()))

	gt.NoError(t, uc.ProtectBranches(testContext()))
	gt.V(t, len(gh.UpdateBranchProtectionCalls())).Equal(0)
	gt.V(t, len(notifier.NotifyCalls())).Equal(0)
}

func TestProtectBranchesFailure(t *testing.T) {
	gh := &mock.GitHubMock{
		GetDefaultBranchFunc: func(ctx context.Context, owner, repo string) (string, error) {
			return "", errors.New("not found")
		},
	}
	notifier := &mock.NotifierMock{}

	uc := usecase.New(infra.New(
		infra.WithSnapshot(newSnapshot()),
		infra.WithResult(storedVerdicts(t)),
		infra.WithGitHub(gh),
		infra.WithNotifier(notifier),
	), testConfig(types.StageProd), usecase.WithShuffler(testShuffler()))

	err := uc.ProtectBranches(testContext())
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("some repositories failed to get branch protection")
	gt.V(t, len(notifier.NotifyCalls())).Equal(0)
}

func TestProtectBranchesWithoutGitHub(t *testing.T) {
	uc := usecase.New(infra.New(
		infra.WithSnapshot(newSnapshot()),
		infra.WithResult(storedVerdicts(t)),
	), testConfig(types.StageProd))

	gt.NoError(t, uc.ProtectBranches(testContext()))
}

func TestProtectBranchesBatchSize(t *testing.T) {
	gh := &mock.GitHubMock{}
	cfg := testConfig(types.StageProd)
	cfg.RemediationBatchSize = 0

	uc := usecase.New(infra.New(
		infra.WithSnapshot(newSnapshot()),
		infra.WithResult(storedVerdicts(t)),
		infra.WithGitHub(gh),
	), cfg)

	gt.NoError(t, uc.ProtectBranches(testContext()))
	gt.V(t, len(gh.GetDefaultBranchCalls())).Equal(0)
}
