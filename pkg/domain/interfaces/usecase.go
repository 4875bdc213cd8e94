package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/guardian/github-lens/pkg/domain/model"
)

type UseCase interface {
	Run(ctx context.Context) error
	EvaluateRepositories(ctx context.Context) ([]*model.EvaluationResult, error)
	SendVulnerabilityDigests(ctx context.Context) error
	ProtectBranches(ctx context.Context) error
	SendDependencyGraphEvents(ctx context.Context) error
}
