package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/guardian/github-lens/pkg/domain/interfaces"
	"github.com/guardian/github-lens/pkg/domain/types"
)

func (x *UseCase) snapshotRepository() (interfaces.SnapshotRepository, error) {
	if x.clients.Snapshot() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "snapshot repository is not configured")
	}
	return x.clients.Snapshot(), nil
}

func (x *UseCase) resultRepository() (interfaces.ResultRepository, error) {
	if x.clients.Result() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "result repository is not configured")
	}
	return x.clients.Result(), nil
}

// list loads one snapshot table, naming it in the error.
func list[T any](ctx context.Context, name string, f func(ctx context.Context) ([]T, error)) ([]T, error) {
	v, err := f(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load snapshot", goerr.V("table", name))
	}
	return v, nil
}
