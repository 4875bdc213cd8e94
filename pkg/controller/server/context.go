package server

import (
	"context"

	"github.com/guardian/github-lens/pkg/utils/logging"
)

// DetachContext returns a background context carrying the logger, request ID,
// run ID and clock of ctx, for work that outlives the request.
func DetachContext(ctx context.Context) context.Context {
	bgCtx := logging.With(context.Background(), logging.From(ctx))
	return logging.InheritContextValues(bgCtx, ctx)
}
