package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/guardian/github-lens/pkg/domain/types"
)

type ctxRequestIDKey struct{}

// CtxRequestID returns the request ID of ctx, creating one when missing.
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		return id, ctx
	}

	id := types.NewRequestID()
	return id, context.WithValue(ctx, ctxRequestIDKey{}, id)
}

type ctxRunIDKey struct{}

// CtxRunID returns the ID of the evaluation run ctx belongs to, creating one
// when missing. Every log line and persisted record of a run shares it.
func CtxRunID(ctx context.Context) (types.RunID, context.Context) {
	if id, ok := ctx.Value(ctxRunIDKey{}).(types.RunID); ok {
		return id, ctx
	}

	id := types.NewRunID()
	return id, context.WithValue(ctx, ctxRunIDKey{}, id)
}

type ctxLoggerKey struct{}

func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns the logger of ctx or the default one.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type ctxTimeKey struct{}

type TimeFunc func() time.Time

// CtxTime is the clock of a run. Tests pin it with CtxWithTime.
func CtxTime(ctx context.Context) time.Time {
	if f, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		return f()
	}
	return time.Now()
}

func CtxWithTime(ctx context.Context, f TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, f)
}

// InheritContextValues copies the request ID, run ID and clock from src to
// dst. The logger is not copied.
func InheritContextValues(dst, src context.Context) context.Context {
	if id, ok := src.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		dst = context.WithValue(dst, ctxRequestIDKey{}, id)
	}
	if id, ok := src.Value(ctxRunIDKey{}).(types.RunID); ok {
		dst = context.WithValue(dst, ctxRunIDKey{}, id)
	}
	if f, ok := src.Value(ctxTimeKey{}).(TimeFunc); ok {
		dst = context.WithValue(dst, ctxTimeKey{}, f)
	}
	return dst
}
