package errutil

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"

	"github.com/guardian/github-lens/pkg/utils/logging"
)

// HandleError reports err to Sentry with its goerr values and the run ID as
// extras, then logs it. A nil err is ignored.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	runID, _ := logging.CtxRunID(ctx)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("run_id", string(runID))
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"run_id", runID,
		"sentry.EventID", evID,
	)
}
