package safe

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"

	"github.com/guardian/github-lens/pkg/utils/logging"
)

// Close closes c and logs a failure. Nil closers are ignored.
func Close(c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil && !errors.Is(err, io.EOF) {
		logging.Default().Warn("Fail to close resource", slog.Any("error", err))
	}
}

// Rollback rolls tx back unless it was already committed.
func Rollback(tx *sql.Tx) {
	if tx == nil {
		return
	}
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logging.Default().Warn("Fail to rollback transaction", slog.Any("error", err))
	}
}
