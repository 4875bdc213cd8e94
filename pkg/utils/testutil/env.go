package testutil

import (
	"os"
	"testing"
	"time"
)

// GetEnvOrSkip returns the value of key, skipping the test when it is unset.
// Integration tests against Postgres, Firestore and BigQuery use it.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s is not set, skipping", key)
	}
	return value
}

// FixedClock returns a clock frozen at t, for logging.CtxWithTime.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
