package safe_test

import (
	"errors"
	"io"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/guardian/github-lens/pkg/utils/safe"
)

type closer struct {
	err    error
	closed bool
}

func (x *closer) Close() error {
	x.closed = true
	return x.err
}

func TestClose(t *testing.T) {
	for name, err := range map[string]error{
		"ok":    nil,
		"eof":   io.EOF,
		"error": errors.New("disk gone"),
	} {
		t.Run(name, func(t *testing.T) {
			c := &closer{err: err}
			safe.Close(c)
			gt.True(t, c.closed)
		})
	}

	t.Run("nil", func(t *testing.T) {
		safe.Close(nil)
	})
}

func TestRollback(t *testing.T) {
	safe.Rollback(nil)
}
