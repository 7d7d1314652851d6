//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"tiffintime-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var errOrderGone = errs.Class("order not found", errs.ErrNotFound)

func TestMark(t *testing.T) {
	cause := errors.New("no rows in result set")

	t.Run("matches cause, sentinel and class", func(t *testing.T) {
		err := errs.Mark(cause, errOrderGone)

		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, errOrderGone)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.NotErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("public message comes from the sentinel", func(t *testing.T) {
		msg, ok := errs.PublicMessage(errs.Wrap(errs.Mark(cause, errOrderGone), "load order"))

		assert.True(t, ok)
		assert.Equal(t, "order not found", msg)
	})

	t.Run("nil cause returns the sentinel", func(t *testing.T) {
		assert.Equal(t, errOrderGone, errs.Mark(nil, errOrderGone))
	})

	t.Run("unclassified error has no public message", func(t *testing.T) {
		_, ok := errs.PublicMessage(errs.Wrap(cause, "load order"))
		assert.False(t, ok)
	})
}
