package xplscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(*Context) Status { return StatusOk }

func TestOpen_SortsAndRejectsCollisions(t *testing.T) {
	t.Run("host interfaces sorted with built-ins", func(t *testing.T) {
		ctx, err := Open([]Interface{
			{Name: "zeta", Callback: noop},
			{Name: "alpha", Callback: noop},
		})
		require.NoError(t, err)
		var names []string
		for _, e := range ctx.funcs {
			names = append(names, e.Name)
		}
		assert.True(t, sortedStrings(names), "table must be sorted: %v", names)
	})

	t.Run("rejects a name colliding with a built-in", func(t *testing.T) {
		_, err := Open([]Interface{{Name: "if", Callback: noop}})
		assert.Error(t, err)
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		_, err := Open([]Interface{
			{Name: "a", Callback: noop},
			{Name: "a", Callback: noop},
		})
		assert.Error(t, err)
	})

	t.Run("rejects a name containing a separator character", func(t *testing.T) {
		_, err := Open([]Interface{{Name: "bad name", Callback: noop}})
		assert.Error(t, err)
	})

	t.Run("rejects a nil callback", func(t *testing.T) {
		_, err := Open([]Interface{{Name: "a", Callback: nil}})
		assert.Error(t, err)
	})
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestLookup_PrefixDoesNotFalseMatch(t *testing.T) {
	trace := &traceRecorder{}
	ctx, err := Open([]Interface{
		{Name: "if_special", Callback: func(*Context) Status { trace.record("if_special"); return StatusOk }},
	})
	require.NoError(t, err)

	// "iffy" must not match the built-in "if": its 3rd character 'f' is
	// not a separator, so the cursor's name isn't over where "if" is.
	ctx.Load(`iffy`)
	assert.Equal(t, StatusErr, ctx.Run())
}

func TestLookup_NameFollowedByQuoteOrCommaStillMatches(t *testing.T) {
	trace := &traceRecorder{}
	ctx, err := Open([]Interface{
		{Name: "cb", Callback: func(ctx *Context) Status {
			trace.record("cb")
			if ctx.HasParam() == StatusOk {
				return ctx.SkipString()
			}
			return StatusOk
		}},
	})
	require.NoError(t, err)

	// the first "cb" is followed by a comma, the second by a quoted param
	ctx.Load(`cb,cb"x"`)
	require.Equal(t, StatusOk, ctx.Run())
	assert.Equal(t, []string{"cb", "cb"}, trace.calls)
}
