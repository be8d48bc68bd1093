package xplscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newlineEscapeParse implements a conventional `\n` escape: it expects
// the cursor to sit on the backslash, consumes both source characters,
// and writes a single LF byte.
func newlineEscapeParse(ctx *Context, dst []byte) int {
	if len(dst) == 0 {
		return 0
	}
	if ctx.cursor+1 >= len(ctx.script) || ctx.script[ctx.cursor+1] != 'n' {
		return 0
	}
	dst[0] = '\n'
	ctx.cursor += 2
	return 1
}

func isBackslash(ch byte) bool { return ch == '\\' }

func newContextForParamTests(t *testing.T, script string, opts ...Option) *Context {
	t.Helper()
	ctx, err := Open(nil, opts...)
	require.NoError(t, err)
	ctx.Load(script)
	return ctx
}

func TestPopString_Unquoted(t *testing.T) {
	ctx := newContextForParamTests(t, `hello world`)
	buf := make([]byte, 16)
	n, status := ctx.PopString(buf)
	require.Equal(t, StatusOk, status)
	assert.Equal(t, "hello", string(buf[:n]))
	assert.Equal(t, byte(0), buf[n])
}

func TestPopString_Quoted(t *testing.T) {
	ctx := newContextForParamTests(t, `"a b c" tail`)
	buf := make([]byte, 16)
	n, status := ctx.PopString(buf)
	require.Equal(t, StatusOk, status)
	assert.Equal(t, "a b c", string(buf[:n]))
}

func TestPopString_QuotedDoesNotStopOnInteriorSeparator(t *testing.T) {
	ctx := newContextForParamTests(t, `"a, b: c" tail`)
	buf := make([]byte, 16)
	n, status := ctx.PopString(buf)
	require.Equal(t, StatusOk, status)
	assert.Equal(t, "a, b: c", string(buf[:n]))
}

func TestPopString_BufferExactFitSucceedsOneMoreOverflows(t *testing.T) {
	ctx := newContextForParamTests(t, `"abc"`)
	buf := make([]byte, 4) // "abc" + trailing NUL == 4 bytes exactly
	n, status := ctx.PopString(buf)
	require.Equal(t, StatusOk, status)
	assert.Equal(t, "abc", string(buf[:n]))

	ctx2 := newContextForParamTests(t, `"abcd"`)
	small := make([]byte, 4)
	_, status2 := ctx2.PopString(small)
	assert.Equal(t, StatusBufferTooSmall, status2)
}

func TestPopString_EscapeRoundTrip(t *testing.T) {
	ctx := newContextForParamTests(t, `"a\nb"`, WithEscapeHooks(isBackslash, newlineEscapeParse))
	buf := make([]byte, 16)
	n, status := ctx.PopString(buf)
	require.Equal(t, StatusOk, status)
	assert.Equal(t, "a\nb", string(buf[:n]))
}

func TestPopString_BadEscapeFormat(t *testing.T) {
	zeroWrite := func(ctx *Context, dst []byte) int { return 0 }
	ctx := newContextForParamTests(t, `"a\zb"`, WithEscapeHooks(isBackslash, zeroWrite))
	buf := make([]byte, 16)
	_, status := ctx.PopString(buf)
	assert.Equal(t, StatusBadEscapeFormat, status)
}

func TestHasParam(t *testing.T) {
	t.Run("end of input", func(t *testing.T) {
		ctx := newContextForParamTests(t, ``)
		assert.Equal(t, StatusNoParam, ctx.HasParam())
	})

	t.Run("known name is not a param", func(t *testing.T) {
		ctx, err := Open([]Interface{{Name: "cb", Callback: func(*Context) Status { return StatusOk }}})
		require.NoError(t, err)
		ctx.Load(`cb`)
		assert.Equal(t, StatusNoParam, ctx.HasParam())
	})

	t.Run("unresolved token is a param", func(t *testing.T) {
		ctx := newContextForParamTests(t, `123`)
		assert.Equal(t, StatusOk, ctx.HasParam())
	})
}

func TestPopLongAndPopDouble(t *testing.T) {
	t.Run("valid long", func(t *testing.T) {
		ctx := newContextForParamTests(t, `42`)
		v, status := ctx.PopLong()
		require.Equal(t, StatusOk, status)
		assert.EqualValues(t, 42, v)
	})

	t.Run("valid double", func(t *testing.T) {
		ctx := newContextForParamTests(t, `3.5`)
		v, status := ctx.PopDouble()
		require.Equal(t, StatusOk, status)
		assert.InDelta(t, 3.5, v, 1e-9)
	})

	t.Run("trailing garbage is a type error but still advances", func(t *testing.T) {
		ctx := newContextForParamTests(t, `12abc rest`)
		_, status := ctx.PopLong()
		assert.Equal(t, StatusParamTypeError, status)
		assert.Equal(t, "rest", ctx.script[ctx.cursor:])
	})
}

func TestPushBool_Composition(t *testing.T) {
	ctx := newContextForParamTests(t, ``)

	ctx.PushBool(true)
	assert.True(t, ctx.BoolValue())

	ctx.PushBool(false) // still Nil composition: assigns outright
	assert.False(t, ctx.BoolValue())

	// simulate `or`
	ctx.boolComposing = CompositionOr
	ctx.PushBool(true)
	assert.True(t, ctx.BoolValue())

	// simulate `and`
	ctx.boolComposing = CompositionAnd
	ctx.PushBool(false)
	assert.False(t, ctx.BoolValue())
}

func TestSkipComment(t *testing.T) {
	t.Run("skips a terminated comment", func(t *testing.T) {
		ctx := newContextForParamTests(t, `'a comment' rest`)
		require.Equal(t, StatusOk, ctx.SkipComment())
		assert.Equal(t, " rest", ctx.script[ctx.cursor:])
	})

	t.Run("not a comment leaves cursor untouched", func(t *testing.T) {
		ctx := newContextForParamTests(t, `rest`)
		before := ctx.Cursor()
		assert.Equal(t, StatusNoComment, ctx.SkipComment())
		assert.Equal(t, before, ctx.Cursor())
	})

	t.Run("unterminated comment is an error", func(t *testing.T) {
		ctx := newContextForParamTests(t, `'never closed`)
		assert.Equal(t, StatusErr, ctx.SkipComment())
	})
}
