package xplscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_LoadReloadUnloadLifecycle(t *testing.T) {
	ctx, err := Open(nil)
	require.NoError(t, err)

	ctx.Load("cb1 cb2")
	assert.Equal(t, 0, ctx.Cursor())
	assert.False(t, ctx.AtEnd())

	ctx.cursor = 4
	ctx.Reload()
	assert.Equal(t, 0, ctx.Cursor(), "Reload must rewind the cursor")

	ctx.Unload()
	assert.Equal(t, "", ctx.script)
	assert.True(t, ctx.AtEnd())
}

func TestContext_LoadWhileAlreadyLoadedUnloadsFirst(t *testing.T) {
	ctx, err := Open(nil)
	require.NoError(t, err)

	ctx.Load("first")
	ctx.boolValue = true
	ctx.ifDepth = 3

	ctx.Load("second")
	assert.Equal(t, "second", ctx.script)
	assert.Equal(t, 0, ctx.Cursor())
	assert.Equal(t, uint(0), ctx.IfDepth())
	assert.False(t, ctx.BoolValue())
}

func TestContext_UserData(t *testing.T) {
	ctx, err := Open(nil, WithUserData(42))
	require.NoError(t, err)
	assert.Equal(t, 42, ctx.UserData())
}

func TestContext_AsError(t *testing.T) {
	ctx, err := Open(nil)
	require.NoError(t, err)
	ctx.Load("totally_unknown")

	st := ctx.Run()
	require.Equal(t, StatusErr, st)

	asErr := ctx.AsError(st)
	require.Error(t, asErr)
	var posErr PosError
	require.ErrorAs(t, asErr, &posErr)
	assert.Equal(t, StatusErr, posErr.Status)

	assert.Nil(t, ctx.AsError(StatusOk))
	assert.Nil(t, ctx.AsError(StatusSuspend))
}

func TestContext_CloseResetsState(t *testing.T) {
	ctx, err := Open([]Interface{{Name: "a", Callback: noop}})
	require.NoError(t, err)
	ctx.Load("a")
	ctx.Close()
	assert.Nil(t, ctx.funcs)
	assert.Equal(t, "", ctx.script)
}

func TestContext_NumericBufferSizeOverride(t *testing.T) {
	ctx, err := Open(nil, WithNumericBufferSize(4))
	require.NoError(t, err)
	ctx.Load("123456")
	_, status := ctx.PopLong()
	assert.Equal(t, StatusBufferTooSmall, status)
}
