package xplscript

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/require"
)

// TestRun_TraceMatchesExpectedCallSequence exercises the three-branch
// if/elseif/else/endif chain end to end and diffs the observed callback
// trace against the expected one with pretty.Compare, giving a readable
// diff on failure instead of a raw slice dump.
func TestRun_TraceMatchesExpectedCallSequence(t *testing.T) {
	trace := &traceRecorder{}
	funcs := []Interface{
		conditionInterface("cond_a", trace, false),
		conditionInterface("cond_b", trace, false),
		{Name: "cb_a", Callback: func(ctx *Context) Status { trace.record("cb_a"); return StatusOk }},
		{Name: "cb_b", Callback: func(ctx *Context) Status { trace.record("cb_b"); return StatusOk }},
		{Name: "cb_else", Callback: func(ctx *Context) Status { trace.record("cb_else"); return StatusOk }},
	}
	ctx, err := Open(funcs)
	require.NoError(t, err)
	ctx.Load(`if cond_a then cb_a elseif cond_b then cb_b else cb_else endif`)
	require.Equal(t, StatusOk, ctx.Run())

	expected := []string{"cond_a", "cond_b", "cb_else"}
	if diff := pretty.Compare(expected, trace.calls); diff != "" {
		t.Errorf("callback trace mismatch (-expected +got):\n%s", diff)
	}
}
