package xplscript

// builtins returns the interpreter's control-word table entries. They are
// registered through the exact same mechanism as host interfaces (spec
// §4.2: "Built-ins are registered with the same mechanism"), which is why
// `if`, `then` and friends are ordinary Callback values here rather than
// special-cased in Step.
func builtins() []entry {
	return []entry{
		{Name: "if", Callback: ctrlIf},
		{Name: "then", Callback: ctrlThen},
		{Name: "elseif", Callback: ctrlMarker},
		{Name: "else", Callback: ctrlMarker},
		{Name: "endif", Callback: ctrlMarker},
		{Name: "or", Callback: ctrlOr},
		{Name: "and", Callback: ctrlAnd},
		{Name: "yield", Callback: ctrlYield},
	}
}

// ctrlIf just opens a nesting level; the condition calls that follow feed
// the accumulator via PushBool, and `then` consumes it.
func ctrlIf(ctx *Context) Status {
	ctx.ifDepth++
	return StatusOk
}

// ctrlOr/ctrlAnd select how the next PushBool combines with the
// accumulator.
func ctrlOr(ctx *Context) Status {
	ctx.boolComposing = CompositionOr
	return StatusOk
}

func ctrlAnd(ctx *Context) Status {
	ctx.boolComposing = CompositionAnd
	return StatusOk
}

// ctrlYield is the only built-in that itself returns a non-Ok status in
// ordinary (non-skipped) execution: it suspends the run immediately, with
// the cursor left just past "yield" so a later Run resumes there.
func ctrlYield(ctx *Context) Status {
	return StatusSuspend
}

// ctrlMarker is the no-op behavior of elseif/else/endif when reached
// through plain dispatch. Most markers are consumed directly by ctrlThen's
// execute/skip/drain machinery; this fires for an `elseif` that
// skipFailedBranch left unconsumed (so the following condition and `then`
// run next) and for a stray marker with no matching `if`. Returning Ok
// rather than failing keeps all three inert when executed directly.
func ctrlMarker(ctx *Context) Status {
	return StatusOk
}

// PeekFunc looks up the interface the cursor is currently sitting on,
// without consuming it.
//
//   - Skips blanks/comments first.
//   - End of input after that skip is StatusOk with no entry: a script
//     that is nothing but whitespace/comments (spec §8) must let Run
//     terminate cleanly, not fail with StatusErr.
//   - A comma is consumed (it's a no-op parameter separator) and reported
//     as StatusOk with no entry.
//   - An unresolved token is StatusErr with no entry.
//   - A resolved token is StatusOk with that entry; the cursor is left
//     at the start of the name (Step is what advances past it).
func (c *Context) PeekFunc() (Status, *Interface) {
	if st := c.skipMeaningless(); st != StatusOk {
		return st, nil
	}
	if c.AtEnd() {
		return StatusOk, nil
	}
	if c.script[c.cursor] == ',' {
		c.cursor++
		return StatusOk, nil
	}
	found, ok := c.lookupAtCursor()
	if !ok {
		return StatusErr, nil
	}
	return StatusOk, &found
}

// Step executes exactly one script item: a comma no-op, or a single named
// call (built-in or host interface), advancing the cursor past its name
// and any following skip-meaningless run before invoking its callback.
func (c *Context) Step() Status {
	status, found := c.PeekFunc()
	if status != StatusOk {
		return status
	}
	if found == nil {
		return StatusOk // comma consumed by PeekFunc
	}
	c.cursor += len(found.Name)
	if st := c.skipMeaningless(); st != StatusOk {
		return st
	}
	return found.Callback(c)
}

// Run repeatedly invokes Step while the cursor has not reached the end of
// the script and the last status was Ok. Suspend and Err both halt the
// loop and are returned to the caller; re-invoking Run after a Suspend
// resumes exactly where the yielding word left the cursor.
func (c *Context) Run() Status {
	for !c.AtEnd() {
		st := c.Step()
		if st != StatusOk {
			return st
		}
	}
	return StatusOk
}

// ctrlThen is where almost all of the control-flow complexity lives. It is
// invoked via ordinary Step dispatch once the cursor reaches a `then`, with
// the accumulator already populated by whatever condition calls preceded
// it.
func ctrlThen(ctx *Context) Status {
	taken := ctx.boolValue
	ctx.boolValue = false
	ctx.boolComposing = CompositionNil

	if taken {
		return ctx.executeBranchBody()
	}
	return ctx.skipFailedBranch()
}

// executeBranchBody runs the taken branch's body with the ordinary
// Peek+Step loop, stopping when it reaches this if-chain's elseif/else/
// endif at the current nesting depth.
//
//   - Landing on `endif`: consume it, decrement if_depth, done.
//   - Landing on `elseif`/`else`: a prior branch already ran, so every
//     remaining branch in the chain (conditions and bodies alike) must be
//     skipped without execution, down to the final `endif` — drainChain
//     does exactly that.
func (c *Context) executeBranchBody() Status {
	for {
		status, found := c.PeekFunc()
		if status != StatusOk {
			return status
		}
		if found != nil {
			switch found.Name {
			case "endif":
				if st := c.advancePast("endif"); st != StatusOk {
					return st
				}
				c.ifDepth--
				return StatusOk
			case "elseif", "else":
				return c.drainChain()
			}
		}
		if st := c.Step(); st != StatusOk {
			return st
		}
	}
}

// drainChain is used once a taken branch has run its course and the
// cursor sits on a trailing elseif/else at the chain's own nesting depth.
// It walks forward consuming each marker and skipping its condition/body
// (via skipToMarkerAtDepth, which treats every non-marker token —
// including `then`, `or`, `and`, and host callbacks — as something to
// walk past without invoking) until it reaches and consumes the chain's
// final `endif`.
func (c *Context) drainChain() Status {
	entryDepth := c.ifDepth
	for {
		marker, status := c.skipToMarkerAtDepth(entryDepth)
		if status != StatusOk {
			return status
		}
		if marker == "endif" {
			if st := c.advancePast("endif"); st != StatusOk {
				return st
			}
			c.ifDepth--
			return StatusOk
		}
		if st := c.advancePast(marker); st != StatusOk {
			return st
		}
	}
}

// skipFailedBranch handles a `then` whose condition was false (spec
// §4.4 "If the condition was false"). It walks past the untaken body with
// the branch skipper and then decides what to do based on what it landed
// on:
//
//   - `elseif`: leave the cursor right there, unconsumed. The next
//     Step/Run pass will see it as an inert marker and continue parsing
//     the elseif's own condition and `then`, exactly as if the script had
//     started fresh at that point.
//   - `else`: consume it and execute its body (no condition to check —
//     it's the fallback).
//   - `endif`: consume it, decrement if_depth, done.
func (c *Context) skipFailedBranch() Status {
	entryDepth := c.ifDepth
	marker, status := c.skipToMarkerAtDepth(entryDepth)
	if status != StatusOk {
		return status
	}
	switch marker {
	case "elseif":
		return StatusOk
	case "else":
		if st := c.advancePast("else"); st != StatusOk {
			return st
		}
		return c.executeBranchBody()
	default: // "endif"
		if st := c.advancePast("endif"); st != StatusOk {
			return st
		}
		c.ifDepth--
		return StatusOk
	}
}

// skipToMarkerAtDepth is the branch skipper from spec §4.5: it advances
// the cursor past one branch's body, respecting nesting, and returns the
// name of the elseif/else/endif it lands on at entryDepth — without
// consuming that marker.
//
// Every other function name encountered (then, or, and, yield, any host
// interface) is walked past without invoking its callback; only `if`
// (bumps depth) and elseif/else/endif at a depth other than entryDepth
// (endif additionally drops depth) are treated specially. A token that
// doesn't resolve to a known interface and isn't a comma is a stray data
// token and is skipped by skipUnknownToken.
func (c *Context) skipToMarkerAtDepth(entryDepth uint) (marker string, status Status) {
	for {
		if c.AtEnd() {
			return "", StatusErr
		}
		st, found := c.PeekFunc()
		if st == StatusErr {
			c.skipUnknownToken()
			continue
		}
		if st != StatusOk {
			return "", st
		}
		if found == nil {
			continue // comma, already consumed by PeekFunc
		}
		switch found.Name {
		case "if":
			c.ifDepth++
			if st := c.advancePast("if"); st != StatusOk {
				return "", st
			}
		case "elseif", "else", "endif":
			if c.ifDepth == entryDepth {
				return found.Name, StatusOk
			}
			if found.Name == "endif" {
				c.ifDepth--
			}
			if st := c.advancePast(found.Name); st != StatusOk {
				return "", st
			}
		default:
			if st := c.advancePast(found.Name); st != StatusOk {
				return "", st
			}
		}
	}
}

// skipUnknownToken coarsely consumes one stray data token — an unquoted
// literal or a quoted string that happens to appear where a parameter
// would, inside a branch that isn't being executed. Per spec §4.5, this
// is intentionally coarse: it advances one character and then continues
// until the next separator, which means a quoted string containing
// interior blanks is not skipped as a single unit. The body isn't being
// executed, so the token only needs to be skipped, not parsed correctly.
func (c *Context) skipUnknownToken() {
	if c.cursor < len(c.script) {
		c.cursor++
	}
	for c.cursor < len(c.script) && !c.isSeparator(c.script[c.cursor]) {
		c.cursor++
	}
}
