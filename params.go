package xplscript

import (
	"strconv"

	"github.com/vippsas/xplscript/lex"
)

// HasParam probes whether a parameter sits at the cursor. It skips
// meaningless text first; at end of input, or when the next token resolves
// to a known interface name, there is no parameter. A token that fails to
// resolve to a known name is treated as a parameter (not as "no param") —
// HasParam only reports "no param" when PeekFunc actually found a function,
// and must not conflate an unresolved lookup with that case.
func (c *Context) HasParam() Status {
	if st := c.skipMeaningless(); st != StatusOk {
		return st
	}
	if c.AtEnd() {
		return StatusNoParam
	}
	// Built directly on PeekFunc: a resolved name or a comma both mean "no
	// param here". Peek permanently consumes a comma as a side effect even
	// though this call reports NoParam — a following HasParam will then see
	// whatever comes after it.
	status, _ := c.PeekFunc()
	if status == StatusOk {
		return StatusNoParam
	}
	return StatusOk // unresolved token: treat as a parameter
}

// SkipComment is the host-visible probe version of the lexical layer's
// comment-skip step: if the cursor sits on a single quote, the comment (and
// its closing quote) is consumed and Ok is returned; otherwise the cursor is
// left untouched and NoComment is returned. Unlike SkipMeaningless this does
// not loop or trim blanks — it probes for exactly one comment.
func (c *Context) SkipComment() Status {
	newPos, result := lex.SkipComment(c.script, c.cursor)
	switch result {
	case lex.Skipped:
		c.cursor = newPos
		return StatusOk
	case lex.Unterminated:
		c.cursor = newPos
		return StatusErr
	default:
		return StatusNoComment
	}
}

// scanQuoted consumes a quoted parameter starting at the opening `"`. If
// skip is false, copied/decoded bytes are written into dst, which is
// treated as a hard bound (even a zero-length dst overflows on the first
// byte); if skip is true, dst is ignored entirely and nothing is
// bounds-checked — used by SkipString, which only needs the cursor
// advanced. n is the number of bytes that would be/were written, not
// counting the trailing NUL that PopString adds itself.
func (c *Context) scanQuoted(dst []byte, skip bool) (n int, status Status) {
	c.cursor++ // consume opening quote
	for {
		if c.AtEnd() {
			return n, StatusErr
		}
		ch := c.script[c.cursor]
		if ch == '"' {
			c.cursor++
			return n, StatusOk
		}
		if c.hooks.EscapeDetect != nil && c.hooks.EscapeParse != nil && c.hooks.EscapeDetect(ch) {
			var room []byte
			if !skip {
				if n >= len(dst) {
					return n, StatusBufferTooSmall
				}
				room = dst[n:]
			}
			written := c.hooks.EscapeParse(c, room)
			if written == 0 {
				return n, StatusBadEscapeFormat
			}
			n += written
			continue
		}
		if !skip {
			if n >= len(dst) {
				return n, StatusBufferTooSmall
			}
			dst[n] = ch
		}
		n++
		c.cursor++
	}
}

// scanUnquoted copies characters up to the next separator or end of
// input. Unlike scanQuoted, it never interprets escapes. See scanQuoted
// for the meaning of skip.
func (c *Context) scanUnquoted(dst []byte, skip bool) (n int, status Status) {
	for !c.AtEnd() && !c.isSeparator(c.script[c.cursor]) {
		if !skip {
			if n >= len(dst) {
				return n, StatusBufferTooSmall
			}
			dst[n] = c.script[c.cursor]
		}
		n++
		c.cursor++
	}
	return n, StatusOk
}

// PopString extracts a string parameter at the cursor into dst, writing a
// trailing NUL after it, and returns the number of bytes written excluding
// that NUL. A quoted parameter ("...") may contain
// escapes via the host's EscapeDetect/EscapeParse hooks and does not
// terminate on an interior separator — only on its closing quote. An
// unquoted parameter runs to the next separator or end of input and never
// interprets escapes. Overflowing dst returns StatusBufferTooSmall with
// the cursor left wherever the overflow was detected.
func (c *Context) PopString(dst []byte) (n int, status Status) {
	if c.AtEnd() {
		return 0, StatusNoParam
	}
	// reserve room for the trailing NUL up front
	var body []byte
	if len(dst) > 0 {
		body = dst[:len(dst)-1]
	}
	if c.script[c.cursor] == '"' {
		n, status = c.scanQuoted(body, false)
	} else {
		n, status = c.scanUnquoted(body, false)
	}
	if status != StatusOk {
		return n, status
	}
	if n >= len(dst) {
		return n, StatusBufferTooSmall
	}
	dst[n] = 0
	if st := c.skipMeaningless(); st != StatusOk {
		return n, st
	}
	return n, StatusOk
}

// SkipString consumes a parameter at the cursor the same way PopString
// does, without copying it anywhere. Used when a callback needs to
// advance past a parameter it isn't interested in.
func (c *Context) SkipString() Status {
	if c.AtEnd() {
		return StatusNoParam
	}
	var status Status
	if c.script[c.cursor] == '"' {
		_, status = c.scanQuoted(nil, true)
	} else {
		_, status = c.scanUnquoted(nil, true)
	}
	if status != StatusOk {
		return status
	}
	return c.skipMeaningless()
}

// PopLong pops a string token and converts it with a base-0 integer parse
// (so "0x1F", "010", "42" all work). The token is always fully extracted
// before conversion is attempted, so a malformed numeric token still
// advances the cursor past it even though the Status reports
// StatusParamTypeError.
func (c *Context) PopLong() (int64, Status) {
	buf := make([]byte, c.numericBufferSize)
	n, status := c.PopString(buf)
	if status != StatusOk {
		return 0, status
	}
	v, err := strconv.ParseInt(string(buf[:n]), 0, 64)
	if err != nil {
		return 0, StatusParamTypeError
	}
	return v, StatusOk
}

// PopDouble is PopLong's floating point counterpart: strconv.ParseFloat
// requires the entire string to be numeric, giving the same
// full-consumption check as PopLong.
func (c *Context) PopDouble() (float64, Status) {
	buf := make([]byte, c.numericBufferSize)
	n, status := c.PopString(buf)
	if status != StatusOk {
		return 0, status
	}
	v, err := strconv.ParseFloat(string(buf[:n]), 64)
	if err != nil {
		return 0, StatusParamTypeError
	}
	return v, StatusOk
}

// PushBool updates the boolean accumulator per the current composition
// mode: Nil assigns outright, Or/And combine with the stored value.
func (c *Context) PushBool(value bool) {
	switch c.boolComposing {
	case CompositionOr:
		c.boolValue = c.boolValue || value
	case CompositionAnd:
		c.boolValue = c.boolValue && value
	default:
		c.boolValue = value
	}
}

// BoolValue returns the accumulator's current value. It is only
// meaningful between a sequence of condition pushes and the immediately
// following `then`; outside that window its value should be ignored.
func (c *Context) BoolValue() bool {
	return c.boolValue
}

// BoolComposing returns the accumulator's current composition mode.
func (c *Context) BoolComposing() Composition {
	return c.boolComposing
}
