// Package xplscript is a small embeddable command-script interpreter. A
// host links it in, exposes named callbacks ("interfaces") via Open, loads
// a plain-text script with Load, and drives it with Run/Step. Scripts are
// flat sequences of calls interspersed with a handful of built-in control
// words (if/then/elseif/else/endif, or, and, yield) and single-quoted
// comments; a callback pulls its own parameters off the cursor with the
// pop/skip methods on *Context. There is no parse tree: the interpreter
// re-scans the script by cursor on every Run, which is what makes yield's
// cooperative suspend/resume free.
package xplscript

import (
	"fmt"

	"github.com/vippsas/xplscript/lex"
)

// SeparatorDetect is a host hook flagging additional separator characters
// beyond the fixed set (blank, comma, colon, single/double quote).
type SeparatorDetect func(ch byte) bool

// EscapeDetect is a host hook: does ch, sitting inside a quoted string,
// begin an escape sequence?
type EscapeDetect func(ch byte) bool

// EscapeParse is a host hook invoked once EscapeDetect has flagged the
// character at the cursor. It must consume the escape's source characters
// by advancing ctx's cursor itself, write the decoded bytes into
// dst[0:cap(dst)], and return the number of bytes written. A return of
// zero signals a malformed escape (StatusBadEscapeFormat); the source
// cursor position at that point is undefined and the pop aborts.
type EscapeParse func(ctx *Context, dst []byte) (written int)

// Hooks bundles the host-pluggable character classifiers and opaque
// userdata, set once at Open and left untouched by Load/Reload/Unload.
type Hooks struct {
	SeparatorDetect SeparatorDetect
	EscapeDetect    EscapeDetect
	EscapeParse     EscapeParse
	UserData        any
}

// DefaultNumericBufferSize is the size of the stack-equivalent buffer
// PopLong/PopDouble use to extract a token before conversion. The
// original C implementation hardcodes 32 bytes (spec §9 Open Questions);
// xplscript keeps 32 as the default but lets a host override it via
// WithNumericBufferSize, since a Go caller can cheaply afford a bigger
// buffer for, say, very long floating point literals.
const DefaultNumericBufferSize = 32

// Context is the single mutable value that threads through every layer of
// the interpreter: the script and cursor, the sorted function table, the
// boolean accumulator and its composition mode, the if-nesting depth, and
// the host-configured hooks. A Context is owned by its creator; concurrent
// use of one Context from multiple goroutines is undefined (spec §5).
type Context struct {
	funcs []entry

	hooks Hooks

	numericBufferSize int

	script string
	cursor int
	loaded bool

	boolValue     bool
	boolComposing Composition
	ifDepth       uint
}

// Option configures a Context at Open time.
type Option func(*Context)

// WithSeparatorDetect installs a host-supplied extra separator predicate.
func WithSeparatorDetect(fn SeparatorDetect) Option {
	return func(c *Context) { c.hooks.SeparatorDetect = fn }
}

// WithEscapeHooks installs the escape-detect/escape-parse pair used while
// popping quoted strings. Both must be non-nil, or neither will fire.
func WithEscapeHooks(detect EscapeDetect, parse EscapeParse) Option {
	return func(c *Context) {
		c.hooks.EscapeDetect = detect
		c.hooks.EscapeParse = parse
	}
}

// WithUserData attaches opaque host state retrievable via Context.UserData.
func WithUserData(v any) Option {
	return func(c *Context) { c.hooks.UserData = v }
}

// WithNumericBufferSize overrides DefaultNumericBufferSize.
func WithNumericBufferSize(n int) Option {
	return func(c *Context) { c.numericBufferSize = n }
}

// Open installs funcs as the function table (sorted, combined with the
// built-in control words), stores the hooks, and zero-initializes all
// other state. It is the Go-idiomatic counterpart of the spec's
// open(ctx, funcs, separator_detect?): a fresh *Context stands in for the
// host allocating and then opening a context value.
func Open(funcs []Interface, opts ...Option) (*Context, error) {
	table, err := buildTable(funcs)
	if err != nil {
		return nil, err
	}
	ctx := &Context{
		funcs:             table,
		numericBufferSize: DefaultNumericBufferSize,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx, nil
}

// Close clears the context, equivalent to discarding it; kept as an
// explicit method so hosts that pool *Context values can recycle one
// instead of allocating afresh, matching the spec's close(ctx).
func (c *Context) Close() {
	*c = Context{}
}

// Load installs text as the script and resets the cursor to its start.
// If a script is already loaded, it is unloaded first (spec §6).
func (c *Context) Load(text string) {
	if c.loaded {
		c.Unload()
	}
	c.script = text
	c.cursor = 0
	c.loaded = true
}

// Reload rewinds the cursor to the start of the current script without
// touching the function table or hooks.
func (c *Context) Reload() {
	c.cursor = 0
	c.boolValue = false
	c.boolComposing = CompositionNil
	c.ifDepth = 0
}

// Unload clears the script and cursor.
func (c *Context) Unload() {
	c.script = ""
	c.cursor = 0
	c.loaded = false
	c.boolValue = false
	c.boolComposing = CompositionNil
	c.ifDepth = 0
}

// UserData returns the opaque value the host attached via WithUserData.
func (c *Context) UserData() any {
	return c.hooks.UserData
}

// Cursor returns the current byte offset into the loaded script.
func (c *Context) Cursor() int {
	return c.cursor
}

// AtEnd reports whether the cursor sits at the end of the script.
func (c *Context) AtEnd() bool {
	return c.cursor >= len(c.script)
}

// IfDepth returns the current if-nesting depth.
func (c *Context) IfDepth() uint {
	return c.ifDepth
}

func (c *Context) isSeparator(ch byte) bool {
	return lex.IsSeparator(ch, lex.ExtraSeparator(c.hooks.SeparatorDetect))
}

// skipMeaningless advances the cursor past blanks and single-quoted
// comments. An unterminated comment is treated as StatusErr, per the
// Open Question in spec §9 ("treat as Err in a reimplementation").
func (c *Context) skipMeaningless() Status {
	newPos, unterminated := lex.SkipMeaningless(c.script, c.cursor, lex.ExtraSeparator(c.hooks.SeparatorDetect))
	c.cursor = newPos
	if unterminated {
		return StatusErr
	}
	return StatusOk
}

func (c *Context) advancePast(name string) Status {
	c.cursor += len(name)
	return c.skipMeaningless()
}

// PosError is a positional error produced when a Run/Step call returns a
// non-Ok, non-Suspend Status and the host wants it as a Go error rather
// than a bare Status value. It mirrors the teacher's error.go /
// mssql_error.go: a typed struct carrying context, rendered with
// fmt.Sprintf rather than a bare errors.New.
type PosError struct {
	Cursor int
	Status Status
}

func (e PosError) Error() string {
	return fmt.Sprintf("xplscript: at byte offset %d: %s", e.Cursor, e.Status)
}

// AsError wraps a non-Ok, non-Suspend status returned from Run/Step into
// a Go error carrying the cursor position it occurred at, or returns nil
// for StatusOk/StatusSuspend.
func (c *Context) AsError(st Status) error {
	if !st.IsError() {
		return nil
	}
	return PosError{Cursor: c.cursor, Status: st}
}
