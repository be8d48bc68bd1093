package xplscript

import "fmt"

// Status is the closed set of outcomes every interpreter operation can
// return: a small int enum with a completeness check wired into init() so a
// forgotten description panics at program start rather than printing the
// bare "Status(9)" fallback at runtime.
type Status int

const (
	// StatusOk means success; the caller should continue.
	StatusOk Status = iota
	// StatusSuspend means a yield was requested; Run halts at the current
	// cursor and a later Run resumes from there.
	StatusSuspend
	// StatusErr is a generic failure: a token did not resolve to a known
	// interface name, or a host callback returned it directly.
	StatusErr
	// StatusBufferTooSmall means a popped string could not fit the
	// caller-supplied destination buffer.
	StatusBufferTooSmall
	// StatusNoComment means no comment starts at the cursor. Returned only
	// by the comment-skip probe; expected and used for flow control, never
	// propagated out of Run/Step.
	StatusNoComment
	// StatusNoParam means there is no parameter at the cursor: end of
	// input, or the next token is a known interface name or a comma.
	StatusNoParam
	// StatusParamTypeError means a numeric conversion left trailing
	// non-numeric characters in the popped token.
	StatusParamTypeError
	// StatusBadEscapeFormat means the host's escape-parse hook consumed
	// zero destination bytes.
	StatusBadEscapeFormat
)

var statusDescriptions = map[Status]string{
	StatusOk:              "Ok",
	StatusSuspend:         "Suspend",
	StatusErr:             "Err",
	StatusBufferTooSmall:  "BufferTooSmall",
	StatusNoComment:       "NoComment",
	StatusNoParam:         "NoParam",
	StatusParamTypeError:  "ParamTypeError",
	StatusBadEscapeFormat: "BadEscapeFormat",
}

func init() {
	for st := StatusOk; st <= StatusBadEscapeFormat; st++ {
		if _, ok := statusDescriptions[st]; !ok {
			panic(fmt.Sprintf("xplscript: Status %d has no description", int(st)))
		}
	}
}

func (s Status) String() string {
	if d, ok := statusDescriptions[s]; ok {
		return d
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// IsError reports whether s is anything other than StatusOk or
// StatusSuspend — i.e. whether Run/Step should treat it as a terminal
// failure rather than a cooperative stop.
func (s Status) IsError() bool {
	return s != StatusOk && s != StatusSuspend
}

// Composition selects how a pushed boolean combines with the accumulator
// already building up between an `if` and its `then`.
type Composition int

const (
	// CompositionNil means the next pushed boolean assigns the
	// accumulator outright.
	CompositionNil Composition = iota
	// CompositionOr combines with logical OR.
	CompositionOr
	// CompositionAnd combines with logical AND.
	CompositionAnd
)

func (c Composition) String() string {
	switch c {
	case CompositionNil:
		return "Nil"
	case CompositionOr:
		return "Or"
	case CompositionAnd:
		return "And"
	default:
		return fmt.Sprintf("Composition(%d)", int(c))
	}
}
