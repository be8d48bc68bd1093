// Package lex implements the lexical layer of xplscript: character
// classification and the cursor-advancing primitives (trim, comment
// skipping) that the rest of the interpreter builds on. It knows nothing
// about interfaces, scripts-as-a-whole, or control flow; the classifiers
// take a single byte or rune, and every cursor-advancing function takes a
// source string and a byte offset and returns a new offset.
package lex

import "github.com/smasher164/xid"

// IsBlank reports whether ch is a fixed whitespace character: space, tab,
// CR or LF.
func IsBlank(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// IsSingleQuote reports whether ch opens/closes a comment.
func IsSingleQuote(ch byte) bool {
	return ch == '\''
}

// IsDoubleQuote reports whether ch opens/closes a quoted string parameter.
func IsDoubleQuote(ch byte) bool {
	return ch == '"'
}

// IsComma reports whether ch is the no-op parameter separator.
func IsComma(ch byte) bool {
	return ch == ','
}

// IsColon reports whether ch is a fixed separator character.
func IsColon(ch byte) bool {
	return ch == ':'
}

// ExtraSeparator is a host-supplied predicate flagging additional
// separator characters beyond the fixed set.
type ExtraSeparator func(ch byte) bool

// IsSeparator reports whether ch is a separator: blank, comma, colon,
// single- or double-quote, or flagged by the host's extra predicate.
// extra may be nil.
func IsSeparator(ch byte, extra ExtraSeparator) bool {
	if IsBlank(ch) || IsComma(ch) || IsColon(ch) || IsSingleQuote(ch) || IsDoubleQuote(ch) {
		return true
	}
	return extra != nil && extra(ch)
}

// IsNameStart reports whether r is a valid first rune of a host interface
// name, per Unicode's identifier-start class.
func IsNameStart(r rune) bool {
	return xid.Start(r) || r == '_'
}

// IsNameContinue reports whether r is a valid non-initial rune of a host
// interface name.
func IsNameContinue(r rune) bool {
	return xid.Continue(r) || r == '_'
}

// Trim advances pos past consecutive blanks in s, returning the new
// position.
func Trim(s string, pos int) int {
	for pos < len(s) && IsBlank(s[pos]) {
		pos++
	}
	return pos
}

// CommentResult describes the outcome of SkipComment.
type CommentResult int

const (
	// NotAComment means the cursor was not sitting on a single-quote;
	// pos is returned unchanged.
	NotAComment CommentResult = iota
	// Skipped means a comment was found and fully consumed, including its
	// closing quote.
	Skipped
	// Unterminated means a comment was opened but never closed before the
	// end of input; callers should treat this as an error.
	Unterminated
)

// SkipComment consumes a single-quoted comment starting at pos, if any.
// It returns the position immediately past the closing quote on success.
func SkipComment(s string, pos int) (newPos int, result CommentResult) {
	if pos >= len(s) || !IsSingleQuote(s[pos]) {
		return pos, NotAComment
	}
	i := pos + 1
	for i < len(s) {
		if IsSingleQuote(s[i]) {
			return i + 1, Skipped
		}
		i++
	}
	return len(s), Unterminated
}

// SkipMeaningless repeatedly trims blanks and skips comments for as long
// as the cursor sits on a blank or a single-quote. It is idempotent:
// applying it twice in a row leaves pos unchanged.
func SkipMeaningless(s string, pos int, extra ExtraSeparator) (newPos int, unterminated bool) {
	for {
		trimmed := Trim(s, pos)
		if trimmed != pos {
			pos = trimmed
			continue
		}
		next, result := SkipComment(s, pos)
		switch result {
		case Skipped:
			pos = next
			continue
		case Unterminated:
			return next, true
		}
		return pos, false
	}
}
