package xplscript

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/vippsas/xplscript/lex"
)

// Callback is a host-registered function invokable from a script. It
// receives the context positioned immediately past its own name (after
// skip-meaningless) and may pop zero or more parameters before returning
// its Status.
type Callback func(ctx *Context) Status

// Interface is a single host-exposed name/callback pair — what the spec
// calls a "function table entry". Built-in control words (if, then,
// elseif, else, endif, or, and, yield) are registered the same way, as
// ordinary entries with interpreter-internal callbacks.
type Interface struct {
	Name     string
	Callback Callback
}

// entry is the sorted table's element type. It is a trivial rename of
// Interface kept distinct so the table's invariants (sorted, binary
// searchable) are a property of this package's internals, not of the
// host-visible Interface values passed to Open.
type entry = Interface

// reservedNames are the built-in control words; a host-registered
// Interface may not reuse one of these.
var reservedNames = []string{"if", "then", "elseif", "else", "endif", "or", "and", "yield"}

func isReservedName(name string) bool {
	for _, r := range reservedNames {
		if r == name {
			return true
		}
	}
	return false
}

// validateName enforces that an interface name is non-empty, contains no
// separator character, and starts/continues like a host identifier. This
// is the xid-based check the teacher's scanner applies to unquoted
// identifiers, reused here at registration time instead of at scan time,
// since interface names are script-facing literals written by whoever
// maintains the script, not user input.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("xplscript: interface name must not be empty")
	}
	for i, r := range name {
		if byte(r) < utf8.RuneSelf && lex.IsSeparator(name[i], nil) {
			return fmt.Errorf("xplscript: interface name %q contains a separator character", name)
		}
		if i == 0 {
			if !lex.IsNameStart(r) {
				return fmt.Errorf("xplscript: interface name %q does not start with a valid identifier character", name)
			}
			continue
		}
		if !lex.IsNameContinue(r) {
			return fmt.Errorf("xplscript: interface name %q contains an invalid identifier character", name)
		}
	}
	return nil
}

// buildTable validates, combines with the built-ins, and sorts the
// host-supplied interfaces. It mirrors the teacher's open-time
// "install function table, sort it" step (§4.2): the host hands us a
// slice, we count it (trivial with Go slices, unlike the null-terminated
// C array the spec describes) and sort in place.
func buildTable(funcs []Interface) ([]entry, error) {
	table := make([]entry, 0, len(funcs)+len(reservedNames))
	seen := make(map[string]bool, len(funcs))
	for _, f := range funcs {
		if isReservedName(f.Name) {
			return nil, fmt.Errorf("xplscript: interface name %q collides with a built-in control word", f.Name)
		}
		if err := validateName(f.Name); err != nil {
			return nil, err
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("xplscript: duplicate interface name %q", f.Name)
		}
		seen[f.Name] = true
		if f.Callback == nil {
			return nil, fmt.Errorf("xplscript: interface %q has a nil callback", f.Name)
		}
		table = append(table, entry{Name: f.Name, Callback: f.Callback})
	}

	table = append(table, builtins()...)

	sort.Slice(table, func(i, j int) bool {
		return table[i].Name < table[j].Name
	})

	return table, nil
}

// compareTableNameAtCursor compares a sorted table's entry name against
// the text sitting at the cursor, without extracting a token first. The
// first separator character encountered in the cursor text acts as the
// logical end of the cursor's name — this is the comparator trick from
// spec §4.2/§9 that lets `if` in a script match the `if` entry whether it
// is followed by a space, a quote, or anything else separator-shaped,
// while `iffy` never matches `if` (its 3rd character, 'f', is not a
// separator, so the cursor name is not over yet when the table name is).
//
// Returns <0 if tableName sorts before the cursor text, 0 on an exact
// match, >0 if it sorts after.
func (c *Context) compareTableNameAtCursor(tableName string) int {
	i := 0
	for i < len(tableName) {
		pos := c.cursor + i
		if pos >= len(c.script) {
			return 1 // cursor text ended, tableName didn't: tableName > cursor
		}
		sc := c.script[pos]
		if c.isSeparator(sc) {
			return 1 // cursor name ended early: tableName > cursor
		}
		tc := tableName[i]
		if sc < tc {
			return 1 // table char is larger at the first difference
		}
		if sc > tc {
			return -1
		}
		i++
	}
	// tableName fully matched against the cursor text; it's an exact match
	// only if the cursor text also ends here, i.e. the next character (if
	// any) is a separator.
	pos := c.cursor + i
	if pos < len(c.script) && !c.isSeparator(c.script[pos]) {
		return -1 // cursor text continues past tableName: tableName < cursor
	}
	return 0
}

// lookupAtCursor binary-searches the sorted table for an entry whose name
// matches the text at the cursor. ok is false if no entry matches.
func (c *Context) lookupAtCursor() (found entry, ok bool) {
	table := c.funcs
	lo, hi := 0, len(table)
	for lo < hi {
		mid := (lo + hi) / 2
		switch cmp := c.compareTableNameAtCursor(table[mid].Name); {
		case cmp == 0:
			return table[mid], true
		case cmp < 0:
			// table[mid].Name sorts before the cursor text: the match, if
			// any, is further along (table is sorted ascending).
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return entry{}, false
}
