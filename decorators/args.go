package decorators

import (
	"sort"
	"strings"

	"github.com/on-the-ground/toolbelt/decorators/internal/callkey"
)

// Keyer lets an argument tuple supply its own canonical memoization key.
type Keyer = callkey.Keyer

// Args is a call record for functions that take positional and named
// arguments. Named argument order never matters: two records with the same
// names and values produce the same key.
//
// Values must encode stably (see Memoize); that is a precondition, not a
// checked error.
type Args struct {
	Positional []any
	Named      map[string]any
}

// NewArgs builds a record from positional values.
func NewArgs(positional ...any) Args {
	return Args{Positional: positional}
}

// With returns a copy of a with one more named value.
func (a Args) With(name string, value any) Args {
	named := make(map[string]any, len(a.Named)+1)
	for k, v := range a.Named {
		named[k] = v
	}
	named[name] = value
	return Args{Positional: a.Positional, Named: named}
}

// At returns the positional value at i, or nil when out of range.
func (a Args) At(i int) any {
	if i < 0 || i >= len(a.Positional) {
		return nil
	}
	return a.Positional[i]
}

// Get returns the named value and whether it was supplied.
func (a Args) Get(name string) (any, bool) {
	v, ok := a.Named[name]
	return v, ok
}

// CallKey encodes positional values in order, then named values sorted by
// name.
func (a Args) CallKey() string {
	var sb strings.Builder
	sb.WriteString("args(")
	for i, v := range a.Positional {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(callkey.Encode(v))
	}
	sb.WriteString("; ")

	names := make([]string, 0, len(a.Named))
	for k := range a.Named {
		names = append(names, k)
	}
	sort.Strings(names)
	for i, k := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(callkey.Encode(a.Named[k]))
	}
	sb.WriteString(")")
	return sb.String()
}
