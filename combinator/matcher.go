package combinator

import (
	"fmt"
	"strings"
)

// Result is the outcome of a successful match.
type Result struct {
	// Fragments holds the matched substrings in input order, one per
	// terminal match.
	Fragments []string
	// Next is positioned immediately after the match.
	Next Cursor
}

// Matcher is implemented by every node of a matcher tree.
//
// Match reports false when the input at c does not match. It must not
// modify the matcher, and the caller's cursor stays valid for trying an
// alternative.
type Matcher interface {
	Match(c Cursor) (Result, bool)
}

// MatcherFunc adapts an ordinary function to the Matcher interface.
type MatcherFunc func(c Cursor) (Result, bool)

// Match calls f(c).
func (f MatcherFunc) Match(c Cursor) (Result, bool) {
	return f(c)
}

// Parse matches m against input starting at offset 0.
func Parse(m Matcher, input string) (Result, bool) {
	return m.Match(NewCursor(input))
}

// Complete is like Parse but only succeeds if the whole input was consumed.
func Complete(m Matcher, input string) (Result, bool) {
	res, ok := Parse(m, input)
	if !ok || !res.Next.AtEnd() {
		return Result{}, false
	}
	return res, true
}

// Describe returns a readable description of m.
func Describe(m Matcher) string {
	if s, ok := m.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("<%T>", m)
}

func describeAll(ms []Matcher, sep string) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = Describe(m)
	}
	return strings.Join(parts, sep)
}
