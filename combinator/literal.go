package combinator

import "strconv"

// Literal matches an exact string. The comparison is case-sensitive.
type Literal struct {
	lit string
}

// NewLiteral returns a matcher for lit. An empty literal always succeeds
// without consuming input.
func NewLiteral(lit string) *Literal {
	return &Literal{lit: lit}
}

// Match implements Matcher.
func (l *Literal) Match(c Cursor) (Result, bool) {
	peeked := c.Peek(len(l.lit))
	if peeked != l.lit {
		return Result{}, false
	}
	return Result{Fragments: []string{peeked}, Next: c.Advance(len(l.lit))}, true
}

func (l *Literal) String() string {
	return strconv.Quote(l.lit)
}
