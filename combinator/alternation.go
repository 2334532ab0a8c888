package combinator

// Alternation tries its children in order against the same cursor and
// returns the first success. Declaration order decides ambiguous input,
// even when a later child would match more.
type Alternation struct {
	choices []Matcher
}

// NewAlternation returns a matcher for the given choices. With no choices
// it never matches.
func NewAlternation(choices ...Matcher) *Alternation {
	return &Alternation{choices: append([]Matcher(nil), choices...)}
}

// Match implements Matcher.
func (a *Alternation) Match(c Cursor) (Result, bool) {
	for _, m := range a.choices {
		if res, ok := m.Match(c); ok {
			return res, true
		}
	}
	return Result{}, false
}

func (a *Alternation) String() string {
	return "(" + describeAll(a.choices, " | ") + ")"
}
