package combinator

// Sequence matches its children back to back, in order.
// It fails as soon as one child fails and never retries earlier children.
type Sequence struct {
	seq []Matcher
}

// NewSequence returns a matcher for the given children. With no children
// it succeeds without consuming input.
func NewSequence(seq ...Matcher) *Sequence {
	return &Sequence{seq: append([]Matcher(nil), seq...)}
}

// Match implements Matcher.
func (s *Sequence) Match(c Cursor) (Result, bool) {
	current := c
	var fragments []string
	for _, m := range s.seq {
		res, ok := m.Match(current)
		if !ok {
			return Result{}, false
		}
		fragments = append(fragments, res.Fragments...)
		current = res.Next
	}
	return Result{Fragments: fragments, Next: current}, true
}

func (s *Sequence) String() string {
	if len(s.seq) == 0 {
		return "()"
	}
	return "(" + describeAll(s.seq, " ") + ")"
}
