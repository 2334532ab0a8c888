package combinator

import "fmt"

// Repetition matches its child greedily, as many times as possible,
// and succeeds if that was at least min times. There is no upper bound
// and it never gives back repetitions to let a later matcher succeed.
type Repetition struct {
	child Matcher
	min   int
}

// NewRepetition returns a matcher repeating child at least min times.
// A negative min is treated as zero.
func NewRepetition(child Matcher, min int) *Repetition {
	if min < 0 {
		min = 0
	}
	return &Repetition{child: child, min: min}
}

// Match implements Matcher.
//
// If the child succeeds without consuming input, the loop stops after
// recording that success once. Repeating it would yield the same result
// forever, so the minimum counts as reached.
func (r *Repetition) Match(c Cursor) (Result, bool) {
	current := c
	var fragments []string
	count := 0
	for {
		res, ok := r.child.Match(current)
		if !ok {
			break
		}
		fragments = append(fragments, res.Fragments...)
		count++
		if res.Next.Offset() == current.Offset() {
			count = max(count, r.min)
			break
		}
		current = res.Next
	}
	if count < r.min {
		return Result{}, false
	}
	return Result{Fragments: fragments, Next: current}, true
}

// Min returns the minimum repeat count.
func (r *Repetition) Min() int {
	return r.min
}

func (r *Repetition) String() string {
	switch r.min {
	case 0:
		return "{ " + Describe(r.child) + " }"
	case 1:
		return Describe(r.child) + "+"
	default:
		return fmt.Sprintf("%s{%d,}", Describe(r.child), r.min)
	}
}
