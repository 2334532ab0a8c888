package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TextEncoder writes one tab separated line per outcome:
//
//	match	<label>	<offset>/<length>	"frag" "frag" ...
//	nomatch	<label>
type TextEncoder struct {
	w        io.Writer
	outcomes []Outcome
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(outcomes ...Outcome) error {
	e.outcomes = outcomes
	return write(e.w, e)
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, o := range e.outcomes {
		if !o.Matched {
			fmt.Fprintf(&sb, "nomatch\t%s\n", o.Label)
			continue
		}
		quoted := make([]string, len(o.Fragments))
		for i, f := range o.Fragments {
			quoted[i] = strconv.Quote(f)
		}
		fmt.Fprintf(&sb, "match\t%s\t%d/%d\t%s\n", o.Label, o.Offset, o.Length, strings.Join(quoted, " "))
	}
	return []byte(sb.String()), nil
}
