// Package format renders match outcomes for the command line.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/pcomb/combinator"
)

// Outcome is the result of matching one input.
type Outcome struct {
	// Label identifies the input, e.g. a file name or "line 3".
	Label     string
	Matched   bool
	Fragments []string
	// Offset is the byte offset right after the match.
	Offset int
	// Length is the byte length of the whole input.
	Length int
}

// NewOutcome converts the return values of a Matcher into an Outcome.
func NewOutcome(label string, input string, res combinator.Result, ok bool) Outcome {
	o := Outcome{Label: label, Matched: ok, Length: len(input)}
	if ok {
		o.Fragments = res.Fragments
		o.Offset = res.Next.Offset()
	}
	return o
}

// Complete reports whether the match consumed the whole input.
func (o Outcome) Complete() bool {
	return o.Matched && o.Offset >= o.Length
}

type Encoder interface {
	encoding.TextMarshaler
	Encode(outcomes ...Outcome) error
}

// NewEncoder returns the encoder registered under name.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text", "":
		return NewTextEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
