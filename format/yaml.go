package format

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"
)

type YAMLEncoder struct {
	w        io.Writer
	outcomes []Outcome
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(outcomes ...Outcome) error {
	e.outcomes = outcomes
	return write(e.w, e)
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	data := buildOutcomeData(e.outcomes)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	var err error
	if len(data) == 1 {
		err = enc.Encode(data[0])
	} else {
		err = enc.Encode(data)
	}
	if err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
