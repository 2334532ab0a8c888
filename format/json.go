package format

import (
	"encoding/json"
	"io"
)

type JSONEncoder struct {
	w        io.Writer
	outcomes []Outcome
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(outcomes ...Outcome) error {
	e.outcomes = outcomes
	return write(e.w, e)
}

// MarshalText renders a single outcome as an object and several as an array.
func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := buildOutcomeData(e.outcomes)
	var text []byte
	var err error
	if len(data) == 1 {
		text, err = json.MarshalIndent(data[0], "", "  ")
	} else {
		text, err = json.MarshalIndent(data, "", "  ")
	}
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}

type outcomeData struct {
	Label     string   `json:"label,omitempty" yaml:"label,omitempty"`
	Matched   bool     `json:"matched" yaml:"matched"`
	Complete  bool     `json:"complete" yaml:"complete"`
	Offset    int      `json:"offset" yaml:"offset"`
	Length    int      `json:"length" yaml:"length"`
	Fragments []string `json:"fragments" yaml:"fragments"`
}

func buildOutcomeData(outcomes []Outcome) []outcomeData {
	data := make([]outcomeData, 0, len(outcomes))
	for _, o := range outcomes {
		frags := o.Fragments
		if frags == nil {
			frags = []string{}
		}
		data = append(data, outcomeData{
			Label:     o.Label,
			Matched:   o.Matched,
			Complete:  o.Complete(),
			Offset:    o.Offset,
			Length:    o.Length,
			Fragments: frags,
		})
	}
	return data
}
