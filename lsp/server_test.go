package lsp

import (
	"testing"

	"github.com/dhamidi/pcomb/combinator"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func digitsLines() combinator.Matcher {
	digits := combinator.NewRepetition(combinator.MustClass("0-9"), 1)
	line := combinator.NewSequence(digits, combinator.NewLiteral("\n"))
	return combinator.NewRepetition(line, 1)
}

func TestDiagnoseComplete(t *testing.T) {
	require.Empty(t, Diagnose(digitsLines(), "Lines", "12\n34\n"))
}

func TestDiagnoseNoMatch(t *testing.T) {
	diags := Diagnose(digitsLines(), "Lines", "x\n")
	require.Len(t, diags, 1)
	require.Equal(t, "document does not match Lines", diags[0].Message)
	require.Equal(t, protocol.Position{}, diags[0].Range.Start)
	require.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
}

func TestDiagnoseTrailingInput(t *testing.T) {
	diags := Diagnose(digitsLines(), "Lines", "12\n3x\n")
	require.Len(t, diags, 1)
	require.Equal(t, "input not matched by Lines", diags[0].Message)
	require.Equal(t, protocol.Position{Line: 1, Character: 0}, diags[0].Range.Start)
	require.Equal(t, protocol.Position{Line: 2, Character: 0}, diags[0].Range.End)
}

func TestPositionAt(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		want   protocol.Position
	}{
		{"start", "abc", 0, protocol.Position{}},
		{"same line", "abc", 2, protocol.Position{Character: 2}},
		{"second line", "ab\ncd", 4, protocol.Position{Line: 1, Character: 1}},
		{"past end", "ab\ncd", 99, protocol.Position{Line: 1, Character: 2}},
		{"two byte rune", "é!", 2, protocol.Position{Character: 1}},
		{"surrogate pair", "😀!", 4, protocol.Position{Character: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PositionAt(tt.text, tt.offset))
		})
	}
}

func TestDiagnoseStoredDocument(t *testing.T) {
	ls := NewServer(digitsLines(), "Lines", "test")
	_, ok := ls.diagnose("file:///a.txt")
	require.False(t, ok)

	ls.docs["file:///a.txt"] = "1\n"
	diags, ok := ls.diagnose("file:///a.txt")
	require.True(t, ok)
	require.Empty(t, diags)

	ls.docs["file:///a.txt"] = "1\nx"
	diags, ok = ls.diagnose("file:///a.txt")
	require.True(t, ok)
	require.Len(t, diags, 1)
	require.Equal(t, protocol.Position{Line: 1, Character: 0}, diags[0].Range.Start)
}
