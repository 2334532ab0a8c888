package ebnfgrammar

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/pcomb/combinator"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	g, err := Load(filepath.Join("testdata", "number.ebnf"))
	require.NoError(t, err)
	require.Equal(t, []string{"Digit", "Digits", "Fraction", "Number", "Sign"}, g.Productions())
	require.True(t, g.Has("Number"))
	require.False(t, g.Has("Exponent"))
	require.NoError(t, g.Verify("Number"))

	number, err := g.Build("Number")
	require.NoError(t, err)

	res, ok := combinator.Complete(number, "-12.5")
	require.True(t, ok)
	require.Equal(t, []string{"-", "1", "2", ".", "5"}, res.Fragments)

	_, ok = combinator.Complete(number, "12.")
	require.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.ebnf"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "open grammar")
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("bad", strings.NewReader(`A = "a" `))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse grammar")
}

func TestVerifyUnreachable(t *testing.T) {
	g, err := Parse("test", strings.NewReader(`
		A = "a" .
		B = "b" .
	`))
	require.NoError(t, err)
	require.Error(t, g.Verify("A"))
}

func TestBuild(t *testing.T) {
	const src = `
		Greeting = Word { " " Word } [ "!" ] .
		Word     = ( Lower | Upper ) { Lower } .
		Lower    = "a" … "z" .
		Upper    = "A" … "Z" .
		Empty    = .
	`
	tests := []struct {
		start  string
		input  string
		wantOK bool
		want   []string
	}{
		{"Greeting", "Hi there!", true, []string{"H", "i", " ", "t", "h", "e", "r", "e", "!"}},
		{"Greeting", "ok", true, []string{"o", "k"}},
		{"Greeting", "ok ", false, nil},
		{"Greeting", "42", false, nil},
		{"Word", "Go", true, []string{"G", "o"}},
		{"Empty", "", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.start+"/"+tt.input, func(t *testing.T) {
			m, err := Build("test", src, tt.start)
			require.NoError(t, err)

			res, ok := combinator.Complete(m, tt.input)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				require.Equal(t, tt.want, res.Fragments)
			}
		})
	}
}

func TestBuildAlternativeOrder(t *testing.T) {
	m, err := Build("test", `Op = "=" | "==" .`, "Op")
	require.NoError(t, err)

	res, ok := combinator.Parse(m, "==")
	require.True(t, ok)
	require.Equal(t, []string{"="}, res.Fragments)
	require.Equal(t, 1, res.Next.Offset())
}

func TestBuildPunctuationRange(t *testing.T) {
	m, err := Build("test", `P = "!" … "/" .`, "P")
	require.NoError(t, err)

	for _, in := range []string{"!", "-", "/", "+"} {
		_, ok := combinator.Complete(m, in)
		require.True(t, ok, in)
	}
	_, ok := combinator.Complete(m, "0")
	require.False(t, ok)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		start string
		want  error
	}{
		{"undefined start", `A = "a" .`, "B", ErrUndefinedProduction},
		{"undefined reference", `A = "a" C .`, "A", ErrUndefinedProduction},
		{"direct recursion", `A = "(" [ A ] ")" .`, "A", ErrRecursiveProduction},
		{"indirect recursion", "A = B .\nB = \"b\" A .", "A", ErrRecursiveProduction},
		{"wide range", `A = "aa" … "z" .`, "A", ErrBadRange},
		{"inverted range", `A = "z" … "a" .`, "A", ErrBadRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build("test", tt.src, tt.start)
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.want), "got %v", err)

			var buildErr *BuildError
			require.True(t, errors.As(err, &buildErr))
		})
	}
}

func TestBuildSharedNonRecursiveReference(t *testing.T) {
	// The same production used twice is not a cycle.
	m, err := Build("test", `
		Pair  = Digit "," Digit .
		Digit = "0" … "9" .
	`, "Pair")
	require.NoError(t, err)

	res, ok := combinator.Complete(m, "1,2")
	require.True(t, ok)
	require.Equal(t, []string{"1", ",", "2"}, res.Fragments)
}
