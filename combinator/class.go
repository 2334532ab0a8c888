package combinator

import (
	"errors"
	"fmt"
	"regexp/syntax"
	"unicode"
	"unicode/utf8"
)

// ErrNotSingleCharacter is wrapped by ClassError when a pattern compiles
// to something wider than one character, such as "a]+[b".
var ErrNotSingleCharacter = errors.New("pattern does not describe a single character")

// ClassError is returned when a character class pattern does not compile.
type ClassError struct {
	Pattern string
	Err     error
}

func (e *ClassError) Error() string {
	return fmt.Sprintf("compile class [%s]: %v", e.Pattern, e.Err)
}

func (e *ClassError) Unwrap() error {
	return e.Err
}

// Class matches a single character against a bracket expression.
type Class struct {
	pattern string
	// ranges holds inclusive lo, hi pairs.
	ranges []rune
}

// NewClass compiles pattern as the interior of a bracket expression, so
// "0-9" matches one decimal digit, "^a" anything but 'a', and " " a space.
// Escapes and named classes follow Go's regexp syntax.
func NewClass(pattern string) (*Class, error) {
	re, err := syntax.Parse("["+pattern+"]", syntax.Perl)
	if err != nil {
		return nil, &ClassError{Pattern: pattern, Err: err}
	}
	re = re.Simplify()

	k := &Class{pattern: pattern}
	switch re.Op {
	case syntax.OpCharClass:
		k.ranges = append([]rune(nil), re.Rune...)
	case syntax.OpLiteral:
		if len(re.Rune) != 1 {
			return nil, &ClassError{Pattern: pattern, Err: ErrNotSingleCharacter}
		}
		k.ranges = []rune{re.Rune[0], re.Rune[0]}
		// The parser collapses case pairs such as "Aa" into one
		// case-folded literal.
		if re.Flags&syntax.FoldCase != 0 {
			for r := unicode.SimpleFold(re.Rune[0]); r != re.Rune[0]; r = unicode.SimpleFold(r) {
				k.ranges = append(k.ranges, r, r)
			}
		}
	case syntax.OpAnyChar:
		k.ranges = []rune{0, utf8.MaxRune}
	case syntax.OpAnyCharNotNL:
		k.ranges = []rune{0, '\n' - 1, '\n' + 1, utf8.MaxRune}
	case syntax.OpNoMatch:
		// empty class, never matches
	default:
		return nil, &ClassError{Pattern: pattern, Err: ErrNotSingleCharacter}
	}
	return k, nil
}

// MustClass is like NewClass but panics if the pattern does not compile.
// It is meant for grammars written as package-level variables.
func MustClass(pattern string) *Class {
	k, err := NewClass(pattern)
	if err != nil {
		panic(err)
	}
	return k
}

// Match implements Matcher. It consumes exactly one UTF-8 encoded character.
func (k *Class) Match(c Cursor) (Result, bool) {
	if c.AtEnd() {
		return Result{}, false
	}
	r, size := utf8.DecodeRuneInString(c.Text()[c.Offset():])
	if r == utf8.RuneError && size <= 1 {
		return Result{}, false
	}
	if !k.contains(r) {
		return Result{}, false
	}
	return Result{Fragments: []string{c.Peek(size)}, Next: c.Advance(size)}, true
}

func (k *Class) contains(r rune) bool {
	for i := 0; i+1 < len(k.ranges); i += 2 {
		if r >= k.ranges[i] && r <= k.ranges[i+1] {
			return true
		}
	}
	return false
}

func (k *Class) String() string {
	return "[" + k.pattern + "]"
}
