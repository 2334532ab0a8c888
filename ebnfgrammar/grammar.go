// Package ebnfgrammar builds combinator trees from EBNF grammars.
//
// Grammars use the notation understood by golang.org/x/exp/ebnf:
//
//	Number = Digit { Digit } .
//	Digit  = "0" … "9" .
//
// Expressions map onto matchers as follows: tokens become literals, ranges
// become single-character classes, sequences, alternatives and repetitions
// map onto their combinators, an option is an alternation with an empty
// sequence, and a production name is replaced by that production's tree.
// Recursive productions cannot be represented by an acyclic tree and are
// rejected.
package ebnfgrammar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/tliron/commonlog"
	"golang.org/x/exp/ebnf"
)

func logger() commonlog.Logger {
	return commonlog.GetLogger("pcomb.ebnfgrammar")
}

var (
	ErrUndefinedProduction = errors.New("undefined production")
	ErrRecursiveProduction = errors.New("recursive production")
	ErrBadRange            = errors.New("bad range")
	ErrUnsupported         = errors.New("unsupported expression")
)

// Grammar is a parsed EBNF grammar.
type Grammar struct {
	Name  string
	rules ebnf.Grammar
}

// Load reads a grammar from a file.
func Load(filename string) (*Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return Parse(filename, f)
}

// Parse reads a grammar from r. The name is used in error positions.
func Parse(name string, r io.Reader) (*Grammar, error) {
	rules, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return &Grammar{Name: name, rules: rules}, nil
}

// Productions returns the production names in sorted order.
func (g *Grammar) Productions() []string {
	names := make([]string, 0, len(g.rules))
	for name := range g.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the grammar defines the production.
func (g *Grammar) Has(name string) bool {
	_, ok := g.rules[name]
	return ok
}

// Verify checks that every production reachable from start is defined and
// that all productions are reachable from start.
func (g *Grammar) Verify(start string) error {
	if err := ebnf.Verify(g.rules, start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}
