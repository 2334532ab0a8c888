package ebnfgrammar

import (
	"fmt"
	"regexp/syntax"
	"strings"
	"text/scanner"
	"unicode/utf8"

	"github.com/dhamidi/pcomb/combinator"
	"golang.org/x/exp/ebnf"
)

// BuildError describes where a grammar could not be turned into matchers.
type BuildError struct {
	Production string
	Pos        scanner.Position
	Err        error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: production %s: %v", e.Pos, e.Production, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

type builder struct {
	rules    ebnf.Grammar
	visiting map[string]bool
}

// Build returns the matcher tree for the start production.
func (g *Grammar) Build(start string) (combinator.Matcher, error) {
	b := &builder{rules: g.rules, visiting: make(map[string]bool)}
	m, err := b.name(start, start, scanner.Position{Filename: g.Name})
	if err != nil {
		return nil, err
	}
	logger().Debugf("built %s from %s: %s", start, g.Name, combinator.Describe(m))
	return m, nil
}

// Build parses src and builds the matcher tree for start.
func Build(name, src, start string) (combinator.Matcher, error) {
	g, err := Parse(name, strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	return g.Build(start)
}

func (b *builder) name(name, context string, pos scanner.Position) (combinator.Matcher, error) {
	prod, ok := b.rules[name]
	if !ok {
		return nil, &BuildError{Production: context, Pos: pos, Err: fmt.Errorf("%w %s", ErrUndefinedProduction, name)}
	}

	// Cycle detection: a production that refers back to itself would need
	// a cyclic tree.
	if b.visiting[name] {
		return nil, &BuildError{Production: context, Pos: pos, Err: fmt.Errorf("%w %s", ErrRecursiveProduction, name)}
	}
	b.visiting[name] = true
	defer delete(b.visiting, name)

	if prod.Expr == nil {
		return combinator.NewSequence(), nil
	}
	return b.expr(prod.Expr, name)
}

func (b *builder) expr(expr ebnf.Expression, context string) (combinator.Matcher, error) {
	switch e := expr.(type) {
	case *ebnf.Token:
		return combinator.NewLiteral(e.String), nil

	case *ebnf.Range:
		return b.rangeClass(e, context)

	case ebnf.Sequence:
		children, err := b.exprs(e, context)
		if err != nil {
			return nil, err
		}
		return combinator.NewSequence(children...), nil

	case ebnf.Alternative:
		children, err := b.exprs(e, context)
		if err != nil {
			return nil, err
		}
		return combinator.NewAlternation(children...), nil

	case *ebnf.Repetition:
		body, err := b.expr(e.Body, context)
		if err != nil {
			return nil, err
		}
		return combinator.NewRepetition(body, 0), nil

	case *ebnf.Option:
		body, err := b.expr(e.Body, context)
		if err != nil {
			return nil, err
		}
		return combinator.NewAlternation(body, combinator.NewSequence()), nil

	case *ebnf.Group:
		return b.expr(e.Body, context)

	case *ebnf.Name:
		return b.name(e.String, context, e.Pos())

	case nil:
		return combinator.NewSequence(), nil

	default:
		return nil, &BuildError{Production: context, Pos: expr.Pos(), Err: fmt.Errorf("%w %T", ErrUnsupported, expr)}
	}
}

func (b *builder) exprs(list []ebnf.Expression, context string) ([]combinator.Matcher, error) {
	out := make([]combinator.Matcher, 0, len(list))
	for _, item := range list {
		m, err := b.expr(item, context)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// rangeClass turns "a" … "z" into the class [a-z].
func (b *builder) rangeClass(r *ebnf.Range, context string) (combinator.Matcher, error) {
	lo, hi := r.Begin.String, r.End.String
	if utf8.RuneCountInString(lo) != 1 || utf8.RuneCountInString(hi) != 1 {
		return nil, &BuildError{Production: context, Pos: r.Pos(), Err: fmt.Errorf("%w %q … %q: bounds must be single characters", ErrBadRange, lo, hi)}
	}
	class, err := combinator.NewClass(escapeClassRune(lo) + "-" + escapeClassRune(hi))
	if err != nil {
		return nil, &BuildError{Production: context, Pos: r.Pos(), Err: fmt.Errorf("%w: %w", ErrBadRange, err)}
	}
	return class, nil
}

func escapeClassRune(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r < utf8.RuneSelf && !syntax.IsWordChar(r) && r > ' ' {
		return `\` + s
	}
	return s
}
