// Package parser compiles regular expressions into Thompson NFAs by
// recursive descent.
//
//	expr    := term ( term | '|' term )*
//	term    := primary ( '*' | '+' | '?' )?
//	primary := ALNUM | '(' expr ')'
//
// Postfix repetition binds tighter than concatenation, which binds tighter
// than alternation.
package parser

import (
	"unicode/utf8"

	"thompson/internal/nfa"
)

// DefaultMaxDepth bounds parenthesis nesting.
const DefaultMaxDepth = 1000

// Option configures Compile.
type Option func(*parser)

// WithMaxDepth sets the maximum parenthesis nesting accepted before
// Compile gives up with ErrTooDeep.
func WithMaxDepth(n int) Option {
	return func(p *parser) { p.maxDepth = n }
}

type parser struct {
	input    string
	pos      int
	depth    int
	maxDepth int
	arena    *nfa.Arena
}

// Compile parses pattern and returns its automaton. Either the whole
// pattern is compiled or an error is returned; no partial automaton
// escapes.
func Compile(pattern string, opts ...Option) (*nfa.NFA, error) {
	p := &parser{input: pattern, maxDepth: DefaultMaxDepth, arena: nfa.NewArena()}
	for _, o := range opts {
		o(p)
	}
	frag, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.input) {
		if !isGrammar(p.peek()) {
			return nil, p.errorf(errStrayChar)
		}
		return nil, p.errorf(ErrTrailingChar)
	}
	return p.arena.Build(pattern, frag), nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *nfa.NFA {
	n, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return n
}

// peek returns the current byte, 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) errorf(kind error) *SyntaxError {
	e := &SyntaxError{Pattern: p.input, Offset: p.pos, Err: kind}
	if p.pos < len(p.input) {
		e.Char, _ = utf8.DecodeRuneInString(p.input[p.pos:])
	}
	return e
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// isGrammar reports whether c can appear anywhere in a valid pattern.
func isGrammar(c byte) bool {
	switch c {
	case '(', ')', '|', '*', '+', '?':
		return true
	}
	return isAlnum(c)
}

func (p *parser) expr() (nfa.Fragment, error) {
	lhs, err := p.term()
	if err != nil {
		return nfa.Fragment{}, err
	}
	for {
		c := p.peek()
		switch {
		case isAlnum(c) || c == '(':
			rhs, err := p.term()
			if err != nil {
				return nfa.Fragment{}, err
			}
			if lhs, err = p.arena.Concat(lhs, rhs); err != nil {
				return nfa.Fragment{}, err
			}
		case c == '|':
			p.pos++
			rhs, err := p.term()
			if err != nil {
				return nfa.Fragment{}, err
			}
			if lhs, err = p.arena.Alternate(lhs, rhs); err != nil {
				return nfa.Fragment{}, err
			}
		default:
			return lhs, nil
		}
	}
}

func (p *parser) term() (nfa.Fragment, error) {
	f, err := p.primary()
	if err != nil {
		return nfa.Fragment{}, err
	}
	switch p.peek() {
	case '*':
		f, err = p.arena.Kleene(f)
	case '+':
		f, err = p.arena.Positive(f)
	case '?':
		f, err = p.arena.Optional(f)
	default:
		return f, nil
	}
	if err != nil {
		return nfa.Fragment{}, err
	}
	p.pos++
	return f, nil
}

func (p *parser) primary() (nfa.Fragment, error) {
	c := p.peek()
	switch {
	case isAlnum(c):
		f, err := p.arena.Atomic(c)
		if err != nil {
			return nfa.Fragment{}, err
		}
		p.pos++
		return f, nil
	case c == '(':
		if p.depth >= p.maxDepth {
			return nfa.Fragment{}, p.errorf(ErrTooDeep)
		}
		p.depth++
		p.pos++
		f, err := p.expr()
		if err != nil {
			return nfa.Fragment{}, err
		}
		if p.peek() != ')' {
			return nfa.Fragment{}, p.errorf(ErrUnmatchedParen)
		}
		p.pos++
		p.depth--
		return f, nil
	default:
		return nfa.Fragment{}, p.errorf(ErrUnrecognizedChar)
	}
}
