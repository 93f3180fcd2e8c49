// Package search answers "does any substring of the text match" for a
// compiled automaton.
//
// When the automaton is acyclic and its language is a small set of
// literals, the question is handed to an Aho-Corasick automaton. Everything
// else runs an unanchored ε-NFA simulation that re-enters the start state
// at every offset.
package search

import (
	"github.com/coregx/ahocorasick"

	"thompson/internal/glist"
	"thompson/internal/nfa"
)

const (
	// MaxLiterals is the largest literal set handed to Aho-Corasick.
	MaxLiterals = 64
	// maxPathSteps bounds the work spent enumerating an acyclic automaton.
	maxPathSteps = 4096
)

// Searcher performs unanchored containment tests against one automaton.
type Searcher struct {
	n        *nfa.NFA
	start    []nfa.StateID
	empty    bool
	literals []string
	ac       *ahocorasick.Automaton
}

// New prepares a searcher for n.
func New(n *nfa.NFA) *Searcher {
	s := &Searcher{n: n}
	if n.Disposed() {
		return s
	}
	s.start = n.Closure(n.Start())
	s.empty = containsID(s.start, n.Terminate())
	if s.empty {
		return s
	}
	lits, ok := Literals(n)
	if !ok {
		return s
	}
	b := ahocorasick.NewBuilder()
	for _, lit := range lits {
		b.AddPattern([]byte(lit))
	}
	ac, err := b.Build()
	if err != nil {
		return s
	}
	s.literals = lits
	s.ac = ac
	return s
}

// UsesLiterals reports whether Contains is answered by Aho-Corasick.
func (s *Searcher) UsesLiterals() bool { return s.ac != nil }

// Literals returns the literal set used by the fast path, if any.
func (s *Searcher) Literals() []string { return s.literals }

// Contains reports whether some substring of text is accepted.
func (s *Searcher) Contains(text string) bool {
	if s.n.Disposed() {
		return false
	}
	if s.empty {
		return true
	}
	if s.ac != nil {
		return s.ac.IsMatch([]byte(text))
	}
	term := s.n.Terminate()
	cur := s.start
	for i := 0; i < len(text); i++ {
		next := s.n.Step(cur, text[i])
		if containsID(next, term) {
			return true
		}
		cur = append(next, s.start...)
	}
	return false
}

func containsID(ids []nfa.StateID, id nfa.StateID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// Literals enumerates the language of n when the automaton has no cycles
// and accepts at most MaxLiterals distinct non-empty strings. ok is false
// otherwise.
func Literals(n *nfa.NFA) (lits []string, ok bool) {
	if n.Disposed() || hasCycle(n) {
		return nil, false
	}
	e := &enumerator{n: n, out: glist.New[string](0)}
	if !e.paths(n.Start(), nil) {
		return nil, false
	}
	for _, lit := range e.out.Values() {
		if lit == "" {
			return nil, false
		}
	}
	return e.out.Values(), e.out.Len() > 0
}

type enumerator struct {
	n     *nfa.NFA
	out   *glist.List[string]
	steps int
}

// paths walks every path from id, recording the labels seen on the way
// whenever the terminate state is reached. It gives up when the budget is
// exhausted or too many literals turn up.
func (e *enumerator) paths(id nfa.StateID, prefix []byte) bool {
	e.steps++
	if e.steps > maxPathSteps {
		return false
	}
	if id == e.n.Terminate() {
		e.out.Add(string(prefix))
		if e.out.Len() > MaxLiterals {
			return false
		}
	}
	st := e.n.State(id)
	for _, t := range st.Transitions() {
		next := prefix
		if t.Kind == nfa.Char {
			next = append(prefix[:len(prefix):len(prefix)], t.C)
		}
		if !e.paths(t.To, next) {
			return false
		}
	}
	return true
}

func hasCycle(n *nfa.NFA) bool {
	const (
		white = iota
		grey
		black
	)
	color := make([]uint8, n.Len())
	var visit func(nfa.StateID) bool
	visit = func(id nfa.StateID) bool {
		color[id] = grey
		st := n.State(id)
		for _, t := range st.Transitions() {
			switch color[t.To] {
			case grey:
				return true
			case white:
				if visit(t.To) {
					return true
				}
			}
		}
		color[id] = black
		return false
	}
	return visit(n.Start())
}
