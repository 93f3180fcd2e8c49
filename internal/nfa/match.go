package nfa

import "thompson/internal/glist"

// Match reports whether n accepts the whole of s.
//
// The frontier starts as the ε-closure of the start state and is closed
// again after every input byte, so a pattern that accepts the empty string
// (a*, a?) matches "". A disposed automaton matches nothing.
func Match(n *NFA, s string) bool {
	if n.arena.disposed {
		return false
	}
	cur := glist.New[StateID](0)
	next := glist.New[StateID](0)
	cur.Push(n.start)
	n.closure(cur)

	for i := 0; i < len(s) && cur.Len() > 0; i++ {
		next.Clear()
		n.step(cur, s[i], next)
		n.closure(next)
		cur, next = next, cur
	}
	return cur.Contains(n.terminate)
}

// Match is shorthand for the package-level Match.
func (n *NFA) Match(s string) bool { return Match(n, s) }

// step adds to next every target of a Char transition labelled c leaving a
// state of cur.
func (n *NFA) step(cur *glist.List[StateID], c byte, next *glist.List[StateID]) {
	for _, id := range cur.Values() {
		for _, t := range n.arena.states[id].Transitions() {
			if t.Kind == Char && t.C == c {
				next.Add(t.To)
			}
		}
	}
}

// closure extends set in place with every state reachable through
// ε-transitions. set doubles as the work list.
func (n *NFA) closure(set *glist.List[StateID]) {
	for i := 0; i < set.Len(); i++ {
		for _, t := range n.arena.states[set.At(i)].Transitions() {
			if t.Kind == Epsilon {
				set.Add(t.To)
			}
		}
	}
}

// Closure returns the ε-closure of the given states.
func (n *NFA) Closure(ids ...StateID) []StateID {
	set := glist.New[StateID](len(ids))
	for _, id := range ids {
		set.Add(id)
	}
	n.closure(set)
	return set.Values()
}

// Step returns the ε-closed set of states reached from ids on byte c.
func (n *NFA) Step(ids []StateID, c byte) []StateID {
	cur := glist.New[StateID](len(ids))
	for _, id := range ids {
		cur.Add(id)
	}
	next := glist.New[StateID](0)
	n.step(cur, c, next)
	n.closure(next)
	return next.Values()
}
