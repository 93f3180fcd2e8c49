package nfa

import "thompson/internal/glist"

// Walk visits the automaton depth-first from its start state. visit is
// called at the parent once per outgoing transition, so a state with
// several incoming edges is reported several times as a target but is
// descended into only once.
func Walk(n *NFA, visit func(from StateID, t Transition)) error {
	if n.arena.disposed {
		return ErrDisposed
	}
	visited := glist.New[StateID](n.arena.Len())
	defer visited.Dispose()
	visited.Push(n.start)
	n.walk(n.start, visited, visit)
	return nil
}

func (n *NFA) walk(id StateID, visited *glist.List[StateID], visit func(StateID, Transition)) {
	for _, t := range n.arena.states[id].Transitions() {
		if visit != nil {
			visit(id, t)
		}
		if visited.Add(t.To) {
			n.walk(t.To, visited, visit)
		}
	}
}

// Reachable returns every state reachable from the start state, start
// first, in traversal order.
func Reachable(n *NFA) ([]StateID, error) {
	if n.arena.disposed {
		return nil, ErrDisposed
	}
	visited := glist.New[StateID](n.arena.Len())
	visited.Push(n.start)
	n.walk(n.start, visited, nil)
	return visited.Values(), nil
}

// Dispose releases every reachable state exactly once and drops the
// arena's storage. It returns the number of states released.
func Dispose(n *NFA) (int, error) {
	ids, err := Reachable(n)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		s := &n.arena.states[id]
		if s.released {
			return 0, &InternalError{Op: "Dispose", State: id, Err: ErrDoubleFree}
		}
		s.released = true
	}
	n.arena.states = nil
	n.arena.disposed = true
	return len(ids), nil
}

// Dispose is shorthand for the package-level Dispose.
func (n *NFA) Dispose() (int, error) { return Dispose(n) }
