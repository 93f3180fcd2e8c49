// Package nfa implements Thompson ε-NFAs over bytes.
//
// States live in an Arena owned by a single automaton and are addressed by
// StateID handles. Every state has two transition slots, which is all the
// Thompson combinators ever need.
package nfa

// StateID is a handle to a state inside an Arena.
type StateID int32

// InvalidState is the zero-value sentinel for "no state".
const InvalidState StateID = -1

// Kind is the type of a transition slot.
type Kind uint8

const (
	None    Kind = iota // empty slot
	Char                // consumes one input byte
	Epsilon             // consumes nothing
)

func (k Kind) String() string {
	switch k {
	case Char:
		return "char"
	case Epsilon:
		return "epsilon"
	default:
		return "none"
	}
}

// Transition is one outgoing edge. C is meaningful only for Char edges.
type Transition struct {
	Kind Kind
	C    byte
	To   StateID
}

// State is a node with at most two outgoing transitions.
type State struct {
	trans    [2]Transition
	released bool
}

// NumTransitions returns how many slots are in use.
func (s State) NumTransitions() int {
	if s.trans[1].Kind != None {
		return 2
	}
	if s.trans[0].Kind != None {
		return 1
	}
	return 0
}

// Transitions returns the used slots in insertion order.
func (s State) Transitions() []Transition {
	return s.trans[:s.NumTransitions()]
}

// Arena is the storage for all states of one automaton.
type Arena struct {
	states   []State
	disposed bool
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{states: make([]State, 0, 16)}
}

// NewState appends an isolated state and returns its handle.
func (a *Arena) NewState() StateID {
	id := StateID(len(a.states))
	a.states = append(a.states, State{})
	return id
}

// Len returns the number of allocated states.
func (a *Arena) Len() int { return len(a.states) }

// AddTransition fills the next free slot of from.
func (a *Arena) AddTransition(from StateID, kind Kind, c byte, to StateID) error {
	if !a.valid(from) || !a.valid(to) {
		return &InternalError{Op: "AddTransition", State: from, Err: ErrInvalidState}
	}
	s := &a.states[from]
	i := s.NumTransitions()
	if i >= 2 {
		return &InternalError{Op: "AddTransition", State: from, Err: ErrTransitionLimit}
	}
	s.trans[i] = Transition{Kind: kind, C: c, To: to}
	return nil
}

// Epsilon adds an ε-transition from -> to.
func (a *Arena) Epsilon(from, to StateID) error {
	return a.AddTransition(from, Epsilon, 0, to)
}

func (a *Arena) valid(id StateID) bool {
	return id >= 0 && int(id) < len(a.states)
}

// Fragment is a partial automaton with one entry and one accepting state.
type Fragment struct {
	Start, Terminate StateID
}

// NFA is a fully built automaton.
type NFA struct {
	arena     *Arena
	start     StateID
	terminate StateID
	pattern   string
}

// Build seals f into an automaton. The arena must not be used to build
// anything else afterwards.
func (a *Arena) Build(pattern string, f Fragment) *NFA {
	return &NFA{arena: a, start: f.Start, terminate: f.Terminate, pattern: pattern}
}

// Start returns the entry state.
func (n *NFA) Start() StateID { return n.start }

// Terminate returns the single accepting state.
func (n *NFA) Terminate() StateID { return n.terminate }

// Pattern returns the source the automaton was compiled from.
func (n *NFA) Pattern() string { return n.pattern }

// Len returns the number of states in the automaton's arena.
func (n *NFA) Len() int { return n.arena.Len() }

// Disposed reports whether Dispose has released the automaton.
func (n *NFA) Disposed() bool { return n.arena.disposed }

// State returns a copy of the state with the given handle.
func (n *NFA) State(id StateID) State { return n.arena.states[id] }
