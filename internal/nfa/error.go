package nfa

import (
	"errors"
	"fmt"
)

// Internal invariant violations. They never occur for automata built by the
// parser and are reported wrapped in *InternalError.
var (
	ErrTransitionLimit = errors.New("state already has two transitions")
	ErrNullCharacter   = errors.New("atomic fragment for the null character")
	ErrDoubleFree      = errors.New("state released twice")
	ErrInvalidState    = errors.New("state id out of range")
)

// ErrDisposed is returned when an automaton is used after Dispose.
var ErrDisposed = errors.New("automaton already disposed")

// InternalError marks a broken construction invariant, as opposed to a
// problem with the user's pattern.
type InternalError struct {
	Op    string
	State StateID
	Err   error
}

func (e *InternalError) Error() string {
	if e.State != InvalidState {
		return fmt.Sprintf("nfa: internal error in %s at state %d: %v", e.Op, e.State, e.Err)
	}
	return fmt.Sprintf("nfa: internal error in %s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }
