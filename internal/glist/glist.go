// Package glist provides a growable list that doubles as an identity set.
//
// The list is the visited-set used by automaton traversal and the frontier
// buffer used by the matcher. Membership is decided by ==, so for handle
// types such as nfa.StateID two elements are the same exactly when they
// name the same state.
package glist

import "errors"

// DefaultCapacity is the capacity reserved by New when none is requested.
const DefaultCapacity = 8

// ErrUnderflow is the panic value raised by Pop on an empty list.
var ErrUnderflow = errors.New("glist: pop from empty list")

// List is an ordered sequence of comparable elements.
type List[T comparable] struct {
	data []T
}

// New creates an empty list with room for capacity elements.
func New[T comparable](capacity int) *List[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &List[T]{data: make([]T, 0, capacity)}
}

// Push appends v unconditionally. Storage doubles when the list is full.
func (l *List[T]) Push(v T) {
	if len(l.data) == cap(l.data) {
		n := cap(l.data) * 2
		if n == 0 {
			n = DefaultCapacity
		}
		grown := make([]T, len(l.data), n)
		copy(grown, l.data)
		l.data = grown
	}
	l.data = append(l.data, v)
}

// Pop removes the last element. It panics with ErrUnderflow when the list
// is empty; callers must guarantee non-emptiness.
func (l *List[T]) Pop() T {
	if len(l.data) == 0 {
		panic(ErrUnderflow)
	}
	v := l.data[len(l.data)-1]
	l.data = l.data[:len(l.data)-1]
	return v
}

// Add appends v only if no element equal to v is present and reports
// whether it did. The scan is linear, so a traversal over n elements
// costs O(n²).
func (l *List[T]) Add(v T) bool {
	if l.Contains(v) {
		return false
	}
	l.Push(v)
	return true
}

// Contains reports whether v is present.
func (l *List[T]) Contains(v T) bool {
	for _, x := range l.data {
		if x == v {
			return true
		}
	}
	return false
}

// Clear resets the length to zero and keeps the storage.
func (l *List[T]) Clear() { l.data = l.data[:0] }

// Dispose releases the storage.
func (l *List[T]) Dispose() { l.data = nil }

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.data) }

// Cap returns the allocated capacity.
func (l *List[T]) Cap() int { return cap(l.data) }

// At returns the i-th element.
func (l *List[T]) At(i int) T { return l.data[i] }

// Values returns the elements in insertion order. The slice aliases the
// list and is valid until the next mutation.
func (l *List[T]) Values() []T { return l.data }
