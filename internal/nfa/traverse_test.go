package nfa_test

import (
	"errors"
	"testing"

	"thompson/internal/nfa"
)

func TestWalkVisitsEachStateOnce(t *testing.T) {
	tests := []struct {
		pattern string
		states  int
		edges   int
	}{
		{"a", 2, 1},
		{"ab", 4, 3},
		{"a|b", 6, 6},
		{"a*", 4, 4},
		{"a+", 4, 4},
		{"a?", 3, 3},
		// Both alternatives share the alternation's terminate and the
		// kleene start is entered from two places.
		{"(a|a)*", 8, 9},
		{"(a|b)*c", 10, 11},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n := newNFA(t, tt.pattern)
			entered := map[nfa.StateID]int{}
			edges := 0
			err := nfa.Walk(n, func(from nfa.StateID, tr nfa.Transition) {
				edges++
				entered[tr.To]++
			})
			if err != nil {
				t.Fatal(err)
			}
			if edges != tt.edges {
				t.Errorf("edges = %d, want %d", edges, tt.edges)
			}

			ids, err := nfa.Reachable(n)
			if err != nil {
				t.Fatal(err)
			}
			if len(ids) != tt.states {
				t.Errorf("reachable = %d, want %d", len(ids), tt.states)
			}
			if len(ids) != n.Len() {
				t.Errorf("reachable %d of %d allocated states", len(ids), n.Len())
			}
			if ids[0] != n.Start() {
				t.Errorf("traversal starts at %d, want %d", ids[0], n.Start())
			}
			seen := map[nfa.StateID]bool{}
			for _, id := range ids {
				if seen[id] {
					t.Fatalf("state %d visited twice", id)
				}
				seen[id] = true
			}
			if !seen[n.Terminate()] {
				t.Errorf("terminate %d not reachable", n.Terminate())
			}
		})
	}
}

func TestWalkSharedTargetReportedPerEdge(t *testing.T) {
	n := newNFA(t, "(a|a)*")
	incoming := map[nfa.StateID]int{}
	if err := nfa.Walk(n, func(_ nfa.StateID, tr nfa.Transition) { incoming[tr.To]++ }); err != nil {
		t.Fatal(err)
	}
	multi := 0
	for _, c := range incoming {
		if c > 1 {
			multi++
		}
	}
	if multi == 0 {
		t.Fatalf("expected a state with several incoming edges, got %v", incoming)
	}
}

func TestDispose(t *testing.T) {
	n := newNFA(t, "(a|a)*")
	total := n.Len()
	released, err := nfa.Dispose(n)
	if err != nil {
		t.Fatal(err)
	}
	if released != total {
		t.Fatalf("released %d states, want %d", released, total)
	}
	if !n.Disposed() {
		t.Fatal("Disposed() = false after Dispose")
	}
	if _, err := n.Dispose(); !errors.Is(err, nfa.ErrDisposed) {
		t.Fatalf("second Dispose: err = %v, want ErrDisposed", err)
	}
	if err := nfa.Walk(n, nil); !errors.Is(err, nfa.ErrDisposed) {
		t.Fatalf("Walk after Dispose: err = %v", err)
	}
	if _, err := nfa.Reachable(n); !errors.Is(err, nfa.ErrDisposed) {
		t.Fatalf("Reachable after Dispose: err = %v", err)
	}
}
