package nfa

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultDOTFile is the file name the command line tool writes to.
const DefaultDOTFile = "ε-nfa.dot"

// EpsilonLabel is the edge label used for ε-transitions.
const EpsilonLabel = "ε"

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// WriteDOT prints a Graphviz description of n to w: left-to-right layout,
// the pattern as the title, the terminate state as the only double circle,
// one line per transition and an invisible "start" node pointing at the
// start state.
func WriteDOT(w io.Writer, n *NFA) error {
	if n.arena.disposed {
		return ErrDisposed
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph finite_state_machine {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	fmt.Fprintln(bw, `    size="8,5"`)
	fmt.Fprintln(bw, `    labelloc="b";`)
	fmt.Fprintf(bw, "    label=\"Regex : %s\";\n", dotEscaper.Replace(n.pattern))
	fmt.Fprintf(bw, "    node [shape = doublecircle label=\"\"]; s%d\n", n.terminate)
	fmt.Fprintln(bw, "    node [shape = circle]")

	err := Walk(n, func(from StateID, t Transition) {
		label := EpsilonLabel
		if t.Kind == Char {
			label = string(rune(t.C))
		}
		fmt.Fprintf(bw, "    s%d -> s%d [label = \"%s\"];\n", from, t.To, label)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(bw, "    node [shape = none label=\"\"]; start")
	fmt.Fprintf(bw, "    start -> s%d [label = \"start\"];\n", n.start)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
