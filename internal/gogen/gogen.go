// Package gogen renders a compiled automaton as Go source: a transition
// table indexed by state, with the states renumbered in traversal order.
package gogen

import (
	"fmt"
	"go/token"
	"io"

	"github.com/dave/jennifer/jen"

	"thompson/internal/nfa"
)

// Options controls the generated file.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// Name prefixes every generated identifier.
	Name string
}

// Generate writes the Go table for n to w.
func Generate(w io.Writer, opts Options, n *nfa.NFA) error {
	if !token.IsIdentifier(opts.Package) {
		return fmt.Errorf("gogen: invalid package name %q", opts.Package)
	}
	if !token.IsIdentifier(opts.Name) {
		return fmt.Errorf("gogen: invalid identifier %q", opts.Name)
	}
	ids, err := nfa.Reachable(n)
	if err != nil {
		return fmt.Errorf("gogen: %w", err)
	}
	index := make(map[nfa.StateID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	edgeType := opts.Name + "Edge"
	f := jen.NewFile(opts.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by enfa from %q. DO NOT EDIT.", n.Pattern()))

	f.Commentf("%s is one transition. Char is unused when Epsilon is set.", edgeType)
	f.Type().Id(edgeType).Struct(
		jen.Id("Epsilon").Bool(),
		jen.Id("Char").Rune(),
		jen.Id("To").Int(),
	)

	f.Const().Defs(
		jen.Id(opts.Name+"Start").Op("=").Lit(index[n.Start()]),
		jen.Id(opts.Name+"Terminate").Op("=").Lit(index[n.Terminate()]),
	)

	rows := make([]jen.Code, 0, len(ids))
	for _, id := range ids {
		st := n.State(id)
		var edges []jen.Code
		for _, t := range st.Transitions() {
			d := jen.Dict{jen.Id("To"): jen.Lit(index[t.To])}
			if t.Kind == nfa.Epsilon {
				d[jen.Id("Epsilon")] = jen.True()
			} else {
				d[jen.Id("Char")] = jen.LitRune(rune(t.C))
			}
			edges = append(edges, jen.Values(d))
		}
		rows = append(rows, jen.Values(edges...))
	}

	f.Commentf("%sStates holds the transitions of each state of the ε-NFA for %q.", opts.Name, n.Pattern())
	f.Var().Id(opts.Name+"States").Op("=").Index().Index().Id(edgeType).Values(rows...)

	return f.Render(w)
}
