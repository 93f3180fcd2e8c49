package gogen

import (
	"bytes"
	"errors"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"strings"
	"testing"

	"thompson/internal/nfa"
	"thompson/internal/parser"
)

func render(t *testing.T, pat string, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Generate(&buf, opts, parser.MustCompile(pat)); err != nil {
		t.Fatalf("Generate(%q): %v", pat, err)
	}
	return buf.String()
}

func TestGenerate(t *testing.T) {
	src := render(t, "(a|b)*c", Options{Package: "fsm", Name: "abc"})
	for _, want := range []string{
		"DO NOT EDIT",
		"package fsm",
		"type abcEdge struct",
		"abcStart",
		"abcTerminate",
		"var abcStates = [][]abcEdge{",
		"Epsilon: true",
		"'c'",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q:\n%s", want, src)
		}
	}
}

func TestGenerateIsValidGo(t *testing.T) {
	for _, pat := range []string{"a", "(a|a)*", "x?y+z"} {
		src := render(t, pat, Options{Package: "tables", Name: "m"})
		fset := token.NewFileSet()
		file, err := goparser.ParseFile(fset, "gen.go", src, 0)
		if err != nil {
			t.Fatalf("%q: generated source does not parse: %v\n%s", pat, err, src)
		}

		rows := -1
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.VAR {
				continue
			}
			vs := gd.Specs[0].(*ast.ValueSpec)
			rows = len(vs.Values[0].(*ast.CompositeLit).Elts)
		}
		n := parser.MustCompile(pat)
		ids, err := nfa.Reachable(n)
		if err != nil {
			t.Fatal(err)
		}
		if rows != len(ids) {
			t.Errorf("%q: %d table rows, want %d", pat, rows, len(ids))
		}
	}
}

func TestGenerateStartIsZero(t *testing.T) {
	src := render(t, "ab", Options{Package: "p", Name: "ab"})
	if !strings.Contains(src, "abStart     = 0") && !strings.Contains(src, "abStart = 0") {
		t.Errorf("start state is not renumbered to 0:\n%s", src)
	}
}

func TestGenerateErrors(t *testing.T) {
	n := parser.MustCompile("a")
	if err := Generate(&bytes.Buffer{}, Options{Package: "bad-name", Name: "x"}, n); err == nil {
		t.Error("invalid package accepted")
	}
	if err := Generate(&bytes.Buffer{}, Options{Package: "p", Name: "1x"}, n); err == nil {
		t.Error("invalid identifier accepted")
	}
	if _, err := n.Dispose(); err != nil {
		t.Fatal(err)
	}
	err := Generate(&bytes.Buffer{}, Options{Package: "p", Name: "x"}, n)
	if !errors.Is(err, nfa.ErrDisposed) {
		t.Errorf("err = %v, want ErrDisposed", err)
	}
}
