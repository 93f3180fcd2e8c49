package casefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"thompson/internal/parser"
)

const propertiesSrc = `# whole-string matching properties
pattern "ab" {
    accept "ab"
    reject "a" "b" "ba"
}

pattern "a|b" {
    accept "a" "b"
    reject "c" "ab"
}

pattern "a*" {
    accept "" "a" "aaa"
    reject "b" "ab"
}

pattern "a+" {
    accept "a" "aaaa"
    reject ""
}

pattern "a?" {
    accept "" "a"
    reject "aa"
}

pattern "(a|b)*c" {
    accept "aabbc" "c"
    reject "aabb" "aabbcc"
}
`

func TestParse(t *testing.T) {
	f, err := Parse("props.cases", propertiesSrc)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Cases) != 6 {
		t.Fatalf("cases = %d, want 6", len(f.Cases))
	}
	c := f.Cases[5]
	if c.Pattern != "(a|b)*c" {
		t.Errorf("pattern = %q", c.Pattern)
	}
	if len(c.Expects) != 2 || c.Expects[0].Verdict != "accept" || c.Expects[1].Verdict != "reject" {
		t.Fatalf("expects = %+v", c.Expects)
	}
	if got := strings.Join(c.Expects[1].Inputs, ","); got != "aabb,aabbcc" {
		t.Errorf("reject inputs = %q", got)
	}
	if c.Pos.Line != 27 {
		t.Errorf("case line = %d, want 27", c.Pos.Line)
	}
	if f.Cases[2].Expects[0].Inputs[0] != "" {
		t.Errorf("empty string input not unquoted: %q", f.Cases[2].Expects[0].Inputs[0])
	}
}

func TestCheckProperties(t *testing.T) {
	f, err := Parse("props.cases", propertiesSrc)
	if err != nil {
		t.Fatal(err)
	}
	r, err := f.Check()
	if err != nil {
		t.Fatal(err)
	}
	if !r.OK() {
		t.Fatalf("failures: %v", r.Failures)
	}
	if r.Patterns != 6 || r.Inputs != 23 {
		t.Fatalf("patterns/inputs = %d/%d, want 6/23", r.Patterns, r.Inputs)
	}
}

func TestCheckReportsFailures(t *testing.T) {
	f, err := Parse("bad.cases", `pattern "ab" {
    accept "ab" "ba"
    reject "ab"
}`)
	if err != nil {
		t.Fatal(err)
	}
	r, err := f.Check()
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Failures) != 2 {
		t.Fatalf("failures = %v, want 2", r.Failures)
	}
	first := r.Failures[0]
	if first.Input != "ba" || !first.Want || first.Pos.Line != 2 {
		t.Errorf("first failure = %+v", first)
	}
	if s := r.Failures[1].String(); !strings.Contains(s, `should reject "ab"`) || !strings.HasPrefix(s, "bad.cases:3:") {
		t.Errorf("failure string = %q", s)
	}
}

func TestCheckCompileError(t *testing.T) {
	f, err := Parse("err.cases", `pattern "a" { accept "a" }
pattern "(a" { accept "a" }`)
	if err != nil {
		t.Fatal(err)
	}
	r, err := f.Check()
	if !errors.Is(err, parser.ErrUnmatchedParen) {
		t.Fatalf("err = %v, want ErrUnmatchedParen", err)
	}
	if !strings.HasPrefix(err.Error(), "err.cases:2:") {
		t.Errorf("error lacks position: %v", err)
	}
	if r.Patterns != 1 {
		t.Errorf("patterns checked before the error = %d, want 1", r.Patterns)
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		`pattern "a" { accept }`,
		`pattern "a" { maybe "a" }`,
		`pattern "a" accept "a"`,
		`pattern a { accept "a" }`,
	} {
		if _, err := Parse("x", src); err == nil {
			t.Errorf("Parse(%q) succeeded", src)
		}
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.cases")
	if err := os.WriteFile(path, []byte(propertiesSrc), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Cases) != 6 {
		t.Fatalf("cases = %d", len(f.Cases))
	}
	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("missing file parsed")
	}
}
