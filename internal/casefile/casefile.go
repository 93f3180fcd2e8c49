// Package casefile reads regression case files and checks them against the
// compiler and matcher.
//
//	# comment
//	pattern "(a|b)*c" {
//	    accept "aabbc" "c"
//	    reject "aabb" ""
//	}
package casefile

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"thompson/internal/parser"
)

// File is a parsed case file.
type File struct {
	Cases []*Case `parser:"@@*"`
}

// Case holds the expectations for one pattern.
type Case struct {
	Pos     lexer.Position
	Pattern string    `parser:"'pattern' @String '{'"`
	Expects []*Expect `parser:"@@* '}'"`
}

// Expect lists inputs that the pattern should accept or reject.
type Expect struct {
	Pos     lexer.Position
	Verdict string   `parser:"@('accept' | 'reject')"`
	Inputs  []string `parser:"@String+"`
}

var caseLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[{}]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var caseParser = participle.MustBuild[File](
	participle.Lexer(caseLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)

// Parse parses case file source; name is used in positions.
func Parse(name, src string) (*File, error) {
	return caseParser.ParseString(name, src)
}

// ParseFile reads and parses the case file at path.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data))
}

// Failure is an input whose verdict disagrees with the file.
type Failure struct {
	Pos     lexer.Position
	Pattern string
	Input   string
	Want    bool
}

func (f Failure) String() string {
	verdict := "reject"
	if f.Want {
		verdict = "accept"
	}
	return fmt.Sprintf("%s: pattern %q should %s %q", f.Pos, f.Pattern, verdict, f.Input)
}

// Report summarises a Check run.
type Report struct {
	Patterns int
	Inputs   int
	Failures []Failure
}

// OK reports whether every expectation held.
func (r *Report) OK() bool { return len(r.Failures) == 0 }

// Check compiles every pattern and matches every input. A pattern that does
// not compile aborts the run.
func (f *File) Check() (*Report, error) {
	r := &Report{}
	for _, c := range f.Cases {
		n, err := parser.Compile(c.Pattern)
		if err != nil {
			return r, fmt.Errorf("%s: %w", c.Pos, err)
		}
		r.Patterns++
		for _, e := range c.Expects {
			want := e.Verdict == "accept"
			for _, in := range e.Inputs {
				r.Inputs++
				if n.Match(in) != want {
					r.Failures = append(r.Failures, Failure{Pos: e.Pos, Pattern: c.Pattern, Input: in, Want: want})
				}
			}
		}
		if _, err := n.Dispose(); err != nil {
			return r, fmt.Errorf("%s: %w", c.Pos, err)
		}
	}
	return r, nil
}
