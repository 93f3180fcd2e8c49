package parser

import (
	"errors"
	"fmt"
)

var (
	ErrUnmatchedParen   = errors.New("no matching ')' found")
	ErrUnrecognizedChar = errors.New("unrecognized character")
	ErrTrailingChar     = errors.New("unexpected character")
	ErrTooDeep          = errors.New("nesting too deep")
)

// errStrayChar is reported for trailing input that no grammar rule can
// start. It is both an ErrTrailingChar and an ErrUnrecognizedChar.
var errStrayChar error = strayChar{}

type strayChar struct{}

func (strayChar) Error() string   { return ErrTrailingChar.Error() }
func (strayChar) Unwrap() []error { return []error{ErrTrailingChar, ErrUnrecognizedChar} }

// SyntaxError describes a pattern that could not be compiled. Offset is
// the byte offset of Char in Pattern; Char is 0 at end of input.
type SyntaxError struct {
	Pattern string
	Offset  int
	Char    rune
	Err     error
}

func (e *SyntaxError) Error() string {
	at := "end of input"
	if e.Char != 0 {
		at = fmt.Sprintf("%q", e.Char)
	}
	return fmt.Sprintf("regexp %q: %v at offset %d (%s)", e.Pattern, e.Err, e.Offset, at)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
