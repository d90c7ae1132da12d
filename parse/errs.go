package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/sexp/token"
)

var (
	ErrParse           = errors.New("parse error")
	ErrUnexpectedClose = errors.New("unexpected )")
	ErrDot             = errors.New("misplaced .")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrNumber          = errors.New("number out of range")
	ErrTrailing        = errors.New("trailing input")
)

// Error is a parse failure. It matches both ErrParse and its cause under
// errors.Is.
type Error struct {
	Err error
	Pos token.Pos
}

func newError(err error, p token.Pos) *Error {
	return &Error{Err: err, Pos: p}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s at %s", ErrParse, e.Err, e.Pos)
}

func (e *Error) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
