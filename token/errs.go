package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated  = errors.New("unterminated")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	ErrBadHash       = errors.New("bad # syntax")
)

// Error is a tokenizer failure at a position.
type Error struct {
	Err error
	Pos Pos
}

func NewError(e error, p Pos) *Error {
	return &Error{Err: e, Pos: p}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
