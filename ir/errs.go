package ir

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrImproperList = errors.New("improper list")
	ErrIndex        = errors.New("list index out of range")
)

// TypeMismatchError is the panic value of an accessor called on a node of
// the wrong type.
type TypeMismatchError struct {
	Op   string
	Want []Type
	Got  Type
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func (e *TypeMismatchError) Error() string {
	if len(e.Want) == 1 {
		return fmt.Sprintf("%s: %s wants %s, got %s", ErrTypeMismatch, e.Op, e.Want[0], e.Got)
	}
	return fmt.Sprintf("%s: %s wants one of %v, got %s", ErrTypeMismatch, e.Op, e.Want, e.Got)
}

func mustBe(n *Node, op string, want ...Type) {
	got := TypeOf(n)
	for _, w := range want {
		if got == w {
			return
		}
	}
	panic(&TypeMismatchError{Op: op, Want: want, Got: got})
}
