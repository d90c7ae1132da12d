package pattern

import (
	"errors"
	"fmt"

	"github.com/signadot/sexp/ir"
)

var (
	ErrCompile        = errors.New("pattern compile error")
	ErrUnknownKind    = errors.New("unknown pattern kind")
	ErrArity          = errors.New("wrong number of pattern arguments")
	ErrBadPatternHead = errors.New("pattern head is not a symbol")
	ErrCaptures       = errors.New("too few capture slots")
	ErrLibrary        = errors.New("bad pattern library")
)

// CompileError reports a malformed pattern. Node is the raw pattern node
// at fault. It matches both ErrCompile and Err under errors.Is.
type CompileError struct {
	Err    error
	Node   *ir.Node
	Detail string
}

func (e *CompileError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", ErrCompile, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", ErrCompile, e.Err, e.Detail)
}

func (e *CompileError) Unwrap() []error {
	return []error{ErrCompile, e.Err}
}
