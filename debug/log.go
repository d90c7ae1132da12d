package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/sexp/encode"
	"github.com/signadot/sexp/ir"
)

// Sexp formats a node with the encoder when printed.
type Sexp struct{ *ir.Node }

func (s Sexp) String() string {
	if s.Node == nil {
		return "()"
	}
	return render(s.Node)
}

func render(x *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf, encode.EncodePatterns(true)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", *x)
	}
	return buf.String()
}

// Logf writes to stderr. *ir.Node arguments are rendered as
// S-expressions, including pattern nodes.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok {
			args[i] = Sexp{x}
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
