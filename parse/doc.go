// Package parse reads S-expression text into value trees.
//
// # Usage
//
//	// Parse exactly one value
//	node, err := parse.Parse([]byte(`(define x 1)`))
//
//	// Read successive values from a stream
//	r := parse.NewReader(token.NewFileStream(os.Stdin))
//	for {
//	    node, err := r.Read()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    ...
//	}
//
// The empty list reads as a nil *ir.Node with a nil error; end of input
// is io.EOF. Every other failure is a *Error, which matches ErrParse under
// errors.Is.
//
// Lists opened with #?( are read into raw pattern cells for the pattern
// package to compile.
//
// # Related Packages
//
//   - github.com/signadot/sexp/ir - value trees
//   - github.com/signadot/sexp/encode - writing trees as text
//   - github.com/signadot/sexp/token - streams and tokenization
package parse
