// Package token provides byte streams and the tokenizer for S-expression
// text.
//
// A [Stream] yields bytes with one byte of pushback. Streams can be built
// over an [io.Reader], a file, a byte slice, a string or caller supplied
// callbacks. A [Tokenizer] reads a Stream and produces [Token]s, tracking
// positions for error reporting. Tokenizer failures are reported as
// [*Error] values wrapping one of the package's sentinel errors.
package token
