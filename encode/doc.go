// Package encode writes value trees as S-expression text.
//
// # Usage
//
//	// Write a value
//	err := encode.Encode(node, os.Stdout)
//
//	// As a string, panicking on error
//	s := encode.MustString(node)
//
//	// With terminal colors
//	err := encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
//	// As JSON
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// Text written in the default format reads back to an equal tree.
// Pattern nodes are rejected with ErrPatternNode unless EncodePatterns(true)
// is given.
//
// # Related Packages
//
//   - github.com/signadot/sexp/ir - value trees
//   - github.com/signadot/sexp/parse - reading text into trees
package encode
