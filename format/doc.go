// Package format names the output formats a value tree can be written in.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//	    return err
//	}
//	err = encode.Encode(node, w, encode.EncodeFormat(f))
//
// Only [SexpFormat] can be read back; JSON and YAML are export formats.
//
// # Related Packages
//
//   - github.com/signadot/sexp/encode - Encode value trees to text
package format
