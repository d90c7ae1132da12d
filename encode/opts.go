package encode

import "github.com/signadot/sexp/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodePatterns allows raw and compiled patterns to be encoded. The
// output is meant for debugging.
func EncodePatterns(v bool) EncodeOption {
	return func(es *EncState) { es.patterns = v }
}
