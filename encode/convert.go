package encode

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/sexp/format"
	"github.com/signadot/sexp/ir"
)

// encodeData writes node as JSON or YAML by way of ir.ToAny. Symbols and
// strings both become strings.
func encodeData(node *ir.Node, w io.Writer, es *EncState) error {
	check := *es
	check.Color = nil
	if err := encode(node, io.Discard, &check); err != nil {
		return err
	}
	var yOpts []yaml.EncodeOption
	if es.format == format.JSONFormat {
		yOpts = append(yOpts, yaml.JSON())
	}
	d, err := yaml.MarshalWithOptions(ir.ToAny(node), yOpts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
