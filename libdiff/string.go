package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffText renders a character diff of from and to, marking deleted text
// as [-x-] and inserted text as {+x+}. When mark is non-nil it is applied
// to each marked span, for example to color it.
func DiffText(from, to string, mark func(op diffpatch.Operation, s string) string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	buf := &strings.Builder{}
	for _, d := range diffs {
		var s string
		switch d.Type {
		case diffpatch.DiffEqual:
			buf.WriteString(d.Text)
			continue
		case diffpatch.DiffDelete:
			s = "[-" + d.Text + "-]"
		case diffpatch.DiffInsert:
			s = "{+" + d.Text + "+}"
		}
		if mark != nil {
			s = mark(d.Type, s)
		}
		buf.WriteString(s)
	}
	return buf.String()
}
