package encode

import "github.com/signadot/ctree/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeIndent sets the indentation step. 0, the default, gives compact
// JSON. YAML output always indents, with 2 spaces when n is 0.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(n, 0) }
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

// EncodeNewline appends a newline after the document.
func EncodeNewline(v bool) EncodeOption {
	return func(es *EncState) { es.newline = v }
}
