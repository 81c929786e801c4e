package encode

import (
	"bytes"
	"io"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"

	"github.com/signadot/ctree/ir"
	"github.com/signadot/ctree/ir/kpath"
	"github.com/signadot/ctree/token"
)

// yamlFloat renders through the canonical formatter so YAML output carries
// the same digits as JSON output.
type yamlFloat struct {
	v     float64
	width int
}

func (f yamlFloat) MarshalYAML() ([]byte, error) {
	switch {
	case math.IsNaN(f.v):
		return []byte(".nan"), nil
	case math.IsInf(f.v, 1):
		return []byte(".inf"), nil
	case math.IsInf(f.v, -1):
		return []byte("-.inf"), nil
	}
	d := token.AppendFloat(nil, f.v, f.width)
	// YAML only reads an exponent form as a float when the mantissa has a
	// fraction: 1e-7 -> 1.0e-7
	if e := bytes.IndexByte(d, 'e'); e != -1 && bytes.IndexByte(d[:e], '.') == -1 {
		d = slices.Insert(d, e, '.', '0')
	}
	return d, nil
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := toYAML(node, nil)
	if err != nil {
		return err
	}
	indent := es.indent
	if indent == 0 {
		indent = 2
	}
	d, err := yaml.MarshalWithOptions(v,
		yaml.Indent(indent),
		yaml.UseLiteralStyleIfMultiline(true),
	)
	if err != nil {
		return nodeErr("", "%v", err)
	}
	if es.Color != nil {
		d = []byte(colorYAML(string(d), es) + "\n")
	}
	_, err = w.Write(d)
	return err
}

func toYAML(node *ir.Node, path []kpath.Segment) (any, error) {
	if node == nil {
		return nil, nodeErr(kpath.String(path), "nil node")
	}
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.IntType:
		return node.Int64, nil
	case ir.FloatType:
		return yamlFloat{v: node.Float64, width: node.Width}, nil
	case ir.StringType:
		if !utf8.ValidString(node.String) {
			return nil, nodeErr(kpath.String(path), "invalid UTF-8 in %q", node.String)
		}
		return node.String, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			yv, err := toYAML(v, append(path, kpath.Index(i)))
			if err != nil {
				return nil, err
			}
			res[i] = yv
		}
		return res, nil
	case ir.ObjectType:
		if len(node.Fields) != len(node.Values) {
			return nil, nodeErr(kpath.String(path), "%d keys for %d values", len(node.Fields), len(node.Values))
		}
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			if !utf8.ValidString(f) {
				return nil, nodeErr(kpath.String(path), "invalid UTF-8 in key %q", f)
			}
			yv, err := toYAML(node.Values[i], append(path, kpath.Field(f)))
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: f, Value: yv}
		}
		return res, nil
	}
	return nil, nodeErr(kpath.String(path), "unknown node type %d", node.Type)
}

func colorYAML(src string, es *EncState) string {
	prop := func(t ir.Type, attr ColorAttr) printer.PrintFunc {
		// split a painted marker into the escape sequences around it
		pre, suf, _ := strings.Cut(es.Color(t, attr, "\x00"), "\x00")
		return func() *printer.Property {
			return &printer.Property{Prefix: pre, Suffix: suf}
		}
	}
	var p printer.Printer
	p.MapKey = prop(ir.ObjectType, FieldColor)
	p.Bool = prop(ir.BoolType, ValueColor)
	p.Number = prop(ir.FloatType, ValueColor)
	p.String = prop(ir.StringType, ValueColor)
	p.Anchor = prop(ir.ObjectType, SepColor)
	p.Alias = prop(ir.ObjectType, SepColor)
	return p.PrintTokens(lexer.Tokenize(src))
}
