package encode

import (
	"io"
	"sync"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"

	"github.com/signadot/ctree/ir"
	"github.com/signadot/ctree/ir/kpath"
	"github.com/signadot/ctree/token"
)

// frozen json-iterator configs by indentation step
var apis sync.Map

func jsonAPI(indent int) jsoniter.API {
	if api, ok := apis.Load(indent); ok {
		return api.(jsoniter.API)
	}
	api := jsoniter.Config{
		EscapeHTML:    false,
		IndentionStep: indent,
	}.Froze()
	act, _ := apis.LoadOrStore(indent, api)
	return act.(jsoniter.API)
}

type jsonWriter struct {
	s    *jsoniter.Stream
	es   *EncState
	path []kpath.Segment
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	api := jsonAPI(es.indent)
	s := api.BorrowStream(w)
	defer api.ReturnStream(s)
	jw := &jsonWriter{s: s, es: es}
	if err := jw.node(node); err != nil {
		return err
	}
	if s.Error != nil {
		return s.Error
	}
	return s.Flush()
}

func (jw *jsonWriter) node(node *ir.Node) error {
	if node == nil {
		return nodeErr(kpath.String(jw.path), "nil node")
	}
	s := jw.s
	start := len(s.Buffer())
	switch node.Type {
	case ir.NullType:
		s.WriteNil()
	case ir.BoolType:
		s.WriteBool(node.Bool)
	case ir.IntType:
		s.WriteInt64(node.Int64)
	case ir.FloatType:
		txt := token.FormatFloat(node.Float64, node.Width)
		if _, special := token.SpecialFloat(txt); special {
			s.WriteString(txt)
		} else {
			s.WriteRaw(txt)
		}
	case ir.StringType:
		if !utf8.ValidString(node.String) {
			return nodeErr(kpath.String(jw.path), "invalid UTF-8 in %q", node.String)
		}
		s.WriteString(node.String)
	case ir.ArrayType:
		return jw.array(node)
	case ir.ObjectType:
		return jw.object(node)
	default:
		return nodeErr(kpath.String(jw.path), "unknown node type %d", node.Type)
	}
	jw.paint(start, node.Type, ValueColor)
	return nil
}

func (jw *jsonWriter) array(node *ir.Node) error {
	s := jw.s
	start := len(s.Buffer())
	if len(node.Values) == 0 {
		s.WriteEmptyArray()
		jw.paint(start, ir.ArrayType, SepColor)
		return nil
	}
	s.WriteArrayStart()
	jw.paint(start, ir.ArrayType, SepColor)
	for i, v := range node.Values {
		if i > 0 {
			start = len(s.Buffer())
			s.WriteMore()
			jw.paint(start, ir.ArrayType, SepColor)
		}
		jw.path = append(jw.path, kpath.Index(i))
		if err := jw.node(v); err != nil {
			return err
		}
		jw.path = jw.path[:len(jw.path)-1]
	}
	start = len(s.Buffer())
	s.WriteArrayEnd()
	jw.paint(start, ir.ArrayType, SepColor)
	return nil
}

func (jw *jsonWriter) object(node *ir.Node) error {
	if len(node.Fields) != len(node.Values) {
		return nodeErr(kpath.String(jw.path), "%d keys for %d values", len(node.Fields), len(node.Values))
	}
	s := jw.s
	start := len(s.Buffer())
	if len(node.Fields) == 0 {
		s.WriteEmptyObject()
		jw.paint(start, ir.ObjectType, SepColor)
		return nil
	}
	s.WriteObjectStart()
	jw.paint(start, ir.ObjectType, SepColor)
	for i, field := range node.Fields {
		if i > 0 {
			start = len(s.Buffer())
			s.WriteMore()
			jw.paint(start, ir.ObjectType, SepColor)
		}
		if !utf8.ValidString(field) {
			return nodeErr(kpath.String(jw.path), "invalid UTF-8 in key %q", field)
		}
		start = len(s.Buffer())
		s.WriteObjectField(field)
		jw.paint(start, ir.ObjectType, FieldColor)
		jw.path = append(jw.path, kpath.Field(field))
		if err := jw.node(node.Values[i]); err != nil {
			return err
		}
		jw.path = jw.path[:len(jw.path)-1]
	}
	start = len(s.Buffer())
	s.WriteObjectEnd()
	jw.paint(start, ir.ObjectType, SepColor)
	return nil
}

// paint colours everything written to the stream since start.
func (jw *jsonWriter) paint(start int, t ir.Type, attr ColorAttr) {
	if jw.es.Color == nil {
		return
	}
	buf := jw.s.Buffer()
	raw := string(buf[start:])
	jw.s.SetBuffer(buf[:start])
	jw.s.WriteRaw(jw.es.Color(t, attr, raw))
}
