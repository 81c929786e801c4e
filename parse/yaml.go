package parse

import (
	"math"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/signadot/ctree/ir"
	"github.com/signadot/ctree/token"
)

type yamlParser struct {
	opts    *parseOpts
	anchors map[string]*ir.Node
}

func parseYAML(d []byte, opts *parseOpts) (*ir.Node, error) {
	file, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, errorf(0, "%s", err.Error())
	}
	var docs []*ast.DocumentNode
	for _, doc := range file.Docs {
		if doc.Body != nil {
			docs = append(docs, doc)
		}
	}
	switch len(docs) {
	case 0:
		return nil, errorf(int64(len(d)), "empty document")
	case 1:
	default:
		return nil, errorf(yamlOffset(docs[1]), "more than one document")
	}
	p := &yamlParser{opts: opts, anchors: map[string]*ir.Node{}}
	return p.node(docs[0].Body)
}

func yamlOffset(n ast.Node) int64 {
	tok := n.GetToken()
	if tok == nil || tok.Position == nil {
		return 0
	}
	return int64(tok.Position.Offset)
}

func (p *yamlParser) node(n ast.Node) (*ir.Node, error) {
	switch n := n.(type) {
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.BoolNode:
		return ir.FromBool(n.Value), nil
	case *ast.IntegerNode:
		switch v := n.Value.(type) {
		case int64:
			return ir.FromInt(v), nil
		case uint64:
			if v > math.MaxInt64 {
				return nil, errorf(yamlOffset(n), "integer %d out of range", v)
			}
			return ir.FromInt(int64(v)), nil
		}
		return nil, errorf(yamlOffset(n), "unexpected integer value %T", n.Value)
	case *ast.FloatNode:
		res := ir.FromFloat(n.Value)
		if _, err := token.LexNumber([]byte(n.GetToken().Value)); err == nil {
			res.Number = n.GetToken().Value
		}
		return res, nil
	case *ast.InfinityNode:
		return ir.FromFloat(n.Value), nil
	case *ast.NanNode:
		return ir.FromFloat(math.NaN()), nil
	case *ast.StringNode:
		if p.opts.specialFloats {
			if f, ok := token.SpecialFloat(n.Value); ok {
				return ir.FromFloat(f), nil
			}
		}
		return ir.FromString(n.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(n.Value.Value), nil
	case *ast.TagNode:
		return p.node(n.Value)
	case *ast.AnchorNode:
		res, err := p.node(n.Value)
		if err != nil {
			return nil, err
		}
		p.anchors[n.Name.GetToken().Value] = res
		return res, nil
	case *ast.AliasNode:
		name := n.Value.GetToken().Value
		res, ok := p.anchors[name]
		if !ok {
			return nil, errorf(yamlOffset(n), "unknown alias %q", name)
		}
		return res.Clone(), nil
	case *ast.SequenceNode:
		vals := make([]*ir.Node, 0, len(n.Values))
		for _, v := range n.Values {
			val, err := p.node(v)
			if err != nil {
				return nil, err
			}
			vals = append(vals, val)
		}
		return ir.FromSlice(vals), nil
	case *ast.MappingNode:
		kvs := make([]ir.KeyVal, 0, len(n.Values))
		for _, mv := range n.Values {
			kv, err := p.keyVal(mv)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, kv)
		}
		return ir.FromKeyVals(kvs), nil
	case *ast.MappingValueNode:
		kv, err := p.keyVal(n)
		if err != nil {
			return nil, err
		}
		return ir.FromKeyVals([]ir.KeyVal{kv}), nil
	}
	return nil, errorf(yamlOffset(n), "unsupported yaml node %s", n.Type())
}

func (p *yamlParser) keyVal(mv *ast.MappingValueNode) (ir.KeyVal, error) {
	var key string
	switch k := mv.Key.(type) {
	case *ast.StringNode:
		key = k.Value
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.NullNode:
		key = k.GetToken().Value
	default:
		return ir.KeyVal{}, errorf(yamlOffset(mv), "unsupported mapping key %s", mv.Key.Type())
	}
	val, err := p.node(mv.Value)
	if err != nil {
		return ir.KeyVal{}, err
	}
	return ir.KeyVal{Key: key, Val: val}, nil
}
