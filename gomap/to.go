package gomap

import (
	"bytes"
	"encoding"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml"

	"github.com/signadot/ctree/debug"
	"github.com/signadot/ctree/encode"
	"github.com/signadot/ctree/ir"
	"github.com/signadot/ctree/ir/kpath"
)

// IRMarshaler is implemented by types that build their own tree.
type IRMarshaler interface {
	ToIR() (*ir.Node, error)
}

var (
	irMarshalerType   = reflect.TypeFor[IRMarshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	nodePtrType       = reflect.TypeFor[*ir.Node]()
	nodeType          = reflect.TypeFor[ir.Node]()
	mapSliceType      = reflect.TypeFor[yaml.MapSlice]()
)

// ToText converts a Go value to text, by way of ToIR and encode.Encode.
func ToText(v any, opts ...MapOption) ([]byte, error) {
	node, err := ToIR(v, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, ToEncodeOptions(opts...)...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToIR converts a Go value to a new tree.
func ToIR(v any, opts ...MapOption) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	m := &marshaler{
		cfg:     newMapConfig(opts...),
		visited: map[visitKey]string{},
	}
	node, err := m.value(reflect.ValueOf(v), "")
	if err != nil {
		if debug.Marshal() {
			debug.Logf("marshal %T: %v\n", v, err)
		}
		return nil, err
	}
	if debug.Marshal() {
		debug.Logf("marshal %T -> %v\n", v, node)
	}
	return node, nil
}

// visitKey identifies a reference on the current walk. The type is part of
// the key since a struct and its first field share an address.
type visitKey struct {
	ptr uintptr
	typ reflect.Type
	len int
}

type marshaler struct {
	cfg     *mapConfig
	visited map[visitKey]string
}

// enter records a reference on the current walk, failing if an ancestor
// holds the same one.
func (m *marshaler) enter(val reflect.Value, path string) (func(), error) {
	key := visitKey{ptr: val.Pointer(), typ: val.Type()}
	if val.Kind() == reflect.Slice {
		key.len = val.Len()
	}
	if prev, seen := m.visited[key]; seen {
		return nil, &CyclicInputError{Path: path, Prev: prev}
	}
	m.visited[key] = path
	return func() { delete(m.visited, key) }, nil
}

func (m *marshaler) value(val reflect.Value, path string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	typ := val.Type()
	kind := typ.Kind()

	switch typ {
	case nodePtrType:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return val.Interface().(*ir.Node).Clone(), nil
	case nodeType:
		n := val.Interface().(ir.Node)
		return n.Clone(), nil
	case mapSliceType:
		return m.mapSlice(val.Interface().(yaml.MapSlice), path)
	}

	if kind == reflect.Pointer || kind == reflect.Interface {
		if val.IsNil() {
			return ir.Null(), nil
		}
	}
	if node, ok, err := m.custom(val, path); ok || err != nil {
		return node, err
	}

	switch kind {
	case reflect.Pointer:
		leave, err := m.enter(val, path)
		if err != nil {
			return nil, err
		}
		defer leave()
		return m.value(val.Elem(), path)

	case reflect.Interface:
		return m.value(val.Elem(), path)

	case reflect.String:
		v := val.String()
		if !utf8.ValidString(v) {
			return nil, &UnsupportedTypeError{Path: path, Type: typ, Msg: fmt.Sprintf("invalid UTF-8 in %q", v)}
		}
		return ir.FromString(v), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := val.Uint()
		if u > math.MaxInt64 {
			return nil, &UnsupportedTypeError{Path: path, Type: typ, Msg: fmt.Sprintf("%d does not fit an Integer", u)}
		}
		return ir.FromInt(int64(u)), nil

	case reflect.Float32:
		return ir.FromFloat32(float32(val.Float())), nil

	case reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice:
		if val.IsNil() {
			return ir.Null(), nil
		}
		leave, err := m.enter(val, path)
		if err != nil {
			return nil, err
		}
		defer leave()
		return m.slice(val, path)

	case reflect.Array:
		return m.slice(val, path)

	case reflect.Map:
		return m.mapValue(val, path)

	case reflect.Struct:
		return m.structValue(val, path)
	}
	return nil, &UnsupportedTypeError{Path: path, Type: typ}
}

// custom applies IRMarshaler and encoding.TextMarshaler.
func (m *marshaler) custom(val reflect.Value, path string) (*ir.Node, bool, error) {
	if !val.Type().Implements(irMarshalerType) && val.CanAddr() && reflect.PointerTo(val.Type()).Implements(irMarshalerType) {
		val = val.Addr()
	}
	if val.Type().Implements(irMarshalerType) {
		node, err := val.Interface().(IRMarshaler).ToIR()
		if err != nil {
			return nil, true, &MarshalError{FieldPath: path, Message: "ToIR failed", Err: err}
		}
		if node == nil {
			return ir.Null(), true, nil
		}
		return node.Clone(), true, nil
	}
	if !val.Type().Implements(textMarshalerType) && val.CanAddr() && reflect.PointerTo(val.Type()).Implements(textMarshalerType) {
		val = val.Addr()
	}
	if val.Type().Implements(textMarshalerType) {
		text, err := val.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, true, &MarshalError{FieldPath: path, Message: "MarshalText failed", Err: err}
		}
		if !utf8.Valid(text) {
			return nil, true, &UnsupportedTypeError{Path: path, Type: val.Type(), Msg: fmt.Sprintf("MarshalText gave invalid UTF-8 %q", text)}
		}
		return ir.FromString(string(text)), true, nil
	}
	return nil, false, nil
}

func (m *marshaler) slice(val reflect.Value, path string) (*ir.Node, error) {
	n := val.Len()
	elements := make([]*ir.Node, n)
	for i := range n {
		elem, err := m.value(val.Index(i), kpath.JoinIndex(path, i))
		if err != nil {
			return nil, err
		}
		elements[i] = elem
	}
	return ir.FromSlice(elements), nil
}

func (m *marshaler) mapValue(val reflect.Value, path string) (*ir.Node, error) {
	if val.IsNil() {
		return ir.Null(), nil
	}
	typ := val.Type()
	if typ.Key().Kind() != reflect.String {
		return nil, &UnsupportedTypeError{Path: path, Type: typ, Msg: fmt.Sprintf("map key type %s is not a string", typ.Key())}
	}
	leave, err := m.enter(val, path)
	if err != nil {
		return nil, err
	}
	defer leave()

	keys := val.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return strings.Compare(a.String(), b.String())
	})
	kvs := make([]ir.KeyVal, len(keys))
	for i, k := range keys {
		key := k.String()
		if !utf8.ValidString(key) {
			return nil, &UnsupportedTypeError{Path: path, Type: typ, Msg: fmt.Sprintf("invalid UTF-8 in key %q", key)}
		}
		v, err := m.value(val.MapIndex(k), kpath.JoinField(path, key))
		if err != nil {
			return nil, err
		}
		kvs[i] = ir.KeyVal{Key: key, Val: v}
	}
	return ir.FromKeyVals(kvs), nil
}

func (m *marshaler) mapSlice(ms yaml.MapSlice, path string) (*ir.Node, error) {
	if ms == nil {
		return ir.Null(), nil
	}
	kvs := make([]ir.KeyVal, len(ms))
	for i, item := range ms {
		key, ok := item.Key.(string)
		if !ok {
			return nil, &UnsupportedTypeError{Path: path, Type: reflect.TypeOf(item.Key), Msg: fmt.Sprintf("map key %v is not a string", item.Key)}
		}
		if !utf8.ValidString(key) {
			return nil, &UnsupportedTypeError{Path: path, Type: mapSliceType, Msg: fmt.Sprintf("invalid UTF-8 in key %q", key)}
		}
		v, err := m.value(reflect.ValueOf(item.Value), kpath.JoinField(path, key))
		if err != nil {
			return nil, err
		}
		kvs[i] = ir.KeyVal{Key: key, Val: v}
	}
	return ir.FromKeyVals(kvs), nil
}

// structValue converts a struct to a mapping in field declaration order.
// Struct values themselves are not tracked for cycles: only references can
// form one.
func (m *marshaler) structValue(val reflect.Value, path string) (*ir.Node, error) {
	shape, err := ShapeOf(val.Type())
	if err != nil {
		return nil, &UnsupportedTypeError{Path: path, Type: val.Type(), Msg: err.Error()}
	}
	kvs := make([]ir.KeyVal, len(shape.Fields))
	for i := range shape.Fields {
		f := &shape.Fields[i]
		v, err := m.value(f.Get(val), kpath.JoinField(path, f.Name))
		if err != nil {
			return nil, err
		}
		kvs[i] = ir.KeyVal{Key: f.Name, Val: v}
	}
	return ir.FromKeyVals(kvs), nil
}
