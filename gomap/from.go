package gomap

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/signadot/ctree/debug"
	"github.com/signadot/ctree/ir"
	"github.com/signadot/ctree/ir/kpath"
	"github.com/signadot/ctree/parse"
	"github.com/signadot/ctree/token"
)

// IRUnmarshaler is implemented by types that read themselves from a tree.
type IRUnmarshaler interface {
	FromIR(*ir.Node) error
}

var (
	irUnmarshalerType   = reflect.TypeFor[IRUnmarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// FromText parses d and stores the result in the value pointed to by v.
func FromText(d []byte, v any, opts ...UnmapOption) error {
	node, err := parse.Parse(d, ToParseOptions(opts...)...)
	if err != nil {
		return err
	}
	return FromIR(node, v, opts...)
}

// FromIR stores node in the value pointed to by v. v must be a non-nil
// pointer. On error, v may be partially filled.
func FromIR(node *ir.Node, v any, opts ...UnmapOption) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer {
		return &UnmarshalError{Message: fmt.Sprintf("destination must be a pointer, got %T", v)}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	u := &unmarshaler{cfg: newUnmapConfig(opts...)}
	err := u.value(node, val.Elem(), u.cfg.Path)
	if debug.Unmarshal() {
		debug.Logf("unmarshal %v into %T: %v\n", node, v, err)
	}
	return err
}

type unmarshaler struct {
	cfg *unmapConfig
}

func mismatch(path string, want reflect.Type, node *ir.Node) error {
	return &TypeMismatchError{Path: path, Expected: want.String(), Actual: node.Type.String()}
}

func (u *unmarshaler) value(node *ir.Node, val reflect.Value, path string) error {
	if node == nil {
		return &UnmarshalError{FieldPath: path, Message: "nil node"}
	}
	typ := val.Type()

	switch typ {
	case nodePtrType:
		val.Set(reflect.ValueOf(node.Clone()))
		return nil
	case nodeType:
		val.Set(reflect.ValueOf(*node.Clone()))
		return nil
	case mapSliceType:
		return u.mapSlice(node, val, path)
	}

	if typ.Kind() == reflect.Pointer {
		if node.Type == ir.NullType && !typ.Implements(irUnmarshalerType) {
			val.Set(reflect.Zero(typ))
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(typ.Elem()))
		}
		if ok, err := u.custom(node, val, path); ok {
			return err
		}
		return u.value(node, val.Elem(), path)
	}
	if val.CanAddr() {
		if ok, err := u.custom(node, val.Addr(), path); ok {
			return err
		}
	}

	if node.Type == ir.NullType {
		val.Set(reflect.Zero(typ))
		return nil
	}

	switch typ.Kind() {
	case reflect.String:
		switch {
		case node.Type == ir.StringType:
			val.SetString(node.String)
		case node.Type == ir.FloatType && (math.IsNaN(node.Float64) || math.IsInf(node.Float64, 0)):
			// a sentinel read back from text in a string context
			val.SetString(token.FormatFloat(node.Float64, node.Width))
		default:
			return mismatch(path, typ, node)
		}
		return nil

	case reflect.Bool:
		if node.Type != ir.BoolType {
			return mismatch(path, typ, node)
		}
		val.SetBool(node.Bool)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if node.Type != ir.IntType {
			return mismatch(path, typ, node)
		}
		if val.OverflowInt(node.Int64) {
			return &TypeMismatchError{Path: path, Expected: typ.String(), Actual: "Integer " + token.FormatInt(node.Int64)}
		}
		val.SetInt(node.Int64)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if node.Type != ir.IntType {
			return mismatch(path, typ, node)
		}
		if node.Int64 < 0 || val.OverflowUint(uint64(node.Int64)) {
			return &TypeMismatchError{Path: path, Expected: typ.String(), Actual: "Integer " + token.FormatInt(node.Int64)}
		}
		val.SetUint(uint64(node.Int64))
		return nil

	case reflect.Float32, reflect.Float64:
		f, err := floatValue(node, typ.Bits())
		if err != nil {
			return &TypeMismatchError{Path: path, Expected: typ.String(), Actual: err.Error()}
		}
		val.SetFloat(f)
		return nil

	case reflect.Slice:
		return u.slice(node, val, path)

	case reflect.Array:
		return u.array(node, val, path)

	case reflect.Map:
		return u.mapValue(node, val, path)

	case reflect.Struct:
		return u.structValue(node, val, path)

	case reflect.Interface:
		if typ.NumMethod() != 0 {
			return &UnsupportedTypeError{Path: path, Type: typ, Msg: "cannot choose a concrete type for " + typ.String()}
		}
		res, err := u.untyped(node, path)
		if err != nil {
			return err
		}
		if res == nil {
			val.Set(reflect.Zero(typ))
		} else {
			val.Set(reflect.ValueOf(res))
		}
		return nil
	}
	return &UnsupportedTypeError{Path: path, Type: typ}
}

// custom applies IRUnmarshaler and encoding.TextUnmarshaler to ptr.
func (u *unmarshaler) custom(node *ir.Node, ptr reflect.Value, path string) (bool, error) {
	switch x := ptr.Interface().(type) {
	case IRUnmarshaler:
		if err := x.FromIR(node); err != nil {
			return true, &UnmarshalError{FieldPath: path, Message: "FromIR failed", Err: err}
		}
		return true, nil
	case encoding.TextUnmarshaler:
		if node.Type == ir.NullType {
			return false, nil
		}
		if node.Type != ir.StringType {
			return true, &TypeMismatchError{Path: path, Expected: ptr.Type().Elem().String(), Actual: node.Type.String()}
		}
		if err := x.UnmarshalText([]byte(node.String)); err != nil {
			return true, &UnmarshalError{FieldPath: path, Message: "UnmarshalText failed", Err: err}
		}
		return true, nil
	}
	return false, nil
}

// floatValue converts a number node to a float of the given bit size.
// Integers convert only when exactly representable. A 64-bit Float narrows
// to 32 bits through its literal or canonical text.
func floatValue(node *ir.Node, bits int) (float64, error) {
	switch node.Type {
	case ir.IntType:
		i := node.Int64
		var f float64
		if bits == 32 {
			f = float64(float32(i))
		} else {
			f = float64(i)
		}
		if f >= 0x1p63 || int64(f) != i {
			return 0, fmt.Errorf("Integer %d (not exact)", i)
		}
		return f, nil
	case ir.FloatType:
		if bits == 64 || node.Width == 32 || math.IsNaN(node.Float64) || math.IsInf(node.Float64, 0) {
			return node.Float64, nil
		}
		text := node.Number
		if text == "" {
			text = token.FormatFloat(node.Float64, 64)
		}
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return 0, fmt.Errorf("Float %s (out of float32 range)", text)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%s", node.Type)
}

func (u *unmarshaler) slice(node *ir.Node, val reflect.Value, path string) error {
	if node.Type != ir.ArrayType {
		return mismatch(path, val.Type(), node)
	}
	n := len(node.Values)
	res := reflect.MakeSlice(val.Type(), n, n)
	for i, v := range node.Values {
		if err := u.value(v, res.Index(i), kpath.JoinIndex(path, i)); err != nil {
			return err
		}
	}
	val.Set(res)
	return nil
}

func (u *unmarshaler) array(node *ir.Node, val reflect.Value, path string) error {
	if node.Type != ir.ArrayType {
		return mismatch(path, val.Type(), node)
	}
	if len(node.Values) != val.Len() {
		return &TypeMismatchError{
			Path:     path,
			Expected: val.Type().String(),
			Actual:   fmt.Sprintf("Sequence of %d", len(node.Values)),
		}
	}
	for i, v := range node.Values {
		if err := u.value(v, val.Index(i), kpath.JoinIndex(path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (u *unmarshaler) mapValue(node *ir.Node, val reflect.Value, path string) error {
	typ := val.Type()
	if typ.Key().Kind() != reflect.String {
		return &UnsupportedTypeError{Path: path, Type: typ, Msg: fmt.Sprintf("map key type %s is not a string", typ.Key())}
	}
	if node.Type != ir.ObjectType {
		return mismatch(path, typ, node)
	}
	res := reflect.MakeMapWithSize(typ, len(node.Fields))
	for i, key := range node.Fields {
		elem := reflect.New(typ.Elem()).Elem()
		if err := u.value(node.Values[i], elem, kpath.JoinField(path, key)); err != nil {
			return err
		}
		res.SetMapIndex(reflect.ValueOf(key).Convert(typ.Key()), elem)
	}
	val.Set(res)
	return nil
}

func (u *unmarshaler) mapSlice(node *ir.Node, val reflect.Value, path string) error {
	switch node.Type {
	case ir.NullType:
		val.Set(reflect.Zero(val.Type()))
		return nil
	case ir.ObjectType:
	default:
		return mismatch(path, val.Type(), node)
	}
	res := make(yaml.MapSlice, len(node.Fields))
	for i, key := range node.Fields {
		v, err := u.untyped(node.Values[i], kpath.JoinField(path, key))
		if err != nil {
			return err
		}
		res[i] = yaml.MapItem{Key: key, Value: v}
	}
	val.Set(reflect.ValueOf(res))
	return nil
}

// structValue fills the fields of val named by node's keys.
func (u *unmarshaler) structValue(node *ir.Node, val reflect.Value, path string) error {
	if node.Type != ir.ObjectType {
		return mismatch(path, val.Type(), node)
	}
	shape, err := ShapeOf(val.Type())
	if err != nil {
		return &UnsupportedTypeError{Path: path, Type: val.Type(), Msg: err.Error()}
	}
	for i, key := range node.Fields {
		f, ok := shape.Lookup(key)
		if !ok {
			if u.cfg.DisallowUnknown {
				return &UnmarshalError{FieldPath: kpath.JoinField(path, key), Message: fmt.Sprintf("no field of %s", val.Type())}
			}
			continue
		}
		fv := reflect.New(f.Type).Elem()
		fv.Set(f.Get(val))
		if err := u.value(node.Values[i], fv, kpath.JoinField(path, key)); err != nil {
			return err
		}
		f.Set(val, fv)
	}
	return nil
}

// untyped converts node to plain Go values for an any target.
func (u *unmarshaler) untyped(node *ir.Node, path string) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.IntType:
		return node.Int64, nil
	case ir.FloatType:
		if node.Width == 32 {
			return float32(node.Float64), nil
		}
		return node.Float64, nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			x, err := u.untyped(v, kpath.JoinIndex(path, i))
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	case ir.ObjectType:
		if u.cfg.OrderedMaps {
			res := make(yaml.MapSlice, len(node.Fields))
			for i, key := range node.Fields {
				x, err := u.untyped(node.Values[i], kpath.JoinField(path, key))
				if err != nil {
					return nil, err
				}
				res[i] = yaml.MapItem{Key: key, Value: x}
			}
			return res, nil
		}
		res := make(map[string]any, len(node.Fields))
		for i, key := range node.Fields {
			x, err := u.untyped(node.Values[i], kpath.JoinField(path, key))
			if err != nil {
				return nil, err
			}
			res[key] = x
		}
		return res, nil
	}
	return nil, &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("unknown node type %d", node.Type)}
}
