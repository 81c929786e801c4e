package gomap

import (
	"fmt"
	"reflect"
	"sync"
)

// Field describes one mapping entry of a struct shape.
type Field struct {
	// Name is the key of the entry in the tree.
	Name string
	// GoName is the name of the struct field.
	GoName string
	Type   reflect.Type
	// Index is the field index path, longer than one for fields promoted
	// from embedded structs.
	Index []int
}

// Get returns the field of struct value v.
func (f *Field) Get(v reflect.Value) reflect.Value {
	return v.FieldByIndex(f.Index)
}

// Set stores x in the field of the addressable struct value v.
func (f *Field) Set(v, x reflect.Value) {
	v.FieldByIndex(f.Index).Set(x)
}

// Shape is the ordered list of tree entries of a struct type.
type Shape struct {
	Type   reflect.Type
	Fields []Field
	byName map[string]int
}

// Lookup finds the field stored under the tree key name. Keys are matched
// case-sensitively.
func (s *Shape) Lookup(name string) (*Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return &s.Fields[i], true
}

// Names returns the tree keys in declaration order.
func (s *Shape) Names() []string {
	res := make([]string, len(s.Fields))
	for i := range s.Fields {
		res[i] = s.Fields[i].Name
	}
	return res
}

type shapeEntry struct {
	shape *Shape
	err   error
}

var shapes sync.Map // reflect.Type -> *shapeEntry

// ShapeOf returns the shape of struct type t. Results are cached for the
// life of the process.
func ShapeOf(t reflect.Type) (*Shape, error) {
	if e, ok := shapes.Load(t); ok {
		entry := e.(*shapeEntry)
		return entry.shape, entry.err
	}
	shape, err := buildShape(t)
	e, _ := shapes.LoadOrStore(t, &shapeEntry{shape: shape, err: err})
	entry := e.(*shapeEntry)
	return entry.shape, entry.err
}

func buildShape(t reflect.Type) (*Shape, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s is not a struct", t)
	}
	s := &Shape{Type: t, byName: map[string]int{}}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name, skip, err := fieldName(sf)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t, sf.Name, err)
		}
		if skip {
			continue
		}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && sf.Tag.Get(tagName) == "" {
			embedded, err := ShapeOf(sf.Type)
			if err != nil {
				return nil, err
			}
			for _, ef := range embedded.Fields {
				index := make([]int, 0, len(ef.Index)+1)
				index = append(append(index, sf.Index...), ef.Index...)
				if err := s.add(Field{Name: ef.Name, GoName: ef.GoName, Type: ef.Type, Index: index}); err != nil {
					return nil, err
				}
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if err := s.add(Field{Name: name, GoName: sf.Name, Type: sf.Type, Index: sf.Index}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Shape) add(f Field) error {
	if _, exists := s.byName[f.Name]; exists {
		return fmt.Errorf("%s: field name conflict on %q", s.Type, f.Name)
	}
	s.byName[f.Name] = len(s.Fields)
	s.Fields = append(s.Fields, f)
	return nil
}

// fieldName applies the ctree tag of sf.
func fieldName(sf reflect.StructField) (name string, skip bool, err error) {
	tag := sf.Tag.Get(tagName)
	if tag == "-" {
		return "", true, nil
	}
	parsed, err := ParseStructTag(tag)
	if err != nil {
		return "", false, err
	}
	if renamed, ok := parsed["field"]; ok && renamed != "" {
		return renamed, false, nil
	}
	return sf.Name, false, nil
}
