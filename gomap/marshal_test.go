package gomap

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/ctree/encode"
	"github.com/signadot/ctree/ir"
)

type celsius float64

func (c celsius) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%gC", float64(c))), nil
}

func (c *celsius) UnmarshalText(d []byte) error {
	s := strings.TrimSuffix(string(d), "C")
	var f float64
	if _, err := fmt.Sscanf(s, "%g", &f); err != nil {
		return err
	}
	*c = celsius(f)
	return nil
}

type version struct{ major, minor int }

func (v version) ToIR() (*ir.Node, error) {
	return ir.FromSlice([]*ir.Node{ir.FromInt(int64(v.major)), ir.FromInt(int64(v.minor))}), nil
}

func (v *version) FromIR(node *ir.Node) error {
	if node.Type != ir.ArrayType || len(node.Values) != 2 {
		return fmt.Errorf("bad version %s", node.Type)
	}
	v.major, v.minor = int(node.Values[0].Int64), int(node.Values[1].Int64)
	return nil
}

type Base struct {
	ID   int
	Kind string
}

type Sample struct {
	Base
	Title   string
	Ratio   float32
	Pi      float64
	Renamed string `ctree:"field=renamed"`
	Skipped string `ctree:"-"`
	hidden  string
	List    []int
	Nested  *Sample
	Temp    celsius
	Ver     version
	Any     any
	Labels  map[string]string
}

func TestToIRStruct(t *testing.T) {
	s := Sample{
		Base:    Base{ID: 1, Kind: "k"},
		Title:   "t",
		Ratio:   1.1,
		Pi:      math.Pi,
		Renamed: "r",
		Skipped: "s",
		hidden:  "h",
		List:    []int{1, 2},
		Temp:    21.5,
		Ver:     version{1, 2},
		Any:     []any{"x", 2},
		Labels:  map[string]string{"b": "2", "a": "1"},
	}
	node, err := ToIR(s)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"ID":1,"Kind":"k","Title":"t","Ratio":1.1,"Pi":3.141592653589793,"renamed":"r",` +
		`"List":[1,2],"Nested":null,"Temp":"21.5C","Ver":[1,2],"Any":["x",2],"Labels":{"a":"1","b":"2"}}`
	if diff := cmp.Diff(want, encode.MustString(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if r := ir.Get(node, "Ratio"); r.Width != 32 {
		t.Errorf("float32 field has width %d", r.Width)
	}
}

func TestToIRScalars(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{true, "true"},
		{int8(-3), "-3"},
		{uint16(9), "9"},
		{float32(0.1), "0.1"},
		{0.1, "0.1"},
		{2.0, "2.0"},
		{"s", `"s"`},
		{[]string(nil), "null"},
		{[]string{}, "[]"},
		{[2]bool{true, false}, "[true,false]"},
		{(*Base)(nil), "null"},
		{map[string]int(nil), "null"},
		{ir.FromInt(5), "5"},
		{yaml.MapSlice{{Key: "z", Value: 1}, {Key: "a", Value: 2}}, `{"z":1,"a":2}`},
	}
	for _, tt := range tests {
		node, err := ToIR(tt.in)
		if err != nil {
			t.Errorf("ToIR(%#v): %v", tt.in, err)
			continue
		}
		if got := encode.MustString(node); got != tt.want {
			t.Errorf("ToIR(%#v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestToIRClonesNodes(t *testing.T) {
	inner := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	node, err := ToIR(map[string]*ir.Node{"in": inner})
	if err != nil {
		t.Fatal(err)
	}
	if ir.Get(node, "in") == inner {
		t.Error("node shared with input")
	}
}

func TestToIRUnsupported(t *testing.T) {
	tests := []struct {
		name string
		in   any
		path string
	}{
		{"chan", make(chan int), ""},
		{"func", func() {}, ""},
		{"complex", complex(1, 2), ""},
		{"int keys", map[int]string{1: "a"}, ""},
		{"nested func", struct{ F func() }{F: func() {}}, "F"},
		{"in slice", []any{1, make(chan bool)}, "[1]"},
		{"big uint", uint64(math.MaxUint64), ""},
		{"mapslice key", yaml.MapSlice{{Key: 1, Value: 2}}, ""},
		{"invalid utf8", "a\xffb", ""},
		{"invalid utf8 field", struct{ S string }{S: "\xfe"}, "S"},
		{"invalid utf8 key", map[string]int{"k\xff": 1}, ""},
		{"invalid utf8 mapslice key", yaml.MapSlice{{Key: "\xff", Value: 2}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToIR(tt.in)
			var uerr *UnsupportedTypeError
			if !errors.As(err, &uerr) {
				t.Fatalf("expected UnsupportedTypeError, got %v", err)
			}
			if uerr.Path != tt.path {
				t.Errorf("path = %q, want %q", uerr.Path, tt.path)
			}
			if !errors.Is(err, ErrUnsupportedType) {
				t.Error("does not wrap ErrUnsupportedType")
			}
		})
	}
}

type failing struct{}

func (failing) ToIR() (*ir.Node, error) { return nil, errors.New("boom") }

func TestToIRMarshalerError(t *testing.T) {
	_, err := ToIR(struct{ F failing }{})
	var merr *MarshalError
	if !errors.As(err, &merr) || merr.FieldPath != "F" {
		t.Fatalf("got %v", err)
	}
}

func TestToText(t *testing.T) {
	d, err := ToText(Base{ID: 2, Kind: "x"}, WithEncodeOptions(encode.EncodeIndent(1)))
	if err != nil {
		t.Fatal(err)
	}
	if want := "{\n \"ID\": 2,\n \"Kind\": \"x\"\n}"; string(d) != want {
		t.Errorf("got %q", d)
	}
}

func TestShapeConflict(t *testing.T) {
	type Dup struct {
		Base
		ID string
	}
	_, err := ShapeOf(reflect.TypeFor[Dup]())
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if _, err := ToIR(Dup{}); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("ToIR: %v", err)
	}
}
