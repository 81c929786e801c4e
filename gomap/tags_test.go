package gomap

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseStructTag(t *testing.T) {
	tests := []struct {
		tag  string
		want map[string]string
		err  bool
	}{
		{"", map[string]string{}, false},
		{"field=name", map[string]string{"field": "name"}, false},
		{"field='with space',flag", map[string]string{"field": "with space", "flag": ""}, false},
		{`field="a,b"`, map[string]string{"field": "a,b"}, false},
		{"=x", nil, true},
		{"field='open", nil, true},
	}
	for _, tt := range tests {
		got, err := ParseStructTag(tt.tag)
		if tt.err {
			if err == nil {
				t.Errorf("ParseStructTag(%q) expected error", tt.tag)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStructTag(%q): %v", tt.tag, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseStructTag(%q) (-want +got):\n%s", tt.tag, diff)
		}
	}
}

type inner struct {
	Deep int
}

type shaped struct {
	inner
	Base
	A       string `ctree:"field='a key'"`
	B       int    `ctree:"-"`
	private int
	C       []byte
}

func TestShapeOf(t *testing.T) {
	shape, err := ShapeOf(reflect.TypeFor[shaped]())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Deep", "ID", "Kind", "a key", "C"}
	if diff := cmp.Diff(want, shape.Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	again, _ := ShapeOf(reflect.TypeFor[shaped]())
	if again != shape {
		t.Error("shape not cached")
	}

	v := reflect.ValueOf(&shaped{}).Elem()
	f, ok := shape.Lookup("Deep")
	if !ok {
		t.Fatal("Deep not found")
	}
	f.Set(v, reflect.ValueOf(9))
	if got := f.Get(v).Int(); got != 9 {
		t.Errorf("Deep = %d", got)
	}
	if _, ok := shape.Lookup("deep"); ok {
		t.Error("lookup is not case-sensitive")
	}
	if _, err := ShapeOf(reflect.TypeFor[int]()); err == nil {
		t.Error("non-struct accepted")
	}
}
