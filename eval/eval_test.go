package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/ctree/encode"
	"github.com/signadot/ctree/ir"
	"github.com/signadot/ctree/parse"
)

const sample = `{
  "name": "ctree",
  "array1": [1, 2, 3],
  "dict2": {"d": {"a1": 2}},
  "ratio": 0.5
}`

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestEval(t *testing.T) {
	doc := mustParse(t, sample)
	tests := []struct {
		expr string
		want string
	}{
		{`name`, `"ctree"`},
		{`array1[2]`, `3`},
		{`len(array1)`, `3`},
		{`dict2.d.a1 + 1`, `3`},
		{`ratio * 2`, `1.0`},
		{`getpath("dict2.d.a1")`, `2`},
		{`getpath("missing")`, `null`},
		{`haspath("array1[2]")`, `true`},
		{`haspath("array1[3]")`, `false`},
		{`textpath("dict2")`, `"{\"d\":{\"a1\":2}}"`},
		{`map(array1, # * 10)`, `[10,20,30]`},
		{`{"n": name, "first": array1[0]}`, `{"first":1,"n":"ctree"}`},
		{`missing`, `null`},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Eval(doc, tt.expr, nil)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, encode.MustString(got)); diff != "" {
				t.Errorf("Eval(%q) mismatch (-want +got):\n%s", tt.expr, diff)
			}
		})
	}
	if got := encode.MustString(doc); got != encode.MustString(mustParse(t, sample)) {
		t.Errorf("document changed: %s", got)
	}
}

func TestEvalNonMapping(t *testing.T) {
	got, err := Eval(mustParse(t, `[1,2,3]`), `doc[1]`, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s := encode.MustString(got); s != "2" {
		t.Errorf("got %s, want 2", s)
	}
}

func TestEvalErrors(t *testing.T) {
	doc := mustParse(t, sample)
	for _, e := range []string{`name +`, `getpath("a..b")`} {
		if _, err := Eval(doc, e, nil); err == nil {
			t.Errorf("Eval(%q) expected error", e)
		}
	}
}

func TestEnvSetArg(t *testing.T) {
	env := Env{}
	for _, a := range []string{"a.b=3", "a.c=x", "flag=true", "empty="} {
		if err := env.SetArg(a); err != nil {
			t.Fatalf("SetArg(%q): %v", a, err)
		}
	}
	want := Env{
		"a":     map[string]any{"b": int64(3), "c": "x"},
		"flag":  true,
		"empty": "",
	}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("env mismatch (-want +got):\n%s", diff)
	}
	if err := env.SetArg("flag.x=1"); err == nil {
		t.Error("expected error setting under a scalar")
	}
	if err := env.SetArg("novalue"); err == nil {
		t.Error("expected error for missing '='")
	}

	got, err := Eval(mustParse(t, `{"x":1}`), `x + a.b`, env)
	if err != nil {
		t.Fatal(err)
	}
	if s := encode.MustString(got); s != "4" {
		t.Errorf("got %s, want 4", s)
	}
}
