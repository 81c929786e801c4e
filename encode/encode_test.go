package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/ctree/format"
	"github.com/signadot/ctree/ir"
)

func TestEncodeCanonical(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"null", ir.Null(), "null"},
		{"bool", ir.FromBool(false), "false"},
		{"int", ir.FromInt(-42), "-42"},
		{"min int", ir.FromInt(math.MinInt64), "-9223372036854775808"},
		{"float32", ir.FromFloat32(1.1), "1.1"},
		{"float64 pi", ir.FromFloat(math.Pi), "3.141592653589793"},
		{"integral float", ir.FromFloat(3), "3.0"},
		{"small float", ir.FromFloat(1e-7), "1e-7"},
		{"large float", ir.FromFloat(1.5e21), "1.5e+21"},
		{"nan", ir.FromFloat(math.NaN()), `"NaN"`},
		{"inf", ir.FromFloat(math.Inf(1)), `"Infinity"`},
		{"neg inf", ir.FromFloat32(float32(math.Inf(-1))), `"-Infinity"`},
		{"string", ir.FromString("say \"hi\"\n<b>"), `"say \"hi\"\n<b>"`},
		{"empty array", ir.FromSlice(nil), "[]"},
		{"empty object", ir.FromKeyVals(nil), "{}"},
		{"nested",
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "z", Val: ir.FromInt(1)},
				{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.Null()})},
				{Key: "m", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "x", Val: ir.FromFloat(0.5)}})},
			}),
			`{"z":1,"a":[true,null],"m":{"x":0.5}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Encode(tt.node, buf); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeIndent(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
		{Key: "c", Val: ir.FromKeyVals(nil)},
	})
	got := MustString(node, EncodeIndent(2))
	want := strings.Join([]string{
		`{`,
		`  "a": 1,`,
		`  "b": [`,
		`    1,`,
		`    2`,
		`  ],`,
		`  "c": {}`,
		`}`,
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("indent (-want +got):\n%s", diff)
	}
}

func TestEncodeNewline(t *testing.T) {
	d, err := EncodeBytes(ir.FromInt(1), EncodeNewline(true))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "1\n" {
		t.Errorf("got %q", d)
	}
}

func TestEncodeErrors(t *testing.T) {
	bad := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromSlice([]*ir.Node{nil})}})
	_, err := EncodeBytes(bad)
	if !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected ErrEncoding, got %v", err)
	}
	if !strings.Contains(err.Error(), "a[0]") {
		t.Errorf("error %q lacks path", err)
	}
	if _, err := EncodeBytes(nil); !errors.Is(err, ErrEncoding) {
		t.Errorf("nil root: %v", err)
	}
	if _, err := EncodeBytes(ir.Null(), EncodeFormat(format.Format(9))); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("bad format: %v", err)
	}
}

func TestEncodeYAML(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "zeta", Val: ir.FromInt(1)},
		{Key: "alpha", Val: ir.FromFloat(2)},
		{Key: "s", Val: ir.FromString("true")},
	})
	got := MustString(node, EncodeFormat(format.YAMLFormat))
	zi := strings.Index(got, "zeta: 1")
	ai := strings.Index(got, "alpha: 2.0")
	if zi == -1 || ai == -1 || zi > ai {
		t.Errorf("unexpected yaml:\n%s", got)
	}
	if strings.Contains(got, "s: true") {
		t.Errorf("string true not quoted:\n%s", got)
	}
}

func TestEncodeYAMLExponent(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{1e-7, "k: 1.0e-7"},
		{1e21, "k: 1.0e+21"},
		{-1.5e21, "k: -1.5e+21"},
		{0.25, "k: 0.25"},
	}
	for _, tt := range tests {
		node := ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromFloat(tt.f)}})
		if got := strings.TrimSpace(MustString(node, EncodeFormat(format.YAMLFormat))); got != tt.want {
			t.Errorf("yaml of %g = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestEncodeInvalidUTF8(t *testing.T) {
	nodes := []*ir.Node{
		ir.FromString("a\xffb"),
		ir.FromSlice([]*ir.Node{ir.FromString("\xfe")}),
		ir.FromKeyVals([]ir.KeyVal{{Key: "k\xff", Val: ir.Null()}}),
	}
	for _, f := range []format.Format{format.JSONFormat, format.YAMLFormat} {
		for _, node := range nodes {
			if _, err := EncodeBytes(node, EncodeFormat(f)); !errors.Is(err, ErrEncoding) {
				t.Errorf("%s: expected ErrEncoding, got %v", f, err)
			}
		}
	}
}

func TestEncodeColorsKeepText(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1)})}})
	colors := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.IntType, Attr: ValueColor}: func(v string, _ ...any) string { return "<" + v + ">" },
		},
	}
	got := MustString(node, EncodeColors(colors))
	if want := `{"a":[<1>]}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
