package token

import (
	"math"
	"strconv"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		bits int
		want string
	}{
		{"float32 1.1", float64(float32(1.1)), 32, "1.1"},
		{"float64 1.1", 1.1, 64, "1.1"},
		{"pi", math.Pi, 64, "3.141592653589793"},
		{"float32 pi", float64(float32(math.Pi)), 32, "3.1415927"},
		{"integral", 2, 64, "2.0"},
		{"integral float32", 100, 32, "100.0"},
		{"zero", 0, 64, "0.0"},
		{"negative zero", math.Copysign(0, -1), 64, "-0.0"},
		{"small", 1e-7, 64, "1e-7"},
		{"small boundary", 1e-6, 64, "0.000001"},
		{"large", 1e21, 64, "1e+21"},
		{"below large", 1e20, 64, "100000000000000000000.0"},
		{"negative", -0.5, 64, "-0.5"},
		{"max float64", math.MaxFloat64, 64, "1.7976931348623157e+308"},
		{"smallest float64", 5e-324, 64, "5e-324"},
		{"nan", math.NaN(), 64, NaN},
		{"inf", math.Inf(1), 64, Infinity},
		{"-inf", math.Inf(-1), 32, NegInfinity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatFloat(tt.v, tt.bits)
			if got != tt.want {
				t.Errorf("FormatFloat(%v, %d) = %q, want %q", tt.v, tt.bits, got, tt.want)
			}
		})
	}
}

func TestFormatFloatRoundTrip(t *testing.T) {
	f64s := []float64{1.1, math.Pi, math.E, 0.1 + 0.2, 1.0 / 3, 123456789.123456789, 2.5e-300, -7.25e100}
	for _, v := range f64s {
		s := FormatFloat(v, 64)
		got, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if math.Float64bits(got) != math.Float64bits(v) {
			t.Errorf("64-bit %v -> %q -> %v", v, s, got)
		}
		if isFloat, err := LexNumber([]byte(s)); err != nil || !isFloat {
			t.Errorf("%q does not lex as a float: %v", s, err)
		}
	}
	f32s := []float32{1.1, 3.4028235e38, 1.0 / 3, 16777217, 1e-10, 0.3}
	for _, v := range f32s {
		s := FormatFloat(float64(v), 32)
		got, err := strconv.ParseFloat(s, 32)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if float32(got) != v {
			t.Errorf("32-bit %v -> %q -> %v", v, s, float32(got))
		}
	}
}

func TestSpecialFloat(t *testing.T) {
	for _, s := range []string{NaN, Infinity, NegInfinity} {
		f, ok := SpecialFloat(s)
		if !ok {
			t.Fatalf("%q not special", s)
		}
		if got := FormatFloat(f, 64); got != s {
			t.Errorf("FormatFloat(SpecialFloat(%q)) = %q", s, got)
		}
	}
	if _, ok := SpecialFloat("nan"); ok {
		t.Error("lowercase nan should not be special")
	}
}
