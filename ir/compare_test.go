package ir

import (
	"math"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Bool < Integer < Float < Text < Sequence < Mapping
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Int", FromBool(true), FromInt(1), -1},
		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Float < String", FromFloat(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromKeyVals(nil), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"float32 1.1 == float64 1.1", FromFloat32(1.1), FromFloat(1.1), 0},
		{"float32 != different float64", FromFloat32(1.1), FromFloat(float64(float32(1.1))), -1},
		{"NaN == NaN", FromFloat(math.NaN()), FromFloat(math.NaN()), 0},

		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array elements", FromSlice([]*Node{FromInt(2)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), 1},

		{"Object key order matters",
			FromKeyVals([]KeyVal{{Key: "a", Val: Null()}, {Key: "b", Val: Null()}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: Null()}, {Key: "a", Val: Null()}}), -1},
		{"Object values",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %d, want %d", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare() reversed = %d, want %d", got, -tt.expected)
			}
			if tt.expected == 0 && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal nodes hash differently")
			}
		})
	}
}

func TestHashDistinguishesKinds(t *testing.T) {
	if FromInt(1).Hash() == FromFloat(1).Hash() {
		t.Error("Integer 1 and Float 1.0 hash equally")
	}
	a := FromKeyVals([]KeyVal{{Key: "ab", Val: FromString("c")}})
	b := FromKeyVals([]KeyVal{{Key: "a", Val: FromString("bc")}})
	if a.Hash() == b.Hash() {
		t.Error("key/value boundary not hashed")
	}
}
