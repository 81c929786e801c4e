package token

import (
	"bytes"
	"math"
	"strconv"
)

// Text used for the float values outside the JSON number grammar. They are
// written as JSON strings.
const (
	NaN         = "NaN"
	Infinity    = "Infinity"
	NegInfinity = "-Infinity"
)

func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatFloat renders v with the fewest significant digits that parse back
// to v at the given bit size (32 or 64). Values in [1e-6, 1e21) use plain
// notation, others an exponent. The result always reads back as a float:
// integral values get a ".0" suffix.
//
// NaN and the infinities render as [NaN], [Infinity] and [NegInfinity].
func FormatFloat(v float64, bits int) string {
	return string(AppendFloat(nil, v, bits))
}

func AppendFloat(dst []byte, v float64, bits int) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, NaN...)
	case math.IsInf(v, 1):
		return append(dst, Infinity...)
	case math.IsInf(v, -1):
		return append(dst, NegInfinity...)
	}
	if bits != 32 {
		bits = 64
	}
	abs := math.Abs(v)
	fmtc := byte('f')
	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			fmtc = 'e'
		}
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, v, fmtc, -1, bits)
	if fmtc == 'e' {
		// e-07 -> e-7
		n := len(dst)
		if n-start >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
		return dst
	}
	if bytes.IndexByte(dst[start:], '.') == -1 {
		dst = append(dst, '.', '0')
	}
	return dst
}

// SpecialFloat returns the float a sentinel string stands for.
func SpecialFloat(s string) (float64, bool) {
	switch s {
	case NaN:
		return math.NaN(), true
	case Infinity:
		return math.Inf(1), true
	case NegInfinity:
		return math.Inf(-1), true
	}
	return 0, false
}
