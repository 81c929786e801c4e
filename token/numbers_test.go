package token

import (
	"errors"
	"testing"
)

func TestLexNumber(t *testing.T) {
	tests := []struct {
		in      string
		isFloat bool
		err     error
	}{
		{"0", false, nil},
		{"-12", false, nil},
		{"9223372036854775807", false, nil},
		{"1.5", true, nil},
		{"-0.0", true, nil},
		{"1e5", true, nil},
		{"1E-5", true, nil},
		{"2.5e+10", true, nil},
		{"01", false, ErrNumberLeadingZero},
		{"", false, ErrNumber},
		{"-", false, ErrNumber},
		{"1.", false, ErrNumber},
		{".5", false, ErrNumber},
		{"1e", false, ErrNumber},
		{"1.2.3", false, ErrNumber},
		{"0x10", false, ErrNumber},
	}
	for _, tt := range tests {
		isFloat, err := LexNumber([]byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("LexNumber(%q) error = %v, want %v", tt.in, err, tt.err)
			continue
		}
		if err == nil && isFloat != tt.isFloat {
			t.Errorf("LexNumber(%q) isFloat = %v, want %v", tt.in, isFloat, tt.isFloat)
		}
	}
}
