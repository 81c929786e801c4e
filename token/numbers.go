package token

// LexNumber checks that d is exactly one number in RFC 8259 grammar and
// reports whether it is a float token (it has a fraction or an exponent).
func LexNumber(d []byte) (isFloat bool, err error) {
	if len(d) != 0 && d[0] == '-' {
		d = d[1:]
	}
	n, isFloat, err := number(d)
	if err != nil {
		return false, err
	}
	if n != len(d) {
		return false, ErrNumber
	}
	return isFloat, nil
}

func number(d []byte) (int, bool, error) {
	digits := asciiDigits(d)
	if digits == 0 {
		return 0, false, ErrNumber
	}
	if digits > 1 && d[0] == '0' {
		return digits, false, ErrNumberLeadingZero
	}
	f := fract(d[digits:])
	e := exp(d[digits+f:])
	if f+e == 0 {
		return digits, false, nil
	}
	return f + e + digits, true, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d []byte) int {
	if len(d) == 0 {
		return 0
	}
	if d[0] != '.' {
		return 0
	}
	for i := 1; i < len(d); i++ {
		if !asciiDigit(d[i]) {
			if i == 1 {
				// . must be followed by 1 or more digits rfc 7159
				return 0
			}
			return i
		}
	}
	if len(d) == 1 {
		return 0
	}
	return len(d)
}
