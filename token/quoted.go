package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	gojson "github.com/goccy/go-json"
)

// KPathQuoteField returns true if a field name needs to be quoted in a kinded path:
// it is empty, starts with a digit or quote, or contains path syntax,
// whitespace or control characters.
func KPathQuoteField(v string) bool {
	if v == "" {
		return true
	}
	switch v[0] {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '\'', '"', '*':
		return true
	}
	for _, r := range v {
		switch r {
		case '.', '[', ']', '{', '}', '\\':
			return true
		}
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// Quote double quotes v with JSON escapes. If autoSingle is set and v has
// more double quotes than single quotes, single quotes are used instead.
func Quote(v string, autoSingle bool) string {
	d, err := gojson.MarshalNoEscape(v)
	if err != nil {
		return strconv.Quote(v)
	}
	if !autoSingle || strings.Count(v, `"`) <= strings.Count(v, `'`) {
		return string(d)
	}
	b := make([]byte, 0, len(d)+4)
	b = append(b, '\'')
	body := d[1 : len(d)-1]
	for i := 0; i < len(body); i++ {
		switch c := body[i]; c {
		case '\\':
			if body[i+1] == '"' {
				b = append(b, '"')
			} else {
				b = append(b, c, body[i+1])
			}
			i++
		case '\'':
			b = append(b, '\\', '\'')
		default:
			b = append(b, c)
		}
	}
	return string(append(b, '\''))
}

// QuotedLen returns the length of the quoted string at the start of d,
// including both quotes.
func QuotedLen(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, ErrUnterminated
	}
	q := d[0]
	i := 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == q:
			return i + 1, nil
		case c == '\\':
			if i+1 >= len(d) {
				return 0, ErrUnterminated
			}
			switch d[i+1] {
			case '\'':
				if q != '\'' {
					return i, ErrBadEscape
				}
				i += 2
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if i+6 > len(d) {
					return 0, ErrUnterminated
				}
				if !allHex(d[i+2 : i+6]) {
					return i, ErrBadUnicode
				}
				i += 6
			default:
				return i, ErrBadEscape
			}
		case c < 0x20:
			return i, ErrUnicodeControl
		case c < utf8.RuneSelf:
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz <= 1 {
				return i, ErrBadUTF8
			}
			i += sz
		}
	}
	return 0, ErrUnterminated
}

// Unquote reverses Quote.
func Unquote(v string) (string, error) {
	n, err := QuotedLen([]byte(v))
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	d := []byte(v)
	if v[0] == '\'' {
		d = singleToDouble(d)
	}
	var res string
	if err := gojson.Unmarshal(d, &res); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadEscape, err)
	}
	return res, nil
}

// singleToDouble rewrites a single quoted string as a JSON string.
func singleToDouble(d []byte) []byte {
	body := d[1 : len(d)-1]
	res := make([]byte, 0, len(d)+4)
	res = append(res, '"')
	for i := 0; i < len(body); i++ {
		switch c := body[i]; c {
		case '\\':
			if body[i+1] == '\'' {
				res = append(res, '\'')
			} else {
				res = append(res, c, body[i+1])
			}
			i++
		case '"':
			res = append(res, '\\', '"')
		default:
			res = append(res, c)
		}
	}
	return append(res, '"')
}

func allHex(d []byte) bool {
	for _, c := range d {
		switch {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
