package gomap

import (
	"fmt"
	"strings"
)

const tagName = "ctree"

// ParseStructTag parses the value of a ctree struct tag into its options.
// Options are separated by commas or spaces and are either flags or
// key=value pairs; values may be single or double quoted:
//
//	`ctree:"field='name with spaces',flag"`
func ParseStructTag(tag string) (map[string]string, error) {
	result := map[string]string{}
	for rest := strings.TrimSpace(tag); rest != ""; rest = strings.TrimLeft(rest, ", ") {
		n, err := tagOptLen(rest)
		if err != nil {
			return nil, fmt.Errorf("invalid tag %q: %w", tag, err)
		}
		opt := rest[:n]
		rest = rest[n:]
		key, value, ok := strings.Cut(opt, "=")
		if !ok {
			result[opt] = ""
			continue
		}
		if key == "" {
			return nil, fmt.Errorf("invalid tag %q: empty key in %q", tag, opt)
		}
		result[key] = unquoteValue(value)
	}
	return result, nil
}

// tagOptLen returns the length of the option at the start of s, which ends
// at an unquoted comma or space.
func tagOptLen(s string) (int, error) {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == ',' || c == ' ':
			return i, nil
		}
	}
	if quote != 0 {
		return 0, fmt.Errorf("unterminated quote")
	}
	return len(s), nil
}

func unquoteValue(value string) string {
	if len(value) < 2 {
		return value
	}
	if q := value[0]; (q == '\'' || q == '"') && value[len(value)-1] == q {
		return value[1 : len(value)-1]
	}
	return value
}
