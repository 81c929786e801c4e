package kpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/ctree/token"
)

// Segment is one step of a path: a mapping key or a sequence index.
type Segment struct {
	Field *string
	Index *int
}

func Field(name string) Segment {
	return Segment{Field: &name}
}

func Index(i int) Segment {
	return Segment{Index: &i}
}

func (s Segment) IsField() bool { return s.Field != nil }
func (s Segment) IsIndex() bool { return s.Index != nil }

// String returns the segment as it appears after a preceding segment.
// Examples:
//   - Field("a") → ".a"
//   - Field("field name") → `."field name"`
//   - Index(0) → "[0]"
func (s Segment) String() string {
	switch {
	case s.Field != nil:
		return "." + fieldString(*s.Field)
	case s.Index != nil:
		return "[" + strconv.Itoa(*s.Index) + "]"
	}
	return ""
}

func fieldString(f string) string {
	if token.KPathQuoteField(f) {
		return token.Quote(f, true)
	}
	return f
}

// String renders segs as a kinded path.
func String(segs []Segment) string {
	b := &strings.Builder{}
	for i, s := range segs {
		if i == 0 && s.Field != nil {
			b.WriteString(fieldString(*s.Field))
			continue
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// Join appends seg to the rendered path prefix.
func Join(prefix string, seg Segment) string {
	if prefix == "" && seg.Field != nil {
		return fieldString(*seg.Field)
	}
	return prefix + seg.String()
}

// JoinField is Join(prefix, Field(f)).
func JoinField(prefix, f string) string {
	return Join(prefix, Field(f))
}

// JoinIndex is Join(prefix, Index(i)).
func JoinIndex(prefix string, i int) string {
	return Join(prefix, Index(i))
}

// Parse parses a kinded path. A leading '$' is accepted and ignored.
func Parse(kp string) ([]Segment, error) {
	kp = strings.TrimPrefix(kp, "$")
	var res []Segment
	frag := kp
	first := true
	for len(frag) != 0 {
		switch frag[0] {
		case '[':
			i := strings.IndexByte(frag[1:], ']')
			if i == -1 {
				return nil, fmt.Errorf("%q: expected '[' <index> ']'", kp)
			}
			index, err := parseIndex(frag[1 : i+1])
			if err != nil {
				return nil, fmt.Errorf("%q: %w", kp, err)
			}
			res = append(res, Index(index))
			frag = frag[i+2:]
		case '.':
			field, rest, err := parseField(frag[1:])
			if err != nil {
				return nil, fmt.Errorf("%q: %w", kp, err)
			}
			res = append(res, Field(field))
			frag = rest
		default:
			if !first {
				return nil, fmt.Errorf("%q: expected '.' or '[' at %q", kp, frag)
			}
			field, rest, err := parseField(frag)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", kp, err)
			}
			res = append(res, Field(field))
			frag = rest
		}
		first = false
	}
	return res, nil
}

func parseIndex(is string) (int, error) {
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid array index %q: %v", is, err)
	}
	return int(u64), nil
}

// parseField parses a mapping key from the start of frag. It stops at '.'
// or '['. Quoted keys use single or double quotes with JSON escapes.
func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] == '\'' || frag[0] == '"' {
		n, err := token.QuotedLen([]byte(frag))
		if err != nil {
			return "", "", fmt.Errorf("invalid quoted field: %w", err)
		}
		field, err = token.Unquote(frag[:n])
		if err != nil {
			return "", "", fmt.Errorf("invalid quoted field: %w", err)
		}
		return field, frag[n:], nil
	}
	i := strings.IndexAny(frag, ".[")
	if i == -1 {
		return frag, "", nil
	}
	if i == 0 {
		return "", "", fmt.Errorf("empty field before %q", frag)
	}
	return frag[:i], frag[i:], nil
}
