package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/ctree/format"
	"github.com/signadot/ctree/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent  int
	newline bool
	format  format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	var err error
	switch es.format {
	case format.JSONFormat:
		err = encodeJSON(node, w, es)
	case format.YAMLFormat:
		err = encodeYAML(node, w, es)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
	if err != nil {
		return err
	}
	if es.newline && !es.format.IsYAML() {
		_, err = w.Write([]byte{'\n'})
	}
	return err
}

// EncodeBytes is Encode into a new byte slice.
func EncodeBytes(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func nodeErr(path string, msg string, args ...any) error {
	if path == "" {
		path = "$"
	}
	return fmt.Errorf("%w at %s: %s", ErrEncoding, path, fmt.Sprintf(msg, args...))
}
