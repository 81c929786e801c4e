package parse

import (
	"bytes"
	"errors"
	"fmt"
)

var ErrParse = errors.New("parse error")

// Error reports where parsing failed. Offset is a byte offset into the input.
type Error struct {
	Offset int64
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", ErrParse, e.Offset, e.Msg)
}

func (e *Error) Unwrap() error {
	return ErrParse
}

// LineCol translates e.Offset into a 1-based line and column of d.
func (e *Error) LineCol(d []byte) (line, col int) {
	off := int(min(max(e.Offset, 0), int64(len(d))))
	line = 1 + bytes.Count(d[:off], []byte{'\n'})
	col = off + 1
	if i := bytes.LastIndexByte(d[:off], '\n'); i != -1 {
		col = off - i
	}
	return line, col
}

func errorf(off int64, msg string, args ...any) *Error {
	return &Error{Offset: off, Msg: fmt.Sprintf(msg, args...)}
}
