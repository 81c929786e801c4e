package gomap

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrCyclicInput     = errors.New("cyclic input")
	ErrTypeMismatch    = errors.New("type mismatch")
)

// UnsupportedTypeError is returned when a Go value has no tree form.
type UnsupportedTypeError struct {
	Path string // kinded path of the value, empty at the root
	Type reflect.Type
	Msg  string
}

func (e *UnsupportedTypeError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Type.String()
	}
	return fmt.Sprintf("%s at %s: %s", ErrUnsupportedType, pathString(e.Path), msg)
}

func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}

// CyclicInputError is returned when a Go value refers back to one of its
// ancestors.
type CyclicInputError struct {
	Path string
	Prev string // path where the repeated reference was first reached
}

func (e *CyclicInputError) Error() string {
	return fmt.Sprintf("%s at %s: refers back to %s", ErrCyclicInput, pathString(e.Path), pathString(e.Prev))
}

func (e *CyclicInputError) Unwrap() error {
	return ErrCyclicInput
}

// TypeMismatchError is returned when a tree value cannot be stored in the
// target Go type.
type TypeMismatchError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s at %s: expected %s, got %s", ErrTypeMismatch, pathString(e.Path), e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// MarshalError wraps failures of user marshaling methods.
type MarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError reports an unusable destination or a failing user
// unmarshaling method.
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

func pathString(p string) string {
	if p == "" {
		return "$"
	}
	return p
}
