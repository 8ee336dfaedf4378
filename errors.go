package jsonclass

import (
	"fmt"
	"reflect"
)

// UnregisteredTypeError is returned when a conversion references a type without class metadata
type UnregisteredTypeError struct {
	Type reflect.Type
}

func (e *UnregisteredTypeError) Error() string {
	return fmt.Sprintf("jsonclass: type %v was not registered", typeName(e.Type))
}

// TypeMismatchError reports an input value whose shape does not fit the binding kind
type TypeMismatchError struct {
	Type  reflect.Type
	Field string
	Key   string
	Kind  Kind
	Value interface{}
	Err   error
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("jsonclass: %v.%v (key: %q) expected %v, but had %T", typeName(e.Type), e.Field, e.Key, e.Kind, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TypeMismatchError) Unwrap() error {
	return e.Err
}

// DuplicateKeyError is returned when two bindings of a type share the same source key
type DuplicateKeyError struct {
	Type reflect.Type
	Key  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("jsonclass: duplicate key %q in %v", e.Key, typeName(e.Type))
}

// BindingError reports an invalid binding definition
type BindingError struct {
	Type  reflect.Type
	Field string
	Err   error
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("jsonclass: invalid binding %v.%v: %v", typeName(e.Type), e.Field, e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
