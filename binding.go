package jsonclass

import (
	"reflect"
)

type (
	// TransformFn converts a single value in either direction
	TransformFn func(value interface{}) (interface{}, error)

	// Binding maps one struct field to one source key.
	// A binding is immutable once added to a class.
	Binding struct {
		Field         string
		Key           string
		Kind          Kind
		ComplexType   reflect.Type
		KeepNullArray bool
		Deserialize   TransformFn
		Serialize     TransformFn
	}

	// BindingOption customises a binding
	BindingOption func(b *Binding)
)

// WithKey overrides the source key, by default key is derived from field name
func WithKey(key string) BindingOption {
	return func(b *Binding) {
		b.Key = key
	}
}

// WithKeepNullArray keeps an explicit null as nil slice instead of an empty one
func WithKeepNullArray(flag bool) BindingOption {
	return func(b *Binding) {
		b.KeepNullArray = flag
	}
}

// WithKeepNull is an alias of WithKeepNullArray used with complex arrays
func WithKeepNull(flag bool) BindingOption {
	return WithKeepNullArray(flag)
}

// WithDeserialize sets input value transform
func WithDeserialize(fn TransformFn) BindingOption {
	return func(b *Binding) {
		b.Deserialize = fn
	}
}

// WithSerialize sets output value transform
func WithSerialize(fn TransformFn) BindingOption {
	return func(b *Binding) {
		b.Serialize = fn
	}
}

// Scalar creates a binding copying a primitive value, optionally through WithDeserialize
func Scalar(field string, opts ...BindingOption) *Binding {
	return newBinding(field, KindScalar, nil, opts)
}

// ComplexObject creates a binding converting a nested object with complexType class
func ComplexObject(field string, complexType reflect.Type, opts ...BindingOption) *Binding {
	return newBinding(field, KindComplexObject, complexType, opts)
}

// ArrayOfScalar creates a binding copying a sequence of primitives
func ArrayOfScalar(field string, opts ...BindingOption) *Binding {
	return newBinding(field, KindArrayOfScalar, nil, opts)
}

// ArrayOfComplexObject creates a binding converting a sequence of nested objects
func ArrayOfComplexObject(field string, complexType reflect.Type, opts ...BindingOption) *Binding {
	return newBinding(field, KindArrayOfComplexObject, complexType, opts)
}

func newBinding(field string, kind Kind, complexType reflect.Type, opts []BindingOption) *Binding {
	ret := &Binding{Field: field, Kind: kind, ComplexType: ensureStruct(complexType)}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (b *Binding) clone() *Binding {
	ret := *b
	return &ret
}

// Transform represents a reusable custom transform binding factory
type Transform struct {
	serialize   TransformFn
	deserialize TransformFn
}

// NewTransform creates a custom transform for value types with symmetric conversion
func NewTransform(serialize, deserialize TransformFn) *Transform {
	return &Transform{serialize: serialize, deserialize: deserialize}
}

// Bind creates a custom transform binding for supplied field
func (t *Transform) Bind(field string, opts ...BindingOption) *Binding {
	ret := newBinding(field, KindCustomTransform, nil, opts)
	ret.Serialize = t.serialize
	ret.Deserialize = t.deserialize
	return ret
}

// Serialize applies transform output conversion
func (t *Transform) Serialize(value interface{}) (interface{}, error) {
	return t.serialize(value)
}

// Deserialize applies transform input conversion
func (t *Transform) Deserialize(value interface{}) (interface{}, error) {
	return t.deserialize(value)
}
