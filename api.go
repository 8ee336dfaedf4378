package jsonclass

import (
	"fmt"
	"reflect"
)

var defaultRegistry = NewRegistry()

// DefaultRegistry returns process-wide registry used by package level functions
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register registers class with default registry
func Register(t reflect.Type, opts ...ClassOption) (*Class, error) {
	return defaultRegistry.Register(t, opts...)
}

// AddBinding adds bindings to a class registered with default registry
func AddBinding(t reflect.Type, bindings ...*Binding) error {
	return defaultRegistry.AddBinding(t, bindings...)
}

// MetadataOf returns effective metadata from default registry
func MetadataOf(t reflect.Type) (*Metadata, error) {
	return defaultRegistry.MetadataOf(t)
}

// Validate validates default registry
func Validate() error {
	return defaultRegistry.Validate()
}

// RegisterTransform registers named transform with default registry
func RegisterTransform(name string, transform *Transform) error {
	return defaultRegistry.RegisterTransform(name, transform)
}

// MustRegister registers T with default registry or panics, use it during program initialization
func MustRegister[T any](opts ...ClassOption) *Class {
	class, err := defaultRegistry.Register(typeOf[T](), opts...)
	if err != nil {
		panic(err)
	}
	return class
}

// Deserialize deserializes input into a new *T instance of t using default registry
func Deserialize(t reflect.Type, input map[string]interface{}) (interface{}, error) {
	return defaultRegistry.Deserialize(t, input)
}

// DeserializeArray deserializes inputs using default registry
func DeserializeArray(t reflect.Type, inputs []interface{}) ([]interface{}, error) {
	return defaultRegistry.DeserializeArray(t, inputs)
}

// Serialize serializes instance using default registry
func Serialize(instance interface{}) (map[string]interface{}, error) {
	return defaultRegistry.Serialize(instance)
}

// Decode deserializes input into *T using default registry
func Decode[T any](input map[string]interface{}) (*T, error) {
	return DecodeWith[T](defaultRegistry, input)
}

// DecodeWith deserializes input into *T using supplied registry
func DecodeWith[T any](registry *Registry, input map[string]interface{}) (*T, error) {
	value, err := registry.Deserialize(typeOf[T](), input)
	if err != nil {
		return nil, err
	}
	ret, ok := value.(*T)
	if !ok {
		return nil, fmt.Errorf("jsonclass: expected %T, but had %T", ret, value)
	}
	return ret, nil
}

// DecodeArray deserializes inputs into []*T using default registry
func DecodeArray[T any](inputs []interface{}) ([]*T, error) {
	return DecodeArrayWith[T](defaultRegistry, inputs)
}

// DecodeArrayWith deserializes inputs into []*T using supplied registry, failed elements are nil
func DecodeArrayWith[T any](registry *Registry, inputs []interface{}) ([]*T, error) {
	values, err := registry.DeserializeArray(typeOf[T](), inputs)
	if values == nil {
		return nil, err
	}
	ret := make([]*T, len(values))
	for i, value := range values {
		ret[i], _ = value.(*T)
	}
	return ret, err
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
