// Package json reads and writes registered classes as JSON text, raw JSON is decoded with gojay
// into JSON-like documents converted by jsonclass bindings
package json

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/francoispqt/gojay"
)

var nullLiteral = []byte("null")

// UnmarshalDocument decodes JSON object, null decodes into nil document
func UnmarshalDocument(data []byte) (Document, error) {
	if isNull(data) {
		return nil, nil
	}
	document := Document{}
	if err := gojay.UnmarshalJSONObject(data, document); err != nil {
		return nil, err
	}
	return document, nil
}

// UnmarshalArrayDocument decodes JSON array
func UnmarshalArrayDocument(data []byte) (Array, error) {
	if isNull(data) {
		return nil, nil
	}
	array := Array{}
	if err := gojay.UnmarshalJSONArray(data, &array); err != nil {
		return nil, err
	}
	return array, nil
}

// Unmarshal decodes JSON object into dest pointer to registered struct
func Unmarshal(data []byte, dest interface{}, opts ...Option) error {
	options := newOptions(opts)
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr || destValue.IsNil() || destValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("json: expected non nil pointer to struct, but had %T", dest)
	}
	document, err := UnmarshalDocument(data)
	if err != nil {
		return err
	}
	instance, err := options.Registry.Deserialize(destValue.Type().Elem(), document)
	if err != nil {
		return err
	}
	destValue.Elem().Set(reflect.ValueOf(instance).Elem())
	return nil
}

// UnmarshalArray decodes JSON array of objects into registered t instances
func UnmarshalArray(data []byte, t reflect.Type, opts ...Option) ([]interface{}, error) {
	options := newOptions(opts)
	array, err := UnmarshalArrayDocument(data)
	if err != nil {
		return nil, err
	}
	return options.Registry.DeserializeArray(t, array)
}

// Marshal encodes registered struct or struct pointer as JSON object
func Marshal(instance interface{}, opts ...Option) ([]byte, error) {
	options := newOptions(opts)
	object, err := options.Registry.Serialize(instance)
	if err != nil {
		return nil, err
	}
	return marshal(object, options)
}

// MarshalArray encodes slice of registered instances as JSON array
func MarshalArray(instances interface{}, opts ...Option) ([]byte, error) {
	options := newOptions(opts)
	rValue := reflect.ValueOf(instances)
	if rValue.Kind() != reflect.Slice {
		return nil, fmt.Errorf("json: expected slice, but had %T", instances)
	}
	if rValue.IsNil() {
		return nullLiteral, nil
	}
	items := make([]interface{}, rValue.Len())
	for i := range items {
		object, err := options.Registry.Serialize(rValue.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		if object != nil {
			items[i] = object
		}
	}
	return marshal(items, options)
}

func marshal(value interface{}, options *Options) ([]byte, error) {
	normalized, err := normalize(value, options)
	if err != nil {
		return nil, err
	}
	switch actual := normalized.(type) {
	case Document:
		return gojay.MarshalJSONObject(actual)
	case Array:
		return gojay.MarshalJSONArray(actual)
	}
	return nullLiteral, nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), nullLiteral)
}
