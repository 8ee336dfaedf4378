package jsonclass

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Serialize builds a JSON-like object from a registered struct or struct pointer using its runtime type metadata,
// nil instance serializes to nil
func (r *Registry) Serialize(instance interface{}) (map[string]interface{}, error) {
	if instance == nil {
		return nil, nil
	}
	object, err := r.serializeObject(reflect.ValueOf(instance))
	if err != nil || object == nil {
		return nil, err
	}
	return object.(map[string]interface{}), nil
}

func (r *Registry) serializeObject(value reflect.Value) (interface{}, error) {
	switch value.Kind() {
	case reflect.Interface:
		if value.IsNil() {
			return nil, nil
		}
		return r.serializeObject(value.Elem())
	case reflect.Ptr:
		if value.IsNil() {
			return nil, nil
		}
	case reflect.Struct:
		if !value.CanAddr() {
			addressable := reflect.New(value.Type())
			addressable.Elem().Set(value)
			value = addressable.Elem()
		}
		value = value.Addr()
	default:
		return nil, &UnregisteredTypeError{Type: value.Type()}
	}
	if value.Type().Elem().Kind() != reflect.Struct {
		return nil, &UnregisteredTypeError{Type: value.Type()}
	}
	meta, err := r.MetadataOf(value.Type().Elem())
	if err != nil {
		return nil, err
	}
	return r.serialize(meta, value.UnsafePointer())
}

func (r *Registry) serialize(meta *Metadata, ptr unsafe.Pointer) (map[string]interface{}, error) {
	result := make(map[string]interface{}, len(meta.properties))
	for _, prop := range meta.properties {
		value, err := r.serializeProperty(prop, ptr)
		if err != nil {
			return nil, err
		}
		result[prop.Key] = value
	}
	if r.options.EmitExtra && meta.extra != nil {
		extra, _ := meta.extra.value(ptr).(map[string]interface{})
		for key, value := range extra {
			if _, ok := result[key]; !ok {
				result[key] = value
			}
		}
	}
	return result, nil
}

func (r *Registry) serializeProperty(prop *property, ptr unsafe.Pointer) (interface{}, error) {
	field := prop.path.reflectValue(ptr)
	switch prop.Kind {
	case KindScalar, KindCustomTransform:
		value := scalarOf(field)
		if value == nil || prop.Serialize == nil {
			return value, nil
		}
		return prop.Serialize(value)
	case KindComplexObject:
		value, err := r.serializeObject(field)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", prop.Key, err)
		}
		return value, nil
	case KindArrayOfScalar:
		if field.IsNil() {
			return nil, nil
		}
		result := make([]interface{}, field.Len())
		for i := range result {
			value := scalarOf(field.Index(i))
			if value != nil && prop.Serialize != nil {
				var err error
				if value, err = prop.Serialize(value); err != nil {
					return nil, fmt.Errorf("%v[%d]: %w", prop.Key, i, err)
				}
			}
			result[i] = value
		}
		return result, nil
	case KindArrayOfComplexObject:
		if field.IsNil() {
			return nil, nil
		}
		result := make([]interface{}, field.Len())
		for i := range result {
			value, err := r.serializeObject(field.Index(i))
			if err != nil {
				return nil, fmt.Errorf("%v[%d]: %w", prop.Key, i, err)
			}
			result[i] = value
		}
		return result, nil
	}
	return nil, fmt.Errorf("unsupported binding kind: %v", prop.Kind)
}

// scalarOf returns field value with pointers dereferenced, nil for nil pointers, interfaces, maps and slices
func scalarOf(value reflect.Value) interface{} {
	switch value.Kind() {
	case reflect.Ptr, reflect.Interface:
		if value.IsNil() {
			return nil
		}
		return scalarOf(value.Elem())
	case reflect.Map, reflect.Slice:
		if value.IsNil() {
			return nil
		}
	}
	return value.Interface()
}
