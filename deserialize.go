package jsonclass

import (
	"fmt"
	"reflect"
	"sort"
	"unsafe"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Deserialize creates a default instance of t and populates it from input, it returns *T
func (r *Registry) Deserialize(t reflect.Type, input map[string]interface{}) (interface{}, error) {
	meta, err := r.MetadataOf(t)
	if err != nil {
		return nil, err
	}
	rValue, err := r.deserialize(meta, input)
	if err != nil {
		return nil, err
	}
	return rValue.Interface(), nil
}

// DeserializeArray deserializes every input preserving order and length, nil input yields a default instance.
// Element errors are combined, failed elements are left nil in the result.
func (r *Registry) DeserializeArray(t reflect.Type, inputs []interface{}) ([]interface{}, error) {
	meta, err := r.MetadataOf(t)
	if err != nil {
		return nil, err
	}
	result := make([]interface{}, len(inputs))
	for i, input := range inputs {
		var object map[string]interface{}
		if input != nil {
			var ok bool
			if object, ok = asObject(input); !ok {
				err = multierr.Append(err, &TypeMismatchError{Type: meta.Type(), Key: fmt.Sprintf("[%d]", i), Kind: KindComplexObject, Value: input})
				continue
			}
		}
		item, itemErr := r.deserialize(meta, object)
		if itemErr != nil {
			err = multierr.Append(err, fmt.Errorf("[%d]: %w", i, itemErr))
			continue
		}
		result[i] = item.Interface()
	}
	return result, err
}

func (r *Registry) deserialize(meta *Metadata, input map[string]interface{}) (reflect.Value, error) {
	rValue, err := meta.class.newValue()
	if err != nil {
		return rValue, err
	}
	if input == nil {
		return rValue, nil
	}
	ptr := rValue.UnsafePointer()
	for _, prop := range meta.properties {
		value, ok := input[prop.Key]
		if !ok {
			continue
		}
		if err = r.deserializeProperty(meta, prop, ptr, value); err != nil {
			return rValue, err
		}
		if meta.marker != nil {
			meta.marker.mark(ptr, prop)
		}
	}
	if meta.class.strict {
		if ce := r.logger.Check(zap.DebugLevel, "dropped unmapped keys"); ce != nil {
			if keys := unmappedKeys(meta, input); len(keys) > 0 {
				ce.Write(zap.String("type", meta.Type().String()), zap.Strings("keys", keys))
			}
		}
		return rValue, nil
	}
	r.copyExtra(meta, ptr, input)
	return rValue, nil
}

// copyExtra copies unmapped keys verbatim into a fresh copy of the extra field map
func (r *Registry) copyExtra(meta *Metadata, ptr unsafe.Pointer, input map[string]interface{}) {
	keys := unmappedKeys(meta, input)
	if len(keys) == 0 {
		return
	}
	current, _ := meta.extra.value(ptr).(map[string]interface{})
	extra := make(map[string]interface{}, len(current)+len(keys))
	for k, v := range current {
		extra[k] = v
	}
	for _, key := range keys {
		extra[key] = input[key]
	}
	meta.extra.set(ptr, reflect.ValueOf(extra))
	r.logger.Debug("copied extra keys", zap.String("type", meta.Type().String()), zap.Strings("keys", keys))
}

func unmappedKeys(meta *Metadata, input map[string]interface{}) []string {
	var keys []string
	for key := range input {
		if !meta.keys[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func (r *Registry) deserializeProperty(meta *Metadata, prop *property, ptr unsafe.Pointer, value interface{}) error {
	target := prop.path.reflectValue(ptr)
	if value == nil {
		deserializeNull(prop, target)
		return nil
	}
	mismatch := func(err error) error {
		return &TypeMismatchError{Type: meta.Type(), Field: prop.Field, Key: prop.Key, Kind: prop.Kind, Value: value, Err: err}
	}
	switch prop.Kind {
	case KindScalar, KindCustomTransform:
		if prop.Deserialize != nil {
			transformed, err := prop.Deserialize(value)
			if err != nil {
				return mismatch(err)
			}
			if transformed == nil {
				deserializeNull(prop, target)
				return nil
			}
			value = transformed
		}
		if err := r.converter.ConvertValue(value, target); err != nil {
			return mismatch(err)
		}
	case KindComplexObject:
		object, ok := asObject(value)
		if !ok {
			return mismatch(nil)
		}
		item, err := r.deserializeObject(prop.ComplexType, object)
		if err != nil {
			return fmt.Errorf("%v: %w", prop.Key, err)
		}
		if target.Kind() == reflect.Struct {
			item = item.Elem()
		}
		target.Set(item)
	case KindArrayOfScalar:
		sequence, ok := asSequence(value)
		if !ok {
			return mismatch(nil)
		}
		slice := reflect.MakeSlice(target.Type(), len(sequence), len(sequence))
		for i, elem := range sequence {
			if elem != nil && prop.Deserialize != nil {
				var err error
				if elem, err = prop.Deserialize(elem); err != nil {
					return mismatch(fmt.Errorf("element %d: %w", i, err))
				}
			}
			if err := r.converter.ConvertValue(elem, slice.Index(i)); err != nil {
				return mismatch(fmt.Errorf("element %d: %w", i, err))
			}
		}
		target.Set(slice)
	case KindArrayOfComplexObject:
		sequence, ok := asSequence(value)
		if !ok {
			return mismatch(nil)
		}
		slice := reflect.MakeSlice(target.Type(), len(sequence), len(sequence))
		for i, elem := range sequence {
			if elem == nil {
				continue
			}
			object, ok := asObject(elem)
			if !ok {
				return mismatch(fmt.Errorf("element %d: expected object, but had %T", i, elem))
			}
			item, err := r.deserializeObject(prop.ComplexType, object)
			if err != nil {
				return fmt.Errorf("%v[%d]: %w", prop.Key, i, err)
			}
			slice.Index(i).Set(item)
		}
		target.Set(slice)
	}
	return nil
}

func (r *Registry) deserializeObject(complexType reflect.Type, object map[string]interface{}) (reflect.Value, error) {
	meta, err := r.MetadataOf(complexType)
	if err != nil {
		return reflect.Value{}, err
	}
	return r.deserialize(meta, object)
}

// deserializeNull applies explicit null: arrays become empty unless KeepNullArray is set,
// other kinds become nil when the field can hold it, otherwise the default stays
func deserializeNull(prop *property, target reflect.Value) {
	if prop.Kind.IsArray() {
		if prop.KeepNullArray {
			target.Set(reflect.Zero(target.Type()))
			return
		}
		target.Set(reflect.MakeSlice(target.Type(), 0, 0))
		return
	}
	if isNillable(target.Type()) {
		target.Set(reflect.Zero(target.Type()))
	}
}
