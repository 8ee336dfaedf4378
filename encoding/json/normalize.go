package json

import (
	"fmt"
	"reflect"
	"time"

	"github.com/viant/jsonclass/visitor"
)

// normalize converts serialized value into Document, Array, string, bool, int64, uint64, float64 or nil
func normalize(value interface{}, options *Options) (interface{}, error) {
	switch actual := value.(type) {
	case nil:
		return nil, nil
	case string, bool, int64, uint64, float64:
		return actual, nil
	case Document:
		return normalizeObject(actual, options)
	case Array:
		return normalizeArray(actual, options)
	case time.Time:
		return actual.Format(options.TimeLayout), nil
	case map[string]interface{}:
		return normalizeObject(actual, options)
	case []interface{}:
		return normalizeArray(actual, options)
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rValue.IsNil() {
			return nil, nil
		}
		return normalize(rValue.Elem().Interface(), options)
	case reflect.String:
		return rValue.String(), nil
	case reflect.Bool:
		return rValue.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rValue.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rValue.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rValue.Float(), nil
	case reflect.Slice, reflect.Array:
		if rValue.Kind() == reflect.Slice && rValue.IsNil() {
			return nil, nil
		}
		visit, err := visitor.SequenceVisitorOf(value)
		if err != nil {
			return nil, err
		}
		ret := make(Array, 0, rValue.Len())
		err = visit(func(index int, element any) (bool, error) {
			item, err := normalize(element, options)
			if err != nil {
				return false, fmt.Errorf("[%d]: %w", index, err)
			}
			ret = append(ret, item)
			return true, nil
		})
		return ret, err
	case reflect.Map:
		if rValue.Type().Key().Kind() != reflect.String {
			break
		}
		if rValue.IsNil() {
			return nil, nil
		}
		visit, err := visitor.ObjectVisitorOf(value)
		if err != nil {
			return nil, err
		}
		ret := make(Document, rValue.Len())
		err = visit(func(key string, element any) (bool, error) {
			item, err := normalize(element, options)
			if err != nil {
				return false, fmt.Errorf("%v: %w", key, err)
			}
			ret[key] = item
			return true, nil
		})
		return ret, err
	}
	return nil, fmt.Errorf("unsupported JSON value type: %T", value)
}

func normalizeObject(object map[string]interface{}, options *Options) (interface{}, error) {
	if object == nil {
		return nil, nil
	}
	ret := make(Document, len(object))
	for key, item := range object {
		value, err := normalize(item, options)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", key, err)
		}
		ret[key] = value
	}
	return ret, nil
}

func normalizeArray(items []interface{}, options *Options) (interface{}, error) {
	if items == nil {
		return nil, nil
	}
	ret := make(Array, len(items))
	for i, item := range items {
		value, err := normalize(item, options)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		ret[i] = value
	}
	return ret, nil
}
