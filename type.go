package jsonclass

import (
	"reflect"
	"time"

	"github.com/viant/jsonclass/visitor"
)

var (
	timeType  = reflect.TypeOf(time.Time{})
	extraType = reflect.TypeOf(map[string]interface{}{})
)

func isTimeType(candidate reflect.Type) bool {
	return ensureStruct(candidate) == timeType
}

// ensureStruct returns struct type for struct or pointer to struct, nil otherwise
func ensureStruct(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return ensureStruct(t.Elem())
	}
	return nil
}

func isNillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}

// asObject returns JSON-like object for supplied value
func asObject(value interface{}) (map[string]interface{}, bool) {
	if actual, ok := value.(map[string]interface{}); ok {
		return actual, true
	}
	visit, err := visitor.ObjectVisitorOf(value)
	if err != nil {
		return nil, false
	}
	ret := map[string]interface{}{}
	_ = visit(func(key string, element any) (bool, error) {
		ret[key] = element
		return true, nil
	})
	return ret, true
}

// asSequence returns JSON-like sequence for supplied value
func asSequence(value interface{}) ([]interface{}, bool) {
	if actual, ok := value.([]interface{}); ok {
		return actual, true
	}
	visit, err := visitor.SequenceVisitorOf(value)
	if err != nil {
		return nil, false
	}
	ret, err := visitor.Collect(visit)
	return ret, err == nil
}
