package visitor

import (
	"fmt"
	"reflect"
	"sort"
)

// ObjectVisitorOf creates a visitor for a string keyed map, keys are visited in sorted order
func ObjectVisitorOf(value interface{}) (Visitor[string, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return TypedObjectVisitorOf[interface{}](actual), nil
	case map[string]string:
		return TypedObjectVisitorOf[string](actual), nil
	case map[string]int:
		return TypedObjectVisitorOf[int](actual), nil
	case map[string]float64:
		return TypedObjectVisitorOf[float64](actual), nil
	case map[string]bool:
		return TypedObjectVisitorOf[bool](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map || val.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("expected map with string keys, got %T", value)
	}
	visitor := &ObjectVisitor{data: val}
	return visitor.Visit, nil
}

// TypedObjectVisitorOf returns visitor for map[string]E
func TypedObjectVisitorOf[E any](aMap map[string]E) Visitor[string, any] {
	return func(f func(key string, element any) (bool, error)) error {
		keys := make([]string, 0, len(aMap))
		for k := range aMap {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			continueVisit, err := f(k, aMap[k])
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// ObjectVisitor visits any string keyed map via reflection
type ObjectVisitor struct {
	data reflect.Value
}

// Visit iterates over the map and calls f for each (key, element)
func (v *ObjectVisitor) Visit(f func(key string, element any) (bool, error)) error {
	keys := v.data.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	for _, key := range keys {
		continueVisit, err := f(key.String(), v.data.MapIndex(key).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
