package visitor

import (
	"fmt"
	"reflect"
)

// SequenceVisitorOf creates a visitor for any slice or array value
func SequenceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []interface{}:
		return TypedSequenceVisitorOf[interface{}](actual), nil
	case []string:
		return TypedSequenceVisitorOf[string](actual), nil
	case []int:
		return TypedSequenceVisitorOf[int](actual), nil
	case []int64:
		return TypedSequenceVisitorOf[int64](actual), nil
	case []float64:
		return TypedSequenceVisitorOf[float64](actual), nil
	case []bool:
		return TypedSequenceVisitorOf[bool](actual), nil
	case []map[string]interface{}:
		return TypedSequenceVisitorOf[map[string]interface{}](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	visitor := &SequenceVisitor{data: val}
	return visitor.Visit, nil
}

// TypedSequenceVisitorOf returns visitor for []E
func TypedSequenceVisitorOf[E any](slice []E) Visitor[int, any] {
	return func(f func(index int, element any) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
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

// SequenceVisitor visits slices and arrays of any type via reflection
type SequenceVisitor struct {
	data reflect.Value
}

// Visit iterates over elements, the key is the element index
func (v *SequenceVisitor) Visit(f func(index int, element any) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		continueVisit, err := f(i, v.data.Index(i).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// Collect returns visited elements as []interface{}
func Collect(visit Visitor[int, any]) ([]interface{}, error) {
	result := []interface{}{}
	err := visit(func(_ int, element any) (bool, error) {
		result = append(result, element)
		return true, nil
	})
	return result, err
}
