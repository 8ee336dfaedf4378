package visitor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type Labels map[string]string

func TestObjectVisitorOf(t *testing.T) {
	var testCases = []struct {
		description string
		value       interface{}
		expectKeys  []string
		expectError bool
	}{
		{description: "generic object", value: map[string]interface{}{"b": 1, "a": nil}, expectKeys: []string{"a", "b"}},
		{description: "typed map", value: map[string]bool{"x": true}, expectKeys: []string{"x"}},
		{description: "named map", value: Labels{"z": "1", "y": "2"}, expectKeys: []string{"y", "z"}},
		{description: "non string keys", value: map[int]string{1: "a"}, expectError: true},
		{description: "scalar", value: "abc", expectError: true},
	}
	for _, testCase := range testCases {
		visit, err := ObjectVisitorOf(testCase.value)
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		var keys []string
		err = visit(func(key string, element any) (bool, error) {
			keys = append(keys, key)
			return true, nil
		})
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expectKeys, keys, testCase.description)
	}
}

func TestSequenceVisitorOf(t *testing.T) {
	var testCases = []struct {
		description string
		value       interface{}
		expect      []interface{}
		expectError bool
	}{
		{description: "generic sequence", value: []interface{}{"a", 1, 3.14, true, nil}, expect: []interface{}{"a", 1, 3.14, true, nil}},
		{description: "typed slice", value: []int{1, 2}, expect: []interface{}{1, 2}},
		{description: "array", value: [2]string{"a", "b"}, expect: []interface{}{"a", "b"}},
		{description: "empty", value: []uint{}, expect: []interface{}{}},
		{description: "scalar", value: 1, expectError: true},
	}
	for _, testCase := range testCases {
		visit, err := SequenceVisitorOf(testCase.value)
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		actual, err := Collect(visit)
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestVisitor_Stop(t *testing.T) {
	visit, err := SequenceVisitorOf([]string{"a", "b", "c"})
	assert.Nil(t, err)
	count := 0
	err = visit(func(index int, element any) (bool, error) {
		count++
		return index < 1, nil
	})
	assert.Nil(t, err)
	assert.Equal(t, 2, count)

	expectErr := errors.New("stop")
	objects, err := ObjectVisitorOf(map[string]interface{}{"a": 1, "b": 2})
	assert.Nil(t, err)
	err = objects(func(key string, element any) (bool, error) {
		return true, expectErr
	})
	assert.Equal(t, expectErr, err)
}
