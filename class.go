package jsonclass

import (
	"fmt"
	"reflect"
)

type (
	// Class represents type metadata as declared, without ancestor bindings
	Class struct {
		rType      reflect.Type
		strict     bool
		extraField string
		presence   string
		useTags    bool
		newFn      func() interface{}
		bindings   []*Binding
		properties []*property
		registry   *Registry
	}

	// ClassOption represents class option
	ClassOption func(c *Class)
)

// WithStrict sets strict flag, non strict class copies unmapped keys into its extra field
func WithStrict(strict bool) ClassOption {
	return func(c *Class) {
		c.strict = strict
	}
}

// Extensible makes class non strict with supplied map[string]interface{} extra field
func Extensible(extraField string) ClassOption {
	return func(c *Class) {
		c.strict = false
		c.extraField = extraField
	}
}

// WithExtraField sets extra field name
func WithExtraField(name string) ClassOption {
	return func(c *Class) {
		c.extraField = name
	}
}

// WithPresence sets presence marker field, a pointer to struct with bool fields named after bound fields
func WithPresence(field string) ClassOption {
	return func(c *Class) {
		c.presence = field
	}
}

// WithNew sets instance factory, factory has to return a non nil pointer to the class type
func WithNew(fn func() interface{}) ClassOption {
	return func(c *Class) {
		c.newFn = fn
	}
}

// WithTags derives bindings from struct tags
func WithTags() ClassOption {
	return func(c *Class) {
		c.useTags = true
	}
}

// Type returns class type
func (c *Class) Type() reflect.Type {
	return c.rType
}

// Strict returns strict flag
func (c *Class) Strict() bool {
	return c.strict
}

// ExtraField returns extra field name
func (c *Class) ExtraField() string {
	return c.extraField
}

// Bindings returns own bindings in declaration order
func (c *Class) Bindings() []*Binding {
	ret := make([]*Binding, len(c.bindings))
	copy(ret, c.bindings)
	return ret
}

// Bind adds bindings to the class
func (c *Class) Bind(bindings ...*Binding) error {
	return c.registry.AddBinding(c.rType, bindings...)
}

// MustBind adds bindings to the class or panics, use it during program initialization
func (c *Class) MustBind(bindings ...*Binding) *Class {
	if err := c.Bind(bindings...); err != nil {
		panic(err)
	}
	return c
}

// New creates a default instance of the class type
func (c *Class) New() (interface{}, error) {
	rValue, err := c.newValue()
	if err != nil {
		return nil, err
	}
	return rValue.Interface(), nil
}

func (c *Class) newValue() (reflect.Value, error) {
	if c.newFn == nil {
		return reflect.New(c.rType), nil
	}
	instance := c.newFn()
	rValue := reflect.ValueOf(instance)
	if !rValue.IsValid() || rValue.Type() != reflect.PtrTo(c.rType) || rValue.IsNil() {
		return reflect.Value{}, fmt.Errorf("jsonclass: %v factory returned %T, expected non nil *%v", c.rType.String(), instance, c.rType.String())
	}
	return rValue, nil
}

func (c *Class) hasKey(key string) bool {
	for _, prop := range c.properties {
		if prop.Key == key {
			return true
		}
	}
	return false
}
