package jsonclass

import (
	"fmt"
	"reflect"

	"github.com/viant/jsonclass/tags"
)

// bindingsFromTags derives bindings for tagged fields declared directly on owner type
func (r *Registry) bindingsFromTags(class *Class) ([]*Binding, error) {
	owner := class.rType
	var result []*Binding
	for i := 0; i < owner.NumField(); i++ {
		field := owner.Field(i)
		literal, ok := field.Tag.Lookup(r.options.TagName)
		if !ok {
			continue
		}
		tag, err := tags.Parse(literal)
		if err != nil {
			return nil, &BindingError{Type: owner, Field: field.Name, Err: err}
		}
		if tag.Ignore {
			continue
		}
		if tag.Presence {
			class.presence = field.Name
			continue
		}
		if tag.Extra {
			if class.extraField == "" {
				class.extraField = field.Name
			}
			continue
		}
		binding, err := r.bindingFromTag(field, tag)
		if err != nil {
			return nil, &BindingError{Type: owner, Field: field.Name, Err: err}
		}
		result = append(result, binding)
	}
	return result, nil
}

func (r *Registry) bindingFromTag(field reflect.StructField, tag *tags.Tag) (*Binding, error) {
	var opts []BindingOption
	if tag.Key != "" {
		opts = append(opts, WithKey(tag.Key))
	}
	if tag.KeepNull {
		opts = append(opts, WithKeepNullArray(true))
	}
	kind := inferKind(field.Type)
	if tag.Transform != "" {
		kind = KindCustomTransform
	}
	if tag.Kind != "" {
		var err error
		if kind, err = ParseKind(tag.Kind); err != nil {
			return nil, err
		}
	}
	switch kind {
	case KindCustomTransform:
		transform := r.LookupTransform(tag.Transform)
		if transform == nil {
			return nil, fmt.Errorf("unknown transform: %q", tag.Transform)
		}
		return transform.Bind(field.Name, opts...), nil
	case KindComplexObject:
		return ComplexObject(field.Name, nil, opts...), nil
	case KindArrayOfScalar:
		return ArrayOfScalar(field.Name, opts...), nil
	case KindArrayOfComplexObject:
		return ArrayOfComplexObject(field.Name, nil, opts...), nil
	}
	return Scalar(field.Name, opts...), nil
}

func inferKind(t reflect.Type) Kind {
	switch t.Kind() {
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Ptr && ensureStruct(t.Elem()) != nil && !isTimeType(t.Elem()) {
			return KindArrayOfComplexObject
		}
		return KindArrayOfScalar
	case reflect.Struct, reflect.Ptr:
		if structType := ensureStruct(t); structType != nil && !isTimeType(structType) {
			return KindComplexObject
		}
	}
	return KindScalar
}
