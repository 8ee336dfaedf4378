package jsonclass

import (
	"errors"
	"fmt"
	"reflect"
)

// property represents a binding resolved against a concrete owner type
type property struct {
	*Binding
	path path
}

func (p *property) retarget(ancestor path) *property {
	return &property{Binding: p.Binding, path: p.path.prefixed(ancestor)}
}

func (p *property) fieldType() reflect.Type {
	return p.path.Type()
}

func newProperty(owner reflect.Type, binding *Binding, options *Options) (*property, error) {
	if binding == nil {
		return nil, &BindingError{Type: owner, Err: errors.New("binding was nil")}
	}
	if binding.Field == "" {
		return nil, &BindingError{Type: owner, Err: errors.New("field name was empty")}
	}
	aPath, err := resolvePath(owner, binding.Field)
	if err != nil {
		return nil, &BindingError{Type: owner, Field: binding.Field, Err: err}
	}
	binding = binding.clone()
	if binding.Key == "" {
		binding.Key = options.keyOf(binding.Field)
	}
	ret := &property{Binding: binding, path: aPath}
	if err = ret.validate(); err != nil {
		return nil, &BindingError{Type: owner, Field: binding.Field, Err: err}
	}
	return ret, nil
}

func (p *property) validate() error {
	fieldType := p.fieldType()
	switch p.Kind {
	case KindScalar:
		if p.ComplexType != nil {
			return fmt.Errorf("scalar binding can not define complex type %v", p.ComplexType.String())
		}
	case KindCustomTransform:
		if p.Serialize == nil || p.Deserialize == nil {
			return errors.New("custom transform requires both serialize and deserialize functions")
		}
	case KindComplexObject:
		complexType, err := complexTypeOf(fieldType, p.ComplexType)
		if err != nil {
			return err
		}
		p.ComplexType = complexType
	case KindArrayOfScalar:
		if fieldType.Kind() != reflect.Slice {
			return fmt.Errorf("array binding requires slice field, but had %v", fieldType.String())
		}
	case KindArrayOfComplexObject:
		if fieldType.Kind() != reflect.Slice {
			return fmt.Errorf("array binding requires slice field, but had %v", fieldType.String())
		}
		elemType := fieldType.Elem()
		if elemType.Kind() != reflect.Ptr && elemType.Kind() != reflect.Interface {
			return fmt.Errorf("complex array binding requires slice of pointers, but had %v", fieldType.String())
		}
		complexType, err := complexTypeOf(elemType, p.ComplexType)
		if err != nil {
			return err
		}
		p.ComplexType = complexType
	default:
		return fmt.Errorf("unsupported binding kind: %v", p.Kind)
	}
	if p.Kind.IsComplex() && isTimeType(p.ComplexType) {
		return errors.New("time.Time can not be used as complex type, use a custom transform")
	}
	return nil
}

// complexTypeOf returns struct type converted into the supplied field or element type
func complexTypeOf(target reflect.Type, complexType reflect.Type) (reflect.Type, error) {
	if target.Kind() == reflect.Interface {
		if complexType == nil {
			return nil, fmt.Errorf("complex type is required for interface %v", target.String())
		}
		if !reflect.PtrTo(complexType).Implements(target) {
			return nil, fmt.Errorf("*%v does not implement %v", complexType.String(), target.String())
		}
		return complexType, nil
	}
	structType := target
	if structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("complex binding requires struct or struct pointer, but had %v", target.String())
	}
	if complexType == nil {
		return structType, nil
	}
	if complexType != structType {
		return nil, fmt.Errorf("complex type %v does not match field type %v", complexType.String(), target.String())
	}
	return complexType, nil
}
