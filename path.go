package jsonclass

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// path represents field access chain from the owner struct to the leaf field,
// all but the leaf field are value embedded structs
type path []*xunsafe.Field

func resolvePath(owner reflect.Type, name string) (path, error) {
	structField, ok := owner.FieldByName(name)
	if !ok {
		return nil, fmt.Errorf("field %v was not found in %v", name, owner.String())
	}
	var result path
	holderType := owner
	for i, index := range structField.Index {
		field := holderType.Field(index)
		if i < len(structField.Index)-1 {
			if field.Type.Kind() != reflect.Struct {
				return nil, fmt.Errorf("field %v is promoted through unsupported embedded %v", name, field.Type.String())
			}
		}
		result = append(result, xunsafe.NewField(field))
		holderType = field.Type
	}
	return result, nil
}

func embeddedPath(owner reflect.Type, index int) path {
	return path{xunsafe.NewField(owner.Field(index))}
}

// prefixed returns path re-targeted from an embedded struct to its owner
func (p path) prefixed(ancestor path) path {
	result := make(path, 0, len(ancestor)+len(p))
	result = append(result, ancestor...)
	return append(result, p...)
}

func (p path) leaf() *xunsafe.Field {
	return p[len(p)-1]
}

// Type returns leaf field type
func (p path) Type() reflect.Type {
	return p.leaf().Type
}

func (p path) holder(ptr unsafe.Pointer) unsafe.Pointer {
	for i := 0; i < len(p)-1; i++ {
		ptr = p[i].Pointer(ptr)
	}
	return ptr
}

func (p path) pointer(ptr unsafe.Pointer) unsafe.Pointer {
	return p.leaf().Pointer(p.holder(ptr))
}

func (p path) value(ptr unsafe.Pointer) interface{} {
	return p.leaf().Value(p.holder(ptr))
}

// reflectValue returns addressable leaf field value
func (p path) reflectValue(ptr unsafe.Pointer) reflect.Value {
	return reflect.NewAt(p.Type(), p.pointer(ptr)).Elem()
}

func (p path) set(ptr unsafe.Pointer, value reflect.Value) {
	p.reflectValue(ptr).Set(value)
}

func (p path) setZero(ptr unsafe.Pointer) {
	p.set(ptr, reflect.Zero(p.Type()))
}

func (p path) name() string {
	return p.leaf().Name
}
