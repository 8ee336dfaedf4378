package jsonclass

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// PresenceMarkerTag marks a pointer to struct of bool fields flagging bindings whose keys were present in the input
const PresenceMarkerTag = "presenceMarker"

// Marker flags fields whose source keys were present during deserialization
type Marker struct {
	t      reflect.Type
	holder path
	fields []*xunsafe.Field
	index  map[string]int // bound field name to marker field pos
}

// Index returns marker field index or -1
func (m *Marker) Index(name string) int {
	if len(m.index) == 0 {
		return -1
	}
	pos, ok := m.index[name]
	if !ok {
		return -1
	}
	return pos
}

// Set sets field marker, holder is allocated when nil
func (m *Marker) Set(ptr unsafe.Pointer, index int, flag bool) error {
	if index < 0 || index >= len(m.fields) {
		return fmt.Errorf("field at index %v was missing in presence marker", index)
	}
	m.fields[index].SetBool(m.markerPointer(ptr), flag)
	return nil
}

// IsSet returns true if field key was present, without holder all fields are assumed present
func (m *Marker) IsSet(ptr unsafe.Pointer, index int) bool {
	holder := m.holder.reflectValue(ptr)
	if holder.IsNil() {
		return true
	}
	if index < 0 || index >= len(m.fields) {
		return false
	}
	return m.fields[index].Bool(holder.UnsafePointer())
}

func (m *Marker) markerPointer(ptr unsafe.Pointer) unsafe.Pointer {
	holder := m.holder.reflectValue(ptr)
	if holder.IsNil() {
		holder.Set(reflect.New(holder.Type().Elem()))
	}
	return holder.UnsafePointer()
}

func (m *Marker) mark(ptr unsafe.Pointer, prop *property) {
	if pos := m.Index(prop.Field); pos != -1 {
		m.fields[pos].SetBool(m.markerPointer(ptr), true)
	}
}

// newMarker creates presence marker for the holder field, every marker field has to match a bound field name
func newMarker(owner reflect.Type, holderField string, properties []*property) (*Marker, error) {
	holder, err := resolvePath(owner, holderField)
	if err != nil {
		return nil, err
	}
	holderType := holder.Type()
	if holderType.Kind() != reflect.Ptr || holderType.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("presence marker %v has to be a pointer to struct, but had %v", holderField, holderType.String())
	}
	bound := make(map[string]bool, len(properties))
	for _, prop := range properties {
		bound[prop.Field] = true
	}
	markerType := holderType.Elem()
	ret := &Marker{t: owner, holder: holder, index: make(map[string]int, markerType.NumField())}
	for i := 0; i < markerType.NumField(); i++ {
		markerField := markerType.Field(i)
		if markerField.Type.Kind() != reflect.Bool {
			return nil, fmt.Errorf("presence marker field %v has to be bool, but had %v", markerField.Name, markerField.Type.String())
		}
		if !bound[markerField.Name] {
			return nil, fmt.Errorf("presence marker field: '%v' does not have corresponding binding", markerField.Name)
		}
		ret.index[markerField.Name] = len(ret.fields)
		ret.fields = append(ret.fields, xunsafe.NewField(markerField))
	}
	return ret, nil
}

// IsPresenceMarker returns true if struct field is tagged as presence marker
func IsPresenceMarker(tag reflect.StructTag) bool {
	_, ok := tag.Lookup(PresenceMarkerTag)
	return ok
}

func presenceField(owner reflect.Type) string {
	for i := 0; i < owner.NumField(); i++ {
		if field := owner.Field(i); IsPresenceMarker(field.Tag) {
			return field.Name
		}
	}
	return ""
}
