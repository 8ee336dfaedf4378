package jsonclass

import "reflect"

// Metadata represents effective class metadata: ancestor bindings followed by own bindings
type Metadata struct {
	class      *Class
	properties []*property
	keys       map[string]bool
	extra      path
	marker     *Marker
}

// Class returns declared class
func (m *Metadata) Class() *Class {
	return m.class
}

// Type returns class type
func (m *Metadata) Type() reflect.Type {
	return m.class.rType
}

// Strict returns class strict flag, the flag is not inherited from ancestors
func (m *Metadata) Strict() bool {
	return m.class.strict
}

// Bindings returns effective bindings
func (m *Metadata) Bindings() []*Binding {
	ret := make([]*Binding, len(m.properties))
	for i, prop := range m.properties {
		ret[i] = prop.Binding
	}
	return ret
}

// Marker returns presence marker or nil
func (m *Metadata) Marker() *Marker {
	return m.marker
}

// HasKey returns true if any effective binding uses supplied key
func (m *Metadata) HasKey(key string) bool {
	return m.keys[key]
}

func (m *Metadata) add(prop *property) error {
	if m.keys[prop.Key] {
		return &DuplicateKeyError{Type: m.class.rType, Key: prop.Key}
	}
	m.keys[prop.Key] = true
	m.properties = append(m.properties, prop)
	return nil
}
