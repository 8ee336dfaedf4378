package jsonclass

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// GenMarkerFields generates presence marker bool fields for top level exported bound fields
func GenMarkerFields(meta *Metadata) []reflect.StructField {
	var result []reflect.StructField
	if meta == nil {
		return result
	}
	boolType := reflect.TypeOf(true)
	seen := map[string]bool{}
	for _, prop := range meta.properties {
		name := prop.Field
		if seen[name] {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(name); !unicode.IsUpper(r) {
			continue
		}
		seen[name] = true
		result = append(result, reflect.StructField{Name: name, Type: boolType})
	}
	return result
}

// GenMarkerType generates presence marker struct type for supplied metadata
func GenMarkerType(meta *Metadata) reflect.Type {
	return reflect.StructOf(GenMarkerFields(meta))
}
