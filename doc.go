// Package jsonclass converts JSON-like data (map[string]interface{}, []interface{}, primitives and nil)
// into typed structs and back, driven by per-field bindings registered once at program initialization.
//
// A class is registered for a struct type, then bindings map its fields to source keys:
//
//	jsonclass.MustRegister[Person](jsonclass.WithNew(NewPerson)).MustBind(
//		jsonclass.Scalar("FirstName"),
//		jsonclass.Scalar("Age", jsonclass.WithKey("eta")),
//		jsonclass.ComplexObject("Address", nil, jsonclass.WithKey("aa")),
//		jsonclass.ArrayOfComplexObject("PrevAddresses", nil),
//	)
//	person, err := jsonclass.Decode[Person](input)
//	output, err := jsonclass.Serialize(person)
//
// Embedded registered structs act as ancestors: their bindings come first in the effective binding list.
// Non strict (extensible) classes copy unmapped input keys into a designated map[string]interface{} field.
package jsonclass
