// Package conv provides a configurable, reflection-based value converter.
// It coerces JSON-like values (float64 numbers, strings, bools, sequences and objects)
// into typed destinations: primitives, named primitive types, pointers, slices, maps and time.Time,
// with custom conversion functions registered per source/destination type.
package conv
