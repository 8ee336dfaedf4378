// Package visitor offers visitors for JSON-like containers.
// Objects are maps with string keys, sequences are slices or arrays of any element type,
// both are iterated with simple callbacks.
package visitor
