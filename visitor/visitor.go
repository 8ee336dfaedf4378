package visitor

// Visitor iterates over (key, element) pairs of a JSON-like container,
// keys are object keys or sequence indexes.
// Returning false from the callback stops the iteration, returning an error stops it and
// the error is returned to the caller.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error
