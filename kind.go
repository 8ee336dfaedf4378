package jsonclass

import (
	"fmt"
	"strings"
)

// Kind defines how a binding converts its field
type Kind int

const (
	KindScalar Kind = iota
	KindCustomTransform
	KindComplexObject
	KindArrayOfScalar
	KindArrayOfComplexObject
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindCustomTransform:
		return "transform"
	case KindComplexObject:
		return "object"
	case KindArrayOfScalar:
		return "array"
	case KindArrayOfComplexObject:
		return "objects"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsArray returns true for array kinds
func (k Kind) IsArray() bool {
	return k == KindArrayOfScalar || k == KindArrayOfComplexObject
}

// IsComplex returns true for kinds converted through a nested class
func (k Kind) IsComplex() bool {
	return k == KindComplexObject || k == KindArrayOfComplexObject
}

// ParseKind parses kind name as used by the jsonclass tag
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scalar", "property":
		return KindScalar, nil
	case "transform", "custom":
		return KindCustomTransform, nil
	case "object", "complex":
		return KindComplexObject, nil
	case "array", "scalars":
		return KindArrayOfScalar, nil
	case "objects", "complexarray":
		return KindArrayOfComplexObject, nil
	}
	return 0, fmt.Errorf("unknown binding kind: %q", name)
}
