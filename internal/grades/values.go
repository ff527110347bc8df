// Package grades describes the vocabulary of grade values a student may have
// for a subject.
package grades

import (
	"fmt"
	"slices"

	"github.com/the127/attestate/internal/utils/modelError"
)

// Value is a grade token as entered by the user, e.g. "5" or "д".
type Value string

type Type int

const (
	// HasRepresentation values are numeric grades printed with a word.
	HasRepresentation Type = iota
	// Auxiliary values mark a passed subject without a numeric grade.
	Auxiliary
	// None values mark a subject that was not taken.
	None
)

func (t Type) String() string {
	switch t {
	case HasRepresentation:
		return "representable"
	case Auxiliary:
		return "auxiliary"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

var representable = []Value{"5", "4", "3"}
var auxiliary = []Value{"д", "Д", "+"}
var none = []Value{"н", "Н", "-"}

var representations = map[Value]string{
	"5": "5 (отлично)",
	"4": "4 (хорошо)",
	"3": "3 (удовл.)",
}

func ValidValues() []Value {
	values := make([]Value, 0, len(representable)+len(auxiliary)+len(none))
	values = append(values, representable...)
	values = append(values, auxiliary...)
	values = append(values, none...)
	return values
}

func IsValid(v Value) bool {
	return slices.Contains(ValidValues(), v)
}

func TypeOf(v Value) (Type, error) {
	switch {
	case slices.Contains(representable, v):
		return HasRepresentation, nil
	case slices.Contains(auxiliary, v):
		return Auxiliary, nil
	case slices.Contains(none, v):
		return None, nil
	default:
		return 0, fmt.Errorf("%q: %w", v, modelError.ErrInvalidGrade)
	}
}

// Representation returns the printable form of a representable grade.
func Representation(v Value) (string, error) {
	r, ok := representations[v]
	if !ok {
		return "", fmt.Errorf("%q has no representation: %w", v, modelError.ErrInvalidGrade)
	}

	return r, nil
}
