package model

import (
	"fmt"
	"maps"

	"github.com/the127/attestate/internal/diff"
	"github.com/the127/attestate/internal/grades"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/utils/modelError"
)

// GradesPatch maps subjects to the change of their grade.
type GradesPatch = diff.Patch[ids.OID, grades.Value]

// SubjectsGrades holds a student's grades keyed by subject. Subjects without
// a grade are absent.
type SubjectsGrades struct {
	values map[ids.OID]grades.Value
}

func NewSubjectsGrades(values map[ids.OID]grades.Value) *SubjectsGrades {
	g := &SubjectsGrades{
		values: make(map[ids.OID]grades.Value, len(values)),
	}
	for k, v := range values {
		if v != "" {
			g.values[k] = v
		}
	}

	return g
}

func (g *SubjectsGrades) Value(subjectID ids.ID) (grades.Value, bool) {
	v, ok := g.values[subjectID.OID()]
	return v, ok
}

// SetValue sets the grade for a subject. A nil or empty value removes the
// grade, which must then be present.
func (g *SubjectsGrades) SetValue(subjectID ids.ID, value *grades.Value) error {
	key := subjectID.OID()
	if value != nil && *value != "" {
		g.values[key] = *value
		return nil
	}

	if _, ok := g.values[key]; !ok {
		return fmt.Errorf("grade for subject %s: %w", subjectID, modelError.ErrNotFound)
	}

	delete(g.values, key)
	return nil
}

// Values returns the grades for the given subjects in order, with nil for
// subjects that have no grade.
func (g *SubjectsGrades) Values(subjectIDs []ids.ID) []*grades.Value {
	result := make([]*grades.Value, len(subjectIDs))
	for i, id := range subjectIDs {
		if v, ok := g.values[id.OID()]; ok {
			result[i] = &v
		}
	}

	return result
}

func (g *SubjectsGrades) Len() int {
	return len(g.values)
}

func (g *SubjectsGrades) Clone() *SubjectsGrades {
	return &SubjectsGrades{
		values: maps.Clone(g.values),
	}
}

func (g *SubjectsGrades) Equal(other *SubjectsGrades) bool {
	return maps.Equal(g.values, other.values)
}

// Diff returns the patch that turns these grades into other.
func (g *SubjectsGrades) Diff(other *SubjectsGrades) GradesPatch {
	return diff.Compute(g.values, other.values)
}

func (g *SubjectsGrades) ApplyDiff(patch GradesPatch) error {
	for k, c := range patch {
		if c.New != nil && *c.New == "" {
			return fmt.Errorf("empty grade for subject %d: %w", k, modelError.ErrInvalidPatch)
		}
	}

	return diff.Apply(g.values, patch)
}

// ReverseGradesDiff returns the patch undoing patch.
func ReverseGradesDiff(patch GradesPatch) GradesPatch {
	return diff.Reverse(patch)
}
