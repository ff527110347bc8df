package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/the127/attestate/internal/diff"
	"github.com/the127/attestate/internal/grades"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/utils/modelError"
)

type SubjectsGradesTestSuite struct {
	suite.Suite
	s1 ids.ID
	s2 ids.ID
}

func TestSubjectsGradesTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SubjectsGradesTestSuite))
}

func (s *SubjectsGradesTestSuite) SetupTest() {
	s.s1 = ids.Generate()
	s.s2 = ids.Generate()
}

func (s *SubjectsGradesTestSuite) grades() *SubjectsGrades {
	return NewSubjectsGrades(map[ids.OID]grades.Value{
		s.s1.OID(): "5",
		s.s2.OID(): "4",
	})
}

func (s *SubjectsGradesTestSuite) TestDiffAndReverse() {
	// arrange
	g := s.grades()
	saved := g.Clone()

	// act
	err := g.SetValue(s.s2, grade("3"))

	// assert
	s.Require().NoError(err)
	d := saved.Diff(g)
	s.True(GradesPatch{s.s2.OID(): diff.Updated[grades.Value]("4", "3")}.Equal(d), "got %v", d)

	s.Require().NoError(g.ApplyDiff(ReverseGradesDiff(d)))
	s.True(g.Equal(saved))
}

func (s *SubjectsGradesTestSuite) TestSetEmptyRemoves() {
	// arrange
	g := s.grades()

	// act
	err := g.SetValue(s.s1, grade(""))

	// assert
	s.Require().NoError(err)
	_, ok := g.Value(s.s1)
	s.False(ok)
	s.Equal(1, g.Len())

	s.Require().NoError(g.SetValue(s.s2, nil))
	s.Equal(0, g.Len())
}

func (s *SubjectsGradesTestSuite) TestRemoveAbsentFails() {
	// arrange
	g := s.grades()

	// act
	err := g.SetValue(ids.Generate(), nil)

	// assert
	s.ErrorIs(err, modelError.ErrNotFound)
	s.Equal(2, g.Len())
}

func (s *SubjectsGradesTestSuite) TestValuesInOrder() {
	// arrange
	g := s.grades()
	missing := ids.Generate()

	// act
	values := g.Values([]ids.ID{s.s2, missing, s.s1})

	// assert
	s.Require().Len(values, 3)
	s.Equal(grades.Value("4"), *values[0])
	s.Nil(values[1])
	s.Equal(grades.Value("5"), *values[2])
}

func (s *SubjectsGradesTestSuite) TestNewSkipsEmptyValues() {
	// act
	g := NewSubjectsGrades(map[ids.OID]grades.Value{s.s1.OID(): ""})

	// assert
	s.Equal(0, g.Len())
}

func (s *SubjectsGradesTestSuite) TestApplyDiffRejectsEmptyGrade() {
	// arrange
	g := s.grades()

	// act
	err := g.ApplyDiff(GradesPatch{s.s1.OID(): diff.Updated[grades.Value]("5", "")})

	// assert
	s.ErrorIs(err, modelError.ErrInvalidPatch)
	v, _ := g.Value(s.s1)
	s.Equal(grades.Value("5"), v)
}

func (s *SubjectsGradesTestSuite) TestApplyInconsistentDiff() {
	// arrange
	g := s.grades()

	// act
	err := g.ApplyDiff(GradesPatch{s.s1.OID(): diff.Updated[grades.Value]("4", "3")})

	// assert
	s.ErrorIs(err, modelError.ErrInconsistentPatch)
	s.True(g.Equal(s.grades()))
}
