package model

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/suite"
	"github.com/the127/attestate/internal/collection"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/utils/modelError"
	"github.com/the127/attestate/internal/utils/pointer"
)

type ClassTestSuite struct {
	suite.Suite
}

func TestClassTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ClassTestSuite))
}

func (s *ClassTestSuite) loadedPlan() *SubjectsPlan {
	p, err := NewSubjectsPlanFromDB(ids.Generate(), "plan", loadedSubjects("A", "B"))
	s.Require().NoError(err)
	return p
}

func (s *ClassTestSuite) loadedClass(plan *SubjectsPlan, students ...*Student) *Class {
	c, err := NewClassFromDB(ids.Generate(), ClassData{
		ClassId:        "9А",
		GraduationYear: pointer.To(Year(2024)),
		IssueDate:      &civil.Date{Year: 2024, Month: 6, Day: 20},
	}, students, plan)
	s.Require().NoError(err)
	return c
}

func (s *ClassTestSuite) TestNewClass() {
	// act
	c := NewClass(ids.Generate())

	// assert
	s.Equal(New, c.GetState())
	s.True(c.IsClassIdModified())
	s.True(c.IsGraduationYearModified())
	s.True(c.IsIssueDateModified())
	s.True(c.IsSubjectsPlanModified())
	s.True(c.AreStudentsModified())
	s.Nil(c.GetSubjectsPlan())
}

func (s *ClassTestSuite) TestLoadedClass() {
	// arrange
	plan := s.loadedPlan()
	students := loadedStudents("Иванов", "Петров")

	// act
	c := s.loadedClass(plan, students...)

	// assert
	s.Equal(Existing, c.GetState())
	s.Equal("9А", c.GetClassId())
	s.Equal(Year(2024), *c.GetGraduationYear())
	s.Same(plan, c.GetSubjectsPlan())
	s.Equal(2, c.StudentsCount())

	student, err := c.StudentAt(1)
	s.Require().NoError(err)
	s.Same(students[1], student)
}

func (s *ClassTestSuite) TestLoadRejectsNonExistingStudents() {
	// arrange
	modified := loadedStudent("Иванов")
	modified.SetName("Пётр")

	// act
	c, err := NewClassFromDB(ids.Generate(), ClassData{}, []*Student{modified}, nil)

	// assert
	s.Nil(c)
	s.ErrorIs(err, modelError.ErrInvalidState)
}

func (s *ClassTestSuite) TestEraseManyThenInsertManyRestoresExisting() {
	// arrange
	c := s.loadedClass(s.loadedPlan(), loadedStudents("Иванов", "Петров", "Сидоров")...)

	// act
	removed, err := c.EraseMany([]collection.Index{0, 1})

	// assert
	s.Require().NoError(err)
	s.Equal([]string{"Сидоров"}, familyNames(c.Students()))
	s.Equal(Modified, c.GetState())

	s.Require().NoError(c.InsertMany(removed))
	s.Equal([]string{"Иванов", "Петров", "Сидоров"}, familyNames(c.Students()))
	s.Equal(Existing, c.GetState())
}

func (s *ClassTestSuite) TestMoveIsTracked() {
	// arrange
	c := s.loadedClass(nil, loadedStudents("Иванов", "Петров")...)

	// act
	err := c.Move(1, 0)

	// assert
	s.Require().NoError(err)
	s.True(c.AreStudentsModified())
	s.Equal(Modified, c.GetState())

	s.Require().NoError(c.Move(0, 1))
	s.Equal(Existing, c.GetState())
}

func (s *ClassTestSuite) TestStudentStateFoldsIntoClass() {
	// arrange
	students := loadedStudents("Иванов")
	c := s.loadedClass(nil, students...)

	// act
	students[0].SetFamilyName("Петров")

	// assert
	s.Equal(Modified, c.GetState())
}

func (s *ClassTestSuite) TestSubjectsPlanIdentityIsTracked() {
	// arrange
	plan := s.loadedPlan()
	c := s.loadedClass(plan)
	other := s.loadedPlan()

	// act
	c.SetSubjectsPlan(other)

	// assert
	s.True(c.IsSubjectsPlanModified())
	s.Equal(Modified, c.GetState())

	c.SetSubjectsPlan(plan)
	s.False(c.IsSubjectsPlanModified())

	plan.SetName("changed")
	s.Equal(Existing, c.GetState())
}

func (s *ClassTestSuite) TestInsertRejectsNilAndDeleted() {
	// arrange
	c := s.loadedClass(nil)
	deleted := loadedStudent("Иванов")
	deleted.SetDeleted(true)

	// act
	errNil := c.Append(nil)
	errDeleted := c.InsertMany(map[collection.Index]*Student{0: deleted})

	// assert
	s.ErrorIs(errNil, modelError.ErrInvalidOperation)
	s.ErrorIs(errDeleted, modelError.ErrInvalidOperation)
	s.Equal(0, c.StudentsCount())
}

func (s *ClassTestSuite) TestInsertDuplicateFails() {
	// arrange
	students := loadedStudents("Иванов")
	c := s.loadedClass(nil, students...)

	// act
	err := c.Insert(students[0], 0)

	// assert
	s.ErrorIs(err, modelError.ErrDuplicateKey)
	s.Equal(Existing, c.GetState())
}

func (s *ClassTestSuite) TestSaveWithDeletedStudentFails() {
	// arrange
	students := loadedStudents("Иванов", "Петров")
	c := s.loadedClass(nil, students...)
	students[0].SetFamilyName("Сидоров")
	students[1].SetDeleted(true)

	// act
	err := c.Save()

	// assert
	s.ErrorIs(err, modelError.ErrInvalidOperation)
	s.Equal(Modified, students[0].GetState())
}

func (s *ClassTestSuite) TestSaveDeletedClassFails() {
	// arrange
	c := s.loadedClass(nil)
	c.SetDeleted(true)

	// act
	err := c.Save()

	// assert
	s.ErrorIs(err, modelError.ErrInvalidOperation)
}

func (s *ClassTestSuite) TestSaveDoesNotSavePlan() {
	// arrange
	plan := NewSubjectsPlan(ids.Generate())
	c := NewClass(ids.Generate())
	c.SetSubjectsPlan(plan)
	student := NewStudent(ids.Generate())
	s.Require().NoError(c.Append(student))

	// act
	err := c.Save()

	// assert
	s.Require().NoError(err)
	s.Equal(Existing, c.GetState())
	s.Equal(Existing, student.GetState())
	s.Equal(New, plan.GetState())
}
