package model

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/suite"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/utils/modelError"
	"github.com/the127/attestate/internal/utils/pointer"
)

type StudentTestSuite struct {
	suite.Suite
}

func TestStudentTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StudentTestSuite))
}

func (s *StudentTestSuite) TestNewStudentHasAllFieldsModified() {
	// act
	student := NewStudent(ids.Generate())

	// assert
	s.Equal(New, student.GetState())
	s.True(student.IsFamilyNameModified())
	s.True(student.IsNameModified())
	s.True(student.IsParentalNameModified())
	s.True(student.IsBirthDateModified())
	s.True(student.IsGraduationYearModified())
	s.True(student.IsAttestateIdModified())
	s.True(student.IsIssueDateModified())
	s.True(student.AreGradesModified())
	s.False(student.IsModified())
}

func (s *StudentTestSuite) TestFamilyNameRoundTrip() {
	// arrange
	student := loadedStudent("Иванов")

	// act & assert
	s.Equal(Existing, student.GetState())

	student.SetFamilyName("Петров")
	s.True(student.IsFamilyNameModified())
	s.True(student.IsPersonalInfoModified())
	s.Equal(Modified, student.GetState())

	student.SetFamilyName("Иванов")
	s.False(student.IsFamilyNameModified())
	s.Equal(Existing, student.GetState())
}

func (s *StudentTestSuite) TestOptionalFields() {
	// arrange
	student := loadedStudent("Иванов")
	date := civil.Date{Year: 2024, Month: 6, Day: 20}

	// act
	student.SetIssueDate(&date)
	date.Day = 21

	// assert
	s.Equal(civil.Date{Year: 2024, Month: 6, Day: 20}, *student.GetIssueDate())
	s.True(student.IsIssueDateModified())

	student.SetIssueDate(nil)
	s.False(student.IsIssueDateModified())

	student.SetGraduationYear(pointer.To(Year(2024)))
	s.Equal(Year(2024), *student.GetGraduationYear())
	s.Equal(Modified, student.GetState())
}

func (s *StudentTestSuite) TestGradesTracking() {
	// arrange
	subject := ids.Generate()
	student := loadedStudent("Иванов")

	// act
	err := student.Grades().SetValue(subject, grade("5"))

	// assert
	s.Require().NoError(err)
	s.True(student.AreGradesModified())
	s.False(student.IsPersonalInfoModified())
	s.Equal(Modified, student.GetState())

	s.Require().NoError(student.Grades().SetValue(subject, nil))
	s.Equal(Existing, student.GetState())
}

func (s *StudentTestSuite) TestSave() {
	// arrange
	student := NewStudent(ids.Generate())
	student.SetFamilyName("Сидоров")
	s.Require().NoError(student.Grades().SetValue(ids.Generate(), grade("4")))

	// act
	err := student.Save()

	// assert
	s.Require().NoError(err)
	s.Equal(Existing, student.GetState())
	s.False(student.AreGradesModified())
}

func (s *StudentTestSuite) TestSaveDeletedFails() {
	// arrange
	student := loadedStudent("Иванов")
	student.SetDeleted(true)

	// act
	err := student.Save()

	// assert
	s.ErrorIs(err, modelError.ErrInvalidOperation)
	s.Equal(Deleted, student.GetState())
}
