package validation

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/suite"
	"github.com/the127/attestate/internal/grades"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/model"
	"github.com/the127/attestate/internal/utils/modelError"
	"github.com/the127/attestate/internal/utils/pointer"
)

type ValidationTestSuite struct {
	suite.Suite
	math    *model.Subject
	physics *model.Subject
}

func TestValidationTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) SetupTest() {
	s.math = model.NewSubjectFromDB(ids.Generate(), "Математика", "Мат")
	s.physics = model.NewSubjectFromDB(ids.Generate(), "Физика", "Физ")
}

func (s *ValidationTestSuite) validStudent() *model.Student {
	return model.NewStudentFromDB(ids.Generate(), model.StudentData{
		FamilyName:   "Иванов",
		Name:         "Иван",
		ParentalName: "Иванович",
		BirthDate:    civil.Date{Year: 2008, Month: 3, Day: 14},
		Grades: model.NewSubjectsGrades(map[ids.OID]grades.Value{
			s.math.GetId().OID():    "5",
			s.physics.GetId().OID(): "д",
		}),
		AttestateId: "001",
	})
}

func (s *ValidationTestSuite) class(students ...*model.Student) *model.Class {
	plan, err := model.NewSubjectsPlanFromDB(ids.Generate(), "plan", []*model.Subject{s.math, s.physics})
	s.Require().NoError(err)

	c, err := model.NewClassFromDB(ids.Generate(), model.ClassData{
		ClassId:        "9А",
		GraduationYear: pointer.To(model.Year(2024)),
		IssueDate:      &civil.Date{Year: 2024, Month: 6, Day: 20},
	}, students, plan)
	s.Require().NoError(err)
	return c
}

func (s *ValidationTestSuite) TestValidClass() {
	// arrange
	c := s.class(s.validStudent(), s.validStudent())

	// act
	errs := ValidateClass(c)

	// assert
	s.Nil(errs)
}

func (s *ValidationTestSuite) TestEmptyProperties() {
	tests := []struct {
		name     string
		property Property
		modify   func(*model.Student)
	}{
		{"family name", FamilyName, func(st *model.Student) { st.SetFamilyName("") }},
		{"name", Name, func(st *model.Student) { st.SetName("") }},
		{"parental name", ParentalName, func(st *model.Student) { st.SetParentalName("") }},
		{"attestate id", AttestateId, func(st *model.Student) { st.SetAttestateId("") }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			// arrange
			student := s.validStudent()
			c := s.class(student)
			tt.modify(student)

			// act
			errs, err := ValidateStudent(c, 0)

			// assert
			s.Require().NoError(err)
			s.Require().NotNil(errs)
			s.Equal(PropertyErrors{tt.property: Empty}, errs.Properties)
			s.Empty(errs.Grades)
		})
	}
}

func (s *ValidationTestSuite) TestInvalidBirthDate() {
	// arrange
	student := s.validStudent()
	c := s.class(student)
	student.SetBirthDate(civil.Date{Year: 2008, Month: 2, Day: 30})

	// act
	errs, err := ValidateStudent(c, 0)

	// assert
	s.Require().NoError(err)
	s.Require().NotNil(errs)
	s.Equal(Invalid, errs.Properties[BirthDate])
}

func (s *ValidationTestSuite) TestIssueDateFallsBackToClass() {
	// arrange
	student := s.validStudent()
	c := s.class(student)

	// act
	before, err := ValidateStudent(c, 0)
	s.Require().NoError(err)
	c.SetIssueDate(nil)
	after, err := ValidateStudent(c, 0)
	s.Require().NoError(err)

	// assert
	s.Nil(before)
	s.Require().NotNil(after)
	s.Equal(PropertyErrors{IssueDate: Invalid}, after.Properties)

	student.SetIssueDate(&civil.Date{Year: 2024, Month: 6, Day: 21})
	fixed, err := ValidateStudent(c, 0)
	s.Require().NoError(err)
	s.Nil(fixed)
}

func (s *ValidationTestSuite) TestGraduationYearFallsBackToClass() {
	// arrange
	student := s.validStudent()
	c := s.class(student)
	c.SetGraduationYear(nil)

	// act
	errs, err := ValidateStudent(c, 0)

	// assert
	s.Require().NoError(err)
	s.Require().NotNil(errs)
	s.Equal(PropertyErrors{GraduationYear: Empty}, errs.Properties)

	student.SetGraduationYear(pointer.To(model.Year(2025)))
	errs, err = ValidateStudent(c, 0)
	s.Require().NoError(err)
	s.Nil(errs)
}

func (s *ValidationTestSuite) TestGradeErrors() {
	// arrange
	student := s.validStudent()
	c := s.class(student)
	s.Require().NoError(student.Grades().SetValue(s.math.GetId(), nil))
	s.Require().NoError(student.Grades().SetValue(s.physics.GetId(), pointer.To(grades.Value("7"))))

	// act
	errs, err := ValidateStudent(c, 0)

	// assert
	s.Require().NoError(err)
	s.Require().NotNil(errs)
	s.Empty(errs.Properties)
	s.Equal(GradeErrors{
		s.math.GetId().OID():    Empty,
		s.physics.GetId().OID(): Invalid,
	}, errs.Grades)
}

func (s *ValidationTestSuite) TestDeletedStudentIsSkipped() {
	// arrange
	broken := s.validStudent()
	c := s.class(s.validStudent(), broken)
	broken.SetFamilyName("")
	broken.SetDeleted(true)

	// act
	errs := ValidateClass(c)
	studentErrs, err := ValidateStudent(c, 1)

	// assert
	s.Nil(errs)
	s.Require().NoError(err)
	s.Nil(studentErrs)
}

func (s *ValidationTestSuite) TestClassErrors() {
	// arrange
	broken := s.validStudent()
	c := s.class(s.validStudent(), broken)
	broken.SetName("")
	c.SetIssueDate(nil)

	// act
	errs := ValidateClass(c)

	// assert
	s.Require().NotNil(errs)
	s.Equal(PropertyErrors{IssueDate: Invalid}, errs.Properties)
	s.Len(errs.Students, 2)
	s.Equal(PropertyErrors{Name: Empty, IssueDate: Invalid}, errs.Students[broken.GetId().OID()].Properties)
}

func (s *ValidationTestSuite) TestOutOfRange() {
	// arrange
	c := s.class()

	// act
	errs, err := ValidateStudent(c, 3)

	// assert
	s.Nil(errs)
	s.ErrorIs(err, modelError.ErrIndexOutOfRange)
}
