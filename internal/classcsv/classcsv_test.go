package classcsv

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/suite"
	"github.com/the127/attestate/internal/grades"
	"github.com/the127/attestate/internal/model"
	"github.com/the127/attestate/internal/utils/modelError"
)

const classData = `Номер аттестата;Дата выдачи;Фамилия;Имя;Отчество;Дата рождения;Математика;Физика
001;20.06.2024;Иванов;Иван;Иванович;14.03.2008;5;4
002;20.06.2024;Петров;Пётр;Петрович;01.09.2008;4;д
003;21.06.2024;Сидоров;Сидор;Сидорович;31.12.2007;3;
`

type ClassCsvTestSuite struct {
	suite.Suite
}

func TestClassCsvTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ClassCsvTestSuite))
}

func (s *ClassCsvTestSuite) read(data string) *model.Class {
	c, err := Read(strings.NewReader(data), DefaultParams())
	s.Require().NoError(err)
	return c
}

func (s *ClassCsvTestSuite) TestRead() {
	// act
	c := s.read(classData)

	// assert
	s.Equal(model.Existing, c.GetState())
	s.Equal(civil.Date{Year: 2024, Month: 6, Day: 20}, *c.GetIssueDate())
	s.Require().Equal(3, c.StudentsCount())

	plan := c.GetSubjectsPlan()
	s.Require().NotNil(plan)
	s.Equal(2, plan.SubjectsCount())
	math, err := plan.SubjectAt(0)
	s.Require().NoError(err)
	s.Equal("Математика", math.GetName())

	students := c.Students()
	s.Equal("Иванов", students[0].GetFamilyName())
	s.Equal("001", students[0].GetAttestateId())
	s.Equal(civil.Date{Year: 2008, Month: 3, Day: 14}, students[0].GetBirthDate())
	s.Nil(students[0].GetIssueDate())
	s.Nil(students[1].GetIssueDate())
	s.Equal(civil.Date{Year: 2024, Month: 6, Day: 21}, *students[2].GetIssueDate())

	v, ok := students[1].Grades().Value(plan.SubjectIds()[1])
	s.True(ok)
	s.Equal(grades.Value("д"), v)
	s.Equal(1, students[2].Grades().Len())
}

func (s *ClassCsvTestSuite) TestWriteRestoresInput() {
	// arrange
	c := s.read(classData)
	var buf bytes.Buffer

	// act
	err := Write(&buf, c, DefaultParams())

	// assert
	s.Require().NoError(err)
	s.Equal(classData, buf.String())
}

func (s *ClassCsvTestSuite) TestInvalidDatesAreKept() {
	// arrange
	data := `Номер аттестата;Дата выдачи;Фамилия;Имя;Отчество;Дата рождения
001;;Иванов;Иван;Иванович;не дата
`

	// act
	c := s.read(data)

	// assert
	s.Nil(c.GetIssueDate())
	student, err := c.StudentAt(0)
	s.Require().NoError(err)
	s.False(student.GetBirthDate().IsValid())
	s.Nil(student.GetIssueDate())
}

func (s *ClassCsvTestSuite) TestIssueDateTieTakesEarliest() {
	// arrange
	data := `Номер аттестата;Дата выдачи;Фамилия;Имя;Отчество;Дата рождения
001;21.06.2024;Иванов;Иван;Иванович;14.03.2008
002;20.06.2024;Петров;Пётр;Петрович;01.09.2008
`

	// act
	c := s.read(data)

	// assert
	s.Equal(civil.Date{Year: 2024, Month: 6, Day: 20}, *c.GetIssueDate())
}

func (s *ClassCsvTestSuite) TestCustomParams() {
	// arrange
	p := Params{Delimiter: ',', DateFormat: "2006-01-02"}
	data := "Номер аттестата,Дата выдачи,Фамилия,Имя,Отчество,Дата рождения,Химия\n" +
		"001,2024-06-20,Иванов,Иван,Иванович,2008-03-14,5\n"

	// act
	c, err := Read(strings.NewReader(data), p)

	// assert
	s.Require().NoError(err)
	s.Equal(civil.Date{Year: 2024, Month: 6, Day: 20}, *c.GetIssueDate())

	var buf bytes.Buffer
	s.Require().NoError(Write(&buf, c, p))
	s.Equal(data, buf.String())
}

func (s *ClassCsvTestSuite) TestMalformedInput() {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"short header", "Номер аттестата;Дата выдачи\n"},
		{"column mismatch", "Номер аттестата;Дата выдачи;Фамилия;Имя;Отчество;Дата рождения;Химия\n001;;Иванов\n"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			// act
			c, err := Read(strings.NewReader(tt.data), DefaultParams())

			// assert
			s.Nil(c)
			s.ErrorIs(err, modelError.ErrInvalidFormat)
		})
	}
}

func (s *ClassCsvTestSuite) TestFiles() {
	// arrange
	c := s.read(classData)
	path := filepath.Join(s.T().TempDir(), "class.csv")

	// act
	err := WriteFile(path, c, DefaultParams())

	// assert
	s.Require().NoError(err)
	loaded, err := ReadFile(path, DefaultParams())
	s.Require().NoError(err)
	s.Equal(3, loaded.StudentsCount())

	_, err = ReadFile(filepath.Join(s.T().TempDir(), "missing.csv"), DefaultParams())
	s.Error(err)
}
