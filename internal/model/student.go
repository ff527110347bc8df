package model

import (
	"cloud.google.com/go/civil"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/utils/pointer"
)

// Year is a calendar year.
type Year uint16

// StudentData carries the saved values of a student.
type StudentData struct {
	FamilyName     string
	Name           string
	ParentalName   string
	BirthDate      civil.Date
	Grades         *SubjectsGrades
	GraduationYear *Year
	AttestateId    string
	IssueDate      *civil.Date
}

type Student struct {
	BaseModel
	familyName     Field[string]
	name           Field[string]
	parentalName   Field[string]
	birthDate      Field[civil.Date]
	graduationYear Field[*Year]
	attestateId    Field[string]
	issueDate      Field[*civil.Date]
	grades         *SubjectsGrades
	savedGrades    *SubjectsGrades
}

func NewStudent(id ids.ID) *Student {
	return &Student{
		BaseModel:      NewBaseModel(id),
		familyName:     newValueField(""),
		name:           newValueField(""),
		parentalName:   newValueField(""),
		birthDate:      newValueField(civil.Date{}),
		graduationYear: newPointerField[Year](nil),
		attestateId:    newValueField(""),
		issueDate:      newPointerField[civil.Date](nil),
		grades:         NewSubjectsGrades(nil),
	}
}

func NewStudentFromDB(id ids.ID, data StudentData) *Student {
	g := data.Grades
	if g == nil {
		g = NewSubjectsGrades(nil)
	} else {
		g = g.Clone()
	}

	return &Student{
		BaseModel:      NewBaseModelFromDB(id),
		familyName:     loadValueField(data.FamilyName),
		name:           loadValueField(data.Name),
		parentalName:   loadValueField(data.ParentalName),
		birthDate:      loadValueField(data.BirthDate),
		graduationYear: loadPointerField(data.GraduationYear),
		attestateId:    loadValueField(data.AttestateId),
		issueDate:      loadPointerField(data.IssueDate),
		grades:         g,
		savedGrades:    g.Clone(),
	}
}

func (s *Student) GetFamilyName() string {
	return s.familyName.Get()
}

func (s *Student) SetFamilyName(familyName string) {
	s.familyName.Set(familyName)
}

func (s *Student) IsFamilyNameModified() bool {
	return s.familyName.IsModified()
}

func (s *Student) GetName() string {
	return s.name.Get()
}

func (s *Student) SetName(name string) {
	s.name.Set(name)
}

func (s *Student) IsNameModified() bool {
	return s.name.IsModified()
}

func (s *Student) GetParentalName() string {
	return s.parentalName.Get()
}

func (s *Student) SetParentalName(parentalName string) {
	s.parentalName.Set(parentalName)
}

func (s *Student) IsParentalNameModified() bool {
	return s.parentalName.IsModified()
}

func (s *Student) GetBirthDate() civil.Date {
	return s.birthDate.Get()
}

func (s *Student) SetBirthDate(birthDate civil.Date) {
	s.birthDate.Set(birthDate)
}

func (s *Student) IsBirthDateModified() bool {
	return s.birthDate.IsModified()
}

// GetGraduationYear returns nil when the class graduation year applies.
func (s *Student) GetGraduationYear() *Year {
	return pointer.Clone(s.graduationYear.Get())
}

func (s *Student) SetGraduationYear(graduationYear *Year) {
	s.graduationYear.Set(pointer.Clone(graduationYear))
}

func (s *Student) IsGraduationYearModified() bool {
	return s.graduationYear.IsModified()
}

func (s *Student) GetAttestateId() string {
	return s.attestateId.Get()
}

func (s *Student) SetAttestateId(attestateId string) {
	s.attestateId.Set(attestateId)
}

func (s *Student) IsAttestateIdModified() bool {
	return s.attestateId.IsModified()
}

// GetIssueDate returns nil when the class issue date applies.
func (s *Student) GetIssueDate() *civil.Date {
	return pointer.Clone(s.issueDate.Get())
}

func (s *Student) SetIssueDate(issueDate *civil.Date) {
	s.issueDate.Set(pointer.Clone(issueDate))
}

func (s *Student) IsIssueDateModified() bool {
	return s.issueDate.IsModified()
}

func (s *Student) IsPersonalInfoModified() bool {
	return s.IsFamilyNameModified() ||
		s.IsNameModified() ||
		s.IsParentalNameModified() ||
		s.IsBirthDateModified() ||
		s.IsGraduationYearModified() ||
		s.IsAttestateIdModified() ||
		s.IsIssueDateModified()
}

// Grades returns the student's grades. Changes made through it are tracked.
func (s *Student) Grades() *SubjectsGrades {
	return s.grades
}

func (s *Student) AreGradesModified() bool {
	if s.savedGrades == nil {
		return true
	}

	return !s.savedGrades.Equal(s.grades)
}

func (s *Student) IsModified() bool {
	return s.GetState() == Modified
}

func (s *Student) GetState() State {
	return s.stateOf(s.IsPersonalInfoModified() || s.AreGradesModified())
}

func (s *Student) CanSave() error {
	return s.checkSavable("student")
}

func (s *Student) Save() error {
	err := s.CanSave()
	if err != nil {
		return err
	}

	s.familyName.Commit()
	s.name.Commit()
	s.parentalName.Commit()
	s.birthDate.Commit()
	s.graduationYear.Commit()
	s.attestateId.Commit()
	s.issueDate.Commit()
	s.savedGrades = s.grades.Clone()
	s.markSaved()
	return nil
}
