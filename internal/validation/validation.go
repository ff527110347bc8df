package validation

import (
	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/the127/attestate/internal/collection"
	"github.com/the127/attestate/internal/grades"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/model"
)

// Property tags the student and class values that are validated.
type Property string

const (
	FamilyName     Property = "FAMILY_NAME"
	Name           Property = "NAME"
	ParentalName   Property = "PARENTAL_NAME"
	BirthDate      Property = "BIRTH_DATE"
	AttestateId    Property = "ATTESTATE_ID"
	IssueDate      Property = "ISSUE_DATE"
	GraduationYear Property = "GRADUATION_YEAR"
)

type ValueError int

const (
	Empty ValueError = iota
	Invalid
)

func (e ValueError) String() string {
	switch e {
	case Empty:
		return "empty"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

type PropertyErrors map[Property]ValueError

// GradeErrors is keyed by subject.
type GradeErrors map[ids.OID]ValueError

type StudentErrors struct {
	Properties PropertyErrors
	Grades     GradeErrors
}

type ClassErrors struct {
	Properties PropertyErrors
	Students   map[ids.OID]*StudentErrors
}

var validate = validator.New()

// ValidateStudent checks the student at position i. It returns nil when the
// student is deleted or has no errors. Issue date and graduation year fall
// back to the class values.
func ValidateStudent(c *model.Class, i collection.Index) (*StudentErrors, error) {
	s, err := c.StudentAt(i)
	if err != nil {
		return nil, err
	}

	return validateStudent(c, s), nil
}

// ValidateClass returns nil when the class and all of its students are valid.
// Deleted students are skipped.
func ValidateClass(c *model.Class) *ClassErrors {
	properties := make(PropertyErrors)
	if !isValidDate(c.GetIssueDate()) {
		properties[IssueDate] = Invalid
	}
	if c.GetGraduationYear() == nil {
		properties[GraduationYear] = Empty
	}

	students := make(map[ids.OID]*StudentErrors)
	for _, s := range c.Students() {
		errs := validateStudent(c, s)
		if errs != nil {
			students[s.GetId().OID()] = errs
		}
	}

	if len(properties) == 0 && len(students) == 0 {
		return nil
	}

	return &ClassErrors{
		Properties: properties,
		Students:   students,
	}
}

func validateStudent(c *model.Class, s *model.Student) *StudentErrors {
	if s.GetState() == model.Deleted {
		return nil
	}

	properties := make(PropertyErrors)
	requireValue(properties, FamilyName, s.GetFamilyName())
	requireValue(properties, Name, s.GetName())
	requireValue(properties, ParentalName, s.GetParentalName())
	requireValue(properties, AttestateId, s.GetAttestateId())

	birthDate := s.GetBirthDate()
	if !isValidDate(&birthDate) {
		properties[BirthDate] = Invalid
	}

	issueDate := s.GetIssueDate()
	if issueDate == nil {
		issueDate = c.GetIssueDate()
	}
	if !isValidDate(issueDate) {
		properties[IssueDate] = Invalid
	}

	if s.GetGraduationYear() == nil && c.GetGraduationYear() == nil {
		properties[GraduationYear] = Empty
	}

	gradeErrors := make(GradeErrors)
	if plan := c.GetSubjectsPlan(); plan != nil {
		for _, subjectId := range plan.SubjectIds() {
			v, ok := s.Grades().Value(subjectId)
			switch {
			case !ok || v == "":
				gradeErrors[subjectId.OID()] = Empty
			case !grades.IsValid(v):
				gradeErrors[subjectId.OID()] = Invalid
			}
		}
	}

	if len(properties) == 0 && len(gradeErrors) == 0 {
		return nil
	}

	return &StudentErrors{
		Properties: properties,
		Grades:     gradeErrors,
	}
}

func requireValue(errs PropertyErrors, p Property, value string) {
	if validate.Var(value, "required") != nil {
		errs[p] = Empty
	}
}

func isValidDate(d *civil.Date) bool {
	return d != nil && d.IsValid()
}
