package model

import (
	"cloud.google.com/go/civil"
	"github.com/the127/attestate/internal/grades"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/utils/pointer"
)

func loadedSubject(name string) *Subject {
	return NewSubjectFromDB(ids.Generate(), name, name+".")
}

func loadedSubjects(names ...string) []*Subject {
	result := make([]*Subject, len(names))
	for i, n := range names {
		result[i] = loadedSubject(n)
	}
	return result
}

func subjectNames(subjects []*Subject) []string {
	result := make([]string, len(subjects))
	for i, s := range subjects {
		result[i] = s.GetName()
	}
	return result
}

func loadedStudent(familyName string) *Student {
	return NewStudentFromDB(ids.Generate(), StudentData{
		FamilyName:   familyName,
		Name:         "Иван",
		ParentalName: "Иванович",
		BirthDate:    civil.Date{Year: 2008, Month: 3, Day: 14},
		Grades:       NewSubjectsGrades(nil),
		AttestateId:  "A-" + familyName,
	})
}

func loadedStudents(familyNames ...string) []*Student {
	result := make([]*Student, len(familyNames))
	for i, n := range familyNames {
		result[i] = loadedStudent(n)
	}
	return result
}

func familyNames(students []*Student) []string {
	result := make([]string, len(students))
	for i, s := range students {
		result[i] = s.GetFamilyName()
	}
	return result
}

func grade(v string) *grades.Value {
	return pointer.To(grades.Value(v))
}
