package inmemory

import (
	"time"

	"github.com/google/uuid"
	"github.com/the127/attestate/internal/model"
)

const (
	ClassesTable       = "classes"
	SubjectsPlansTable = "subjects_plans"
)

// ClassRecord is the workspace entry of a saved class.
type ClassRecord struct {
	Oid     uint64
	Dbid    uuid.UUID
	Label   string
	SavedAt time.Time
	Class   *model.Class
}

func newClassRecord(class *model.Class, dbid uuid.UUID, savedAt time.Time) *ClassRecord {
	return &ClassRecord{
		Oid:     uint64(class.GetId().OID()),
		Dbid:    dbid,
		Label:   class.GetClassId(),
		SavedAt: savedAt,
		Class:   class,
	}
}

type SubjectsPlanRecord struct {
	Oid     uint64
	Dbid    uuid.UUID
	Name    string
	SavedAt time.Time
	Plan    *model.SubjectsPlan
}

func newSubjectsPlanRecord(plan *model.SubjectsPlan, dbid uuid.UUID, savedAt time.Time) *SubjectsPlanRecord {
	return &SubjectsPlanRecord{
		Oid:     uint64(plan.GetId().OID()),
		Dbid:    dbid,
		Name:    plan.GetName(),
		SavedAt: savedAt,
		Plan:    plan,
	}
}
