package model

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/the127/attestate/internal/change"
	"github.com/the127/attestate/internal/collection"
	"github.com/the127/attestate/internal/diff"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/utils/modelError"
	"github.com/the127/attestate/internal/utils/pointer"
)

// ClassData carries the saved values of a class.
type ClassData struct {
	ClassId        string
	GraduationYear *Year
	IssueDate      *civil.Date
}

// Class is an ordered roster of students graded against a subjects plan.
// The class owns its students but only references its plan.
type Class struct {
	BaseModel
	classId        Field[string]
	graduationYear Field[*Year]
	issueDate      Field[*civil.Date]
	subjectsPlan   *SubjectsPlan
	subjectsPlanId Field[ids.ID]
	students       *collection.UniqueCollection[*Student, ids.OID]
	saved          map[ids.OID]collection.Index
	membership     change.List[ids.OID]
}

func studentKey(s *Student) ids.OID {
	return s.GetId().OID()
}

func planId(p *SubjectsPlan) ids.ID {
	if p == nil {
		return ids.Empty
	}

	return p.GetId()
}

func NewClass(id ids.ID) *Class {
	return &Class{
		BaseModel:      NewBaseModel(id),
		classId:        newValueField(""),
		graduationYear: newPointerField[Year](nil),
		issueDate:      newPointerField[civil.Date](nil),
		subjectsPlanId: NewField(ids.Empty, equalIds),
		students:       collection.New(studentKey),
		saved:          make(map[ids.OID]collection.Index),
		membership:     change.NewList[ids.OID](nil),
	}
}

// NewClassFromDB loads a saved class. Every student must be Existing; plan
// may be nil.
func NewClassFromDB(id ids.ID, data ClassData, students []*Student, plan *SubjectsPlan) (*Class, error) {
	for i, s := range students {
		if s == nil {
			return nil, fmt.Errorf("student at %d is nil: %w", i, modelError.ErrInvalidState)
		}
		if state := s.GetState(); state != Existing {
			return nil, fmt.Errorf("student %s is %s: %w", s.GetId(), state, modelError.ErrInvalidState)
		}
	}

	c, err := collection.NewFrom(studentKey, students)
	if err != nil {
		return nil, fmt.Errorf("loading class %s: %w", id, err)
	}

	return &Class{
		BaseModel:      NewBaseModelFromDB(id),
		classId:        loadValueField(data.ClassId),
		graduationYear: loadPointerField(data.GraduationYear),
		issueDate:      loadPointerField(data.IssueDate),
		subjectsPlan:   plan,
		subjectsPlanId: LoadField(planId(plan), equalIds),
		students:       c,
		saved:          positions(students, studentKey),
		membership:     change.NewList(c.Keys()),
	}, nil
}

func (c *Class) GetClassId() string {
	return c.classId.Get()
}

func (c *Class) SetClassId(classId string) {
	c.classId.Set(classId)
}

func (c *Class) IsClassIdModified() bool {
	return c.classId.IsModified()
}

func (c *Class) GetGraduationYear() *Year {
	return pointer.Clone(c.graduationYear.Get())
}

func (c *Class) SetGraduationYear(graduationYear *Year) {
	c.graduationYear.Set(pointer.Clone(graduationYear))
}

func (c *Class) IsGraduationYearModified() bool {
	return c.graduationYear.IsModified()
}

func (c *Class) GetIssueDate() *civil.Date {
	return pointer.Clone(c.issueDate.Get())
}

func (c *Class) SetIssueDate(issueDate *civil.Date) {
	c.issueDate.Set(pointer.Clone(issueDate))
}

func (c *Class) IsIssueDateModified() bool {
	return c.issueDate.IsModified()
}

func (c *Class) GetSubjectsPlan() *SubjectsPlan {
	return c.subjectsPlan
}

// SetSubjectsPlan replaces the referenced plan. Only the plan identity is
// tracked, edits inside the plan do not modify the class.
func (c *Class) SetSubjectsPlan(plan *SubjectsPlan) {
	c.subjectsPlan = plan
	c.subjectsPlanId.Set(planId(plan))
}

func (c *Class) IsSubjectsPlanModified() bool {
	return c.subjectsPlanId.IsModified()
}

func (c *Class) StudentAt(at collection.Index) (*Student, error) {
	return c.students.At(at)
}

func (c *Class) Students() []*Student {
	return c.students.Values()
}

func (c *Class) StudentsCount() int {
	return c.students.Len()
}

func (c *Class) IndexOf(id ids.ID) (collection.Index, bool) {
	return c.students.IndexOf(id.OID())
}

func (c *Class) Insert(s *Student, at collection.Index) error {
	err := checkInsertable(s)
	if err != nil {
		return err
	}

	err = c.students.Insert(s, at)
	if err != nil {
		return err
	}

	c.membership.TrackAdded(studentKey(s))
	return nil
}

func (c *Class) Append(s *Student) error {
	return c.Insert(s, collection.Index(c.students.Len()))
}

// InsertMany inserts a batch of students. Indices follow the rules of
// collection.UniqueCollection.InsertMany.
func (c *Class) InsertMany(students map[collection.Index]*Student) error {
	for _, s := range students {
		err := checkInsertable(s)
		if err != nil {
			return err
		}
	}

	err := c.students.InsertMany(students)
	if err != nil {
		return err
	}

	for _, s := range students {
		c.membership.TrackAdded(studentKey(s))
	}

	return nil
}

func (c *Class) Erase(at collection.Index) (*Student, error) {
	s, err := c.students.Remove(at)
	if err != nil {
		return nil, err
	}

	c.membership.TrackRemoved(studentKey(s))
	return s, nil
}

func (c *Class) EraseMany(at []collection.Index) (map[collection.Index]*Student, error) {
	removed, err := c.students.RemoveMany(at)
	if err != nil {
		return nil, err
	}

	for _, s := range removed {
		c.membership.TrackRemoved(studentKey(s))
	}

	return removed, nil
}

func (c *Class) Move(from collection.Index, to collection.Index) error {
	return c.students.Move(from, to)
}

// AreStudentsModified reports whether students were added, removed or
// reordered since the last save, or whether any student is not Existing.
func (c *Class) AreStudentsModified() bool {
	if !c.hasBaseline || c.membership.HasChanges() {
		return true
	}

	order := diff.Compute(c.saved, positions(c.students.Values(), studentKey))
	if !order.Empty() {
		return true
	}

	for _, s := range c.students.Values() {
		if s.GetState() != Existing {
			return true
		}
	}

	return false
}

func (c *Class) IsModified() bool {
	return c.GetState() == Modified
}

func (c *Class) GetState() State {
	return c.stateOf(c.IsClassIdModified() ||
		c.IsGraduationYearModified() ||
		c.IsIssueDateModified() ||
		c.IsSubjectsPlanModified() ||
		c.AreStudentsModified())
}

// Save saves every student and makes the current state the baseline. The
// referenced plan is saved separately. No student is saved if any of them
// is deleted.
func (c *Class) Save() error {
	err := c.CanSave()
	if err != nil {
		return err
	}

	students := c.students.Values()
	for _, s := range students {
		err := s.Save()
		if err != nil {
			return err
		}
	}

	c.classId.Commit()
	c.graduationYear.Commit()
	c.issueDate.Commit()
	c.subjectsPlanId.Commit()
	c.saved = positions(students, studentKey)
	c.membership.Reset(c.students.Keys())
	c.markSaved()
	return nil
}

// CanSave reports why Save would fail.
func (c *Class) CanSave() error {
	err := c.checkSavable("class")
	if err != nil {
		return err
	}

	for _, s := range c.students.Values() {
		err := s.CanSave()
		if err != nil {
			return err
		}
	}

	return nil
}
