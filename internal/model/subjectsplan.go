package model

import (
	"fmt"

	"github.com/the127/attestate/internal/change"
	"github.com/the127/attestate/internal/collection"
	"github.com/the127/attestate/internal/diff"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/utils/modelError"
)

// PlanPatch maps subjects to the change of their position in a plan.
type PlanPatch = diff.Patch[*Subject, collection.Index]

// SubjectsPlan is a named, ordered list of subjects. The plan owns its
// subjects and can be shared by several classes.
type SubjectsPlan struct {
	BaseModel
	name       Field[string]
	subjects   *collection.UniqueCollection[*Subject, ids.OID]
	saved      map[ids.OID]collection.Index
	membership change.List[ids.OID]
}

func subjectKey(s *Subject) ids.OID {
	return s.GetId().OID()
}

func NewSubjectsPlan(id ids.ID) *SubjectsPlan {
	return &SubjectsPlan{
		BaseModel:  NewBaseModel(id),
		name:       newValueField(""),
		subjects:   collection.New(subjectKey),
		saved:      make(map[ids.OID]collection.Index),
		membership: change.NewList[ids.OID](nil),
	}
}

// NewSubjectsPlanFromDB loads a saved plan. Every subject must be Existing.
func NewSubjectsPlanFromDB(id ids.ID, name string, subjects []*Subject) (*SubjectsPlan, error) {
	for i, s := range subjects {
		if s == nil {
			return nil, fmt.Errorf("subject at %d is nil: %w", i, modelError.ErrInvalidState)
		}
		if state := s.GetState(); state != Existing {
			return nil, fmt.Errorf("subject %s is %s: %w", s.GetId(), state, modelError.ErrInvalidState)
		}
	}

	c, err := collection.NewFrom(subjectKey, subjects)
	if err != nil {
		return nil, fmt.Errorf("loading subjects plan %s: %w", id, err)
	}

	return &SubjectsPlan{
		BaseModel:  NewBaseModelFromDB(id),
		name:       loadValueField(name),
		subjects:   c,
		saved:      positions(subjects, subjectKey),
		membership: change.NewList(c.Keys()),
	}, nil
}

func (p *SubjectsPlan) GetName() string {
	return p.name.Get()
}

func (p *SubjectsPlan) SetName(name string) {
	p.name.Set(name)
}

func (p *SubjectsPlan) IsNameModified() bool {
	return p.name.IsModified()
}

// SameAs reports whether other is the same plan.
func (p *SubjectsPlan) SameAs(other *SubjectsPlan) bool {
	return other != nil && p.GetId().Equal(other.GetId())
}

func (p *SubjectsPlan) SubjectAt(at collection.Index) (*Subject, error) {
	return p.subjects.At(at)
}

func (p *SubjectsPlan) HasSubject(id ids.ID) bool {
	return p.subjects.Contains(id.OID())
}

func (p *SubjectsPlan) IndexOf(id ids.ID) (collection.Index, bool) {
	return p.subjects.IndexOf(id.OID())
}

func (p *SubjectsPlan) SubjectsCount() int {
	return p.subjects.Len()
}

func (p *SubjectsPlan) SubjectIds() []ids.ID {
	result := make([]ids.ID, 0, p.subjects.Len())
	for _, s := range p.subjects.Values() {
		result = append(result, s.GetId())
	}

	return result
}

func (p *SubjectsPlan) Subjects() []*Subject {
	return p.subjects.Values()
}

func (p *SubjectsPlan) Insert(s *Subject, at collection.Index) error {
	err := checkInsertable(s)
	if err != nil {
		return err
	}

	err = p.subjects.Insert(s, at)
	if err != nil {
		return err
	}

	p.membership.TrackAdded(subjectKey(s))
	return nil
}

func (p *SubjectsPlan) Append(s *Subject) error {
	return p.Insert(s, collection.Index(p.subjects.Len()))
}

func (p *SubjectsPlan) InsertMany(subjects map[collection.Index]*Subject) error {
	for _, s := range subjects {
		err := checkInsertable(s)
		if err != nil {
			return err
		}
	}

	err := p.subjects.InsertMany(subjects)
	if err != nil {
		return err
	}

	for _, s := range subjects {
		p.membership.TrackAdded(subjectKey(s))
	}

	return nil
}

func (p *SubjectsPlan) Erase(at collection.Index) (*Subject, error) {
	s, err := p.subjects.Remove(at)
	if err != nil {
		return nil, err
	}

	p.membership.TrackRemoved(subjectKey(s))
	return s, nil
}

// EraseMany removes the subjects at the given positions. The result is keyed
// by the position each subject had and can be passed back to InsertMany.
func (p *SubjectsPlan) EraseMany(at []collection.Index) (map[collection.Index]*Subject, error) {
	removed, err := p.subjects.RemoveMany(at)
	if err != nil {
		return nil, err
	}

	for _, s := range removed {
		p.membership.TrackRemoved(subjectKey(s))
	}

	return removed, nil
}

func (p *SubjectsPlan) Move(from collection.Index, to collection.Index) error {
	return p.subjects.Move(from, to)
}

// AreSubjectsModified reports whether subjects were added, removed or
// reordered since the last save, or whether any subject is not Existing.
func (p *SubjectsPlan) AreSubjectsModified() bool {
	if !p.hasBaseline || p.membership.HasChanges() {
		return true
	}

	order := diff.Compute(p.saved, positions(p.subjects.Values(), subjectKey))
	if !order.Empty() {
		return true
	}

	for _, s := range p.subjects.Values() {
		if s.GetState() != Existing {
			return true
		}
	}

	return false
}

func (p *SubjectsPlan) IsModified() bool {
	return p.GetState() == Modified
}

func (p *SubjectsPlan) GetState() State {
	return p.stateOf(p.IsNameModified() || p.AreSubjectsModified())
}

// Diff returns the patch that turns this plan's subject order into other's.
func (p *SubjectsPlan) Diff(other *SubjectsPlan) PlanPatch {
	return diff.Compute(p.subjectPositions(), other.subjectPositions())
}

// ApplyDiff reorders the subjects according to patch. The patch must apply
// cleanly and leave the positions contiguous from zero, otherwise the plan is
// left unchanged.
func (p *SubjectsPlan) ApplyDiff(patch PlanPatch) error {
	if _, ok := patch[nil]; ok {
		return fmt.Errorf("nil subject in patch: %w", modelError.ErrInvalidPatch)
	}

	current := p.subjectPositions()
	next := p.subjectPositions()
	err := diff.Apply(next, patch)
	if err != nil {
		return err
	}

	ordered := make([]*Subject, len(next))
	for s, at := range next {
		if int(at) >= len(ordered) || ordered[at] != nil {
			return fmt.Errorf("position %d of subject %s: %w", at, s.GetId(), modelError.ErrInvalidPatch)
		}
		if _, ok := current[s]; !ok && s.IsDeleted() {
			return fmt.Errorf("subject %s: %w", s.GetId(), modelError.ErrInsertDeleted)
		}
		ordered[at] = s
	}

	subjects, err := collection.NewFrom(subjectKey, ordered)
	if err != nil {
		return err
	}

	for s := range current {
		if _, ok := next[s]; !ok {
			p.membership.TrackRemoved(subjectKey(s))
		}
	}
	for s := range next {
		if _, ok := current[s]; !ok {
			p.membership.TrackAdded(subjectKey(s))
		}
	}

	p.subjects = subjects
	return nil
}

// Save saves every subject and makes the current state the baseline. No
// subject is saved if any of them is deleted.
func (p *SubjectsPlan) Save() error {
	err := p.CanSave()
	if err != nil {
		return err
	}

	subjects := p.subjects.Values()
	for _, s := range subjects {
		err := s.Save()
		if err != nil {
			return err
		}
	}

	p.name.Commit()
	p.saved = positions(subjects, subjectKey)
	p.membership.Reset(p.subjects.Keys())
	p.markSaved()
	return nil
}

// CanSave reports why Save would fail.
func (p *SubjectsPlan) CanSave() error {
	err := p.checkSavable("subjects plan")
	if err != nil {
		return err
	}

	for _, s := range p.subjects.Values() {
		err := s.CanSave()
		if err != nil {
			return err
		}
	}

	return nil
}

func (p *SubjectsPlan) subjectPositions() map[*Subject]collection.Index {
	return positions(p.subjects.Values(), func(s *Subject) *Subject { return s })
}

// ReversePlanDiff returns the patch undoing patch.
func ReversePlanDiff(patch PlanPatch) PlanPatch {
	return diff.Reverse(patch)
}

type lifecycleEntity interface {
	IsDeleted() bool
}

func checkInsertable[T interface {
	comparable
	lifecycleEntity
}](e T) error {
	var zero T
	if e == zero {
		return modelError.ErrNilEntity
	}
	if e.IsDeleted() {
		return modelError.ErrInsertDeleted
	}

	return nil
}
