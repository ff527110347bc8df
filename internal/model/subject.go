package model

import (
	"github.com/the127/attestate/internal/ids"
)

// Subject is a school subject taught in a class.
type Subject struct {
	BaseModel
	name          Field[string]
	shortenedName Field[string]
}

func NewSubject(id ids.ID) *Subject {
	return &Subject{
		BaseModel:     NewBaseModel(id),
		name:          newValueField(""),
		shortenedName: newValueField(""),
	}
}

func NewSubjectFromDB(id ids.ID, name string, shortenedName string) *Subject {
	return &Subject{
		BaseModel:     NewBaseModelFromDB(id),
		name:          loadValueField(name),
		shortenedName: loadValueField(shortenedName),
	}
}

func (s *Subject) GetName() string {
	return s.name.Get()
}

func (s *Subject) SetName(name string) {
	s.name.Set(name)
}

func (s *Subject) IsNameModified() bool {
	return s.name.IsModified()
}

func (s *Subject) GetShortenedName() string {
	return s.shortenedName.Get()
}

func (s *Subject) SetShortenedName(shortenedName string) {
	s.shortenedName.Set(shortenedName)
}

func (s *Subject) IsShortenedNameModified() bool {
	return s.shortenedName.IsModified()
}

func (s *Subject) IsModified() bool {
	return s.GetState() == Modified
}

func (s *Subject) GetState() State {
	return s.stateOf(s.IsNameModified() || s.IsShortenedNameModified())
}

// CanSave reports why Save would fail.
func (s *Subject) CanSave() error {
	return s.checkSavable("subject")
}

func (s *Subject) Save() error {
	err := s.CanSave()
	if err != nil {
		return err
	}

	s.name.Commit()
	s.shortenedName.Commit()
	s.markSaved()
	return nil
}
