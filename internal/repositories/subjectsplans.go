package repositories

import (
	"context"
	"time"

	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/model"
	"github.com/the127/attestate/internal/utils/pointer"
)

type SubjectsPlanFilter struct {
	id   *ids.ID
	name *string
}

func NewSubjectsPlanFilter() *SubjectsPlanFilter {
	return &SubjectsPlanFilter{}
}

func (f *SubjectsPlanFilter) clone() *SubjectsPlanFilter {
	cloned := *f
	return &cloned
}

func (f *SubjectsPlanFilter) ById(id ids.ID) *SubjectsPlanFilter {
	cloned := f.clone()
	cloned.id = &id
	return cloned
}

func (f *SubjectsPlanFilter) HasId() bool {
	return f.id != nil
}

func (f *SubjectsPlanFilter) GetId() ids.ID {
	return pointer.DerefOrZero(f.id)
}

func (f *SubjectsPlanFilter) ByName(name string) *SubjectsPlanFilter {
	cloned := f.clone()
	cloned.name = &name
	return cloned
}

func (f *SubjectsPlanFilter) HasName() bool {
	return f.name != nil
}

func (f *SubjectsPlanFilter) GetName() string {
	return pointer.DerefOrZero(f.name)
}

type SubjectsPlanRepository interface {
	Single(ctx context.Context, filter *SubjectsPlanFilter) (*model.SubjectsPlan, error)
	First(ctx context.Context, filter *SubjectsPlanFilter) (*model.SubjectsPlan, error)
	List(ctx context.Context, filter *SubjectsPlanFilter) ([]*model.SubjectsPlan, int, error)
	SavedAt(ctx context.Context, id ids.ID) (time.Time, error)
	Insert(plan *model.SubjectsPlan)
	Update(plan *model.SubjectsPlan)
	Delete(plan *model.SubjectsPlan)
}
