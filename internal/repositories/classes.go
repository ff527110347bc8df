package repositories

import (
	"context"
	"time"

	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/model"
	"github.com/the127/attestate/internal/utils/pointer"
)

type ClassFilter struct {
	id    *ids.ID
	label *string
}

func NewClassFilter() *ClassFilter {
	return &ClassFilter{}
}

func (f *ClassFilter) clone() *ClassFilter {
	cloned := *f
	return &cloned
}

func (f *ClassFilter) ById(id ids.ID) *ClassFilter {
	cloned := f.clone()
	cloned.id = &id
	return cloned
}

func (f *ClassFilter) HasId() bool {
	return f.id != nil
}

func (f *ClassFilter) GetId() ids.ID {
	return pointer.DerefOrZero(f.id)
}

func (f *ClassFilter) ByLabel(label string) *ClassFilter {
	cloned := f.clone()
	cloned.label = &label
	return cloned
}

func (f *ClassFilter) HasLabel() bool {
	return f.label != nil
}

func (f *ClassFilter) GetLabel() string {
	return pointer.DerefOrZero(f.label)
}

// ClassRepository gives access to the classes of a workspace. Insert, Update
// and Delete are recorded and only take effect on SaveChanges.
type ClassRepository interface {
	Single(ctx context.Context, filter *ClassFilter) (*model.Class, error)
	First(ctx context.Context, filter *ClassFilter) (*model.Class, error)
	List(ctx context.Context, filter *ClassFilter) ([]*model.Class, int, error)
	SavedAt(ctx context.Context, id ids.ID) (time.Time, error)
	Insert(class *model.Class)
	Update(class *model.Class)
	Delete(class *model.Class)
}
