package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/utils/modelError"
)

// BaseModel holds the identity and lifecycle flags shared by all entities.
type BaseModel struct {
	id          ids.ID
	hasBaseline bool
	isDeleted   bool
}

func NewBaseModel(id ids.ID) BaseModel {
	return BaseModel{
		id: id,
	}
}

func NewBaseModelFromDB(id ids.ID) BaseModel {
	return BaseModel{
		id:          id,
		hasBaseline: true,
	}
}

func (b *BaseModel) GetId() ids.ID {
	return b.id
}

// SetDBID records the persistence identifier once the entity is stored.
func (b *BaseModel) SetDBID(dbid uuid.UUID) {
	b.id = ids.WithDBID(b.id, dbid)
}

func (b *BaseModel) IsDeleted() bool {
	return b.isDeleted
}

func (b *BaseModel) SetDeleted(isDeleted bool) {
	b.isDeleted = isDeleted
}

func (b *BaseModel) stateOf(modified bool) State {
	switch {
	case b.isDeleted:
		return Deleted
	case !b.hasBaseline:
		return New
	case modified:
		return Modified
	default:
		return Existing
	}
}

func (b *BaseModel) checkSavable(kind string) error {
	if b.isDeleted {
		return fmt.Errorf("%s %s: %w", kind, b.id, modelError.ErrSaveDeleted)
	}

	return nil
}

func (b *BaseModel) markSaved() {
	b.hasBaseline = true
}
