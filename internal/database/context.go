package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/repositories"
)

const (
	ClassType int = iota
	SubjectsPlanType
)

// Context is a unit of work over the workspace. Repository writes are
// recorded and applied together by SaveChanges.
type Context interface {
	Classes() repositories.ClassRepository
	SubjectsPlans() repositories.SubjectsPlanRepository

	SaveChanges(ctx context.Context) error
}

// Entity is what the workspace needs from a stored document.
type Entity interface {
	GetId() ids.ID
	SetDBID(dbid uuid.UUID)
	IsDeleted() bool
	SetDeleted(deleted bool)
	CanSave() error
	Save() error
}
