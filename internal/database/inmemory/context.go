package inmemory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
	"github.com/the127/attestate/internal/change"
	db "github.com/the127/attestate/internal/database"
	"github.com/the127/attestate/internal/logging"
	"github.com/the127/attestate/internal/model"
	"github.com/the127/attestate/internal/repositories"
	"github.com/the127/attestate/internal/repositories/inmemory"
	"github.com/the127/attestate/internal/services/clock"
	"github.com/the127/attestate/internal/utils/modelError"
)

type Context struct {
	db            *memdb.MemDB
	clock         clock.Service
	changeTracker *change.Tracker

	classes       *inmemory.ClassRepository
	subjectsPlans *inmemory.SubjectsPlanRepository
}

// pendingEntity is where the batch leaves an entity once its entries so far
// are applied.
type pendingEntity struct {
	stored  bool
	deleted bool
	dbid    uuid.UUID
}

func newContext(db *memdb.MemDB, clockService clock.Service) *Context {
	return &Context{
		db:            db,
		clock:         clockService,
		changeTracker: change.NewTracker(),
	}
}

func (c *Context) Classes() repositories.ClassRepository {
	if c.classes == nil {
		c.classes = inmemory.NewInMemoryClassRepository(c.db, c.changeTracker, db.ClassType)
	}
	return c.classes
}

func (c *Context) SubjectsPlans() repositories.SubjectsPlanRepository {
	if c.subjectsPlans == nil {
		c.subjectsPlans = inmemory.NewInMemorySubjectsPlanRepository(c.db, c.changeTracker, db.SubjectsPlanType)
	}
	return c.subjectsPlans
}

// SaveChanges checks the whole batch first and applies nothing if any entry
// cannot be applied. Entities are only marked saved or deleted once the
// workspace records are committed.
func (c *Context) SaveChanges(ctx context.Context) error {
	changes := c.changeTracker.GetChanges()
	pending, err := c.checkChanges(ctx, changes)
	if err != nil {
		return fmt.Errorf("failed to check change: %w", err)
	}

	tx := c.db.Txn(true)
	defer tx.Abort()

	savedAt := c.clock.Now()
	for _, changeEntry := range changes {
		dbid := pending[changeEntry.GetItem().(db.Entity)].dbid
		err := c.applyChange(tx, changeEntry, dbid, savedAt)
		if err != nil {
			return fmt.Errorf("failed to apply change: %w", err)
		}
	}

	tx.Commit()
	c.changeTracker.Clear()

	for _, changeEntry := range changes {
		entity := changeEntry.GetItem().(db.Entity)
		err := commitEntity(entity, changeEntry.GetChangeType(), pending[entity].dbid)
		if err != nil {
			return err
		}
	}

	logging.Logger.Debugf("saved %d changes", len(changes))
	return nil
}

// checkChanges replays the batch against the stored records without touching
// them or the entities.
func (c *Context) checkChanges(ctx context.Context, changes []*change.Entry) (map[db.Entity]*pendingEntity, error) {
	pending := make(map[db.Entity]*pendingEntity)
	for _, changeEntry := range changes {
		entity, ok := changeEntry.GetItem().(db.Entity)
		if !ok {
			return nil, fmt.Errorf("unsupported item type: %T", changeEntry.GetItem())
		}

		state, ok := pending[entity]
		if !ok {
			stored, err := c.isStored(ctx, changeEntry.GetItemType(), entity)
			if err != nil {
				return nil, err
			}

			dbid, hasDbid := entity.GetId().DBID()
			if !hasDbid {
				dbid = uuid.New()
			}

			state = &pendingEntity{
				stored:  stored,
				deleted: entity.IsDeleted(),
				dbid:    dbid,
			}
			pending[entity] = state
		}

		changeType := changeEntry.GetChangeType()
		switch changeType {
		case change.Deleted:
			state.stored = false
			state.deleted = true
			continue

		case change.Added, change.Updated:

		default:
			return nil, fmt.Errorf("unsupported change type: %s", changeType)
		}

		if state.deleted {
			return nil, fmt.Errorf("%s: %w", entity.GetId(), modelError.ErrSaveDeleted)
		}
		if changeType == change.Added && state.stored {
			return nil, fmt.Errorf("%s is already stored: %w", entity.GetId(), modelError.ErrDuplicateKey)
		}
		if changeType == change.Updated && !state.stored {
			return nil, notStored(changeEntry.GetItemType(), entity)
		}

		err := entity.CanSave()
		if err != nil {
			return nil, err
		}
		state.stored = true
	}

	return pending, nil
}

func (c *Context) isStored(ctx context.Context, itemType int, entity db.Entity) (bool, error) {
	switch itemType {
	case db.ClassType:
		class, err := c.Classes().First(ctx, repositories.NewClassFilter().ById(entity.GetId()))
		return class != nil, err

	case db.SubjectsPlanType:
		plan, err := c.SubjectsPlans().First(ctx, repositories.NewSubjectsPlanFilter().ById(entity.GetId()))
		return plan != nil, err

	default:
		return false, fmt.Errorf("unsupported item type: %d", itemType)
	}
}

func notStored(itemType int, entity db.Entity) error {
	switch itemType {
	case db.ClassType:
		return fmt.Errorf("class %s: %w", entity.GetId(), modelError.ErrClassNotFound)
	case db.SubjectsPlanType:
		return fmt.Errorf("subjects plan %s: %w", entity.GetId(), modelError.ErrSubjectsPlanNotFound)
	default:
		return fmt.Errorf("%s: %w", entity.GetId(), modelError.ErrNotFound)
	}
}

func (c *Context) applyChange(tx *memdb.Txn, entry *change.Entry, dbid uuid.UUID, savedAt time.Time) error {
	switch entry.GetItemType() {
	case db.ClassType:
		return c.applyClassChange(tx, entry, dbid, savedAt)

	case db.SubjectsPlanType:
		return c.applySubjectsPlanChange(tx, entry, dbid, savedAt)

	default:
		return fmt.Errorf("unsupported item type: %d", entry.GetItemType())
	}
}

func (c *Context) applyClassChange(tx *memdb.Txn, entry *change.Entry, dbid uuid.UUID, savedAt time.Time) error {
	class := entry.GetItem().(*model.Class)

	switch entry.GetChangeType() {
	case change.Added:
		return c.classes.ExecuteInsert(tx, class, dbid, savedAt)

	case change.Updated:
		return c.classes.ExecuteUpdate(tx, class, dbid, savedAt)

	case change.Deleted:
		return c.classes.ExecuteDelete(tx, class)

	default:
		return fmt.Errorf("unsupported change type: %s", entry.GetChangeType())
	}
}

func (c *Context) applySubjectsPlanChange(tx *memdb.Txn, entry *change.Entry, dbid uuid.UUID, savedAt time.Time) error {
	plan := entry.GetItem().(*model.SubjectsPlan)

	switch entry.GetChangeType() {
	case change.Added:
		return c.subjectsPlans.ExecuteInsert(tx, plan, dbid, savedAt)

	case change.Updated:
		return c.subjectsPlans.ExecuteUpdate(tx, plan, dbid, savedAt)

	case change.Deleted:
		return c.subjectsPlans.ExecuteDelete(tx, plan)

	default:
		return fmt.Errorf("unsupported change type: %s", entry.GetChangeType())
	}
}

// commitEntity brings a stored entity in line with its committed record.
func commitEntity(entity db.Entity, changeType change.Type, dbid uuid.UUID) error {
	if changeType == change.Deleted {
		entity.SetDeleted(true)
		return nil
	}

	if _, ok := entity.GetId().DBID(); !ok {
		entity.SetDBID(dbid)
	}

	err := entity.Save()
	if err != nil {
		return fmt.Errorf("saving %s: %w", entity.GetId(), err)
	}

	return nil
}
