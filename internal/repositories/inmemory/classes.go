package inmemory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
	"github.com/the127/attestate/internal/change"
	"github.com/the127/attestate/internal/ids"
	"github.com/the127/attestate/internal/model"
	"github.com/the127/attestate/internal/repositories"
	"github.com/the127/attestate/internal/utils/modelError"
)

type ClassRepository struct {
	db            *memdb.MemDB
	changeTracker *change.Tracker
	entityType    int
}

func NewInMemoryClassRepository(db *memdb.MemDB, changeTracker *change.Tracker, entityType int) *ClassRepository {
	return &ClassRepository{
		db:            db,
		changeTracker: changeTracker,
		entityType:    entityType,
	}
}

func (r *ClassRepository) query(filter *repositories.ClassFilter) ([]*ClassRecord, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	var iterator memdb.ResultIterator
	var err error
	switch {
	case filter.HasId():
		iterator, err = txn.Get(ClassesTable, "id", uint64(filter.GetId().OID()))
	case filter.HasLabel():
		iterator, err = txn.Get(ClassesTable, "label", filter.GetLabel())
	default:
		iterator, err = txn.Get(ClassesTable, "id")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get classes: %w", err)
	}

	var result []*ClassRecord
	for obj := iterator.Next(); obj != nil; obj = iterator.Next() {
		record := obj.(*ClassRecord)
		if r.matches(record, filter) {
			result = append(result, record)
		}
	}

	return result, nil
}

func (r *ClassRepository) matches(record *ClassRecord, filter *repositories.ClassFilter) bool {
	if filter.HasId() {
		if record.Oid != uint64(filter.GetId().OID()) {
			return false
		}
	}

	if filter.HasLabel() {
		if record.Label != filter.GetLabel() {
			return false
		}
	}

	return true
}

func (r *ClassRepository) First(_ context.Context, filter *repositories.ClassFilter) (*model.Class, error) {
	records, err := r.query(filter)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, nil
	}

	return records[0].Class, nil
}

func (r *ClassRepository) Single(ctx context.Context, filter *repositories.ClassFilter) (*model.Class, error) {
	result, err := r.First(ctx, filter)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, modelError.ErrClassNotFound
	}
	return result, nil
}

func (r *ClassRepository) List(_ context.Context, filter *repositories.ClassFilter) ([]*model.Class, int, error) {
	records, err := r.query(filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*model.Class, len(records))
	for i, record := range records {
		result[i] = record.Class
	}

	return result, len(result), nil
}

func (r *ClassRepository) SavedAt(_ context.Context, id ids.ID) (time.Time, error) {
	records, err := r.query(repositories.NewClassFilter().ById(id))
	if err != nil {
		return time.Time{}, err
	}
	if len(records) == 0 {
		return time.Time{}, fmt.Errorf("class %s: %w", id, modelError.ErrClassNotFound)
	}

	return records[0].SavedAt, nil
}

func (r *ClassRepository) Insert(class *model.Class) {
	r.changeTracker.Add(change.NewEntry(change.Added, r.entityType, class))
}

func (r *ClassRepository) ExecuteInsert(tx *memdb.Txn, class *model.Class, dbid uuid.UUID, savedAt time.Time) error {
	err := tx.Insert(ClassesTable, newClassRecord(class, dbid, savedAt))
	if err != nil {
		return fmt.Errorf("failed to insert class: %w", err)
	}

	return nil
}

func (r *ClassRepository) Update(class *model.Class) {
	r.changeTracker.Add(change.NewEntry(change.Updated, r.entityType, class))
}

func (r *ClassRepository) ExecuteUpdate(tx *memdb.Txn, class *model.Class, dbid uuid.UUID, savedAt time.Time) error {
	existing, err := tx.First(ClassesTable, "id", uint64(class.GetId().OID()))
	if err != nil {
		return fmt.Errorf("failed to get class: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("class %s: %w", class.GetId(), modelError.ErrClassNotFound)
	}

	err = tx.Insert(ClassesTable, newClassRecord(class, dbid, savedAt))
	if err != nil {
		return fmt.Errorf("failed to update class: %w", err)
	}

	return nil
}

func (r *ClassRepository) Delete(class *model.Class) {
	r.changeTracker.Add(change.NewEntry(change.Deleted, r.entityType, class))
}

func (r *ClassRepository) ExecuteDelete(tx *memdb.Txn, class *model.Class) error {
	_, err := tx.DeleteAll(ClassesTable, "id", uint64(class.GetId().OID()))
	if err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}

	return nil
}
