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

type SubjectsPlanRepository struct {
	db            *memdb.MemDB
	changeTracker *change.Tracker
	entityType    int
}

func NewInMemorySubjectsPlanRepository(db *memdb.MemDB, changeTracker *change.Tracker, entityType int) *SubjectsPlanRepository {
	return &SubjectsPlanRepository{
		db:            db,
		changeTracker: changeTracker,
		entityType:    entityType,
	}
}

func (r *SubjectsPlanRepository) query(filter *repositories.SubjectsPlanFilter) ([]*SubjectsPlanRecord, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	var iterator memdb.ResultIterator
	var err error
	switch {
	case filter.HasId():
		iterator, err = txn.Get(SubjectsPlansTable, "id", uint64(filter.GetId().OID()))
	case filter.HasName():
		iterator, err = txn.Get(SubjectsPlansTable, "name", filter.GetName())
	default:
		iterator, err = txn.Get(SubjectsPlansTable, "id")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subjects plans: %w", err)
	}

	var result []*SubjectsPlanRecord
	for obj := iterator.Next(); obj != nil; obj = iterator.Next() {
		record := obj.(*SubjectsPlanRecord)
		if r.matches(record, filter) {
			result = append(result, record)
		}
	}

	return result, nil
}

func (r *SubjectsPlanRepository) matches(record *SubjectsPlanRecord, filter *repositories.SubjectsPlanFilter) bool {
	if filter.HasId() {
		if record.Oid != uint64(filter.GetId().OID()) {
			return false
		}
	}

	if filter.HasName() {
		if record.Name != filter.GetName() {
			return false
		}
	}

	return true
}

func (r *SubjectsPlanRepository) First(_ context.Context, filter *repositories.SubjectsPlanFilter) (*model.SubjectsPlan, error) {
	records, err := r.query(filter)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, nil
	}

	return records[0].Plan, nil
}

func (r *SubjectsPlanRepository) Single(ctx context.Context, filter *repositories.SubjectsPlanFilter) (*model.SubjectsPlan, error) {
	result, err := r.First(ctx, filter)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, modelError.ErrSubjectsPlanNotFound
	}
	return result, nil
}

func (r *SubjectsPlanRepository) List(_ context.Context, filter *repositories.SubjectsPlanFilter) ([]*model.SubjectsPlan, int, error) {
	records, err := r.query(filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*model.SubjectsPlan, len(records))
	for i, record := range records {
		result[i] = record.Plan
	}

	return result, len(result), nil
}

func (r *SubjectsPlanRepository) SavedAt(_ context.Context, id ids.ID) (time.Time, error) {
	records, err := r.query(repositories.NewSubjectsPlanFilter().ById(id))
	if err != nil {
		return time.Time{}, err
	}
	if len(records) == 0 {
		return time.Time{}, fmt.Errorf("subjects plan %s: %w", id, modelError.ErrSubjectsPlanNotFound)
	}

	return records[0].SavedAt, nil
}

func (r *SubjectsPlanRepository) Insert(plan *model.SubjectsPlan) {
	r.changeTracker.Add(change.NewEntry(change.Added, r.entityType, plan))
}

func (r *SubjectsPlanRepository) ExecuteInsert(tx *memdb.Txn, plan *model.SubjectsPlan, dbid uuid.UUID, savedAt time.Time) error {
	err := tx.Insert(SubjectsPlansTable, newSubjectsPlanRecord(plan, dbid, savedAt))
	if err != nil {
		return fmt.Errorf("failed to insert subjects plan: %w", err)
	}

	return nil
}

func (r *SubjectsPlanRepository) Update(plan *model.SubjectsPlan) {
	r.changeTracker.Add(change.NewEntry(change.Updated, r.entityType, plan))
}

func (r *SubjectsPlanRepository) ExecuteUpdate(tx *memdb.Txn, plan *model.SubjectsPlan, dbid uuid.UUID, savedAt time.Time) error {
	existing, err := tx.First(SubjectsPlansTable, "id", uint64(plan.GetId().OID()))
	if err != nil {
		return fmt.Errorf("failed to get subjects plan: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("subjects plan %s: %w", plan.GetId(), modelError.ErrSubjectsPlanNotFound)
	}

	err = tx.Insert(SubjectsPlansTable, newSubjectsPlanRecord(plan, dbid, savedAt))
	if err != nil {
		return fmt.Errorf("failed to update subjects plan: %w", err)
	}

	return nil
}

func (r *SubjectsPlanRepository) Delete(plan *model.SubjectsPlan) {
	r.changeTracker.Add(change.NewEntry(change.Deleted, r.entityType, plan))
}

func (r *SubjectsPlanRepository) ExecuteDelete(tx *memdb.Txn, plan *model.SubjectsPlan) error {
	_, err := tx.DeleteAll(SubjectsPlansTable, "id", uint64(plan.GetId().OID()))
	if err != nil {
		return fmt.Errorf("failed to delete subjects plan: %w", err)
	}

	return nil
}
