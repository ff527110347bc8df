package inmemory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
	db "github.com/the127/attestate/internal/database"
	"github.com/the127/attestate/internal/repositories/inmemory"
	"github.com/the127/attestate/internal/services/clock"
	"github.com/the127/attestate/internal/utils/modelError"
)

type database struct {
	memDB *memdb.MemDB
	clock clock.Service
}

func NewInMemoryDatabase(clockService clock.Service) db.Database {
	return &database{
		clock: clockService,
	}
}

func (d *database) Migrate() error {
	if d.memDB != nil {
		return nil
	}

	memDb, err := memdb.NewMemDB(schema())
	if err != nil {
		return fmt.Errorf("failed to create in-memory database: %w", err)
	}

	d.memDB = memDb
	return nil
}

func (d *database) NewContext(_ context.Context) (db.Context, error) {
	if d.memDB == nil {
		return nil, fmt.Errorf("database is not migrated: %w", modelError.ErrInvalidState)
	}

	return newContext(d.memDB, d.clock), nil
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			inmemory.ClassesTable: {
				Name: inmemory.ClassesTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.UintFieldIndex{Field: "Oid"},
					},
					"dbid": {
						Name:         "dbid",
						Unique:       true,
						AllowMissing: true,
						Indexer: &UUIDValueIndexer{Getter: func(obj interface{}) uuid.UUID {
							return obj.(*inmemory.ClassRecord).Dbid
						}},
					},
					"label": {
						Name:         "label",
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "Label"},
					},
				},
			},
			inmemory.SubjectsPlansTable: {
				Name: inmemory.SubjectsPlansTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.UintFieldIndex{Field: "Oid"},
					},
					"dbid": {
						Name:         "dbid",
						Unique:       true,
						AllowMissing: true,
						Indexer: &UUIDValueIndexer{Getter: func(obj interface{}) uuid.UUID {
							return obj.(*inmemory.SubjectsPlanRecord).Dbid
						}},
					},
					"name": {
						Name:         "name",
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "Name"},
					},
				},
			},
		},
	}
}
