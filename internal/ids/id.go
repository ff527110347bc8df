package ids

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// OID is the in-memory object identifier. It is the only part of an ID that
// takes part in equality and ordering.
type OID uint64

// ID pairs an object identifier with an optional persistence identifier.
// The persistence identifier is informational and is uuid.Nil until the
// entity has been stored by a workspace.
type ID struct {
	oid  OID
	dbid uuid.UUID
}

var Empty = ID{}

var generator atomic.Uint64

// Generate returns a fresh process-unique identifier.
func Generate() ID {
	return ID{
		oid: OID(generator.Add(1)),
	}
}

// FromDB generates a fresh object identifier for an entity that already has
// a persistence identifier.
func FromDB(dbid uuid.UUID) ID {
	id := Generate()
	id.dbid = dbid
	return id
}

func WithDBID(id ID, dbid uuid.UUID) ID {
	return ID{
		oid:  id.oid,
		dbid: dbid,
	}
}

func (i ID) OID() OID {
	return i.oid
}

func (i ID) DBID() (uuid.UUID, bool) {
	return i.dbid, i.dbid != uuid.Nil
}

func (i ID) IsEmpty() bool {
	return i.oid == 0
}

func (i ID) Equal(o ID) bool {
	return i.oid == o.oid
}

func (i ID) Less(o ID) bool {
	return i.oid < o.oid
}

func (i ID) String() string {
	if i.dbid == uuid.Nil {
		return fmt.Sprintf("%d:-", i.oid)
	}
	return fmt.Sprintf("%d:%s", i.oid, i.dbid)
}
