package ids

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type IdTestSuite struct {
	suite.Suite
}

func TestIdTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(IdTestSuite))
}

func (s *IdTestSuite) TestGenerateIsUnique() {
	// arrange
	seen := make(map[OID]struct{})

	// act
	for i := 0; i < 1000; i++ {
		id := Generate()
		_, ok := seen[id.OID()]

		// assert
		s.False(ok)
		seen[id.OID()] = struct{}{}
	}
}

func (s *IdTestSuite) TestGenerateIsMonotonic() {
	// arrange
	first := Generate()

	// act
	second := Generate()

	// assert
	s.True(first.Less(second))
	s.False(second.Less(first))
}

func (s *IdTestSuite) TestEqualityIgnoresDBID() {
	// arrange
	id := Generate()
	dbid := uuid.New()

	// act
	stored := WithDBID(id, dbid)

	// assert
	s.True(stored.Equal(id))
	s.Equal(id.OID(), stored.OID())
	actual, ok := stored.DBID()
	s.True(ok)
	s.Equal(dbid, actual)
	_, ok = id.DBID()
	s.False(ok)
}

func (s *IdTestSuite) TestFromDB() {
	// arrange
	dbid := uuid.New()

	// act
	id := FromDB(dbid)

	// assert
	s.False(id.IsEmpty())
	actual, ok := id.DBID()
	s.True(ok)
	s.Equal(dbid, actual)
}

func (s *IdTestSuite) TestEmpty() {
	s.True(Empty.IsEmpty())
	s.False(Generate().IsEmpty())
}
