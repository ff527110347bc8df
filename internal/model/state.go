package model

// State is the lifecycle state of an entity. It is computed from the entity
// data on every call and never stored.
type State int

const (
	// New entities have never been saved.
	New State = iota
	// Existing entities are equal to their last saved baseline.
	Existing
	// Modified entities differ from their last saved baseline.
	Modified
	// Deleted entities are marked for removal.
	Deleted
)

func (s State) String() string {
	switch s {
	case New:
		return "new"
	case Existing:
		return "existing"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}
