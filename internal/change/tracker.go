package change

type Type int

const (
	Added Type = iota
	Updated
	Deleted
)

func (t Type) String() string {
	switch t {
	case Added:
		return "added"
	case Updated:
		return "updated"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

type Entry struct {
	changeType Type
	itemType   int
	item       any
}

func NewEntry(changeType Type, itemType int, item any) *Entry {
	return &Entry{
		changeType: changeType,
		itemType:   itemType,
		item:       item,
	}
}

func (e *Entry) GetChangeType() Type {
	return e.changeType
}

func (e *Entry) GetItemType() int {
	return e.itemType
}

func (e *Entry) GetItem() any {
	return e.item
}

// Tracker is the list of pending workspace operations, in the order they were
// requested.
type Tracker struct {
	entries []*Entry
}

func NewTracker() *Tracker {
	return &Tracker{
		entries: []*Entry{},
	}
}

func (t *Tracker) Add(entry *Entry) {
	t.entries = append(t.entries, entry)
}

func (t *Tracker) GetChanges() []*Entry {
	return t.entries
}

func (t *Tracker) HasChanges() bool {
	return len(t.entries) > 0
}

func (t *Tracker) Clear() {
	t.entries = []*Entry{}
}
