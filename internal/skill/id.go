package skill

// ID identifies a top-level screen of the app
type ID int

// New IDs go before IDCount and need an entry in names and in every
// handler table.
const (
	Experience ID = iota
	Share
	IDCount
)

var names = [...]string{
	Experience: "experience",
	Share:      "share",
}

// Fails to compile when names and the ID list drift apart
var _ = [1]struct{}{}[len(names)-int(IDCount)]

func (id ID) String() string {
	if !id.Valid() {
		return "unknown"
	}
	return names[id]
}

// Valid reports whether id is a known skill
func (id ID) Valid() bool {
	return id >= 0 && id < IDCount
}

// FromID parses a skill identifier
func FromID(s string) (ID, bool) {
	for i, name := range names {
		if name == s {
			return ID(i), true
		}
	}
	return 0, false
}

// All returns every skill in declaration order
func All() []ID {
	ids := make([]ID, 0, IDCount)
	for id := ID(0); id < IDCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Registry maps every skill to a handler. Handler tables are declared as
// [...]H keyed by ID, so a table missing the last ID has the wrong
// length and NewRegistry rejects it at compile time.
type Registry[H any] struct {
	handlers [IDCount]H
}

// NewRegistry creates a registry from a complete handler table
func NewRegistry[H any](handlers [IDCount]H) *Registry[H] {
	return &Registry[H]{handlers: handlers}
}

// Lookup returns the handler for id
func (r *Registry[H]) Lookup(id ID) (H, bool) {
	if !id.Valid() {
		var zero H
		return zero, false
	}
	return r.handlers[id], true
}
