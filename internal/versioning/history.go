package versioning

import (
	"slices"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/google/uuid"
)

// Version is an immutable snapshot of a record's fields at one point in
// its edit history. Numbers start at 1 and grow by one per commit.
type Version struct {
	ID        string         `json:"id"`
	Number    int            `json:"version"`
	Author    string         `json:"author,omitempty"`
	Note      string         `json:"note,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	Snapshot  content.Record `json:"snapshot"`
}

type historyKey struct {
	kind content.Kind
	id   string
}

// History keeps the ordered versions of every record in memory.
type History struct {
	mu       sync.RWMutex
	versions map[historyKey][]Version
}

func NewHistory() *History {
	return &History{versions: make(map[historyKey][]Version)}
}

func (h *History) Append(snapshot content.Record, author, note string, at time.Time) Version {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := historyKey{kind: snapshot.Kind, id: snapshot.ID}
	v := Version{
		ID:        uuid.NewString(),
		Number:    len(h.versions[key]) + 1,
		Author:    author,
		Note:      note,
		CreatedAt: at,
		Snapshot:  snapshot.Clone(),
	}
	h.versions[key] = append(h.versions[key], v)
	return v
}

// List returns the versions of a record, oldest first
func (h *History) List(kind content.Kind, id string) []Version {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Clone(h.versions[historyKey{kind: kind, id: id}])
}

func (h *History) Get(kind content.Kind, id string, number int) (Version, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	versions := h.versions[historyKey{kind: kind, id: id}]
	if number < 1 || number > len(versions) {
		return Version{}, false
	}
	v := versions[number-1]
	v.Snapshot = v.Snapshot.Clone()
	return v, true
}

func (h *History) Latest(kind content.Kind, id string) (Version, bool) {
	h.mu.RLock()
	n := len(h.versions[historyKey{kind: kind, id: id}])
	h.mu.RUnlock()

	return h.Get(kind, id, n)
}
