package dataset

import (
	"errors"

	"github.com/jmehdipour/risk-scoring/internal/model"
)

var (
	// ErrNotFound : the corpus is loaded but has no record with that id.
	ErrNotFound = errors.New("customer not found")
	// ErrUnavailable : the corpus was never loaded. Both map to 404 on the
	// wire but stay distinguishable for diagnostics.
	ErrUnavailable = errors.New("dataset unavailable")
)

// Store is the read-only record corpus: loaded once at startup and shared
// by reference across request handlers. Nothing mutates it after
// construction, so concurrent readers need no locking.
type Store struct {
	records []model.CustomerRecord
	byID    map[string]int
}

// NewStore indexes the records by customer id, keeping dataset order.
// On duplicate ids the first occurrence wins.
func NewStore(records []model.CustomerRecord) *Store {
	byID := make(map[string]int, len(records))
	for i, r := range records {
		if _, dup := byID[r.CustomerID]; !dup {
			byID[r.CustomerID] = i
		}
	}
	return &Store{records: records, byID: byID}
}

func (s *Store) Len() int { return len(s.records) }

// Records returns the corpus in dataset order. Callers must not mutate it.
func (s *Store) Records() []model.CustomerRecord { return s.records }

// FindByID resolves an exact customer id match.
func (s *Store) FindByID(id string) (model.CustomerRecord, error) {
	i, ok := s.byID[id]
	if !ok {
		return model.CustomerRecord{}, ErrNotFound
	}
	return s.records[i], nil
}
