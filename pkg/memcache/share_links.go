// pkg/memcache/share_links.go
package mem

import (
	"encoding/json"
	"sync"
	"time"

	"voyagemind/pkg/utils"
)

// ShareRecord is the payload stored behind a share link.
type ShareRecord struct {
	Itinerary   json.RawMessage `json:"itinerary"`
	Destination string          `json:"destination"`
	Dates       string          `json:"dates,omitempty"`
	Budget      json.RawMessage `json:"budget,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	ExpiresAt   time.Time       `json:"expiresAt"`
}

// ShareStore maps share IDs to itinerary payloads with a TTL. Expiry is
// enforced lazily on read.
type ShareStore interface {
	Put(id string, record ShareRecord, ttl time.Duration) error
	Get(id string) (ShareRecord, error)
}

type ShareLinks struct {
	mu   sync.RWMutex
	data map[string]ShareRecord
	now  func() time.Time
}

func NewShareLinks() *ShareLinks {
	return &ShareLinks{
		data: make(map[string]ShareRecord),
		now:  time.Now,
	}
}

func (s *ShareLinks) Put(id string, record ShareRecord, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.CreatedAt = s.now()
	record.ExpiresAt = record.CreatedAt.Add(ttl)
	s.data[id] = record
	return nil
}

func (s *ShareLinks) Get(id string) (ShareRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.data[id]
	if !ok {
		return ShareRecord{}, utils.ErrShareNotFound
	}
	if s.now().After(record.ExpiresAt) {
		delete(s.data, id) // cleanup expired
		return ShareRecord{}, utils.ErrShareExpired
	}
	return record, nil
}
