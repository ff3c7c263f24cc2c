package service

import (
	"sync"
	"time"

	"groomstation/internal/entities"
)

// DraftStore holds at most one staged selection per customer. Drafts expire
// after the configured TTL; an expired draft behaves as if never staged.
type DraftStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	drafts map[string]*entities.DraftSelection
	now    func() time.Time
}

func NewDraftStore(ttl time.Duration) *DraftStore {
	return &DraftStore{
		ttl:    ttl,
		drafts: make(map[string]*entities.DraftSelection),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Put stages a draft for the customer, replacing any prior one.
func (s *DraftStore) Put(customerID string, draft *entities.DraftSelection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft.StagedAt = s.now()
	s.drafts[customerID] = draft
}

// Get returns the customer's staged draft, discarding it if expired.
func (s *DraftStore) Get(customerID string) (*entities.DraftSelection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[customerID]
	if !ok {
		return nil, false
	}
	if s.expired(draft) {
		delete(s.drafts, customerID)
		return nil, false
	}
	return draft, true
}

func (s *DraftStore) Clear(customerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, customerID)
}

// PurgeExpired drops all expired drafts and reports how many were removed.
func (s *DraftStore) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	purged := 0
	for customerID, draft := range s.drafts {
		if s.expired(draft) {
			delete(s.drafts, customerID)
			purged++
		}
	}
	return purged
}

func (s *DraftStore) expired(draft *entities.DraftSelection) bool {
	if s.ttl <= 0 {
		return false
	}
	return s.now().Sub(draft.StagedAt) > s.ttl
}
