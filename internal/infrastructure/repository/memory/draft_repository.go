package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/nba-draft-hub/internal/domain/draft"
)

type DraftOrderRepository struct {
	mu    sync.RWMutex
	slots []draft.Slot
}

func NewDraftOrderRepository(slots []draft.Slot) *DraftOrderRepository {
	return &DraftOrderRepository{slots: append([]draft.Slot(nil), slots...)}
}

func (r *DraftOrderRepository) ListOrder(_ context.Context) ([]draft.Slot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]draft.Slot(nil), r.slots...), nil
}

const (
	DefaultMockDraftTTL         = 6 * time.Hour
	DefaultMockDraftMaxSessions = 1000
)

type mockDraftEntry struct {
	draft     draft.MockDraft
	touchedAt time.Time
}

// MockDraftRepository keeps sessions in memory. A session expires ttl after
// its last read or write; once maxSessions is reached the least recently
// touched session is evicted to make room.
type MockDraftRepository struct {
	mu          sync.Mutex
	items       map[string]mockDraftEntry
	ttl         time.Duration
	maxSessions int
	now         func() time.Time
}

// NewMockDraftRepository falls back to the package defaults for non-positive
// ttl or maxSessions.
func NewMockDraftRepository(ttl time.Duration, maxSessions int) *MockDraftRepository {
	if ttl <= 0 {
		ttl = DefaultMockDraftTTL
	}
	if maxSessions <= 0 {
		maxSessions = DefaultMockDraftMaxSessions
	}
	return &MockDraftRepository{
		items:       make(map[string]mockDraftEntry),
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

func (r *MockDraftRepository) Create(_ context.Context, d draft.MockDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evictExpiredLocked(now)
	if _, exists := r.items[d.ID]; exists {
		return fmt.Errorf("mock draft %s already exists", d.ID)
	}
	for len(r.items) >= r.maxSessions {
		r.evictOldestLocked()
	}
	r.items[d.ID] = mockDraftEntry{draft: d.Clone(), touchedAt: now}
	return nil
}

func (r *MockDraftRepository) Get(_ context.Context, id string) (draft.MockDraft, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.liveLocked(id, r.now())
	if !ok {
		return draft.MockDraft{}, false, nil
	}
	return item.Clone(), true, nil
}

func (r *MockDraftRepository) Update(_ context.Context, id string, fn func(d *draft.MockDraft) error) (draft.MockDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	item, ok := r.liveLocked(id, now)
	if !ok {
		return draft.MockDraft{}, fmt.Errorf("%w: %s", draft.ErrMockDraftNotFound, id)
	}

	working := item.Clone()
	if err := fn(&working); err != nil {
		return draft.MockDraft{}, err
	}
	r.items[id] = mockDraftEntry{draft: working.Clone(), touchedAt: now}

	return working, nil
}

func (r *MockDraftRepository) liveLocked(id string, now time.Time) (draft.MockDraft, bool) {
	entry, ok := r.items[id]
	if !ok {
		return draft.MockDraft{}, false
	}
	if r.expired(entry, now) {
		delete(r.items, id)
		return draft.MockDraft{}, false
	}
	entry.touchedAt = now
	r.items[id] = entry
	return entry.draft, true
}

func (r *MockDraftRepository) expired(entry mockDraftEntry, now time.Time) bool {
	return !entry.touchedAt.Add(r.ttl).After(now)
}

func (r *MockDraftRepository) evictExpiredLocked(now time.Time) {
	for id, entry := range r.items {
		if r.expired(entry, now) {
			delete(r.items, id)
		}
	}
}

func (r *MockDraftRepository) evictOldestLocked() {
	var (
		oldestID string
		oldestAt time.Time
	)
	for id, entry := range r.items {
		if oldestID == "" || entry.touchedAt.Before(oldestAt) {
			oldestID, oldestAt = id, entry.touchedAt
		}
	}
	delete(r.items, oldestID)
}
