package memory

import (
	"context"
	"sync"
	"time"

	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/storage"
)

// InMemoryOperatorStore keeps operator state for the lifetime of the process only.
// Processed-event markers expire after processedTTL and are pruned as new ones arrive.
type InMemoryOperatorStore struct {
	mu           sync.RWMutex
	closed       bool
	cursors      map[string]uint64
	processedTTL time.Duration
	lastPrune    time.Time
	now          func() time.Time

	// processedEvents maps an event key to its expiry. A zero expiry never expires.
	processedEvents map[string]time.Time
}

func NewInMemoryOperatorStore() *InMemoryOperatorStore {
	return NewInMemoryOperatorStoreWithTTL(storage.DefaultProcessedEventTTL)
}

// NewInMemoryOperatorStoreWithTTL keeps processed-event markers for ttl. Zero keeps them forever.
func NewInMemoryOperatorStoreWithTTL(ttl time.Duration) *InMemoryOperatorStore {
	return newInMemoryOperatorStore(ttl, time.Now)
}

func newInMemoryOperatorStore(ttl time.Duration, now func() time.Time) *InMemoryOperatorStore {
	return &InMemoryOperatorStore{
		cursors:         make(map[string]uint64),
		processedEvents: make(map[string]time.Time),
		processedTTL:    ttl,
		lastPrune:       now(),
		now:             now,
	}
}

func (s *InMemoryOperatorStore) GetCursor(ctx context.Context, contractAddress string) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, storage.ErrStoreClosed
	}
	key := storage.NormalizeContractAddress(contractAddress)
	if key == "" {
		return 0, storage.ErrInvalidKey
	}

	cursor, exists := s.cursors[key]
	if !exists {
		return 0, storage.ErrNotFound
	}
	return cursor, nil
}

func (s *InMemoryOperatorStore) SaveCursor(ctx context.Context, contractAddress string, blockNumber uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStoreClosed
	}
	key := storage.NormalizeContractAddress(contractAddress)
	if key == "" {
		return storage.ErrInvalidKey
	}

	s.cursors[key] = blockNumber
	return nil
}

func (s *InMemoryOperatorStore) MarkEventProcessed(ctx context.Context, eventKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStoreClosed
	}
	if eventKey == "" {
		return storage.ErrInvalidKey
	}

	now := s.now()
	var expiresAt time.Time
	if s.processedTTL > 0 {
		expiresAt = now.Add(s.processedTTL)
		if now.Sub(s.lastPrune) >= s.processedTTL {
			s.pruneExpired(now)
		}
	}
	s.processedEvents[eventKey] = expiresAt
	return nil
}

// pruneExpired drops expired markers. Callers hold the write lock.
func (s *InMemoryOperatorStore) pruneExpired(now time.Time) {
	for key, expiresAt := range s.processedEvents {
		if !expiresAt.IsZero() && !now.Before(expiresAt) {
			delete(s.processedEvents, key)
		}
	}
	s.lastPrune = now
}

func (s *InMemoryOperatorStore) IsEventProcessed(ctx context.Context, eventKey string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, storage.ErrStoreClosed
	}

	expiresAt, exists := s.processedEvents[eventKey]
	if !exists {
		return false, nil
	}
	return expiresAt.IsZero() || s.now().Before(expiresAt), nil
}

// Close releases the store. State is discarded.
func (s *InMemoryOperatorStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.cursors = nil
	s.processedEvents = nil
	return nil
}
