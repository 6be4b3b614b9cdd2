package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	badgerv3 "github.com/dgraph-io/badger/v3"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/operator/operatorConfig"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/storage"
)

// Key prefixes for different data types
const (
	prefixCursor    = "cursor:%s"
	prefixProcessed = "processed:%s"
)

// BadgerOperatorStore implements the OperatorStore interface using BadgerDB
type BadgerOperatorStore struct {
	db           *badgerv3.DB
	processedTTL time.Duration
	mu           sync.RWMutex
	closed       bool
	closeCh      chan struct{}
	gcTicker     *time.Ticker
}

// NewBadgerOperatorStore creates a new BadgerDB-backed operator store
func NewBadgerOperatorStore(cfg *operatorConfig.BadgerConfig) (*BadgerOperatorStore, error) {
	if cfg == nil {
		return nil, errors.New("badger config is nil")
	}

	var opts badgerv3.Options
	if cfg.InMemory {
		opts = badgerv3.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badgerv3.DefaultOptions(cfg.Dir)
	}
	opts.Logger = nil // Disable BadgerDB's default logging

	if cfg.ValueLogFileSize > 0 {
		opts.ValueLogFileSize = cfg.ValueLogFileSize
	}

	db, err := badgerv3.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	s := &BadgerOperatorStore{
		db:           db,
		processedTTL: cfg.ProcessedEventTTL,
		closeCh:      make(chan struct{}),
	}

	s.gcTicker = time.NewTicker(5 * time.Minute)
	go s.runGC()

	return s, nil
}

// runGC runs periodic value log garbage collection
func (s *BadgerOperatorStore) runGC() {
	for {
		select {
		case <-s.gcTicker.C:
			s.mu.RLock()
			if s.closed {
				s.mu.RUnlock()
				return
			}
			_ = s.db.RunValueLogGC(0.5)
			s.mu.RUnlock()
		case <-s.closeCh:
			return
		}
	}
}

func (s *BadgerOperatorStore) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

func (s *BadgerOperatorStore) GetCursor(ctx context.Context, contractAddress string) (uint64, error) {
	if s.isClosed() {
		return 0, storage.ErrStoreClosed
	}
	address := storage.NormalizeContractAddress(contractAddress)
	if address == "" {
		return 0, storage.ErrInvalidKey
	}

	var record storage.CursorRecord
	key := fmt.Sprintf(prefixCursor, address)

	err := s.db.View(func(txn *badgerv3.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err != nil {
		if errors.Is(err, badgerv3.ErrKeyNotFound) {
			return 0, storage.ErrNotFound
		}
		return 0, fmt.Errorf("failed to get cursor: %w", err)
	}

	return record.BlockNumber, nil
}

func (s *BadgerOperatorStore) SaveCursor(ctx context.Context, contractAddress string, blockNumber uint64) error {
	if s.isClosed() {
		return storage.ErrStoreClosed
	}
	address := storage.NormalizeContractAddress(contractAddress)
	if address == "" {
		return storage.ErrInvalidKey
	}

	key := fmt.Sprintf(prefixCursor, address)
	value, err := json.Marshal(&storage.CursorRecord{
		ContractAddress: address,
		BlockNumber:     blockNumber,
		UpdatedAt:       time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal cursor: %w", err)
	}

	err = s.db.Update(func(txn *badgerv3.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to save cursor: %w", err)
	}
	return nil
}

// MarkEventProcessed marks an event as processed. The marker expires after the configured
// ttl and badger drops it on compaction.
func (s *BadgerOperatorStore) MarkEventProcessed(ctx context.Context, eventKey string) error {
	if s.isClosed() {
		return storage.ErrStoreClosed
	}
	if eventKey == "" {
		return storage.ErrInvalidKey
	}

	key := fmt.Sprintf(prefixProcessed, eventKey)
	value, err := json.Marshal(&storage.ProcessedEvent{
		EventKey:    eventKey,
		ProcessedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal processed event: %w", err)
	}

	entry := badgerv3.NewEntry([]byte(key), value)
	if s.processedTTL > 0 {
		entry = entry.WithTTL(s.processedTTL)
	}
	err = s.db.Update(func(txn *badgerv3.Txn) error {
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("failed to mark event as processed: %w", err)
	}
	return nil
}

// IsEventProcessed checks if an event has been processed
func (s *BadgerOperatorStore) IsEventProcessed(ctx context.Context, eventKey string) (bool, error) {
	if s.isClosed() {
		return false, storage.ErrStoreClosed
	}

	key := fmt.Sprintf(prefixProcessed, eventKey)
	err := s.db.View(func(txn *badgerv3.Txn) error {
		_, err := txn.Get([]byte(key))
		return err
	})
	if err != nil {
		if errors.Is(err, badgerv3.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check if event is processed: %w", err)
	}
	return true, nil
}

// Close shuts down the store
func (s *BadgerOperatorStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	close(s.closeCh)
	s.gcTicker.Stop()

	return s.db.Close()
}
