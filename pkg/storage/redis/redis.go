package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/operator/operatorConfig"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/storage"
)

// RedisOperatorStore keeps operator state in redis so it survives restarts and can be
// inspected from outside the process.
type RedisOperatorStore struct {
	client       *redis.Client
	keyPrefix    string
	processedTTL time.Duration

	mu     sync.RWMutex
	closed bool
}

func NewRedisOperatorStore(ctx context.Context, cfg *operatorConfig.RedisConfig) (*RedisOperatorStore, error) {
	if cfg == nil {
		return nil, errors.New("redis config is nil")
	}
	opts, err := redis.ParseURL(cfg.Url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewRedisOperatorStoreFromClient(client, cfg.KeyPrefix, cfg.ProcessedEventTTL), nil
}

func NewRedisOperatorStoreFromClient(client *redis.Client, keyPrefix string, processedTTL time.Duration) *RedisOperatorStore {
	if keyPrefix == "" {
		keyPrefix = operatorConfig.DefaultRedisKeyPrefix
	}
	return &RedisOperatorStore{
		client:       client,
		keyPrefix:    keyPrefix,
		processedTTL: processedTTL,
	}
}

func (s *RedisOperatorStore) cursorKey(address string) string {
	return fmt.Sprintf("%s:cursor:%s", s.keyPrefix, address)
}

func (s *RedisOperatorStore) processedKey(eventKey string) string {
	return fmt.Sprintf("%s:processed:%s", s.keyPrefix, eventKey)
}

func (s *RedisOperatorStore) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

func (s *RedisOperatorStore) GetCursor(ctx context.Context, contractAddress string) (uint64, error) {
	if s.isClosed() {
		return 0, storage.ErrStoreClosed
	}
	address := storage.NormalizeContractAddress(contractAddress)
	if address == "" {
		return 0, storage.ErrInvalidKey
	}

	raw, err := s.client.Get(ctx, s.cursorKey(address)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, storage.ErrNotFound
		}
		return 0, fmt.Errorf("failed to get cursor: %w", err)
	}

	var record storage.CursorRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return 0, fmt.Errorf("failed to unmarshal cursor: %w", err)
	}
	return record.BlockNumber, nil
}

func (s *RedisOperatorStore) SaveCursor(ctx context.Context, contractAddress string, blockNumber uint64) error {
	if s.isClosed() {
		return storage.ErrStoreClosed
	}
	address := storage.NormalizeContractAddress(contractAddress)
	if address == "" {
		return storage.ErrInvalidKey
	}

	value, err := json.Marshal(&storage.CursorRecord{
		ContractAddress: address,
		BlockNumber:     blockNumber,
		UpdatedAt:       time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal cursor: %w", err)
	}
	if err := s.client.Set(ctx, s.cursorKey(address), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cursor: %w", err)
	}
	return nil
}

func (s *RedisOperatorStore) MarkEventProcessed(ctx context.Context, eventKey string) error {
	if s.isClosed() {
		return storage.ErrStoreClosed
	}
	if eventKey == "" {
		return storage.ErrInvalidKey
	}

	value, err := json.Marshal(&storage.ProcessedEvent{
		EventKey:    eventKey,
		ProcessedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal processed event: %w", err)
	}
	if err := s.client.Set(ctx, s.processedKey(eventKey), value, s.processedTTL).Err(); err != nil {
		return fmt.Errorf("failed to mark event as processed: %w", err)
	}
	return nil
}

func (s *RedisOperatorStore) IsEventProcessed(ctx context.Context, eventKey string) (bool, error) {
	if s.isClosed() {
		return false, storage.ErrStoreClosed
	}

	n, err := s.client.Exists(ctx, s.processedKey(eventKey)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check if event is processed: %w", err)
	}
	return n > 0, nil
}

func (s *RedisOperatorStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.client.Close()
}
