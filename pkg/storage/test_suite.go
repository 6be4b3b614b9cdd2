package storage

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSuite defines a test suite that all storage implementations must pass
type TestSuite struct {
	NewStore func() (OperatorStore, error)
	// NewStoreWithTTL builds a store whose processed-event markers expire after ttl.
	// Nil skips the expiry tests.
	NewStoreWithTTL func(ttl time.Duration) (OperatorStore, error)
}

// Run executes all storage interface compliance tests
func (s *TestSuite) Run(t *testing.T) {
	t.Run("Cursor", s.testCursor)
	t.Run("ProcessedEvents", s.testProcessedEvents)
	t.Run("ProcessedEventExpiry", s.testProcessedEventExpiry)
	t.Run("InvalidKeys", s.testInvalidKeys)
	t.Run("Lifecycle", s.testLifecycle)
	t.Run("ConcurrentAccess", s.testConcurrentAccess)
}

func (s *TestSuite) testCursor(t *testing.T) {
	store, err := s.NewStore()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	contract := "0x5FbDB2315678afecb367f032d93F642f64180aa3"

	_, err = store.GetCursor(ctx, contract)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.SaveCursor(ctx, contract, 100))
	cursor, err := store.GetCursor(ctx, contract)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), cursor)

	require.NoError(t, store.SaveCursor(ctx, contract, 105))
	cursor, err = store.GetCursor(ctx, contract)
	require.NoError(t, err)
	assert.Equal(t, uint64(105), cursor)

	// Addresses are case insensitive
	cursor, err = store.GetCursor(ctx, strings.ToLower(contract))
	require.NoError(t, err)
	assert.Equal(t, uint64(105), cursor)

	// Cursors are independent per contract
	_, err = store.GetCursor(ctx, "0x000000000000000000000000000000000000dEaD")
	assert.ErrorIs(t, err, ErrNotFound)
}

func (s *TestSuite) testProcessedEvents(t *testing.T) {
	store, err := s.NewStore()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	key := "0x0b1c2d3e4f5a6b7c8d9e0f1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b1c:2"

	processed, err := store.IsEventProcessed(ctx, key)
	require.NoError(t, err)
	assert.False(t, processed)

	require.NoError(t, store.MarkEventProcessed(ctx, key))
	processed, err = store.IsEventProcessed(ctx, key)
	require.NoError(t, err)
	assert.True(t, processed)

	// Marking twice is not an error
	require.NoError(t, store.MarkEventProcessed(ctx, key))

	processed, err = store.IsEventProcessed(ctx, key[:len(key)-1]+"3")
	require.NoError(t, err)
	assert.False(t, processed)
}

func (s *TestSuite) testProcessedEventExpiry(t *testing.T) {
	if s.NewStoreWithTTL == nil {
		t.Skip("store does not support processed-event expiry")
	}
	store, err := s.NewStoreWithTTL(time.Second)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.MarkEventProcessed(ctx, "0xexpired:0"))

	processed, err := store.IsEventProcessed(ctx, "0xexpired:0")
	require.NoError(t, err)
	assert.True(t, processed)

	require.Eventually(t, func() bool {
		processed, err := store.IsEventProcessed(ctx, "0xexpired:0")
		return err == nil && !processed
	}, 10*time.Second, 100*time.Millisecond, "expired marker should be gone")

	// Markers written after the expiry are unaffected
	require.NoError(t, store.MarkEventProcessed(ctx, "0xfresh:0"))
	processed, err = store.IsEventProcessed(ctx, "0xfresh:0")
	require.NoError(t, err)
	assert.True(t, processed)
}

func (s *TestSuite) testInvalidKeys(t *testing.T) {
	store, err := s.NewStore()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	assert.ErrorIs(t, store.SaveCursor(ctx, "", 1), ErrInvalidKey)
	_, err = store.GetCursor(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.ErrorIs(t, store.MarkEventProcessed(ctx, ""), ErrInvalidKey)
}

func (s *TestSuite) testLifecycle(t *testing.T) {
	store, err := s.NewStore()
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.SaveCursor(ctx, "0xcontract", 42))

	require.NoError(t, store.Close())

	// Operations after close should fail
	err = store.SaveCursor(ctx, "0xcontract", 43)
	assert.ErrorIs(t, err, ErrStoreClosed)

	_, err = store.GetCursor(ctx, "0xcontract")
	assert.ErrorIs(t, err, ErrStoreClosed)

	err = store.MarkEventProcessed(ctx, "key")
	assert.ErrorIs(t, err, ErrStoreClosed)

	_, err = store.IsEventProcessed(ctx, "key")
	assert.ErrorIs(t, err, ErrStoreClosed)

	// Closing twice is a no-op
	assert.NoError(t, store.Close())
}

func (s *TestSuite) testConcurrentAccess(t *testing.T) {
	store, err := s.NewStore()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	done := make(chan bool)
	errors := make(chan error, 10)

	for i := 0; i < 5; i++ {
		go func(id int) {
			for j := 0; j < 10; j++ {
				if err := store.MarkEventProcessed(ctx, fmt.Sprintf("event-%d-%d", id, j)); err != nil {
					errors <- err
					return
				}
				if err := store.SaveCursor(ctx, fmt.Sprintf("0xcontract%d", id), uint64(j)); err != nil {
					errors <- err
					return
				}
			}
			done <- true
		}(i)
	}

	for i := 0; i < 5; i++ {
		go func(id int) {
			for j := 0; j < 10; j++ {
				if _, err := store.IsEventProcessed(ctx, fmt.Sprintf("event-%d-%d", id, j)); err != nil {
					errors <- err
					return
				}
				if _, err := store.GetCursor(ctx, fmt.Sprintf("0xcontract%d", id)); err != nil && err != ErrNotFound {
					errors <- err
					return
				}
			}
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		select {
		case <-done:
		case err := <-errors:
			t.Fatalf("Concurrent access error: %v", err)
		case <-time.After(5 * time.Second):
			t.Fatal("Timeout waiting for concurrent operations")
		}
	}

	for i := 0; i < 5; i++ {
		cursor, err := store.GetCursor(ctx, fmt.Sprintf("0xcontract%d", i))
		require.NoError(t, err)
		assert.Equal(t, uint64(9), cursor)
	}
}
