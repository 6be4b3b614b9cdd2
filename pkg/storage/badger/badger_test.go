package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/operator/operatorConfig"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/storage"
)

func TestBadgerOperatorStore(t *testing.T) {
	suite := &storage.TestSuite{
		NewStore: func() (storage.OperatorStore, error) {
			// each store gets its own directory since badger holds a lock on it
			return NewBadgerOperatorStore(&operatorConfig.BadgerConfig{Dir: t.TempDir()})
		},
		NewStoreWithTTL: func(ttl time.Duration) (storage.OperatorStore, error) {
			return NewBadgerOperatorStore(&operatorConfig.BadgerConfig{Dir: t.TempDir(), ProcessedEventTTL: ttl})
		},
	}
	suite.Run(t)
}

func TestBadgerOperatorStore_InMemory(t *testing.T) {
	suite := &storage.TestSuite{
		NewStore: func() (storage.OperatorStore, error) {
			return NewBadgerOperatorStore(&operatorConfig.BadgerConfig{InMemory: true})
		},
		NewStoreWithTTL: func(ttl time.Duration) (storage.OperatorStore, error) {
			return NewBadgerOperatorStore(&operatorConfig.BadgerConfig{InMemory: true, ProcessedEventTTL: ttl})
		},
	}
	suite.Run(t)
}

func TestBadgerOperatorStore_Persistence(t *testing.T) {
	cfg := &operatorConfig.BadgerConfig{Dir: t.TempDir()}
	ctx := context.Background()
	contract := "0x5FbDB2315678afecb367f032d93F642f64180aa3"

	// Create store, save data, and close
	{
		store, err := NewBadgerOperatorStore(cfg)
		require.NoError(t, err)

		require.NoError(t, store.SaveCursor(ctx, contract, 1234))
		require.NoError(t, store.MarkEventProcessed(ctx, "0xabc:1"))
		require.NoError(t, store.Close())
	}

	// Reopen store and verify data persisted
	{
		store, err := NewBadgerOperatorStore(cfg)
		require.NoError(t, err)
		defer store.Close()

		cursor, err := store.GetCursor(ctx, contract)
		require.NoError(t, err)
		assert.Equal(t, uint64(1234), cursor)

		processed, err := store.IsEventProcessed(ctx, "0xabc:1")
		require.NoError(t, err)
		assert.True(t, processed)

		processed, err = store.IsEventProcessed(ctx, "0xabc:2")
		require.NoError(t, err)
		assert.False(t, processed)
	}
}

func TestNewBadgerOperatorStore_NilConfig(t *testing.T) {
	_, err := NewBadgerOperatorStore(nil)
	assert.Error(t, err)
}
