package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestInMemoryOperatorStore_PrunesExpiredEvents(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	store := newInMemoryOperatorStore(time.Minute, clock.Now)

	for i := 0; i < 100; i++ {
		require.NoError(t, store.MarkEventProcessed(ctx, fmt.Sprintf("0xaaa:%d", i)))
	}
	assert.Len(t, store.processedEvents, 100)

	clock.Advance(30 * time.Second)
	processed, err := store.IsEventProcessed(ctx, "0xaaa:0")
	require.NoError(t, err)
	assert.True(t, processed)

	clock.Advance(31 * time.Second)
	processed, err = store.IsEventProcessed(ctx, "0xaaa:0")
	require.NoError(t, err)
	assert.False(t, processed, "marker past its ttl is no longer processed")

	require.NoError(t, store.MarkEventProcessed(ctx, "0xbbb:0"))
	assert.Len(t, store.processedEvents, 1, "expired markers are pruned on the next write")

	processed, err = store.IsEventProcessed(ctx, "0xbbb:0")
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestInMemoryOperatorStore_ZeroTTLKeepsEvents(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	store := newInMemoryOperatorStore(0, clock.Now)

	require.NoError(t, store.MarkEventProcessed(ctx, "0xaaa:0"))
	clock.Advance(365 * 24 * time.Hour)
	require.NoError(t, store.MarkEventProcessed(ctx, "0xaaa:1"))

	processed, err := store.IsEventProcessed(ctx, "0xaaa:0")
	require.NoError(t, err)
	assert.True(t, processed)
	assert.Len(t, store.processedEvents, 2)
}
