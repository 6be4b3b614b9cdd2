package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/operator/operatorConfig"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/storage"
)

func redisUrl(t *testing.T) string {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set, skipping redis integration test")
	}
	return url
}

// testConfig isolates each store under a fresh key prefix on the shared server
func testConfig(url string) *operatorConfig.RedisConfig {
	return &operatorConfig.RedisConfig{
		Url:               url,
		KeyPrefix:         fmt.Sprintf("avs-operator-test-%s", uuid.NewString()),
		ProcessedEventTTL: time.Minute,
	}
}

func TestRedisOperatorStore(t *testing.T) {
	url := redisUrl(t)

	suite := &storage.TestSuite{
		NewStore: func() (storage.OperatorStore, error) {
			return NewRedisOperatorStore(context.Background(), testConfig(url))
		},
		NewStoreWithTTL: func(ttl time.Duration) (storage.OperatorStore, error) {
			cfg := testConfig(url)
			cfg.ProcessedEventTTL = ttl
			return NewRedisOperatorStore(context.Background(), cfg)
		},
	}
	suite.Run(t)
}

func TestRedisOperatorStore_Persistence(t *testing.T) {
	url := redisUrl(t)
	cfg := testConfig(url)
	ctx := context.Background()

	store, err := NewRedisOperatorStore(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, store.SaveCursor(ctx, "0xcontract", 77))
	require.NoError(t, store.MarkEventProcessed(ctx, "0xabc:0"))
	require.NoError(t, store.Close())

	reopened, err := NewRedisOperatorStore(ctx, cfg)
	require.NoError(t, err)
	defer reopened.Close()

	cursor, err := reopened.GetCursor(ctx, "0xCONTRACT")
	require.NoError(t, err)
	assert.Equal(t, uint64(77), cursor)

	processed, err := reopened.IsEventProcessed(ctx, "0xabc:0")
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestNewRedisOperatorStore_InvalidUrl(t *testing.T) {
	_, err := NewRedisOperatorStore(context.Background(), &operatorConfig.RedisConfig{Url: "not a url"})
	assert.Error(t, err)

	_, err = NewRedisOperatorStore(context.Background(), nil)
	assert.Error(t, err)
}
