package EVMChainPoller

import (
	"context"
	"testing"

	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmiraclez/Pastebin-AVS-Proto/mocks"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/operator/operatorConfig"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/storage/badger"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/storage/memory"
	"go.uber.org/mock/gomock"
)

func TestRestart_BadgerStoreResumesWithoutDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	dir := t.TempDir()
	mockClient := mocks.NewMockClient(ctrl)
	boundary := pasteLog(t, 100, 0, 1, "hello world")

	store, err := badger.NewBadgerOperatorStore(&operatorConfig.BadgerConfig{Dir: dir})
	require.NoError(t, err)
	firstRun := &recordingHandler{}
	poller := createTestPoller(t, mockClient, store, firstRun, 0)

	mockClient.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(100), nil)
	mockClient.EXPECT().GetLogs(gomock.Any(), testContract, uint64(90), uint64(100)).Return([]ethereumTypes.Log{boundary}, nil)
	require.NoError(t, poller.processNextRange(ctx))
	require.NoError(t, store.Close())

	// downtime: the tip moved well past the lookback window
	store, err = badger.NewBadgerOperatorStore(&operatorConfig.BadgerConfig{Dir: dir})
	require.NoError(t, err)
	defer store.Close()
	secondRun := &recordingHandler{}
	poller = createTestPoller(t, mockClient, store, secondRun, 0)

	mockClient.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(500), nil)
	mockClient.EXPECT().GetLogs(gomock.Any(), testContract, uint64(100), uint64(500)).Return([]ethereumTypes.Log{
		boundary,
		taskLog(t, 300, 0, 1, "DuringDowntime"),
	}, nil)
	require.NoError(t, poller.processNextRange(ctx))

	assert.Equal(t, []string{"paste:hello world"}, eventNames(firstRun.handled()))
	assert.Equal(t, []string{"task:DuringDowntime"}, eventNames(secondRun.handled()))
}

func TestRestart_MemoryStoreFallsBackToLookback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockClient := mocks.NewMockClient(ctrl)

	poller := createTestPoller(t, mockClient, memory.NewInMemoryOperatorStore(), &recordingHandler{}, 0)
	mockClient.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(100), nil)
	mockClient.EXPECT().GetLogs(gomock.Any(), testContract, uint64(90), uint64(100)).Return(nil, nil)
	require.NoError(t, poller.processNextRange(ctx))

	// a fresh process has no memory of block 100 and only looks back from the new tip
	poller = createTestPoller(t, mockClient, memory.NewInMemoryOperatorStore(), &recordingHandler{}, 0)
	mockClient.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(500), nil)
	mockClient.EXPECT().GetLogs(gomock.Any(), testContract, uint64(490), uint64(500)).Return(nil, nil)
	require.NoError(t, poller.processNextRange(ctx))
}
