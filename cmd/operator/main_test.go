package main

import (
	"context"
	"math/big"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/contentGenerator"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/contractCaller"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/contracts/HelloWorldServiceManager"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/operator/operatorConfig"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/storage/memory"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/transactionLogParser"
	"go.uber.org/zap/zaptest"
)

type countingCaller struct {
	contractCaller.IContractCaller

	mu     sync.Mutex
	pastes []string
	tasks  []string
}

func (cc *countingCaller) CreatePaste(_ context.Context, content string) (*ethereumTypes.Receipt, error) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pastes = append(cc.pastes, content)
	return &ethereumTypes.Receipt{}, nil
}

func (cc *countingCaller) CreateNewTask(_ context.Context, name string) (*ethereumTypes.Receipt, error) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.tasks = append(cc.tasks, name)
	return &ethereumTypes.Receipt{}, nil
}

func (cc *countingCaller) counts() (int, int) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return len(cc.pastes), len(cc.tasks)
}

func TestRunGenerator_CreatesPairsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cc := &countingCaller{}
	cg := contentGenerator.NewContentGeneratorWithSource(rand.NewPCG(1, 1), time.Now)

	done := make(chan struct{})
	go func() {
		runGenerator(ctx, cc, cg, 5*time.Millisecond, zaptest.NewLogger(t))
		close(done)
	}()

	require.Eventually(t, func() bool {
		pastes, _ := cc.counts()
		return pastes >= 3
	}, 5*time.Second, time.Millisecond)
	cancel()
	<-done

	pastes, tasks := cc.counts()
	assert.Equal(t, pastes, tasks)
}

func TestValidateGenerateInterval(t *testing.T) {
	assert.NoError(t, validateGenerateInterval(15*time.Second))
	assert.Error(t, validateGenerateInterval(0))
	assert.Error(t, validateGenerateInterval(-time.Second))
}

func TestGenerateCmd_RejectsNonPositiveInterval(t *testing.T) {
	require.NoError(t, generateCmd.Flags().Set(generateInterval, "0s"))
	t.Cleanup(func() {
		_ = generateCmd.Flags().Set(generateInterval, "15s")
	})

	err := generateCmd.RunE(generateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), generateInterval)
}

func TestFindPasteCreated(t *testing.T) {
	address := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	parser, err := transactionLogParser.NewTransactionLogParser(address, zaptest.NewLogger(t))
	require.NoError(t, err)

	parsed, err := HelloWorldServiceManager.HelloWorldServiceManagerMetaData.GetAbi()
	require.NoError(t, err)
	event := parsed.Events[transactionLogParser.EventName_PasteCreated]
	data, err := event.Inputs.NonIndexed().Pack("hello world", big.NewInt(1700000000))
	require.NoError(t, err)

	creator := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	receipt := &ethereumTypes.Receipt{Logs: []*ethereumTypes.Log{
		{Address: address, Topics: []common.Hash{common.HexToHash("0x01")}},
		{
			Address: address,
			Topics:  []common.Hash{event.ID, common.BigToHash(big.NewInt(12)), common.BytesToHash(creator.Bytes())},
			Data:    data,
		},
	}}

	paste := findPasteCreated(parser, receipt, zaptest.NewLogger(t))
	require.NotNil(t, paste)
	assert.Equal(t, int64(12), paste.Id.Int64())
	assert.Equal(t, creator, paste.Creator)
	assert.Equal(t, "hello world", paste.Content)

	assert.Nil(t, findPasteCreated(parser, &ethereumTypes.Receipt{}, zaptest.NewLogger(t)))
}

func TestNewOperatorStore(t *testing.T) {
	ctx := context.Background()
	l := zaptest.NewLogger(t)

	store, err := newOperatorStore(ctx, nil, l)
	require.NoError(t, err)
	assert.IsType(t, &memory.InMemoryOperatorStore{}, store)

	store, err = newOperatorStore(ctx, &operatorConfig.StorageConfig{
		Type:         operatorConfig.StorageType_Badger,
		BadgerConfig: &operatorConfig.BadgerConfig{Dir: t.TempDir()},
	}, l)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = newOperatorStore(ctx, &operatorConfig.StorageConfig{Type: "sqlite"}, l)
	assert.Error(t, err)
}
