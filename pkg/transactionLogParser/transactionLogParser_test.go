package transactionLogParser

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/contracts/HelloWorldServiceManager"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/types"
	"go.uber.org/zap/zaptest"
)

var (
	contractAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	creatorAddress  = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	txHash          = common.HexToHash("0x0b1c2d3e4f5a6b7c8d9e0f1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b1c")
)

func loadAbi(t *testing.T) *abi.ABI {
	t.Helper()
	parsed, err := HelloWorldServiceManager.HelloWorldServiceManagerMetaData.GetAbi()
	require.NoError(t, err)
	return parsed
}

func newTestParser(t *testing.T) *TransactionLogParser {
	t.Helper()
	p, err := NewTransactionLogParser(contractAddress, zaptest.NewLogger(t))
	require.NoError(t, err)
	return p
}

func taskCreatedLog(t *testing.T, taskIndex uint32, name string, createdBlock uint32) *ethereumTypes.Log {
	t.Helper()
	event := loadAbi(t).Events[EventName_NewTaskCreated]
	data, err := event.Inputs.NonIndexed().Pack(HelloWorldServiceManager.IHelloWorldServiceManagerTask{
		Name:             name,
		TaskCreatedBlock: createdBlock,
	})
	require.NoError(t, err)

	return &ethereumTypes.Log{
		Address:     contractAddress,
		Topics:      []common.Hash{event.ID, common.BigToHash(big.NewInt(int64(taskIndex)))},
		Data:        data,
		BlockNumber: 101,
		TxHash:      txHash,
		Index:       2,
	}
}

func pasteCreatedLog(t *testing.T, id int64, content string, timestamp int64) *ethereumTypes.Log {
	t.Helper()
	event := loadAbi(t).Events[EventName_PasteCreated]
	data, err := event.Inputs.NonIndexed().Pack(content, big.NewInt(timestamp))
	require.NoError(t, err)

	return &ethereumTypes.Log{
		Address:     contractAddress,
		Topics:      []common.Hash{event.ID, common.BigToHash(big.NewInt(id)), common.BytesToHash(creatorAddress.Bytes())},
		Data:        data,
		BlockNumber: 105,
		TxHash:      txHash,
		Index:       0,
	}
}

func Test_TransactionLogParser(t *testing.T) {
	parser := newTestParser(t)

	t.Run("decodes NewTaskCreated", func(t *testing.T) {
		decoded, err := parser.DecodeLog(taskCreatedLog(t, 7, "Alice", 99))
		require.NoError(t, err)
		require.NotNil(t, decoded)
		assert.Equal(t, types.EventKind_TaskCreated, decoded.Kind())

		task, ok := decoded.(*types.TaskCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, uint32(7), task.TaskIndex)
		assert.Equal(t, "Alice", task.Name)
		assert.Equal(t, uint32(99), task.TaskCreatedBlock)
		assert.Equal(t, uint64(101), task.BlockNumber)
		assert.Equal(t, txHash, task.TransactionHash)
		assert.Equal(t, uint(2), task.LogIndex)
	})

	t.Run("decodes PasteCreated", func(t *testing.T) {
		decoded, err := parser.DecodeLog(pasteCreatedLog(t, 3, "hello world", 1700000000))
		require.NoError(t, err)
		require.NotNil(t, decoded)
		assert.Equal(t, types.EventKind_PasteCreated, decoded.Kind())

		paste, ok := decoded.(*types.PasteCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, int64(3), paste.Id.Int64())
		assert.Equal(t, creatorAddress, paste.Creator)
		assert.Equal(t, "hello world", paste.Content)
		assert.Equal(t, int64(1700000000), paste.Timestamp.Int64())
		assert.Equal(t, uint64(105), paste.Meta().BlockNumber)
	})

	t.Run("unknown topic yields no event and no error", func(t *testing.T) {
		lg := pasteCreatedLog(t, 3, "hello world", 1)
		lg.Topics[0] = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")

		decoded, err := parser.DecodeLog(lg)
		assert.NoError(t, err)
		assert.Nil(t, decoded)
	})

	t.Run("log without topics yields no event", func(t *testing.T) {
		lg := pasteCreatedLog(t, 3, "hello world", 1)
		lg.Topics = nil

		decoded, err := parser.DecodeLog(lg)
		assert.NoError(t, err)
		assert.Nil(t, decoded)
	})

	t.Run("log from another contract is ignored", func(t *testing.T) {
		lg := taskCreatedLog(t, 1, "Bob", 1)
		lg.Address = common.HexToAddress("0x000000000000000000000000000000000000dEaD")

		decoded, err := parser.DecodeLog(lg)
		assert.NoError(t, err)
		assert.Nil(t, decoded)
	})

	t.Run("truncated data is a malformed log", func(t *testing.T) {
		lg := pasteCreatedLog(t, 3, "hello world", 1)
		lg.Data = lg.Data[:40]

		decoded, err := parser.DecodeLog(lg)
		assert.Nil(t, decoded)
		assert.ErrorIs(t, err, ErrMalformedLog)
	})

	t.Run("empty data is a malformed log", func(t *testing.T) {
		lg := taskCreatedLog(t, 1, "Bob", 1)
		lg.Data = nil

		decoded, err := parser.DecodeLog(lg)
		assert.Nil(t, decoded)
		assert.ErrorIs(t, err, ErrMalformedLog)
	})

	t.Run("missing indexed topic is a malformed log", func(t *testing.T) {
		lg := pasteCreatedLog(t, 3, "hello world", 1)
		lg.Topics = lg.Topics[:2]

		decoded, err := parser.DecodeLog(lg)
		assert.Nil(t, decoded)
		assert.ErrorIs(t, err, ErrMalformedLog)
	})

	t.Run("nil log", func(t *testing.T) {
		decoded, err := parser.DecodeLog(nil)
		assert.NoError(t, err)
		assert.Nil(t, decoded)
	})
}

func Test_NewTransactionLogParser_ZeroAddressAcceptsAnyEmitter(t *testing.T) {
	parser, err := NewTransactionLogParser(common.Address{}, zaptest.NewLogger(t))
	require.NoError(t, err)

	lg := taskCreatedLog(t, 4, "Carol", 10)
	lg.Address = common.HexToAddress("0x000000000000000000000000000000000000bEEF")

	decoded, err := parser.DecodeLog(lg)
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.Equal(t, "Carol", decoded.(*types.TaskCreatedEvent).Name)
}

func Test_TransactionLogParser_DecodeSequence(t *testing.T) {
	parser := newTestParser(t)

	unknownLog := func(t *testing.T) *ethereumTypes.Log {
		lg := pasteCreatedLog(t, 9, "ignored", 1)
		lg.Topics[0] = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")
		return lg
	}

	tests := []struct {
		name      string
		logs      func(t *testing.T) []*ethereumTypes.Log
		wantKinds []types.EventKind
	}{
		{
			name: "task, unknown topic, paste",
			logs: func(t *testing.T) []*ethereumTypes.Log {
				return []*ethereumTypes.Log{
					taskCreatedLog(t, 1, "Alice", 100),
					unknownLog(t),
					pasteCreatedLog(t, 2, "hello world", 1700000000),
				}
			},
			wantKinds: []types.EventKind{types.EventKind_TaskCreated, types.EventKind_PasteCreated},
		},
		{
			name: "only unknown topics",
			logs: func(t *testing.T) []*ethereumTypes.Log {
				return []*ethereumTypes.Log{unknownLog(t), unknownLog(t)}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var decoded []types.DomainEvent
			for _, lg := range tt.logs(t) {
				event, err := parser.DecodeLog(lg)
				require.NoError(t, err)
				if event != nil {
					decoded = append(decoded, event)
				}
			}

			require.Len(t, decoded, len(tt.wantKinds))
			for i, kind := range tt.wantKinds {
				assert.Equal(t, kind, decoded[i].Kind())
			}
			if len(decoded) == 2 {
				assert.Equal(t, "Alice", decoded[0].(*types.TaskCreatedEvent).Name)
				assert.Equal(t, "hello world", decoded[1].(*types.PasteCreatedEvent).Content)
			}
		})
	}
}
