package ethereum

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testContractAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

type rpcRequest struct {
	Id     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type rpcResponse struct {
	JsonRpc string          `json:"jsonrpc"`
	Id      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result"`
}

func newRpcServer(t *testing.T, calls *atomic.Int32, lastFilter *map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		res := rpcResponse{JsonRpc: "2.0", Id: req.Id}
		switch req.Method {
		case "eth_blockNumber":
			res.Result = "0x64"
		case "eth_chainId":
			res.Result = "0x4268"
		case "eth_getLogs":
			if lastFilter != nil && len(req.Params) > 0 {
				filter := map[string]interface{}{}
				assert.NoError(t, json.Unmarshal(req.Params[0], &filter))
				*lastFilter = filter
			}
			res.Result = []map[string]interface{}{
				{
					"address":          testContractAddress,
					"topics":           []string{"0x6ffc9a13ae2e12de80f71439a0e61433b1c0b90041722a49dfd6e3d5558d6546"},
					"data":             "0x",
					"blockNumber":      "0x65",
					"transactionHash":  "0x0b1c2d3e4f5a6b7c8d9e0f1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b1c",
					"transactionIndex": "0x0",
					"blockHash":        "0x1111111111111111111111111111111111111111111111111111111111111111",
					"logIndex":         "0x3",
					"removed":          false,
				},
			}
		default:
			t.Errorf("unexpected rpc method %s", req.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(res))
	}))
}

func Test_EthereumClient(t *testing.T) {
	var calls atomic.Int32
	var filter map[string]interface{}
	server := newRpcServer(t, &calls, &filter)
	defer server.Close()

	client := NewEthereumClient(&EthereumClientConfig{BaseUrl: server.URL}, zaptest.NewLogger(t))
	defer client.Close()

	t.Run("GetLatestBlock", func(t *testing.T) {
		block, err := client.GetLatestBlock(context.Background())
		require.NoError(t, err)
		assert.Equal(t, uint64(100), block)
	})

	t.Run("ChainID", func(t *testing.T) {
		chainId, err := client.ChainID(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(17000), chainId.Int64())
	})

	t.Run("GetLogs", func(t *testing.T) {
		logs, err := client.GetLogs(context.Background(), testContractAddress, 90, 100)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, common.HexToAddress(testContractAddress), logs[0].Address)
		assert.Equal(t, uint64(101), logs[0].BlockNumber)
		assert.Equal(t, uint(3), logs[0].Index)

		assert.Equal(t, "0x5a", filter["fromBlock"])
		assert.Equal(t, "0x64", filter["toBlock"])
	})

	t.Run("GetLogs rejects an invalid address", func(t *testing.T) {
		before := calls.Load()
		_, err := client.GetLogs(context.Background(), "not-an-address", 1, 2)
		assert.Error(t, err)
		assert.Equal(t, before, calls.Load())
	})
}

func Test_EthereumClient_RateLimited(t *testing.T) {
	var calls atomic.Int32
	server := newRpcServer(t, &calls, nil)
	defer server.Close()

	client := NewEthereumClient(&EthereumClientConfig{
		BaseUrl:           server.URL,
		RequestsPerSecond: 0.01,
		Burst:             1,
	}, zaptest.NewLogger(t))
	defer client.Close()

	_, err := client.GetLatestBlock(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.GetLatestBlock(ctx)
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func Test_EthereumClient_DialFailure(t *testing.T) {
	client := NewEthereumClient(&EthereumClientConfig{BaseUrl: "unsupported://nowhere"}, zaptest.NewLogger(t))
	_, err := client.GetLatestBlock(context.Background())
	assert.Error(t, err)
}
