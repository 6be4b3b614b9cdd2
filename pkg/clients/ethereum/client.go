package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	method_blockNumber = "eth_blockNumber"
	method_getLogs     = "eth_getLogs"
	method_chainId     = "eth_chainId"
)

// Client is the read side of the chain access boundary used by the poll loop.
type Client interface {
	GetLatestBlock(ctx context.Context) (uint64, error)
	GetLogs(ctx context.Context, address string, fromBlock uint64, toBlock uint64) ([]ethereumTypes.Log, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

type EthereumClientConfig struct {
	BaseUrl string

	// RequestsPerSecond bounds read requests issued through this client. Zero disables limiting.
	RequestsPerSecond float64
	Burst             int
}

type EthereumClient struct {
	config  *EthereumClientConfig
	logger  *zap.Logger
	limiter *rate.Limiter

	mu        sync.Mutex
	ethClient *ethclient.Client
}

func NewEthereumClient(cfg *EthereumClientConfig, l *zap.Logger) *EthereumClient {
	limit := rate.Inf
	burst := cfg.Burst
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
		if burst <= 0 {
			burst = 1
		}
	}
	return &EthereumClient{
		config:  cfg,
		logger:  l,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// GetEthereumContractCaller returns the underlying go-ethereum client, dialing it on first use.
func (ec *EthereumClient) GetEthereumContractCaller() (*ethclient.Client, error) {
	ec.mu.Lock()
	defer ec.mu.Unlock()

	if ec.ethClient != nil {
		return ec.ethClient, nil
	}
	c, err := ethclient.Dial(ec.config.BaseUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to dial ethereum rpc: %w", err)
	}
	ec.ethClient = c
	return c, nil
}

func (ec *EthereumClient) GetLatestBlock(ctx context.Context) (uint64, error) {
	c, err := ec.beforeRequest(ctx)
	if err != nil {
		return 0, err
	}
	blockNumber, err := c.BlockNumber(ctx)
	ec.recordRequest(method_blockNumber, err)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block number: %w", err)
	}
	return blockNumber, nil
}

// GetLogs returns logs emitted by address in the inclusive range [fromBlock, toBlock].
func (ec *EthereumClient) GetLogs(ctx context.Context, address string, fromBlock uint64, toBlock uint64) ([]ethereumTypes.Log, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid contract address '%s'", address)
	}
	c, err := ec.beforeRequest(ctx)
	if err != nil {
		return nil, err
	}

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{common.HexToAddress(address)},
	}
	logs, err := c.FilterLogs(ctx, query)
	ec.recordRequest(method_getLogs, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get logs for blocks %d-%d: %w", fromBlock, toBlock, err)
	}
	ec.logger.Sugar().Debugw("Fetched logs",
		zap.String("address", address),
		zap.Uint64("fromBlock", fromBlock),
		zap.Uint64("toBlock", toBlock),
		zap.Int("count", len(logs)),
	)
	return logs, nil
}

func (ec *EthereumClient) ChainID(ctx context.Context) (*big.Int, error) {
	c, err := ec.beforeRequest(ctx)
	if err != nil {
		return nil, err
	}
	chainId, err := c.ChainID(ctx)
	ec.recordRequest(method_chainId, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}
	return chainId, nil
}

func (ec *EthereumClient) beforeRequest(ctx context.Context) (*ethclient.Client, error) {
	if err := ec.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}
	return ec.GetEthereumContractCaller()
}

func (ec *EthereumClient) recordRequest(method string, err error) {
	status := metrics.Status_Success
	if err != nil {
		status = metrics.Status_Failed
	}
	metrics.RpcRequestsTotal.WithLabelValues(method, status).Inc()
}

func (ec *EthereumClient) Close() {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	if ec.ethClient != nil {
		ec.ethClient.Close()
		ec.ethClient = nil
	}
}
