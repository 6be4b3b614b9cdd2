package main

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/clients/ethereum"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/config"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/contractCaller/caller"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/crypto"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/operator/operatorConfig"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/storage"
	badgerStore "github.com/xmiraclez/Pastebin-AVS-Proto/pkg/storage/badger"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/storage/memory"
	redisStore "github.com/xmiraclez/Pastebin-AVS-Proto/pkg/storage/redis"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/transactionSigner"
	"go.uber.org/zap"
)

type chainAccess struct {
	ethereumClient  *ethereum.EthereumClient
	ethClient       *ethclient.Client
	contractAddress common.Address
	contractCaller  *caller.ContractCaller

	// nil for read-only access
	identity *crypto.OperatorIdentity
}

// newChainAccess dials the RPC endpoint and binds the service manager. When withSigner is set
// the operator key is parsed and writes are enabled.
func newChainAccess(ctx context.Context, cfg *operatorConfig.OperatorConfig, withSigner bool, l *zap.Logger) (*chainAccess, error) {
	ca := &chainAccess{
		ethereumClient: ethereum.NewEthereumClient(&ethereum.EthereumClientConfig{
			BaseUrl:           cfg.RpcUrl,
			RequestsPerSecond: cfg.RpcRequestsPerSecond,
		}, l),
		contractAddress: common.HexToAddress(cfg.ContractAddress),
	}

	ethClient, err := ca.ethereumClient.GetEthereumContractCaller()
	if err != nil {
		return nil, fmt.Errorf("failed to get ethereum contract caller: %w", err)
	}
	ca.ethClient = ethClient

	chainId, err := ca.ethereumClient.ChainID(ctx)
	if err != nil {
		ca.Close()
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}
	if cfg.ChainId != 0 && config.ChainId(chainId.Uint64()) != cfg.ChainId {
		l.Sugar().Warnw("RPC endpoint chain id does not match configured chain id",
			"rpcChainId", chainId.Uint64(),
			"configuredChainId", cfg.ChainId,
		)
	}

	var txSigner transactionSigner.TransactionSigner
	if withSigner {
		identity, err := crypto.NewOperatorIdentity(cfg.PrivateKey)
		if err != nil {
			ca.Close()
			return nil, fmt.Errorf("failed to parse operator private key: %w", err)
		}
		ca.identity = identity

		pks, err := transactionSigner.NewTransactionSigner(ctx, identity, ethClient, l)
		if err != nil {
			ca.Close()
			return nil, fmt.Errorf("failed to create private key signer: %w", err)
		}
		txSigner = pks
	}

	cc, err := caller.NewContractCaller(ethClient, ca.contractAddress, txSigner, l)
	if err != nil {
		ca.Close()
		return nil, fmt.Errorf("failed to initialize contract caller: %w", err)
	}
	ca.contractCaller = cc
	return ca, nil
}

func (ca *chainAccess) Close() {
	ca.ethereumClient.Close()
}

func newOperatorStore(ctx context.Context, cfg *operatorConfig.StorageConfig, l *zap.Logger) (storage.OperatorStore, error) {
	if cfg == nil {
		cfg = &operatorConfig.StorageConfig{Type: operatorConfig.StorageType_Memory}
	}
	switch cfg.Type {
	case "", operatorConfig.StorageType_Memory:
		ttl := cfg.ProcessedEventTTL
		if ttl <= 0 {
			ttl = storage.DefaultProcessedEventTTL
		}
		l.Sugar().Infow("Using in-memory storage, block cursor restarts behind the chain tip", "processedEventTtl", ttl)
		return memory.NewInMemoryOperatorStoreWithTTL(ttl), nil
	case operatorConfig.StorageType_Badger:
		l.Sugar().Infow("Using BadgerDB storage", "dir", cfg.BadgerConfig.Dir)
		store, err := badgerStore.NewBadgerOperatorStore(cfg.BadgerConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create badger store: %w", err)
		}
		return store, nil
	case operatorConfig.StorageType_Redis:
		l.Sugar().Infow("Using Redis storage", "keyPrefix", cfg.RedisConfig.KeyPrefix)
		store, err := redisStore.NewRedisOperatorStore(ctx, cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
