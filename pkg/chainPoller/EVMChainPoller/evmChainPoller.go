package EVMChainPoller

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/chainPoller"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/clients/ethereum"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/config"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/metrics"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/storage"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/types"
	"go.uber.org/zap"
)

const (
	DefaultPollingInterval = 15 * time.Second
	DefaultLookbackBlocks  = 10
)

type LogDecoder interface {
	DecodeLog(lg *ethereumTypes.Log) (types.DomainEvent, error)
}

type EVMChainPollerConfig struct {
	ChainId         config.ChainId
	PollingInterval time.Duration
	ContractAddress string

	// LookbackBlocks is how far behind the tip a fresh start begins when no cursor was persisted.
	LookbackBlocks uint64

	// MaxBlockRange caps a single eth_getLogs span. Zero means unbounded.
	MaxBlockRange uint64
}

func NewEVMChainPollerDefaultConfig(chainId config.ChainId, contractAddress string) *EVMChainPollerConfig {
	return &EVMChainPollerConfig{
		ChainId:         chainId,
		ContractAddress: contractAddress,
		PollingInterval: DefaultPollingInterval,
		LookbackBlocks:  DefaultLookbackBlocks,
	}
}

type EVMChainPoller struct {
	ethClient ethereum.Client
	logParser LogDecoder
	handler   chainPoller.IEventHandler
	store     storage.OperatorStore
	config    *EVMChainPollerConfig
	logger    *zap.Logger

	cursor   *chainPoller.BlockCursor
	storeKey string
}

func NewEVMChainPoller(
	ethClient ethereum.Client,
	logParser LogDecoder,
	handler chainPoller.IEventHandler,
	store storage.OperatorStore,
	config *EVMChainPollerConfig,
	logger *zap.Logger,
) *EVMChainPoller {
	return &EVMChainPoller{
		ethClient: ethClient,
		logParser: logParser,
		handler:   handler,
		store:     store,
		config:    config,
		logger:    logger,
		storeKey:  storage.NormalizeContractAddress(config.ContractAddress),
	}
}

// Start runs the poll loop in the background until ctx is cancelled.
func (ecp *EVMChainPoller) Start(ctx context.Context) error {
	go func() {
		_ = ecp.Run(ctx)
	}()
	return nil
}

// Run polls until ctx is cancelled. A failed cycle is logged and retried on the next tick.
func (ecp *EVMChainPoller) Run(ctx context.Context) error {
	sugar := ecp.logger.Sugar()
	sugar.Infow("Starting EVM chain poller",
		"chainId", ecp.config.ChainId,
		"contractAddress", ecp.config.ContractAddress,
		"pollingInterval", ecp.config.PollingInterval.String(),
		"lookbackBlocks", ecp.config.LookbackBlocks,
	)

	interval := ecp.config.PollingInterval
	if interval <= 0 {
		interval = DefaultPollingInterval
	}
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			sugar.Infow("EVM chain poller context cancelled, exiting poll loop")
			return nil
		case <-timer.C:
			if err := ecp.processNextRange(ctx); err != nil {
				if ctx.Err() != nil {
					sugar.Infow("EVM chain poller context cancelled, exiting poll loop")
					return nil
				}
				sugar.Errorw("Error processing block range", "error", err)
			}
			timer.Reset(interval)
		}
	}
}

// Cursor returns the next block height the poller will scan, or false before the first cycle.
func (ecp *EVMChainPoller) Cursor() (uint64, bool) {
	if ecp.cursor == nil {
		return 0, false
	}
	return ecp.cursor.Current(), true
}

func (ecp *EVMChainPoller) processNextRange(ctx context.Context) (err error) {
	cycleId := uuid.New().String()
	start := time.Now()
	contractLabel := ecp.storeKey
	metrics.PollCyclesTotal.WithLabelValues(contractLabel).Inc()
	defer func() {
		metrics.PollCycleLatency.WithLabelValues(contractLabel).Observe(time.Since(start).Seconds())
		if err != nil && !errors.Is(err, context.Canceled) {
			metrics.PollCycleErrors.WithLabelValues(contractLabel).Inc()
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	tip, err := ecp.ethClient.GetLatestBlock(ctx)
	if err != nil {
		return fmt.Errorf("failed to get latest block: %w", err)
	}

	if ecp.cursor == nil {
		if err := ecp.initCursor(ctx, tip); err != nil {
			return err
		}
	}

	from, to, ok := ecp.cursor.NextRange(tip)
	if !ok {
		ecp.logger.Sugar().Debugw("No new blocks",
			"cycleId", cycleId,
			"cursor", ecp.cursor.Current(),
			"latestBlock", tip,
		)
		return nil
	}

	logs, err := ecp.ethClient.GetLogs(ctx, ecp.config.ContractAddress, from, to)
	if err != nil {
		return fmt.Errorf("failed to get logs for blocks [%d, %d]: %w", from, to, err)
	}
	ecp.logger.Sugar().Infow("Fetched logs",
		"cycleId", cycleId,
		"fromBlock", from,
		"toBlock", to,
		"logCount", len(logs),
	)

	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].BlockNumber != logs[j].BlockNumber {
			return logs[i].BlockNumber < logs[j].BlockNumber
		}
		return logs[i].Index < logs[j].Index
	})

	events := ecp.decodeLogs(cycleId, logs)
	for _, event := range events {
		if err := ecp.dispatch(ctx, cycleId, event); err != nil {
			return err
		}
	}

	ecp.cursor.Advance(to)
	metrics.CursorHeight.WithLabelValues(contractLabel).Set(float64(ecp.cursor.Current()))
	if err := ecp.store.SaveCursor(context.WithoutCancel(ctx), ecp.storeKey, ecp.cursor.Current()); err != nil {
		ecp.logger.Sugar().Errorw("Failed to persist block cursor",
			"cycleId", cycleId,
			"cursor", ecp.cursor.Current(),
			"error", err,
		)
	}
	return nil
}

func (ecp *EVMChainPoller) initCursor(ctx context.Context, tip uint64) error {
	saved, err := ecp.store.GetCursor(ctx, ecp.storeKey)
	switch {
	case err == nil:
		ecp.cursor = chainPoller.NewBlockCursor(saved, ecp.config.MaxBlockRange)
		ecp.logger.Sugar().Infow("Resuming from persisted block cursor",
			"cursor", saved,
			"latestBlock", tip,
		)
	case errors.Is(err, storage.ErrNotFound):
		ecp.cursor = chainPoller.NewBlockCursorFromTip(tip, ecp.config.LookbackBlocks, ecp.config.MaxBlockRange)
		ecp.logger.Sugar().Infow("No persisted block cursor, starting behind the tip",
			"cursor", ecp.cursor.Current(),
			"latestBlock", tip,
			"lookbackBlocks", ecp.config.LookbackBlocks,
		)
	default:
		return fmt.Errorf("failed to load block cursor: %w", err)
	}
	return nil
}

func (ecp *EVMChainPoller) decodeLogs(cycleId string, logs []ethereumTypes.Log) []types.DomainEvent {
	events := make([]types.DomainEvent, 0, len(logs))
	for i := range logs {
		event, err := ecp.logParser.DecodeLog(&logs[i])
		if err != nil {
			metrics.DecodeErrors.WithLabelValues(ecp.storeKey).Inc()
			ecp.logger.Sugar().Errorw("Skipping undecodable log",
				"cycleId", cycleId,
				"blockNumber", logs[i].BlockNumber,
				"transactionHash", logs[i].TxHash.Hex(),
				"logIndex", logs[i].Index,
				"error", err,
			)
			continue
		}
		if event == nil {
			continue
		}
		metrics.EventsDecoded.WithLabelValues(string(event.Kind())).Inc()
		events = append(events, event)
	}
	return events
}

// dispatch hands one event to the handler unless it was already handled. The event is marked
// processed whatever the handler's outcome. Only cancellation or a store read failure stop
// the cycle.
func (ecp *EVMChainPoller) dispatch(ctx context.Context, cycleId string, event types.DomainEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	meta := event.Meta()
	key := meta.Key()

	processed, err := ecp.store.IsEventProcessed(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check processed state for %s: %w", key, err)
	}
	if processed {
		metrics.DuplicateEventsSkipped.WithLabelValues(string(event.Kind())).Inc()
		ecp.logger.Sugar().Debugw("Skipping already processed event",
			"cycleId", cycleId,
			"kind", event.Kind(),
			"eventKey", key,
		)
		return nil
	}

	if err := ecp.handler.HandleEvent(ctx, event); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		ecp.logger.Sugar().Errorw("Event handler failed",
			"cycleId", cycleId,
			"kind", event.Kind(),
			"eventKey", key,
			"blockNumber", meta.BlockNumber,
			"error", err,
		)
	}

	if err := ecp.store.MarkEventProcessed(context.WithoutCancel(ctx), key); err != nil {
		ecp.logger.Sugar().Errorw("Failed to mark event processed",
			"cycleId", cycleId,
			"eventKey", key,
			"error", err,
		)
	}
	return nil
}
