package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/avsResponder"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/chainPoller/EVMChainPoller"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/contentPolicy"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/logger"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/metrics"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/operator/operatorConfig"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/shutdown"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/signer/inMemorySigner"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/storage"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/transactionLogParser"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the operator",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)

		l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})
		defer l.Sync() //nolint:errcheck

		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		ca, err := newChainAccess(ctx, cfg, true, l)
		if err != nil {
			return err
		}
		defer ca.Close()

		l.Sugar().Infow("operator run",
			"operatorAddress", ca.identity.Address().Hex(),
			"contractAddress", ca.contractAddress.Hex(),
			"chainId", cfg.ChainId,
			"storage", cfg.Storage.Type,
		)

		store, err := newOperatorStore(ctx, cfg.Storage, l)
		if err != nil {
			return err
		}

		logParser, err := transactionLogParser.NewTransactionLogParser(ca.contractAddress, l)
		if err != nil {
			return fmt.Errorf("failed to create log parser: %w", err)
		}

		responder := avsResponder.NewAvsResponder(
			&avsResponder.AvsResponderConfig{
				SubmissionTimeout: cfg.SubmissionTimeout,
				MaxAttempts:       cfg.SubmissionMaxAttempts,
				RetryBackoff:      cfg.SubmissionRetryBackoff,
			},
			contentPolicy.NewContentPolicy(cfg.ContentPolicyConfig()),
			inMemorySigner.NewInMemorySigner(ca.identity),
			ca.contractCaller,
			l,
		)

		poller := EVMChainPoller.NewEVMChainPoller(ca.ethereumClient, logParser, responder, store, &EVMChainPoller.EVMChainPollerConfig{
			ChainId:         cfg.ChainId,
			PollingInterval: cfg.PollInterval,
			ContractAddress: ca.contractAddress.Hex(),
			LookbackBlocks:  cfg.LookbackBlocks,
			MaxBlockRange:   cfg.MaxBlockRange,
		}, l)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return poller.Run(gctx)
		})
		if cfg.MetricsPort > 0 {
			g.Go(func() error {
				return metrics.RunServer(gctx, cfg.MetricsPort, l)
			})
		}

		var runErr error
		done := make(chan bool)
		go func() {
			runErr = g.Wait()
			close(done)
		}()

		gracefulShutdownNotifier := shutdown.CreateGracefulShutdownChannel()
		shutdown.ListenForShutdown(gracefulShutdownNotifier, done, func() {
			l.Sugar().Info("Shutting down...")
			cancel()
		}, cfg.SubmissionTimeout+5*time.Second, l)

		cancel()
		select {
		case <-done:
		default:
			l.Sugar().Warnw("Exiting with work still in flight")
		}
		if err := store.Close(); err != nil {
			l.Sugar().Errorw("Failed to close storage", zap.Error(err))
		}

		select {
		case <-done:
			if runErr != nil {
				l.Sugar().Errorw("Operator stopped with error", zap.Error(runErr))
			}
			return runErr
		default:
			return nil
		}
	},
}

func init() {
	runCmd.Flags().Duration(operatorConfig.PollInterval, operatorConfig.DefaultPollInterval, "Interval between poll cycles")
	runCmd.Flags().Uint64(operatorConfig.LookbackBlocks, operatorConfig.DefaultLookbackBlocks, "Blocks behind the tip to start from when no cursor is persisted")
	runCmd.Flags().Uint64(operatorConfig.MaxBlockRange, operatorConfig.DefaultMaxBlockRange, "Maximum blocks per eth_getLogs request, 0 for unbounded")
	runCmd.Flags().Duration(operatorConfig.SubmissionTimeout, operatorConfig.DefaultSubmissionTimeout, "Timeout for each response submission attempt")
	runCmd.Flags().Int(operatorConfig.SubmissionMaxAttempts, operatorConfig.DefaultSubmissionMaxAttempts, "Attempts per submission, only transport failures are retried")
	runCmd.Flags().Duration(operatorConfig.SubmissionRetryBackoff, operatorConfig.DefaultSubmissionRetryBackoff, "Backoff unit between submission retries")
	runCmd.Flags().StringSlice(operatorConfig.Denylist, contentPolicy.DefaultDenylist, "Words that make a paste invalid")
	runCmd.Flags().Int(operatorConfig.MaxContentBytes, contentPolicy.DefaultMaxContentBytes, "Maximum paste size in bytes")
	runCmd.Flags().Int(operatorConfig.MetricsPort, 0, "Port for /metrics and /healthz, 0 disables the server")
	runCmd.Flags().String(operatorConfig.StorageType, operatorConfig.StorageType_Memory, "memory, badger or redis")
	runCmd.Flags().String(operatorConfig.BadgerDir, "", "BadgerDB directory when storage-type is badger")
	runCmd.Flags().String(operatorConfig.RedisUrl, "", "Redis URL when storage-type is redis")
	runCmd.Flags().String(operatorConfig.RedisKeyPrefix, operatorConfig.DefaultRedisKeyPrefix, "Key prefix for redis storage")
	runCmd.Flags().Duration(operatorConfig.ProcessedEventTTL, storage.DefaultProcessedEventTTL, "How long processed-event markers are kept")
}
