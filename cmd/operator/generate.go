package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/contentGenerator"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/contractCaller"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/logger"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/shutdown"
	"go.uber.org/zap"
)

const generateInterval = "generate-interval"

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Periodically create a demo paste and a demo task",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})
		interval, err := cmd.Flags().GetDuration(generateInterval)
		if err != nil {
			return err
		}
		if err := validateGenerateInterval(interval); err != nil {
			return err
		}
		if err := cfg.ValidateSigner(); err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		ca, err := newChainAccess(ctx, cfg, true, l)
		if err != nil {
			return err
		}
		defer ca.Close()

		done := make(chan bool)
		go func() {
			runGenerator(ctx, ca.contractCaller, contentGenerator.NewContentGenerator(), interval, l)
			close(done)
		}()

		shutdown.ListenForShutdown(shutdown.CreateGracefulShutdownChannel(), done, func() {
			l.Sugar().Info("Shutting down...")
			cancel()
		}, time.Minute, l)
		return nil
	},
}

func validateGenerateInterval(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%s must be positive, got %s", generateInterval, interval)
	}
	return nil
}

// runGenerator creates one paste and one task per tick until ctx is cancelled. Failures are
// logged and the next tick tries again.
func runGenerator(ctx context.Context, cc contractCaller.IContractCaller, cg *contentGenerator.ContentGenerator, interval time.Duration, l *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		content := cg.PasteContent()
		if receipt, err := cc.CreatePaste(ctx, content); err != nil {
			l.Sugar().Errorw("Failed to create paste", zap.Error(err))
		} else {
			l.Sugar().Infow("Created paste", "transactionHash", receipt.TxHash.Hex())
		}

		name := cg.TaskName()
		if receipt, err := cc.CreateNewTask(ctx, name); err != nil {
			l.Sugar().Errorw("Failed to create task", "taskName", name, zap.Error(err))
		} else {
			l.Sugar().Infow("Created task", "taskName", name, "transactionHash", receipt.TxHash.Hex())
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func init() {
	generateCmd.Flags().Duration(generateInterval, 15*time.Second, "Interval between generated paste and task pairs")
}
