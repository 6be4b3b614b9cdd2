package main

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/logger"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/transactionLogParser"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/types"
	"go.uber.org/zap"
)

var pasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Create and read pastes",
}

var pasteCreateCmd = &cobra.Command{
	Use:   "create <content...>",
	Short: "Create a paste from the given words",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})

		content := strings.Join(args, " ")
		if strings.TrimSpace(content) == "" {
			return fmt.Errorf("paste content must not be empty")
		}
		if err := cfg.ValidateSigner(); err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ca, err := newChainAccess(ctx, cfg, true, l)
		if err != nil {
			return err
		}
		defer ca.Close()

		receipt, err := ca.contractCaller.CreatePaste(ctx, content)
		if err != nil {
			return fmt.Errorf("failed to create paste: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Paste created\nTransaction hash: %s\n", receipt.TxHash.Hex())

		logParser, err := transactionLogParser.NewTransactionLogParser(ca.contractAddress, l)
		if err != nil {
			return err
		}
		if paste := findPasteCreated(logParser, receipt, l); paste != nil {
			fmt.Fprintf(out, "ID: %s\nCreator: %s\nTimestamp: %s\n", paste.Id, paste.Creator.Hex(), paste.Timestamp)
		}
		return nil
	},
}

var pasteReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Read a paste by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})

		pasteId, ok := new(big.Int).SetString(args[0], 10)
		if !ok || pasteId.Sign() < 0 {
			return fmt.Errorf("invalid paste id %q", args[0])
		}
		if err := cfg.ValidateChainAccess(); err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ca, err := newChainAccess(ctx, cfg, false, l)
		if err != nil {
			return err
		}
		defer ca.Close()

		paste, err := ca.contractCaller.GetPaste(ctx, pasteId)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(),
			"ID: %s\nCreator: %s\nTimestamp: %s\nValidated: %t\nValidations Count: %s\nPublished: %t\n\nContent:\n%s\n",
			paste.PasteId, paste.Creator.Hex(), paste.Timestamp, paste.IsValidated, paste.ValidationsCount, paste.IsPublished, paste.Content,
		)
		return nil
	},
}

// findPasteCreated returns the first PasteCreated event carried by the receipt's logs.
func findPasteCreated(logParser *transactionLogParser.TransactionLogParser, receipt *ethereumTypes.Receipt, l *zap.Logger) *types.PasteCreatedEvent {
	for _, lg := range receipt.Logs {
		event, err := logParser.DecodeLog(lg)
		if err != nil {
			l.Sugar().Warnw("Failed to decode receipt log", zap.Error(err))
			continue
		}
		if paste, ok := event.(*types.PasteCreatedEvent); ok {
			return paste
		}
	}
	return nil
}

func init() {
	pasteCmd.AddCommand(pasteCreateCmd)
	pasteCmd.AddCommand(pasteReadCmd)
}
