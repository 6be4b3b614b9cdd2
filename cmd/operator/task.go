package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/contentGenerator"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/logger"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Create tasks",
}

var taskCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a task, with a random name when none is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})
		if err := cfg.ValidateSigner(); err != nil {
			return err
		}

		name := contentGenerator.NewContentGenerator().TaskName()
		if len(args) == 1 {
			name = args[0]
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

		receipt, err := ca.contractCaller.CreateNewTask(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task %q created\nTransaction hash: %s\n", name, receipt.TxHash.Hex())
		return nil
	},
}

func init() {
	taskCmd.AddCommand(taskCreateCmd)
}
