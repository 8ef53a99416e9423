package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"employee-tracker/internal/config"
	"employee-tracker/internal/db"
	"employee-tracker/internal/logger"
	"employee-tracker/internal/menu"
	"employee-tracker/internal/prompt"
	"employee-tracker/internal/service"
	"employee-tracker/internal/workflow"
)

// exitInterrupted is the conventional status for a session ended by Ctrl+C.
const exitInterrupted = 130

var rootCmd = &cobra.Command{
	Use:           "tracker",
	Short:         "Manage departments, roles and employees from the terminal",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// -- Configs preload --
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// -- Logger --
	log, err := logger.NewFromConfig(cfg.Log)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// -- Connect to DB --
	database, err := db.Connect(cfg.DB, log)
	if err != nil {
		log.Error("database connection failed", zap.Error(err))
		return fmt.Errorf("connecting to the database: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}
	if cfg.DB.AutoMigrate {
		if err := db.EnsureSchema(ctx, database); err != nil {
			log.Error("schema bootstrap failed", zap.Error(err))
			return fmt.Errorf("bootstrapping schema: %w", err)
		}
	}

	// -- Menu --
	out := cmd.OutOrStdout()
	directory := service.NewDirectoryService(database)
	terminal := prompt.NewTerminal(cmd.InOrStdin(), out)
	m := menu.New(terminal)
	workflow.New(directory, terminal, out, log).Register(m)

	if err := m.Run(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "Goodbye!")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, prompt.ErrInterrupted), errors.Is(err, context.Canceled):
		os.Exit(exitInterrupted)
	default:
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		os.Exit(1)
	}
}
