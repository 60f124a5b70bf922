// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yog-singh/expense-tracker/internal/config"
	"github.com/yog-singh/expense-tracker/internal/logging"
)

var (
	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.NewLogrusAdapterFromLogger(logrus.New())

	// Cfg is the loaded application configuration, available to all
	// subcommands after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "expense-tracker",
		Short: "Extract structured transactions from bank notification messages.",
		Long: `expense-tracker turns free-text bank SMS notifications into structured
financial records: amount, direction, bank, account, transaction time and a
best-guess spending category. Records are persisted to a CSV store that the
report and tags commands query.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expense-tracker!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.Load()
			if err != nil {
				logrus.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			level := cfg.Log.Level
			if logLevel != "" {
				level = logLevel
			}
			Log = logging.NewLogrusAdapter(level, cfg.Log.Format)
		},
	}

	logLevel string

	// StoreFile overrides the configured store file when set.
	StoreFile string
)

// DataFile returns the transaction store file, honoring the --store flag
// over the configured value.
func DataFile() string {
	if StoreFile != "" {
		return StoreFile
	}
	return Cfg.Store.File
}

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&StoreFile, "store", "", "Transaction store CSV file")
}
