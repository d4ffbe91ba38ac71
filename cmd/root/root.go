// Package root contains the root command for the application.
package root

import (
	"finflow/bankfeed/internal/config"
	"finflow/bankfeed/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Cfg holds the loaded application configuration after PersistentPreRunE.
	Cfg *config.Config

	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "bankfeed",
		Short: "Ingest bank statements and resolve transactions to accounts.",
		Long: `bankfeed converts delimited-text and spreadsheet bank statements into
normalized transaction drafts, resolves drafts to user accounts with a
weighted fuzzy matcher, and classifies bank-alert emails against the
extraction-config registry.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			cfg, err := config.Initialize()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = cfg.NewLogger()
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
)
