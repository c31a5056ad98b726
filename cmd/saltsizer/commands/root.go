package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"saltsizer/internal/app"
	"saltsizer/internal/config"
	"saltsizer/internal/logger"
)

var (
	logLevel  string
	logFormat string
	output    string

	appCtx *app.App
)

func Execute() error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	root := &cobra.Command{
		Use:   "saltsizer",
		Short: "Sizing calculators for molten-salt process equipment",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case tableFormat, jsonFormat, yamlFormat:
			default:
				return fmt.Errorf("output format must be one of %s, %s, %s",
					tableFormat, jsonFormat, yamlFormat)
			}
			appCtx = app.New(cfg, logger.New(os.Stderr, logLevel, logFormat))
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", cfg.LogFormat, "log format (console or json)")
	root.PersistentFlags().StringVarP(&output, "output", "o", cfg.Output, "output format (table, json or yaml)")

	root.AddCommand(feederCmd(), pumpCmd(), tankCmd(), plantCmd(), templateCmd(), versionCmd())
	return root.Execute()
}
