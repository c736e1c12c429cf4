// Package cmd provides the CLI commands for the mortgage engine.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/homelend/mortgage-engine/internal/config"
	"github.com/homelend/mortgage-engine/pkg/constants"
)

var (
	cfgFile      string
	logLevel     string
	logFormat    string
	outputFormat string

	logger *zap.Logger
	store  *config.Store
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mortgage-engine",
	Short: "Deterministic mortgage calculations for purchase and refinance scenarios",
	Long: `mortgage-engine computes complete financial breakdowns for home loan
scenarios: monthly payment components, mortgage insurance, closing costs,
prepaid escrow items, credit limits, and refinance break-even analysis.

Rate and fee tables come from a versioned configuration snapshot; every
calculation is a pure function over the scenario and that snapshot.

Examples:
  mortgage-engine purchase scenario.yaml
  mortgage-engine refinance --output-format json refi.yaml
  mortgage-engine config show`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = initializeLogger(logLevel, logFormat)
		if err != nil {
			return err
		}

		store, err = config.NewStore(logger, cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration at %s: %w", cfgFile, err)
		}
		store.Watch()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", constants.DefaultConfigFile, "path to the rate/fee table configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "log format (json, console)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output-format", constants.OutputFormatPretty, "result format (pretty, json)")

	rootCmd.AddCommand(purchaseCmd)
	rootCmd.AddCommand(refinanceCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// initializeLogger creates a zap logger for the requested level and format.
func initializeLogger(level, format string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	return cfg.Build()
}

func validOutputFormat() error {
	switch outputFormat {
	case constants.OutputFormatPretty, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("invalid output format: %s", outputFormat)
}
