// Package root contains the root command for the application
package root

import (
	"finprep/disclosure-csv/internal/common"
	"finprep/disclosure-csv/internal/config"
	"finprep/disclosure-csv/internal/frame"
	"finprep/disclosure-csv/internal/logging"
	"finprep/disclosure-csv/internal/payroll"
	"finprep/disclosure-csv/internal/property"
	"finprep/disclosure-csv/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are shared by multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Dir    string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "disclosure-csv",
		Short: "Normalize and aggregate personal-finance CSV exports for disclosure reporting.",
		Long: `disclosure-csv prepares heterogeneous personal-finance exports (bank
transactions, payroll statements, short-let rental ledgers) into normalized
and aggregated CSV tables suitable for reporting and legal-disclosure export.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to disclosure-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			// Propagate the configured logger to every package
			adapter := logging.NewLogrusAdapterFromLogger(Log)
			logging.SetLogger(adapter)
			frame.SetLogger(adapter)
			common.SetLogger(adapter)
			store.SetLogger(adapter)
			payroll.SetLogger(adapter)
			property.SetLogger(adapter)

			common.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
		},
	}

	// SharedFlags holds flag values common to the pipeline commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all persistent flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Dir, "dir", "d", "", "Input directory")
}
