package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// defaultConfigFile is used when --config is not given. A missing default file falls back
// to built-in defaults; an explicitly named file must exist.
const defaultConfigFile = "gobasket.yaml"

// CLI flags that override config file values
var (
	cfgFile    string
	logLevel   string
	logFormat  string
	minSupport float64
	serialMode string
	sourcePath string
)

var rootCmd = &cobra.Command{
	Use:   "gobasket",
	Short: "Market basket pair mining and parallel benchmark",
	Long: `A CLI tool that mines frequent 2-item sets from grouped transaction data
and measures how support counting scales across concurrent workers.

Features:
  - CSV or MySQL transaction sources grouped by client
  - Serial and partitioned parallel support counting
  - Frequent itemset export (CSV)
  - Benchmark sweep with timings (YAML), text chart and summary table
  - Optional equivalence check of parallel against serial results`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigFile,
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Mining overrides
	rootCmd.PersistentFlags().Float64Var(&minSupport, "min-support", 0,
		"Override minimum support threshold (0..1)")
	rootCmd.PersistentFlags().StringVar(&serialMode, "serial-mode", "",
		"Override serial benchmark mode (once, per_run)")
	rootCmd.PersistentFlags().StringVar(&sourcePath, "source", "",
		"Override CSV source path")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel   string
	LogFormat  string
	MinSupport *float64
	SerialMode string
	Source     string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		MinSupport: changedMinSupport(),
		SerialMode: serialMode,
		Source:     sourcePath,
	}
}

// changedMinSupport returns the --min-support value only when the flag was given, so an
// explicit 0 overrides the configured threshold.
func changedMinSupport() *float64 {
	if !rootCmd.PersistentFlags().Changed("min-support") {
		return nil
	}
	v := minSupport
	return &v
}
