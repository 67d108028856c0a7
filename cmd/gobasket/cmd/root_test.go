package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommandStructure(t *testing.T) {
	assert.Equal(t, "gobasket", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.Equal(t, Version, rootCmd.Version)
}

func TestRootPersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	configFlag := flags.Lookup("config")
	if assert.NotNil(t, configFlag) {
		assert.Equal(t, "c", configFlag.Shorthand)
		assert.Equal(t, "gobasket.yaml", configFlag.DefValue)
	}

	for _, name := range []string{"log-level", "log-format", "min-support", "serial-mode", "source"} {
		assert.NotNil(t, flags.Lookup(name), "persistent flag %s should exist", name)
	}
}

func TestRootSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"mine", "bench", "candidates", "validate", "version"} {
		assert.True(t, names[want], "%s command should be added to root command", want)
	}
}

func TestGetConfigFile(t *testing.T) {
	originalCfgFile := cfgFile
	defer func() {
		cfgFile = originalCfgFile
	}()

	tests := []struct {
		name     string
		cfgValue string
		want     string
	}{
		{name: "default config file", cfgValue: "gobasket.yaml", want: "gobasket.yaml"},
		{name: "custom config file", cfgValue: "/path/to/custom.yaml", want: "/path/to/custom.yaml"},
		{name: "config file with spaces", cfgValue: "/path/to/my config.yaml", want: "/path/to/my config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile = tt.cfgValue
			assert.Equal(t, tt.want, GetConfigFile())
		})
	}
}

func TestGetCLIOverrides(t *testing.T) {
	originalLogLevel, originalLogFormat := logLevel, logFormat
	originalSerialMode, originalSource := serialMode, sourcePath
	defer func() {
		logLevel, logFormat = originalLogLevel, originalLogFormat
		serialMode, sourcePath = originalSerialMode, originalSource
	}()

	zero, tenth := 0.0, 0.1

	tests := []struct {
		name       string
		logLevel   string
		logFormat  string
		minSupport string
		serialMode string
		source     string
		want       CLIOverrides
	}{
		{
			name: "empty overrides",
			want: CLIOverrides{},
		},
		{
			name:       "all overrides set",
			logLevel:   "debug",
			logFormat:  "json",
			minSupport: "0.1",
			serialMode: "per_run",
			source:     "data/other.csv",
			want: CLIOverrides{
				LogLevel:   "debug",
				LogFormat:  "json",
				MinSupport: &tenth,
				SerialMode: "per_run",
				Source:     "data/other.csv",
			},
		},
		{
			name:       "explicit zero min support",
			minSupport: "0",
			want:       CLIOverrides{MinSupport: &zero},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logLevel, logFormat = tt.logLevel, tt.logFormat
			serialMode, sourcePath = tt.serialMode, tt.source
			if tt.minSupport != "" {
				setMinSupportFlag(t, tt.minSupport)
			}

			assert.Equal(t, tt.want, GetCLIOverrides())
		})
	}
}
