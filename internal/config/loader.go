package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the specified file path.
// It supports YAML files and performs environment variable substitution.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper creates a Config from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	// Slices decode element-wise into existing values, so drop the default list first.
	if v.IsSet("benchmark.workers") {
		cfg.Benchmark.Workers = nil
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	substituteEnvVars(cfg)

	return cfg, nil
}

// envVarPattern matches ${VAR_NAME} or $VAR_NAME patterns
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// substituteEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func substituteEnvVars(cfg *Config) {
	cfg.Source.Path = expandEnvVar(cfg.Source.Path)
	cfg.Source.Table = expandEnvVar(cfg.Source.Table)

	db := &cfg.Source.Database
	db.Host = expandEnvVar(db.Host)
	db.User = expandEnvVar(db.User)
	db.Password = expandEnvVar(db.Password)
	db.Database = expandEnvVar(db.Database)

	cfg.Output.ItemsetsPath = expandEnvVar(cfg.Output.ItemsetsPath)
	cfg.Benchmark.TimingsPath = expandEnvVar(cfg.Benchmark.TimingsPath)
	cfg.Benchmark.ChartPath = expandEnvVar(cfg.Benchmark.ChartPath)

	cfg.Logging.Output = expandEnvVar(cfg.Logging.Output)
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		// Return original if env var not found
		return match
	})
}

// Overrides carries CLI flag values. Zero values leave the config untouched.
type Overrides struct {
	LogLevel      string
	LogFormat     string
	MinSupport    *float64 // nil keeps the configured threshold; 0 is a valid override
	Workers       int
	BenchWorkers  []int
	SerialMode    string
	Strategy      string
	Source        string
	ItemsetsPath  string
	VerifyResults bool
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Logging.Format = o.LogFormat
	}
	if o.MinSupport != nil {
		c.Mining.MinSupport = *o.MinSupport
	}
	if o.Workers != 0 {
		c.Mining.Workers = o.Workers
	}
	if len(o.BenchWorkers) > 0 {
		c.Benchmark.Workers = append([]int(nil), o.BenchWorkers...)
	}
	if o.SerialMode != "" {
		c.Benchmark.SerialMode = o.SerialMode
	}
	if o.Strategy != "" {
		c.Mining.Strategy = o.Strategy
	}
	if o.Source != "" {
		c.Source.Path = o.Source
	}
	if o.ItemsetsPath != "" {
		c.Output.ItemsetsPath = o.ItemsetsPath
	}
	if o.VerifyResults {
		c.Benchmark.Verify = true
	}
}
