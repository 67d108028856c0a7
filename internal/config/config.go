// Package config provides configuration structures and loading for GoBasket.
package config

// Source types.
const (
	SourceCSV   = "csv"
	SourceMySQL = "mysql"
)

// Serial measurement modes for the benchmark.
const (
	SerialModeOnce   = "once"
	SerialModePerRun = "per_run"
)

// Config represents the complete application configuration.
type Config struct {
	Source       SourceConfig       `yaml:"source" mapstructure:"source"`
	Mining       MiningConfig       `yaml:"mining" mapstructure:"mining"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
	Benchmark    BenchmarkConfig    `yaml:"benchmark" mapstructure:"benchmark"`
	Verification VerificationConfig `yaml:"verification" mapstructure:"verification"`
	Logging      LoggingConfig      `yaml:"logging" mapstructure:"logging"`
}

// SourceConfig describes where grouped records are read from.
type SourceConfig struct {
	Type        string         `yaml:"type" mapstructure:"type"` // csv or mysql
	Path        string         `yaml:"path" mapstructure:"path"`
	Delimiter   string         `yaml:"delimiter" mapstructure:"delimiter"`
	GroupColumn string         `yaml:"group_column" mapstructure:"group_column"`
	ItemColumn  string         `yaml:"item_column" mapstructure:"item_column"`
	Table       string         `yaml:"table" mapstructure:"table"`
	Where       string         `yaml:"where" mapstructure:"where"`
	Database    DatabaseConfig `yaml:"database" mapstructure:"database"`
}

// DatabaseConfig represents a MySQL database connection configuration.
type DatabaseConfig struct {
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Database           string `yaml:"database" mapstructure:"database"`
	TLS                string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// MiningConfig controls support counting and the frequent itemset threshold.
type MiningConfig struct {
	MinSupport float64 `yaml:"min_support" mapstructure:"min_support"`
	Precision  int     `yaml:"precision" mapstructure:"precision"`
	Workers    int     `yaml:"workers" mapstructure:"workers"`
	Strategy   string  `yaml:"strategy" mapstructure:"strategy"` // serial or parallel
}

// OutputConfig holds paths of persisted artifacts.
type OutputConfig struct {
	ItemsetsPath string `yaml:"itemsets_path" mapstructure:"itemsets_path"`
}

// BenchmarkConfig controls the serial vs parallel sweep.
type BenchmarkConfig struct {
	Workers     []int  `yaml:"workers" mapstructure:"workers"`
	SerialMode  string `yaml:"serial_mode" mapstructure:"serial_mode"` // once or per_run
	Verify      bool   `yaml:"verify" mapstructure:"verify"`
	TimingsPath string `yaml:"timings_path" mapstructure:"timings_path"`
	ChartPath   string `yaml:"chart_path" mapstructure:"chart_path"`
}

// VerificationConfig represents serial/parallel equivalence check settings.
type VerificationConfig struct {
	Method    string  `yaml:"method" mapstructure:"method"` // "count" or "sha256"
	Tolerance float64 `yaml:"tolerance" mapstructure:"tolerance"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Type:        SourceCSV,
			Path:        "data/transactions.csv",
			Delimiter:   ",",
			GroupColumn: "client_id",
			ItemColumn:  "product",
			Database: DatabaseConfig{
				Port:               3306,
				TLS:                "preferred",
				MaxConnections:     10,
				MaxIdleConnections: 5,
			},
		},
		Mining: MiningConfig{
			MinSupport: 0.01,
			Precision:  4,
			Workers:    4,
			Strategy:   "parallel",
		},
		Output: OutputConfig{
			ItemsetsPath: "results/frequent_itemsets.csv",
		},
		Benchmark: BenchmarkConfig{
			Workers:     []int{1, 2, 3, 4, 6},
			SerialMode:  SerialModeOnce,
			Verify:      false,
			TimingsPath: "plots/timings.yaml",
			ChartPath:   "plots/performance_analysis.txt",
		},
		Verification: VerificationConfig{
			Method:    "count",
			Tolerance: 1e-9,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// DelimiterRune returns the CSV field separator as a rune, defaulting to a comma.
func (s *SourceConfig) DelimiterRune() rune {
	for _, r := range s.Delimiter {
		return r
	}
	return ','
}
