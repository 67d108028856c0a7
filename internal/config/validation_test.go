package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return DefaultConfig()
}

func TestValidConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("expected no validation errors, got: %v", err)
	}
}

func TestValidMySQLSource(t *testing.T) {
	cfg := validConfig()
	cfg.Source.Type = "mysql"
	cfg.Source.Table = "transactions"
	cfg.Source.Database = DatabaseConfig{
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Database: "shop",
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected no validation errors, got: %v", err)
	}
}

func TestValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			name:   "missing group column",
			mutate: func(c *Config) { c.Source.GroupColumn = "" },
			field:  "source.group_column",
		},
		{
			name:   "missing item column",
			mutate: func(c *Config) { c.Source.ItemColumn = "" },
			field:  "source.item_column",
		},
		{
			name:   "same group and item column",
			mutate: func(c *Config) { c.Source.ItemColumn = c.Source.GroupColumn },
			field:  "source.item_column",
		},
		{
			name:   "missing csv path",
			mutate: func(c *Config) { c.Source.Path = "" },
			field:  "source.path",
		},
		{
			name:   "multi character delimiter",
			mutate: func(c *Config) { c.Source.Delimiter = "||" },
			field:  "source.delimiter",
		},
		{
			name:   "unknown source type",
			mutate: func(c *Config) { c.Source.Type = "parquet" },
			field:  "source.type",
		},
		{
			name: "mysql without table",
			mutate: func(c *Config) {
				c.Source.Type = "mysql"
				c.Source.Database = DatabaseConfig{Host: "h", Port: 3306, User: "u", Database: "d"}
			},
			field: "source.table",
		},
		{
			name: "mysql with invalid port",
			mutate: func(c *Config) {
				c.Source.Type = "mysql"
				c.Source.Table = "t"
				c.Source.Database = DatabaseConfig{Host: "h", Port: 99999, User: "u", Database: "d"}
			},
			field: "source.database.port",
		},
		{
			name: "mysql without host",
			mutate: func(c *Config) {
				c.Source.Type = "mysql"
				c.Source.Table = "t"
				c.Source.Database = DatabaseConfig{Port: 3306, User: "u", Database: "d"}
			},
			field: "source.database.host",
		},
		{
			name:   "min support above one",
			mutate: func(c *Config) { c.Mining.MinSupport = 1.5 },
			field:  "mining.min_support",
		},
		{
			name:   "negative precision",
			mutate: func(c *Config) { c.Mining.Precision = -1 },
			field:  "mining.precision",
		},
		{
			name:   "zero workers",
			mutate: func(c *Config) { c.Mining.Workers = 0 },
			field:  "mining.workers",
		},
		{
			name:   "unknown strategy",
			mutate: func(c *Config) { c.Mining.Strategy = "gpu" },
			field:  "mining.strategy",
		},
		{
			name:   "empty benchmark list",
			mutate: func(c *Config) { c.Benchmark.Workers = nil },
			field:  "benchmark.workers",
		},
		{
			name:   "non-positive benchmark worker",
			mutate: func(c *Config) { c.Benchmark.Workers = []int{1, 0} },
			field:  "benchmark.workers[1]",
		},
		{
			name:   "duplicate benchmark worker",
			mutate: func(c *Config) { c.Benchmark.Workers = []int{2, 4, 2} },
			field:  "benchmark.workers[2]",
		},
		{
			name:   "unknown serial mode",
			mutate: func(c *Config) { c.Benchmark.SerialMode = "twice" },
			field:  "benchmark.serial_mode",
		},
		{
			name:   "unknown verification method",
			mutate: func(c *Config) { c.Verification.Method = "md5" },
			field:  "verification.method",
		},
		{
			name:   "negative tolerance",
			mutate: func(c *Config) { c.Verification.Tolerance = -1 },
			field:  "verification.tolerance",
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Logging.Level = "trace" },
			field:  "logging.level",
		},
		{
			name:   "unknown log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
			field:  "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected validation error for %s", tt.field)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error to mention %q, got: %v", tt.field, err)
			}
		})
	}
}

func TestSerialStrategyIgnoresWorkers(t *testing.T) {
	cfg := validConfig()
	cfg.Mining.Strategy = "serial"
	cfg.Mining.Workers = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected no validation errors for serial strategy, got: %v", err)
	}
}

func TestValidationErrorsAggregate(t *testing.T) {
	cfg := validConfig()
	cfg.Source.GroupColumn = ""
	cfg.Mining.MinSupport = -0.1
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Errorf("expected 3 validation errors, got %d: %v", len(verrs), verrs)
	}
	if !strings.HasPrefix(err.Error(), "validation failed:") {
		t.Errorf("unexpected error format: %s", err.Error())
	}
}

func TestValidationErrorsEmpty(t *testing.T) {
	var errs ValidationErrors
	if errs.Error() != "" {
		t.Errorf("expected empty message, got %q", errs.Error())
	}
}
