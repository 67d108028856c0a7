package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateSource()...)
	errors = append(errors, c.validateMining()...)
	errors = append(errors, c.validateBenchmark()...)
	errors = append(errors, c.validateVerification()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateSource() ValidationErrors {
	var errors ValidationErrors
	src := &c.Source

	if src.GroupColumn == "" {
		errors = append(errors, ValidationError{
			Field:   "source.group_column",
			Message: "group_column is required",
		})
	}

	if src.ItemColumn == "" {
		errors = append(errors, ValidationError{
			Field:   "source.item_column",
			Message: "item_column is required",
		})
	}

	if src.GroupColumn != "" && src.GroupColumn == src.ItemColumn {
		errors = append(errors, ValidationError{
			Field:   "source.item_column",
			Message: "item_column must differ from group_column",
		})
	}

	switch src.Type {
	case SourceCSV, "":
		if src.Path == "" {
			errors = append(errors, ValidationError{
				Field:   "source.path",
				Message: "path is required for csv sources",
			})
		}
		if len([]rune(src.Delimiter)) > 1 {
			errors = append(errors, ValidationError{
				Field:   "source.delimiter",
				Message: "delimiter must be a single character",
			})
		}
	case SourceMySQL:
		if src.Table == "" {
			errors = append(errors, ValidationError{
				Field:   "source.table",
				Message: "table is required for mysql sources",
			})
		}
		errors = append(errors, validateDatabase("source.database", &src.Database)...)
	default:
		errors = append(errors, ValidationError{
			Field:   "source.type",
			Message: "type must be 'csv' or 'mysql'",
		})
	}

	return errors
}

func validateDatabase(prefix string, db *DatabaseConfig) ValidationErrors {
	var errors ValidationErrors

	if db.Host == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".host",
			Message: "host is required",
		})
	}

	if db.Port <= 0 || db.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".port",
			Message: "port must be between 1 and 65535",
		})
	}

	if db.User == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".user",
			Message: "user is required",
		})
	}

	if db.Database == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".database",
			Message: "database name is required",
		})
	}

	validTLS := map[string]bool{"disable": true, "preferred": true, "required": true, "": true}
	if !validTLS[db.TLS] {
		errors = append(errors, ValidationError{
			Field:   prefix + ".tls",
			Message: "tls must be 'disable', 'preferred', or 'required'",
		})
	}

	if db.MaxConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".max_connections",
			Message: "max_connections cannot be negative",
		})
	}

	if db.MaxIdleConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".max_idle_connections",
			Message: "max_idle_connections cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateMining() ValidationErrors {
	var errors ValidationErrors

	if c.Mining.MinSupport < 0 || c.Mining.MinSupport > 1 {
		errors = append(errors, ValidationError{
			Field:   "mining.min_support",
			Message: "min_support must be between 0 and 1",
		})
	}

	if c.Mining.Precision < 0 || c.Mining.Precision > 17 {
		errors = append(errors, ValidationError{
			Field:   "mining.precision",
			Message: "precision must be between 0 and 17",
		})
	}

	validStrategies := map[string]bool{"serial": true, "parallel": true, "": true}
	if !validStrategies[c.Mining.Strategy] {
		errors = append(errors, ValidationError{
			Field:   "mining.strategy",
			Message: "strategy must be 'serial' or 'parallel'",
		})
	}

	if c.Mining.Strategy != "serial" && c.Mining.Workers <= 0 {
		errors = append(errors, ValidationError{
			Field:   "mining.workers",
			Message: "workers must be positive",
		})
	}

	return errors
}

func (c *Config) validateBenchmark() ValidationErrors {
	var errors ValidationErrors

	if len(c.Benchmark.Workers) == 0 {
		errors = append(errors, ValidationError{
			Field:   "benchmark.workers",
			Message: "at least one worker count must be listed",
		})
	}

	seen := make(map[int]bool, len(c.Benchmark.Workers))
	for i, w := range c.Benchmark.Workers {
		if w <= 0 {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("benchmark.workers[%d]", i),
				Message: "worker count must be positive",
			})
		}
		if seen[w] {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("benchmark.workers[%d]", i),
				Message: fmt.Sprintf("worker count %d is listed more than once", w),
			})
		}
		seen[w] = true
	}

	validModes := map[string]bool{SerialModeOnce: true, SerialModePerRun: true, "": true}
	if !validModes[c.Benchmark.SerialMode] {
		errors = append(errors, ValidationError{
			Field:   "benchmark.serial_mode",
			Message: "serial_mode must be 'once' or 'per_run'",
		})
	}

	return errors
}

func (c *Config) validateVerification() ValidationErrors {
	var errors ValidationErrors

	validMethods := map[string]bool{"count": true, "sha256": true, "": true}
	if !validMethods[c.Verification.Method] {
		errors = append(errors, ValidationError{
			Field:   "verification.method",
			Message: "method must be 'count' or 'sha256'",
		})
	}

	if c.Verification.Tolerance < 0 {
		errors = append(errors, ValidationError{
			Field:   "verification.tolerance",
			Message: "tolerance cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
