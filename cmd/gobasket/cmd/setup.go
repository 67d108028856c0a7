package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dbsmedya/gobasket/internal/config"
	"github.com/dbsmedya/gobasket/internal/database"
	"github.com/dbsmedya/gobasket/internal/ingest"
	"github.com/dbsmedya/gobasket/internal/logger"
	"github.com/dbsmedya/gobasket/internal/types"
)

// loadConfig reads the config file, applies the persistent flag overrides plus extra, and
// validates the result.
func loadConfig(extra config.Overrides) (*config.Config, error) {
	configFile := GetConfigFile()

	var cfg *config.Config
	if _, err := os.Stat(configFile); errors.Is(err, os.ErrNotExist) && configFile == defaultConfigFile {
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	overrides := GetCLIOverrides()
	extra.LogLevel = overrides.LogLevel
	extra.LogFormat = overrides.LogFormat
	extra.MinSupport = overrides.MinSupport
	extra.SerialMode = overrides.SerialMode
	extra.Source = overrides.Source
	cfg.ApplyOverrides(extra)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads the configuration and builds the logger every command shares.
func setup(extra config.Overrides) (*config.Config, *logger.Logger, error) {
	cfg, err := loadConfig(extra)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}

// openSource returns the loader for the configured source. For MySQL sources it connects
// first; the returned cleanup closes that connection.
func openSource(ctx context.Context, cfg *config.Config, log *logger.Logger) (ingest.Loader, func(), error) {
	if cfg.Source.Type != config.SourceMySQL {
		loader, err := ingest.New(&cfg.Source, nil)
		return loader, func() {}, err
	}

	dbManager := database.NewManager(&cfg.Source.Database)
	log.Infof("Connecting to %s:%d/%s", cfg.Source.Database.Host, cfg.Source.Database.Port, cfg.Source.Database.Database)
	if err := dbManager.ConnectSource(ctx); err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = dbManager.Close() }

	if err := dbManager.Ping(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("source database connection failed: %w", err)
	}

	loader, err := ingest.New(&cfg.Source, dbManager.Source)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return loader, cleanup, nil
}

// loadRecords opens the configured source and reads every record from it.
func loadRecords(ctx context.Context, cfg *config.Config, log *logger.Logger) ([]types.Record, error) {
	loader, cleanup, err := openSource(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	stageLog := log.WithStage("load")
	stageLog.Infof("Loading records from %s source", cfg.Source.Type)

	start := time.Now()
	records, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	stageLog.Infow("Records loaded", "records", len(records), "elapsed", time.Since(start))
	return records, nil
}
