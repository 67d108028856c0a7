// Package ingest loads grouped records from a CSV file or a MySQL table.
package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dbsmedya/gobasket/internal/config"
	"github.com/dbsmedya/gobasket/internal/types"
)

var (
	// ErrMissingDataSource is returned when the configured input cannot be found or read.
	ErrMissingDataSource = errors.New("data source not found")

	// ErrSchemaViolation is returned when the grouping or item column is absent.
	ErrSchemaViolation = errors.New("schema violation")
)

// Loader produces the records every mining stage consumes.
type Loader interface {
	Load(ctx context.Context) ([]types.Record, error)
}

// New returns the Loader configured by src. db is required for mysql sources only.
func New(src *config.SourceConfig, db *sql.DB) (Loader, error) {
	switch src.Type {
	case config.SourceCSV, "":
		return &CSVLoader{
			Path:        src.Path,
			GroupColumn: src.GroupColumn,
			ItemColumn:  src.ItemColumn,
			Comma:       src.DelimiterRune(),
		}, nil
	case config.SourceMySQL:
		if db == nil {
			return nil, fmt.Errorf("mysql source requires a database connection")
		}
		return &DatabaseLoader{
			DB:          db,
			Table:       src.Table,
			GroupColumn: src.GroupColumn,
			ItemColumn:  src.ItemColumn,
			Where:       src.Where,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported source type %q", src.Type)
	}
}

// missingColumns reports which of the required columns are absent from columns.
func missingColumns(columns []string, required ...string) []string {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	var missing []string
	for _, r := range required {
		if !present[r] {
			missing = append(missing, r)
		}
	}
	return missing
}
