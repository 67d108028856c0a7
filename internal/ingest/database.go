package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dbsmedya/gobasket/internal/sqlutil"
	"github.com/dbsmedya/gobasket/internal/types"
)

// DatabaseLoader reads (group, item) rows from a MySQL table. Rows sharing a group key form
// one record; keys are compared exactly as the driver returns them, independent of the
// column collation. NULL or blank keys and items are dropped.
type DatabaseLoader struct {
	DB          *sql.DB
	Table       string
	GroupColumn string
	ItemColumn  string
	Where       string
}

// Load implements Loader.
func (l *DatabaseLoader) Load(ctx context.Context) ([]types.Record, error) {
	if err := l.CheckSchema(ctx); err != nil {
		return nil, err
	}

	query := sqlutil.GroupedItems(l.Table, l.GroupColumn, l.ItemColumn, l.Where)
	rows, err := l.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", l.Table, err)
	}
	defer rows.Close()

	groups := newGrouper()
	for rows.Next() {
		var group, item interface{}
		if err := rows.Scan(&group, &item); err != nil {
			return nil, fmt.Errorf("failed to scan row from %s: %w", l.Table, err)
		}
		groups.add(types.ToItem(group), types.ToItem(item))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows from %s: %w", l.Table, err)
	}

	return groups.records(), nil
}

// CheckSchema verifies the table is readable and carries both required columns.
func (l *DatabaseLoader) CheckSchema(ctx context.Context) error {
	for _, name := range []string{l.Table, l.GroupColumn, l.ItemColumn} {
		if err := sqlutil.ValidateIdentifier(name); err != nil {
			return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
		}
	}

	rows, err := l.DB.QueryContext(ctx, sqlutil.ProbeColumns(l.Table))
	if err != nil {
		return fmt.Errorf("%w: table %s: %v", ErrMissingDataSource, l.Table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("failed to read columns of %s: %w", l.Table, err)
	}
	if missing := missingColumns(columns, l.GroupColumn, l.ItemColumn); len(missing) > 0 {
		return fmt.Errorf("%w: table %s is missing column(s) %s",
			ErrSchemaViolation, l.Table, strings.Join(missing, ", "))
	}
	return nil
}
