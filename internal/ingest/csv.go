package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dbsmedya/gobasket/internal/types"
)

// CSVLoader reads a delimited file with a header row and groups item cells by the
// grouping column. Records are returned in ascending group-key order (numeric when
// every key is a number).
type CSVLoader struct {
	Path        string
	GroupColumn string
	ItemColumn  string
	Comma       rune
}

// Load implements Loader.
func (l *CSVLoader) Load(ctx context.Context) ([]types.Record, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: file %s does not exist", ErrMissingDataSource, l.Path)
		}
		return nil, fmt.Errorf("%w: %v", ErrMissingDataSource, err)
	}
	defer f.Close()

	return l.read(ctx, f)
}

func (l *CSVLoader) read(ctx context.Context, r io.Reader) ([]types.Record, error) {
	reader := csv.NewReader(r)
	if l.Comma != 0 {
		reader.Comma = l.Comma
	}
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s has no header row (need %q and %q)",
			ErrSchemaViolation, l.Path, l.GroupColumn, l.ItemColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", l.Path, err)
	}

	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	if missing := missingColumns(header, l.GroupColumn, l.ItemColumn); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s is missing column(s) %s",
			ErrSchemaViolation, l.Path, strings.Join(missing, ", "))
	}

	groupIdx, itemIdx := indexOf(header, l.GroupColumn), indexOf(header, l.ItemColumn)

	groups := newGrouper()
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read %s line %d: %w", l.Path, line, err)
		}
		if line%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if groupIdx >= len(row) || itemIdx >= len(row) {
			continue
		}

		groups.add(row[groupIdx], row[itemIdx])
	}

	return groups.records(), nil
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}
