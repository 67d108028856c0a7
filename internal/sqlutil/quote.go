// Package sqlutil builds the MySQL statements used to read grouped records.
package sqlutil

import (
	"fmt"
	"regexp"
	"strings"
)

// QuoteIdentifier wraps a MySQL identifier in backticks, doubling any embedded backtick.
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// InvalidIdentifierError is returned when a table or column name contains characters
// outside [A-Za-z0-9_].
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q: only letters, digits and underscores are allowed", e.Name)
}

// ValidateIdentifier rejects names that could not have come from a plain schema.
func ValidateIdentifier(name string) error {
	if !identifierPattern.MatchString(name) {
		return &InvalidIdentifierError{Name: name}
	}
	return nil
}

// ProbeColumns returns a statement that reads a table's column list without fetching rows.
func ProbeColumns(table string) string {
	return fmt.Sprintf("SELECT * FROM %s LIMIT 0", QuoteIdentifier(table))
}

// GroupedItems returns a statement selecting (group, item) pairs ordered by group so that
// rows of one group arrive consecutively. where is inserted verbatim when not empty.
func GroupedItems(table, groupColumn, itemColumn, where string) string {
	if where == "" {
		where = "1=1"
	}
	group := QuoteIdentifier(groupColumn)
	return fmt.Sprintf("SELECT %s, %s FROM %s WHERE (%s) ORDER BY %s ASC",
		group, QuoteIdentifier(itemColumn), QuoteIdentifier(table), where, group)
}
