// Package report turns support maps and benchmark results into the artifacts gobasket
// writes: the frequent itemset CSV, the timings document, a text chart and a summary table.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/dbsmedya/gobasket/internal/types"
)

// DefaultPrecision is the number of decimals written for support values.
const DefaultPrecision = 4

// Itemset is a frequent candidate and its support.
type Itemset struct {
	Candidate types.Candidate
	Support   float64
}

// Frequent returns the candidates whose support is at least minSupport, sorted by support
// descending then candidate ascending.
func Frequent(support types.SupportMap, minSupport float64) []Itemset {
	var itemsets []Itemset
	for c, s := range support {
		if s >= minSupport {
			itemsets = append(itemsets, Itemset{Candidate: c, Support: s})
		}
	}

	sort.Slice(itemsets, func(i, j int) bool {
		if itemsets[i].Support != itemsets[j].Support {
			return itemsets[i].Support > itemsets[j].Support
		}
		return itemsets[i].Candidate.Less(itemsets[j].Candidate)
	})
	return itemsets
}

// WriteItemsets writes itemsets as CSV with an `itemset,support` header. A negative
// precision falls back to DefaultPrecision.
func WriteItemsets(w io.Writer, itemsets []Itemset, precision int) error {
	if precision < 0 {
		precision = DefaultPrecision
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"itemset", "support"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, is := range itemsets {
		row := []string{is.Candidate.String(), strconv.FormatFloat(is.Support, 'f', precision, 64)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write itemset %s: %w", is.Candidate, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteItemsetsFile writes itemsets to path, creating parent directories.
func WriteItemsetsFile(path string, itemsets []Itemset, precision int) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WriteItemsets(f, itemsets, precision); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
