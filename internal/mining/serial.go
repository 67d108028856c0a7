package mining

import (
	"fmt"

	"github.com/dbsmedya/gobasket/internal/types"
)

// CountSerial computes the support of every candidate in a single pass over records.
// Candidates never seen together are present with support 0.
// Returns ErrDivisionUndefined when records is empty.
func CountSerial(records []types.Record, candidates types.CandidateSet) (types.SupportMap, error) {
	counts := CountChunk(records, candidates)
	return ToSupport(counts, len(records))
}

// CountChunk counts, for each candidate, how many records in chunk contain both its items.
// The returned map holds an entry for every candidate. candidates is only read.
func CountChunk(chunk []types.Record, candidates types.CandidateSet) types.CountMap {
	counts := types.NewCountMap(candidates)

	for _, record := range chunk {
		items := record.Items()
		if items.Cardinality() < 2 {
			continue
		}
		for _, c := range candidates {
			if c.In(items) {
				counts[c]++
			}
		}
	}

	return counts
}

// ToSupport divides every count by total.
func ToSupport(counts types.CountMap, total int) (types.SupportMap, error) {
	if total <= 0 {
		return nil, fmt.Errorf("%w (records=%d)", ErrDivisionUndefined, total)
	}

	support := make(types.SupportMap, len(counts))
	denominator := float64(total)
	for c, n := range counts {
		support[c] = float64(n) / denominator
	}
	return support, nil
}
