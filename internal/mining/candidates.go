// Package mining computes the support of 2-item combinations across grouped records,
// either in a single pass or split across concurrent workers.
package mining

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/dbsmedya/gobasket/internal/types"
)

// GenerateCandidates returns every canonical pair of distinct items that appear together
// in at least one record. Records with fewer than two distinct items contribute nothing.
// Cost per record is quadratic in its number of distinct items.
func GenerateCandidates(records []types.Record) types.CandidateSet {
	seen := mapset.NewThreadUnsafeSet[types.Candidate]()

	for _, record := range records {
		items := record.Items()
		if items.Cardinality() < 2 {
			continue
		}

		distinct := items.ToSlice()
		sort.Strings(distinct)
		for i := 0; i < len(distinct)-1; i++ {
			for j := i + 1; j < len(distinct); j++ {
				seen.Add(types.Candidate{First: distinct[i], Second: distinct[j]})
			}
		}
	}

	return types.NewCandidateSet(seen)
}
