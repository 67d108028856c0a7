// Package types contains the shared data model for GoBasket: records, candidate pairs,
// and the count and support maps built from them.
package types

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Record is one grouped transaction: every item identifier that appeared under a single
// grouping key (for example, all products bought by one client). Order and duplicates
// carry no meaning.
type Record []string

// Items returns the distinct items of the record.
func (r Record) Items() mapset.Set[string] {
	return mapset.NewThreadUnsafeSet[string](r...)
}

// Candidate is an unordered pair of two distinct items.
// First always sorts before Second, so equal pairs compare equal with ==.
type Candidate struct {
	First  string
	Second string
}

// NewCandidate returns the canonical candidate for the pair {a, b}.
// a and b are expected to differ; a pair of one item repeated is never counted.
func NewCandidate(a, b string) Candidate {
	if b < a {
		a, b = b, a
	}
	return Candidate{First: a, Second: b}
}

// Valid reports whether the candidate holds two distinct items.
func (c Candidate) Valid() bool {
	return c.First != c.Second
}

// In reports whether both items of the candidate are members of items.
// Invalid candidates are in no record.
func (c Candidate) In(items mapset.Set[string]) bool {
	return c.Valid() && items.Contains(c.First, c.Second)
}

// Less orders candidates by First, then Second.
func (c Candidate) Less(other Candidate) bool {
	if c.First != other.First {
		return c.First < other.First
	}
	return c.Second < other.Second
}

// String renders the candidate as "(A, B)".
func (c Candidate) String() string {
	return fmt.Sprintf("(%s, %s)", c.First, c.Second)
}

// CandidateSet is the deduplicated, sorted collection of candidates observed in a dataset.
// It is shared read-only by every counting worker and must not be modified after creation.
type CandidateSet []Candidate

// NewCandidateSet builds a sorted CandidateSet from a set of canonical candidates.
func NewCandidateSet(set mapset.Set[Candidate]) CandidateSet {
	out := CandidateSet(set.ToSlice())
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// CountMap maps a candidate to the number of records that contain it.
type CountMap map[Candidate]int64

// NewCountMap returns a CountMap with every candidate set to zero.
func NewCountMap(candidates CandidateSet) CountMap {
	counts := make(CountMap, len(candidates))
	for _, c := range candidates {
		counts[c] = 0
	}
	return counts
}

// SupportMap maps a candidate to the fraction of records that contain it, in [0, 1].
type SupportMap map[Candidate]float64

// Sorted returns the candidates of the map in canonical order.
func (s SupportMap) Sorted() []Candidate {
	keys := make([]Candidate, 0, len(s))
	for c := range s {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
