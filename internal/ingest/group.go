package ingest

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/dbsmedya/gobasket/internal/types"
)

// grouper collects item values under their group key. Rows with a blank key or a blank
// item are dropped.
type grouper struct {
	groups map[string]types.Record
}

func newGrouper() *grouper {
	return &grouper{groups: make(map[string]types.Record)}
}

func (g *grouper) add(key, item string) {
	key, item = strings.TrimSpace(key), strings.TrimSpace(item)
	if key == "" || item == "" {
		return
	}
	g.groups[key] = append(g.groups[key], item)
}

// records returns one record per key in ascending key order. Keys compare numerically
// when every key is a number, as strings otherwise.
func (g *grouper) records() []types.Record {
	keys := make([]string, 0, len(g.groups))
	for k := range g.groups {
		keys = append(keys, k)
	}
	sortKeys(keys)

	records := make([]types.Record, 0, len(keys))
	for _, k := range keys {
		records = append(records, g.groups[k])
	}
	return records
}

func sortKeys(keys []string) {
	numeric := make(map[string]float64, len(keys))
	for _, k := range keys {
		n, err := strconv.ParseFloat(k, 64)
		if err != nil || math.IsNaN(n) {
			sort.Strings(keys)
			return
		}
		numeric[k] = n
	}

	sort.Slice(keys, func(i, j int) bool {
		if numeric[keys[i]] != numeric[keys[j]] {
			return numeric[keys[i]] < numeric[keys[j]]
		}
		return keys[i] < keys[j]
	})
}
