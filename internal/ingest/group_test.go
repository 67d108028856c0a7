package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbsmedya/gobasket/internal/types"
)

func TestSortKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{name: "numeric", keys: []string{"10", "2", "1"}, want: []string{"1", "2", "10"}},
		{name: "decimal and negative", keys: []string{"2.5", "-1", "007", "3"}, want: []string{"-1", "2.5", "3", "007"}},
		{name: "equal values keep string order", keys: []string{"01", "1"}, want: []string{"01", "1"}},
		{name: "mixed falls back to strings", keys: []string{"10", "b", "2"}, want: []string{"10", "2", "b"}},
		{name: "nan is not a number", keys: []string{"NaN", "2", "10"}, want: []string{"10", "2", "NaN"}},
		{name: "empty", keys: []string{}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sortKeys(tt.keys)
			assert.Equal(t, tt.want, tt.keys)
		})
	}
}

func TestGrouper(t *testing.T) {
	g := newGrouper()
	g.add("10", "milk")
	g.add("2", " bread ")
	g.add("", "orphan")
	g.add("2", "")
	g.add("10", "eggs")

	assert.Equal(t, []types.Record{{"bread"}, {"milk", "eggs"}}, g.records())
}
