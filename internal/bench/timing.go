package bench

import (
	"time"

	"github.com/elliotchance/orderedmap/v2"
)

// TimingSeries maps a worker count to a measured duration, preserving insertion order.
type TimingSeries struct {
	m *orderedmap.OrderedMap[int, time.Duration]
}

// NewTimingSeries returns an empty series.
func NewTimingSeries() *TimingSeries {
	return &TimingSeries{m: orderedmap.NewOrderedMap[int, time.Duration]()}
}

// Set records d for workers. Re-setting an existing key keeps its position.
func (s *TimingSeries) Set(workers int, d time.Duration) {
	s.m.Set(workers, d)
}

// Get returns the duration recorded for workers.
func (s *TimingSeries) Get(workers int) (time.Duration, bool) {
	return s.m.Get(workers)
}

// Len returns the number of entries.
func (s *TimingSeries) Len() int {
	return s.m.Len()
}

// Workers returns the keys in insertion order.
func (s *TimingSeries) Workers() []int {
	keys := make([]int, 0, s.m.Len())
	for el := s.m.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}
	return keys
}

// First returns the earliest entry.
func (s *TimingSeries) First() (int, time.Duration, bool) {
	el := s.m.Front()
	if el == nil {
		return 0, 0, false
	}
	return el.Key, el.Value, true
}
