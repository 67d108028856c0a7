package mining

import (
	"fmt"
	"sync"

	"github.com/dbsmedya/gobasket/internal/types"
)

// Chunk is a contiguous half-open range [Start, End) of a record slice.
type Chunk struct {
	Start int
	End   int
}

// Len returns the number of records in the chunk.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Partition splits total records into workers contiguous chunks. Every chunk but the last
// holds total/workers records; the last absorbs the remainder. When workers exceeds total
// the leading chunks are empty.
func Partition(total, workers int) ([]Chunk, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: worker count must be positive, got %d", ErrInvalidConfiguration, workers)
	}
	if total < 0 {
		return nil, fmt.Errorf("%w: record count cannot be negative, got %d", ErrInvalidConfiguration, total)
	}

	size := total / workers
	chunks := make([]Chunk, workers)
	start := 0
	for i := 0; i < workers; i++ {
		end := start + size
		if i == workers-1 {
			end = total
		}
		chunks[i] = Chunk{Start: start, End: end}
		start = end
	}
	return chunks, nil
}

// CountParallel computes the same SupportMap as CountSerial, splitting records into
// workers chunks that are counted concurrently and merged once every worker is done.
//
// Workers share candidates read-only and each writes only its own partial map, so no
// locking is needed. The result does not depend on the worker count.
func CountParallel(records []types.Record, candidates types.CandidateSet, workers int) (types.SupportMap, error) {
	chunks, err := Partition(len(records), workers)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w (records=0)", ErrDivisionUndefined)
	}

	partials := make([]types.CountMap, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(slot int, part []types.Record) {
			defer wg.Done()
			partials[slot] = CountChunk(part, candidates)
		}(i, records[chunk.Start:chunk.End])
	}
	wg.Wait()

	return ToSupport(MergeCounts(candidates, partials), len(records))
}

// MergeCounts adds partial counts into a single map covering every candidate.
// The order of partials does not affect the result.
func MergeCounts(candidates types.CandidateSet, partials []types.CountMap) types.CountMap {
	total := types.NewCountMap(candidates)
	for _, partial := range partials {
		for c, n := range partial {
			total[c] += n
		}
	}
	return total
}
