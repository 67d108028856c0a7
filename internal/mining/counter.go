package mining

import (
	"fmt"

	"github.com/dbsmedya/gobasket/internal/types"
)

// Strategy names accepted by NewCounter.
const (
	StrategySerial   = "serial"
	StrategyParallel = "parallel"
)

// Counter computes a SupportMap for a fixed strategy.
type Counter interface {
	Name() string
	Count(records []types.Record, candidates types.CandidateSet) (types.SupportMap, error)
}

// SerialCounter counts in a single pass on the calling goroutine.
type SerialCounter struct{}

// Name implements Counter.
func (SerialCounter) Name() string { return StrategySerial }

// Count implements Counter.
func (SerialCounter) Count(records []types.Record, candidates types.CandidateSet) (types.SupportMap, error) {
	return CountSerial(records, candidates)
}

// ParallelCounter counts with a fixed number of workers.
type ParallelCounter struct {
	Workers int
}

// Name implements Counter.
func (p ParallelCounter) Name() string {
	return fmt.Sprintf("%s(workers=%d)", StrategyParallel, p.Workers)
}

// Count implements Counter.
func (p ParallelCounter) Count(records []types.Record, candidates types.CandidateSet) (types.SupportMap, error) {
	return CountParallel(records, candidates, p.Workers)
}

// NewCounter returns the Counter for strategy. workers is only used by the parallel strategy.
func NewCounter(strategy string, workers int) (Counter, error) {
	switch strategy {
	case StrategySerial:
		return SerialCounter{}, nil
	case StrategyParallel, "":
		if workers <= 0 {
			return nil, fmt.Errorf("%w: worker count must be positive, got %d", ErrInvalidConfiguration, workers)
		}
		return ParallelCounter{Workers: workers}, nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfiguration, strategy)
	}
}
