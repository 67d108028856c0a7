// Package bench times the serial and parallel support counters across a sweep of worker
// counts.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/dbsmedya/gobasket/internal/config"
	"github.com/dbsmedya/gobasket/internal/logger"
	"github.com/dbsmedya/gobasket/internal/mining"
	"github.com/dbsmedya/gobasket/internal/types"
	"github.com/dbsmedya/gobasket/internal/verifier"
)

type (
	serialFunc   func([]types.Record, types.CandidateSet) (types.SupportMap, error)
	parallelFunc func([]types.Record, types.CandidateSet, int) (types.SupportMap, error)
)

// Harness runs a benchmark sweep.
type Harness struct {
	// Mode is config.SerialModeOnce (measure the serial counter once and reuse it for every
	// configuration) or config.SerialModePerRun.
	Mode string

	// Verifier, when set, compares each parallel result against the serial one.
	Verifier *verifier.Verifier

	logger   *logger.Logger
	serial   serialFunc
	parallel parallelFunc
	now      func() time.Time
}

// NewHarness creates a harness using the mining package counters.
func NewHarness(mode string, v *verifier.Verifier, log *logger.Logger) *Harness {
	if mode == "" {
		mode = config.SerialModeOnce
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Harness{
		Mode:     mode,
		Verifier: v,
		logger:   log.WithStage("bench"),
		serial:   mining.CountSerial,
		parallel: mining.CountParallel,
		now:      time.Now,
	}
}

// Result holds both timing series of a sweep.
type Result struct {
	Serial   *TimingSeries
	Parallel *TimingSeries
	Records  int
	Pairs    int
}

// Speedup is one derived row of a sweep.
type Speedup struct {
	Workers  int
	Serial   time.Duration
	Parallel time.Duration
	Real     float64
	Ideal    float64
}

// Run measures the serial and parallel counters for every worker count in request order.
// The first failing configuration aborts the sweep.
func (h *Harness) Run(ctx context.Context, records []types.Record, candidates types.CandidateSet, workers []int) (*Result, error) {
	if err := checkWorkers(workers); err != nil {
		return nil, err
	}
	if h.Mode != config.SerialModeOnce && h.Mode != config.SerialModePerRun {
		return nil, fmt.Errorf("%w: unknown serial mode %q", mining.ErrInvalidConfiguration, h.Mode)
	}

	result := &Result{
		Serial:   NewTimingSeries(),
		Parallel: NewTimingSeries(),
		Records:  len(records),
		Pairs:    len(candidates),
	}

	h.logger.Infof("Benchmarking %d records, %d candidate pairs, worker counts %v (serial mode %s)",
		len(records), len(candidates), workers, h.Mode)

	var (
		reference    types.SupportMap
		serialTiming time.Duration
	)
	if h.Mode == config.SerialModeOnce {
		var err error
		reference, serialTiming, err = h.timeSerial(records, candidates)
		if err != nil {
			return nil, err
		}
	}

	for i, w := range workers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("benchmark interrupted before %d workers: %w", w, err)
		}

		if h.Mode == config.SerialModePerRun {
			var err error
			reference, serialTiming, err = h.timeSerial(records, candidates)
			if err != nil {
				return nil, err
			}
		}

		start := h.now()
		support, err := h.parallel(records, candidates, w)
		elapsed := h.now().Sub(start)
		if err != nil {
			return nil, fmt.Errorf("parallel count with %d workers: %w", w, err)
		}

		result.Serial.Set(w, serialTiming)
		result.Parallel.Set(w, elapsed)

		if h.Verifier != nil {
			if _, err := h.Verifier.Verify(reference, support); err != nil {
				return nil, fmt.Errorf("parallel result with %d workers: %w", w, err)
			}
		}

		h.logger.WithWorkers(w).WithFields(map[string]interface{}{
			"serial":   serialTiming,
			"parallel": elapsed,
		}).Infof("Configuration %d/%d done", i+1, len(workers))
	}

	return result, nil
}

func (h *Harness) timeSerial(records []types.Record, candidates types.CandidateSet) (types.SupportMap, time.Duration, error) {
	start := h.now()
	support, err := h.serial(records, candidates)
	elapsed := h.now().Sub(start)
	if err != nil {
		return nil, 0, fmt.Errorf("serial count: %w", err)
	}
	return support, elapsed, nil
}

// checkWorkers rejects an empty list, non-positive entries and duplicates.
func checkWorkers(workers []int) error {
	if len(workers) == 0 {
		return fmt.Errorf("%w: no worker counts requested", mining.ErrInvalidConfiguration)
	}
	seen := make(map[int]bool, len(workers))
	for _, w := range workers {
		if w <= 0 {
			return fmt.Errorf("%w: worker count must be > 0, got %d", mining.ErrInvalidConfiguration, w)
		}
		if seen[w] {
			return fmt.Errorf("%w: duplicate worker count %d", mining.ErrInvalidConfiguration, w)
		}
		seen[w] = true
	}
	return nil
}

// Reference returns the serial duration speedups are measured against: the entry for one
// worker when present, otherwise the first entry.
func (r *Result) Reference() time.Duration {
	if d, ok := r.Serial.Get(1); ok {
		return d
	}
	_, d, _ := r.Serial.First()
	return d
}

// Speedups derives real and ideal speedup for every configuration in request order.
func (r *Result) Speedups() []Speedup {
	ref := r.Reference()
	rows := make([]Speedup, 0, r.Parallel.Len())
	for _, w := range r.Parallel.Workers() {
		serial, _ := r.Serial.Get(w)
		parallel, _ := r.Parallel.Get(w)

		row := Speedup{Workers: w, Serial: serial, Parallel: parallel, Ideal: float64(w)}
		if parallel > 0 {
			row.Real = float64(ref) / float64(parallel)
		}
		rows = append(rows, row)
	}
	return rows
}
