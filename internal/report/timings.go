package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dbsmedya/gobasket/internal/bench"
)

// TimingsDocument is the YAML layout of a benchmark sweep, consumed by external plotting.
type TimingsDocument struct {
	Records          int         `yaml:"records"`
	Pairs            int         `yaml:"pairs"`
	ReferenceSeconds float64     `yaml:"reference_seconds"`
	Runs             []TimingRun `yaml:"runs"`
}

// TimingRun is one configuration of the sweep.
type TimingRun struct {
	Workers         int     `yaml:"workers"`
	SerialSeconds   float64 `yaml:"serial_seconds"`
	ParallelSeconds float64 `yaml:"parallel_seconds"`
	Speedup         float64 `yaml:"speedup"`
	Ideal           float64 `yaml:"ideal"`
}

// NewTimingsDocument builds the document for result in request order.
func NewTimingsDocument(result *bench.Result) TimingsDocument {
	doc := TimingsDocument{
		Records:          result.Records,
		Pairs:            result.Pairs,
		ReferenceSeconds: result.Reference().Seconds(),
	}
	for _, s := range result.Speedups() {
		doc.Runs = append(doc.Runs, TimingRun{
			Workers:         s.Workers,
			SerialSeconds:   s.Serial.Seconds(),
			ParallelSeconds: s.Parallel.Seconds(),
			Speedup:         s.Real,
			Ideal:           s.Ideal,
		})
	}
	return doc
}

// WriteTimings writes the timings document of result to path as YAML.
func WriteTimings(path string, result *bench.Result) error {
	yamlBytes, err := yaml.Marshal(NewTimingsDocument(result))
	if err != nil {
		return fmt.Errorf("failed to marshal timings to YAML: %w", err)
	}

	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, yamlBytes, 0644); err != nil {
		return fmt.Errorf("failed to write timings file: %w", err)
	}
	return nil
}
