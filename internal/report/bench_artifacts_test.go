package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dbsmedya/gobasket/internal/bench"
)

func sampleResult() *bench.Result {
	result := &bench.Result{
		Serial:   bench.NewTimingSeries(),
		Parallel: bench.NewTimingSeries(),
		Records:  1000,
		Pairs:    45,
	}
	for _, w := range []int{1, 2, 4} {
		result.Serial.Set(w, 800*time.Millisecond)
	}
	result.Parallel.Set(1, 800*time.Millisecond)
	result.Parallel.Set(2, 400*time.Millisecond)
	result.Parallel.Set(4, 250*time.Millisecond)
	return result
}

func TestNewTimingsDocument(t *testing.T) {
	doc := NewTimingsDocument(sampleResult())

	assert.Equal(t, 1000, doc.Records)
	assert.Equal(t, 45, doc.Pairs)
	assert.InDelta(t, 0.8, doc.ReferenceSeconds, 1e-9)
	require.Len(t, doc.Runs, 3)
	assert.Equal(t, 4, doc.Runs[2].Workers)
	assert.InDelta(t, 0.25, doc.Runs[2].ParallelSeconds, 1e-9)
	assert.InDelta(t, 3.2, doc.Runs[2].Speedup, 1e-9)
	assert.Equal(t, 4.0, doc.Runs[2].Ideal)
}

func TestWriteTimings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots", "timings.yaml")
	require.NoError(t, WriteTimings(path, sampleResult()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc TimingsDocument
	require.NoError(t, yaml.Unmarshal(content, &doc))
	assert.Equal(t, NewTimingsDocument(sampleResult()), doc)
	assert.Contains(t, string(content), "serial_seconds:")
}

func TestRenderChart(t *testing.T) {
	out := RenderChart(sampleResult(), &ChartOptions{Width: 20, UseASCII: true})

	assert.Contains(t, out, "Performance Analysis: Market Basket Analysis")
	assert.Contains(t, out, "Performance: Serial vs Parallel (seconds)")
	assert.Contains(t, out, "Speedup vs Number of Processes")

	lines := strings.Split(out, "\n")
	var serialLine, idealLine string
	for _, l := range lines {
		if strings.Contains(l, "1 workers  serial") {
			serialLine = l
		}
		if strings.Contains(l, "ideal") && strings.HasSuffix(l, "4.00x") {
			idealLine = l
		}
	}
	require.NotEmpty(t, serialLine)
	require.NotEmpty(t, idealLine)

	assert.Contains(t, serialLine, "|"+strings.Repeat("#", 20)+" 0.8000s", "the longest bar fills the width")
	assert.Contains(t, idealLine, "|"+strings.Repeat("#", 20)+" 4.00x")
	assert.Contains(t, out, "|"+strings.Repeat("#", 5)+strings.Repeat(" ", 15)+" 1.00x")
}

func TestRenderChart_LabelsAligned(t *testing.T) {
	out := RenderChart(sampleResult(), &ChartOptions{Width: 10, UseASCII: true})

	column := -1
	for _, l := range strings.Split(out, "\n") {
		idx := strings.Index(l, "|")
		if idx < 0 {
			continue
		}
		if column < 0 {
			column = idx
		}
		if strings.Contains(l, "serial") || strings.Contains(l, "parallel") {
			assert.Equal(t, column, idx, "bars start in the same column: %q", l)
		}
	}
	assert.Positive(t, column)
}

func TestRenderChart_Defaults(t *testing.T) {
	out := RenderChart(sampleResult(), nil)
	assert.Contains(t, out, "█")

	colored := RenderChart(sampleResult(), &ChartOptions{Color: true})
	assert.Contains(t, colored, "Speedup vs Number of Processes")
}

func TestWriteChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots", "performance_analysis.txt")
	require.NoError(t, WriteChart(path, sampleResult(), &ChartOptions{Width: 10, Color: true, UseASCII: true}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "\x1b[", "the persisted chart is plain text")
	assert.Contains(t, string(content), "##########")
}

func TestSummaryTable(t *testing.T) {
	out := SummaryTable(sampleResult())

	assert.Contains(t, strings.ToUpper(out), "BENCHMARK SUMMARY")
	assert.Contains(t, strings.ToUpper(out), "PARALLEL (S)")
	assert.Contains(t, out, "0.2500")
	assert.Contains(t, out, "3.20x")
	assert.Contains(t, out, "1000")
}
