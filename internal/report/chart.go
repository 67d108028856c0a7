package report

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/gobasket/internal/bench"
)

// ChartOptions controls RenderChart.
type ChartOptions struct {
	// Width is the length of the longest bar. Defaults to 40.
	Width int
	// Color wraps bars and titles in ANSI colors.
	Color bool
	// UseASCII draws bars with '#' instead of block characters.
	UseASCII bool
}

// DefaultChartOptions returns plain block-character options.
func DefaultChartOptions() *ChartOptions {
	return &ChartOptions{Width: 40}
}

type bar struct {
	label string
	value float64
	text  string
	paint color.Color
}

// RenderChart draws the two benchmark plots as horizontal bar charts: execution time of
// the serial and parallel counters per worker count, and real against ideal speedup.
func RenderChart(result *bench.Result, opts *ChartOptions) string {
	o := DefaultChartOptions()
	if opts != nil {
		*o = *opts
	}
	if o.Width <= 0 {
		o.Width = 40
	}
	opts = o

	var timeBars, speedupBars []bar
	for _, s := range result.Speedups() {
		timeBars = append(timeBars,
			bar{label: fmt.Sprintf("%d workers  serial", s.Workers), value: s.Serial.Seconds(),
				text: fmt.Sprintf("%.4fs", s.Serial.Seconds()), paint: color.Yellow},
			bar{label: "parallel", value: s.Parallel.Seconds(),
				text: fmt.Sprintf("%.4fs", s.Parallel.Seconds()), paint: color.Green},
		)
		speedupBars = append(speedupBars,
			bar{label: fmt.Sprintf("%d workers  real", s.Workers), value: s.Real,
				text: fmt.Sprintf("%.2fx", s.Real), paint: color.Cyan},
			bar{label: "ideal", value: s.Ideal,
				text: fmt.Sprintf("%.2fx", s.Ideal), paint: color.Magenta},
		)
	}

	var sb strings.Builder
	sb.WriteString(title("Performance Analysis: Market Basket Analysis", opts))
	sb.WriteString("\n\n")
	sb.WriteString(title("Performance: Serial vs Parallel (seconds)", opts))
	sb.WriteString("\n")
	drawBars(&sb, timeBars, opts)
	sb.WriteString("\n")
	sb.WriteString(title("Speedup vs Number of Processes", opts))
	sb.WriteString("\n")
	drawBars(&sb, speedupBars, opts)
	return sb.String()
}

// WriteChart renders the chart without color to path.
func WriteChart(path string, result *bench.Result, opts *ChartOptions) error {
	plain := DefaultChartOptions()
	if opts != nil {
		plain.Width = opts.Width
		plain.UseASCII = opts.UseASCII
	}

	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(RenderChart(result, plain)), 0644); err != nil {
		return fmt.Errorf("failed to write chart file: %w", err)
	}
	return nil
}

func title(s string, opts *ChartOptions) string {
	if opts.Color {
		return color.Bold.Sprint(s)
	}
	return s
}

func drawBars(sb *strings.Builder, bars []bar, opts *ChartOptions) {
	labelWidth, maxValue := 0, 0.0
	for _, b := range bars {
		if w := runewidth.StringWidth(b.label); w > labelWidth {
			labelWidth = w
		}
		maxValue = math.Max(maxValue, b.value)
	}

	glyph := "█"
	if opts.UseASCII {
		glyph = "#"
	}
	glyphWidth := runewidth.StringWidth(glyph)

	for _, b := range bars {
		n := 0
		if maxValue > 0 && b.value > 0 {
			n = int(math.Round(b.value / maxValue * float64(opts.Width)))
			if n == 0 {
				n = 1
			}
		}

		drawn := strings.Repeat(glyph, n)
		padded := runewidth.FillRight(drawn, opts.Width*glyphWidth)
		if opts.Color {
			padded = b.paint.Sprint(drawn) + strings.Repeat(" ", opts.Width*glyphWidth-runewidth.StringWidth(drawn))
		}

		sb.WriteString(runewidth.FillLeft(b.label, labelWidth))
		sb.WriteString(" |")
		sb.WriteString(padded)
		sb.WriteString(" ")
		sb.WriteString(b.text)
		sb.WriteString("\n")
	}
}
