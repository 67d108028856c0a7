package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/dbsmedya/gobasket/internal/bench"
)

// SummaryTable renders the sweep as a table: one row per worker count with both
// timings and the real and ideal speedup.
func SummaryTable(result *bench.Result) string {
	t := table.NewWriter()
	t.SetTitle("BENCHMARK SUMMARY")
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Workers", Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Name: "Serial (s)", Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Name: "Parallel (s)", Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Name: "Speedup", Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Name: "Ideal", Align: text.AlignRight, AlignHeader: text.AlignCenter},
	})
	t.AppendHeader(table.Row{"Workers", "Serial (s)", "Parallel (s)", "Speedup", "Ideal"})

	for _, s := range result.Speedups() {
		t.AppendRow(table.Row{
			s.Workers,
			fmt.Sprintf("%.4f", s.Serial.Seconds()),
			fmt.Sprintf("%.4f", s.Parallel.Seconds()),
			fmt.Sprintf("%.2fx", s.Real),
			fmt.Sprintf("%.0fx", s.Ideal),
		})
	}

	t.AppendFooter(table.Row{"", "", "", "records", result.Records})
	t.AppendFooter(table.Row{"", "", "", "pairs", result.Pairs})
	return t.Render()
}
