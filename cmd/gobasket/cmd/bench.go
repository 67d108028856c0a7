package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gobasket/internal/bench"
	"github.com/dbsmedya/gobasket/internal/config"
	"github.com/dbsmedya/gobasket/internal/database"
	"github.com/dbsmedya/gobasket/internal/mining"
	"github.com/dbsmedya/gobasket/internal/report"
	"github.com/dbsmedya/gobasket/internal/verifier"
)

var (
	benchWorkers []int
	benchVerify  bool
	benchNoChart bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark serial against parallel support counting",
	Long: `Bench times the serial counter and the parallel counter for every
requested worker count, prints a summary table and a text chart, and writes
the timings (YAML) and chart files.

Press Ctrl+C to stop the sweep before the next worker count.

Example:
  gobasket bench --config gobasket.yaml --workers 1,2,4,8 --verify`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntSliceVarP(&benchWorkers, "workers", "w", nil,
		"Override worker counts to benchmark (comma separated)")
	benchCmd.Flags().BoolVar(&benchVerify, "verify", false,
		"Check every parallel result against the serial one")
	benchCmd.Flags().BoolVar(&benchNoChart, "no-chart", false,
		"Do not print the chart to stdout")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(config.Overrides{
		BenchWorkers:  benchWorkers,
		VerifyResults: benchVerify,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := database.SetupSignalHandlerWithCallback(func(sig os.Signal) {
		log.Warnf("Received %s, stopping after the current configuration", sig)
	})
	defer cancel()

	records, err := loadRecords(ctx, cfg, log)
	if err != nil {
		return err
	}

	candidates := mining.GenerateCandidates(records)
	log.WithStage("candidates").Infof("Generated %d candidate pairs", len(candidates))

	var v *verifier.Verifier
	if cfg.Benchmark.Verify {
		v, err = verifier.NewVerifier(verifier.VerificationMethod(cfg.Verification.Method),
			cfg.Verification.Tolerance, log)
		if err != nil {
			return err
		}
		log.Infof("Checking parallel results against serial (method=%s)", v.GetMethod())
	}

	harness := bench.NewHarness(cfg.Benchmark.SerialMode, v, log)
	result, err := harness.Run(ctx, records, candidates, cfg.Benchmark.Workers)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.SummaryTable(result))
	if !benchNoChart {
		fmt.Fprintln(out)
		fmt.Fprint(out, report.RenderChart(result, &report.ChartOptions{Width: 40, Color: true}))
	}

	if err := report.WriteTimings(cfg.Benchmark.TimingsPath, result); err != nil {
		return err
	}
	if err := report.WriteChart(cfg.Benchmark.ChartPath, result, nil); err != nil {
		return err
	}

	log.Infof("Timings written to %s, chart written to %s", cfg.Benchmark.TimingsPath, cfg.Benchmark.ChartPath)
	return nil
}
