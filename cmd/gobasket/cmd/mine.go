package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gobasket/internal/config"
	"github.com/dbsmedya/gobasket/internal/database"
	"github.com/dbsmedya/gobasket/internal/mining"
	"github.com/dbsmedya/gobasket/internal/report"
)

var (
	mineWorkers  int
	mineStrategy string
	mineOutput   string
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine frequent 2-item sets and write them to CSV",
	Long: `Mine loads the grouped records, generates every candidate pair, counts
their support and writes the pairs at or above the minimum support to CSV.

Example:
  gobasket mine --config gobasket.yaml --workers 4 --output results/frequent_itemsets.csv`,
	RunE: runMine,
}

func init() {
	mineCmd.Flags().IntVarP(&mineWorkers, "workers", "w", 0,
		"Override number of workers for the parallel strategy")
	mineCmd.Flags().StringVarP(&mineStrategy, "strategy", "s", "",
		"Override counting strategy (serial, parallel)")
	mineCmd.Flags().StringVarP(&mineOutput, "output", "o", "",
		"Override frequent itemset output path")

	rootCmd.AddCommand(mineCmd)
}

func runMine(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(config.Overrides{
		Workers:      mineWorkers,
		Strategy:     mineStrategy,
		ItemsetsPath: mineOutput,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := database.SetupSignalHandler()
	defer cancel()

	records, err := loadRecords(ctx, cfg, log)
	if err != nil {
		return err
	}

	candidates := mining.GenerateCandidates(records)
	log.WithStage("candidates").Infof("Generated %d candidate pairs", len(candidates))

	counter, err := mining.NewCounter(cfg.Mining.Strategy, cfg.Mining.Workers)
	if err != nil {
		return err
	}

	countLog := log.WithStage("count")
	countLog.Infof("Counting support with %s", counter.Name())
	start := time.Now()
	support, err := counter.Count(records, candidates)
	if err != nil {
		return fmt.Errorf("support counting failed: %w", err)
	}
	countLog.Elapsed(start, "Support counting finished")

	itemsets := report.Frequent(support, cfg.Mining.MinSupport)
	countLog.Infof("%d of %d pairs reach min support %g", len(itemsets), len(candidates), cfg.Mining.MinSupport)

	if err := report.WriteItemsetsFile(cfg.Output.ItemsetsPath, itemsets, cfg.Mining.Precision); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Records: %d\n", len(records))
	fmt.Fprintf(out, "Candidate pairs: %d\n", len(candidates))
	fmt.Fprintf(out, "Frequent itemsets (support >= %g): %d\n", cfg.Mining.MinSupport, len(itemsets))
	fmt.Fprintf(out, "Written to %s\n", cfg.Output.ItemsetsPath)
	return nil
}
