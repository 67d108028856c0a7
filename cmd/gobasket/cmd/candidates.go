package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gobasket/internal/config"
	"github.com/dbsmedya/gobasket/internal/mining"
)

var candidatesLimit int

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List the candidate pairs generated from the records",
	Long: `Candidates loads the grouped records and prints how many candidate pairs
they produce, followed by the first pairs in ascending order.

Example:
  gobasket candidates --config gobasket.yaml --limit 20`,
	RunE: runCandidates,
}

func init() {
	candidatesCmd.Flags().IntVarP(&candidatesLimit, "limit", "n", 10,
		"Number of candidates to print (0 prints all)")

	rootCmd.AddCommand(candidatesCmd)
}

func runCandidates(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(config.Overrides{})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	records, err := loadRecords(ctx, cfg, log)
	if err != nil {
		return err
	}

	candidates := mining.GenerateCandidates(records)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Records: %d\n", len(records))
	fmt.Fprintf(out, "Candidate pairs: %d\n", len(candidates))

	shown := candidates
	if candidatesLimit > 0 && len(shown) > candidatesLimit {
		shown = shown[:candidatesLimit]
	}
	for _, c := range shown {
		fmt.Fprintf(out, "  %s\n", c)
	}
	if len(shown) < len(candidates) {
		fmt.Fprintf(out, "  ... %d more\n", len(candidates)-len(shown))
	}
	return nil
}
