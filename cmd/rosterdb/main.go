// Command rosterdb is an interactive console for the in-memory student
// record store.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/hupe1980/rosterdb"
	"github.com/hupe1980/rosterdb/prom"
	"github.com/hupe1980/rosterdb/sample"
)

var (
	seedRecords int
	seedValue   int64
	verbose     bool
	withProm    bool
)

var rootCmd = &cobra.Command{
	Use:   "rosterdb",
	Short: "Interactive student records console",
	Long: `An interactive console for managing student records in memory.

Records are keyed by student ID for O(1) lookup; orderings use an
O(n log n) comparison sort and top-k selection uses a k-bounded heap.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var optFns []func(o *rosterdb.Options)

		if verbose {
			optFns = append(optFns, rosterdb.WithLogger(rosterdb.NewTextLogger(slog.LevelDebug)))
		}

		var registry *prometheus.Registry
		if withProm {
			registry = prometheus.NewRegistry()
			collector, err := prom.New(registry)
			if err != nil {
				return fmt.Errorf("failed to set up prometheus collector: %w", err)
			}
			optFns = append(optFns, rosterdb.WithMetricsCollector(collector))
		}

		if seedRecords > 0 {
			optFns = append(optFns, rosterdb.WithCapacity(seedRecords))
		}

		store := rosterdb.New(optFns...)

		if seedRecords > 0 {
			inserted, err := sample.Generate(store, seedRecords, sample.WithSeed(seedValue))
			if err != nil {
				return fmt.Errorf("failed to generate sample records: %w", err)
			}
			fmt.Printf("Generated %d sample records\n", inserted)
		}

		menu := newMenu(store, registry)
		return menu.run()
	},
}

func init() {
	rootCmd.Flags().IntVar(&seedRecords, "records", 0, "pre-seed the store with N sample records")
	rootCmd.Flags().Int64Var(&seedValue, "seed", 1, "random seed for sample data")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&withProm, "prom", false, "collect prometheus metrics and include them in the stats view")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
