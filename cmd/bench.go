package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sparse-life/sparse-life/utils"
)

var (
	benchGenerations int    // Generations to run per pattern
	benchPatterns    string // Optional YAML pattern library file
)

// benchCmd runs every pattern in the library for a fixed number of
// generations and reports per-pattern throughput. Worlds are independent,
// so each runs on its own goroutine; no world is ever ticked concurrently.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run every library pattern and report throughput",
	Run: func(cmd *cobra.Command, args []string) {
		patterns, err := loadPatternLibrary(benchPatterns)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		var (
			eg      errgroup.Group
			results = make([]*utils.Stats, len(patterns))
		)
		for i, pattern := range patterns {
			i, pattern := i, pattern
			eg.Go(func() error {
				engine := patternEngine(pattern, 0, 0)
				engine.Initialize()
				results[i] = runEngine(engine, benchGenerations)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			logrus.Fatalf("Benchmark failed: %v", err)
		}

		for i, pattern := range patterns {
			stats := results[i]
			logrus.Infof("[bench] %-10s gens=%d rate=%.0f gen/sec avgPop=%.1f peak=%d births=%d deaths=%d runtime=%v",
				pattern.Name, stats.TotalGenerations, stats.GenerationsPerSecond,
				stats.AveragePopulation, stats.PeakPopulation,
				stats.TotalBirths, stats.TotalDeaths,
				time.Since(stats.StartTime).Round(time.Microsecond))
		}
	},
}

// init sets up CLI flags and attaches `bench` to `root`
func init() {
	benchCmd.Flags().IntVar(&benchGenerations, "generations", 1000, "Generations to run per pattern")
	benchCmd.Flags().StringVar(&benchPatterns, "patterns", "", "YAML pattern library file to load in addition to the built-ins")

	rootCmd.AddCommand(benchCmd)
}
