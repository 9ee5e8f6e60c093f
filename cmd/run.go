package cmd

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sparse-life/sparse-life/life106"
	"github.com/sparse-life/sparse-life/model"
	"github.com/sparse-life/sparse-life/utils"
)

var (
	generations int    // Number of generations to simulate
	inputPath   string // Life 1.06 input file ("" = stdin)
	logLevel    string // Log verbosity level
	quiet       bool   // Suppress the end-of-run summary
)

// runCmd reads a Life 1.06 world, advances it a fixed number of generations,
// and writes the surviving cells back out as Life 1.06.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Advance a Life 1.06 world a fixed number of generations",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging; logrus writes to stderr so stdout stays clean
		// for the Life 1.06 stream.
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		var in io.Reader = os.Stdin
		if inputPath != "" {
			f, err := os.Open(inputPath)
			if err != nil {
				logrus.Fatalf("Failed to open input file: %v", err)
			}
			defer f.Close()
			in = f
		}

		cells, err := life106.Decode(in)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		engine := model.NewEngine()
		for _, cell := range cells {
			engine.AddLife(cell.X, cell.Y)
		}
		engine.Initialize()
		logrus.Debugf("Seeded %d cells from %d input records", engine.Population(), len(cells))

		startTime := time.Now()
		stats := runEngine(engine, generations)

		if err := life106.Encode(os.Stdout, engine.LiveCells()); err != nil {
			logrus.Fatalf("%v", err)
		}

		if !quiet {
			logrus.Infof("Simulated %d generations in %v: population=%d peak=%d births=%d deaths=%d",
				stats.TotalGenerations, time.Since(startTime).Round(time.Microsecond),
				engine.Population(), stats.PeakPopulation, stats.TotalBirths, stats.TotalDeaths)
		}
	},
}

// runEngine drives an initialized engine for the given number of generations,
// accumulating per-run stats.
func runEngine(engine *model.Engine, generations int) *utils.Stats {
	stats := utils.NewStats()
	for i := 0; i < generations; i++ {
		tickStart := time.Now()
		births, deaths := engine.Tick()
		stats.Update(int(engine.Generation()), engine.Population(), births, deaths, time.Since(tickStart))
		logrus.Debugf("[gen %03d] population=%d births=%d deaths=%d",
			engine.Generation(), engine.Population(), births, deaths)
	}
	return stats
}

// init sets up CLI flags and attaches `run` to `root`
func init() {
	defaults := utils.DefaultConfig()

	runCmd.Flags().IntVar(&generations, "generations", defaults.Generations, "Number of generations to simulate")
	runCmd.Flags().StringVar(&inputPath, "file", defaults.InputPath, "Life 1.06 input file (default: stdin)")
	runCmd.Flags().StringVar(&logLevel, "log", defaults.LogLevel, "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().BoolVar(&quiet, "quiet", defaults.Quiet, "Suppress the end-of-run summary")

	rootCmd.AddCommand(runCmd)
}
