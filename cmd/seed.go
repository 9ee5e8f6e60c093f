package cmd

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sparse-life/sparse-life/life106"
	"github.com/sparse-life/sparse-life/model"
	"github.com/sparse-life/sparse-life/utils"
)

var (
	seedPattern  string // Name of the pattern to emit
	patternsPath string // Optional YAML pattern library file
	seedAtX      int64  // X offset applied to the pattern
	seedAtY      int64  // Y offset applied to the pattern
)

// seedCmd emits a named pattern as a Life 1.06 stream, ready to pipe into
// `run`.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Emit a named pattern as Life 1.06",
	Run: func(cmd *cobra.Command, args []string) {
		patterns, err := loadPatternLibrary(patternsPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		pattern, ok := utils.FindPattern(patterns, seedPattern)
		if !ok {
			logrus.Fatalf("Unknown pattern %q, available: %s", seedPattern, strings.Join(patternNames(patterns), ", "))
		}

		engine := patternEngine(pattern, seedAtX, seedAtY)
		if err := life106.Encode(os.Stdout, engine.LiveCells()); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// loadPatternLibrary returns the built-in patterns plus any loaded from the
// given YAML file.
func loadPatternLibrary(path string) ([]utils.Pattern, error) {
	patterns := utils.BuiltinPatterns()
	if path == "" {
		return patterns, nil
	}
	loaded, err := utils.LoadPatterns(path)
	if err != nil {
		return nil, err
	}
	return append(patterns, loaded...), nil
}

// patternEngine seeds a fresh engine with the pattern's cells shifted by
// (dx, dy), ready for Initialize.
func patternEngine(pattern utils.Pattern, dx, dy int64) *model.Engine {
	engine := model.NewEngine()
	for _, cell := range pattern.Cells {
		engine.AddLife(cell[0]+dx, cell[1]+dy)
	}
	return engine
}

func patternNames(patterns []utils.Pattern) []string {
	names := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		names = append(names, pattern.Name)
	}
	return names
}

// init sets up CLI flags and attaches `seed` to `root`
func init() {
	seedCmd.Flags().StringVar(&seedPattern, "pattern", "glider", "Pattern name to emit")
	seedCmd.Flags().StringVar(&patternsPath, "patterns", "", "YAML pattern library file to load in addition to the built-ins")
	seedCmd.Flags().Int64Var(&seedAtX, "at-x", 0, "X offset applied to the pattern")
	seedCmd.Flags().Int64Var(&seedAtY, "at-y", 0, "Y offset applied to the pattern")

	rootCmd.AddCommand(seedCmd)
}
