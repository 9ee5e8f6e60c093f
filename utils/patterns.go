package utils

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Pattern is a named set of live cell coordinates.
type Pattern struct {
	Name  string
	Cells [][2]int64
}

// patternFile is the YAML shape of a pattern library file:
//
//	patterns:
//	  glider:
//	    - [0, 0]
//	    - [1, 0]
type patternFile struct {
	Patterns map[string][][]int64 `yaml:"patterns"`
}

// BuiltinPatterns returns the built-in pattern library, sorted by name.
func BuiltinPatterns() []Pattern {
	return []Pattern{
		{Name: "beacon", Cells: [][2]int64{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, -2}, {2, -1}, {3, -2}, {3, -1}}},
		{Name: "blinker", Cells: [][2]int64{{0, 0}, {1, 0}, {2, 0}}},
		{Name: "block", Cells: [][2]int64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{Name: "glider", Cells: [][2]int64{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 2}}},
		{Name: "toad", Cells: [][2]int64{{0, 0}, {1, 0}, {2, 0}, {1, 1}, {2, 1}, {3, 1}}},
	}
}

// LoadPatterns loads additional patterns from a YAML library file, sorted by
// name. Every cell entry must be an [x, y] pair.
func LoadPatterns(filename string) ([]Pattern, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPatterns] failed to read file: %+v", filename)
	}

	var file patternFile
	if err = yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "[LoadPatterns] failed to unmarshal data from file: %+v", filename)
	}

	patterns := make([]Pattern, 0, len(file.Patterns))
	for name, rawCells := range file.Patterns {
		pattern := Pattern{Name: name, Cells: make([][2]int64, 0, len(rawCells))}
		for i, cell := range rawCells {
			if len(cell) != 2 {
				return nil, errors.Errorf("[LoadPatterns] pattern %q cell %d: expected [x, y], got %v", name, i, cell)
			}
			pattern.Cells = append(pattern.Cells, [2]int64{cell[0], cell[1]})
		}
		patterns = append(patterns, pattern)
	}
	sort.Slice(patterns, func(i, j int) bool { return patterns[i].Name < patterns[j].Name })

	return patterns, nil
}

// FindPattern returns the first pattern with the given name.
func FindPattern(patterns []Pattern, name string) (Pattern, bool) {
	for _, pattern := range patterns {
		if pattern.Name == name {
			return pattern, true
		}
	}
	return Pattern{}, false
}
