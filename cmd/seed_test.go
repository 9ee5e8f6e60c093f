package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparse-life/sparse-life/life106"
	"github.com/sparse-life/sparse-life/utils"
)

func TestPatternEngine_AppliesOffset(t *testing.T) {
	pattern := utils.Pattern{Name: "blinker", Cells: [][2]int64{{0, 0}, {1, 0}, {2, 0}}}

	engine := patternEngine(pattern, 10, -5)

	lives := engine.LiveCells()
	require.Len(t, lives, 3)
	assert.Equal(t, int64(10), lives[0].X)
	assert.Equal(t, int64(-5), lives[0].Y)
	assert.Equal(t, int64(12), lives[2].X)
}

func TestPatternEngine_EncodesAsLife106(t *testing.T) {
	patterns := utils.BuiltinPatterns()
	pattern, ok := utils.FindPattern(patterns, "block")
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, life106.Encode(&buf, patternEngine(pattern, 0, 0).LiveCells()))

	assert.Equal(t, "#Life 1.06\n0 0\n0 1\n1 0\n1 1\n", buf.String())
}

func TestLoadPatternLibrary_BuiltinsOnly(t *testing.T) {
	patterns, err := loadPatternLibrary("")

	require.NoError(t, err)
	assert.Equal(t, utils.BuiltinPatterns(), patterns)
}

func TestLoadPatternLibrary_MergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("patterns:\n  dot:\n    - [0, 0]\n"), 0o644))

	patterns, err := loadPatternLibrary(path)

	require.NoError(t, err)
	assert.Len(t, patterns, len(utils.BuiltinPatterns())+1)
	_, ok := utils.FindPattern(patterns, "dot")
	assert.True(t, ok)
}

func TestLoadPatternLibrary_BadFile(t *testing.T) {
	_, err := loadPatternLibrary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
