package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/wrapbox/level"
)

func TestRunScriptDefaultLevel(t *testing.T) {
	var out bytes.Buffer
	// Idle lets the funnel carry the first player right, then both players step left
	err := runScript(&out, level.Default(), ".L", zap.NewNop())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "1 funnel 5 6", lines[0])
	assert.Equal(t, "4 player 5 5", lines[3])
	assert.Equal(t, "5 player 9 0", lines[4])
	assert.Equal(t, "6 wall 3 6", lines[5])
	assert.Equal(t, "7 box 4 6", lines[6])
}

func TestRunScriptUndoRestores(t *testing.T) {
	var before, after bytes.Buffer
	require.NoError(t, runScript(&before, level.Default(), "", zap.NewNop()))
	require.NoError(t, runScript(&after, level.Default(), "Lu", zap.NewNop()))
	assert.Equal(t, before.String(), after.String())
}

func TestRunScriptRejectsBadInput(t *testing.T) {
	var out bytes.Buffer
	err := runScript(&out, level.Default(), "LZ", zap.NewNop())
	assert.ErrorContains(t, err, "unexpected")
	assert.Empty(t, out.String())
}

func TestLoadLevel(t *testing.T) {
	lvl, err := loadLevel("")
	require.NoError(t, err)
	assert.Equal(t, 10, lvl.Width)

	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 2\nheight: 1\nentities:\n  - {kind: box, x: 1, y: 0}\n"), 0o644))
	lvl, err = loadLevel(path)
	require.NoError(t, err)
	assert.Len(t, lvl.Entities, 1)

	_, err = loadLevel(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
