package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/garden/component"
	"github.com/milk9111/garden/levels"
	"github.com/milk9111/garden/physics"
	"github.com/milk9111/garden/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunPrintsTrace(t *testing.T) {
	out, err := execute(t, "run", "timelines/jump_attack.yaml", "-n", "60")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// frames 1, 61 and 121 plus the summary
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "t="), lines[0])
	assert.Contains(t, lines[3], "jump_attack: 180 frames")
}

func TestRunEventsOnly(t *testing.T) {
	out, err := execute(t, "run", "timelines/jump_attack.yaml", "--events")
	require.NoError(t, err)
	assert.Contains(t, out, "[state_changed grounded->jumping]")
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.HasPrefix(line, "t=") {
			assert.Contains(t, line, "[", line)
		}
	}
}

func TestRunCharacterOverride(t *testing.T) {
	_, err := execute(t, "run", "timelines/jump_attack.yaml", "-c", "missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t, "run")
	require.Error(t, err)

	_, err = execute(t, "run", "timelines/nope.yaml")
	require.Error(t, err)
}

func TestWatchDirs(t *testing.T) {
	prevPrefabs, prevLevels := prefabs.Dir, levels.Dir
	t.Cleanup(func() { prefabs.Dir, levels.Dir = prevPrefabs, prevLevels })

	dir := t.TempDir()
	prefabs.Dir = filepath.Join(dir, "prefabs")
	levels.Dir = filepath.Join(dir, "levels")
	require.NoError(t, os.MkdirAll(filepath.Join(prefabs.Dir, "scripts"), 0o755))

	assert.Equal(t, []string{prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")}, watchDirs())
}

func TestKey(t *testing.T) {
	assert.Equal(t, 'q', key(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.Equal(t, ' ', key(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.Equal(t, rune(0), key(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
}

func TestRasterize(t *testing.T) {
	lvl := &levels.Level{
		Boxes: []levels.Box{{Center: levels.Vec2{X: 0, Z: -50}, Width: 4000, Height: 100}},
		Triggers: []levels.Trigger{{
			Kind: levels.TriggerUpdraft, Center: levels.Vec2{X: -300, Z: 200}, Width: 100, Height: 400,
		}},
	}
	v := viewport{w: 40, h: 20, unitsX: 25, unitsZ: 50, center: mgl64.Vec3{0, 0, 90}}
	grid := rasterize(scene{
		level:      lvl,
		effects:    []*physics.Effect{{Kind: component.EffectCheerItem, Pos: mgl64.Vec3{200, 0, 190}}},
		pos:        mgl64.Vec3{0, 0, 90},
		halfHeight: 90,
		radius:     30,
	}, v)
	rows := lines(grid)
	require.Len(t, rows, 20)

	assert.Equal(t, '@', grid[9][20].r)
	assert.Equal(t, '#', grid[12][20].r)
	assert.Equal(t, '#', grid[12][0].r)
	assert.Equal(t, ' ', grid[2][39].r)

	col, row, ok := v.cell(-300, 200)
	require.True(t, ok)
	assert.Equal(t, '^', grid[row][col].r)

	col, row, ok = v.cell(200, 190)
	require.True(t, ok)
	assert.Equal(t, '!', grid[row][col].r)

	_, _, ok = v.cell(5000, 90)
	assert.False(t, ok)
}

func TestSegmentDistance(t *testing.T) {
	a, b := levels.Vec2{X: 0, Z: 0}, levels.Vec2{X: 10, Z: 0}
	assert.InDelta(t, 3, segmentDistance(5, 3, a, b), 1e-9)
	assert.InDelta(t, 5, segmentDistance(-3, 4, a, b), 1e-9)
}
