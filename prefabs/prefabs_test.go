package prefabs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/garden/component"
	"github.com/milk9111/garden/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCharacters(t *testing.T) {
	for _, name := range []string{"character.yaml", "sprinter.yaml", "prefabs/character.yaml"} {
		t.Run(name, func(t *testing.T) {
			stats, err := LoadCharacter(name)
			require.NoError(t, err)
			require.NoError(t, stats.Validate())
			assert.Greater(t, stats.BaseMoveSpeed, 0.0)
		})
	}
}

func TestCharacterSpecFields(t *testing.T) {
	stats, err := LoadCharacter("character.yaml")
	require.NoError(t, err)

	assert.Equal(t, 90.0, stats.CapsuleHalfHeight)
	assert.Equal(t, 0.15, stats.CoyoteTime)
	assert.Equal(t, 0.35, stats.DodgeSpeed)
	assert.Equal(t, 0.6, stats.WallBounceSpeedReductionFactor)
	assert.Equal(t, 5.0, stats.StartingHealth)

	assert.InDelta(t, 0.125, stats.AttackSpinUpCurve.Eval(0.25), 1e-9)
	assert.InDelta(t, 0.875, stats.AttackSpinUpCurve.Eval(0.75), 1e-9)
	assert.Equal(t, 1.0, curve.Alpha(stats.DodgeSpeedCurve, 2))
}

func TestBuildCurve(t *testing.T) {
	cases := []struct {
		name    string
		spec    CurveSpec
		at      float64
		want    float64
		wantErr error
	}{
		{"linear", CurveSpec{Linear: true}, 0.3, 0.3, nil},
		{"keys", CurveSpec{Keys: [][2]float64{{0, 0}, {1, 2}}}, 0.5, 1, nil},
		{"script", CurveSpec{Script: "dodge_burst.tengo"}, 0.5, 0.875, nil},
		{"none", CurveSpec{}, 0, 0, ErrUnknownCurve},
		{"ambiguous", CurveSpec{Linear: true, Script: "spin_up.tengo"}, 0, 0, ErrUnknownCurve},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := BuildCurve(c.spec)
			if c.wantErr != nil {
				require.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, c.want, got.Eval(c.at), 1e-9)
		})
	}
}

func TestBuildCurveMissingScript(t *testing.T) {
	_, err := BuildCurve(CurveSpec{Script: "nope.tengo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.tengo")
}

func TestBuildStatsRejectsIncompleteSpec(t *testing.T) {
	spec, err := LoadCharacterSpec("character.yaml")
	require.NoError(t, err)
	spec.Jumping.Force = 0

	_, err = BuildStats(spec)
	require.ErrorIs(t, err, component.ErrInvalidStats)
	assert.Contains(t, err.Error(), "jump_force")
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	spec, err := Load("character.yaml")
	require.NoError(t, err)
	patched := bytes.Replace(spec, []byte("name: gardener"), []byte("name: patched"), 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "character.yaml"), patched, 0o644))

	got, err := LoadCharacterSpec("character.yaml")
	require.NoError(t, err)
	assert.Equal(t, "patched", got.Name)

	_, ok := ModTime("character.yaml")
	assert.True(t, ok)
	_, ok = ModTime("sprinter.yaml")
	assert.False(t, ok)
}

func TestScriptPaths(t *testing.T) {
	for _, in := range []string{"spin_up.tengo", "scripts/spin_up.tengo", "prefabs/scripts/spin_up.tengo"} {
		assert.Equal(t, "scripts/spin_up.tengo", cleanScriptPath(in), in)
	}
}

func TestClassify(t *testing.T) {
	cases := map[string]struct {
		kind ChangeKind
		ok   bool
	}{
		"prefabs/character.yaml":    {ChangeSpec, true},
		"levels/garden.YML":         {ChangeSpec, true},
		"prefabs/scripts/a.tengo":   {ChangeScript, true},
		"prefabs/character.yaml~":   {0, false},
		"prefabs/scripts/notes.txt": {0, false},
	}
	for path, want := range cases {
		kind, ok := classify(path)
		assert.Equal(t, want.ok, ok, path)
		if ok {
			assert.Equal(t, want.kind, kind, path)
		}
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "character.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: a\n"), 0o644))

	select {
	case change := <-w.Events:
		assert.Equal(t, path, change.Path)
		assert.Equal(t, ChangeSpec, change.Kind)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
}
