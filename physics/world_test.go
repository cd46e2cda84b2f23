package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/garden/component"
	"github.com/milk9111/garden/levels"
	"github.com/milk9111/garden/prefabs"
	"github.com/milk9111/garden/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLevel has ground with its top at z=0, a wall spanning x 500..600, an
// updraft spanning x -600..-400 and one enemy.
func testLevel() *levels.Level {
	return &levels.Level{
		Name:  "test",
		KillZ: -500,
		Boxes: []levels.Box{
			{Center: levels.Vec2{X: 0, Z: -50}, Width: 2000, Height: 100},
			{Center: levels.Vec2{X: 550, Z: 200}, Width: 100, Height: 400},
		},
		Triggers: []levels.Trigger{{
			Name:   "lift",
			Kind:   levels.TriggerUpdraft,
			Center: levels.Vec2{X: -500, Z: 200},
			Width:  200,
			Height: 400,
			Boost:  levels.Vec2{Z: 1},
		}},
		Enemies: []levels.Enemy{{
			Name:     "aphid",
			Position: levels.Vec2{X: -200, Z: 50},
			Radius:   40,
			Damage:   1,
		}},
	}
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(testLevel())
	require.NoError(t, err)
	return w
}

func assertVec(t *testing.T, want, got mgl64.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "axis %d of %v", i, got)
	}
}

func TestNewWorldRejectsBadLevels(t *testing.T) {
	_, err := NewWorld(nil)
	require.ErrorIs(t, err, ErrNoLevel)

	_, err = NewWorld(&levels.Level{Boxes: []levels.Box{{Width: 1}}})
	require.ErrorIs(t, err, levels.ErrInvalidLevel)
}

func TestProbeFlatGround(t *testing.T) {
	w := newTestWorld(t)

	contact, ok := w.Probe(mgl64.Vec3{0, 5, 60}, 30, 50, nil)
	require.True(t, ok)
	assert.True(t, contact.Blocking)
	assert.InDelta(t, 30, contact.Distance, 1e-6)
	assertVec(t, mgl64.Vec3{0, 0, 1}, contact.Normal, 1e-9)
	assertVec(t, mgl64.Vec3{0, 5, 0}, contact.Point, 1e-6)
}

func TestProbeMisses(t *testing.T) {
	w := newTestWorld(t)

	cases := []struct {
		name   string
		origin mgl64.Vec3
		ignore bool
	}{
		{"out_of_range", mgl64.Vec3{0, 0, 200}, false},
		{"past_the_edge", mgl64.Vec3{1500, 0, 60}, false},
		{"ignored", mgl64.Vec3{0, 0, 60}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var ignore []component.ColliderID
			if c.ignore {
				ground, ok := w.Probe(c.origin, 30, 50, nil)
				require.True(t, ok)
				ignore = append(ignore, ground.Collider)
			}
			_, ok := w.Probe(c.origin, 30, 50, ignore)
			assert.False(t, ok)
		})
	}
}

func TestProbeReportsTriggersAsNonBlocking(t *testing.T) {
	w := newTestWorld(t)
	origin := mgl64.Vec3{-500, 0, 60}

	first, ok := w.Probe(origin, 30, 50, nil)
	require.True(t, ok)
	assert.False(t, first.Blocking)
	assert.Equal(t, w.Triggers()[0].ID, first.Collider)

	second, ok := w.Probe(origin, 30, 50, []component.ColliderID{first.Collider})
	require.True(t, ok)
	assert.True(t, second.Blocking)
	assert.InDelta(t, 30, second.Distance, 1e-6)
}

func TestSphereOverlapWall(t *testing.T) {
	w := newTestWorld(t)

	contacts := w.SphereOverlap(mgl64.Vec3{460, 0, 100}, 50, component.FilterStatic)
	require.Len(t, contacts, 1)
	assert.True(t, contacts[0].Blocking)
	assert.InDelta(t, 40, contacts[0].Distance, 1e-6)
	assertVec(t, mgl64.Vec3{-1, 0, 0}, contacts[0].Normal, 1e-9)

	assert.Empty(t, w.SphereOverlap(mgl64.Vec3{460, 0, 100}, 50, component.FilterDynamic))
	assert.Empty(t, w.SphereOverlap(mgl64.Vec3{460, 0, 100}, 50, 0))
}

func TestPointQueryDistances(t *testing.T) {
	w := newTestWorld(t)

	cases := []struct {
		name  string
		point cp.Vector
		mask  uint
		want  []float64
	}{
		{"beside_wall", cp.Vector{X: 460, Y: 100}, categoryStatic, []float64{40}},
		{"inside_wall", cp.Vector{X: 550, Y: 200}, categoryStatic, []float64{-50}},
		{"open_air", cp.Vector{X: 300, Y: 300}, categoryStatic, nil},
		{"above_enemy", cp.Vector{X: -200, Y: 100}, categoryEnemy, []float64{10}},
		{"enemy_masked_out", cp.Vector{X: -200, Y: 100}, categoryStatic, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got []float64
			w.pointQuery(c.point, 50, c.mask, func(_ *collider, info cp.PointQueryInfo) {
				got = append(got, info.Distance)
			})
			require.Len(t, got, len(c.want))
			for i := range c.want {
				assert.InDelta(t, c.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestEnemyDefeat(t *testing.T) {
	w := newTestWorld(t)
	var defeated []string
	w.OnDefeat = func(e *Enemy) { defeated = append(defeated, e.Name) }

	center := mgl64.Vec3{-200, 0, 100}
	contacts := w.SphereOverlap(center, 50, component.FilterDynamic)
	require.Len(t, contacts, 1)
	enemy, ok := contacts[0].AsEnemy()
	require.True(t, ok)
	assert.Len(t, w.EnemiesTouching(center, 50), 1)

	enemy.Defeat()
	enemy.Defeat()

	assert.Equal(t, []string{"aphid"}, defeated)
	assert.True(t, w.Enemies()[0].Defeated())
	assert.Empty(t, w.SphereOverlap(center, 50, component.FilterDynamic))
	assert.Empty(t, w.EnemiesTouching(center, 50))
}

func TestTriggersAt(t *testing.T) {
	w := newTestWorld(t)

	got := w.TriggersAt(mgl64.Vec3{-500, 0, 100}, 30)
	require.Len(t, got, 1)
	assert.Equal(t, "lift", got[0].Name)
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, got[0].BoostDir())

	assert.Empty(t, w.TriggersAt(mgl64.Vec3{0, 0, 100}, 30))
}

func TestBelowKillZ(t *testing.T) {
	w := newTestWorld(t)
	assert.True(t, w.BelowKillZ(mgl64.Vec3{0, 0, -501}))
	assert.False(t, w.BelowKillZ(mgl64.Vec3{0, 0, -499}))
}

func TestBodyLandsOnGround(t *testing.T) {
	w := newTestWorld(t)
	body := w.NewBody(mgl64.Vec3{0, 0, 200}, 90, 30)
	body.SetVelocity(mgl64.Vec3{0, 0, -600})

	for range 60 {
		body.Step(1.0 / 60)
	}
	assert.InDelta(t, 90, body.Position().Z(), 0.1)
	assert.GreaterOrEqual(t, body.Position().Z(), 89.99)
	assert.InDelta(t, 0, body.Velocity().Z(), 1e-9)
}

func TestBodyStopsAtWall(t *testing.T) {
	w := newTestWorld(t)
	body := w.NewBody(mgl64.Vec3{400, 0, 300}, 90, 30)
	body.SetVelocity(mgl64.Vec3{600, 60, 0})

	for range 30 {
		body.Step(1.0 / 60)
	}
	assert.InDelta(t, 470, body.Position().X(), 0.1)
	assert.InDelta(t, 30, body.Position().Y(), 1e-6)
	assert.InDelta(t, 0, body.Velocity().X(), 1e-9)
	assert.Equal(t, 60.0, body.Velocity().Y())
}

func TestBodySlidesAlongWall(t *testing.T) {
	w := newTestWorld(t)
	body := w.NewBody(mgl64.Vec3{460, 0, 200}, 90, 30)
	body.SetVelocity(mgl64.Vec3{600, 0, 300})

	body.Step(0.1)
	assert.InDelta(t, 470, body.Position().X(), 0.1)
	assert.Greater(t, body.Position().Z(), 200.0)
}

func TestEffects(t *testing.T) {
	fx := NewEffects()
	a := fx.Spawn(component.EffectThrowTarget, mgl64.Vec3{1, 0, 0}, 0)
	b := fx.Spawn(component.EffectCheerItem, mgl64.Vec3{2, 0, 0}, 90)
	fx.Move(a, mgl64.Vec3{5, 0, 0})
	fx.Move(99, mgl64.Vec3{})

	live := fx.Live()
	require.Len(t, live, 2)
	assert.Equal(t, mgl64.Vec3{5, 0, 0}, live[0].Pos)
	assert.Equal(t, component.EffectCheerItem, live[1].Kind)

	fx.Destroy(b)
	assert.Len(t, fx.Live(), 1)
}

func TestClock(t *testing.T) {
	c := NewClock()
	assert.Equal(t, 0.5, c.Scale(0.5))
	c.SetTimeDilation(0.25)
	assert.Equal(t, 0.125, c.Scale(0.5))
	c.SetTimeDilation(-1)
	assert.Equal(t, 0.0, c.Factor())
}

func TestCharacterLandsInGarden(t *testing.T) {
	lvl, err := levels.LoadLevel("garden.yaml")
	require.NoError(t, err)
	w, err := NewWorld(lvl)
	require.NoError(t, err)
	stats, err := prefabs.LoadCharacter("character.yaml")
	require.NoError(t, err)

	spawn := w.Spawn(stats.CapsuleHalfHeight)
	body := w.NewBody(spawn.Add(mgl64.Vec3{0, 0, 200}), stats.CapsuleHalfHeight, stats.CapsuleRadius)
	c, err := system.NewCharacter(stats, body, system.Collaborators{Ground: w, Overlap: w})
	require.NoError(t, err)

	dt := 1.0 / 60
	c.Tick(dt)
	require.Equal(t, component.StateFalling, c.State())
	for range 120 {
		c.Tick(dt)
		body.Step(dt)
	}
	assert.Equal(t, component.StateGrounded, c.State())
	assert.InDelta(t, spawn.Z(), body.Position().Z(), 1)
}

func TestShapeRole(t *testing.T) {
	w := newTestWorld(t)

	roles := map[string]int{}
	w.Space().EachShape(func(shape *cp.Shape) {
		roles[ShapeRole(shape)]++
	})
	assert.Equal(t, map[string]int{"static": 2, "trigger": 1, "enemy": 1}, roles)
	assert.Equal(t, "", ShapeRole(cp.NewCircle(w.Space().StaticBody, 1, cp.Vector{})))
}
