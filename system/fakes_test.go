package system

import (
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/garden/common"
	"github.com/milk9111/garden/component"
	"github.com/milk9111/garden/curve"
	"github.com/stretchr/testify/require"
)

const (
	groundID component.ColliderID = 1
	selfID   component.ColliderID = 99
)

// flatGround is an infinite plane at height with a fixed normal.
type flatGround struct {
	height  float64
	normal  mgl64.Vec3
	missing bool
	// passThrough contacts are reported before the plane unless ignored.
	passThrough []component.Contact
	// endless keeps returning fresh non-blocking colliders.
	endless bool

	calls      int
	lastIgnore []component.ColliderID
}

func (g *flatGround) Probe(origin mgl64.Vec3, radius, maxDistance float64, ignore []component.ColliderID) (component.Contact, bool) {
	g.calls++
	g.lastIgnore = slices.Clone(ignore)

	if g.endless {
		return component.Contact{Collider: component.ColliderID(1000 + g.calls), Normal: common.Up}, true
	}
	for _, c := range g.passThrough {
		if !slices.Contains(ignore, c.Collider) {
			return c, true
		}
	}
	if g.missing {
		return component.Contact{}, false
	}

	dist := origin.Z() - radius - g.height
	if dist < 0 {
		dist = 0
	}
	if dist > maxDistance {
		return component.Contact{}, false
	}
	normal := g.normal
	if normal.Len() == 0 {
		normal = common.Up
	}
	return component.Contact{
		Point:    mgl64.Vec3{origin.X(), origin.Y(), g.height},
		Normal:   normal,
		Distance: dist,
		Collider: groundID,
		Blocking: true,
	}, true
}

type overlapEntry struct {
	contact component.Contact
	class   component.ObjectFilter
}

type fakeOverlap struct {
	entries []overlapEntry
	queries int
}

func (o *fakeOverlap) add(c component.Contact, class component.ObjectFilter) {
	o.entries = append(o.entries, overlapEntry{contact: c, class: class})
}

func (o *fakeOverlap) SphereOverlap(center mgl64.Vec3, radius float64, filter component.ObjectFilter) []component.Contact {
	o.queries++
	var out []component.Contact
	for _, e := range o.entries {
		if e.class&filter != 0 {
			out = append(out, e.contact)
		}
	}
	return out
}

type fakeEnemy struct {
	defeats int
}

func (e *fakeEnemy) Defeat() { e.defeats++ }

type spawnRecord struct {
	kind   component.EffectKind
	pos    mgl64.Vec3
	handle component.EffectHandle
}

type fakeSpawner struct {
	next      component.EffectHandle
	spawned   []spawnRecord
	moves     int
	destroyed []component.EffectHandle
}

func (s *fakeSpawner) Spawn(kind component.EffectKind, pos mgl64.Vec3, yaw float64) component.EffectHandle {
	s.next++
	s.spawned = append(s.spawned, spawnRecord{kind: kind, pos: pos, handle: s.next})
	return s.next
}

func (s *fakeSpawner) Move(component.EffectHandle, mgl64.Vec3) { s.moves++ }

func (s *fakeSpawner) Destroy(h component.EffectHandle) {
	s.destroyed = append(s.destroyed, h)
}

type fakeTime struct {
	factors []float64
}

func (f *fakeTime) SetTimeDilation(factor float64) { f.factors = append(f.factors, factor) }

type fakeCamera struct {
	focused  int
	returned []float64
}

func (f *fakeCamera) Focus(mgl64.Vec3, mgl64.Vec3, float64) { f.focused++ }
func (f *fakeCamera) ReturnToPlayer(blend float64)          { f.returned = append(f.returned, blend) }

type harness struct {
	c       *Character
	body    *component.KinematicBody
	ground  *flatGround
	overlap *fakeOverlap
	spawner *fakeSpawner
	time    *fakeTime
	camera  *fakeCamera
}

func testStats() *component.CharacterStats {
	return &component.CharacterStats{
		CapsuleHalfHeight:              90,
		CapsuleRadius:                  30,
		BaseMoveSpeed:                  600,
		BaseMoveAcceleration:           3000,
		BaseMoveDeceleration:           4000,
		MaxGroundSlopeAngle:            45,
		GroundingDistance:              20,
		CameraVerticalSensitivity:      90,
		CameraHorizontalSensitivity:    90,
		FallAcceleration:               2000,
		MaxFallSpeed:                   1500,
		JumpForce:                      700,
		MinJumpHoldTime:                0.1,
		MaxJumpHoldTime:                0.3,
		FallHorizontalAcceleration:     1500,
		FallHorizontalDeceleration:     1000,
		JumpBufferWindow:               0.2,
		CoyoteTime:                     0.15,
		MaxGlideFallSpeed:              200,
		GlideHorizontalAcceleration:    1000,
		GlideHorizontalDeceleration:    500,
		GlideMoveSpeed:                 700,
		BoostAcceleration:              3000,
		MaxGlideBoostSpeed:             1200,
		DodgeDistance:                  400,
		DodgeSpeed:                     0.4,
		DodgeSpeedCurve:                curve.Linear{},
		PerfectDodgeWindow:             0.25,
		DodgeSlowSpinFactor:            0.5,
		PerfectDodgeSlowMotionFactor:   0.3,
		AttackRange:                    200,
		AttackSpinUpCurve:              curve.Linear{},
		SpinUpTime:                     1,
		AttackingMoveAcceleration:      2000,
		AttackingMoveDeceleration:      2000,
		AttackingMoveSpeed:             300,
		WallBounceCheckDistance:        100,
		WallBounceForce:                500,
		WallBounceAngle:                45,
		WallBounceSpeedReductionFactor: 0.5,
		MaxRotationSpeed:               1080,
		StartingHealth:                 5,
		StunTime:                       0.5,
		PlantingThrowRange:             300,
		CheeringDuration:               1,
	}
}

func newHarness(t *testing.T, mutate func(s *component.CharacterStats)) *harness {
	t.Helper()
	stats := testStats()
	if mutate != nil {
		mutate(stats)
	}
	h := &harness{
		body:    &component.KinematicBody{Pos: mgl64.Vec3{0, 0, 90}},
		ground:  &flatGround{},
		overlap: &fakeOverlap{},
		spawner: &fakeSpawner{},
		time:    &fakeTime{},
		camera:  &fakeCamera{},
	}
	c, err := NewCharacter(stats, h.body, Collaborators{
		Ground:  h.ground,
		Overlap: h.overlap,
		Spawner: h.spawner,
		Time:    h.time,
		Camera:  h.camera,
		Self:    selfID,
	})
	require.NoError(t, err)
	c.Events().Drain()
	h.c = c
	return h
}

// fall lifts the ground away and ticks once so the character is Falling.
func (h *harness) fall(t *testing.T) {
	t.Helper()
	h.ground.missing = true
	h.c.Tick(1.0 / 60)
	require.Equal(t, component.StateFalling, h.c.State())
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
