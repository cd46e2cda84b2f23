package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/garden/component"
	"github.com/milk9111/garden/levels"
)

// Enemy is a defeatable circle sensor. Defeat removes it from the space.
type Enemy struct {
	Name   string
	Damage float64

	world    *World
	col      *collider
	id       component.ColliderID
	pos      mgl64.Vec3
	radius   float64
	defeated bool
}

func (e *Enemy) Defeat() {
	if e == nil || e.defeated {
		return
	}
	e.defeated = true
	e.world.removeShape(e.col)
	e.world.logf("enemy %s defeated", e.Name)
	if e.world.OnDefeat != nil {
		e.world.OnDefeat(e)
	}
}

func (e *Enemy) Defeated() bool           { return e == nil || e.defeated }
func (e *Enemy) Position() mgl64.Vec3     { return e.pos }
func (e *Enemy) Radius() float64          { return e.radius }
func (e *Enemy) ID() component.ColliderID { return e.id }

// Trigger is a sensor box hosts react to.
type Trigger struct {
	levels.Trigger
	ID component.ColliderID
}

// BoostDir is the updraft push on the X/Z slice.
func (t *Trigger) BoostDir() mgl64.Vec3 {
	return mgl64.Vec3{t.Boost.X, 0, t.Boost.Z}
}

func (w *World) spawnTriggers() {
	for _, lt := range w.level.Triggers {
		bb := cp.BB{
			L: lt.Center.X - lt.Width/2,
			B: lt.Center.Z - lt.Height/2,
			R: lt.Center.X + lt.Width/2,
			T: lt.Center.Z + lt.Height/2,
		}
		c := w.addShape(cp.NewBox2(w.space.StaticBody, bb, 0), kindTrigger)
		t := &Trigger{Trigger: lt, ID: c.id}
		c.trigger = t
		w.triggers = append(w.triggers, t)
	}
}

func (w *World) spawnEnemies() {
	for _, le := range w.level.Enemies {
		offset := cp.Vector{X: le.Position.X, Y: le.Position.Z}
		c := w.addShape(cp.NewCircle(w.space.StaticBody, le.Radius, offset), kindEnemy)
		e := &Enemy{
			Name:   le.Name,
			Damage: le.Damage,
			world:  w,
			col:    c,
			id:     c.id,
			pos:    mgl64.Vec3{le.Position.X, 0, le.Position.Z},
			radius: le.Radius,
		}
		c.enemy = e
		w.enemies = append(w.enemies, e)
	}
}

// Enemies returns every enemy, defeated or not.
func (w *World) Enemies() []*Enemy { return w.enemies }

// Triggers returns every trigger volume.
func (w *World) Triggers() []*Trigger { return w.triggers }

// TriggersAt returns the triggers a sphere at center touches.
func (w *World) TriggersAt(center mgl64.Vec3, radius float64) []*Trigger {
	var out []*Trigger
	for _, contact := range w.SphereOverlap(center, radius, component.FilterStatic) {
		if c, ok := w.colliders[contact.Collider]; ok && c.trigger != nil {
			out = append(out, c.trigger)
		}
	}
	return out
}

// EnemiesTouching returns the live enemies a sphere at center touches.
func (w *World) EnemiesTouching(center mgl64.Vec3, radius float64) []*Enemy {
	var out []*Enemy
	for _, contact := range w.SphereOverlap(center, radius, component.FilterDynamic) {
		if c, ok := w.colliders[contact.Collider]; ok && c.enemy != nil && !c.enemy.Defeated() {
			out = append(out, c.enemy)
		}
	}
	return out
}

// BelowKillZ reports whether p has fallen out of the level.
func (w *World) BelowKillZ(p mgl64.Vec3) bool {
	return w.level.KillZ != 0 && p.Z() < w.level.KillZ
}
