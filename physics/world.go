package physics

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/garden/component"
	"github.com/milk9111/garden/levels"
)

// Shape categories used as chipmunk filter bits.
const (
	categoryStatic uint = 1 << iota
	categoryTrigger
	categoryEnemy
)

// lift applied to sweep origins so resting contacts are found at distance 0
const skin = 1.0

type colliderKind uint8

const (
	kindStatic colliderKind = iota
	kindTrigger
	kindEnemy
)

type collider struct {
	id      component.ColliderID
	kind    colliderKind
	shape   *cp.Shape
	enemy   *Enemy
	trigger *Trigger
}

func (c *collider) blocking() bool { return c.kind == kindStatic }

// ShapeRole names what a shape in a world space stands for: "static",
// "trigger" or "enemy". Shapes the world did not add report "".
func ShapeRole(shape *cp.Shape) string {
	c, ok := shape.UserData.(*collider)
	if !ok {
		return ""
	}
	switch c.kind {
	case kindTrigger:
		return "trigger"
	case kindEnemy:
		return "enemy"
	}
	return "static"
}

// World is a chipmunk space holding a level on the vertical X/Z slice. The
// controller's Y axis is ignored by every query.
type World struct {
	level *levels.Level
	space *cp.Space

	colliders map[component.ColliderID]*collider
	nextID    component.ColliderID

	enemies  []*Enemy
	triggers []*Trigger

	// OnDefeat is called once per defeated enemy.
	OnDefeat func(e *Enemy)
}

var ErrNoLevel = errors.New("physics: nil level")

// NewWorld builds the static geometry, triggers and enemies of a level.
func NewWorld(level *levels.Level) (*World, error) {
	if level == nil {
		return nil, ErrNoLevel
	}
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("physics: build %s: %w", level.Name, err)
	}

	space := cp.NewSpace()
	space.Iterations = 10

	w := &World{
		level:     level,
		space:     space,
		colliders: make(map[component.ColliderID]*collider),
	}
	w.buildStaticShapes()
	w.spawnTriggers()
	w.spawnEnemies()
	return w, nil
}

// Space returns the underlying chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Level returns the level the world was built from.
func (w *World) Level() *levels.Level {
	if w == nil {
		return nil
	}
	return w.level
}

// Spawn is the level spawn point at the given capsule half height.
func (w *World) Spawn(halfHeight float64) mgl64.Vec3 {
	return mgl64.Vec3{w.level.Spawn.X, 0, w.level.Spawn.Z + halfHeight}
}

func (w *World) buildStaticShapes() {
	for _, b := range w.level.Boxes {
		bb := cp.BB{
			L: b.Center.X - b.Width/2,
			B: b.Center.Z - b.Height/2,
			R: b.Center.X + b.Width/2,
			T: b.Center.Z + b.Height/2,
		}
		w.addShape(cp.NewBox2(w.space.StaticBody, bb, 0), kindStatic)
	}
	for _, s := range w.level.Segments {
		a := cp.Vector{X: s.A.X, Y: s.A.Z}
		b := cp.Vector{X: s.B.X, Y: s.B.Z}
		w.addShape(cp.NewSegment(w.space.StaticBody, a, b, s.Radius), kindStatic)
	}
}

func (w *World) addShape(shape *cp.Shape, kind colliderKind) *collider {
	w.nextID++
	c := &collider{id: w.nextID, kind: kind, shape: shape}

	category := categoryStatic
	switch kind {
	case kindTrigger:
		category = categoryTrigger
		shape.SetSensor(true)
	case kindEnemy:
		category = categoryEnemy
		shape.SetSensor(true)
	}
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: category, Mask: cp.ALL_CATEGORIES})
	shape.UserData = c

	w.space.AddShape(shape)
	w.colliders[c.id] = c
	return c
}

func (w *World) removeShape(c *collider) {
	if c == nil || c.shape == nil {
		return
	}
	w.space.RemoveShape(c.shape)
	delete(w.colliders, c.id)
	c.shape = nil
}

func queryFilter(mask uint) cp.ShapeFilter {
	return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: mask}
}

func toCP(v mgl64.Vec3) cp.Vector { return cp.Vector{X: v.X(), Y: v.Z()} }

func fromCP(v cp.Vector, y float64) mgl64.Vec3 { return mgl64.Vec3{v.X, y, v.Y} }

// unit normalizes v, falling back to up for degenerate gradients.
func unit(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return mgl64.Vec3{0, 0, 1}
	}
	return v.Mul(1 / l)
}

// Probe sweeps a circle straight down from origin and reports the nearest
// collider not listed in ignore. Triggers are reported as non-blocking.
func (w *World) Probe(origin mgl64.Vec3, radius, maxDistance float64, ignore []component.ColliderID) (component.Contact, bool) {
	if w == nil || maxDistance < 0 {
		return component.Contact{}, false
	}
	start := toCP(origin)
	start.Y += skin
	length := maxDistance + skin
	end := cp.Vector{X: start.X, Y: start.Y - length}

	best, info, ok := w.sweep(start, end, radius, categoryStatic|categoryTrigger, func(c *collider, _ cp.Vector) bool {
		return !ignored(ignore, c.id)
	})
	if !ok {
		return w.probeOverlap(origin, radius, ignore)
	}

	center := cp.Vector{X: start.X, Y: start.Y - length*info.Alpha}
	normal := unit(fromCP(info.Normal, 0))
	point := fromCP(center, origin.Y()).Sub(normal.Mul(radius))
	return component.Contact{
		Point:    point,
		Normal:   normal,
		Distance: math.Max(0, length*info.Alpha-skin),
		Collider: best.id,
		Blocking: best.blocking(),
	}, true
}

// sweep returns the earliest hit of a circle moving from a to b among the
// shapes in mask that accept allows. Candidates come from a bounding box
// query grown by radius so shapes beside the center line are not pruned.
func (w *World) sweep(a, b cp.Vector, radius float64, mask uint, accept func(c *collider, normal cp.Vector) bool) (*collider, cp.SegmentQueryInfo, bool) {
	bb := cp.BB{
		L: math.Min(a.X, b.X) - radius,
		B: math.Min(a.Y, b.Y) - radius,
		R: math.Max(a.X, b.X) + radius,
		T: math.Max(a.Y, b.Y) + radius,
	}

	var (
		best     *collider
		bestInfo cp.SegmentQueryInfo
	)
	bestInfo.Alpha = math.Inf(1)
	w.space.BBQuery(bb, queryFilter(mask), func(shape *cp.Shape, _ interface{}) {
		c, ok := shape.UserData.(*collider)
		if !ok {
			return
		}
		var info cp.SegmentQueryInfo
		if !shape.SegmentQuery(a, b, radius, &info) || info.Alpha >= bestInfo.Alpha {
			return
		}
		if accept != nil && !accept(c, info.Normal) {
			return
		}
		best, bestInfo = c, info
	}, nil)
	return best, bestInfo, best != nil
}

// probeOverlap covers origins already sunk into a collider deeper than skin.
func (w *World) probeOverlap(origin mgl64.Vec3, radius float64, ignore []component.ColliderID) (component.Contact, bool) {
	var (
		best     *collider
		bestDist = math.Inf(1)
		contact  component.Contact
	)
	w.pointQuery(toCP(origin), radius, categoryStatic|categoryTrigger, func(c *collider, info cp.PointQueryInfo) {
		if ignored(ignore, c.id) || info.Distance >= bestDist {
			return
		}
		best, bestDist = c, info.Distance
		contact = component.Contact{
			Point:    fromCP(info.Point, origin.Y()),
			Normal:   unit(fromCP(info.Gradient, 0)),
			Collider: c.id,
			Blocking: c.blocking(),
		}
	})
	return contact, best != nil
}

// SphereOverlap returns every collider within radius of center. Static
// geometry and triggers answer FilterStatic, enemies answer FilterDynamic.
// Contact normals point from the collider toward center.
func (w *World) SphereOverlap(center mgl64.Vec3, radius float64, filter component.ObjectFilter) []component.Contact {
	if w == nil || radius <= 0 {
		return nil
	}
	var mask uint
	if filter&component.FilterStatic != 0 {
		mask |= categoryStatic | categoryTrigger
	}
	if filter&component.FilterDynamic != 0 {
		mask |= categoryEnemy
	}
	if mask == 0 {
		return nil
	}

	var out []component.Contact
	w.pointQuery(toCP(center), radius, mask, func(c *collider, info cp.PointQueryInfo) {
		contact := component.Contact{
			Point:    fromCP(info.Point, center.Y()),
			Normal:   unit(fromCP(info.Gradient, 0)),
			Distance: math.Max(0, info.Distance),
			Collider: c.id,
			Blocking: c.blocking(),
		}
		if c.enemy != nil && !c.enemy.Defeated() {
			contact.Enemy = c.enemy
		}
		out = append(out, contact)
	})
	return out
}

// pointQuery calls fn for every collider in mask whose surface lies within
// maxDistance of p. Shapes containing p report a negative distance.
func (w *World) pointQuery(p cp.Vector, maxDistance float64, mask uint, fn func(c *collider, info cp.PointQueryInfo)) {
	bb := cp.BB{L: p.X - maxDistance, B: p.Y - maxDistance, R: p.X + maxDistance, T: p.Y + maxDistance}
	w.space.BBQuery(bb, queryFilter(mask), func(shape *cp.Shape, _ interface{}) {
		c, ok := shape.UserData.(*collider)
		if !ok {
			return
		}
		info := shape.PointQuery(p)
		if info.Distance > maxDistance {
			return
		}
		fn(c, info)
	}, nil)
}

func ignored(ids []component.ColliderID, id component.ColliderID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (w *World) logf(format string, args ...any) {
	log.Printf("physics: "+format, args...)
}
