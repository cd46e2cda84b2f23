package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/garden/component"
)

const (
	maxSlides = 3
	// fraction of a sweep kept back from the hit so the next sweep starts clear
	contactBackoff = 1e-3
)

// Body is a vertical capsule moved by sweeping its end circles through the
// world's static geometry. Triggers and enemies never block it.
type Body struct {
	Pos mgl64.Vec3
	Vel mgl64.Vec3

	HalfHeight float64
	Radius     float64

	world *World
}

var _ component.Body = (*Body)(nil)

func (w *World) NewBody(pos mgl64.Vec3, halfHeight, radius float64) *Body {
	return &Body{Pos: pos, HalfHeight: halfHeight, Radius: radius, world: w}
}

func (b *Body) Position() mgl64.Vec3     { return b.Pos }
func (b *Body) SetPosition(p mgl64.Vec3) { b.Pos = p }
func (b *Body) Velocity() mgl64.Vec3     { return b.Vel }
func (b *Body) SetVelocity(v mgl64.Vec3) { b.Vel = v }

// Step moves the body by Vel*dt, sliding along blocking surfaces. Velocity
// into a surface it hits is removed.
func (b *Body) Step(dt float64) {
	if dt <= 0 {
		return
	}
	delta := b.Vel.Mul(dt)
	// the slice has no Y collision
	b.Pos[1] += delta.Y()
	delta[1] = 0

	for i := 0; i < maxSlides && delta.Len() > 1e-9; i++ {
		alpha, normal, hit := b.sweep(delta)
		if !hit {
			b.Pos = b.Pos.Add(delta)
			return
		}
		travel := math.Max(0, alpha-contactBackoff)
		b.Pos = b.Pos.Add(delta.Mul(travel))

		rest := delta.Mul(1 - travel)
		delta = rest.Sub(normal.Mul(rest.Dot(normal)))
		if into := b.Vel.Dot(normal); into < 0 {
			b.Vel = b.Vel.Sub(normal.Mul(into))
		}
	}
}

// sweep finds the earliest blocking hit of either capsule end circle moving
// by delta. Surfaces the motion runs along or away from are ignored.
func (b *Body) sweep(delta mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	inner := math.Max(0, b.HalfHeight-b.Radius)
	ends := [2]mgl64.Vec3{
		b.Pos.Sub(mgl64.Vec3{0, 0, inner}),
		b.Pos.Add(mgl64.Vec3{0, 0, inner}),
	}

	var (
		best   = math.Inf(1)
		normal mgl64.Vec3
	)
	for _, end := range ends {
		_, info, ok := b.world.sweep(toCP(end), toCP(end.Add(delta)), b.Radius, categoryStatic, func(_ *collider, n cp.Vector) bool {
			return fromCP(n, 0).Dot(delta) < 0
		})
		if ok && info.Alpha < best {
			best, normal = info.Alpha, unit(fromCP(info.Normal, 0))
		}
	}
	if math.IsInf(best, 1) {
		return 0, mgl64.Vec3{}, false
	}
	return best, normal, true
}
