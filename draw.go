package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/garden/component"
	"github.com/milk9111/garden/physics"
	"github.com/milk9111/garden/sim"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

var (
	backgroundColor = color.NRGBA{R: 0x1c, G: 0x24, B: 0x1c, A: 0xff}
	characterColor  = color.NRGBA{R: 0xf0, G: 0xe0, B: 0x90, A: 0xff}
	attackColor     = color.NRGBA{R: 0xff, G: 0x60, B: 0x40, A: 0xff}
	effectColor     = color.NRGBA{R: 0x90, G: 0xc0, B: 0xff, A: 0xff}
)

// drawWorld renders the level shapes through chipmunk's debug drawer, then
// the character capsule and live effects on top.
func drawWorld(screen *ebiten.Image, s *sim.Session, cam *sandboxCamera) {
	screen.Fill(backgroundColor)

	drawer := &physicsDebugDrawer{screen: screen, cam: cam}
	cp.DrawSpace(s.World.Space(), drawer)

	c := s.Character
	col := characterColor
	if c.State() == component.StateAttacking {
		col = attackColor
	}
	pos := s.Body.Position()
	inner := math.Max(0, s.Body.HalfHeight-s.Body.Radius)
	bottom := cp.Vector{X: pos.X(), Y: pos.Z() - inner}
	top := cp.Vector{X: pos.X(), Y: pos.Z() + inner}
	drawer.drawCircle(bottom, s.Body.Radius, col)
	drawer.drawCircle(top, s.Body.Radius, col)
	drawer.drawLine(cp.Vector{X: bottom.X - s.Body.Radius, Y: bottom.Y}, cp.Vector{X: top.X - s.Body.Radius, Y: top.Y}, col)
	drawer.drawLine(cp.Vector{X: bottom.X + s.Body.Radius, Y: bottom.Y}, cp.Vector{X: top.X + s.Body.Radius, Y: top.Y}, col)

	facing := c.FacingForward().Mul(s.Body.Radius * 1.5)
	drawer.drawLine(cp.Vector{X: pos.X(), Y: pos.Z()}, cp.Vector{X: pos.X() + facing.X(), Y: pos.Z() + facing.Z()}, col)

	for _, fx := range s.Effects.Live() {
		p := cp.Vector{X: fx.Pos.X(), Y: fx.Pos.Z()}
		switch fx.Kind {
		case component.EffectThrowTarget:
			drawer.drawCircle(p, 20, effectColor)
		default:
			drawer.DrawDot(debugDotSize*3, p, toFColor(effectColor), nil)
		}
	}
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	cam    *sandboxCamera
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, toNRGBA(fill))
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, toNRGBA(fill))
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, toNRGBA(fill))
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, toNRGBA(fill))
	if radius > 0 {
		d.drawCircle(a, radius, toNRGBA(fill))
		d.drawCircle(b, radius, toNRGBA(fill))
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], toNRGBA(fill))
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2 / d.cam.zoom
	c := toNRGBA(fill)
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, c)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, c)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

// Shapes are stroked with their fill color so each role keeps its own hue.
func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return roleColor(physics.ShapeRole(shape))
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func roleColor(role string) cp.FColor {
	switch role {
	case "trigger":
		return cp.FColor{R: 0.4, G: 0.7, B: 1, A: 0.8}
	case "enemy":
		return cp.FColor{R: 1, G: 0.3, B: 0.3, A: 1}
	}
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c color.Color) {
	x1, y1 := d.cam.toScreen(a.X, a.Y)
	x2, y2 := d.cam.toScreen(b.X, b.Y)
	ebitenutil.DrawLine(d.screen, x1, y1, x2, y2, c)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c color.Color) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func toFColor(c color.NRGBA) cp.FColor {
	return cp.FColor{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255, A: float32(c.A) / 255}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
