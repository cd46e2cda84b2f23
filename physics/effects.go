package physics

import (
	"maps"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/garden/component"
)

// Effect is a visual actor spawned by the controller.
type Effect struct {
	Handle component.EffectHandle
	Kind   component.EffectKind
	Pos    mgl64.Vec3
	Yaw    float64
}

// Effects is an in-memory Spawner hosts draw or trace from.
type Effects struct {
	next  component.EffectHandle
	items map[component.EffectHandle]*Effect
}

var _ component.Spawner = (*Effects)(nil)

func NewEffects() *Effects {
	return &Effects{items: make(map[component.EffectHandle]*Effect)}
}

func (e *Effects) Spawn(kind component.EffectKind, pos mgl64.Vec3, yaw float64) component.EffectHandle {
	e.next++
	e.items[e.next] = &Effect{Handle: e.next, Kind: kind, Pos: pos, Yaw: yaw}
	return e.next
}

func (e *Effects) Move(h component.EffectHandle, pos mgl64.Vec3) {
	if fx, ok := e.items[h]; ok {
		fx.Pos = pos
	}
}

func (e *Effects) Destroy(h component.EffectHandle) {
	delete(e.items, h)
}

// Live returns the spawned effects ordered by handle.
func (e *Effects) Live() []*Effect {
	out := make([]*Effect, 0, len(e.items))
	for _, h := range slices.Sorted(maps.Keys(e.items)) {
		out = append(out, e.items[h])
	}
	return out
}

// Clock is a TimeDilator hosts scale their frame delta with.
type Clock struct {
	factor float64
}

var _ component.TimeDilator = (*Clock)(nil)

func NewClock() *Clock { return &Clock{factor: 1} }

func (c *Clock) SetTimeDilation(factor float64) {
	if factor < 0 {
		factor = 0
	}
	c.factor = factor
}

func (c *Clock) Factor() float64 { return c.factor }

// Scale applies the dilation to a real frame delta.
func (c *Clock) Scale(dt float64) float64 { return dt * c.factor }
