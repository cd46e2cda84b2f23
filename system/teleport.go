package system

import "github.com/go-gl/mathgl/mgl64"

// Teleport moves the character to p after the next tick's state logic and
// stops it. The latest request in a tick wins.
func (c *Character) Teleport(p mgl64.Vec3) {
	if c == nil {
		return
	}
	c.motion.QueueTeleport(p)
}

// AddRelativeTeleport accumulates a displacement applied after the next
// tick's state logic.
func (c *Character) AddRelativeTeleport(d mgl64.Vec3) {
	if c == nil {
		return
	}
	c.motion.QueueRelativeTeleport(d)
}

// applyTeleports runs once per tick. An absolute teleport takes the whole
// tick; a relative displacement queued alongside it waits for the next one.
func (c *Character) applyTeleports() {
	if p, ok := c.motion.TakeTeleport(); ok {
		c.body.SetPosition(p)
		c.motion.Velocity = mgl64.Vec3{}
		c.events.Push(Event{Kind: EventTeleported, Data: p})
		return
	}

	d := c.motion.TakeRelativeTeleport()
	if d.Len() == 0 {
		return
	}
	p := c.body.Position().Add(d)
	c.body.SetPosition(p)
	c.events.Push(Event{Kind: EventTeleported, Data: p})
}
