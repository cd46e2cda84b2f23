package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/garden/common"
)

// handleMove integrates horizontal velocity toward MoveVector*maxSpeed.
// Vertical velocity is left to handleGravity.
func (c *Character) handleMove(accel, decel, maxSpeed float64) {
	v := c.motion.Velocity
	current := common.Horizontal(v)
	target := c.motion.MoveVector.Mul(maxSpeed)

	var next mgl64.Vec3
	if target.Len() == 0 || accel == 0 {
		next = common.MoveTowards(current, mgl64.Vec3{}, decel*c.dt)
	} else {
		next = common.MoveTowards(current, target, accel*c.dt)
	}
	c.motion.Velocity = mgl64.Vec3{next.X(), next.Y(), v.Z()}
}

// handleGroundedMove integrates the full velocity along the ground plane and
// keeps the body on the ground. It reports false when there is no walkable
// ground under the character, leaving velocity untouched.
func (c *Character) handleGroundedMove(accel, decel, maxSpeed float64) bool {
	contact, ok := c.validGround()
	if !ok {
		return false
	}

	dir := common.PlaneProject(c.motion.MoveVector, contact.Normal)
	target := dir.Mul(maxSpeed)

	if target.Len() == 0 || accel == 0 {
		c.motion.Velocity = common.MoveTowards(c.motion.Velocity, mgl64.Vec3{}, decel*c.dt)
	} else {
		c.motion.Velocity = common.MoveTowards(c.motion.Velocity, target, accel*c.dt)
	}

	c.stickToGround(contact)
	return true
}

func (c *Character) handleGravity(accel, maxFallSpeed float64) {
	vz := c.motion.Velocity.Z() - accel*c.dt
	if vz < -maxFallSpeed {
		vz = -maxFallSpeed
	}
	c.motion.Velocity[2] = vz
}

// pointForwards turns the character toward its horizontal velocity while
// there is move input.
func (c *Character) pointForwards() {
	if c.motion.MoveVector.Len() == 0 {
		return
	}
	h := common.Horizontal(c.motion.Velocity)
	if h.Len() == 0 {
		return
	}
	c.facing = common.YawOf(h)
}
