package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/garden/common"
	"github.com/milk9111/garden/component"
)

// Press latches a button. A jump pressed while airborne also arms the glide
// and the jump buffer.
func (c *Character) Press(b component.Button) {
	if c == nil {
		return
	}
	c.input.Set(b, true)
	if b != component.ButtonJump {
		return
	}
	c.input.GlideHeld = c.state == component.StateFalling || c.state == component.StateJumping
	if c.state.Airborne() {
		c.jump.Buffered = true
		c.jump.SincePress = 0
	}
}

// Release clears a latched button.
func (c *Character) Release(b component.Button) {
	if c == nil {
		return
	}
	c.input.Set(b, false)
	if b == component.ButtonJump {
		c.input.GlideHeld = false
	}
}

// Pressed reports the latched state of a button.
func (c *Character) Pressed(b component.Button) bool {
	return c != nil && c.input.Pressed(b)
}

// Move maps a 2D axis (x right, y forward) through the control yaw, or the
// combat camera direction, into the latched move vector.
func (c *Character) Move(axis mgl64.Vec2) {
	if c == nil {
		return
	}
	c.input.MoveAxis = axis
	v := c.Forward().Mul(axis.Y()).Add(c.Right().Mul(axis.X()))
	c.motion.MoveVector = common.SafeNormalize(v)
}

// ClearMove drops the move vector.
func (c *Character) ClearMove() {
	if c == nil {
		return
	}
	c.input.MoveAxis = mgl64.Vec2{}
	c.motion.MoveVector = mgl64.Vec3{}
}

// max camera pitch in degrees either way
const maxPitch = 89.0

// Look turns the control rotation by axis scaled by the camera
// sensitivities and the last tick's dt.
func (c *Character) Look(axis mgl64.Vec2) {
	if c == nil {
		return
	}
	s := c.stats
	c.yaw += axis.X() * s.CameraHorizontalSensitivity * c.dt
	c.pitch = mgl64.Clamp(c.pitch+axis.Y()*s.CameraVerticalSensitivity*c.dt, -maxPitch, maxPitch)
}
