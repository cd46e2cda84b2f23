package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/garden/common"
)

// Forward is the flat direction move input "up" maps to.
func (c *Character) Forward() mgl64.Vec3 {
	if c.inCombat && common.Horizontal(c.combatDir).Len() > 0 {
		return common.YawForward(common.YawOf(c.combatDir))
	}
	return common.YawForward(c.yaw)
}

// Right is the flat direction move input "right" maps to.
func (c *Character) Right() mgl64.Vec3 {
	if c.inCombat && common.Horizontal(c.combatDir).Len() > 0 {
		return common.YawRight(common.YawOf(c.combatDir))
	}
	return common.YawRight(c.yaw)
}

// Facing is the yaw in degrees the character body points at.
func (c *Character) Facing() float64 { return c.facing }

// FacingForward is the flat unit vector of Facing.
func (c *Character) FacingForward() mgl64.Vec3 { return common.YawForward(c.facing) }

// ControlRotation returns the camera yaw and pitch in degrees.
func (c *Character) ControlRotation() (yaw, pitch float64) { return c.yaw, c.pitch }

// SetControlYaw points the camera, for hosts that own the mouse.
func (c *Character) SetControlYaw(yaw float64) { c.yaw = yaw }

// SetCombatCamera maps move input through dir until ClearCombatCamera.
func (c *Character) SetCombatCamera(dir mgl64.Vec3) {
	c.inCombat = true
	c.combatDir = dir
}

func (c *Character) ClearCombatCamera() {
	c.inCombat = false
	c.combatDir = mgl64.Vec3{}
}

// LookAt turns the character toward point on its own height.
func (c *Character) LookAt(point mgl64.Vec3) {
	pos := c.body.Position()
	point[2] = pos.Z()
	dir := common.SafeNormalize(point.Sub(pos))
	if dir.Len() == 0 {
		return
	}
	c.facing = common.YawOf(dir)
}

// ThrowLandingPoint is where a thrown seed lands: ahead of the character,
// scaled by how closely the camera looks the same way.
func (c *Character) ThrowLandingPoint() mgl64.Vec3 {
	forward := c.FacingForward()
	dot := forward.Dot(common.RotationForward(c.yaw, c.pitch))
	return c.body.Position().Add(forward.Mul(c.stats.PlantingThrowRange * dot))
}

// FocusCamera hands the camera to a fixed shot.
func (c *Character) FocusCamera(location, forward mgl64.Vec3, speed float64) {
	c.deps.Camera.Focus(location, forward, speed)
}

// ReturnCamera blends the camera back to the character.
func (c *Character) ReturnCamera(blend float64) {
	c.deps.Camera.ReturnToPlayer(blend)
}
