package system

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/garden/common"
	"github.com/milk9111/garden/component"
	"github.com/milk9111/garden/curve"
)

// tickDodge moves the dodge along its curve. The interpolated point is
// reached through velocity so collision still sees continuous motion.
func (c *Character) tickDodge() {
	s := c.stats
	c.dodge.Elapsed += c.dt

	c.dodgeAlpha = curve.Alpha(s.DodgeSpeedCurve, c.dodge.Elapsed/s.DodgeSpeed)
	target := common.LerpVec3(c.dodge.Start, c.dodge.End, c.dodgeAlpha)

	if c.dodgeAlpha <= s.PerfectDodgeWindow {
		c.dodge.State = component.PerfectDodge
	} else {
		c.dodge.State = component.StandardDodge
	}

	if c.dt > 0 {
		c.motion.Velocity = target.Sub(c.body.Position()).Mul(1 / c.dt)
	} else {
		c.motion.Velocity = mgl64.Vec3{}
	}
}

// DodgeAlpha is the eased progress of the current dodge.
func (c *Character) DodgeAlpha() float64 { return c.dodgeAlpha }

func (c *Character) dodgeFinished() bool {
	return c.dodgeAlpha >= 1 || c.dodge.Elapsed >= c.stats.DodgeSpeed
}

func (c *Character) finishDodge() {
	c.dodge.State = component.NotDodging
	c.deps.Time.SetTimeDilation(1)
	if !c.dodge.DidPerfect {
		c.combat.ScaleSpin(c.stats.DodgeSlowSpinFactor)
	}
}

// perfectDodgePerformed slows the game down for the rest of the dodge.
func (c *Character) perfectDodgePerformed() {
	c.deps.Time.SetTimeDilation(c.stats.PerfectDodgeSlowMotionFactor)
	c.dodge.DidPerfect = true
	c.events.Push(Event{Kind: EventPerfectDodge})
	if c.deps.Debug {
		log.Printf("character: perfect dodge")
	}
}
