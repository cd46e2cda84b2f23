package system

import (
	"log"

	"github.com/milk9111/garden/component"
)

// ApplyDamage hurts and stuns the character. Damage is ignored while a
// dodge is active or while stunned; a hit during the perfect window of a
// dodge triggers the perfect dodge reward instead.
func (c *Character) ApplyDamage(amount float64) {
	if c == nil {
		return
	}
	if c.dodge.Active() {
		if c.dodge.State == component.PerfectDodge {
			c.perfectDodgePerformed()
		}
		return
	}
	if c.state == component.StateStunned || !c.health.IsAlive() {
		return
	}

	died := c.health.ApplyDamage(amount)
	c.changeState(component.StateStunned)
	if died {
		c.events.Push(Event{Kind: EventDied})
		log.Printf("character: died")
	}
}

// RestoreToMax refills health to Base + Bonus.
func (c *Character) RestoreToMax() {
	if c == nil {
		return
	}
	c.health.RestoreToMax()
}

// SetBonusHealth changes the bonus part of max health without healing.
func (c *Character) SetBonusHealth(bonus float64) {
	if c == nil {
		return
	}
	c.health.SetBonus(bonus)
}

// Dead reports whether health reached zero.
func (c *Character) Dead() bool {
	return c != nil && !c.health.IsAlive()
}
