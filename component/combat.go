package component

import "github.com/milk9111/garden/common"

// CombatState tracks the attack spin-up and the wall-bounce cooldown.
type CombatState struct {
	// AttackSpinTime grows while attacking, clamped to [0, spinUpTime].
	AttackSpinTime float64
	// TimeSinceLastWallBounce gates wall bounces.
	TimeSinceLastWallBounce float64
}

// spin times this close to the spin-up time count as fully spun up, so
// summing frame deltas reaches it at any frame rate
const spinEpsilon = 1e-9

// AdvanceSpin adds dt to the spin time, clamped to [0, spinUpTime].
func (c *CombatState) AdvanceSpin(dt, spinUpTime float64) {
	if c == nil {
		return
	}
	c.AttackSpinTime += dt
	if c.AttackSpinTime < 0 {
		c.AttackSpinTime = 0
	}
	if c.AttackSpinTime > spinUpTime-spinEpsilon {
		c.AttackSpinTime = spinUpTime
	}
}

// ScaleSpin multiplies the spin time, used by dodge and wall-bounce penalties.
func (c *CombatState) ScaleSpin(factor float64) {
	if c == nil {
		return
	}
	c.AttackSpinTime *= factor
	if c.AttackSpinTime < 0 {
		c.AttackSpinTime = 0
	}
}

func (c *CombatState) ResetSpin() {
	if c == nil {
		return
	}
	c.AttackSpinTime = 0
}

// SpinRatio is the raw spin progress, clamped to [0, 1].
func (c *CombatState) SpinRatio(spinUpTime float64) float64 {
	if c == nil || spinUpTime <= 0 {
		return 0
	}
	return common.Clamp01(c.AttackSpinTime / spinUpTime)
}

// BounceReady advances the cooldown by dt and reports whether it expired.
func (c *CombatState) BounceReady(dt, cooldown float64) bool {
	if c == nil {
		return false
	}
	c.TimeSinceLastWallBounce += dt
	return c.TimeSinceLastWallBounce >= cooldown
}

func (c *CombatState) ResetBounce() {
	if c == nil {
		return
	}
	c.TimeSinceLastWallBounce = 0
}
