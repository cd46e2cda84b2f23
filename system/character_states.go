package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/garden/common"
	"github.com/milk9111/garden/component"
	"github.com/milk9111/garden/curve"
)

// stateHandler owns the enter/exit, per-tick update and exit predicates of
// one character state. CheckExit runs only when Update kept the state, and
// the first matching transition wins.
type stateHandler interface {
	Name() string
	Enter(c *Character)
	Exit(c *Character)
	Update(c *Character)
	CheckExit(c *Character)
}

// State singletons, indexed by component.CharacterState.
var stateHandlers = [component.StateCount]stateHandler{
	component.StateIdle:           idleState{},
	component.StateGrounded:       groundedState{},
	component.StateJumping:        jumpingState{},
	component.StateFalling:        fallingState{},
	component.StateGliding:        glidingState{},
	component.StateGlidingBoosted: glidingBoostedState{},
	component.StateDodging:        dodgingState{},
	component.StateAttacking:      attackingState{},
	component.StateStunned:        stunnedState{},
	component.StateThrowingSeed:   throwingSeedState{},
	component.StateCheering:       cheeringState{},
	component.StateSliding:        slidingState{},
	component.StateNoMovement:     noMovementState{},
	component.StateNoInput:        noInputState{},
}

func handlerFor(s component.CharacterState) stateHandler {
	if int(s) < len(stateHandlers) {
		return stateHandlers[s]
	}
	return idleState{}
}

// decelerating without a target, used while input is ignored
const hardStopDeceleration = 99999.0

type idleState struct{}

func (idleState) Name() string         { return "idle" }
func (idleState) Enter(*Character)     {}
func (idleState) Exit(*Character)      {}
func (idleState) Update(*Character)    {}
func (idleState) CheckExit(*Character) {}

type groundedState struct{}

func (groundedState) Name() string { return "grounded" }
func (groundedState) Enter(c *Character) {
	c.dodge.Consumed = false
	c.input.GlideHeld = false
	c.jump.CoyoteAvailable = true
}
func (groundedState) Exit(*Character) {}
func (groundedState) Update(c *Character) {
	s := c.stats
	if !c.handleGroundedMove(s.BaseMoveAcceleration, s.BaseMoveDeceleration, s.BaseMoveSpeed) {
		c.changeState(component.StateFalling)
		return
	}
	c.pointForwards()
}
func (groundedState) CheckExit(c *Character) {
	switch {
	case c.input.JumpPressed || c.jump.BufferedWithin(c.stats.JumpBufferWindow):
		c.changeState(component.StateJumping)
	case c.canDodge():
		c.changeState(component.StateDodging)
	case c.input.AttackPressed:
		c.changeState(component.StateAttacking)
	case c.input.ThrowSeedPressed:
		c.changeState(component.StateThrowingSeed)
	}
}

type jumpingState struct{}

func (jumpingState) Name() string { return "jumping" }
func (jumpingState) Enter(c *Character) {
	c.jump.HeldTime = 0
	c.jump.CoyoteAvailable = false
	c.jump.Buffered = false
}
func (jumpingState) Exit(*Character) {}
func (jumpingState) Update(c *Character) {
	s := c.stats
	c.handleMove(s.FallHorizontalAcceleration, s.FallHorizontalDeceleration, s.BaseMoveSpeed)
	c.pointForwards()
	c.jump.HeldTime += c.dt
	c.motion.Velocity[2] = s.JumpForce
}
func (jumpingState) CheckExit(c *Character) {
	s := c.stats
	held := c.jump.HeldTime
	keepRising := (c.input.JumpPressed && held <= s.MaxJumpHoldTime) || held < s.MinJumpHoldTime
	switch {
	case !keepRising:
		c.changeState(component.StateFalling)
	case c.canDodge():
		c.changeState(component.StateDodging)
	}
}

type fallingState struct{}

func (fallingState) Name() string { return "falling" }
func (fallingState) Enter(c *Character) {
	c.input.JumpPressed = false
	c.jump.TimeFalling = 0
}
func (fallingState) Exit(*Character) {}
func (fallingState) Update(c *Character) {
	s := c.stats
	c.handleMove(s.FallHorizontalAcceleration, s.FallHorizontalDeceleration, s.BaseMoveSpeed)
	c.pointForwards()
	c.handleGravity(s.FallAcceleration, s.MaxFallSpeed)
	c.jump.TimeFalling += c.dt
}
func (fallingState) CheckExit(c *Character) {
	if c.jump.InCoyoteWindow(c.stats.CoyoteTime) {
		if c.input.JumpPressed {
			c.changeState(component.StateJumping)
			return
		}
	} else {
		if c.input.GlideHeld && c.glideUnlocked {
			c.changeState(component.StateGliding)
			return
		}
		if c.canDodge() {
			c.changeState(component.StateDodging)
			return
		}
	}
	c.landIfGrounded(true)
}

type glidingState struct{}

func (glidingState) Name() string     { return "gliding" }
func (glidingState) Enter(*Character) {}
func (glidingState) Exit(*Character)  {}
func (glidingState) Update(c *Character) {
	s := c.stats
	c.handleMove(s.GlideHorizontalAcceleration, s.GlideHorizontalDeceleration, s.GlideMoveSpeed)
	c.handleGravity(s.FallAcceleration, s.MaxGlideFallSpeed)
	c.pointForwards()
}
func (glidingState) CheckExit(c *Character) {
	switch {
	case !c.input.JumpPressed:
		c.changeState(component.StateFalling)
	case c.glideBoost.Len() > 0:
		c.changeState(component.StateGlidingBoosted)
	default:
		c.landIfGrounded(true)
	}
}

type glidingBoostedState struct{}

func (glidingBoostedState) Name() string     { return "gliding_boosted" }
func (glidingBoostedState) Enter(*Character) {}
func (glidingBoostedState) Exit(*Character)  {}
func (glidingBoostedState) Update(c *Character) {
	s := c.stats
	c.handleMove(s.GlideHorizontalAcceleration, s.GlideHorizontalDeceleration, s.GlideMoveSpeed)
	c.pointForwards()
	v := c.motion.Velocity.Add(c.glideBoost.Mul(s.BoostAcceleration * c.dt))
	c.motion.Velocity = common.ClampMagnitude(v, s.MaxGlideBoostSpeed)
}
func (glidingBoostedState) CheckExit(c *Character) {
	switch {
	case c.glideBoost.Len() == 0:
		c.changeState(component.StateGliding)
	case !c.input.JumpPressed:
		c.changeState(component.StateFalling)
	default:
		c.landIfGrounded(false)
	}
}

type dodgingState struct{}

func (dodgingState) Name() string { return "dodging" }
func (dodgingState) Enter(c *Character) {
	dir := c.motion.MoveVector
	if dir.Len() == 0 {
		dir = c.FacingForward()
	}
	c.dodge.Begin(c.body.Position(), dir, c.stats.DodgeDistance)
	c.dodgeAlpha = 0
	c.jump.CoyoteAvailable = false
	c.motion.Velocity = mgl64.Vec3{}
	c.deps.Time.SetTimeDilation(1)
}
func (dodgingState) Exit(c *Character) {
	if c.dodge.State != component.NotDodging {
		c.dodge.State = component.NotDodging
		c.deps.Time.SetTimeDilation(1)
	}
}
func (dodgingState) Update(c *Character) {
	c.tickDodge()
}
func (dodgingState) CheckExit(c *Character) {
	if !c.dodgeFinished() {
		return
	}
	c.finishDodge()
	if _, ok := c.validGround(); ok {
		c.changeState(component.StateGrounded)
		return
	}
	c.changeState(component.StateFalling)
}

type attackingState struct{}

func (attackingState) Name() string { return "attacking" }
func (attackingState) Enter(c *Character) {
	c.dodge.Consumed = false
}
func (attackingState) Exit(*Character) {}
func (attackingState) Update(c *Character) {
	s := c.stats
	c.combat.AdvanceSpin(c.dt, s.SpinUpTime)
	if !c.handleGroundedMove(s.AttackingMoveAcceleration, s.AttackingMoveDeceleration, s.AttackingMoveSpeed) {
		c.handleMove(s.AttackingMoveAcceleration, s.AttackingMoveDeceleration, s.AttackingMoveSpeed)
		c.handleGravity(s.FallAcceleration, s.MaxFallSpeed)
	}
	if c.SpinAlpha() >= 1 {
		c.resolveEnemies()
	}
	c.handleWallBounce()
}
func (attackingState) CheckExit(c *Character) {
	if !c.input.AttackPressed {
		c.combat.ResetSpin()
		c.landOrFall()
		return
	}
	if c.canDodge() {
		c.changeState(component.StateDodging)
	}
}

type stunnedState struct{}

func (stunnedState) Name() string { return "stunned" }
func (stunnedState) Enter(c *Character) {
	c.stunTimer = 0
}
func (stunnedState) Exit(*Character) {}
func (stunnedState) Update(c *Character) {
	s := c.stats
	c.stunTimer += c.dt
	if !c.handleGroundedMove(0, s.BaseMoveDeceleration, s.AttackingMoveSpeed) {
		c.handleMove(0, s.BaseMoveDeceleration, s.AttackingMoveSpeed)
		c.handleGravity(s.FallAcceleration, s.MaxFallSpeed)
	}
}
func (stunnedState) CheckExit(c *Character) {
	if c.stunTimer >= c.stats.StunTime {
		c.changeState(component.StateGrounded)
	}
}

type throwingSeedState struct{}

func (throwingSeedState) Name() string { return "throwing_seed" }
func (throwingSeedState) Enter(c *Character) {
	c.throwTarget = c.deps.Spawner.Spawn(component.EffectThrowTarget, c.ThrowLandingPoint(), c.facing)
	c.hasThrowTarget = true
}
func (throwingSeedState) Exit(c *Character) {
	if c.hasThrowTarget {
		c.deps.Spawner.Destroy(c.throwTarget)
		c.hasThrowTarget = false
	}
}
func (throwingSeedState) Update(c *Character) {
	c.facing = c.yaw
	c.handleMove(0, c.stats.BaseMoveDeceleration, 0)
	if c.hasThrowTarget {
		c.deps.Spawner.Move(c.throwTarget, c.ThrowLandingPoint())
	}
}
func (throwingSeedState) CheckExit(c *Character) {
	if !c.input.ThrowSeedPressed {
		c.changeState(component.StateGrounded)
	}
}

// cheer items float above the character's head
const cheerItemHeight = 100.0

type cheeringState struct{}

func (cheeringState) Name() string { return "cheering" }
func (cheeringState) Enter(c *Character) {
	c.cheerRemaining = c.stats.CheeringDuration
	pos := c.body.Position().Add(common.Up.Mul(cheerItemHeight))
	c.cheerItem = c.deps.Spawner.Spawn(component.EffectCheerItem, pos, c.facing)
	c.hasCheerItem = true
}
func (cheeringState) Exit(c *Character) {
	c.deps.Camera.ReturnToPlayer(1)
	if c.hasCheerItem {
		c.deps.Spawner.Destroy(c.cheerItem)
		c.hasCheerItem = false
	}
}
func (cheeringState) Update(c *Character) {
	c.handleMove(0, hardStopDeceleration, 0)
	c.cheerRemaining -= c.dt
}
func (cheeringState) CheckExit(c *Character) {
	if c.cheerRemaining <= 0 {
		c.changeState(component.StateGrounded)
	}
}

type slidingState struct{}

func (slidingState) Name() string     { return "sliding" }
func (slidingState) Enter(*Character) {}
func (slidingState) Exit(*Character)  {}
func (slidingState) Update(c *Character) {
	s := c.stats
	c.handleMove(s.FallHorizontalAcceleration, s.FallHorizontalDeceleration, s.BaseMoveSpeed)
	c.pointForwards()
	c.handleGravity(s.FallAcceleration, s.MaxFallSpeed)
}
func (slidingState) CheckExit(c *Character) {
	contact, ok := c.probeGround()
	switch {
	case !ok:
		c.changeState(component.StateFalling)
	case c.isValidSlope(contact):
		c.changeState(component.StateGrounded)
	}
}

type noMovementState struct{}

func (noMovementState) Name() string         { return "no_movement" }
func (noMovementState) Enter(*Character)     {}
func (noMovementState) Exit(*Character)      {}
func (noMovementState) CheckExit(*Character) {}
func (noMovementState) Update(c *Character) {
	c.motion.Velocity = mgl64.Vec3{}
}

type noInputState struct{}

func (noInputState) Name() string         { return "no_input" }
func (noInputState) Enter(*Character)     {}
func (noInputState) Exit(*Character)      {}
func (noInputState) CheckExit(*Character) {}
func (noInputState) Update(c *Character) {
	c.handleMove(0, hardStopDeceleration, 0)
}

func (c *Character) canDodge() bool {
	return c.input.DodgePressed && !c.dodge.Consumed
}

// landIfGrounded moves to Grounded on a walkable contact, or to Sliding on
// a steep one when slide is set. A rising character never lands.
func (c *Character) landIfGrounded(slide bool) {
	if c.motion.Velocity.Z() > 0 {
		return
	}
	contact, ok := c.probeGround()
	if !ok {
		return
	}
	if c.isValidSlope(contact) {
		c.changeState(component.StateGrounded)
		return
	}
	if slide {
		c.changeState(component.StateSliding)
	}
}

// landOrFall ends a grounded action: Grounded on walkable ground, else Falling.
func (c *Character) landOrFall() {
	if _, ok := c.validGround(); ok {
		c.changeState(component.StateGrounded)
		return
	}
	c.changeState(component.StateFalling)
}

// SpinAlpha is the eased attack spin-up progress in [0, 1].
func (c *Character) SpinAlpha() float64 {
	return curve.Alpha(c.stats.AttackSpinUpCurve, c.combat.SpinRatio(c.stats.SpinUpTime))
}

// SpinSpeed is the rotation speed implied by the spin-up alpha.
func (c *Character) SpinSpeed() float64 {
	return common.Lerp(0, c.stats.MaxRotationSpeed, c.SpinAlpha())
}
