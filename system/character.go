package system

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/garden/component"
)

var ErrNoGroundSensor = errors.New("system: character needs a ground sensor")

// Collaborators are the external services a Character queries. Only Ground
// is required; the rest fall back to no-ops.
type Collaborators struct {
	Ground  component.GroundSensor
	Overlap component.OverlapQuery
	Spawner component.Spawner
	Time    component.TimeDilator
	Camera  component.CameraRig

	// Self is the character's own collider, never reported as ground.
	// Zero means the character has no collider of its own.
	Self component.ColliderID
	// Debug logs every state transition.
	Debug bool
}

// Character is the locomotion and combat state machine. A host owns the
// body and drives the character by calling Tick once per frame.
type Character struct {
	stats *component.CharacterStats
	body  component.Body
	deps  Collaborators

	state component.CharacterState
	dt    float64

	motion component.MotionState
	combat component.CombatState
	dodge  component.DodgeTiming
	jump   component.JumpTiming
	health *component.Health
	input  component.Input

	// control rotation in degrees
	yaw, pitch float64
	facing     float64
	inCombat   bool
	combatDir  mgl64.Vec3

	glideUnlocked bool
	glideBoost    mgl64.Vec3

	dodgeAlpha     float64
	stunTimer      float64
	cheerRemaining float64
	cheerItem      component.EffectHandle
	hasCheerItem   bool
	throwTarget    component.EffectHandle
	hasThrowTarget bool

	ignore []component.ColliderID
	events EventQueue
}

// NewCharacter validates stats and starts the character grounded at full
// health. A stats validation error is fatal for the character.
func NewCharacter(stats *component.CharacterStats, body component.Body, deps Collaborators) (*Character, error) {
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("system: new character: %w", err)
	}
	if body == nil {
		return nil, errors.New("system: new character: nil body")
	}
	if deps.Ground == nil {
		return nil, ErrNoGroundSensor
	}
	if deps.Overlap == nil {
		deps.Overlap = noopOverlap{}
	}
	if deps.Spawner == nil {
		deps.Spawner = noopSpawner{}
	}
	if deps.Time == nil {
		deps.Time = noopTime{}
	}
	if deps.Camera == nil {
		deps.Camera = noopCamera{}
	}

	c := &Character{
		stats:  stats,
		body:   body,
		deps:   deps,
		health: component.NewHealth(stats.StartingHealth),
		ignore: make([]component.ColliderID, 0, maxGroundPasses+1),
	}
	c.combat.TimeSinceLastWallBounce = wallBounceCooldown
	c.health.Observe(func(evt component.HealthChange) {
		c.events.Push(Event{Kind: EventHealthChanged, Data: evt})
	})

	c.state = component.StateGrounded
	handlerFor(c.state).Enter(c)
	c.health.RestoreToMax()
	return c, nil
}

// Tick advances the character by dt seconds. Negative dt is treated as 0.
func (c *Character) Tick(dt float64) {
	if c == nil {
		return
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	c.dt = dt
	c.motion.Velocity = c.body.Velocity()
	c.jump.SincePress += dt

	current := c.state
	h := handlerFor(current)
	h.Update(c)
	if c.state == current {
		h.CheckExit(c)
	}

	c.applyTeleports()
	c.writeVelocity()
}

func (c *Character) changeState(next component.CharacterState) {
	prev := c.state
	handlerFor(prev).Exit(c)
	c.state = next
	handlerFor(next).Enter(c)
	c.events.Push(Event{Kind: EventStateChanged, Data: StateChange{From: prev, To: next}})
	if c.deps.Debug {
		log.Printf("character: %s -> %s", prev, next)
	}
}

func (c *Character) writeVelocity() {
	if v, ok := c.motion.TakeExternalVelocity(); ok {
		c.body.SetVelocity(v)
		return
	}
	c.body.SetVelocity(c.motion.Velocity)
}

// State returns the active state.
func (c *Character) State() component.CharacterState { return c.state }

// DodgeState returns the dodge sub-state.
func (c *Character) DodgeState() component.DodgeState { return c.dodge.State }

// Velocity returns the velocity computed by the last tick.
func (c *Character) Velocity() mgl64.Vec3 { return c.motion.Velocity }

// SetVelocity requests a one-shot velocity override for the next write-back.
func (c *Character) SetVelocity(v mgl64.Vec3) { c.motion.ExternalVelocity = v }

// Position returns the body position.
func (c *Character) Position() mgl64.Vec3 { return c.body.Position() }

// Health exposes the health model for observers and readouts.
func (c *Character) Health() *component.Health { return c.health }

// Stats returns the tuning the character was built with.
func (c *Character) Stats() *component.CharacterStats { return c.stats }

// Events returns the event queue the host drains after each tick.
func (c *Character) Events() *EventQueue { return &c.events }

// MoveVector returns the latched desired move direction.
func (c *Character) MoveVector() mgl64.Vec3 { return c.motion.MoveVector }

// SetGlideUnlocked enables or disables gliding.
func (c *Character) SetGlideUnlocked(v bool) { c.glideUnlocked = v }

// SetGlideBoost sets the boost direction applied while gliding, for example
// by an updraft volume. A zero vector ends the boost.
func (c *Character) SetGlideBoost(dir mgl64.Vec3) { c.glideBoost = dir }

// GlideBoost returns the boost direction last set by the host.
func (c *Character) GlideBoost() mgl64.Vec3 { return c.glideBoost }

// RemoveInput parks the character. With doPhysics the character keeps
// decelerating, otherwise it is frozen in place.
func (c *Character) RemoveInput(doPhysics bool) {
	if doPhysics {
		c.changeState(component.StateNoInput)
		return
	}
	c.changeState(component.StateNoMovement)
}

// ReturnInput hands control back, starting from Falling.
func (c *Character) ReturnInput() {
	c.changeState(component.StateFalling)
}

// Idle parks the character in the Idle state until ReturnInput.
func (c *Character) Idle() {
	c.changeState(component.StateIdle)
}

// StartCheering enters Cheering for the configured duration.
func (c *Character) StartCheering() {
	c.changeState(component.StateCheering)
}

// StopCheering ends Cheering early.
func (c *Character) StopCheering() {
	if c.state != component.StateCheering {
		return
	}
	c.changeState(component.StateGrounded)
}

type noopOverlap struct{}

func (noopOverlap) SphereOverlap(mgl64.Vec3, float64, component.ObjectFilter) []component.Contact {
	return nil
}

type noopSpawner struct{}

func (noopSpawner) Spawn(component.EffectKind, mgl64.Vec3, float64) component.EffectHandle { return 0 }
func (noopSpawner) Move(component.EffectHandle, mgl64.Vec3)                                {}
func (noopSpawner) Destroy(component.EffectHandle)                                         {}

type noopTime struct{}

func (noopTime) SetTimeDilation(float64) {}

type noopCamera struct{}

func (noopCamera) Focus(mgl64.Vec3, mgl64.Vec3, float64) {}
func (noopCamera) ReturnToPlayer(float64)                {}
