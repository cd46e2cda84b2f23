package sim

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/garden/component"
	"github.com/milk9111/garden/levels"
	"github.com/milk9111/garden/physics"
	"github.com/milk9111/garden/system"
)

var ErrUnknownCue = errors.New("sim: unknown cue")

// damage dealt by falling below the level
const killZDamage = 1

// Options configures a Session.
type Options struct {
	GlideUnlocked bool
	Camera        component.CameraRig
	Debug         bool
}

// Session hosts one character in one level: it owns the world, the body and
// the collaborators, reacts to triggers and enemies, and records frames.
type Session struct {
	World     *physics.World
	Body      *physics.Body
	Character *system.Character
	Effects   *physics.Effects
	Clock     *physics.Clock

	Time float64

	spawn  mgl64.Vec3
	inside map[component.ColliderID]bool
	debug  bool
}

func NewSession(stats *component.CharacterStats, level *levels.Level, opts Options) (*Session, error) {
	world, err := physics.NewWorld(level)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, errors.New("sim: nil stats")
	}

	s := &Session{
		World:   world,
		Effects: physics.NewEffects(),
		Clock:   physics.NewClock(),
		spawn:   world.Spawn(stats.CapsuleHalfHeight),
		inside:  make(map[component.ColliderID]bool),
		debug:   opts.Debug,
	}
	s.Body = world.NewBody(s.spawn, stats.CapsuleHalfHeight, stats.CapsuleRadius)

	c, err := system.NewCharacter(stats, s.Body, system.Collaborators{
		Ground:  world,
		Overlap: world,
		Spawner: s.Effects,
		Time:    s.Clock,
		Camera:  opts.Camera,
		Debug:   opts.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("sim: new session: %w", err)
	}
	c.SetGlideUnlocked(opts.GlideUnlocked)
	s.Character = c
	return s, nil
}

// Step advances the session by a real frame delta. Time dilation set by the
// character scales the simulated delta.
func (s *Session) Step(dt float64) Frame {
	scaled := s.Clock.Scale(dt)
	s.Character.Tick(scaled)
	s.Body.Step(scaled)
	s.react()
	s.Time += scaled

	return Frame{
		T:      s.Time,
		State:  s.Character.State(),
		Dodge:  s.Character.DodgeState(),
		Pos:    s.Body.Position(),
		Vel:    s.Body.Velocity(),
		Health: s.Character.Health().Current,
		Max:    s.Character.Health().Max(),
		Events: s.Character.Events().Drain(),
	}
}

// react applies level rules to the character after a tick.
func (s *Session) react() {
	c := s.Character
	pos := s.Body.Position()
	radius := s.Body.Radius

	if s.World.BelowKillZ(pos) {
		s.logf("fell below the level, respawning")
		c.Teleport(s.spawn)
		c.ApplyDamage(killZDamage)
		return
	}

	var boost mgl64.Vec3
	touching := make(map[component.ColliderID]bool)
	for _, t := range s.World.TriggersAt(pos, radius) {
		touching[t.ID] = true
		entered := !s.inside[t.ID]
		switch t.Kind {
		case levels.TriggerUpdraft:
			boost = boost.Add(t.BoostDir())
		case levels.TriggerDamage:
			if entered {
				c.ApplyDamage(1)
			}
		case levels.TriggerCheer:
			if entered && c.State() == component.StateGrounded {
				c.StartCheering()
			}
		}
	}
	s.inside = touching
	c.SetGlideBoost(boost)

	if c.State() == component.StateAttacking {
		return
	}
	for _, e := range s.World.EnemiesTouching(pos, radius) {
		c.ApplyDamage(e.Damage)
	}
}

// ApplyCue feeds one scripted action to the character.
func (s *Session) ApplyCue(cue levels.Cue) error {
	c := s.Character
	if cue.Press != "" {
		b, ok := component.ParseButton(cue.Press)
		if !ok {
			return fmt.Errorf("%w: press %q", ErrUnknownCue, cue.Press)
		}
		c.Press(b)
	}
	if cue.Release != "" {
		b, ok := component.ParseButton(cue.Release)
		if !ok {
			return fmt.Errorf("%w: release %q", ErrUnknownCue, cue.Release)
		}
		c.Release(b)
	}
	if cue.Move != nil {
		c.Move(mgl64.Vec2{cue.Move[0], cue.Move[1]})
	}
	if cue.Look != nil {
		c.Look(mgl64.Vec2{cue.Look[0], cue.Look[1]})
	}
	if cue.Damage > 0 {
		c.ApplyDamage(cue.Damage)
	}
	if cue.Teleport != nil {
		c.Teleport(mgl64.Vec3{cue.Teleport[0], cue.Teleport[1], cue.Teleport[2]})
	}
	if cue.Host != "" {
		return s.hostAction(cue.Host)
	}
	return nil
}

func (s *Session) hostAction(name string) error {
	c := s.Character
	switch name {
	case "cheer":
		c.StartCheering()
	case "stop_cheer":
		c.StopCheering()
	case "remove_input":
		c.RemoveInput(false)
	case "remove_input_physics":
		c.RemoveInput(true)
	case "return_input":
		c.ReturnInput()
	case "idle":
		c.Idle()
	case "restore":
		c.RestoreToMax()
	case "respawn":
		c.Teleport(s.spawn)
	default:
		return fmt.Errorf("%w: host %q", ErrUnknownCue, name)
	}
	return nil
}

func (s *Session) logf(format string, args ...any) {
	if s.debug {
		log.Printf("sim: "+format, args...)
	}
}
