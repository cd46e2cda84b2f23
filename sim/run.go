package sim

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/garden/component"
	"github.com/milk9111/garden/levels"
	"github.com/milk9111/garden/prefabs"
	"github.com/milk9111/garden/system"
)

// Frame is the observable result of one session step.
type Frame struct {
	T      float64
	State  component.CharacterState
	Dodge  component.DodgeState
	Pos    mgl64.Vec3
	Vel    mgl64.Vec3
	Health float64
	Max    float64
	Events []system.Event
}

func (f Frame) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "t=%6.3f %-15s pos=(%7.1f, %7.1f) vel=(%7.1f, %7.1f) hp=%g/%g",
		f.T, f.State, f.Pos.X(), f.Pos.Z(), f.Vel.X(), f.Vel.Z(), f.Health, f.Max)
	if f.Dodge != component.NotDodging {
		fmt.Fprintf(&b, " dodge=%s", f.Dodge)
	}
	for _, e := range f.Events {
		b.WriteString(" ")
		b.WriteString(describe(e))
	}
	return b.String()
}

func describe(e system.Event) string {
	switch d := e.Data.(type) {
	case system.StateChange:
		return fmt.Sprintf("[%s %s->%s]", e.Kind, d.From, d.To)
	case component.HealthChange:
		return fmt.Sprintf("[%s %+g]", e.Kind, d.Delta)
	case mgl64.Vec3:
		return fmt.Sprintf("[%s (%.1f, %.1f)]", e.Kind, d.X(), d.Z())
	}
	return fmt.Sprintf("[%s]", e.Kind)
}

// Run is a loaded timeline ready to replay.
type Run struct {
	Timeline *levels.Timeline
	Stats    *component.CharacterStats
	Level    *levels.Level
}

// Load resolves a timeline and the character and level it names. A
// non-empty character overrides the timeline's.
func Load(timeline, character string) (*Run, error) {
	tl, err := levels.LoadTimeline(timeline)
	if err != nil {
		return nil, err
	}
	if character == "" {
		character = tl.Character
	}
	stats, err := prefabs.LoadCharacter(character)
	if err != nil {
		return nil, err
	}
	lvl, err := levels.LoadLevel(tl.Level)
	if err != nil {
		return nil, err
	}
	return &Run{Timeline: tl, Stats: stats, Level: lvl}, nil
}

// Session builds a fresh session for the run.
func (r *Run) Session(opts Options) (*Session, error) {
	opts.GlideUnlocked = opts.GlideUnlocked || r.Timeline.Glide
	return NewSession(r.Stats, r.Level, opts)
}

// Replay steps a session through the timeline and calls fn with every
// frame. Cues are scheduled on real time so dilation does not shift them.
func (r *Run) Replay(s *Session, fn func(Frame) error) error {
	tl := r.Timeline
	steps := int(tl.Duration/tl.Step + 0.5)
	for i := range steps {
		from := float64(i) * tl.Step
		for _, cue := range tl.Due(from, from+tl.Step) {
			if err := s.ApplyCue(cue); err != nil {
				return fmt.Errorf("sim: %s at %.3f: %w", tl.Name, cue.At, err)
			}
		}
		if err := fn(s.Step(tl.Step)); err != nil {
			return err
		}
	}
	return nil
}

// Frames replays the whole run into memory.
func (r *Run) Frames(opts Options) ([]Frame, error) {
	s, err := r.Session(opts)
	if err != nil {
		return nil, err
	}
	var frames []Frame
	err = r.Replay(s, func(f Frame) error {
		frames = append(frames, f)
		return nil
	})
	return frames, err
}
