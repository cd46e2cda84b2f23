package component

import "github.com/go-gl/mathgl/mgl64"

// DodgeTiming holds the positions and clock of the current dodge.
type DodgeTiming struct {
	Start   mgl64.Vec3
	End     mgl64.Vec3
	Elapsed float64
	// Consumed latches on dodge entry and clears only on landing.
	Consumed bool
	// DidPerfect is set when a hit landed during the perfect window.
	DidPerfect bool
	State      DodgeState
}

// Begin snapshots a new dodge from start toward dir over distance.
func (d *DodgeTiming) Begin(start, dir mgl64.Vec3, distance float64) {
	if d == nil {
		return
	}
	d.Start = start
	d.End = start.Add(dir.Mul(distance))
	// lift the end point slightly so the dodge does not drive into the floor
	d.End[2] += 0.1
	d.Elapsed = 0
	d.Consumed = true
	d.DidPerfect = false
	d.State = PerfectDodge
}

// Active reports whether a dodge sub-state is in effect.
func (d *DodgeTiming) Active() bool {
	return d != nil && d.State != NotDodging
}

// JumpTiming holds jump, coyote and jump buffer clocks.
type JumpTiming struct {
	HeldTime        float64
	TimeFalling     float64
	CoyoteAvailable bool

	// SincePress is the time since the last jump press while airborne.
	SincePress float64
	// Buffered marks an airborne press that may trigger a jump on landing.
	Buffered bool
}

// InCoyoteWindow reports whether a falling jump is still honored.
func (j *JumpTiming) InCoyoteWindow(coyoteTime float64) bool {
	return j != nil && j.CoyoteAvailable && j.TimeFalling < coyoteTime
}

// BufferedWithin reports whether a buffered press is younger than window.
func (j *JumpTiming) BufferedWithin(window float64) bool {
	return j != nil && window > 0 && j.Buffered && j.SincePress <= window
}
