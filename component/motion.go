package component

import "github.com/go-gl/mathgl/mgl64"

// MotionState is the movement state of a character. Velocity persists across
// ticks and is the single source of truth for movement.
type MotionState struct {
	Velocity mgl64.Vec3
	// ExternalVelocity replaces the computed velocity on write-back and is
	// cleared the same frame.
	ExternalVelocity mgl64.Vec3
	// MoveVector is the normalized desired direction, latched until cleared.
	MoveVector mgl64.Vec3

	RelativeTeleport mgl64.Vec3
	AbsoluteTeleport mgl64.Vec3
	absolutePending  bool
}

// QueueRelativeTeleport accumulates a displacement applied after the next tick.
func (m *MotionState) QueueRelativeTeleport(d mgl64.Vec3) {
	if m == nil {
		return
	}
	m.RelativeTeleport = m.RelativeTeleport.Add(d)
}

// QueueTeleport requests an absolute position override. A later request in
// the same tick replaces an earlier one.
func (m *MotionState) QueueTeleport(p mgl64.Vec3) {
	if m == nil {
		return
	}
	m.AbsoluteTeleport = p
	m.absolutePending = true
}

// TeleportPending reports whether an absolute teleport is waiting.
func (m *MotionState) TeleportPending() bool {
	return m != nil && m.absolutePending
}

// TakeTeleport returns the pending absolute target and clears it.
func (m *MotionState) TakeTeleport() (mgl64.Vec3, bool) {
	if m == nil || !m.absolutePending {
		return mgl64.Vec3{}, false
	}
	p := m.AbsoluteTeleport
	m.AbsoluteTeleport = mgl64.Vec3{}
	m.absolutePending = false
	return p, true
}

// TakeRelativeTeleport returns the accumulated displacement and clears it.
func (m *MotionState) TakeRelativeTeleport() mgl64.Vec3 {
	if m == nil {
		return mgl64.Vec3{}
	}
	d := m.RelativeTeleport
	m.RelativeTeleport = mgl64.Vec3{}
	return d
}

// TakeExternalVelocity returns the one-shot override, if any, and clears it.
func (m *MotionState) TakeExternalVelocity() (mgl64.Vec3, bool) {
	if m == nil || m.ExternalVelocity.Len() == 0 {
		return mgl64.Vec3{}, false
	}
	v := m.ExternalVelocity
	m.ExternalVelocity = mgl64.Vec3{}
	return v, true
}
