package component

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestMotionTeleportQueue(t *testing.T) {
	var m MotionState
	m.QueueRelativeTeleport(mgl64.Vec3{1, 0, 0})
	m.QueueRelativeTeleport(mgl64.Vec3{0, 2, 0})
	assert.Equal(t, mgl64.Vec3{1, 2, 0}, m.TakeRelativeTeleport())
	assert.Equal(t, mgl64.Vec3{}, m.TakeRelativeTeleport())

	_, ok := m.TakeTeleport()
	assert.False(t, ok)

	// the origin is a valid target
	m.QueueTeleport(mgl64.Vec3{})
	assert.True(t, m.TeleportPending())
	p, ok := m.TakeTeleport()
	assert.True(t, ok)
	assert.Equal(t, mgl64.Vec3{}, p)
	assert.False(t, m.TeleportPending())
}

func TestMotionExternalVelocity(t *testing.T) {
	var m MotionState
	_, ok := m.TakeExternalVelocity()
	assert.False(t, ok)

	m.ExternalVelocity = mgl64.Vec3{0, 0, 5}
	v, ok := m.TakeExternalVelocity()
	assert.True(t, ok)
	assert.Equal(t, mgl64.Vec3{0, 0, 5}, v)
	_, ok = m.TakeExternalVelocity()
	assert.False(t, ok)
}

func TestCharacterStateNames(t *testing.T) {
	for i := 0; i < StateCount; i++ {
		s := CharacterState(i)
		got, ok := ParseCharacterState(s.String())
		assert.True(t, ok, s.String())
		assert.Equal(t, s, got)
	}
	assert.Equal(t, "state(200)", CharacterState(200).String())
	assert.True(t, StateGliding.Airborne())
	assert.False(t, StateGrounded.Airborne())
}

func TestCombatStateSpin(t *testing.T) {
	var c CombatState
	c.AdvanceSpin(0.6, 1)
	c.AdvanceSpin(0.6, 1)
	assert.Equal(t, 1.0, c.AttackSpinTime)
	assert.Equal(t, 1.0, c.SpinRatio(1))
	c.ScaleSpin(0.5)
	assert.Equal(t, 0.5, c.AttackSpinTime)
	c.ResetSpin()
	assert.Equal(t, 0.0, c.SpinRatio(1))

	assert.False(t, c.BounceReady(0.1, 0.2))
	assert.True(t, c.BounceReady(0.1, 0.2))
}
