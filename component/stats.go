package component

import (
	"errors"
	"fmt"

	"github.com/milk9111/garden/curve"
)

var ErrInvalidStats = errors.New("component: invalid character stats")

// CharacterStats is the immutable tuning bundle of one character. It is
// built once before the controller starts and never mutated by it.
// Distances are world units, times are seconds, angles are degrees.
type CharacterStats struct {
	// Capsule
	CapsuleHalfHeight float64
	CapsuleRadius     float64

	// Movement
	BaseMoveSpeed        float64
	BaseMoveAcceleration float64
	BaseMoveDeceleration float64
	MaxGroundSlopeAngle  float64
	GroundingDistance    float64

	// Camera
	CameraVerticalSensitivity   float64
	CameraHorizontalSensitivity float64
	CameraDistance              float64

	// Jumping
	FallAcceleration           float64
	MaxFallSpeed               float64
	JumpForce                  float64
	MinJumpHoldTime            float64
	MaxJumpHoldTime            float64
	FallHorizontalAcceleration float64
	FallHorizontalDeceleration float64
	JumpBufferWindow           float64
	CoyoteTime                 float64

	// Gliding
	MaxGlideFallSpeed           float64
	GlideHorizontalAcceleration float64
	GlideHorizontalDeceleration float64
	GlideMoveSpeed              float64
	BoostAcceleration           float64
	MaxGlideBoostSpeed          float64

	// Dodge
	DodgeDistance                float64
	DodgeSpeed                   float64
	DodgeSpeedCurve              curve.Curve
	PerfectDodgeWindow           float64
	DodgeSlowSpinFactor          float64
	PerfectDodgeSlowMotionFactor float64

	// Attack
	AttackRange                    float64
	AttackSpinUpCurve              curve.Curve
	SpinUpTime                     float64
	AttackingMoveAcceleration      float64
	AttackingMoveDeceleration      float64
	AttackingMoveSpeed             float64
	WallBounceCheckDistance        float64
	WallBounceForce                float64
	WallBounceAngle                float64
	WallBounceSpeedReductionFactor float64
	MaxRotationSpeed               float64
	StartingHealth                 float64
	StunTime                       float64

	// Planting
	PlantingThrowRange float64

	// Cheering
	CheeringDuration float64
}

// Validate reports every required field that is missing. The returned error
// wraps ErrInvalidStats.
func (s *CharacterStats) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil stats", ErrInvalidStats)
	}

	required := []struct {
		name  string
		value float64
	}{
		{"capsule_half_height", s.CapsuleHalfHeight},
		{"capsule_radius", s.CapsuleRadius},
		{"base_move_speed", s.BaseMoveSpeed},
		{"base_move_acceleration", s.BaseMoveAcceleration},
		{"base_move_deceleration", s.BaseMoveDeceleration},
		{"max_ground_slope_angle", s.MaxGroundSlopeAngle},
		{"grounding_distance", s.GroundingDistance},
		{"fall_acceleration", s.FallAcceleration},
		{"max_fall_speed", s.MaxFallSpeed},
		{"jump_force", s.JumpForce},
		{"max_jump_hold_time", s.MaxJumpHoldTime},
		{"dodge_distance", s.DodgeDistance},
		{"dodge_speed", s.DodgeSpeed},
		{"attack_range", s.AttackRange},
		{"spin_up_time", s.SpinUpTime},
		{"starting_health", s.StartingHealth},
		{"stun_time", s.StunTime},
	}

	var errs []error
	for _, r := range required {
		if r.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", r.name, r.value))
		}
	}
	if s.CapsuleRadius > s.CapsuleHalfHeight && s.CapsuleHalfHeight > 0 {
		errs = append(errs, fmt.Errorf("capsule_radius %v exceeds capsule_half_height %v", s.CapsuleRadius, s.CapsuleHalfHeight))
	}
	if s.MinJumpHoldTime > s.MaxJumpHoldTime {
		errs = append(errs, fmt.Errorf("min_jump_hold_time %v exceeds max_jump_hold_time %v", s.MinJumpHoldTime, s.MaxJumpHoldTime))
	}
	if s.DodgeSpeedCurve == nil {
		errs = append(errs, errors.New("dodge_speed_curve is required"))
	}
	if s.AttackSpinUpCurve == nil {
		errs = append(errs, errors.New("attack_spin_up_curve is required"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidStats, errors.Join(errs...))
}
