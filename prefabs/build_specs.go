package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/garden/component"
	"github.com/milk9111/garden/curve"
)

var ErrUnknownCurve = errors.New("prefabs: curve needs one of linear, keys or script")

// BuildCurve turns a curve spec into an evaluator. Scripts are read through
// LoadScript so a disk copy wins over the embedded one.
func BuildCurve(spec CurveSpec) (curve.Curve, error) {
	forms := 0
	if spec.Linear {
		forms++
	}
	if len(spec.Keys) > 0 {
		forms++
	}
	if spec.Script != "" {
		forms++
	}
	if forms != 1 {
		return nil, ErrUnknownCurve
	}

	switch {
	case spec.Linear:
		return curve.Linear{}, nil
	case len(spec.Keys) > 0:
		keys := make([]curve.Key, 0, len(spec.Keys))
		for _, k := range spec.Keys {
			keys = append(keys, curve.Key{Time: k[0], Value: k[1]})
		}
		kf, err := curve.NewKeyframes(keys, spec.Smooth)
		if err != nil {
			return nil, err
		}
		return kf, nil
	default:
		src, err := LoadScript(spec.Script)
		if err != nil {
			return nil, fmt.Errorf("prefabs: load script %s: %w", spec.Script, err)
		}
		script, err := curve.CompileScript(spec.Script, src)
		if err != nil {
			return nil, err
		}
		return script, nil
	}
}

// BuildStats converts a character spec into validated stats.
func BuildStats(spec CharacterSpec) (*component.CharacterStats, error) {
	dodgeCurve, err := BuildCurve(spec.Dodge.Curve)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s dodge curve: %w", spec.Name, err)
	}
	spinCurve, err := BuildCurve(spec.Attack.SpinUpCurve)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s spin up curve: %w", spec.Name, err)
	}

	stats := &component.CharacterStats{
		CapsuleHalfHeight: spec.Capsule.HalfHeight,
		CapsuleRadius:     spec.Capsule.Radius,

		BaseMoveSpeed:        spec.Movement.Speed,
		BaseMoveAcceleration: spec.Movement.Acceleration,
		BaseMoveDeceleration: spec.Movement.Deceleration,
		MaxGroundSlopeAngle:  spec.Movement.MaxSlopeAngle,
		GroundingDistance:    spec.Movement.GroundingDistance,

		CameraVerticalSensitivity:   spec.Camera.VerticalSensitivity,
		CameraHorizontalSensitivity: spec.Camera.HorizontalSensitivity,
		CameraDistance:              spec.Camera.Distance,

		FallAcceleration:           spec.Jumping.FallAcceleration,
		MaxFallSpeed:               spec.Jumping.MaxFallSpeed,
		JumpForce:                  spec.Jumping.Force,
		MinJumpHoldTime:            spec.Jumping.MinHoldTime,
		MaxJumpHoldTime:            spec.Jumping.MaxHoldTime,
		FallHorizontalAcceleration: spec.Jumping.HorizontalAcceleration,
		FallHorizontalDeceleration: spec.Jumping.HorizontalDeceleration,
		JumpBufferWindow:           spec.Jumping.BufferWindow,
		CoyoteTime:                 spec.Jumping.CoyoteTime,

		MaxGlideFallSpeed:           spec.Gliding.MaxFallSpeed,
		GlideHorizontalAcceleration: spec.Gliding.HorizontalAcceleration,
		GlideHorizontalDeceleration: spec.Gliding.HorizontalDeceleration,
		GlideMoveSpeed:              spec.Gliding.MoveSpeed,
		BoostAcceleration:           spec.Gliding.BoostAcceleration,
		MaxGlideBoostSpeed:          spec.Gliding.MaxBoostSpeed,

		DodgeDistance:                spec.Dodge.Distance,
		DodgeSpeed:                   spec.Dodge.Duration,
		DodgeSpeedCurve:              dodgeCurve,
		PerfectDodgeWindow:           spec.Dodge.PerfectWindow,
		DodgeSlowSpinFactor:          spec.Dodge.SlowSpinFactor,
		PerfectDodgeSlowMotionFactor: spec.Dodge.PerfectSlowMotionScale,

		AttackRange:                    spec.Attack.Range,
		AttackSpinUpCurve:              spinCurve,
		SpinUpTime:                     spec.Attack.SpinUpTime,
		AttackingMoveAcceleration:      spec.Attack.MoveAcceleration,
		AttackingMoveDeceleration:      spec.Attack.MoveDeceleration,
		AttackingMoveSpeed:             spec.Attack.MoveSpeed,
		WallBounceCheckDistance:        spec.Attack.WallBounce.CheckDistance,
		WallBounceForce:                spec.Attack.WallBounce.Force,
		WallBounceAngle:                spec.Attack.WallBounce.Angle,
		WallBounceSpeedReductionFactor: spec.Attack.WallBounce.SpeedReductionFactor,
		MaxRotationSpeed:               spec.Attack.MaxRotationSpeed,
		StartingHealth:                 spec.Attack.StartingHealth,
		StunTime:                       spec.Attack.StunTime,

		PlantingThrowRange: spec.Planting.ThrowRange,
		CheeringDuration:   spec.Cheering.Duration,
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", spec.Name, err)
	}
	return stats, nil
}

// LoadCharacter loads, builds and validates a character spec file.
func LoadCharacter(filename string) (*component.CharacterStats, error) {
	spec, err := LoadCharacterSpec(filename)
	if err != nil {
		return nil, err
	}
	return BuildStats(spec)
}
