package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// CharacterSpec is the yaml form of component.CharacterStats.
type CharacterSpec struct {
	Name     string       `yaml:"name"`
	Capsule  CapsuleSpec  `yaml:"capsule"`
	Movement MovementSpec `yaml:"movement"`
	Camera   CameraSpec   `yaml:"camera"`
	Jumping  JumpingSpec  `yaml:"jumping"`
	Gliding  GlidingSpec  `yaml:"gliding"`
	Dodge    DodgeSpec    `yaml:"dodge"`
	Attack   AttackSpec   `yaml:"attack"`
	Planting PlantingSpec `yaml:"planting"`
	Cheering CheeringSpec `yaml:"cheering"`
}

type CapsuleSpec struct {
	HalfHeight float64 `yaml:"half_height"`
	Radius     float64 `yaml:"radius"`
}

type MovementSpec struct {
	Speed             float64 `yaml:"speed"`
	Acceleration      float64 `yaml:"acceleration"`
	Deceleration      float64 `yaml:"deceleration"`
	MaxSlopeAngle     float64 `yaml:"max_slope_angle"`
	GroundingDistance float64 `yaml:"grounding_distance"`
}

type CameraSpec struct {
	VerticalSensitivity   float64 `yaml:"vertical_sensitivity"`
	HorizontalSensitivity float64 `yaml:"horizontal_sensitivity"`
	Distance              float64 `yaml:"distance"`
}

type JumpingSpec struct {
	FallAcceleration       float64 `yaml:"fall_acceleration"`
	MaxFallSpeed           float64 `yaml:"max_fall_speed"`
	Force                  float64 `yaml:"force"`
	MinHoldTime            float64 `yaml:"min_hold_time"`
	MaxHoldTime            float64 `yaml:"max_hold_time"`
	HorizontalAcceleration float64 `yaml:"horizontal_acceleration"`
	HorizontalDeceleration float64 `yaml:"horizontal_deceleration"`
	BufferWindow           float64 `yaml:"buffer_window"`
	CoyoteTime             float64 `yaml:"coyote_time"`
}

type GlidingSpec struct {
	MaxFallSpeed           float64 `yaml:"max_fall_speed"`
	HorizontalAcceleration float64 `yaml:"horizontal_acceleration"`
	HorizontalDeceleration float64 `yaml:"horizontal_deceleration"`
	MoveSpeed              float64 `yaml:"move_speed"`
	BoostAcceleration      float64 `yaml:"boost_acceleration"`
	MaxBoostSpeed          float64 `yaml:"max_boost_speed"`
}

type DodgeSpec struct {
	Distance               float64   `yaml:"distance"`
	Duration               float64   `yaml:"duration"`
	Curve                  CurveSpec `yaml:"curve"`
	PerfectWindow          float64   `yaml:"perfect_window"`
	SlowSpinFactor         float64   `yaml:"slow_spin_factor"`
	PerfectSlowMotionScale float64   `yaml:"perfect_slow_motion_factor"`
}

type AttackSpec struct {
	Range            float64        `yaml:"range"`
	SpinUpCurve      CurveSpec      `yaml:"spin_up_curve"`
	SpinUpTime       float64        `yaml:"spin_up_time"`
	MoveAcceleration float64        `yaml:"move_acceleration"`
	MoveDeceleration float64        `yaml:"move_deceleration"`
	MoveSpeed        float64        `yaml:"move_speed"`
	WallBounce       WallBounceSpec `yaml:"wall_bounce"`
	MaxRotationSpeed float64        `yaml:"max_rotation_speed"`
	StartingHealth   float64        `yaml:"starting_health"`
	StunTime         float64        `yaml:"stun_time"`
}

type WallBounceSpec struct {
	CheckDistance        float64 `yaml:"check_distance"`
	Force                float64 `yaml:"force"`
	Angle                float64 `yaml:"angle"`
	SpeedReductionFactor float64 `yaml:"speed_reduction_factor"`
}

type PlantingSpec struct {
	ThrowRange float64 `yaml:"throw_range"`
}

type CheeringSpec struct {
	Duration float64 `yaml:"duration"`
}

// CurveSpec picks one curve form. Exactly one of Linear, Keys or Script is
// expected; Keys are [time, value] pairs.
type CurveSpec struct {
	Linear bool         `yaml:"linear"`
	Keys   [][2]float64 `yaml:"keys"`
	Smooth bool         `yaml:"smooth"`
	Script string       `yaml:"script"`
}

func LoadCharacterSpec(filename string) (CharacterSpec, error) {
	return LoadSpec[CharacterSpec](filename)
}
