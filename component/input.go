package component

import "github.com/go-gl/mathgl/mgl64"

// Button identifies a discrete input action.
type Button uint8

const (
	ButtonJump Button = iota
	ButtonDodge
	ButtonAttack
	ButtonThrowSeed
)

func (b Button) String() string {
	switch b {
	case ButtonJump:
		return "jump"
	case ButtonDodge:
		return "dodge"
	case ButtonAttack:
		return "attack"
	case ButtonThrowSeed:
		return "throw_seed"
	}
	return "unknown"
}

// ParseButton resolves a button by its String() name.
func ParseButton(name string) (Button, bool) {
	for _, b := range []Button{ButtonJump, ButtonDodge, ButtonAttack, ButtonThrowSeed} {
		if b.String() == name {
			return b, true
		}
	}
	return 0, false
}

// Input holds latched button state. A pressed button stays pressed until a
// release event or until the state machine clears it.
type Input struct {
	JumpPressed      bool
	DodgePressed     bool
	AttackPressed    bool
	ThrowSeedPressed bool
	// GlideHeld is set by a jump press while already airborne.
	GlideHeld bool

	// MoveAxis is the raw 2D move input (x right, y forward).
	MoveAxis mgl64.Vec2
}

// Set latches or clears the button.
func (in *Input) Set(b Button, pressed bool) {
	if in == nil {
		return
	}
	switch b {
	case ButtonJump:
		in.JumpPressed = pressed
	case ButtonDodge:
		in.DodgePressed = pressed
	case ButtonAttack:
		in.AttackPressed = pressed
	case ButtonThrowSeed:
		in.ThrowSeedPressed = pressed
	}
}

// Pressed reports the latched state of b.
func (in *Input) Pressed(b Button) bool {
	if in == nil {
		return false
	}
	switch b {
	case ButtonJump:
		return in.JumpPressed
	case ButtonDodge:
		return in.DodgePressed
	case ButtonAttack:
		return in.AttackPressed
	case ButtonThrowSeed:
		return in.ThrowSeedPressed
	}
	return false
}
