package component

import "fmt"

// CharacterState is the active state of the character state machine.
// Exactly one state is active per tick.
type CharacterState uint8

const (
	StateIdle CharacterState = iota
	StateGrounded
	StateJumping
	StateFalling
	StateGliding
	StateGlidingBoosted
	StateDodging
	StateAttacking
	StateStunned
	StateThrowingSeed
	StateCheering
	StateSliding
	StateNoMovement
	StateNoInput

	stateCount
)

// StateCount is the number of character states.
const StateCount = int(stateCount)

var stateNames = [...]string{
	StateIdle:           "idle",
	StateGrounded:       "grounded",
	StateJumping:        "jumping",
	StateFalling:        "falling",
	StateGliding:        "gliding",
	StateGlidingBoosted: "gliding_boosted",
	StateDodging:        "dodging",
	StateAttacking:      "attacking",
	StateStunned:        "stunned",
	StateThrowingSeed:   "throwing_seed",
	StateCheering:       "cheering",
	StateSliding:        "sliding",
	StateNoMovement:     "no_movement",
	StateNoInput:        "no_input",
}

func (s CharacterState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Airborne reports whether the state has no ground support by definition.
func (s CharacterState) Airborne() bool {
	switch s {
	case StateJumping, StateFalling, StateGliding, StateGlidingBoosted:
		return true
	}
	return false
}

// ParseCharacterState resolves a state by its String() name.
func ParseCharacterState(name string) (CharacterState, bool) {
	for i, n := range stateNames {
		if n == name {
			return CharacterState(i), true
		}
	}
	return 0, false
}

// DodgeState is the sub-mode of an active dodge.
type DodgeState uint8

const (
	NotDodging DodgeState = iota
	PerfectDodge
	StandardDodge
)

func (d DodgeState) String() string {
	switch d {
	case NotDodging:
		return "not_dodging"
	case PerfectDodge:
		return "perfect"
	case StandardDodge:
		return "standard"
	}
	return fmt.Sprintf("dodge(%d)", uint8(d))
}
