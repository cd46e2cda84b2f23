package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/garden/component"
	"github.com/milk9111/garden/system"
)

const stickDeadzone = 0.2

type binding struct {
	button  component.Button
	keys    []ebiten.Key
	gamepad ebiten.StandardGamepadButton
}

var bindings = []binding{
	{component.ButtonJump, []ebiten.Key{ebiten.KeySpace, ebiten.KeyW}, ebiten.StandardGamepadButtonRightBottom},
	{component.ButtonDodge, []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyK}, ebiten.StandardGamepadButtonRightRight},
	{component.ButtonAttack, []ebiten.Key{ebiten.KeyJ}, ebiten.StandardGamepadButtonRightLeft},
	{component.ButtonThrowSeed, []ebiten.Key{ebiten.KeyF}, ebiten.StandardGamepadButtonFrontBottomRight},
}

// readInput turns this frame's key and gamepad edges into button events and
// refreshes the move axis. Left and right run along the slice, which is the
// character's forward axis at yaw 0.
func readInput(c *system.Character) {
	gamepads := ebiten.GamepadIDs()

	for _, b := range bindings {
		pressed, released := false, false
		for _, k := range b.keys {
			pressed = pressed || inpututil.IsKeyJustPressed(k)
			released = released || inpututil.IsKeyJustReleased(k)
		}
		if len(gamepads) > 0 {
			id := gamepads[0]
			pressed = pressed || inpututil.IsStandardGamepadButtonJustPressed(id, b.gamepad)
			released = released || inpututil.IsStandardGamepadButtonJustReleased(id, b.gamepad)
		}
		if pressed {
			c.Press(b.button)
		}
		if released {
			c.Release(b.button)
		}
	}

	forward := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		forward -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		forward += 1
	}
	if len(gamepads) > 0 {
		x := ebiten.StandardGamepadAxisValue(gamepads[0], ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(x) > stickDeadzone {
			forward = x
		}
	}

	if forward == 0 {
		c.ClearMove()
		return
	}
	c.Move(mgl64.Vec2{0, forward})
}
