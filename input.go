package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dreamhop/game"
)

const stickDeadzone = 0.2

// readInput samples keyboard and the first gamepad for one frame.
func readInput() game.Input {
	in := game.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump: ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW) ||
			ebiten.IsKeyPressed(ebiten.KeyArrowUp),
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		in.Left = in.Left || x < -stickDeadzone ||
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || x > stickDeadzone ||
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			in.Command = game.CommandRestart
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		in.Command = game.CommandQuit
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		in.Command = game.CommandRestart
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		in.Command = game.CommandNewGame
	}
	return in
}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP)
}
