package system

import (
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
)

// PlayerControllerSystem turns input into velocity. Jumping needs the
// grounded flag left by the previous frame's collision pass.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.VelocityComponent.Kind(),
	)
	for _, e := range entities {
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())

		vel.X = input.MoveX * player.MoveSpeed
		switch {
		case input.MoveX < 0:
			player.FacingLeft = true
		case input.MoveX > 0:
			player.FacingLeft = false
		}
		player.Moving = input.MoveX != 0

		if input.Jump && player.Grounded {
			vel.Y = player.JumpStrength
			player.Grounded = false
			player.Jumping = true
		}
	}
}
