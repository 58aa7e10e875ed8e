package system

import (
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
	"github.com/milk9111/dreamhop/physics"
)

// KinematicSystem applies gravity, moves bodies by their velocity and clamps
// screen-bound bodies. The velocity used for the move is recorded as the
// step for collision resolution.
type KinematicSystem struct {
	gravity float64
	screenW float64
	screenH float64
}

func NewKinematicSystem(gravity, screenW, screenH float64) *KinematicSystem {
	return &KinematicSystem{gravity: gravity, screenW: screenW, screenH: screenH}
}

func (s *KinematicSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.VelocityComponent.Kind(),
		component.TransformComponent.Kind(),
		component.BodyComponent.Kind(),
	)
	for _, e := range entities {
		vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		b, _ := ecs.Get(w, e, component.BodyComponent.Kind())

		player, isPlayer := ecs.Get(w, e, component.PlayerComponent.Kind())
		if isPlayer {
			player.Grounded = false
		}

		gravity := 0.0
		if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			gravity = s.gravity * gs.Scale
		}

		k := physics.Kinematic{
			Pos:    physics.Vec{X: t.X, Y: t.Y},
			Vel:    physics.Vec{X: vel.X, Y: vel.Y},
			Width:  b.Width,
			Height: b.Height,
		}
		physics.Integrate(&k, gravity)
		vel.StepX, vel.StepY = k.Vel.X, k.Vel.Y

		if ecs.Has(w, e, component.ScreenClampComponent.Kind()) {
			physics.ClampToScreen(&k, s.screenW, s.screenH)
		}

		t.X, t.Y = k.Pos.X, k.Pos.Y
		vel.X, vel.Y = k.Vel.X, k.Vel.Y
		if isPlayer && k.Grounded {
			player.Grounded = true
			player.Jumping = false
		}
	}
}
