package system

import (
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
	"github.com/milk9111/dreamhop/physics"
)

// CollisionSystem pushes the player out of platforms and the exit block, in
// that order.
type CollisionSystem struct {
	// Unresolved counts overlaps left in place during the last Update.
	Unresolved int
}

func NewCollisionSystem() *CollisionSystem { return &CollisionSystem{} }

func (s *CollisionSystem) Update(w *ecs.World) {
	s.Unresolved = 0
	if w == nil {
		return
	}

	solids := append(platformRects(w), exitRects(w)...)
	if len(solids) == 0 {
		return
	}

	entities := w.Query(
		component.PlayerComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.TransformComponent.Kind(),
		component.BodyComponent.Kind(),
	)
	for _, e := range entities {
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		b, _ := ecs.Get(w, e, component.BodyComponent.Kind())

		k := physics.Kinematic{
			Pos:      physics.Vec{X: t.X, Y: t.Y},
			Vel:      physics.Vec{X: vel.X, Y: vel.Y},
			Width:    b.Width,
			Height:   b.Height,
			Grounded: player.Grounded,
		}
		res := physics.ResolveAgainstPlatforms(&k, physics.Vec{X: vel.StepX, Y: vel.StepY}, solids)

		t.X, t.Y = k.Pos.X, k.Pos.Y
		vel.X, vel.Y = k.Vel.X, k.Vel.Y
		if res.Grounded {
			player.Grounded = true
			player.Jumping = false
		}
		s.Unresolved += res.Unresolved
	}
}
