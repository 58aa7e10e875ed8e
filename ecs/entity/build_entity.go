package entity

import (
	"fmt"

	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
)

// Render layers, back to front.
const (
	LayerPlatform = iota
	LayerExit
	LayerPickup
	LayerEnemy
	LayerProjectile
	LayerPlayer
)

// componentStep attaches one component to an entity under construction.
type componentStep struct {
	name string
	add  func(w *ecs.World, e ecs.Entity) error
}

func with[T any](name string, kind component.ComponentKind[T], value *T) componentStep {
	return componentStep{
		name: name,
		add: func(w *ecs.World, e ecs.Entity) error {
			return ecs.Add(w, e, kind, value)
		},
	}
}

// buildEntity creates an entity and attaches steps in order. A failed step
// destroys the half-built entity.
func buildEntity(w *ecs.World, what string, steps ...componentStep) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	for _, s := range steps {
		if err := s.add(w, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("%s: add %s: %w", what, s.name, err)
		}
	}
	return e, nil
}
