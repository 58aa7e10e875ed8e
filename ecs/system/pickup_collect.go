package system

import (
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
)

type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, box, ok := playerRect(w)
	if !ok {
		return
	}

	ecs.ForEach(w, component.PickupComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup) {
		r, ok := bodyRect(w, e)
		if !ok || !box.Intersects(r) {
			return
		}
		ecs.DestroyEntity(w, e)
		w.Events().Push(ecs.Event{Type: ecs.EventPickupCollected, Entity: player, Amount: pickup.Value})
	})
}
