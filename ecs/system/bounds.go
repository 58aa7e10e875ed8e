package system

import (
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
	"github.com/milk9111/dreamhop/physics"
)

// bodyRect returns the box of an entity anchored at its top-left Transform.
func bodyRect(w *ecs.World, e ecs.Entity) (physics.Rect, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return physics.Rect{}, false
	}
	b, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return physics.Rect{}, false
	}
	return physics.Rect{X: t.X, Y: t.Y, Width: b.Width, Height: b.Height}, true
}

// projectileRect returns the box of a projectile, whose Transform is its
// center.
func projectileRect(w *ecs.World, e ecs.Entity) (physics.Rect, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return physics.Rect{}, false
	}
	b, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return physics.Rect{}, false
	}
	return physics.CenteredRect(t.X, t.Y, b.Width, b.Height), true
}

func playerRect(w *ecs.World) (ecs.Entity, physics.Rect, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, physics.Rect{}, false
	}
	r, ok := bodyRect(w, player)
	return player, r, ok
}

// platformRects collects platform boxes in creation order.
func platformRects(w *ecs.World) []physics.Rect {
	var rects []physics.Rect
	for _, e := range w.Query(component.PlatformTagComponent.Kind()) {
		if r, ok := bodyRect(w, e); ok {
			rects = append(rects, r)
		}
	}
	return rects
}

func exitRects(w *ecs.World) []physics.Rect {
	var rects []physics.Rect
	for _, e := range w.Query(component.ExitTriggerComponent.Kind()) {
		if r, ok := bodyRect(w, e); ok {
			rects = append(rects, r)
		}
	}
	return rects
}
