package system

import (
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
)

// HazardSystem resolves hazards touching the player. Every touching hazard
// is consumed; hits are applied one at a time in creation order so a second
// hit in the same frame meets the recovery timer set by the first.
type HazardSystem struct {
	recoveryFrames int
	flashInterval  int
}

func NewHazardSystem(recoveryFrames, flashInterval int) *HazardSystem {
	return &HazardSystem{recoveryFrames: recoveryFrames, flashInterval: flashInterval}
}

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, box, ok := playerRect(w)
	if !ok {
		return
	}
	health, hok := ecs.Get(w, player, component.HealthComponent.Kind())
	inv, iok := ecs.Get(w, player, component.InvulnerableComponent.Kind())
	if !hok || !iok {
		return
	}

	for _, e := range w.Query(component.HazardComponent.Kind()) {
		hz, _ := ecs.Get(w, e, component.HazardComponent.Kind())
		r, ok := projectileRect(w, e)
		if !ok || !box.Intersects(r) {
			continue
		}
		ecs.DestroyEntity(w, e)

		if inv.Frames > 0 || health.Current <= 0 {
			continue
		}
		health.Current -= hz.Damage
		if health.Current < 0 {
			health.Current = 0
		}
		inv.Frames = s.recoveryFrames
		_ = ecs.Add(w, player, component.WhiteFlashComponent.Kind(), &component.WhiteFlash{
			Frames:   s.recoveryFrames,
			Interval: s.flashInterval,
			On:       true,
		})
		w.Events().Push(ecs.Event{Type: ecs.EventPlayerDamaged, Entity: player, Amount: hz.Damage})
		if health.Current == 0 {
			w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied, Entity: player})
		}
	}
}
