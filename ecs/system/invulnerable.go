package system

import (
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
)

type InvulnerableSystem struct{}

func NewInvulnerableSystem() *InvulnerableSystem { return &InvulnerableSystem{} }

func (s *InvulnerableSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(_ ecs.Entity, inv *component.Invulnerable) {
		if inv.Frames > 0 {
			inv.Frames--
		}
	})
}
