package system

import (
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
	"github.com/milk9111/dreamhop/physics"
)

// ExitTriggerSystem recomputes every exit's Activated flag from the
// player's footprint. Nothing is latched between frames.
type ExitTriggerSystem struct {
	above float64
	below float64
}

func NewExitTriggerSystem(above, below float64) *ExitTriggerSystem {
	return &ExitTriggerSystem{above: above, below: below}
}

func (s *ExitTriggerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, box, hasPlayer := playerRect(w)
	ecs.ForEach(w, component.ExitTriggerComponent.Kind(), func(e ecs.Entity, exit *component.ExitTrigger) {
		was := exit.Activated
		exit.Activated = false
		if r, ok := bodyRect(w, e); ok && hasPlayer {
			exit.Activated = physics.StandingOn(box, r, s.above, s.below)
		}
		switch {
		case exit.Activated && !was:
			w.Events().Push(ecs.Event{Type: ecs.EventExitActivated, Entity: e})
		case !exit.Activated && was:
			w.Events().Push(ecs.Event{Type: ecs.EventExitDeactivated, Entity: e})
		}
	})
}
