package ecs

import "github.com/milk9111/dreamhop/ecs/component"

// Kind is satisfied by every component.ComponentKind.
type Kind interface {
	ID() component.ComponentID
}

// Query returns live entities that carry every listed component, ordered by
// the first kind's storage.
func (w *World) Query(kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]store, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		sets = append(sets, s)
	}
	out := make([]Entity, 0, sets[0].Len())
	for _, e := range sets[0].Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		matched := true
		for _, s := range sets[1:] {
			if !s.Has(e) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, e)
		}
	}
	return out
}
