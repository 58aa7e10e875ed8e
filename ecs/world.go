package ecs

import "github.com/milk9111/dreamhop/ecs/component"

// store is the type-erased view of a SparseSet the world needs for
// bookkeeping.
type store interface {
	Has(e Entity) bool
	Remove(e Entity) bool
	Entities() []Entity
	Len() int
}

// World owns entities, their components and the frame event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	doomed   []Entity
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity kills e immediately; its components stay in storage until
// the next Flush so systems iterating this frame simply skip it.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	if !w.entities.destroy(e) {
		return false
	}
	w.doomed = append(w.doomed, e)
	return true
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	var out []Entity
	w.entities.each(func(e Entity) {
		out = append(out, e)
	})
	return out
}

// Flush purges the components of entities destroyed since the last flush
// and releases their ids for reuse.
func (w *World) Flush() {
	if w == nil || len(w.doomed) == 0 {
		return
	}
	for _, e := range w.doomed {
		for _, s := range w.stores {
			s.Remove(e)
		}
		w.entities.release(e)
	}
	w.doomed = w.doomed[:0]
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
