package ecs

import "github.com/milk9111/dreamhop/ecs/component"

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *SparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if s, ok := w.stores[kind.ID()]; ok {
		set, _ := s.(*SparseSet[T])
		return set
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]store)
	}
	set := &SparseSet[T]{}
	w.stores[kind.ID()] = set
	return set
}

// Add attaches (or replaces) a component value on e.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	storeFor(w, kind, true).Set(e, value)
	return nil
}

// Remove detaches a component from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return storeFor(w, kind, false).Remove(e)
}

// Has reports whether a live e carries the component.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return IsAlive(w, e) && storeFor(w, kind, false).Has(e)
}

// Get returns the component of a live entity.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	return storeFor(w, kind, false).Get(e)
}

// ForEach calls fn for every live entity carrying the component, in
// insertion order. Entities destroyed by fn are skipped for the rest of the
// pass.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	set := storeFor(w, kind, false)
	if set == nil {
		return
	}
	ents := append([]Entity(nil), set.Entities()...)
	for _, e := range ents {
		if !IsAlive(w, e) {
			continue
		}
		v, ok := set.Get(e)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

// ForEach2 iterates entities carrying both components, in the order of the
// first one.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sb := storeFor(w, kb, false)
	if sb == nil {
		return
	}
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := sb.Get(e)
		if !ok {
			return
		}
		fn(e, a, b)
	})
}

// First returns the first live entity carrying the component.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	set := storeFor(w, kind, false)
	for _, e := range set.Entities() {
		if IsAlive(w, e) {
			return e, true
		}
	}
	return 0, false
}

// Count returns the number of live entities carrying the component.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	n := 0
	set := storeFor(w, kind, false)
	for _, e := range set.Entities() {
		if IsAlive(w, e) {
			n++
		}
	}
	return n
}
