package ecs

// SparseSet stores components for entities in insertion order. Removal
// shifts later entries down instead of swapping so that iteration order
// always matches creation order.
type SparseSet[T any] struct {
	dense  []Entity
	values []*T
	sparse []int // slot id - 1 -> dense index + 1, 0 when absent
}

func (s *SparseSet[T]) index(e Entity) (int, bool) {
	if s == nil {
		return 0, false
	}
	id := int(e.id())
	if id == 0 || id > len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1] - 1
	if idx < 0 || s.dense[idx] != e {
		return 0, false
	}
	return idx, true
}

// Has reports whether e has a value in the set.
func (s *SparseSet[T]) Has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

// Get returns the value stored for e.
func (s *SparseSet[T]) Get(e Entity) (*T, bool) {
	idx, ok := s.index(e)
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

// Set inserts or replaces the value for e.
func (s *SparseSet[T]) Set(e Entity, v *T) {
	if idx, ok := s.index(e); ok {
		s.values[idx] = v
		return
	}
	id := int(e.id())
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, 0)
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense)
}

// Remove deletes the value for e if present.
func (s *SparseSet[T]) Remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	copy(s.dense[idx:], s.dense[idx+1:])
	copy(s.values[idx:], s.values[idx+1:])
	last := len(s.dense) - 1
	s.values[last] = nil
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[e.id()-1] = 0
	for i := idx; i < len(s.dense); i++ {
		s.sparse[s.dense[i].id()-1] = i + 1
	}
	return true
}

// Entities returns the dense entity list. Callers must not modify it.
func (s *SparseSet[T]) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.dense
}

func (s *SparseSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}
