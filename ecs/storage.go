package ecs

// entityStore tracks entity generations and free ids. Ids of destroyed
// entities are only recycled by release, after their components have been
// purged.
type entityStore struct {
	gen   []generation
	alive []bool
	free  []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		s.alive = append(s.alive, false)
		id = entityID(len(s.gen))
	}
	s.alive[id-1] = true
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.gen[idx]++
	s.alive[idx] = false
	return true
}

func (s *entityStore) release(e Entity) {
	s.free = append(s.free, e.id())
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.alive[id-1] && s.gen[id-1] == e.generation()
}

func (s *entityStore) each(fn func(Entity)) {
	for i := range s.gen {
		if s.alive[i] {
			fn(makeEntity(entityID(i+1), s.gen[i]))
		}
	}
}
