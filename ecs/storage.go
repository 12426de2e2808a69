package ecs

// entityStore tracks slot generations and the free id list.
type entityStore struct {
	gens []generation // index = id-1
	free []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gens = append(s.gens, 0)
		id = entityID(len(s.gens))
	}
	return makeEntity(id, s.gens[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.gens[e.id()-1]++
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := int(e.id())
	if id <= 0 || id > len(s.gens) {
		return false
	}
	return s.gens[id-1] == e.generation()
}

func (s *entityStore) alive() []Entity {
	dead := make(map[entityID]struct{}, len(s.free))
	for _, id := range s.free {
		dead[id] = struct{}{}
	}
	out := make([]Entity, 0, len(s.gens)-len(s.free))
	for i, gen := range s.gens {
		id := entityID(i + 1)
		if _, ok := dead[id]; ok {
			continue
		}
		out = append(out, makeEntity(id, gen))
	}
	return out
}
