package ecs

// SparseSet stores one component kind keyed by entity slot. Lookups,
// inserts, and removes are O(1); Entities and Values expose the dense
// slices for iteration.
//
// Has, Get, and Remove match the full handle, so a stale handle from a
// reused slot misses even when the slot holds a newer component. Set
// keys on the slot alone and overwrites whatever occupies it.
type SparseSet struct {
	dense  []Entity
	values []any
	sparse []int // slot id-1 -> dense index, -1 when absent
}

func (s *SparseSet) index(e Entity) int {
	id := int(e.id())
	if s == nil || id <= 0 || id > len(s.sparse) {
		return -1
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.dense) || s.dense[idx] != e {
		return -1
	}
	return idx
}

// Has reports whether e has a component in this set.
func (s *SparseSet) Has(e Entity) bool {
	return s.index(e) >= 0
}

// Get returns the component for e, or nil.
func (s *SparseSet) Get(e Entity) any {
	idx := s.index(e)
	if idx < 0 {
		return nil
	}
	return s.values[idx]
}

// Set inserts or replaces the component for e's slot.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || e.id() == 0 {
		return
	}
	id := int(e.id())
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, -1)
	}
	if idx := s.sparse[id-1]; idx >= 0 && idx < len(s.dense) && s.dense[idx].id() == e.id() {
		s.dense[idx] = e
		s.values[idx] = v
		return
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense) - 1
}

// Remove drops the component for e if present.
func (s *SparseSet) Remove(e Entity) {
	idx := s.index(e)
	if idx < 0 {
		return
	}
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[int(moved.id())-1] = idx

	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[int(e.id())-1] = -1
}

// Entities returns the dense entity list. Mutating the set invalidates it.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.dense
}

// Values returns the dense component list, index-aligned with Entities.
func (s *SparseSet) Values() []any {
	if s == nil {
		return nil
	}
	return s.values
}

// Len returns the number of stored components.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}
