package ecs

// Get reads e's component from s as a T. The bool is false when the
// entity has nothing stored there or the stored value is another type.
func Get[T any](s *SparseSet, e Entity) (T, bool) {
	var zero T
	v := s.Get(e)
	if v == nil {
		return zero, false
	}
	cast, ok := v.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}
