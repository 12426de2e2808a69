package ecs

// IntersectEntities returns entities present in both sets.
func IntersectEntities(a, b *SparseSet) []Entity {
	if a == nil || b == nil {
		return nil
	}
	// iterate smaller set
	if len(a.dense) > len(b.dense) {
		a, b = b, a
	}
	out := make([]Entity, 0, len(a.dense))
	for _, e := range a.dense {
		if b.Has(e) {
			out = append(out, e)
		}
	}
	return out
}
