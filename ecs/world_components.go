package ecs

// Transforms returns the transform storage.
func (w *World) Transforms() *SparseSet {
	if w == nil {
		return nil
	}
	if w.transforms == nil {
		w.transforms = &SparseSet{}
	}
	return w.transforms
}

// Movers returns the mover storage.
func (w *World) Movers() *SparseSet {
	if w == nil {
		return nil
	}
	if w.movers == nil {
		w.movers = &SparseSet{}
	}
	return w.movers
}

// PathScripts returns the path script storage.
func (w *World) PathScripts() *SparseSet {
	if w == nil {
		return nil
	}
	if w.scripts == nil {
		w.scripts = &SparseSet{}
	}
	return w.scripts
}

// Vehicles returns the vehicle body storage.
func (w *World) Vehicles() *SparseSet {
	if w == nil {
		return nil
	}
	if w.vehicles == nil {
		w.vehicles = &SparseSet{}
	}
	return w.vehicles
}

// RigRefs returns the camera rig storage.
func (w *World) RigRefs() *SparseSet {
	if w == nil {
		return nil
	}
	if w.rigRefs == nil {
		w.rigRefs = &SparseSet{}
	}
	return w.rigRefs
}

// Markers returns the marker storage.
func (w *World) Markers() *SparseSet {
	if w == nil {
		return nil
	}
	if w.markers == nil {
		w.markers = &SparseSet{}
	}
	return w.markers
}
