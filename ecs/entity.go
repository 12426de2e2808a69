package ecs

import "strconv"

// Entity is a stable handle to a scene object. The low 32 bits hold the
// slot id, the high 32 bits the slot generation, so a destroyed slot can
// be reused without stale handles resolving to the new occupant.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// Valid reports whether e refers to a slot at all. A valid handle may
// still be dead; see World.IsAlive.
func (e Entity) Valid() bool {
	return e.id() > 0
}

// Raw returns the handle as a plain uint64 for storage in components,
// which cannot name the Entity type without an import cycle.
func (e Entity) Raw() uint64 {
	return uint64(e)
}
