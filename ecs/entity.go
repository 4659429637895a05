package ecs

// EntityID is a unique identifier for an entity. An entity carries no data of
// its own; it is only a key into the per-type component stores.
type EntityID uint64

// NoEntity is the zero EntityID. Managers never allocate it, so it can be used
// as an "unset" marker (e.g. a projectile whose owner was never recorded).
const NoEntity EntityID = 0
