package systems

import (
	"ebiten-arena/components"
	"ebiten-arena/ecs"
)

// LifetimeSystem expires entities whose lifetime has run out
type LifetimeSystem struct {
	events *ecs.EventManager
}

// NewLifetimeSystem creates a lifetime system emitting on the given bus
func NewLifetimeSystem(events *ecs.EventManager) *LifetimeSystem {
	return &LifetimeSystem{events: events}
}

// Update decrements every lifetime and queues expired entities for
// destruction. The scan runs over a query snapshot and destruction is
// deferred to the scheduler's flush, so the Lifetime store is never mutated
// while it is being walked.
func (s *LifetimeSystem) Update(em *ecs.EntityManager, dt float64) {
	for _, id := range em.Query(components.Lifetime) {
		c, ok := em.GetComponent(id, components.Lifetime)
		if !ok {
			continue
		}
		lifetime := c.(*components.LifetimeComponent)

		lifetime.Remaining -= dt
		if lifetime.Remaining <= 0 {
			em.QueueDestroy(id)
			if s.events != nil {
				s.events.Emit(EntityExpiredEvent{Entity: id})
			}
		}
	}
}
