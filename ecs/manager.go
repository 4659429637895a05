package ecs

import "sort"

// EntityManager allocates entity ids and owns one store per component type.
// Ids are allocated from a per-manager counter and never reused, so a caller
// holding an id past its destruction gets consistent "absent" answers instead
// of aliasing a newer entity.
type EntityManager struct {
	nextID   EntityID
	entities map[EntityID]struct{}
	// Component storage: component type -> {entity id -> component}
	components map[ComponentID]map[EntityID]Component
	// Destructions queued by systems, applied by FlushDestroyed
	pending map[EntityID]struct{}
}

// NewEntityManager creates an empty manager.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		entities:   make(map[EntityID]struct{}),
		components: make(map[ComponentID]map[EntityID]Component),
		pending:    make(map[EntityID]struct{}),
	}
}

// CreateEntity allocates a new entity id and adds it to the live set.
func (m *EntityManager) CreateEntity() EntityID {
	m.nextID++
	id := m.nextID
	m.entities[id] = struct{}{}
	return id
}

// DestroyEntity removes an entity from the live set and evicts it from every
// component store in the same step. Destroying a dead or unknown id is a no-op.
func (m *EntityManager) DestroyEntity(id EntityID) {
	if _, ok := m.entities[id]; !ok {
		return
	}
	delete(m.entities, id)
	for _, store := range m.components {
		delete(store, id)
	}
}

// QueueDestroy marks an entity for destruction at the next FlushDestroyed.
// Systems use this instead of DestroyEntity so no store is mutated while a
// pass over it is still running. Queuing the same id twice is harmless.
func (m *EntityManager) QueueDestroy(id EntityID) {
	m.pending[id] = struct{}{}
}

// FlushDestroyed applies every queued destruction and returns how many
// entities were actually destroyed.
func (m *EntityManager) FlushDestroyed() int {
	destroyed := 0
	for id := range m.pending {
		if _, ok := m.entities[id]; ok {
			m.DestroyEntity(id)
			destroyed++
		}
	}
	clear(m.pending)
	return destroyed
}

// Alive reports whether the entity is in the live set.
func (m *EntityManager) Alive(id EntityID) bool {
	_, ok := m.entities[id]
	return ok
}

// AddComponent attaches a component to a live entity. Adding to a dead or
// unknown entity is ignored.
func (m *EntityManager) AddComponent(id EntityID, cid ComponentID, c Component) {
	if _, ok := m.entities[id]; !ok {
		return
	}
	store, ok := m.components[cid]
	if !ok {
		store = make(map[EntityID]Component)
		m.components[cid] = store
	}
	store[id] = c
}

// GetComponent retrieves a component from an entity. The second return is
// false when the entity lacks the type, was destroyed, or never existed.
func (m *EntityManager) GetComponent(id EntityID, cid ComponentID) (Component, bool) {
	if store, ok := m.components[cid]; ok {
		c, ok := store[id]
		return c, ok
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component type.
func (m *EntityManager) HasComponent(id EntityID, cid ComponentID) bool {
	if store, ok := m.components[cid]; ok {
		_, ok := store[id]
		return ok
	}
	return false
}

// RemoveComponent detaches a component type from an entity.
func (m *EntityManager) RemoveComponent(id EntityID, cid ComponentID) {
	if store, ok := m.components[cid]; ok {
		delete(store, id)
	}
}

// Query returns every live entity present in all of the requested stores.
// The smallest store drives the scan and each of its ids is tested for
// membership in the rest, so cost is O(|smallest| x len(cids)).
//
// The result is a fresh slice sorted ascending by id: a snapshot that stays
// valid while the caller mutates stores, with a deterministic order so that
// "first match" logic does not depend on map iteration.
func (m *EntityManager) Query(cids ...ComponentID) []EntityID {
	if len(cids) == 0 {
		return nil
	}
	stores := make([]map[EntityID]Component, len(cids))
	for i, cid := range cids {
		store, ok := m.components[cid]
		if !ok || len(store) == 0 {
			return nil
		}
		stores[i] = store
	}

	driver := stores[0]
	for _, store := range stores[1:] {
		if len(store) < len(driver) {
			driver = store
		}
	}

	ids := make([]EntityID, 0, len(driver))
outer:
	for id := range driver {
		for _, store := range stores {
			if _, ok := store[id]; !ok {
				continue outer
			}
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EntityCount returns the number of live entities.
func (m *EntityManager) EntityCount() int {
	return len(m.entities)
}
