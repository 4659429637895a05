package ecs

// ComponentID is a unique identifier for component types
type ComponentID uint

// Component is the base interface for all components. Components are plain
// data records; they are stored as pointers so systems can mutate them in
// place through the manager.
type Component interface{}
