package systems

import (
	"ebiten-arena/components"
	"ebiten-arena/ecs"
)

// MovementSystem integrates positions from velocities and keeps players
// inside the world bounds
type MovementSystem struct {
	width, height float64
}

// NewMovementSystem creates a movement system for the given world bounds
func NewMovementSystem(width, height float64) *MovementSystem {
	return &MovementSystem{width: width, height: height}
}

// Update applies one explicit Euler step to every entity with a position and
// a velocity. Players are clamped into [0,width] x [0,height] after the step.
func (s *MovementSystem) Update(em *ecs.EntityManager, dt float64) {
	for _, id := range em.Query(components.Position, components.Velocity) {
		posC, ok := em.GetComponent(id, components.Position)
		if !ok {
			continue
		}
		velC, ok := em.GetComponent(id, components.Velocity)
		if !ok {
			continue
		}
		pos := posC.(*components.PositionComponent)
		vel := velC.(*components.VelocityComponent)

		pos.X += vel.DX * dt
		pos.Y += vel.DY * dt

		if em.HasComponent(id, components.PlayerTag) {
			pos.X = clamp(pos.X, 0, s.width)
			pos.Y = clamp(pos.Y, 0, s.height)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
