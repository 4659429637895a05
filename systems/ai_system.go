package systems

import (
	"math"
	"math/rand"

	"ebiten-arena/components"
	"ebiten-arena/config"
	"ebiten-arena/ecs"
)

// AISystem drives wandering entities: each one chases a target point and
// periodically picks a new one.
type AISystem struct {
	width, height float64
	rng           *rand.Rand
}

// NewAISystem creates an AI system for the given world bounds. The random
// source is injected so tests can make target selection deterministic.
func NewAISystem(width, height float64, rng *rand.Rand) *AISystem {
	return &AISystem{width: width, height: height, rng: rng}
}

// Update advances the decision timer of every entity with position, velocity
// and AI. When the timer expires a new target is sampled uniformly inside the
// wander margins and the timer is reset to a uniform value in
// [DecisionTimerMin, DecisionTimerMax). Velocity points at the target at
// chase speed, or is zeroed inside the arrival threshold.
func (s *AISystem) Update(em *ecs.EntityManager, dt float64) {
	for _, id := range em.Query(components.Position, components.Velocity, components.AI) {
		posC, ok := em.GetComponent(id, components.Position)
		if !ok {
			continue
		}
		velC, ok := em.GetComponent(id, components.Velocity)
		if !ok {
			continue
		}
		aiC, ok := em.GetComponent(id, components.AI)
		if !ok {
			continue
		}
		pos := posC.(*components.PositionComponent)
		vel := velC.(*components.VelocityComponent)
		ai := aiC.(*components.AIComponent)

		ai.DecisionTimer -= dt
		if ai.DecisionTimer <= 0 {
			ai.TargetX = config.WanderMargin + s.rng.Float64()*(s.width-2*config.WanderMargin)
			ai.TargetY = config.WanderMargin + s.rng.Float64()*(s.height-2*config.WanderMargin)
			ai.DecisionTimer = config.DecisionTimerMin +
				s.rng.Float64()*(config.DecisionTimerMax-config.DecisionTimerMin)
		}

		dx := ai.TargetX - pos.X
		dy := ai.TargetY - pos.Y
		dist := math.Hypot(dx, dy)

		if dist > config.ArrivalThreshold {
			vel.DX = dx / dist * config.ChaseSpeed
			vel.DY = dy / dist * config.ChaseSpeed
		} else {
			vel.DX = 0
			vel.DY = 0
		}
	}
}
