package systems

import (
	"math"

	"ebiten-arena/components"
	"ebiten-arena/ecs"
)

// CollisionSystem resolves projectile/enemy hits and enemy/player contact
// damage. Queries are snapshotted in ascending id order, so a projectile
// overlapping several enemies hits the lowest-id one.
type CollisionSystem struct {
	events *ecs.EventManager
}

// NewCollisionSystem creates a collision system emitting on the given bus
func NewCollisionSystem(events *ecs.EventManager) *CollisionSystem {
	return &CollisionSystem{events: events}
}

// Update runs two passes over the tick's snapshots.
//
// Projectile vs enemy: each projectile resolves at most one hit per tick,
// against the first overlapping enemy; the projectile is consumed and the
// enemy takes its damage. A defeated enemy awards its points to every live
// player. Enemy vs player: every overlapping pair deals the enemy's contact
// damage again each tick it persists; there is no cooldown.
//
// All marked ids are queued for a single deduplicated destruction flush after
// the system's pass.
func (s *CollisionSystem) Update(em *ecs.EntityManager, dt float64) {
	projectiles := em.Query(components.Position, components.Collider, components.ProjectileTag)
	enemies := em.Query(components.Position, components.Collider, components.EnemyTag, components.Health)
	players := em.Query(components.Position, components.Collider, components.PlayerTag, components.Health)

	marked := make(map[ecs.EntityID]struct{})

	// Projectile vs enemy
	for _, projID := range projectiles {
		if _, dead := marked[projID]; dead {
			continue
		}
		projPos, projCol, ok := positionAndCollider(em, projID)
		if !ok {
			continue
		}
		tagC, ok := em.GetComponent(projID, components.ProjectileTag)
		if !ok {
			continue
		}
		projTag := tagC.(*components.ProjectileTagComponent)

		for _, enemyID := range enemies {
			if _, dead := marked[enemyID]; dead {
				continue
			}
			enemyPos, enemyCol, ok := positionAndCollider(em, enemyID)
			if !ok {
				continue
			}
			if !circlesOverlap(projPos, projCol, enemyPos, enemyCol) {
				continue
			}

			healthC, ok := em.GetComponent(enemyID, components.Health)
			if !ok {
				continue
			}
			health := healthC.(*components.HealthComponent)
			health.Current -= projTag.Damage
			marked[projID] = struct{}{}
			if s.events != nil {
				s.events.Emit(ProjectileHitEvent{
					Projectile: projID,
					Enemy:      enemyID,
					Damage:     projTag.Damage,
				})
			}

			if health.Current <= 0 {
				enemyTagC, _ := em.GetComponent(enemyID, components.EnemyTag)
				enemyTag := enemyTagC.(*components.EnemyTagComponent)
				// Every live player gets the points, not just the owner
				for _, playerID := range players {
					playerTagC, ok := em.GetComponent(playerID, components.PlayerTag)
					if !ok {
						continue
					}
					playerTagC.(*components.PlayerTagComponent).Score += enemyTag.Points
				}
				marked[enemyID] = struct{}{}
				if s.events != nil {
					s.events.Emit(EnemyDefeatedEvent{Enemy: enemyID, Points: enemyTag.Points})
				}
			}
			break
		}
	}

	// Enemy vs player
	for _, playerID := range players {
		playerPos, playerCol, ok := positionAndCollider(em, playerID)
		if !ok {
			continue
		}
		healthC, ok := em.GetComponent(playerID, components.Health)
		if !ok {
			continue
		}
		playerHealth := healthC.(*components.HealthComponent)

		for _, enemyID := range enemies {
			if _, dead := marked[enemyID]; dead {
				continue
			}
			enemyPos, enemyCol, ok := positionAndCollider(em, enemyID)
			if !ok {
				continue
			}
			if !circlesOverlap(playerPos, playerCol, enemyPos, enemyCol) {
				continue
			}

			enemyTagC, _ := em.GetComponent(enemyID, components.EnemyTag)
			enemyTag := enemyTagC.(*components.EnemyTagComponent)
			playerHealth.Current -= enemyTag.Damage
			if s.events != nil {
				s.events.Emit(PlayerDamagedEvent{
					Player: playerID,
					Enemy:  enemyID,
					Damage: enemyTag.Damage,
				})
			}
		}
	}

	for id := range marked {
		em.QueueDestroy(id)
	}
}

func positionAndCollider(em *ecs.EntityManager, id ecs.EntityID) (*components.PositionComponent, *components.ColliderComponent, bool) {
	posC, ok := em.GetComponent(id, components.Position)
	if !ok {
		return nil, nil, false
	}
	colC, ok := em.GetComponent(id, components.Collider)
	if !ok {
		return nil, nil, false
	}
	return posC.(*components.PositionComponent), colC.(*components.ColliderComponent), true
}

func circlesOverlap(pos1 *components.PositionComponent, col1 *components.ColliderComponent, pos2 *components.PositionComponent, col2 *components.ColliderComponent) bool {
	dist := math.Hypot(pos1.X-pos2.X, pos1.Y-pos2.Y)
	return dist < col1.Radius+col2.Radius
}
