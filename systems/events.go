package systems

import "ebiten-arena/ecs"

// Event types emitted by the simulation systems
const (
	EventProjectileHit ecs.EventType = "projectile_hit"
	EventEnemyDefeated ecs.EventType = "enemy_defeated"
	EventPlayerDamaged ecs.EventType = "player_damaged"
	EventEntityExpired ecs.EventType = "entity_expired"
)

// ProjectileHitEvent is emitted when a projectile strikes an enemy
type ProjectileHitEvent struct {
	Projectile ecs.EntityID
	Enemy      ecs.EntityID
	Damage     int
}

// Type returns the event type
func (e ProjectileHitEvent) Type() ecs.EventType {
	return EventProjectileHit
}

// EnemyDefeatedEvent is emitted when an enemy's health reaches zero
type EnemyDefeatedEvent struct {
	Enemy  ecs.EntityID
	Points int
}

// Type returns the event type
func (e EnemyDefeatedEvent) Type() ecs.EventType {
	return EventEnemyDefeated
}

// PlayerDamagedEvent is emitted for each tick of enemy contact damage
type PlayerDamagedEvent struct {
	Player ecs.EntityID
	Enemy  ecs.EntityID
	Damage int
}

// Type returns the event type
func (e PlayerDamagedEvent) Type() ecs.EventType {
	return EventPlayerDamaged
}

// EntityExpiredEvent is emitted when an entity's lifetime runs out
type EntityExpiredEvent struct {
	Entity ecs.EntityID
}

// Type returns the event type
func (e EntityExpiredEvent) Type() ecs.EventType {
	return EventEntityExpired
}
