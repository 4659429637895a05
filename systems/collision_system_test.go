package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-arena/components"
	"ebiten-arena/ecs"
)

func spawnTestProjectile(em *ecs.EntityManager, x, y float64, damage int) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, components.Position, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, components.Collider, &components.ColliderComponent{Radius: 3})
	em.AddComponent(id, components.ProjectileTag, &components.ProjectileTagComponent{Damage: damage})
	return id
}

func spawnTestEnemy(em *ecs.EntityManager, x, y float64, hp, damage, points int) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, components.Position, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, components.Collider, &components.ColliderComponent{Radius: 8})
	em.AddComponent(id, components.Health, &components.HealthComponent{Current: hp, Maximum: hp})
	em.AddComponent(id, components.EnemyTag, &components.EnemyTagComponent{Damage: damage, Points: points})
	return id
}

func spawnTestPlayer(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, components.Position, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, components.Collider, &components.ColliderComponent{Radius: 10})
	em.AddComponent(id, components.Health, &components.HealthComponent{Current: 100, Maximum: 100})
	em.AddComponent(id, components.PlayerTag, &components.PlayerTagComponent{Speed: 200})
	return id
}

func runCollision(em *ecs.EntityManager) {
	NewCollisionSystem(nil).Update(em, 1.0/60)
	em.FlushDestroyed()
}

func TestProjectileHitsOverlappingEnemyExactlyOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	proj := spawnTestProjectile(em, 100, 100, 25)
	enemy := spawnTestEnemy(em, 105, 100, 50, 10, 10)

	runCollision(em)

	assert.False(t, em.Alive(proj), "projectile is consumed by the hit")
	require.True(t, em.Alive(enemy))
	assert.Equal(t, 25, health(t, em, enemy).Current)
}

func TestProjectileMissesDistantEnemy(t *testing.T) {
	em := ecs.NewEntityManager()
	proj := spawnTestProjectile(em, 100, 100, 25)
	enemy := spawnTestEnemy(em, 400, 400, 50, 10, 10)

	runCollision(em)

	assert.True(t, em.Alive(proj))
	assert.Equal(t, 50, health(t, em, enemy).Current)
}

func TestProjectileResolvesOneHitAgainstLowestID(t *testing.T) {
	em := ecs.NewEntityManager()
	proj := spawnTestProjectile(em, 100, 100, 25)
	first := spawnTestEnemy(em, 104, 100, 50, 10, 10)
	second := spawnTestEnemy(em, 96, 100, 50, 10, 10)

	runCollision(em)

	assert.False(t, em.Alive(proj))
	assert.Equal(t, 25, health(t, em, first).Current, "lowest-id enemy takes the hit")
	assert.Equal(t, 50, health(t, em, second).Current)
}

func TestDefeatedEnemyAwardsPointsToEveryPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	p1 := spawnTestPlayer(em, 700, 500)
	p2 := spawnTestPlayer(em, 700, 550)
	spawnTestProjectile(em, 100, 100, 25)
	enemy := spawnTestEnemy(em, 105, 100, 10, 10, 15)

	runCollision(em)

	assert.False(t, em.Alive(enemy))
	for _, id := range []ecs.EntityID{p1, p2} {
		c, ok := em.GetComponent(id, components.PlayerTag)
		require.True(t, ok)
		assert.Equal(t, 15, c.(*components.PlayerTagComponent).Score)
	}
}

func TestSurvivingEnemyAwardsNothing(t *testing.T) {
	em := ecs.NewEntityManager()
	player := spawnTestPlayer(em, 700, 500)
	spawnTestProjectile(em, 100, 100, 25)
	spawnTestEnemy(em, 105, 100, 50, 10, 15)

	runCollision(em)

	c, _ := em.GetComponent(player, components.PlayerTag)
	assert.Equal(t, 0, c.(*components.PlayerTagComponent).Score)
}

func TestContactDamageRepeatsEveryTick(t *testing.T) {
	em := ecs.NewEntityManager()
	player := spawnTestPlayer(em, 100, 100)
	spawnTestEnemy(em, 110, 100, 50, 10, 10)

	sys := NewCollisionSystem(nil)
	for i := 0; i < 3; i++ {
		sys.Update(em, 1.0/60)
		em.FlushDestroyed()
	}

	assert.Equal(t, 70, health(t, em, player).Current)
}

func TestEnemyDefeatedThisTickStillDealsNoContactDamage(t *testing.T) {
	em := ecs.NewEntityManager()
	// Player overlaps the enemy, and a projectile kills the enemy in the
	// same tick: the enemy vs player pass must skip the dead enemy.
	player := spawnTestPlayer(em, 110, 100)
	spawnTestProjectile(em, 100, 100, 25)
	enemy := spawnTestEnemy(em, 105, 100, 10, 10, 10)

	runCollision(em)

	assert.False(t, em.Alive(enemy))
	assert.Equal(t, 100, health(t, em, player).Current)
}

func TestCollisionDestructionIsDeduplicatedAndDeferred(t *testing.T) {
	em := ecs.NewEntityManager()
	proj := spawnTestProjectile(em, 100, 100, 25)
	enemy := spawnTestEnemy(em, 105, 100, 10, 10, 10)

	NewCollisionSystem(nil).Update(em, 1.0/60)
	assert.True(t, em.Alive(proj), "destruction waits for the flush")
	assert.True(t, em.Alive(enemy))

	assert.Equal(t, 2, em.FlushDestroyed())
}

func TestCollisionEmitsEvents(t *testing.T) {
	em := ecs.NewEntityManager()
	events := ecs.NewEventManager()
	spawnTestPlayer(em, 700, 500)
	proj := spawnTestProjectile(em, 100, 100, 25)
	enemy := spawnTestEnemy(em, 105, 100, 10, 10, 10)

	var hits []ProjectileHitEvent
	var defeats []EnemyDefeatedEvent
	events.Subscribe(EventProjectileHit, func(e ecs.Event) {
		hits = append(hits, e.(ProjectileHitEvent))
	})
	events.Subscribe(EventEnemyDefeated, func(e ecs.Event) {
		defeats = append(defeats, e.(EnemyDefeatedEvent))
	})

	NewCollisionSystem(events).Update(em, 1.0/60)
	em.FlushDestroyed()

	require.Len(t, hits, 1)
	assert.Equal(t, proj, hits[0].Projectile)
	assert.Equal(t, enemy, hits[0].Enemy)
	require.Len(t, defeats, 1)
	assert.Equal(t, 10, defeats[0].Points)
}
