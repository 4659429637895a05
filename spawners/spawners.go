package spawners

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"ebiten-arena/components"
	"ebiten-arena/config"
	"ebiten-arena/data"
	"ebiten-arena/ecs"
)

// EntitySpawner creates entities with their full component bundles. The
// bundle is attached immediately after the id is allocated, before any system
// runs, so no system ever observes a partially constructed entity.
type EntitySpawner struct {
	em            *ecs.EntityManager
	templates     *data.EnemyTemplateManager
	rng           *rand.Rand
	width, height float64
	log           zerolog.Logger
}

// NewEntitySpawner creates a spawner for the given manager and world bounds
func NewEntitySpawner(em *ecs.EntityManager, templates *data.EnemyTemplateManager, rng *rand.Rand, width, height float64, log zerolog.Logger) *EntitySpawner {
	return &EntitySpawner{
		em:        em,
		templates: templates,
		rng:       rng,
		width:     width,
		height:    height,
		log:       log,
	}
}

// CreatePlayer creates a player entity at the center of the world
func (s *EntitySpawner) CreatePlayer() ecs.EntityID {
	id := s.em.CreateEntity()

	s.em.AddComponent(id, components.Position, &components.PositionComponent{
		X: s.width / 2,
		Y: s.height / 2,
	})
	s.em.AddComponent(id, components.Velocity, &components.VelocityComponent{})
	s.em.AddComponent(id, components.Renderable, components.NewRenderableComponent(
		color.RGBA{G: 255, A: 255},
		config.PlayerSize,
	))
	s.em.AddComponent(id, components.Health, &components.HealthComponent{
		Current: config.PlayerHealth,
		Maximum: config.PlayerHealth,
	})
	s.em.AddComponent(id, components.Collider, &components.ColliderComponent{
		Radius: config.PlayerRadius,
	})
	s.em.AddComponent(id, components.PlayerTag, &components.PlayerTagComponent{
		Speed: config.PlayerSpeed,
	})

	s.log.Debug().Uint64("entity", uint64(id)).Msg("player spawned")
	return id
}

// CreateEnemy creates an enemy from the default archetype at a random
// position inside the wander margins
func (s *EntitySpawner) CreateEnemy() ecs.EntityID {
	// Built-in default always exists
	t, _ := s.templates.GetTemplate(data.DefaultEnemyTemplate)
	return s.createEnemy(t)
}

// CreateEnemyFromTemplate creates an enemy from the named archetype
func (s *EntitySpawner) CreateEnemyFromTemplate(name string) (ecs.EntityID, error) {
	t, err := s.templates.GetTemplate(name)
	if err != nil {
		return ecs.NoEntity, err
	}
	return s.createEnemy(t), nil
}

func (s *EntitySpawner) createEnemy(t *data.EnemyTemplate) ecs.EntityID {
	id := s.em.CreateEntity()

	x := config.WanderMargin + s.rng.Float64()*(s.width-2*config.WanderMargin)
	y := config.WanderMargin + s.rng.Float64()*(s.height-2*config.WanderMargin)

	s.em.AddComponent(id, components.Position, &components.PositionComponent{X: x, Y: y})
	s.em.AddComponent(id, components.Velocity, &components.VelocityComponent{})
	s.em.AddComponent(id, components.Renderable, components.NewRenderableComponent(t.RGBA(), t.Size))
	s.em.AddComponent(id, components.Health, &components.HealthComponent{
		Current: t.Health,
		Maximum: t.Health,
	})
	s.em.AddComponent(id, components.Collider, &components.ColliderComponent{Radius: t.Radius})
	s.em.AddComponent(id, components.EnemyTag, &components.EnemyTagComponent{
		Damage: t.Damage,
		Points: t.Points,
	})
	s.em.AddComponent(id, components.AI, components.NewAIComponent())

	s.log.Debug().Uint64("entity", uint64(id)).Str("template", t.ID).Msg("enemy spawned")
	return id
}

// CreateProjectile creates a projectile at (x, y) heading toward the target
// point. When the target coincides with the origin the direction is
// degenerate; the projectile then flies rightward at full speed.
func (s *EntitySpawner) CreateProjectile(x, y, targetX, targetY float64, owner ecs.EntityID) ecs.EntityID {
	id := s.em.CreateEntity()

	dx := targetX - x
	dy := targetY - y
	dist := math.Hypot(dx, dy)

	velX := config.ProjectileSpeed
	velY := 0.0
	if dist > 0 {
		velX = dx / dist * config.ProjectileSpeed
		velY = dy / dist * config.ProjectileSpeed
	}

	s.em.AddComponent(id, components.Position, &components.PositionComponent{X: x, Y: y})
	s.em.AddComponent(id, components.Velocity, &components.VelocityComponent{DX: velX, DY: velY})
	s.em.AddComponent(id, components.Renderable, components.NewRenderableComponent(
		color.RGBA{R: 255, G: 255, A: 255},
		config.ProjectileSize,
	))
	s.em.AddComponent(id, components.Collider, &components.ColliderComponent{
		Radius: config.ProjectileRad,
	})
	s.em.AddComponent(id, components.ProjectileTag, &components.ProjectileTagComponent{
		Damage:  config.ProjectileDmg,
		OwnerID: owner,
	})
	s.em.AddComponent(id, components.Lifetime, &components.LifetimeComponent{
		Remaining: config.ProjectileLifetime,
	})

	s.log.Debug().Uint64("entity", uint64(id)).Uint64("owner", uint64(owner)).Msg("projectile spawned")
	return id
}
