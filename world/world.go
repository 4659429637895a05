package world

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"ebiten-arena/components"
	"ebiten-arena/data"
	"ebiten-arena/ecs"
	"ebiten-arena/spawners"
	"ebiten-arena/systems"
)

// Input is the boolean flag mapping produced by the input layer. Player
// velocity is recomputed from it on every tick; opposing flags cancel.
type Input struct {
	Left, Right, Up, Down bool
}

// RenderItem is one entry of the render projection
type RenderItem struct {
	Shape string
	X, Y  float64
	Color color.RGBA
	Size  float64
}

// Stats is the aggregate simulation state. All fields are zero when no live
// player exists.
type Stats struct {
	PlayerHealth  int
	PlayerScore   int
	EnemyCount    int
	BulletCount   int
	TotalEntities int
}

// World owns the entity manager and the ordered system list and executes one
// tick per Update call. It is single threaded: one Update runs to completion
// before anything else touches the stores.
type World struct {
	width, height float64
	em            *ecs.EntityManager
	events        *ecs.EventManager
	systems       []ecs.System
	spawner       *spawners.EntitySpawner
	templates     *data.EnemyTemplateManager
	randSrc       rand.Source
	log           zerolog.Logger
}

// Option configures a World
type Option func(*World)

// WithLogger sets the world's logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(w *World) { w.log = log }
}

// WithRandSource sets the random source used for enemy placement and AI
// targeting. Tests inject a fixed-seed source for reproducibility.
func WithRandSource(src rand.Source) Option {
	return func(w *World) { w.randSrc = src }
}

// NewWorld creates a world with the given bounds. Systems run in the fixed
// order AI, Movement, Collision, Lifetime; queued destructions are flushed
// after each system's pass.
func NewWorld(width, height float64, opts ...Option) (*World, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, eris.Errorf("invalid world dimensions %gx%g", width, height)
	}

	w := &World{
		width:  width,
		height: height,
		em:     ecs.NewEntityManager(),
		events: ecs.NewEventManager(),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.randSrc == nil {
		w.randSrc = rand.NewSource(time.Now().UnixNano())
	}
	rng := rand.New(w.randSrc)

	w.templates = data.NewEnemyTemplateManager()
	w.spawner = spawners.NewEntitySpawner(w.em, w.templates, rng, width, height, w.log)

	w.systems = []ecs.System{
		systems.NewAISystem(width, height, rng),
		systems.NewMovementSystem(width, height),
		systems.NewCollisionSystem(w.events),
		systems.NewLifetimeSystem(w.events),
	}

	w.subscribeLogging()
	return w, nil
}

func (w *World) subscribeLogging() {
	w.events.Subscribe(systems.EventEnemyDefeated, func(e ecs.Event) {
		ev := e.(systems.EnemyDefeatedEvent)
		w.log.Debug().Uint64("enemy", uint64(ev.Enemy)).Int("points", ev.Points).Msg("enemy defeated")
	})
	w.events.Subscribe(systems.EventPlayerDamaged, func(e ecs.Event) {
		ev := e.(systems.PlayerDamagedEvent)
		w.log.Debug().Uint64("player", uint64(ev.Player)).Int("damage", ev.Damage).Msg("player damaged")
	})
}

// Events returns the world's event bus for additional subscribers.
func (w *World) Events() *ecs.EventManager {
	return w.events
}

// EntityManager exposes the underlying manager for direct component access.
func (w *World) EntityManager() *ecs.EntityManager {
	return w.em
}

// Size returns the world bounds.
func (w *World) Size() (width, height float64) {
	return w.width, w.height
}

// Update executes exactly one tick: input application, then the systems in
// their fixed order, flushing queued destructions after each pass. A
// negative, NaN or infinite dt is rejected with an error and no tick runs.
func (w *World) Update(dt float64, in Input) error {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return eris.Errorf("invalid dt %g: must be finite and non-negative", dt)
	}

	w.applyInput(in)
	for _, system := range w.systems {
		system.Update(w.em, dt)
		w.em.FlushDestroyed()
	}
	return nil
}

// applyInput recomputes every player's velocity from the flags. Opposing
// flags cancel to zero; there is no diagonal normalization.
func (w *World) applyInput(in Input) {
	for _, id := range w.em.Query(components.PlayerTag, components.Velocity) {
		velC, ok := w.em.GetComponent(id, components.Velocity)
		if !ok {
			continue
		}
		tagC, ok := w.em.GetComponent(id, components.PlayerTag)
		if !ok {
			continue
		}
		vel := velC.(*components.VelocityComponent)
		tag := tagC.(*components.PlayerTagComponent)

		vel.DX = (axis(in.Right) - axis(in.Left)) * tag.Speed
		vel.DY = (axis(in.Down) - axis(in.Up)) * tag.Speed
	}
}

func axis(pressed bool) float64 {
	if pressed {
		return 1
	}
	return 0
}

// SpawnPlayer creates a player entity at the center of the world.
func (w *World) SpawnPlayer() ecs.EntityID {
	return w.spawner.CreatePlayer()
}

// SpawnEnemy creates an enemy from the default archetype at a random position.
func (w *World) SpawnEnemy() ecs.EntityID {
	return w.spawner.CreateEnemy()
}

// SpawnEnemyFromTemplate creates an enemy from the named archetype.
func (w *World) SpawnEnemyFromTemplate(name string) (ecs.EntityID, error) {
	return w.spawner.CreateEnemyFromTemplate(name)
}

// SpawnProjectile creates a projectile at (x, y) heading toward the target
// point, attributed to the current player (if any).
func (w *World) SpawnProjectile(x, y, targetX, targetY float64) ecs.EntityID {
	return w.spawner.CreateProjectile(x, y, targetX, targetY, w.playerID())
}

// LoadEnemyTemplates loads extra enemy archetypes from a directory of JSON
// files.
func (w *World) LoadEnemyTemplates(dirPath string) error {
	return w.templates.LoadTemplatesFromDirectory(dirPath)
}

// playerID returns the lowest-id live player, or NoEntity.
func (w *World) playerID() ecs.EntityID {
	players := w.em.Query(components.PlayerTag)
	if len(players) == 0 {
		return ecs.NoEntity
	}
	return players[0]
}

// GetPlayerPosition returns the current player's position, or false when no
// live player exists.
func (w *World) GetPlayerPosition() (x, y float64, ok bool) {
	id := w.playerID()
	if id == ecs.NoEntity {
		return 0, 0, false
	}
	posC, ok := w.em.GetComponent(id, components.Position)
	if !ok {
		return 0, 0, false
	}
	pos := posC.(*components.PositionComponent)
	return pos.X, pos.Y, true
}

// GetRenderData returns one item per entity with a position and a renderable,
// in ascending id order. It is a pure projection: repeated calls without an
// intervening Update return identical sequences.
func (w *World) GetRenderData() []RenderItem {
	ids := w.em.Query(components.Position, components.Renderable)
	items := make([]RenderItem, 0, len(ids))
	for _, id := range ids {
		posC, ok := w.em.GetComponent(id, components.Position)
		if !ok {
			continue
		}
		rendC, ok := w.em.GetComponent(id, components.Renderable)
		if !ok {
			continue
		}
		pos := posC.(*components.PositionComponent)
		rend := rendC.(*components.RenderableComponent)
		items = append(items, RenderItem{
			Shape: rend.Shape,
			X:     pos.X,
			Y:     pos.Y,
			Color: rend.Color,
			Size:  rend.Size,
		})
	}
	return items
}

// GetStats returns the aggregate stats projection. Every field is zero when
// no live player exists.
func (w *World) GetStats() Stats {
	id := w.playerID()
	if id == ecs.NoEntity {
		return Stats{}
	}

	stats := Stats{
		EnemyCount:    len(w.em.Query(components.EnemyTag)),
		BulletCount:   len(w.em.Query(components.ProjectileTag)),
		TotalEntities: w.em.EntityCount(),
	}
	if healthC, ok := w.em.GetComponent(id, components.Health); ok {
		stats.PlayerHealth = healthC.(*components.HealthComponent).Current
	}
	if tagC, ok := w.em.GetComponent(id, components.PlayerTag); ok {
		stats.PlayerScore = tagC.(*components.PlayerTagComponent).Score
	}
	return stats
}
