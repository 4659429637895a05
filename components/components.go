package components

import (
	"image/color"

	"ebiten-arena/ecs"
)

// Define component IDs for our simulation
const (
	Position ecs.ComponentID = iota
	Velocity
	Renderable
	Health
	Collider
	AI
	PlayerTag
	EnemyTag
	ProjectileTag
	Lifetime
)

// Shape names used by RenderableComponent
const (
	ShapeCircle = "circle"
	ShapeRect   = "rect"
)

// PositionComponent stores entity position in world coordinates
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent stores entity velocity in units per second
type VelocityComponent struct {
	DX, DY float64
}

// RenderableComponent stores presentation information
type RenderableComponent struct {
	Color color.RGBA
	Size  float64
	Shape string
}

// NewRenderableComponent creates a circle renderable with the given color and size
func NewRenderableComponent(c color.RGBA, size float64) *RenderableComponent {
	return &RenderableComponent{
		Color: c,
		Size:  size,
		Shape: ShapeCircle,
	}
}

// HealthComponent stores current and maximum hit points
type HealthComponent struct {
	Current int
	Maximum int
}

// ColliderComponent stores the radius of a circular collision shape
type ColliderComponent struct {
	Radius float64
}

// AIComponent stores wandering state: the current target point and the time
// left until a new target is picked
type AIComponent struct {
	Behavior      string
	TargetX       float64
	TargetY       float64
	DecisionTimer float64
}

// NewAIComponent creates an AI component with the wander behavior and an
// expired decision timer, so a target is picked on the first tick
func NewAIComponent() *AIComponent {
	return &AIComponent{Behavior: "wander"}
}

// PlayerTagComponent marks an entity as player-controlled
type PlayerTagComponent struct {
	Score int
	Speed float64
}

// EnemyTagComponent marks an entity as an enemy
type EnemyTagComponent struct {
	Damage int // contact damage per tick while overlapping a player
	Points int // score awarded to players when this enemy is defeated
}

// ProjectileTagComponent marks an entity as a projectile. OwnerID is a weak
// back-reference to the spawning entity, kept only for attribution; it may
// name an entity that no longer exists and must never be dereferenced.
type ProjectileTagComponent struct {
	Damage  int
	OwnerID ecs.EntityID
}

// LifetimeComponent stores the seconds left before the entity expires
type LifetimeComponent struct {
	Remaining float64
}
