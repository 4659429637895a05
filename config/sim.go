package config

// World and simulation tuning constants
const (
	// Default world dimensions in world units
	WorldWidth  = 800.0
	WorldHeight = 600.0

	// Player movement speed in units per second
	PlayerSpeed = 200.0

	// Speed at which wandering enemies chase their current target
	ChaseSpeed = 80.0

	// Distance at which an enemy counts as having arrived at its target;
	// inside this radius velocity is zeroed to avoid oscillation
	ArrivalThreshold = 5.0

	// Margin kept between AI wander targets and the world edges
	WanderMargin = 50.0

	// Bounds of the uniform decision timer reset, in seconds
	DecisionTimerMin = 1.0
	DecisionTimerMax = 3.0

	// Projectile speed in units per second and lifetime in seconds
	ProjectileSpeed    = 400.0
	ProjectileLifetime = 2.0
)

// Spawn bundle defaults
const (
	PlayerHealth   = 100
	PlayerSize     = 10.0
	PlayerRadius   = 10.0
	ProjectileSize = 3.0
	ProjectileRad  = 3.0
	ProjectileDmg  = 25
)

// GetWorldSize returns the default world dimensions
func GetWorldSize() (width, height float64) {
	return WorldWidth, WorldHeight
}
