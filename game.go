package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-arena/components"
	"ebiten-arena/config"
	"ebiten-arena/world"
)

// How often the demo tops up the enemy population, in seconds
const enemySpawnInterval = 3.0

// Game implements ebiten.Game interface over the simulation world.
type Game struct {
	world      *world.World
	spawnTimer float64
}

// NewGame creates the demo around an already populated world
func NewGame(w *world.World) *Game {
	return &Game{
		world:      w,
		spawnTimer: enemySpawnInterval,
	}
}

// Update polls input, forwards it as flag mapping and advances the world by
// one tick
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	in := world.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	}

	// Click to fire a projectile from the player toward the cursor
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if x, y, ok := g.world.GetPlayerPosition(); ok {
			mx, my := ebiten.CursorPosition()
			g.world.SpawnProjectile(x, y, float64(mx), float64(my))
		}
	}

	g.spawnTimer -= dt
	if g.spawnTimer <= 0 {
		g.world.SpawnEnemy()
		g.spawnTimer = enemySpawnInterval
	}

	return g.world.Update(dt, in)
}

// Draw renders the world's projection and a stats overlay
func (g *Game) Draw(screen *ebiten.Image) {
	for _, item := range g.world.GetRenderData() {
		switch item.Shape {
		case components.ShapeRect:
			vector.DrawFilledRect(screen,
				float32(item.X-item.Size), float32(item.Y-item.Size),
				float32(2*item.Size), float32(2*item.Size),
				item.Color, true)
		default:
			vector.DrawFilledCircle(screen,
				float32(item.X), float32(item.Y), float32(item.Size),
				item.Color, true)
		}
	}

	stats := g.world.GetStats()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"HP: %d  Score: %d  Enemies: %d  Bullets: %d  Entities: %d",
		stats.PlayerHealth, stats.PlayerScore,
		stats.EnemyCount, stats.BulletCount, stats.TotalEntities,
	))
}

// Layout returns the fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(config.WorldWidth), int(config.WorldHeight)
}
