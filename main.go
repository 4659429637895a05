package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"ebiten-arena/config"
	"ebiten-arena/world"
)

func main() {
	debug := flag.Bool("debug", false, "log simulation events to stderr")
	enemies := flag.Int("enemies", 5, "number of enemies to spawn at start")
	templates := flag.String("templates", "", "directory of extra enemy template JSON files")
	flag.Parse()

	log := zerolog.Nop()
	if *debug {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	w, err := world.NewWorld(config.WorldWidth, config.WorldHeight, world.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create world")
		os.Exit(1)
	}
	if *templates != "" {
		if err := w.LoadEnemyTemplates(*templates); err != nil {
			log.Fatal().Err(err).Msg("failed to load enemy templates")
			os.Exit(1)
		}
	}

	w.SpawnPlayer()
	for i := 0; i < *enemies; i++ {
		w.SpawnEnemy()
	}

	ebiten.SetWindowSize(int(config.WorldWidth), int(config.WorldHeight))
	ebiten.SetWindowTitle("Ebiten Arena")
	if err := ebiten.RunGame(NewGame(w)); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
		os.Exit(1)
	}
}
