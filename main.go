package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particle-plexus-go/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file (defaults are used when empty)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	sim := NewSimulation(settings)

	// Set up Ebitengine game
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle("Particle Plexus")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if settings.SyncWithDisplay() {
		// one Update, so one step, per displayed frame
		ebiten.SetTPS(ebiten.SyncWithFPS)
		log.Printf("stepping once per displayed frame")
	} else {
		ebiten.SetTPS(settings.TPS)
		log.Printf("stepping at %d ticks per second", settings.TPS)
	}

	// Run the game loop
	if err := ebiten.RunGame(sim); err != nil {
		log.Fatal(err)
	}
}
