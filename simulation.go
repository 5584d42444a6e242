package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particle-plexus-go/internal/camera"
	"github.com/olivierh59500/particle-plexus-go/internal/config"
	"github.com/olivierh59500/particle-plexus-go/internal/graph"
	"github.com/olivierh59500/particle-plexus-go/internal/panel"
	"github.com/olivierh59500/particle-plexus-go/internal/particles"
	"github.com/olivierh59500/particle-plexus-go/internal/raf"
	"github.com/olivierh59500/particle-plexus-go/internal/render"
	"github.com/olivierh59500/particle-plexus-go/internal/scene"
	"github.com/olivierh59500/particle-plexus-go/internal/stats"
)

const (
	sceneUpdate = "sceneUpdate"
	statsWindow = 120 // frames
)

// Simulation is the ebiten game: it owns every collaborator of the scene
// and runs one step per tick through the scheduler. By default ticks follow
// the display refresh, so there is one step per presented frame.
type Simulation struct {
	settings *config.Settings
	effect   *config.Effect

	scheduler  *raf.Scheduler
	controller *scene.Controller
	renderer   *render.Renderer
	camera     *camera.Orbit
	panel      *panel.Panel
	monitor    *stats.Monitor

	width, height  int
	PrevMX, PrevMY float64 // previous cursor position for orbit drag
	closed         bool
}

// NewSimulation builds the scene described by settings.
func NewSimulation(settings *config.Settings) *Simulation {
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	radius := float32(settings.Radius)
	var velocities particles.VelocitySeeder
	switch settings.Velocity {
	case config.VelocityPerlin:
		velocities = particles.PerlinVelocities(seed, radius)
	default:
		velocities = particles.UniformVelocities(rng)
	}

	effect := settings.Effect
	s := &Simulation{
		settings:  settings,
		effect:    &effect,
		scheduler: raf.New(),
		camera:    camera.New(settings.Camera, settings.Width, settings.Height),
		monitor:   stats.New(statsWindow),
		width:     settings.Width,
		height:    settings.Height,
	}

	state := particles.New(settings.MaxParticleCount, radius, rng, velocities)
	s.renderer = render.New(state.HalfExtent(), float32(settings.PointSize), effect.ShowDots, effect.ShowLines)
	s.controller = scene.NewController(state, graph.NewLineBuffer(settings.MaxParticleCount), s.effect, s.renderer)
	s.controller.SetParticleCount(effect.ParticleCount)

	s.panel = panel.New(s.effect, settings.MaxParticleCount, panel.Hooks{
		ShowDots:      s.renderer.SetShowDots,
		ShowLines:     s.renderer.SetShowLines,
		ParticleCount: s.controller.SetParticleCount,
	})

	s.scheduler.Subscribe(sceneUpdate, s.step)

	log.Printf("scene: %d particles (%d active), cube %g, seed %d, %s velocities",
		settings.MaxParticleCount, effect.ParticleCount, settings.Radius, seed, settings.Velocity)
	return s
}

// step runs one simulation step and feeds the overlay.
func (s *Simulation) step() {
	start := time.Now()
	edges := s.controller.Step()
	s.monitor.RecordStep(time.Since(start), s.controller.Active(), edges)
}

// Update is called each tick by Ebitengine
func (s *Simulation) Update() error {
	s.handleInput()

	if s.closed {
		s.Close()
		return ebiten.Termination
	}

	s.scheduler.Tick()
	return nil
}

// Draw is called each frame by Ebitengine
func (s *Simulation) Draw(screen *ebiten.Image) {
	s.monitor.RecordFrame(time.Now())
	s.renderer.Draw(screen, s.camera)
	render.DrawOverlay(screen, s.monitor.Summary().String())
	if s.panel.Visible {
		render.DrawPanel(screen, s.panel.Lines())
	}
}

// Layout follows the window size and keeps the camera aspect in sync.
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.width || outsideHeight != s.height {
		s.width, s.height = outsideWidth, outsideHeight
		s.camera.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Close stops the frame subscription; no step runs afterwards.
func (s *Simulation) Close() {
	s.scheduler.Unsubscribe(sceneUpdate)
}

// savePreset writes the current effect parameters to the preset file.
func (s *Simulation) savePreset() {
	if err := config.SavePreset(s.settings.Preset, s.panel.Effect()); err != nil {
		log.Printf("preset: %v", err)
		return
	}
	log.Printf("preset: saved %s", s.settings.Preset)
}

// loadPreset replaces the effect parameters with the preset file's.
func (s *Simulation) loadPreset() {
	e, err := config.LoadPreset(s.settings.Preset, s.panel.Effect(), s.settings.MaxParticleCount)
	if err != nil {
		log.Printf("preset: %v", err)
		return
	}
	s.panel.Apply(e)
	log.Printf("preset: loaded %s", s.settings.Preset)
}
