package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/particle-plexus-go/internal/panel"
)

// Key repeat, in ticks
const (
	repeatDelay    = 30
	repeatInterval = 3
)

type binding struct {
	keys   []ebiten.Key
	action panel.Action
	repeat bool
}

var bindings = []binding{
	{[]ebiten.Key{ebiten.KeyD}, panel.ToggleDots, false},
	{[]ebiten.Key{ebiten.KeyL}, panel.ToggleLines, false},
	{[]ebiten.Key{ebiten.KeyC}, panel.ToggleLimit, false},
	{[]ebiten.Key{ebiten.KeyH}, panel.TogglePanel, false},
	{[]ebiten.Key{ebiten.KeyArrowUp}, panel.DistanceUp, true},
	{[]ebiten.Key{ebiten.KeyArrowDown}, panel.DistanceDown, true},
	{[]ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}, panel.ConnectionsUp, true},
	{[]ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}, panel.ConnectionsDown, true},
	{[]ebiten.Key{ebiten.KeyPeriod, ebiten.KeyArrowRight}, panel.CountUp, true},
	{[]ebiten.Key{ebiten.KeyComma, ebiten.KeyArrowLeft}, panel.CountDown, true},
}

// pressed reports a fresh press, or an auto-repeat of a held key.
func pressed(k ebiten.Key, repeat bool) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return repeat && d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// handleInput processes keyboard and mouse input
func (s *Simulation) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		s.closed = true
		return
	}

	for _, b := range bindings {
		for _, k := range b.keys {
			if pressed(k, b.repeat) {
				s.panel.Do(b.action)
				break
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.savePreset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		s.loadPreset()
	}

	// Zoom
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		s.camera.Zoom(wheelY)
	}

	// Orbit (drag)
	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.camera.Rotate(float64(mx)-s.PrevMX, float64(my)-s.PrevMY)
	}
	s.PrevMX = float64(mx)
	s.PrevMY = float64(my)
}
