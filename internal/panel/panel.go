// Package panel is the control panel's model: the only writer of the effect
// parameters. Every setter clamps into the documented range and fires the
// matching change hook.
package panel

import (
	"fmt"

	"github.com/olivierh59500/particle-plexus-go/internal/config"
)

// Step sizes for the increment/decrement bindings
const (
	DistanceStep = 5.0
	CountStep    = 10
)

// Hooks are called after a value actually changes.
type Hooks struct {
	ShowDots      func(bool)
	ShowLines     func(bool)
	ParticleCount func(int)
}

// Panel owns write access to an Effect.
type Panel struct {
	effect       *config.Effect
	maxParticles int
	hooks        Hooks
	Visible      bool
}

// New returns a panel writing to effect.
func New(effect *config.Effect, maxParticles int, hooks Hooks) *Panel {
	return &Panel{
		effect:       effect,
		maxParticles: maxParticles,
		hooks:        hooks,
		Visible:      true,
	}
}

// Effect returns the current parameters by value.
func (p *Panel) Effect() config.Effect {
	return *p.effect
}

// SetShowDots shows or hides the point cloud and notifies the renderer
// when the value changes.
func (p *Panel) SetShowDots(v bool) {
	if p.effect.ShowDots == v {
		return
	}
	p.effect.ShowDots = v
	if p.hooks.ShowDots != nil {
		p.hooks.ShowDots(v)
	}
}

// SetShowLines shows or hides the proximity graph.
func (p *Panel) SetShowLines(v bool) {
	if p.effect.ShowLines == v {
		return
	}
	p.effect.ShowLines = v
	if p.hooks.ShowLines != nil {
		p.hooks.ShowLines(v)
	}
}

// SetLimitConnections enables the per-particle degree cap.
func (p *Panel) SetLimitConnections(v bool) {
	p.effect.LimitConnections = v
}

// SetMinDistance sets the connection threshold, clamped to
// [config.MinDistanceLow, config.MinDistanceHigh].
func (p *Panel) SetMinDistance(v float64) {
	p.effect.MinDistance = config.ClampDistance(v)
}

// SetMaxConnections sets the degree cap, clamped to [0, config.MaxConnectionsHi].
func (p *Panel) SetMaxConnections(v int) {
	p.effect.MaxConnections = config.ClampConnections(v)
}

// SetParticleCount clamps v to the allocated particle count and resizes the
// active prefix when it changes.
func (p *Panel) SetParticleCount(v int) {
	v = config.ClampCount(v, p.maxParticles)
	if p.effect.ParticleCount == v {
		return
	}
	p.effect.ParticleCount = v
	if p.hooks.ParticleCount != nil {
		p.hooks.ParticleCount(v)
	}
}

// Apply replaces every parameter at once, as when a preset is loaded.
func (p *Panel) Apply(e config.Effect) {
	e = e.Clamp(p.maxParticles)
	p.SetShowDots(e.ShowDots)
	p.SetShowLines(e.ShowLines)
	p.SetLimitConnections(e.LimitConnections)
	p.SetMinDistance(e.MinDistance)
	p.SetMaxConnections(e.MaxConnections)
	p.SetParticleCount(e.ParticleCount)
}

// Action is a single panel command, bound to a key by the caller.
type Action int

const (
	ToggleDots Action = iota
	ToggleLines
	ToggleLimit
	DistanceUp
	DistanceDown
	ConnectionsUp
	ConnectionsDown
	CountUp
	CountDown
	TogglePanel
)

// Do performs a.
func (p *Panel) Do(a Action) {
	e := p.effect
	switch a {
	case ToggleDots:
		p.SetShowDots(!e.ShowDots)
	case ToggleLines:
		p.SetShowLines(!e.ShowLines)
	case ToggleLimit:
		p.SetLimitConnections(!e.LimitConnections)
	case DistanceUp:
		p.SetMinDistance(e.MinDistance + DistanceStep)
	case DistanceDown:
		p.SetMinDistance(e.MinDistance - DistanceStep)
	case ConnectionsUp:
		p.SetMaxConnections(e.MaxConnections + 1)
	case ConnectionsDown:
		p.SetMaxConnections(e.MaxConnections - 1)
	case CountUp:
		p.SetParticleCount(e.ParticleCount + CountStep)
	case CountDown:
		p.SetParticleCount(e.ParticleCount - CountStep)
	case TogglePanel:
		p.Visible = !p.Visible
	}
}

// Lines renders the panel rows as text.
func (p *Panel) Lines() []string {
	e := p.effect
	return []string{
		fmt.Sprintf("[D] showDots          %v", e.ShowDots),
		fmt.Sprintf("[L] showLines         %v", e.ShowLines),
		fmt.Sprintf("[Up/Down] minDistance %.0f", e.MinDistance),
		fmt.Sprintf("[C] limitConnections  %v", e.LimitConnections),
		fmt.Sprintf("[+/-] maxConnections  %d", e.MaxConnections),
		fmt.Sprintf("[</>] particleCount   %d/%d", e.ParticleCount, p.maxParticles),
		"[S] save  [O] load  [H] hide",
	}
}
