// Package scene drives one simulation step per rendered frame.
package scene

import (
	"github.com/olivierh59500/particle-plexus-go/internal/config"
	"github.com/olivierh59500/particle-plexus-go/internal/graph"
	"github.com/olivierh59500/particle-plexus-go/internal/particles"
)

// Renderer receives the buffers produced by a step. Slices are owned by the
// controller and stay valid until the next step; only the first count
// particles and drawCount line vertices are meaningful.
type Renderer interface {
	UpdatePoints(positions []float32, count int)
	UpdateLines(positions, colors []float32, drawCount int)
}

// Controller holds the particle state, the line buffer and a read-only view
// of the effect parameters. It keeps no other state between steps.
type Controller struct {
	state    *particles.State
	lines    *graph.LineBuffer
	effect   *config.Effect
	renderer Renderer

	active int
	edges  int
}

// NewController wires a controller. lines must be sized for state.Cap().
func NewController(state *particles.State, lines *graph.LineBuffer, effect *config.Effect, r Renderer) *Controller {
	return &Controller{
		state:    state,
		lines:    lines,
		effect:   effect,
		renderer: r,
	}
}

// Step clears the counters, moves every active particle, rebuilds the
// proximity graph and hands the buffers to the renderer.
// It returns the number of edges emitted.
func (c *Controller) Step() int {
	n := c.state.Active(c.effect.ParticleCount)

	c.state.ResetConnections(n)
	c.state.Step(n)
	c.edges = graph.Build(c.state, n, c.effect, c.lines)
	c.active = n

	c.renderer.UpdatePoints(c.state.Positions, n)
	c.renderer.UpdateLines(c.lines.Positions, c.lines.Colors, c.lines.DrawCount)

	return c.edges
}

// SetParticleCount pushes a new draw range for the point cloud without
// waiting for the next step.
func (c *Controller) SetParticleCount(n int) {
	c.active = c.state.Active(n)
	c.renderer.UpdatePoints(c.state.Positions, c.active)
}

// Active returns the size of the active set at the last update.
func (c *Controller) Active() int {
	return c.active
}

// Edges returns the number of edges emitted by the last step.
func (c *Controller) Edges() int {
	return c.edges
}

// State exposes the particle state.
func (c *Controller) State() *particles.State {
	return c.state
}
