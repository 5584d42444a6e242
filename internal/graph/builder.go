// Package graph turns the active particle positions into the line segments
// of the proximity graph.
package graph

import (
	"math"

	"github.com/olivierh59500/particle-plexus-go/internal/config"
	"github.com/olivierh59500/particle-plexus-go/internal/particles"
)

// LineBuffer holds line endpoints and their per-vertex colors.
// Only the first DrawCount vertices are meaningful; the rest is stale.
type LineBuffer struct {
	Positions []float32 // x, y, z per vertex, two vertices per edge
	Colors    []float32 // r, g, b per vertex
	DrawCount int       // vertices written this step
}

// NewLineBuffer sizes both buffers for maxParticles² segments, which covers
// every pair the builder can emit.
func NewLineBuffer(maxParticles int) *LineBuffer {
	segments := maxParticles * maxParticles
	return &LineBuffer{
		Positions: make([]float32, segments*3),
		Colors:    make([]float32, segments*3),
	}
}

// Edges returns the number of edges written this step.
func (b *LineBuffer) Edges() int {
	return b.DrawCount / 2
}

// Build resets the connection counters of the first n particles, then emits
// an edge for every pair closer than effect.MinDistance.
//
// With LimitConnections set, a particle whose running count has reached
// MaxConnections is skipped as second endpoint, and as first endpoint if it
// is already saturated when its own row starts. Counts are read as they grow
// during the pass, so the cap is greedy and order dependent: a row that
// starts below the cap runs to the end and may overshoot it.
func Build(s *particles.State, n int, effect *config.Effect, lines *LineBuffer) int {
	s.ResetConnections(n)

	pos := s.Positions
	conn := s.Connections
	limit := effect.LimitConnections
	maxConn := effect.MaxConnections
	minDist := effect.MinDistance

	vertexpos := 0
	colorpos := 0
	edges := 0

	for i := 0; i < n; i++ {
		if limit && conn[i] >= maxConn {
			continue
		}

		xi, yi, zi := pos[i*3], pos[i*3+1], pos[i*3+2]

		for j := i + 1; j < n; j++ {
			if limit && conn[j] >= maxConn {
				continue
			}

			dx := float64(xi) - float64(pos[j*3])
			dy := float64(yi) - float64(pos[j*3+1])
			dz := float64(zi) - float64(pos[j*3+2])
			dist := math.Sqrt(dx*dx + dy*dy + dz*dz)

			if dist >= minDist {
				continue
			}

			conn[i]++
			conn[j]++

			alpha := float32(1.0 - dist/minDist)

			lines.Positions[vertexpos] = xi
			lines.Positions[vertexpos+1] = yi
			lines.Positions[vertexpos+2] = zi
			lines.Positions[vertexpos+3] = pos[j*3]
			lines.Positions[vertexpos+4] = pos[j*3+1]
			lines.Positions[vertexpos+5] = pos[j*3+2]
			vertexpos += 6

			for k := 0; k < 6; k++ {
				lines.Colors[colorpos+k] = alpha
			}
			colorpos += 6

			edges++
		}
	}

	lines.DrawCount = edges * 2
	return edges
}
