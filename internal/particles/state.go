// Package particles holds the kinematic state of the particle cloud and the
// boundary physics that moves it.
//
// State is laid out as parallel arrays indexed by particle id: Positions is
// the flat xyz buffer handed to the renderer as-is, Velocities and
// Connections run alongside it. Only the first n particles (the active set)
// are ever iterated; the rest keep their initial values.
package particles

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// State owns every particle allocated for the scene.
type State struct {
	Positions   []float32    // x, y, z per particle
	Velocities  []mgl32.Vec3 // per particle, units per step
	Connections []int        // edges touching each particle in the current step

	radius float32 // cube edge length
	rHalf  float32
}

// New allocates capacity particles spread uniformly inside a cube of edge
// radius centered on the origin, with velocities taken from seed.
func New(capacity int, radius float32, rng *rand.Rand, seed VelocitySeeder) *State {
	s := &State{
		Positions:   make([]float32, capacity*3),
		Velocities:  make([]mgl32.Vec3, capacity),
		Connections: make([]int, capacity),
		radius:      radius,
		rHalf:       radius / 2,
	}

	for i := 0; i < capacity; i++ {
		p := mgl32.Vec3{
			rng.Float32()*radius - s.rHalf,
			rng.Float32()*radius - s.rHalf,
			rng.Float32()*radius - s.rHalf,
		}
		s.SetPosition(i, p)
		s.Velocities[i] = seed(p)
	}

	return s
}

// Cap returns the number of allocated particles.
func (s *State) Cap() int {
	return len(s.Velocities)
}

// Radius returns the cube edge length.
func (s *State) Radius() float32 {
	return s.radius
}

// HalfExtent returns half the cube edge length.
func (s *State) HalfExtent() float32 {
	return s.rHalf
}

// Position returns particle i's position.
func (s *State) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{s.Positions[i*3], s.Positions[i*3+1], s.Positions[i*3+2]}
}

// SetPosition overwrites particle i's position.
func (s *State) SetPosition(i int, p mgl32.Vec3) {
	s.Positions[i*3] = p[0]
	s.Positions[i*3+1] = p[1]
	s.Positions[i*3+2] = p[2]
}

// ResetConnections zeroes the connection counters of the first n particles.
func (s *State) ResetConnections(n int) {
	clear(s.Connections[:n])
}

// Active clamps n to the allocated capacity.
func (s *State) Active(n int) int {
	if n < 0 {
		return 0
	}
	if n > s.Cap() {
		return s.Cap()
	}
	return n
}
