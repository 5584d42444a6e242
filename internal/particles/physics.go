package particles

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Bounce advances pos by vel and flips every velocity component whose axis
// ended up outside [-rHalf, rHalf]. Axes are independent. Position is not
// clamped, so a particle may sit up to one step outside the cube.
func Bounce(pos, vel mgl32.Vec3, rHalf float32) (mgl32.Vec3, mgl32.Vec3) {
	pos = pos.Add(vel)
	for axis := 0; axis < 3; axis++ {
		if pos[axis] < -rHalf || pos[axis] > rHalf {
			vel[axis] = -vel[axis]
		}
	}
	return pos, vel
}

// Integrate runs Bounce for particle i in place.
func (s *State) Integrate(i int) {
	pos, vel := Bounce(s.Position(i), s.Velocities[i], s.rHalf)
	s.SetPosition(i, pos)
	s.Velocities[i] = vel
}

// Step integrates the first n particles in index order.
func (s *State) Step(n int) {
	for i := 0; i < n; i++ {
		s.Integrate(i)
	}
}
