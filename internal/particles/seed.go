package particles

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

// VelocitySeeder picks a particle's initial velocity from its start position.
type VelocitySeeder func(pos mgl32.Vec3) mgl32.Vec3

// UniformVelocities draws each component uniformly from [-1, 1).
func UniformVelocities(rng *rand.Rand) VelocitySeeder {
	return func(mgl32.Vec3) mgl32.Vec3 {
		return mgl32.Vec3{
			-1 + rng.Float32()*2,
			-1 + rng.Float32()*2,
			-1 + rng.Float32()*2,
		}
	}
}

// Noise sampling parameters
const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 4.0 // lattice cells across the cube
)

// PerlinVelocities samples each component from 3D Perlin noise at the
// particle's start position, so neighbours start out drifting together.
// Components stay within [-1, 1].
func PerlinVelocities(seed int64, radius float32) VelocitySeeder {
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	inv := float64(noiseScale / radius)

	return func(pos mgl32.Vec3) mgl32.Vec3 {
		x, y, z := float64(pos[0])*inv, float64(pos[1])*inv, float64(pos[2])*inv
		// offset lattices so the three components are uncorrelated
		return mgl32.Vec3{
			unit(noise.Noise3D(x, y, z) * 2),
			unit(noise.Noise3D(x+17.3, y-5.1, z+9.7) * 2),
			unit(noise.Noise3D(x-11.9, y+23.5, z-3.3) * 2),
		}
	}
}

func unit(v float64) float32 {
	return mgl32.Clamp(float32(v), -1, 1)
}
