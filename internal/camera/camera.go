// Package camera implements a perspective orbit camera around the origin.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/olivierh59500/particle-plexus-go/internal/config"
)

const (
	rotateSpeed  = 0.005 // rad per pixel dragged
	zoomSpeed    = 0.1   // fraction of distance per wheel notch
	maxElevation = math.Pi/2 - 0.01
)

// Orbit looks at the origin from a point on a sphere of radius Distance.
type Orbit struct {
	Azimuth   float64 // rad, around y
	Elevation float64 // rad, above the xz plane
	Distance  float64

	minDistance, maxDistance float64
	fov, near, far           float32
	aspect                   float32
	enabled                  bool
}

// New builds a camera from cfg for a viewport of width x height.
func New(cfg config.Camera, width, height int) *Orbit {
	o := &Orbit{
		Distance:    cfg.Distance,
		minDistance: cfg.MinDistance,
		maxDistance: cfg.MaxDistance,
		fov:         mgl32.DegToRad(float32(cfg.Fov)),
		near:        float32(cfg.Near),
		far:         float32(cfg.Far),
		enabled:     cfg.Controls,
	}
	o.Resize(width, height)
	return o
}

// Resize updates the aspect ratio for a new viewport.
func (o *Orbit) Resize(width, height int) {
	if height <= 0 {
		return
	}
	o.aspect = float32(width) / float32(height)
}

// Aspect returns the current aspect ratio.
func (o *Orbit) Aspect() float32 {
	return o.aspect
}

// Rotate orbits by a drag of dx, dy pixels.
func (o *Orbit) Rotate(dx, dy float64) {
	if !o.enabled {
		return
	}
	o.Azimuth -= dx * rotateSpeed
	o.Elevation += dy * rotateSpeed
	o.Elevation = math.Max(-maxElevation, math.Min(maxElevation, o.Elevation))
}

// Zoom moves toward (positive notches) or away from the origin, within the
// configured distance range.
func (o *Orbit) Zoom(notches float64) {
	if !o.enabled {
		return
	}
	o.Distance *= 1 - notches*zoomSpeed
	o.Distance = math.Max(o.minDistance, math.Min(o.maxDistance, o.Distance))
}

// Eye returns the camera position.
func (o *Orbit) Eye() mgl32.Vec3 {
	ce := math.Cos(o.Elevation)
	return mgl32.Vec3{
		float32(o.Distance * ce * math.Sin(o.Azimuth)),
		float32(o.Distance * math.Sin(o.Elevation)),
		float32(o.Distance * ce * math.Cos(o.Azimuth)),
	}
}

// ViewProjection returns projection * view.
func (o *Orbit) ViewProjection() mgl32.Mat4 {
	proj := mgl32.Perspective(o.fov, o.aspect, o.near, o.far)
	view := mgl32.LookAtV(o.Eye(), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// Project maps p to screen pixels with vp from ViewProjection.
// ok is false for points behind the camera or outside the depth range.
func Project(vp mgl32.Mat4, p mgl32.Vec3, width, height int) (x, y float32, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, false
	}
	x = (ndc.X() + 1) * 0.5 * float32(width)
	y = (1 - ndc.Y()) * 0.5 * float32(height)
	return x, y, true
}
