package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/olivierh59500/particle-plexus-go/internal/config"
)

func newCamera() *Orbit {
	return New(config.DefaultSettings().Camera, 1280, 720)
}

func TestInitialEye(t *testing.T) {
	o := newCamera()

	eye := o.Eye()
	if !eye.ApproxEqual(mgl32.Vec3{0, 0, 1750}) {
		t.Errorf("Expected eye at z=1750, got %v", eye)
	}
}

func TestProjectOriginToCenter(t *testing.T) {
	o := newCamera()

	x, y, ok := Project(o.ViewProjection(), mgl32.Vec3{0, 0, 0}, 1280, 720)
	if !ok {
		t.Fatal("Expected origin to be visible")
	}
	if math.Abs(float64(x-640)) > 0.01 || math.Abs(float64(y-360)) > 0.01 {
		t.Errorf("Expected (640, 360), got (%f, %f)", x, y)
	}
}

func TestProjectAxes(t *testing.T) {
	o := newCamera()
	vp := o.ViewProjection()

	x, _, _ := Project(vp, mgl32.Vec3{100, 0, 0}, 1280, 720)
	if x <= 640 {
		t.Errorf("Expected +x to land right of center, got %f", x)
	}
	_, y, _ := Project(vp, mgl32.Vec3{0, 100, 0}, 1280, 720)
	if y >= 360 {
		t.Errorf("Expected +y to land above center, got %f", y)
	}
	if _, _, ok := Project(vp, mgl32.Vec3{0, 0, 2000}, 1280, 720); ok {
		t.Error("Expected a point behind the camera to be culled")
	}
}

func TestZoomClamps(t *testing.T) {
	o := newCamera()

	for i := 0; i < 100; i++ {
		o.Zoom(1)
	}
	if o.Distance != 1000 {
		t.Errorf("Expected distance clamped to 1000, got %f", o.Distance)
	}
	for i := 0; i < 100; i++ {
		o.Zoom(-1)
	}
	if o.Distance != 3000 {
		t.Errorf("Expected distance clamped to 3000, got %f", o.Distance)
	}
}

func TestRotateClampsElevation(t *testing.T) {
	o := newCamera()

	o.Rotate(0, 1e6)
	if o.Elevation != maxElevation {
		t.Errorf("Expected elevation %f, got %f", maxElevation, o.Elevation)
	}
	o.Rotate(100, 0)
	if math.Abs(o.Azimuth+0.5) > 1e-12 {
		t.Errorf("Expected azimuth -0.5, got %f", o.Azimuth)
	}
}

func TestControlsDisabled(t *testing.T) {
	cfg := config.DefaultSettings().Camera
	cfg.Controls = false
	o := New(cfg, 800, 600)

	o.Rotate(50, 50)
	o.Zoom(3)

	if o.Azimuth != 0 || o.Elevation != 0 || o.Distance != 1750 {
		t.Errorf("Expected camera unchanged, got az=%f el=%f d=%f", o.Azimuth, o.Elevation, o.Distance)
	}
}

func TestResize(t *testing.T) {
	o := newCamera()

	o.Resize(1000, 500)
	if o.Aspect() != 2 {
		t.Errorf("Expected aspect 2, got %f", o.Aspect())
	}
	o.Resize(1000, 0)
	if o.Aspect() != 2 {
		t.Errorf("Expected zero height to be ignored, got %f", o.Aspect())
	}
}
