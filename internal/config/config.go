// Package config holds the scene settings read at startup and the effect
// parameters the control panel edits while the scene runs.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Panel ranges
const (
	MinDistanceLow   = 10.0
	MinDistanceHigh  = 300.0
	MaxConnectionsHi = 30
)

// TPSSync steps once per displayed frame instead of at a fixed tick rate.
// A tps of 0 means the same.
const TPSSync = -1

// Velocity seeding modes
const (
	VelocityUniform = "uniform"
	VelocityPerlin  = "perlin"
)

// Effect holds the parameters the control panel mutates at runtime.
// The simulation reads it once per step and never writes to it.
type Effect struct {
	ShowDots         bool    `toml:"show_dots"`
	ShowLines        bool    `toml:"show_lines"`
	MinDistance      float64 `toml:"min_distance"`
	LimitConnections bool    `toml:"limit_connections"`
	MaxConnections   int     `toml:"max_connections"`
	ParticleCount    int     `toml:"particle_count"`
}

// Camera holds the perspective and orbit-control parameters.
type Camera struct {
	Fov         float64 `toml:"fov"` // unit: degrees
	Near        float64 `toml:"near"`
	Far         float64 `toml:"far"`
	Distance    float64 `toml:"distance"`
	MinDistance float64 `toml:"min_distance"`
	MaxDistance float64 `toml:"max_distance"`
	Controls    bool    `toml:"controls"`
}

// Settings holds everything read from the settings file.
type Settings struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	TPS    int `toml:"tps"` // TPSSync or 0 ties the step to the display refresh

	MaxParticleCount int     `toml:"max_particle_count"`
	Radius           float64 `toml:"radius"` // cube edge length
	Seed             int64   `toml:"seed"`   // 0 picks a time based seed
	Velocity         string  `toml:"velocity"`
	PointSize        float64 `toml:"point_size"`
	Preset           string  `toml:"preset"` // path used by the save/load keys

	Camera Camera `toml:"camera"`
	Effect Effect `toml:"effect"`
}

// DefaultEffect returns the effect parameters the scene starts with.
func DefaultEffect() Effect {
	return Effect{
		ShowDots:         true,
		ShowLines:        true,
		MinDistance:      150,
		LimitConnections: false,
		MaxConnections:   20,
		ParticleCount:    500,
	}
}

// DefaultSettings returns a fresh copy of the default settings.
func DefaultSettings() *Settings {
	return &Settings{
		Width:            1280,
		Height:           720,
		TPS:              TPSSync,
		MaxParticleCount: 1000,
		Radius:           800,
		Seed:             0,
		Velocity:         VelocityUniform,
		PointSize:        3,
		Preset:           "preset.toml",
		Camera: Camera{
			Fov:         25,
			Near:        0.1,
			Far:         4000,
			Distance:    1750,
			MinDistance: 1000,
			MaxDistance: 3000,
			Controls:    true,
		},
		Effect: DefaultEffect(),
	}
}

// Load parses the TOML settings file at path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Settings, error) {
	s := DefaultSettings()
	if path != "" {
		if _, err := toml.DecodeFile(path, s); err != nil {
			return nil, fmt.Errorf("decode settings %s: %w", path, err)
		}
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	s.Effect = s.Effect.Clamp(s.MaxParticleCount)
	return s, nil
}

// Validate reports settings the scene cannot start with.
func (s *Settings) Validate() error {
	var errs []error
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", s.Width, s.Height))
	}
	if s.TPS < TPSSync {
		errs = append(errs, fmt.Errorf("tps %d must be positive, 0 or %d", s.TPS, TPSSync))
	}
	if s.MaxParticleCount <= 0 {
		errs = append(errs, fmt.Errorf("max_particle_count %d must be positive", s.MaxParticleCount))
	}
	if s.Radius <= 0 {
		errs = append(errs, fmt.Errorf("radius %g must be positive", s.Radius))
	}
	if s.Velocity != VelocityUniform && s.Velocity != VelocityPerlin {
		errs = append(errs, fmt.Errorf("unknown velocity mode %q", s.Velocity))
	}
	if s.Camera.MinDistance > s.Camera.MaxDistance {
		errs = append(errs, fmt.Errorf("camera min_distance %g exceeds max_distance %g",
			s.Camera.MinDistance, s.Camera.MaxDistance))
	}
	return errors.Join(errs...)
}

// SyncWithDisplay reports whether the step runs once per displayed frame.
func (s *Settings) SyncWithDisplay() bool {
	return s.TPS <= 0
}

// Clamp returns e with every field forced into the control panel ranges.
func (e Effect) Clamp(maxParticles int) Effect {
	e.ParticleCount = ClampCount(e.ParticleCount, maxParticles)
	e.MaxConnections = ClampConnections(e.MaxConnections)
	e.MinDistance = ClampDistance(e.MinDistance)
	return e
}

// ClampDistance forces v into [MinDistanceLow, MinDistanceHigh].
func ClampDistance(v float64) float64 {
	if v < MinDistanceLow {
		return MinDistanceLow
	}
	if v > MinDistanceHigh {
		return MinDistanceHigh
	}
	return v
}

// ClampConnections forces v into [0, MaxConnectionsHi].
func ClampConnections(v int) int {
	return clampInt(v, 0, MaxConnectionsHi)
}

// ClampCount forces v into [0, maxParticles].
func ClampCount(v, maxParticles int) int {
	return clampInt(v, 0, maxParticles)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SavePreset writes the effect parameters to path as TOML.
func SavePreset(path string, e Effect) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preset: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(e); err != nil {
		f.Close()
		return fmt.Errorf("encode preset: %w", err)
	}
	return f.Close()
}

// LoadPreset reads effect parameters from path. Missing keys keep the
// values of base; the result is clamped to the panel ranges.
func LoadPreset(path string, base Effect, maxParticles int) (Effect, error) {
	e := base
	if _, err := toml.DecodeFile(path, &e); err != nil {
		return base, fmt.Errorf("decode preset %s: %w", path, err)
	}
	return e.Clamp(maxParticles), nil
}
