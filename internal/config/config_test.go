package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if err := s.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	if s.MaxParticleCount != 1000 {
		t.Errorf("Expected max particle count 1000, got %d", s.MaxParticleCount)
	}
	if s.Radius != 800 {
		t.Errorf("Expected radius 800, got %g", s.Radius)
	}
	if s.Effect.MinDistance != 150 {
		t.Errorf("Expected min distance 150, got %g", s.Effect.MinDistance)
	}
	if s.Effect.ParticleCount != 500 {
		t.Errorf("Expected particle count 500, got %d", s.Effect.ParticleCount)
	}
	if s.Effect.LimitConnections {
		t.Error("Expected connection limit to start disabled")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plexus.toml")
	data := `
radius = 400
velocity = "perlin"

[effect]
min_distance = 999
particle_count = 42
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Radius != 400 {
		t.Errorf("Expected radius 400, got %g", s.Radius)
	}
	if s.Velocity != VelocityPerlin {
		t.Errorf("Expected perlin velocity, got %q", s.Velocity)
	}
	if s.Effect.ParticleCount != 42 {
		t.Errorf("Expected particle count 42, got %d", s.Effect.ParticleCount)
	}
	if s.Effect.MinDistance != MinDistanceHigh {
		t.Errorf("Expected min distance clamped to %g, got %g", MinDistanceHigh, s.Effect.MinDistance)
	}
	// untouched keys keep their defaults
	if s.TPS != TPSSync {
		t.Errorf("Expected default tps %d, got %d", TPSSync, s.TPS)
	}
	if !s.Effect.ShowDots {
		t.Error("Expected show_dots to keep its default")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero capacity", "max_particle_count = 0"},
		{"tps below sync", "tps = -2"},
		{"negative radius", "radius = -1"},
		{"unknown velocity", `velocity = "brownian"`},
		{"camera range", "[camera]\nmin_distance = 10\nmax_distance = 5"},
		{"bad toml", "radius = = 3"},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Expected an error, got nil")
			}
		})
	}
}

func TestTickRate(t *testing.T) {
	tests := []struct {
		data string
		tps  int
		sync bool
	}{
		{"", TPSSync, true},
		{"tps = -1", -1, true},
		{"tps = 0", 0, true},
		{"tps = 60", 60, false},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(fmt.Sprintf("tps %d", tt.tps), func(t *testing.T) {
			path := filepath.Join(dir, "tps.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			s, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if s.TPS != tt.tps {
				t.Errorf("Expected tps %d, got %d", tt.tps, s.TPS)
			}
			if s.SyncWithDisplay() != tt.sync {
				t.Errorf("Expected sync %v, got %v", tt.sync, s.SyncWithDisplay())
			}
		})
	}
}

func TestLoadEmptyPath(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Expected defaults, got %v", err)
	}
	if s.Width != 1280 || s.Height != 720 {
		t.Errorf("Expected 1280x720, got %dx%d", s.Width, s.Height)
	}
}

func TestEffectClamp(t *testing.T) {
	e := Effect{MinDistance: 1, MaxConnections: 99, ParticleCount: 5000}.Clamp(1000)

	if e.MinDistance != MinDistanceLow {
		t.Errorf("Expected min distance %g, got %g", MinDistanceLow, e.MinDistance)
	}
	if e.MaxConnections != MaxConnectionsHi {
		t.Errorf("Expected max connections %d, got %d", MaxConnectionsHi, e.MaxConnections)
	}
	if e.ParticleCount != 1000 {
		t.Errorf("Expected particle count 1000, got %d", e.ParticleCount)
	}

	e = Effect{MinDistance: 100, MaxConnections: -3, ParticleCount: -1}.Clamp(1000)
	if e.MaxConnections != 0 || e.ParticleCount != 0 {
		t.Errorf("Expected negatives clamped to 0, got %d and %d", e.MaxConnections, e.ParticleCount)
	}
	if e.MinDistance != 100 {
		t.Errorf("Expected in-range min distance to be kept, got %g", e.MinDistance)
	}
}

func TestPresetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.toml")
	want := Effect{
		ShowDots:         false,
		ShowLines:        true,
		MinDistance:      75,
		LimitConnections: true,
		MaxConnections:   4,
		ParticleCount:    250,
	}

	if err := SavePreset(path, want); err != nil {
		t.Fatalf("SavePreset failed: %v", err)
	}
	got, err := LoadPreset(path, DefaultEffect(), 1000)
	if err != nil {
		t.Fatalf("LoadPreset failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestLoadPresetMissingFileKeepsBase(t *testing.T) {
	base := DefaultEffect()
	got, err := LoadPreset(filepath.Join(t.TempDir(), "missing.toml"), base, 1000)
	if err == nil {
		t.Fatal("Expected an error for a missing preset")
	}
	if got != base {
		t.Errorf("Expected base effect on failure, got %+v", got)
	}
}
