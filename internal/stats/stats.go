// Package stats collects the numbers shown by the performance overlay.
package stats

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
)

// ring keeps the last len(buf) samples.
type ring struct {
	buf    []float64
	next   int
	filled int
}

func (r *ring) add(v float64) {
	r.buf[r.next] = v
	r.next = (r.next + 1) % len(r.buf)
	if r.filled < len(r.buf) {
		r.filled++
	}
}

func (r *ring) samples() []float64 {
	return r.buf[:r.filled]
}

// Monitor tracks step cost and frame rate over a sliding window.
type Monitor struct {
	step     ring // ms spent in the simulation step
	interval ring // ms between presented frames
	last     time.Time

	edges  int
	active int
}

// Summary is a snapshot of the window.
type Summary struct {
	FPS        float64
	StepMean   float64 // ms
	StepStdDev float64 // ms
	Edges      int
	Active     int
}

// New returns a monitor averaging over window frames.
func New(window int) *Monitor {
	if window < 1 {
		window = 1
	}
	return &Monitor{
		step:     ring{buf: make([]float64, window)},
		interval: ring{buf: make([]float64, window)},
	}
}

// RecordStep stores the cost and output of one simulation step.
func (m *Monitor) RecordStep(step time.Duration, active, edges int) {
	m.step.add(float64(step) / float64(time.Millisecond))
	m.active = active
	m.edges = edges
}

// RecordFrame stores the time a frame was presented. FPS comes from the
// gaps between presented frames, independent of how often steps run.
func (m *Monitor) RecordFrame(at time.Time) {
	if !m.last.IsZero() {
		m.interval.add(float64(at.Sub(m.last)) / float64(time.Millisecond))
	}
	m.last = at
}

// Summary computes the window statistics.
func (m *Monitor) Summary() Summary {
	s := Summary{Edges: m.edges, Active: m.active}
	if steps := m.step.samples(); len(steps) > 0 {
		s.StepMean, s.StepStdDev = stat.MeanStdDev(steps, nil)
		if len(steps) == 1 {
			s.StepStdDev = 0
		}
	}
	if iv := m.interval.samples(); len(iv) > 0 {
		if mean := stat.Mean(iv, nil); mean > 0 {
			s.FPS = 1000 / mean
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("FPS %.1f  step %.2f±%.2f ms  particles %d  edges %d",
		s.FPS, s.StepMean, s.StepStdDev, s.Active, s.Edges)
}
