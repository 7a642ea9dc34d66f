package main

import (
	"log"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/frameplot/plot"
	"github.com/lixenwraith/frameplot/status"
)

// drifter is one glyph orbiting the screen center
type drifter struct {
	glyph  rune
	radius float64
	speed  float64
	phase  float64
}

// driftSim is a toy world: glyphs orbiting the center, enough motion
// to exercise the screen lifecycle and give the overlay something to
// measure. Implements screen.Simulation and screen.WorldRenderer.
type driftSim struct {
	width, height int
	t             float64
	drifters      []drifter

	statEntities *atomic.Int64
}

func newDriftSim(width, height int, reg *status.Registry) *driftSim {
	s := &driftSim{
		width:  width,
		height: height,
		drifters: []drifter{
			{glyph: '@', radius: 6, speed: 1.0},
			{glyph: '*', radius: 9, speed: -0.6, phase: 2},
			{glyph: 'o', radius: 12, speed: 0.4, phase: 4},
		},
		statEntities: reg.Ints.Get("sim.entities"),
	}
	s.statEntities.Store(int64(len(s.drifters)))
	return s
}

// Resize tracks terminal dimensions
func (s *driftSim) Resize(width, height int) {
	s.width, s.height = width, height
}

// Update implements screen.Simulation
func (s *driftSim) Update(delta float64, inputLocked, paused bool) {
	if paused {
		return
	}
	s.t += delta
}

// OnQuit implements screen.Simulation
func (s *driftSim) OnQuit() error {
	log.Printf("Leaving level after %.1fs", s.t)
	return nil
}

// Draw implements screen.WorldRenderer
func (s *driftSim) Draw(surface plot.Surface, font plot.Font) {
	cx := float64(s.width) / 2
	cy := float64(s.height) / 2
	for _, d := range s.drifters {
		a := s.t*d.speed + d.phase
		x := int(cx + math.Cos(a)*d.radius*2)
		y := int(cy + math.Sin(a)*d.radius)
		font.Draw(string(d.glyph), x, y, plot.White(0.8))
	}
}
