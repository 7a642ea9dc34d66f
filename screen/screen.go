package screen

import (
	"log"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/frameplot/overlay"
	"github.com/lixenwraith/frameplot/plot"
	"github.com/lixenwraith/frameplot/status"
)

// Simulation is the world controller the screen drives.
// Update runs every tick; paused gates world time, inputLocked gates
// player input while menus or the overlay capture focus.
type Simulation interface {
	Update(delta float64, inputLocked, paused bool)

	// OnQuit runs once at screen teardown (world save hook)
	OnQuit() error
}

// WorldRenderer draws the world view under the HUD
type WorldRenderer interface {
	Draw(surface plot.Surface, font plot.Font)
}

// ChannelPauser pauses named audio channels; satisfied by audio.Manager
type ChannelPauser interface {
	SetPaused(name string, paused bool)
}

// Audio channels the screen controls while paused
const (
	ChannelRegular = "regular"
	ChannelAmbient = "ambient"
)

// LevelScreen wires the simulation, world renderer, debug overlay and
// audio channels into one update/draw lifecycle
type LevelScreen struct {
	sim      Simulation
	world    WorldRenderer
	overlay  *overlay.Overlay
	channels ChannelPauser

	hudVisible bool
	paused     bool
	closed     bool

	statTicks *atomic.Int64
}

// New creates a level screen. The HUD starts visible, the simulation
// unpaused, the debug overlay hidden until toggled.
func New(sim Simulation, world WorldRenderer, ov *overlay.Overlay, channels ChannelPauser, reg *status.Registry) *LevelScreen {
	return &LevelScreen{
		sim:        sim,
		world:      world,
		overlay:    ov,
		channels:   channels,
		hudVisible: true,
		statTicks:  reg.Ints.Get("sim.ticks"),
	}
}

// HandleKey processes screen hotkeys, returning true when the host
// should quit
func (s *LevelScreen) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyF1:
		s.hudVisible = !s.hudVisible
	case tcell.KeyF3:
		s.overlay.Toggle()
	case tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			s.paused = !s.paused
		case 'q':
			return true
		}
	}
	return false
}

// IsPaused reports whether simulation time is frozen
func (s *LevelScreen) IsPaused() bool {
	return s.paused
}

// IsHUDVisible reports whether Draw renders the HUD layer
func (s *LevelScreen) IsHUDVisible() bool {
	return s.hudVisible
}

// Update advances one simulation tick. Pause state propagates to the
// audio channels every tick so a channel started mid-pause stays
// consistent.
func (s *LevelScreen) Update(delta float64) {
	s.channels.SetPaused(ChannelRegular, s.paused)
	s.channels.SetPaused(ChannelAmbient, s.paused)

	inputLocked := s.paused || s.overlay.IsVisible()
	s.sim.Update(delta, inputLocked, s.paused)

	if !s.paused {
		s.overlay.Update(delta)
		s.statTicks.Add(1)
	}
}

// Draw renders the world, then the HUD layer when visible.
// Reads state only; drawing twice between updates is identical.
func (s *LevelScreen) Draw(surface plot.Surface, font plot.Font) {
	s.world.Draw(surface, font)
	if s.hudVisible {
		s.overlay.Render(surface, font)
	}
}

// Close tears the screen down, running the simulation quit hook once
func (s *LevelScreen) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.sim.OnQuit(); err != nil {
		log.Printf("simulation quit hook failed: %v", err)
		return err
	}
	return nil
}
