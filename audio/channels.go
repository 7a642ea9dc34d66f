package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Channel is a named, pausable audio slot. The screen pauses the
// regular and ambient channels while the simulation is paused.
type Channel struct {
	ctrl  *beep.Ctrl
	mixer *beep.Mixer
}

// Manager owns the speaker and the named channels.
// Degrades gracefully: when no audio backend is available every call
// becomes a no-op, the frame loop never sees audio errors.
type Manager struct {
	mu          sync.Mutex
	channels    map[string]*Channel
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates a manager; call Initialize before playing
func NewManager() *Manager {
	return &Manager{
		channels: make(map[string]*Channel),
		mixer:    &beep.Mixer{},
	}
}

// Initialize sets up the speaker and starts the master mixer.
// Failure is reported once; the manager stays usable as a no-op.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Channel returns the named channel, creating it on first use
func (m *Manager) Channel(name string) *Channel {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ch, ok := m.channels[name]; ok {
		return ch
	}

	ch := &Channel{mixer: &beep.Mixer{}}
	ch.ctrl = &beep.Ctrl{Streamer: ch.mixer}
	m.channels[name] = ch

	if m.initialized {
		speaker.Lock()
		m.mixer.Add(ch.ctrl)
		speaker.Unlock()
	} else {
		m.mixer.Add(ch.ctrl)
	}
	return ch
}

// SetPaused pauses or resumes the named channel
func (m *Manager) SetPaused(name string, paused bool) {
	ch := m.Channel(name)

	m.mu.Lock()
	initialized := m.initialized
	m.mu.Unlock()

	if initialized {
		speaker.Lock()
		ch.ctrl.Paused = paused
		speaker.Unlock()
	} else {
		ch.ctrl.Paused = paused
	}
}

// IsPaused reports the named channel's pause state
func (m *Manager) IsPaused(name string) bool {
	ch := m.Channel(name)

	m.mu.Lock()
	initialized := m.initialized
	m.mu.Unlock()

	if initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return ch.ctrl.Paused
}

// Play adds a streamer to the named channel
func (m *Manager) Play(name string, s beep.Streamer) {
	ch := m.Channel(name)

	m.mu.Lock()
	initialized := m.initialized
	m.mu.Unlock()

	if initialized {
		speaker.Lock()
		ch.mixer.Add(s)
		speaker.Unlock()
	} else {
		ch.mixer.Add(s)
	}
}

// Cleanup pauses every channel and clears the master mixer
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	for _, ch := range m.channels {
		ch.ctrl.Paused = true
	}
	m.mixer.Clear()
	speaker.Unlock()

	// beep exposes no speaker Close; clearing streamers is enough
	// to stop output artifacts
	m.initialized = false
}

// Tone returns an endless sine streamer for demo ambience
func Tone(freq float64) (beep.Streamer, error) {
	return generators.SinTone(sampleRate, int(freq))
}
