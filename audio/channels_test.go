package audio

// Tests run against an uninitialized manager: no speaker is available
// in CI, and the manager must behave identically minus output.

import "testing"

func TestChannelCreateOnFirstUse(t *testing.T) {
	m := NewManager()

	a := m.Channel("regular")
	b := m.Channel("regular")
	if a != b {
		t.Error("Expected same channel for repeated lookup")
	}

	c := m.Channel("ambient")
	if c == a {
		t.Error("Expected distinct channels per name")
	}
}

func TestSetPaused(t *testing.T) {
	m := NewManager()

	if m.IsPaused("regular") {
		t.Error("Expected new channel unpaused")
	}

	m.SetPaused("regular", true)
	if !m.IsPaused("regular") {
		t.Error("Expected channel paused")
	}
	if m.IsPaused("ambient") {
		t.Error("Expected other channel unaffected")
	}

	m.SetPaused("regular", false)
	if m.IsPaused("regular") {
		t.Error("Expected channel resumed")
	}
}

func TestPlayWithoutSpeakerIsSafe(t *testing.T) {
	m := NewManager()

	tone, err := Tone(220)
	if err != nil {
		t.Fatalf("Tone failed: %v", err)
	}

	// Must not panic without an initialized speaker
	m.Play("ambient", tone)
	m.Cleanup()
}
