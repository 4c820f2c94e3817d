package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/vi-cloth/parameter"
)

// offlineManager returns a manager that accepts effects without opening a device
func offlineManager() (*SoundManager, *time.Time) {
	sm := NewSoundManager(nil)
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sm.now = func() time.Time { return clock }
	sm.initialized = true
	return sm, &clock
}

func TestPlayBeforeInitialize(t *testing.T) {
	sm := NewSoundManager(nil)
	if sm.Play(SoundSnap, 1) {
		t.Error("Expected Play to be a no-op before Initialize")
	}
	if sm.Active() != 0 {
		t.Error("Expected no active sounds")
	}
	sm.Cleanup() // No-op, must not panic
}

func TestInitializeDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	if err := NewSoundManager(cfg).Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}
}

func TestPlayRateLimit(t *testing.T) {
	sm, clock := offlineManager()

	if !sm.Play(SoundSnap, 2) {
		t.Fatal("Expected first snap queued")
	}
	if sm.Play(SoundSnap, 2) {
		t.Error("Expected immediate repeat dropped")
	}
	if !sm.Play(SoundCut, 1) {
		t.Error("Expected a different type to play inside the gap")
	}

	*clock = clock.Add(parameter.MinSoundGap)
	if !sm.Play(SoundSnap, 1) {
		t.Error("Expected snap queued after the gap")
	}

	if got := sm.Active(); got != 3 {
		t.Errorf("Expected 3 queued effects, got %d", got)
	}
	if sm.Play(SoundType(42), 1) {
		t.Error("Expected unknown type rejected")
	}
}

func TestMute(t *testing.T) {
	sm, _ := offlineManager()

	if !sm.ToggleMute() {
		t.Fatal("Expected muted after toggle")
	}
	if sm.Play(SoundPin, 1) {
		t.Error("Expected muted manager to drop effects")
	}
	sm.SetMuted(false)
	if !sm.Play(SoundPin, 1) {
		t.Error("Expected effect after unmute")
	}
}

func TestOnStep(t *testing.T) {
	sm, _ := offlineManager()

	sm.OnStep(0, 0)
	if sm.Active() != 0 {
		t.Error("Expected no feedback for a quiet step")
	}
	sm.OnStep(4, 1)
	if sm.Active() != 2 {
		t.Errorf("Expected snap and cut queued, got %d", sm.Active())
	}
}
