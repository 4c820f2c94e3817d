package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-cloth/parameter"
)

// SoundManager plays effects through a single mixer attached to the speaker
// Safe for concurrent use
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	cache       *soundCache
	lastPlayed  [soundTypeCount]time.Time
	initialized bool
	muted       bool

	now func() time.Time
}

// NewSoundManager creates a sound manager, nil cfg selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		cache: newSoundCache(cfg),
		now:   time.Now,
	}
}

// Initialize sets up the speaker and starts the mixer
// Returns ErrAudioDisabled when configuration turns audio off
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences further effects without releasing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips mute state and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Play queues an effect; count scales effects that depend on magnitude
// Repeats of the same type within MinSoundGap are dropped
// Returns whether the effect was queued
func (sm *SoundManager) Play(st SoundType, count int) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || st < 0 || st >= soundTypeCount {
		return false
	}

	now := sm.now()
	if now.Sub(sm.lastPlayed[st]) < parameter.MinSoundGap {
		return false
	}

	s := sm.cache.get(st, count)
	if s == nil {
		return false
	}
	sm.lastPlayed[st] = now

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// OnStep plays feedback for the links removed by a frame of simulation
func (sm *SoundManager) OnStep(broken, cut int) {
	if broken > 0 {
		sm.Play(SoundSnap, broken)
	}
	if cut > 0 {
		sm.Play(SoundCut, cut)
	}
}

// Active returns the number of effects still playing
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}
