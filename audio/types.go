package audio

import (
	"errors"

	"github.com/lixenwraith/vi-cloth/parameter"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundSnap SoundType = iota // Link breakage
	SoundCut                   // Slice gesture removed links
	SoundPin                   // Anchor toggled
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"snap", "cut", "pin"}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audio enabled at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundSnap: 0.8,
			SoundCut:  0.6,
			SoundPin:  0.5,
		},
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
