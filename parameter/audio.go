package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer, trades latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive effects of the same type
	MinSoundGap = 40 * time.Millisecond
)

// Snap Sound (link breakage)
const (
	SnapSoundDuration = 90 * time.Millisecond
	SnapSoundAttack   = 2 * time.Millisecond
	SnapSoundRelease  = 70 * time.Millisecond
	SnapBaseFreq      = 660.0
	// SnapFreqStep raises pitch per additional link broken in the same step
	SnapFreqStep = 40.0
	SnapFreqMax  = 1400.0
)

// Cut Sound (slice gesture)
const (
	CutSoundDuration = 120 * time.Millisecond
	CutSoundAttack   = 5 * time.Millisecond
	CutSoundRelease  = 100 * time.Millisecond
)

// Pin Sound (anchor toggle)
const (
	PinSoundDuration = 60 * time.Millisecond
	PinSoundAttack   = 2 * time.Millisecond
	PinSoundRelease  = 40 * time.Millisecond
	PinFreq          = 440.0
)
