package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-cloth/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is a finite oscillator gliding linearly from one frequency to another
type sweep struct {
	from, to float64
	phase    float64
	position int
	total    int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewSweep creates an oscillator gliding from freq to endFreq over duration
// Equal frequencies give a steady tone
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:  freq,
		to:    endFreq,
		total: rate.N(duration),
		wave:  wave,
		rate:  rate,
		rng:   rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.total)
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope shapes a stream with a linear attack and release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with attack/release shaping and cuts it at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

// gain returns the envelope level at sample p
func (e *envelope) gain(p int) float64 {
	g := 1.0
	if e.attack > 0 && p < e.attack {
		g = float64(p) / float64(e.attack)
	}
	if e.release > 0 {
		if left := e.total - p; left < e.release {
			g = math.Min(g, math.Max(float64(left)/float64(e.release), 0))
		}
	}
	return g
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remain := e.total - e.position; len(samples) > remain {
		samples = samples[:remain]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero and below are silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateSnapSound generates a short twang for links breaking; pitch rises
// with the number broken in the same step
func CreateSnapSound(cfg *AudioConfig, count int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	freq := math.Min(parameter.SnapBaseFreq+parameter.SnapFreqStep*float64(max(count-1, 0)), parameter.SnapFreqMax)
	osc := NewSweep(freq, freq*0.5, parameter.SnapSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.SnapSoundDuration, parameter.SnapSoundAttack, parameter.SnapSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundSnap))
}

// CreateCutSound generates a filtered noise swish for the cut tool
func CreateCutSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewSweep(0, 0, parameter.CutSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.CutSoundDuration, parameter.CutSoundAttack, parameter.CutSoundRelease, rate)

	body := NewSweep(1200, 300, parameter.CutSoundDuration, WaveSine, rate)
	bodyShaped := NewEnvelope(body, parameter.CutSoundDuration, parameter.CutSoundAttack, parameter.CutSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.4),
		newVolume(bodyShaped, 0.6),
	)
	return newVolume(mixed, effectVolume(cfg, SoundCut))
}

// CreatePinSound generates a plain sine blip for anchor toggles
func CreatePinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sine, err := generators.SineTone(rate, parameter.PinFreq)
	if err != nil {
		return nil
	}
	tone := beep.Take(rate.N(parameter.PinSoundDuration), sine)
	shaped := NewEnvelope(tone, parameter.PinSoundDuration, parameter.PinSoundAttack, parameter.PinSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundPin))
}

// GetSoundEffect returns the streamer for soundType, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig, count int) beep.Streamer {
	switch soundType {
	case SoundSnap:
		return CreateSnapSound(cfg, count)
	case SoundCut:
		return CreateCutSound(cfg)
	case SoundPin:
		return CreatePinSound(cfg)
	}
	return nil
}
