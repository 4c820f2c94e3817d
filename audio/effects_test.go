package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-cloth/parameter"
)

// drain pulls s to exhaustion and returns every sample streamed
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("Streamer never drained")
	return nil
}

func TestSweepLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewSweep(440, 880, 100*time.Millisecond, WaveSine, rate)

	samples := drain(t, osc)
	if len(samples) != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), len(samples))
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("Sample %d out of range or unbalanced: %v", i, s)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Unexpected error %v", osc.Err())
	}
}

func TestSweepSquareValues(t *testing.T) {
	osc := NewSweep(220, 220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	for i, s := range drain(t, osc) {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("Square sample %d should be +-1, got %f", i, s[0])
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := NewSweep(0, 0, time.Second, WaveSquare, rate) // phase stays 0: constant +1
	env := NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := drain(t, env)
	if len(samples) != 100 {
		t.Fatalf("Expected envelope to cut at 100 samples, got %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent start, got %f", samples[0][0])
	}
	if samples[5][0] != 0.5 {
		t.Errorf("Expected half level mid-attack, got %f", samples[5][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full sustain, got %f", samples[50][0])
	}
	if samples[90][0] != 0.5 {
		t.Errorf("Expected half level mid-release, got %f", samples[90][0])
	}
}

func TestSilentVolume(t *testing.T) {
	src := NewSweep(440, 440, 10*time.Millisecond, WaveSine, beep.SampleRate(44100))
	for _, s := range drain(t, newVolume(src, 0)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Expected silence, got %v", s)
		}
	}
}

func TestSoundEffects(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	snap := drain(t, CreateSnapSound(cfg, 3))
	if len(snap) != rate.N(parameter.SnapSoundDuration) {
		t.Errorf("Snap: expected %d samples, got %d", rate.N(parameter.SnapSoundDuration), len(snap))
	}

	pin := drain(t, CreatePinSound(cfg))
	if len(pin) != rate.N(parameter.PinSoundDuration) {
		t.Errorf("Pin: expected %d samples, got %d", rate.N(parameter.PinSoundDuration), len(pin))
	}

	cut := drain(t, CreateCutSound(cfg))
	if len(cut) == 0 || len(cut) > rate.N(parameter.CutSoundDuration)+512 {
		t.Errorf("Cut: unexpected length %d", len(cut))
	}

	for name, samples := range map[string][][2]float64{"snap": snap, "pin": pin, "cut": cut} {
		for i, s := range samples {
			if math.IsNaN(s[0]) || math.Abs(s[0]) > 1 {
				t.Fatalf("%s: sample %d out of range: %v", name, i, s)
			}
		}
	}

	if GetSoundEffect(SoundType(99), cfg, 1) != nil {
		t.Error("Expected nil streamer for unknown sound type")
	}
}
