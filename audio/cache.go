package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-cloth/parameter"
)

type cacheKey struct {
	st      SoundType
	variant int
}

// soundCache stores pre-rendered effect buffers
// Effects are deterministic per (type, variant), so each renders once
type soundCache struct {
	mu    sync.RWMutex
	cfg   *AudioConfig
	store map[cacheKey]*beep.Buffer
}

func newSoundCache(cfg *AudioConfig) *soundCache {
	return &soundCache{cfg: cfg, store: make(map[cacheKey]*beep.Buffer)}
}

// snapVariants is the number of distinct snap pitches, the last one capped
var snapVariants = int(math.Ceil((parameter.SnapFreqMax-parameter.SnapBaseFreq)/parameter.SnapFreqStep)) + 1

// variant folds a count onto the distinct renderings of st
func variant(st SoundType, count int) int {
	if st != SoundSnap {
		return 0
	}
	return min(max(count, 1), snapVariants)
}

// get returns a fresh streamer over the cached buffer, rendering on first use
func (c *soundCache) get(st SoundType, count int) beep.Streamer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}
	key := cacheKey{st, variant(st, count)}

	c.mu.RLock()
	buf, ok := c.store[key]
	c.mu.RUnlock()
	if !ok {
		c.mu.Lock()
		// Double-check after acquiring write lock
		if buf, ok = c.store[key]; !ok {
			buf = c.render(key)
			c.store[key] = buf
		}
		c.mu.Unlock()
	}

	if buf == nil {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}

func (c *soundCache) render(key cacheKey) *beep.Buffer {
	s := GetSoundEffect(key.st, c.cfg, key.variant)
	if s == nil {
		return nil
	}
	buf := beep.NewBuffer(beep.Format{
		SampleRate:  beep.SampleRate(c.cfg.SampleRate),
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(s)
	return buf
}

// preload renders the effects heard first in a session
func (c *soundCache) preload() {
	c.get(SoundSnap, 1)
	c.get(SoundCut, 1)
	c.get(SoundPin, 1)
}

// size returns the number of cached renderings
func (c *soundCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}
