package renderers

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-cloth/engine"
	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/render"
)

// StatusBarRenderer draws the status bar at the bottom
type StatusBarRenderer struct {
	// FPS Tracking
	now           func() time.Time
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{
		now:           time.Now,
		lastFpsUpdate: time.Now(),
	}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, snap *engine.Snapshot, buf *render.RenderBuffer) {
	s.frameCount++
	now := s.now()
	if now.Sub(s.lastFpsUpdate) >= time.Second {
		s.currentFps = s.frameCount
		s.frameCount = 0
		s.lastFpsUpdate = now
	}

	y := ctx.Height - 1
	if y < 0 {
		return
	}
	for x := 0; x < ctx.Width; x++ {
		buf.SetWithBg(x, y, ' ', render.RgbStatusInfo, render.RgbStatusBg)
	}

	x := 0

	// Audio mute indicator - always visible
	audioBg := render.RgbAudioUnmuted
	if ctx.Muted {
		audioBg = render.RgbAudioMuted
	}
	x = buf.WriteString(x, y, parameter.StatusAudioText, render.RgbStatusText, audioBg)

	modeText, modeBg := parameter.StatusRunText, render.RgbModeRunBg
	if ctx.Paused {
		modeText, modeBg = parameter.StatusPausedText, render.RgbModePausedBg
	}
	x = buf.WriteString(x, y, modeText, render.RgbStatusText, modeBg)

	// Anchor slots, numbered as their keys
	for i, held := range ctx.Anchors {
		bg := render.RgbAnchorEmptyBg
		if held {
			bg = render.RgbAnchorHeldBg
		}
		x = buf.WriteString(x, y, fmt.Sprintf("%d", i+1), render.RgbStatusText, bg)
	}

	info := fmt.Sprintf(" %s  t=%d  nodes=%d links=%d  broken=%d cut=%d  %s  %dfps",
		ctx.Scenario, snap.Tick, len(snap.Nodes), len(snap.Links), ctx.Broken, ctx.Cut, ctx.Gesture, s.currentFps)
	buf.WriteString(x, y, info, render.RgbStatusInfo, render.RgbStatusBg)
}
