package parameter

import "time"

// Frame pacing
const (
	// FrameInterval is the presentation period, ~30 FPS
	FrameInterval = 33 * time.Millisecond
)

// View defaults: world units to terminal cells
// Cells are roughly twice as tall as wide, so Y is scaled by half of X
const (
	ViewScaleX = 0.5
	ViewScaleY = 0.25
)

// Glyphs
const (
	NodeRune      = 'o'
	FixedNodeRune = '@'
	LinkRune      = '·'
	CutTrailRune  = '×'
	PointerRune   = '+'
)

// Link strain (length over rest) at which link color is fully hot
const StrainColorMax = 1.8

// Status bar labels
const (
	StatusRunText    = " RUN "
	StatusPausedText = " PAUSED "
	StatusAudioText  = " ♪ "
)

// CutTrailLength is the number of recent cut-gesture points kept for display
const CutTrailLength = 12

// AnchorSlots is the number of fixed nodes addressable by anchor keys
const AnchorSlots = 4

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-cloth.log"
	MaxLogSize  = 10 * 1024 * 1024
)
