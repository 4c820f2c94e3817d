package render

import "github.com/lixenwraith/vi-cloth/engine"

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, snap *engine.Snapshot, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
