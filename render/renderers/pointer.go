package renderers

import (
	"github.com/lixenwraith/vi-cloth/engine"
	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/render"
)

// PointerRenderer marks the pointer cell while a gesture is active
type PointerRenderer struct{}

func NewPointerRenderer() *PointerRenderer { return &PointerRenderer{} }

// Render implements SystemRenderer
func (r *PointerRenderer) Render(ctx render.RenderContext, snap *engine.Snapshot, buf *render.RenderBuffer) {
	if ctx.Gesture == "" || ctx.Gesture == "idle" || ctx.PointerY >= ctx.PlayHeight() {
		return
	}
	buf.SetFgOnly(ctx.PointerX, ctx.PointerY, parameter.PointerRune, render.RgbPointer)
}
