package renderers

import (
	"github.com/lixenwraith/vi-cloth/engine"
	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/render"
	"github.com/lixenwraith/vi-cloth/vmath"
)

// CutTrailRenderer draws the recent cut gesture path, fading toward its tail
type CutTrailRenderer struct{}

func NewCutTrailRenderer() *CutTrailRenderer { return &CutTrailRenderer{} }

// Render implements SystemRenderer
func (r *CutTrailRenderer) Render(ctx render.RenderContext, snap *engine.Snapshot, buf *render.RenderBuffer) {
	n := len(ctx.Trail)
	h := ctx.PlayHeight()
	for i, p := range ctx.Trail {
		c := ctx.ToCell(p)
		x, y := vmath.Cell(c.X), vmath.Cell(c.Y)
		if y >= h {
			continue
		}
		fade := float64(i+1) / float64(n)
		buf.SetFgOnly(x, y, parameter.CutTrailRune, render.RgbBackground.Blend(render.RgbCutTrail, fade))
	}
}
