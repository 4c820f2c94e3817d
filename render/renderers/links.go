package renderers

import (
	"github.com/lixenwraith/vi-cloth/engine"
	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/render"
	"github.com/lixenwraith/vi-cloth/vmath"
)

// LinkRenderer rasterizes every link as a supercover line colored by strain
type LinkRenderer struct{}

func NewLinkRenderer() *LinkRenderer { return &LinkRenderer{} }

// Render implements SystemRenderer
func (r *LinkRenderer) Render(ctx render.RenderContext, snap *engine.Snapshot, buf *render.RenderBuffer) {
	h := ctx.PlayHeight()
	if ctx.Width == 0 || h == 0 {
		return
	}
	// Clip box in fractional cells; the far edge stays inside the last cell
	lo := vmath.Vec2{}
	hi := vmath.V2(float64(ctx.Width)-1e-9, float64(h)-1e-9)

	for i := range snap.Links {
		a, b := snap.Segment(i)
		ca, cb, ok := vmath.ClipSegment(ctx.ToCell(a), ctx.ToCell(b), lo, hi)
		if !ok {
			continue
		}
		color := render.StrainColor(snap.Links[i].Strain)
		vmath.Traverse(ca, cb, func(x, y int) bool {
			buf.SetFgOnly(x, y, parameter.LinkRune, color)
			return true
		})
	}
}
