package renderers

import (
	"github.com/lixenwraith/vi-cloth/engine"
	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/render"
	"github.com/lixenwraith/vi-cloth/vmath"
)

// NodeRenderer draws nodes over links, fixed nodes with a distinct glyph
// Fixed nodes held by an anchor slot are highlighted, then the hovered node
type NodeRenderer struct{}

func NewNodeRenderer() *NodeRenderer { return &NodeRenderer{} }

// Render implements SystemRenderer
func (r *NodeRenderer) Render(ctx render.RenderContext, snap *engine.Snapshot, buf *render.RenderBuffer) {
	h := ctx.PlayHeight()
	fixedOrdinal := 0

	for i, n := range snap.Nodes {
		ch, color := parameter.NodeRune, render.RgbNode
		if n.Fixed {
			ch, color = parameter.FixedNodeRune, render.RgbNodeFixed
			if fixedOrdinal < engine.AnchorSlots && ctx.Anchors[fixedOrdinal] {
				color = render.RgbNodeAnchor
			}
			fixedOrdinal++
		}
		if i == ctx.Hover && color != render.RgbNodeAnchor {
			color = render.RgbNodeHover
		}

		c := ctx.ToCell(n.Pos)
		if !c.IsFinite() {
			continue
		}
		x, y := vmath.Cell(c.X), vmath.Cell(c.Y)
		if y >= h {
			continue
		}
		buf.SetFgOnly(x, y, ch, color)
	}
}
