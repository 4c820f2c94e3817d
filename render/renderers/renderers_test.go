package renderers

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vi-cloth/engine"
	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/render"
	"github.com/lixenwraith/vi-cloth/vmath"
)

func unitContext() render.RenderContext {
	return render.RenderContext{
		Width:  20,
		Height: 6,
		View:   vmath.Viewport{ScaleX: 1, ScaleY: 1},
		Hover:  -1,
	}
}

func rowString(buf *render.RenderBuffer, y int) string {
	w, _ := buf.Bounds()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r := buf.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func twoNodeSnapshot(strain float64) *engine.Snapshot {
	return &engine.Snapshot{
		Nodes: []engine.NodeView{
			{Pos: vmath.V2(2.5, 2.5), Fixed: true},
			{Pos: vmath.V2(10.5, 2.5)},
		},
		Links: []engine.LinkView{{A: 0, B: 1, Strain: strain}},
	}
}

func TestLinksAndNodes(t *testing.T) {
	ctx := unitContext()
	snap := twoNodeSnapshot(1)
	buf := render.NewRenderBuffer(ctx.Width, ctx.Height)

	NewLinkRenderer().Render(ctx, snap, buf)
	NewNodeRenderer().Render(ctx, snap, buf)

	for x := 3; x < 10; x++ {
		c := buf.Get(x, 2)
		if c.Rune != parameter.LinkRune {
			t.Errorf("Expected link glyph at (%d,2), got %q", x, c.Rune)
		}
		if c.Fg != render.RgbLinkRelaxed {
			t.Errorf("Expected relaxed color at (%d,2), got %+v", x, c.Fg)
		}
	}
	if got := buf.Get(2, 2); got.Rune != parameter.FixedNodeRune || got.Fg != render.RgbNodeFixed {
		t.Errorf("Expected fixed node at (2,2), got %+v", got)
	}
	if got := buf.Get(10, 2).Rune; got != parameter.NodeRune {
		t.Errorf("Expected free node at (10,2), got %q", got)
	}
	if got := buf.Get(5, 3).Rune; got != 0 {
		t.Errorf("Expected nothing off the link row, got %q", got)
	}
}

func TestLinkStrainColor(t *testing.T) {
	ctx := unitContext()
	buf := render.NewRenderBuffer(ctx.Width, ctx.Height)

	NewLinkRenderer().Render(ctx, twoNodeSnapshot(parameter.StrainColorMax+1), buf)

	if got := buf.Get(5, 2).Fg; got != render.RgbLinkHot {
		t.Errorf("Expected hot link color, got %+v", got)
	}
}

func TestLinkClipping(t *testing.T) {
	ctx := unitContext()
	buf := render.NewRenderBuffer(ctx.Width, ctx.Height)
	snap := &engine.Snapshot{
		Nodes: []engine.NodeView{
			{Pos: vmath.V2(-100, 1.5)},
			{Pos: vmath.V2(100, 1.5)},
			{Pos: vmath.V2(3, 5.5)}, // Status row
			{Pos: vmath.V2(9, 5.5)},
		},
		Links: []engine.LinkView{{A: 0, B: 1, Strain: 1}, {A: 2, B: 3, Strain: 1}},
	}

	NewLinkRenderer().Render(ctx, snap, buf)

	want := strings.Repeat(string(parameter.LinkRune), ctx.Width)
	if got := rowString(buf, 1); got != want {
		t.Errorf("Expected full clipped row %q, got %q", want, got)
	}
	if got := strings.TrimSpace(rowString(buf, 5)); got != "" {
		t.Errorf("Expected no link drawn in status row, got %q", got)
	}
}

func TestNodeAnchorHighlight(t *testing.T) {
	ctx := unitContext()
	ctx.Anchors[0] = true
	buf := render.NewRenderBuffer(ctx.Width, ctx.Height)

	NewNodeRenderer().Render(ctx, twoNodeSnapshot(1), buf)

	if got := buf.Get(2, 2).Fg; got != render.RgbNodeAnchor {
		t.Errorf("Expected held anchor color, got %+v", got)
	}
}

func TestNodeHoverHighlight(t *testing.T) {
	ctx := unitContext()
	ctx.Hover = 1
	buf := render.NewRenderBuffer(ctx.Width, ctx.Height)

	NewNodeRenderer().Render(ctx, twoNodeSnapshot(1), buf)

	if got := buf.Get(10, 2); got.Rune != parameter.NodeRune || got.Fg != render.RgbNodeHover {
		t.Errorf("Expected hovered free node highlighted, got %+v", got)
	}
	if got := buf.Get(2, 2).Fg; got != render.RgbNodeFixed {
		t.Errorf("Expected other node unaffected, got %+v", got)
	}

	// A held anchor keeps its own color under the pointer
	ctx.Hover = 0
	ctx.Anchors[0] = true
	buf.Clear()
	NewNodeRenderer().Render(ctx, twoNodeSnapshot(1), buf)
	if got := buf.Get(2, 2).Fg; got != render.RgbNodeAnchor {
		t.Errorf("Expected held anchor color to win over hover, got %+v", got)
	}
}

func TestCutTrailAndPointer(t *testing.T) {
	ctx := unitContext()
	ctx.Trail = []vmath.Vec2{vmath.V2(1.5, 1.5), vmath.V2(4.5, 1.5)}
	ctx.Gesture = "cut"
	ctx.PointerX, ctx.PointerY = 7, 1
	buf := render.NewRenderBuffer(ctx.Width, ctx.Height)

	NewCutTrailRenderer().Render(ctx, &engine.Snapshot{}, buf)
	NewPointerRenderer().Render(ctx, &engine.Snapshot{}, buf)

	if buf.Get(1, 1).Rune != parameter.CutTrailRune || buf.Get(4, 1).Rune != parameter.CutTrailRune {
		t.Errorf("Expected trail glyphs, got row %q", rowString(buf, 1))
	}
	if buf.Get(4, 1).Fg != render.RgbCutTrail {
		t.Errorf("Expected newest trail point at full color, got %+v", buf.Get(4, 1).Fg)
	}
	if buf.Get(7, 1).Rune != parameter.PointerRune {
		t.Errorf("Expected pointer glyph at (7,1), got %q", buf.Get(7, 1).Rune)
	}

	ctx.Gesture = "idle"
	buf.Clear()
	NewPointerRenderer().Render(ctx, &engine.Snapshot{}, buf)
	if buf.Get(7, 1).Rune != 0 {
		t.Error("Expected no pointer glyph while idle")
	}
}

func TestStatusBar(t *testing.T) {
	ctx := unitContext()
	ctx.Width = 80
	ctx.Scenario = "cloth"
	ctx.Paused = true
	ctx.Muted = true
	ctx.Anchors[1] = true
	ctx.Broken = 3
	buf := render.NewRenderBuffer(ctx.Width, ctx.Height)

	s := NewStatusBarRenderer()
	clock := time.Unix(0, 0)
	s.lastFpsUpdate = clock
	s.now = func() time.Time { return clock }

	snap := twoNodeSnapshot(1)
	snap.Tick = 42
	s.Render(ctx, snap, buf)

	row := rowString(buf, ctx.Height-1)
	for _, want := range []string{parameter.StatusAudioText, "PAUSED", "1234", "cloth", "t=42", "nodes=2 links=1", "broken=3"} {
		if !strings.Contains(row, want) {
			t.Errorf("Expected %q in status row %q", want, row)
		}
	}

	if got := buf.Get(0, ctx.Height-1).Bg; got != render.RgbAudioMuted {
		t.Errorf("Expected muted indicator background, got %+v", got)
	}
	anchorX := len([]rune(parameter.StatusAudioText + parameter.StatusPausedText))
	if buf.Get(anchorX, ctx.Height-1).Bg != render.RgbAnchorEmptyBg || buf.Get(anchorX+1, ctx.Height-1).Bg != render.RgbAnchorHeldBg {
		t.Error("Expected anchor slot 2 highlighted, slot 1 empty")
	}

	// FPS rolls over once a second has elapsed
	clock = clock.Add(time.Second)
	s.Render(ctx, snap, buf)
	if !strings.Contains(rowString(buf, ctx.Height-1), "2fps") {
		t.Errorf("Expected 2fps after two frames in one second, got %q", rowString(buf, ctx.Height-1))
	}
}
