package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-cloth/audio"
	"github.com/lixenwraith/vi-cloth/engine"
	"github.com/lixenwraith/vi-cloth/input"
	"github.com/lixenwraith/vi-cloth/render"
	"github.com/lixenwraith/vi-cloth/render/renderers"
	"github.com/lixenwraith/vi-cloth/scenario"
	"github.com/lixenwraith/vi-cloth/vmath"
)

// app owns the frame loop state; every method runs on the loop goroutine
type app struct {
	screen  tcell.Screen
	name    string
	scaleX  float64
	scaleY  float64
	runner  *engine.Runner
	machine *input.Machine
	orch    *render.RenderOrchestrator
	sounds  *audio.SoundManager

	snap   engine.Snapshot
	hover  int // Node under the pointer, -1 for none
	broken int
	cut    int
	muted  bool
}

func newApp(screen tcell.Screen, sc *scenario.Scenario, keys *input.KeyTable, sounds *audio.SoundManager) (*app, error) {
	sim, err := sc.Build()
	if err != nil {
		return nil, err
	}

	a := &app{
		screen: screen,
		name:   sc.Name,
		scaleX: sc.View.ScaleX,
		scaleY: sc.View.ScaleY,
		runner: engine.NewRunner(sim, sc.StepsPerFrame),
		orch:   render.NewRenderOrchestrator(screen),
		sounds: sounds,
		hover:  -1,
	}
	a.orch.Register(renderers.NewLinkRenderer(), render.PriorityLinks)
	a.orch.Register(renderers.NewCutTrailRenderer(), render.PriorityTrail)
	a.orch.Register(renderers.NewNodeRenderer(), render.PriorityNodes)
	a.orch.Register(renderers.NewPointerRenderer(), render.PriorityPointer)
	a.orch.Register(renderers.NewStatusBarRenderer(), render.PriorityUI)

	sim.Snapshot(&a.snap)
	w, h := screen.Size()
	a.machine = input.NewMachine(keys, input.NewTracker(a.fitView(w, h)))
	return a, nil
}

// fitView centers the initial node bounds horizontally with the top at row 1
// Parked orphan nodes are ignored
func (a *app) fitView(w, h int) vmath.Viewport {
	view := vmath.Viewport{ScaleX: a.scaleX, ScaleY: a.scaleY}
	lo, hi, ok := a.snap.Bounds()
	if !ok {
		return view
	}

	view.CenterOn(vmath.V2((lo.X+hi.X)/2, lo.Y), w/2, min(1, max(h-2, 0)))
	return view
}

// handleEvent applies one terminal event, returns false on quit
func (a *app) handleEvent(ev tcell.Event) bool {
	in := a.machine.Process(ev)

	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentPause:
		log.Printf("paused=%v", a.runner.TogglePause())
	case input.IntentStep:
		a.runner.Pause()
		a.runner.StepOnce()
	case input.IntentReset:
		a.reset()
	case input.IntentAnchor:
		a.sounds.Play(audio.SoundPin, 1)
	case input.IntentMute:
		a.muted = a.sounds.ToggleMute()
	case input.IntentResize:
		a.resize()
	}
	return true
}

func (a *app) reset() {
	sim := a.runner.Simulation()
	sim.Reset()
	sim.Snapshot(&a.snap)
	a.machine.Tracker().ReleaseAnchors()
	a.broken, a.cut = 0, 0
	log.Printf("scenario %s reset", a.name)
}

func (a *app) resize() {
	w, h := a.screen.Size()
	a.orch.Resize(w, h)
	a.machine.Tracker().SetViewport(a.fitView(w, h))
}

// frame samples input, advances the simulation and presents the result
func (a *app) frame() {
	tracker := a.machine.Tracker()
	res, steps := a.runner.Frame(tracker.Sample())

	if res.Broken > 0 || res.Cut > 0 {
		a.broken += res.Broken
		a.cut += res.Cut
		log.Printf("tick %d: %d links broken, %d cut, %d remain", res.Tick, res.Broken, res.Cut, a.runner.Simulation().LinkCount())
		a.sounds.OnStep(res.Broken, res.Cut)
	}

	if steps > 0 {
		a.runner.Simulation().Snapshot(&a.snap)
	}

	a.hover = -1
	if tracker.HasPointer() {
		a.hover = a.runner.Simulation().Nearest(tracker.Pointer())
	}

	anchors := tracker.Anchors()
	if tracker.Gesture() == input.GestureAnchor {
		anchors[0] = true
	}

	w, h := a.screen.Size()
	px, py := tracker.Cell()
	a.orch.RenderFrame(render.RenderContext{
		Width:    w,
		Height:   h,
		View:     tracker.Viewport(),
		PointerX: px,
		PointerY: py,
		Gesture:  tracker.Gesture().String(),
		Hover:    a.hover,
		Trail:    tracker.Trail(),
		Scenario: a.name,
		Paused:   a.runner.IsPaused(),
		Muted:    a.muted,
		Anchors:  anchors,
		Broken:   a.broken,
		Cut:      a.cut,
	}, &a.snap)
}
