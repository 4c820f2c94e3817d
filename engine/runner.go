package engine

import (
	"sync/atomic"
)

// Runner paces a Simulation at a fixed number of steps per presented frame
// Pause state may be toggled from any goroutine; Frame must be called from one
type Runner struct {
	sim           *Simulation
	stepsPerFrame int

	paused  atomic.Bool
	stepReq atomic.Int32 // Single steps requested while paused
}

// NewRunner returns a runner stepping sim stepsPerFrame times per frame, minimum 1
func NewRunner(sim *Simulation, stepsPerFrame int) *Runner {
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}
	return &Runner{sim: sim, stepsPerFrame: stepsPerFrame}
}

func (r *Runner) Simulation() *Simulation { return r.sim }
func (r *Runner) StepsPerFrame() int      { return r.stepsPerFrame }

// Frame runs the steps for one presented frame
// Pointer delta and cut segment belong to the first step only: later steps
// see a stationary pointer so one sample is not applied stepsPerFrame times
// Returns zero steps while paused unless StepOnce was requested
func (r *Runner) Frame(in Input) (StepResult, int) {
	steps := r.stepsPerFrame
	if r.paused.Load() {
		if r.stepReq.Load() <= 0 {
			return StepResult{Tick: r.sim.Tick()}, 0
		}
		r.stepReq.Add(-1)
		steps = 1
	}

	res := StepResult{Tick: r.sim.Tick()}
	for i := 0; i < steps; i++ {
		res.add(r.sim.Step(in))
		in.PrevPointer = in.Pointer
	}
	return res, steps
}

// Pause stops stepping
func (r *Runner) Pause() {
	r.paused.Store(true)
}

// Resume continues stepping and drops pending single steps
func (r *Runner) Resume() {
	if r.paused.CompareAndSwap(true, false) {
		r.stepReq.Store(0)
	}
}

// TogglePause flips pause state and returns the new state
func (r *Runner) TogglePause() bool {
	for {
		old := r.paused.Load()
		if r.paused.CompareAndSwap(old, !old) {
			if old {
				r.stepReq.Store(0)
			}
			return !old
		}
	}
}

func (r *Runner) IsPaused() bool {
	return r.paused.Load()
}

// StepOnce queues a single step for the next Frame while paused
func (r *Runner) StepOnce() {
	if r.paused.Load() {
		r.stepReq.Add(1)
	}
}
