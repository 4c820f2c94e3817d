package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/lixenwraith/vi-cloth/engine"
	"github.com/lixenwraith/vi-cloth/scenario"
	"github.com/lixenwraith/vi-cloth/vmath"
)

var (
	scenarioFlag = flag.String("scenario", "cloth", "Built-in scenario name")
	fileFlag     = flag.String("file", "", "Scenario TOML file, overrides -scenario")
	stepsFlag    = flag.Int("steps", 10000, "Number of simulation steps")
	dragFlag     = flag.Bool("drag", false, "Sweep a dragging pointer through the topology")
	cutFlag      = flag.Bool("cut", false, "Sweep a cutting pointer through the topology")
)

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	var (
		sc  *scenario.Scenario
		err error
	)
	if *fileFlag != "" {
		sc, err = scenario.Load(*fileFlag)
	} else {
		sc, err = scenario.Preset(*scenarioFlag)
	}
	if err != nil {
		log.Fatalf("scenario: %v", err)
	}

	sim, err := sc.Build()
	if err != nil {
		log.Fatalf("build: %v", err)
	}
	log.Printf("scenario %s: %d nodes, %d links, mode %s, %d passes",
		sc.Name, sim.NodeCount(), sim.LinkCount(), sim.Config().Mode, sim.Config().Passes)

	sweep := newSweep(sim)
	var total engine.StepResult
	var worst time.Duration

	start := time.Now()
	for i := 0; i < *stepsFlag; i++ {
		in := sweep.input(i, *dragFlag, *cutFlag)

		t0 := time.Now()
		res := sim.Step(in)
		if d := time.Since(t0); d > worst {
			worst = d
		}

		total.Broken += res.Broken
		total.Cut += res.Cut
		total.Captured += res.Captured
		if res.Broken > 0 || res.Cut > 0 {
			log.Printf("tick %d: %d broken, %d cut", res.Tick, res.Broken, res.Cut)
		}
	}
	elapsed := time.Since(start)
	steps := max(*stepsFlag, 1)

	fmt.Printf("Benchmark Results:\n")
	fmt.Printf("  Scenario:     %s\n", sc.Name)
	fmt.Printf("  Nodes:        %d\n", sim.NodeCount())
	fmt.Printf("  Links:        %d remaining\n", sim.LinkCount())
	fmt.Printf("  Broken/Cut:   %d / %d\n", total.Broken, total.Cut)
	fmt.Printf("  Total Steps:  %d\n", *stepsFlag)
	fmt.Printf("  Total Time:   %v\n", elapsed)
	fmt.Printf("  Steps/sec:    %.2f\n", float64(*stepsFlag)/elapsed.Seconds())
	fmt.Printf("  Avg Step:     %v\n", elapsed/time.Duration(steps))
	fmt.Printf("  Worst Step:   %v\n", worst)
	fmt.Printf("  Residual:     %.6f\n", sim.Residual())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("  Total Alloc:  %d bytes\n", m.TotalAlloc)
	fmt.Printf("  Mallocs:      %d\n", m.Mallocs)
}

// sweep moves a pointer back and forth across the initial node bounds
type sweep struct {
	lo, hi vmath.Vec2
	prev   vmath.Vec2
}

func newSweep(sim *engine.Simulation) *sweep {
	var snap engine.Snapshot
	sim.Snapshot(&snap)

	lo, hi, _ := snap.Bounds()
	return &sweep{lo: lo, hi: hi, prev: lo}
}

// input returns the pointer state for step i, a slow zigzag over the bounds
func (s *sweep) input(i int, drag, cut bool) engine.Input {
	const period = 200
	phase := float64(i%period) / period
	x := s.lo.X + (s.hi.X-s.lo.X)*math.Abs(2*phase-1)
	y := s.lo.Y + (s.hi.Y-s.lo.Y)*(0.5+0.5*math.Sin(float64(i)/period*math.Pi))

	p := vmath.V2(x, y)
	in := engine.Input{Pointer: p, PrevPointer: s.prev, Drag: drag, Cut: cut}
	s.prev = p
	return in
}
