package physics

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-cloth/vmath"
)

// IntegrationMode selects the per-node time integration rule of an engine instance
type IntegrationMode uint8

const (
	// IntegrateEuler is semi-implicit Euler with position memory
	// Requires Differentiate after relaxation to fold corrections into velocity
	IntegrateEuler IntegrationMode = iota
	// IntegrateVerlet is a velocity-Verlet style rule that infers the constraint
	// acceleration of the previous step from the position delta
	// Clears force itself; Differentiate is not used
	IntegrateVerlet
)

var modeNames = [...]string{
	IntegrateEuler:  "euler",
	IntegrateVerlet: "verlet",
}

func (m IntegrationMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("IntegrationMode(%d)", m)
}

// UsesDifferentiate reports whether the mode needs the post-relaxation velocity pass
func (m IntegrationMode) UsesDifferentiate() bool {
	return m == IntegrateEuler
}

// ParseIntegrationMode maps a config name to a mode, case-insensitive
func ParseIntegrationMode(s string) (IntegrationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "euler", "semi-implicit":
		return IntegrateEuler, nil
	case "verlet", "velocity-verlet":
		return IntegrateVerlet, nil
	}
	return 0, fmt.Errorf("%w: unknown integration mode %q", ErrInvalidConfig, s)
}

// Integrate advances a free node by dt under its accumulated force
func (n *Node) Integrate(dt float64, mode IntegrationMode) {
	if n.Fixed {
		return
	}

	switch mode {
	case IntegrateVerlet:
		n.integrateVerlet(dt)
	default:
		n.integrateEuler(dt)
	}
}

// integrateEuler: v += a*dt; p += v*dt, remembering p for Differentiate
func (n *Node) integrateEuler(dt float64) {
	acc := vmath.V2Scale(n.Force, 1/n.Mass)

	n.PrevPos = n.Pos
	n.Vel = vmath.V2Add(n.Vel, vmath.V2Scale(acc, dt))
	n.Pos = vmath.V2Add(n.Pos, vmath.V2Scale(n.Vel, dt))
}

// integrateVerlet averages the acceleration implied by last step's corrected motion
// with the current force acceleration
func (n *Node) integrateVerlet(dt float64) {
	invDt := 1 / dt

	lastVel := vmath.V2Scale(vmath.V2Sub(n.Pos, n.PrevPos), invDt)
	lastAccel := vmath.V2Scale(vmath.V2Sub(lastVel, n.Vel), invDt)
	newAccel := vmath.V2Scale(n.Force, 1/n.Mass)

	avg := vmath.V2Scale(vmath.V2Add(lastAccel, newAccel), 0.5)
	n.Vel = vmath.V2Add(n.Vel, vmath.V2Scale(avg, dt))

	n.PrevPos = n.Pos
	n.Pos = vmath.V2Add(n.Pos, vmath.V2Scale(n.Vel, dt))
	n.Force = vmath.Vec2{}
}
