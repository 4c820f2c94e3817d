package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/physics"
)

// Config holds construction-time simulation tunables
// Values are fixed for the run; changing them means building a new Simulation
type Config struct {
	DT          float64 // Fixed step, never derived from wall clock
	Gravity     float64
	Drag        float64
	Rigidity    float64
	Compression float64
	Passes      int // Relaxation sweeps per step
	Mode        physics.IntegrationMode

	CaptureRadius   float64 // Pointer pull radius, 0 disables pointer forcing
	PointerStrength float64
}

// DefaultConfig returns the parameter package defaults
func DefaultConfig() Config {
	return Config{
		DT:              parameter.StepDT,
		Gravity:         parameter.Gravity,
		Drag:            parameter.Drag,
		Rigidity:        parameter.Rigidity,
		Compression:     parameter.Compression,
		Passes:          parameter.RelaxPasses,
		Mode:            physics.IntegrateEuler,
		CaptureRadius:   parameter.CaptureRadius,
		PointerStrength: parameter.PointerStrength,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate rejects values that would make a step divide by zero or go non-finite
func (c Config) Validate() error {
	switch {
	case !finite(c.DT) || c.DT <= 0:
		return fmt.Errorf("%w: dt %v must be finite and > 0", physics.ErrInvalidConfig, c.DT)
	case !finite(c.Gravity):
		return fmt.Errorf("%w: gravity %v is not finite", physics.ErrInvalidConfig, c.Gravity)
	case !finite(c.Drag) || c.Drag < 0:
		return fmt.Errorf("%w: drag %v must be finite and >= 0", physics.ErrInvalidConfig, c.Drag)
	case !finite(c.Rigidity) || c.Rigidity < 0:
		return fmt.Errorf("%w: rigidity %v must be finite and >= 0", physics.ErrInvalidConfig, c.Rigidity)
	case !finite(c.Compression) || c.Compression < 0:
		return fmt.Errorf("%w: compression %v must be finite and >= 0", physics.ErrInvalidConfig, c.Compression)
	case c.Passes < 0:
		return fmt.Errorf("%w: passes %d must be >= 0", physics.ErrInvalidConfig, c.Passes)
	case c.Mode != physics.IntegrateEuler && c.Mode != physics.IntegrateVerlet:
		return fmt.Errorf("%w: integration mode %s", physics.ErrInvalidConfig, c.Mode)
	case !finite(c.CaptureRadius) || c.CaptureRadius < 0:
		return fmt.Errorf("%w: capture radius %v must be finite and >= 0", physics.ErrInvalidConfig, c.CaptureRadius)
	case !finite(c.PointerStrength):
		return fmt.Errorf("%w: pointer strength %v is not finite", physics.ErrInvalidConfig, c.PointerStrength)
	}
	return nil
}

func (c Config) solver() physics.Solver {
	return physics.Solver{
		Rigidity:    c.Rigidity,
		Compression: c.Compression,
		Passes:      c.Passes,
	}
}
