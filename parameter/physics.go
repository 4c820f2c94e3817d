package parameter

// Integration and relaxation defaults
const (
	// StepDT is the fixed nominal time step, not derived from wall clock
	StepDT = 0.05

	// Gravity is downward acceleration in world units/s², +Y is down
	Gravity = 18.0

	// Drag is the velocity-proportional drag coefficient
	Drag = 0.0

	// Rigidity scales each link correction, 1.0 closes the full error between equal masses
	Rigidity = 1.0

	// Compression scales corrections of links shorter than rest length
	// 1.0 is symmetric, 0.5 halves push-out to damp compressive ringing
	Compression = 1.0

	// RelaxPasses is the default Gauss-Seidel sweep count per step
	RelaxPasses = 1

	// StepsPerFrame is the number of fixed steps between presentations
	StepsPerFrame = 2
)

// Interactive forcing
const (
	// CaptureRadius is the pointer pull radius in world units
	CaptureRadius = 12.0

	// PointerStrength converts pointer displacement (world units per sample) to force
	PointerStrength = 4.0
)
