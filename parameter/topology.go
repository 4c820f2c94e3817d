package parameter

// Topology generation defaults
const (
	// NodeMass is the default point mass
	NodeMass = 1.0

	// NodeSpacing is the initial distance between generated neighbours
	NodeSpacing = 10.0

	// RestLength is the rope target distance, deliberately longer than NodeSpacing
	// so a fresh rope starts slack and settles under gravity
	RestLength = 12.5

	// RopeNodes is the default node count of the rope preset
	RopeNodes = 20

	// ClothCols and ClothRows size the cloth presets
	ClothCols = 32
	ClothRows = 14

	// TearFactor is the break threshold of the tearable preset, as a multiple of rest length
	TearFactor = 2.2

	// NetRings and NetSpokes size the spider-web preset
	NetRings  = 6
	NetSpokes = 12

	// MaxNodes caps the node count of a generated topology
	MaxNodes = 1 << 20
)

// OrphanPark is where nodes left without links are parked, well outside any view
var OrphanPark = [2]float64{-1e6, -1e6}
