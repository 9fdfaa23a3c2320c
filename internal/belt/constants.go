package belt

import "math"

// Unit conversions for the imperial belt constants
const (
	lbfToNewton = 4.44822
	inchToMeter = 0.0254
	footToMeter = 0.3048
)

// MaxLifeCycles caps the belt life; beyond it the Gates regression is not
// meaningful.
const MaxLifeCycles = 1e10

// Constants holds the belt-section constants from the manufacturer tables.
type Constants struct {
	// WrapAngle on the small pulley (rad). Zero derives it from the geometry.
	WrapAngle   float64
	Mu          float64 // belt/sheave friction coefficient
	GrooveAngle float64 // φ, rad
	Kb          float64 // bending tension constant (N·m)
	Kc          float64 // centrifugal constant (N·s²/m²)
	K           float64 // durability constant (N)
	B           float64 // durability exponent
}

// DefaultConstants are the A-section values used by the reference reducer.
func DefaultConstants() Constants {
	return Constants{
		Mu:          0.3,
		GrooveAngle: 34 * math.Pi / 180,
		Kb:          576 * lbfToNewton * inchToMeter,
		Kc:          0.965 * lbfToNewton / (footToMeter * footToMeter),
		K:           1193 * lbfToNewton,
		B:           10.926,
	}
}

// DefaultCatalog lists datum lengths (m) for the A section.
var DefaultCatalog = []float64{
	0.69, 0.79, 0.89, 0.99, 1.09, 1.19, 1.29, 1.39, 1.49, 1.59,
	1.69, 1.79, 1.89, 1.99, 2.09, 2.19, 2.39, 2.59, 2.79, 2.99,
}
