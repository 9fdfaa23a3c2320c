package gear

import (
	"math"

	"github.com/alexiusacademia/gored/internal/material"
)

// Gear represents a spur gear. Lengths are in m, angles in rad.
type Gear struct {
	NumberOfTeeth float64 // Z
	PressureAngle float64 // φ
	Module        float64 // m
	Thickness     float64 // F, face width
	PitchDiameter float64 // d = Z·m
	J             float64 // AGMA bending geometry factor

	Material material.Material
}

// New creates a gear from its tooth count, pressure angle in degrees, module,
// face width expressed as a multiple of the module and bending factor J.
func New(teeth, pressureAngleDeg, module, thicknessFactor, j float64, mat material.Material) *Gear {
	return &Gear{
		NumberOfTeeth: teeth,
		PressureAngle: pressureAngleDeg * math.Pi / 180,
		Module:        module,
		Thickness:     module * thicknessFactor,
		PitchDiameter: teeth * module,
		J:             j,
		Material:      mat,
	}
}
