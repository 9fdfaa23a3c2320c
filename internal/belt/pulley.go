package belt

import "math"

// Pulley is a V-belt sheave.
type Pulley struct {
	PrimitiveDiameter float64 // pitch diameter (m)
	AngularVelocity   float64 // rad/s
}

// NewPulley creates a pulley turning at inputVelocity rpm.
func NewPulley(primitiveDiameter, inputVelocity float64) Pulley {
	return Pulley{
		PrimitiveDiameter: primitiveDiameter,
		AngularVelocity:   inputVelocity * math.Pi / 30,
	}
}
