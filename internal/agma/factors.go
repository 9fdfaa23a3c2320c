package agma

import "math"

// AGMA 2001 empirical constants

const (
	// Life factor regressions, valid above 10^7 cycles
	// Bending: Kl = 1.3558·N^-0.0178
	BendingLifeCoef     = 1.3558
	BendingLifeExponent = -0.0178

	// Contact: Cl = 1.4488·N^-0.023
	ContactLifeCoef     = 1.4488
	ContactLifeExponent = -0.023
)

// DynamicFactor calculates Kv for a quality number Qv and pitch-line
// velocity vt (m/s).
func DynamicFactor(qv, vt float64) float64 {
	// B = (12 - Qv)^(2/3) / 4, A = 50 + 56(1 - B)
	b := math.Pow(12-qv, 2.0/3.0) / 4
	a := 50 + 56*(1-b)
	return a / (a + math.Sqrt(0.2*vt))
}

// ElasticCoefficient calculates Cp for two gears of the same material.
func ElasticCoefficient(elasticity, poisson float64) float64 {
	aux := 2 * math.Pi * (1 - poisson*poisson)
	return math.Sqrt(1 / (aux / elasticity))
}

// GeometryFactor calculates the surface geometry factor I of an external pair
// from the pinion pitch diameter d1, the gear pitch diameter d2, module m and
// pressure angle phi (rad).
func GeometryFactor(d1, d2, m, phi float64) float64 {
	rp := d1 / 2
	// Radii of curvature of the tooth profiles at the contact point
	rhoP := math.Sqrt(math.Pow(rp+m, 2)-math.Pow(rp*math.Cos(phi), 2)) - math.Pi*m*math.Cos(phi)
	rhoG := math.Sin(phi)*(d1+d2)/2 - rhoP
	return math.Cos(phi) / ((1/rhoP + 1/rhoG) * d1)
}

// LoadCycles is the number of revolutions at angular speed w (rad/s) during
// the given seconds of use.
func LoadCycles(w, seconds float64) float64 {
	return w * seconds / (2 * math.Pi)
}

// BendingLifeFactor calculates Kl for n load cycles.
func BendingLifeFactor(n float64) float64 {
	return BendingLifeCoef * math.Pow(n, BendingLifeExponent)
}

// ContactLifeFactor calculates Cl for n load cycles.
func ContactLifeFactor(n float64) float64 {
	return ContactLifeCoef * math.Pow(n, ContactLifeExponent)
}
