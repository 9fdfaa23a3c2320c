package shaft

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Components holds a per-sample quantity along each axis and its magnitude.
type Components struct {
	X, Y, Z []float64
	Total   []float64
}

func newComponents(n int) Components {
	return Components{
		X:     make([]float64, n),
		Y:     make([]float64, n),
		Z:     make([]float64, n),
		Total: make([]float64, n),
	}
}

// axis returns the component slice for direction k (0=x, 1=y, 2=z).
func (c Components) axis(k int) []float64 {
	switch k {
	case 0:
		return c.X
	case 1:
		return c.Y
	}
	return c.Z
}

func (c Components) combine() {
	for k := range c.Total {
		c.Total[k] = norm(c.X[k], c.Y[k], c.Z[k])
	}
}

// ForceResult holds the internal forces and deflections at every sample.
type ForceResult struct {
	Z        []float64
	Diameter []float64

	Shear  Components // V (N)
	Moment Components // M (N·m)

	Slope      Components // angular deflection (rad), uncorrected
	Deflection Components // linear deflection (m), uncorrected

	CorrectedSlope      Components
	CorrectedDeflection Components

	// CorrectionAngle is the rigid rotation removed from each axis.
	CorrectionAngle [3]float64
}

// CalculateActingForces superposes the point loads into shear and moment
// diagrams and integrates the curvature into slope and deflection. Any prior
// stress result is discarded.
func (s *Shaft) CalculateActingForces() *ForceResult {
	n := len(s.z)
	r := &ForceResult{
		Z:        s.z,
		Diameter: s.diam,
		Shear:    newComponents(n),
		Moment:   newComponents(n),
	}

	loads := s.Loads.items
	for k, x := range s.z {
		for _, p := range loads {
			// Loads are sorted; none further along has reached x.
			if p.Position > x {
				break
			}
			for axis := 0; axis < 3; axis++ {
				f := p.Force[axis]
				r.Shear.axis(axis)[k] += f * Macaulay(x, p.Position, 0)
				r.Moment.axis(axis)[k] += f * Macaulay(x, p.Position, 1)
			}
		}
	}
	r.Shear.combine()
	r.Moment.combine()

	s.deflect(r)
	s.correct(r)

	s.forces = r
	s.stress = nil
	s.stage = StageForcesComputed
	return r
}

// deflect integrates M/EI twice along the shaft for every axis.
func (s *Shaft) deflect(r *ForceResult) {
	n := len(s.z)
	r.Slope = newComponents(n)
	r.Deflection = newComponents(n)

	curvature := make([]float64, n)
	for axis := 0; axis < 3; axis++ {
		m := r.Moment.axis(axis)
		for k := range curvature {
			curvature[k] = m[k] / (s.Material.ElasticityModule * s.i[k])
		}
		copy(r.Slope.axis(axis), CumulativeTrapezoid(s.z, curvature))
		copy(r.Deflection.axis(axis), CumulativeTrapezoid(s.z, r.Slope.axis(axis)))
	}
	r.Slope.combine()
	r.Deflection.combine()
}

// correct removes the rotation that the raw deflection line shows between
// the two correction points: y_c = y - C·y and θ_c = θ - C with
// C = atan((y(p2) - y(p1)) / (p2 - p1)).
func (s *Shaft) correct(r *ForceResult) {
	n := len(s.z)
	r.CorrectedSlope = newComponents(n)
	r.CorrectedDeflection = newComponents(n)

	p0, p1 := s.CorrectionPoints[0], s.CorrectionPoints[1]
	i0, i1 := s.correctionIdx[0], s.correctionIdx[1]
	for axis := 0; axis < 3; axis++ {
		y := r.Deflection.axis(axis)
		c := math.Atan((y[i1] - y[i0]) / (p1 - p0))
		r.CorrectionAngle[axis] = c

		yc := r.CorrectedDeflection.axis(axis)
		for k := range yc {
			yc[k] = y[k] - c*y[k]
		}
		theta := r.Slope.axis(axis)
		tc := r.CorrectedSlope.axis(axis)
		for k := range tc {
			tc[k] = theta[k] - c
		}
	}
	r.CorrectedDeflection.combine()
	r.CorrectedSlope.combine()
}

// MaxDeflection returns the largest corrected deflection magnitude and its
// position.
func (r *ForceResult) MaxDeflection() (value, position float64) {
	k := floats.MaxIdx(r.CorrectedDeflection.Total)
	return r.CorrectedDeflection.Total[k], r.Z[k]
}

// MaxSlope returns the largest corrected slope magnitude and its position.
func (r *ForceResult) MaxSlope() (value, position float64) {
	k := floats.MaxIdx(r.CorrectedSlope.Total)
	return r.CorrectedSlope.Total[k], r.Z[k]
}
