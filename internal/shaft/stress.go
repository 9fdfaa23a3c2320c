package shaft

import (
	"fmt"
	"math"
)

// StressResult holds stresses (Pa) and safety factors at every sample.
type StressResult struct {
	Z []float64

	// Nominal bending stress per moment axis and from the combined moment,
	// and nominal torsional shear stress.
	NominalSigma Components
	NominalTau   []float64

	// Effective fatigue concentration factors applied at each sample.
	Kf  []float64
	Kfs []float64

	// Concentrated stresses, nominal times Kf or Kfs.
	Sigma Components
	TauXY []float64

	SigmaEq      []float64 // equivalent stress of the static criterion
	StaticSafety []float64 // N_est = Sy / σeq

	Alternating   []float64 // σa
	Mean          []float64 // σm
	Endurance     []float64 // Se, corrected endurance limit
	FatigueSafety []float64 // N_fad
}

// CalculateStress computes bending and torsional stresses, applies the stress
// concentration of every focus interval and evaluates the static and fatigue
// safety factors. CalculateActingForces must have run.
func (s *Shaft) CalculateStress() (*StressResult, error) {
	if s.stage < StageForcesComputed {
		return nil, fmt.Errorf("%w: stress requires acting forces, stage is %s", ErrSequence, s.stage)
	}
	n := len(s.z)
	f := s.forces
	r := &StressResult{
		Z:            s.z,
		NominalSigma: newComponents(n),
		NominalTau:   make([]float64, n),
	}

	for k := range s.z {
		c := s.diam[k] / (2 * s.i[k])
		r.NominalSigma.X[k] = f.Moment.X[k] * c
		r.NominalSigma.Y[k] = f.Moment.Y[k] * c
		r.NominalSigma.Z[k] = f.Moment.Z[k] * c
		r.NominalSigma.Total[k] = f.Moment.Total[k] * c
		r.NominalTau[k] = s.Torque * s.diam[k] / (2 * s.j[k])
	}

	s.concentrate(r)
	s.evaluateStatic(r)
	s.evaluateFatigue(r)

	s.stress = r
	s.stage = StageStressComputed
	return r, nil
}

// concentrate applies Kf = 1 + q(Kt - 1) to normal stresses and
// Kfs = 1 + qs(Kts - 1) to shear. Outside every focus both factors are 1.
func (s *Shaft) concentrate(r *StressResult) {
	n := len(s.z)
	r.Kf = make([]float64, n)
	r.Kfs = make([]float64, n)
	r.Sigma = newComponents(n)
	r.TauXY = make([]float64, n)

	for k, z := range s.z {
		radius := s.diam[k] / 2
		q := NotchSensitivity(s.Material.NeuberConstant, radius)
		qs := NotchSensitivity(s.Material.NeuberConstantShear, radius)
		kt, kts := theoreticalFactors(s.StressFocus, z)

		r.Kf[k], r.Kfs[k] = 1, 1
		if kt != 1 {
			r.Kf[k] = 1 + q*(kt-1)
		}
		if kts != 1 {
			r.Kfs[k] = 1 + qs*(kts-1)
		}

		r.Sigma.X[k] = r.NominalSigma.X[k] * r.Kf[k]
		r.Sigma.Y[k] = r.NominalSigma.Y[k] * r.Kf[k]
		r.Sigma.Z[k] = r.NominalSigma.Z[k] * r.Kf[k]
		r.Sigma.Total[k] = r.NominalSigma.Total[k] * r.Kf[k]
		r.TauXY[k] = r.NominalTau[k] * r.Kfs[k]
	}
}

// evaluateStatic uses σeq = √(((σx-σy)² + σx² + σy² + 6τ²)/2).
func (s *Shaft) evaluateStatic(r *StressResult) {
	n := len(s.z)
	r.SigmaEq = make([]float64, n)
	r.StaticSafety = make([]float64, n)
	for k := range s.z {
		sx, sy, tau := r.Sigma.X[k], r.Sigma.Y[k], r.TauXY[k]
		r.SigmaEq[k] = math.Sqrt(((sx-sy)*(sx-sy) + sx*sx + sy*sy + 6*tau*tau) / 2)
		r.StaticSafety[k] = s.Material.YieldStress / r.SigmaEq[k]
	}
}

// MinStatic returns the lowest static safety factor and its position.
func (r *StressResult) MinStatic() (value, position float64) {
	return minimum(r.Z, r.StaticSafety)
}

// MinFatigue returns the lowest fatigue safety factor and its position.
func (r *StressResult) MinFatigue() (value, position float64) {
	return minimum(r.Z, r.FatigueSafety)
}

// minimum skips NaN samples; it returns NaN only when every sample is NaN.
func minimum(z, v []float64) (value, position float64) {
	value, position = math.NaN(), math.NaN()
	for k, x := range v {
		if math.IsNaN(x) {
			continue
		}
		if math.IsNaN(value) || x < value {
			value, position = x, z[k]
		}
	}
	return value, position
}
