package shaft

import "math"

// EnduranceFactors are the Marin modifiers of the rotating-beam endurance
// limit Se = ratio·Sut·Cs·Ce·Cf·Ct·Cr.
type EnduranceFactors struct {
	Ratio float64 // Se'/Sut

	// Size: Cs = SizeCoef·(d in mm)^SizeExponent
	SizeCoef     float64
	SizeExponent float64

	// Surface: Cf = min(1, SurfaceCoef·(Sut/SurfaceUnit)^SurfaceExponent)
	SurfaceCoef     float64
	SurfaceExponent float64
	SurfaceUnit     float64

	Ce float64 // loading
	Ct float64 // temperature
	Cr float64 // reliability
}

// DefaultEnduranceFactors describe a machined shaft in bending at room
// temperature with 90% reliability.
var DefaultEnduranceFactors = EnduranceFactors{
	Ratio:           0.5,
	SizeCoef:        1.189,
	SizeExponent:    -0.097,
	SurfaceCoef:     4.51,
	SurfaceExponent: -0.265,
	SurfaceUnit:     10e6,
	Ce:              1,
	Ct:              1,
	Cr:              0.868,
}

// Size returns Cs for diameter d in m.
func (e EnduranceFactors) Size(d float64) float64 {
	return e.SizeCoef * math.Pow(d*1000, e.SizeExponent)
}

// Surface returns Cf for ultimate strength sut in Pa.
func (e EnduranceFactors) Surface(sut float64) float64 {
	return math.Min(1, e.SurfaceCoef*math.Pow(sut/e.SurfaceUnit, e.SurfaceExponent))
}

// Limit returns the corrected endurance limit at diameter d.
func (e EnduranceFactors) Limit(sut, d float64) float64 {
	return e.Ratio * sut * e.Size(d) * e.Ce * e.Surface(sut) * e.Ct * e.Cr
}

// evaluateFatigue combines alternating bending and mean torsion along the
// load line N = Se·Sut / (σa·Sut + σm·Se), with σm = √(3·τxy).
func (s *Shaft) evaluateFatigue(r *StressResult) {
	n := len(s.z)
	sut := s.Material.UltimateStress
	r.Alternating = make([]float64, n)
	r.Mean = make([]float64, n)
	r.Endurance = make([]float64, n)
	r.FatigueSafety = make([]float64, n)

	for k := range s.z {
		se := s.Endurance.Limit(sut, s.diam[k])
		alt := r.Sigma.Total[k]
		// TODO: confirm √(3·τ) against the von Mises mean stress √3·τ with a
		// design review before changing released results.
		mean := math.Sqrt(r.TauXY[k] * 3)

		r.Endurance[k] = se
		r.Alternating[k] = alt
		r.Mean[k] = mean
		r.FatigueSafety[k] = se * sut / (alt*sut + mean*se)
	}
}
