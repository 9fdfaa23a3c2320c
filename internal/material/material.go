package material

import "math"

// Default Neuber constants in in^½. New multiplies them by √25.4, which gives
// √mm, while the notch radius is later taken in m. The units are mixed and the
// notch sensitivity follows the reference calculation as is.
const (
	NeuberConstantDefault      = 0.062
	NeuberConstantShearDefault = 0.049

	// inchToMillimeter scales √in to √mm for the Neuber constants
	inchToMillimeter = 25.4
)

// Material holds the elastic constants and strength limits of a gear or shaft
// material. All stresses are in Pa.
type Material struct {
	ElasticityModule float64 // E
	PoissonCoef      float64 // ν
	StiffnessModule  float64 // G = E / 2(1+ν)

	YieldStress    float64 // Sy
	UltimateStress float64 // Sut

	BendingStressStrength float64 // St, AGMA bending strength
	ContactStressStrength float64 // Sc, AGMA contact strength

	NeuberConstant      float64 // √a for normal stress
	NeuberConstantShear float64 // √a for shear stress
}

// Option customizes a Material at construction.
type Option func(*Material)

// WithNeuberConstants overrides the default notch sensitivity constants.
// Values are given in in^½ like the tabulated ones and get the same √25.4
// scaling as the defaults.
func WithNeuberConstants(normal, shear float64) Option {
	return func(m *Material) {
		m.NeuberConstant = normal * math.Sqrt(inchToMillimeter)
		m.NeuberConstantShear = shear * math.Sqrt(inchToMillimeter)
	}
}

// New creates a material and derives its stiffness module.
func New(elasticity, poisson, yield, ultimate, bending, contact float64, opts ...Option) Material {
	m := Material{
		ElasticityModule:      elasticity,
		PoissonCoef:           poisson,
		StiffnessModule:       elasticity / (2 * (1 + poisson)),
		YieldStress:           yield,
		UltimateStress:        ultimate,
		BendingStressStrength: bending,
		ContactStressStrength: contact,
	}
	WithNeuberConstants(NeuberConstantDefault, NeuberConstantShearDefault)(&m)
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Steel1045 is the quenched and tempered steel used for every gear and shaft
// of the reference reducer.
func Steel1045() Material {
	return New(190e9, 0.3, 580e6, 690e6, 230e6, 700e6)
}
