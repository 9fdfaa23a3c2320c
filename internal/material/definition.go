package material

import "fmt"

// Definition is the JSON form of a material: either a named preset or explicit
// constants. Explicit non-zero fields override the preset.
type Definition struct {
	Preset string `json:"preset,omitempty"`

	ElasticityModule      float64 `json:"elasticity_module,omitempty"`
	PoissonCoef           float64 `json:"poisson_coef,omitempty"`
	YieldStress           float64 `json:"yield_stress,omitempty"`
	UltimateStress        float64 `json:"ultimate_stress,omitempty"`
	BendingStressStrength float64 `json:"bending_stress_strength,omitempty"`
	ContactStressStrength float64 `json:"contact_stress_strength,omitempty"`

	// In in^½, as tabulated
	NeuberConstant      float64 `json:"neuber_constant,omitempty"`
	NeuberConstantShear float64 `json:"neuber_constant_shear,omitempty"`
}

// Presets maps preset names to their materials.
var Presets = map[string]func() Material{
	"steel1045": Steel1045,
}

// Material resolves the preset and applies the explicit overrides.
func (s Definition) Material() (Material, error) {
	base := Material{}
	if s.Preset != "" {
		preset, ok := Presets[s.Preset]
		if !ok {
			return Material{}, fmt.Errorf("unknown material preset %q", s.Preset)
		}
		base = preset()
	}

	pick := func(v, fallback float64) float64 {
		if v != 0 {
			return v
		}
		return fallback
	}
	m := New(
		pick(s.ElasticityModule, base.ElasticityModule),
		pick(s.PoissonCoef, base.PoissonCoef),
		pick(s.YieldStress, base.YieldStress),
		pick(s.UltimateStress, base.UltimateStress),
		pick(s.BendingStressStrength, base.BendingStressStrength),
		pick(s.ContactStressStrength, base.ContactStressStrength),
		WithNeuberConstants(
			pick(s.NeuberConstant, NeuberConstantDefault),
			pick(s.NeuberConstantShear, NeuberConstantShearDefault),
		),
	)
	if m.ElasticityModule <= 0 {
		return Material{}, fmt.Errorf("material elasticity module must be positive")
	}
	return m, nil
}
