package shaft

import "math"

// Theoretical keyway stress concentration factors
const (
	KeywayKt  = 2.1
	KeywayKts = 3.0
)

// StressFocus is an axial interval, both ends included, where theoretical
// stress concentration factors apply.
type StressFocus struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Kt    float64 `json:"kt"`  // normal stress
	Kts   float64 `json:"kts"` // shear stress
}

// Keyway returns a focus with the keyway factors.
func Keyway(start, end float64) StressFocus {
	return StressFocus{Start: start, End: end, Kt: KeywayKt, Kts: KeywayKts}
}

// Contains reports whether z lies within the interval.
func (f StressFocus) Contains(z float64) bool {
	return z >= f.Start && z <= f.End
}

// theoreticalFactors returns the largest Kt and Kts of every focus containing
// z, or 1 when none does.
func theoreticalFactors(focus []StressFocus, z float64) (kt, kts float64) {
	kt, kts = 1, 1
	for _, f := range focus {
		if !f.Contains(z) {
			continue
		}
		kt = max(kt, f.Kt)
		kts = max(kts, f.Kts)
	}
	return kt, kts
}

// NotchSensitivity computes Neuber's q = 1 / (1 + √a / √r) with r in m and
// √a as stored on the material, in √mm.
func NotchSensitivity(neuberConstant, radius float64) float64 {
	return 1 / (1 + neuberConstant/math.Sqrt(radius))
}
