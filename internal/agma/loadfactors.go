package agma

// LoadFactors groups the AGMA correction factors assumed for a gear pair.
// Every field is a plain multiplier except Qv, the transmission quality number.
type LoadFactors struct {
	// Bending
	Ka float64 // application
	Km float64 // load distribution
	Ks float64 // size
	Kb float64 // rim thickness
	Ki float64 // idler
	Qv float64 // quality number for Kv

	// Contact
	Cf float64 // surface finish

	// Bending fatigue
	Kt float64 // temperature
	Kr float64 // reliability

	// Contact fatigue
	Ct float64 // temperature
	Cr float64 // reliability
	Ch float64 // hardness ratio
}

// DefaultLoadFactors are the uniform-load, commercial-quality assumptions used
// for the reference reducer.
var DefaultLoadFactors = LoadFactors{
	Ka: 1,
	Km: 1.6,
	Ks: 1,
	Kb: 1,
	Ki: 1,
	Qv: 7,
	Cf: 1,
	Kt: 1,
	Kr: 1,
	Ct: 1,
	Cr: 1,
	Ch: 1,
}

// BendingTotal returns the product of the bending load factors.
func (f LoadFactors) BendingTotal() float64 {
	return f.Ka * f.Km * f.Ks * f.Kb * f.Ki
}

// ContactTotal returns the product of the contact load factors.
func (f LoadFactors) ContactTotal() float64 {
	return f.Ka * f.Km * f.Ks * f.Cf
}
