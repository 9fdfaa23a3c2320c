package shaft

import "math"

// Section starts a constant-diameter step of the shaft at Start and runs up
// to the next section.
type Section struct {
	Start    float64 `json:"start"`    // m
	Diameter float64 `json:"diameter"` // m
}

// Profile is a validated sequence of sections with strictly increasing starts,
// the first at 0. The last section extends past the shaft end.
type Profile struct {
	sections []Section
}

// NewProfile validates the sections and returns the diameter profile.
func NewProfile(sections []Section) (Profile, error) {
	if len(sections) == 0 {
		return Profile{}, invalid("sections", "at least one section is required")
	}
	if sections[0].Start != 0 {
		return Profile{}, invalid("sections", "profile is undefined before %g m, first section must start at 0", sections[0].Start)
	}
	for i, sec := range sections {
		if math.IsNaN(sec.Start) || math.IsNaN(sec.Diameter) {
			return Profile{}, invalid("sections", "section %d is not a number", i+1)
		}
		if i > 0 && sec.Start <= sections[i-1].Start {
			return Profile{}, invalid("sections", "section %d starts at %g m, not after %g m", i+1, sec.Start, sections[i-1].Start)
		}
	}
	return Profile{sections: append([]Section(nil), sections...)}, nil
}

// Sections returns a copy of the profile sections.
func (p Profile) Sections() []Section {
	return append([]Section(nil), p.sections...)
}

// DiameterAt returns the diameter of the section containing z. Sections are
// closed at their start and open at the next start.
func (p Profile) DiameterAt(z float64) float64 {
	d := p.sections[0].Diameter
	for _, sec := range p.sections {
		if z < sec.Start {
			break
		}
		d = sec.Diameter
	}
	return d
}

// SecondMoment is the area moment of inertia of a solid circle.
func SecondMoment(d float64) float64 {
	return math.Pi * math.Pow(d, 4) / 64
}

// PolarMoment is the polar moment of inertia of a solid circle.
func PolarMoment(d float64) float64 {
	return math.Pi * math.Pow(d, 4) / 32
}
