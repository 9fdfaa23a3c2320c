package shaft

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/gored/internal/material"
)

// Design is the JSON description of a shaft.
type Design struct {
	Label            string              `json:"label"`
	Length           float64             `json:"length"`
	Resolution       int                 `json:"resolution,omitempty"`
	Material         material.Definition `json:"material"`
	Sections         []Section           `json:"sections"`
	Loads            []PointLoad         `json:"loads"`
	Torque           float64             `json:"torque"`
	CorrectionPoints [2]float64          `json:"correction_points"`
	StressFocus      []StressFocus       `json:"stress_focus,omitempty"`

	// SolveReactions adds the support reactions at the correction points
	// so the listed loads only need to hold the external forces.
	SolveReactions bool `json:"solve_reactions,omitempty"`
}

// LoadFromFile loads a shaft design from a JSON file.
func LoadFromFile(filepath string) (*Design, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var d Design
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath, err)
	}
	return &d, nil
}

// Config converts the design into a shaft configuration. The resolution
// falls back to defaultResolution when the design does not set one.
// A focus with neither Kt nor Kts set is a keyway.
func (d *Design) Config(defaultResolution int) (Config, error) {
	mat, err := d.Material.Material()
	if err != nil {
		return Config{}, err
	}
	res := d.Resolution
	if res == 0 {
		res = defaultResolution
	}

	focus := make([]StressFocus, len(d.StressFocus))
	for k, f := range d.StressFocus {
		if f.Kt == 0 && f.Kts == 0 {
			f = Keyway(f.Start, f.End)
		}
		focus[k] = f
	}

	return Config{
		Label:            d.Label,
		Length:           d.Length,
		Resolution:       res,
		Material:         mat,
		Sections:         d.Sections,
		Loads:            d.Loads,
		Torque:           d.Torque,
		CorrectionPoints: d.CorrectionPoints,
		StressFocus:      focus,
	}, nil
}
