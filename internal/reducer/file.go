package reducer

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadSystem reads operating conditions from a JSON file. Fields missing
// from the file keep the DefaultSystem values.
func LoadSystem(path string) (SystemVariables, error) {
	sys := DefaultSystem()
	data, err := os.ReadFile(path)
	if err != nil {
		return sys, err
	}
	if err := json.Unmarshal(data, &sys); err != nil {
		return sys, fmt.Errorf("parse %s: %w", path, err)
	}
	return sys, sys.Validate()
}

// Validate checks that the operating conditions can drive the reducer.
func (s SystemVariables) Validate() error {
	switch {
	case !(s.InputPower > 0):
		return fmt.Errorf("input power must be positive, got %g W", s.InputPower)
	case !(s.InputVelocity > 0):
		return fmt.Errorf("input velocity must be positive, got %g rpm", s.InputVelocity)
	case s.SecondsOfUse < 0:
		return fmt.Errorf("seconds of use must not be negative, got %g", s.SecondsOfUse)
	case !(s.RollerEfficiency > 0 && s.RollerEfficiency <= 1):
		return fmt.Errorf("roller efficiency must be in (0, 1], got %g", s.RollerEfficiency)
	case !(s.BeltEfficiency > 0 && s.BeltEfficiency <= 1):
		return fmt.Errorf("belt efficiency must be in (0, 1], got %g", s.BeltEfficiency)
	}
	return nil
}
