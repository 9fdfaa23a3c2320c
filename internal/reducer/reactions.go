package reducer

import (
	"fmt"

	"github.com/alexiusacademia/gored/internal/shaft"
)

// SolveReactions returns the bearing reactions at positions a and b that
// balance the given loads: ΣF = 0 and ΣM about b = 0 in the x and y planes.
// Axial force along z is taken entirely by bearing a.
func SolveReactions(loads []shaft.PointLoad, a, b float64) (ra, rb shaft.Vector, err error) {
	if a == b {
		return ra, rb, fmt.Errorf("bearings must be at distinct positions, both at %g m", a)
	}
	var sum, moment shaft.Vector
	for _, p := range loads {
		for axis := 0; axis < 2; axis++ {
			sum[axis] += p.Force[axis]
			moment[axis] += p.Force[axis] * (p.Position - b)
		}
		sum[2] += p.Force[2]
	}
	for axis := 0; axis < 2; axis++ {
		ra[axis] = -moment[axis] / (a - b)
		rb[axis] = -sum[axis] - ra[axis]
	}
	ra[2] = -sum[2]
	return ra, rb, nil
}

// WithReactions appends the bearing reactions to the external loads.
func WithReactions(loads []shaft.PointLoad, a, b float64) ([]shaft.PointLoad, error) {
	ra, rb, err := SolveReactions(loads, a, b)
	if err != nil {
		return nil, err
	}
	out := append([]shaft.PointLoad(nil), loads...)
	out = append(out,
		shaft.PointLoad{Position: a, Force: ra},
		shaft.PointLoad{Position: b, Force: rb},
	)
	return out, nil
}
