package shaft

import (
	"math"
	"sort"
)

// Vector is a force (N) along x, y and z. The shaft axis is z.
type Vector [3]float64

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{-v[0], -v[1], -v[2]}
}

// PointLoad is a force applied at an axial position.
type PointLoad struct {
	Position float64 `json:"position"` // m
	Force    Vector  `json:"force"`
}

// Loads is a set of point loads kept sorted by ascending position with unique
// positions. The zero value is empty and ready to use.
type Loads struct {
	items []PointLoad
}

// NewLoads validates and sorts the given loads.
func NewLoads(loads ...PointLoad) (Loads, error) {
	var l Loads
	for _, p := range loads {
		if err := l.Add(p); err != nil {
			return Loads{}, err
		}
	}
	return l, nil
}

// Add inserts a load at its sorted position. Two loads at the same
// position are rejected; combine them first.
func (l *Loads) Add(p PointLoad) error {
	if math.IsNaN(p.Position) || math.IsInf(p.Position, 0) {
		return invalid("loads", "position %g is not finite", p.Position)
	}
	i := sort.Search(len(l.items), func(i int) bool { return l.items[i].Position >= p.Position })
	if i < len(l.items) && l.items[i].Position == p.Position {
		return invalid("loads", "duplicate load position %g m", p.Position)
	}
	l.items = append(l.items, PointLoad{})
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = p
	return nil
}

// Len returns the number of loads.
func (l Loads) Len() int {
	return len(l.items)
}

// All returns a copy of the loads in ascending position.
func (l Loads) All() []PointLoad {
	return append([]PointLoad(nil), l.items...)
}

// Sum returns the resultant force.
func (l Loads) Sum() Vector {
	var s Vector
	for _, p := range l.items {
		s = s.Add(p.Force)
	}
	return s
}
