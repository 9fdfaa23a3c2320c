package reducer

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/alexiusacademia/gored/internal/belt"
	"github.com/alexiusacademia/gored/internal/gear"
	"github.com/alexiusacademia/gored/internal/material"
	"github.com/alexiusacademia/gored/internal/shaft"
)

// SystemVariables are the operating conditions of the reducer.
type SystemVariables struct {
	InputPower       float64 `json:"input_power"`    // W
	InputVelocity    float64 `json:"input_velocity"` // rpm at the motor pulley
	SecondsOfUse     float64 `json:"seconds_of_use"` // design life
	RollerEfficiency float64 `json:"roller_efficiency"`
	BeltEfficiency   float64 `json:"belt_efficiency"`
}

// DefaultSystem is one year of 8-hour shifts on two days a week.
func DefaultSystem() SystemVariables {
	return SystemVariables{
		InputPower:       2937,
		InputVelocity:    2335,
		SecondsOfUse:     365 * (2.0 / 7) * 8 * 60 * 60,
		RollerEfficiency: 0.96,
		BeltEfficiency:   0.96,
	}
}

// Layout positions shared by every shaft of the reference reducer (m)
const (
	BearingA = 0.133
	BearingB = 0.014

	PulleyPosition = 0.195
	OuterMesh      = 0.0975
	InnerMesh      = 0.0475

	// beltInclination projects belt tension onto the y axis
	beltInclination = 9.38 * math.Pi / 180
)

// Options tune the reducer analysis.
type Options struct {
	Resolution int // samples per m, 1000 when zero
	Material   *material.Material
	Logger     *slog.Logger
}

// Stage is one gear mesh of the reducer.
type Stage struct {
	Name         string
	Transmission *gear.Transmission
	Forces       gear.ForceResult
	Stress       gear.StressResult
}

// ShaftResult holds a calculated shaft and its bearing reactions.
type ShaftResult struct {
	Shaft     *shaft.Shaft
	ReactionA shaft.Vector
	ReactionB shaft.Vector
	Forces    *shaft.ForceResult
	Stress    *shaft.StressResult
}

// Result is the full reducer analysis.
type Result struct {
	System SystemVariables
	Belt   belt.Result
	Stages []Stage
	Shafts []ShaftResult
}

type shaftLayout struct {
	label  string
	length float64
	sects  []shaft.Section
	loads  func(st []Stage, tension float64) []shaft.PointLoad
	torque func(st []Stage) float64
	focus  []shaft.StressFocus
}

var (
	inputSections = []shaft.Section{
		{Start: 0, Diameter: 0.017},
		{Start: 0.02, Diameter: 0.02},
		{Start: 0.14, Diameter: 0.023},
		{Start: 0.185, Diameter: 0.019},
	}
	shortSections = []shaft.Section{
		{Start: 0, Diameter: 0.017},
		{Start: 0.02, Diameter: 0.02},
		{Start: 0.14, Diameter: 0.023},
	}
)

// layouts carries the load signs of each shaft as mounted in the housing.
var layouts = []shaftLayout{
	{
		label:  "Eixo 1",
		length: 0.21,
		sects:  inputSections,
		loads: func(st []Stage, ty float64) []shaft.PointLoad {
			f := st[0].Forces
			return []shaft.PointLoad{
				{Position: OuterMesh, Force: shaft.Vector{f.Ft1, -f.Fn1, 0}},
				{Position: PulleyPosition, Force: shaft.Vector{0, ty, 0}},
			}
		},
		torque: func(st []Stage) float64 { return st[0].Forces.T1 },
		focus:  []shaft.StressFocus{shaft.Keyway(0.0895, 0.1055), shaft.Keyway(0.19, 0.21)},
	},
	{
		label:  "Eixo 2",
		length: 0.16,
		sects:  shortSections,
		loads: func(st []Stage, _ float64) []shaft.PointLoad {
			f12, f23 := st[0].Forces, st[1].Forces
			return []shaft.PointLoad{
				{Position: OuterMesh, Force: shaft.Vector{-f12.Ft2, f12.Fn2, 0}},
				{Position: InnerMesh, Force: shaft.Vector{f23.Fn1, -f23.Ft1, 0}},
			}
		},
		torque: func(st []Stage) float64 { return st[1].Forces.T1 },
		focus:  []shaft.StressFocus{shaft.Keyway(0.0395, 0.0555), shaft.Keyway(0.0895, 0.1055)},
	},
	{
		label:  "Eixo 3",
		length: 0.16,
		sects:  shortSections,
		loads: func(st []Stage, _ float64) []shaft.PointLoad {
			f23, f34 := st[1].Forces, st[2].Forces
			return []shaft.PointLoad{
				{Position: InnerMesh, Force: shaft.Vector{-f23.Fn2, f23.Ft2, 0}},
				{Position: OuterMesh, Force: shaft.Vector{f34.Fn1, f34.Ft1, 0}},
			}
		},
		torque: func(st []Stage) float64 { return st[2].Forces.T1 },
		focus:  []shaft.StressFocus{shaft.Keyway(0.0395, 0.0555), shaft.Keyway(0.0895, 0.1055)},
	},
	{
		label:  "Eixo 4",
		length: 0.16,
		sects:  shortSections,
		loads: func(st []Stage, _ float64) []shaft.PointLoad {
			f := st[2].Forces
			return []shaft.PointLoad{
				{Position: OuterMesh, Force: shaft.Vector{-f.Fn2, -f.Ft2, 0}},
			}
		},
		torque: func(st []Stage) float64 { return st[2].Forces.T2 },
		focus:  []shaft.StressFocus{shaft.Keyway(0.0895, 0.1055)},
	},
}

type gearPair struct {
	name           string
	z1, j1, z2, j2 float64
	position       float64
}

var pairs = []gearPair{
	{"1-2", 19, 0.24, 57, 0.28, OuterMesh},
	{"2-3", 19, 0.24, 95, 0.29, InnerMesh},
	{"3-4", 43, 0.27, 86, 0.29, OuterMesh},
}

// Gear geometry common to every pair
const (
	pressureAngle   = 20 // degrees
	module          = 0.003
	thicknessFactor = 14
)

// Analyze runs the reference reducer: belt drive, three gear meshes, and the
// four shafts with reactions solved at the two bearings.
func Analyze(sys SystemVariables, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	res := opts.Resolution
	if res == 0 {
		res = 1000
	}
	steel := material.Steel1045()
	if opts.Material != nil {
		steel = *opts.Material
	}

	out := &Result{System: sys}

	// Belt drive, 2:1
	p1 := belt.NewPulley(0.118, sys.InputVelocity)
	p2 := belt.NewPulley(0.236, sys.InputVelocity*0.118/0.236)
	drive := belt.NewTransmission(p1, p2, sys.InputPower, PulleyPosition)
	br, err := drive.CalculateTransmission()
	if err != nil {
		return nil, fmt.Errorf("belt drive: %w", err)
	}
	out.Belt = br
	logger.Debug("belt drive calculated", "F1", br.F1, "F2", br.F2, "life", br.LifeCycles)

	power := sys.InputPower * sys.RollerEfficiency * sys.BeltEfficiency
	rpm := p2.AngularVelocity * 30 / math.Pi
	for _, gp := range pairs {
		pinion := gear.New(gp.z1, pressureAngle, module, thicknessFactor, gp.j1, steel)
		crown := gear.New(gp.z2, pressureAngle, module, thicknessFactor, gp.j2, steel)
		tr := gear.NewTransmission(pinion, crown, sys.SecondsOfUse, gp.position)

		f := tr.CalculateForces(power, rpm, sys.RollerEfficiency)
		s, err := tr.CalculateStress()
		if err != nil {
			return nil, fmt.Errorf("gear pair %s: %w", gp.name, err)
		}
		out.Stages = append(out.Stages, Stage{Name: gp.name, Transmission: tr, Forces: f, Stress: s})
		logger.Debug("gear pair calculated", "pair", gp.name, "T1", f.T1, "T2", f.T2)

		power = f.P2
		rpm = f.W2 * 30 / math.Pi
	}

	ty := -(br.F1 + br.F2) * math.Cos(beltInclination)
	for _, l := range layouts {
		sr, err := analyzeShaft(l, out.Stages, ty, steel, res)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l.label, err)
		}
		out.Shafts = append(out.Shafts, sr)
		nEst, at := sr.Stress.MinStatic()
		logger.Debug("shaft calculated", "shaft", l.label, "min_static", nEst, "at", at)
	}

	return out, nil
}

func analyzeShaft(l shaftLayout, stages []Stage, ty float64, mat material.Material, res int) (ShaftResult, error) {
	external := l.loads(stages, ty)
	ra, rb, err := SolveReactions(external, BearingA, BearingB)
	if err != nil {
		return ShaftResult{}, err
	}
	loads := append(external,
		shaft.PointLoad{Position: BearingA, Force: ra},
		shaft.PointLoad{Position: BearingB, Force: rb},
	)

	s, err := shaft.New(shaft.Config{
		Label:            l.label,
		Length:           l.length,
		Resolution:       res,
		Material:         mat,
		Sections:         l.sects,
		Loads:            loads,
		Torque:           l.torque(stages),
		CorrectionPoints: [2]float64{BearingB, BearingA},
		StressFocus:      l.focus,
	})
	if err != nil {
		return ShaftResult{}, err
	}

	forces := s.CalculateActingForces()
	stress, err := s.CalculateStress()
	if err != nil {
		return ShaftResult{}, err
	}
	return ShaftResult{Shaft: s, ReactionA: ra, ReactionB: rb, Forces: forces, Stress: stress}, nil
}
