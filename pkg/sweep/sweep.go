// Package sweep evaluates the comparison across a range of one parameter.
package sweep

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/ChicagoDave/spacedc/pkg/breakeven"
	"github.com/ChicagoDave/spacedc/pkg/orbital"
	"github.com/ChicagoDave/spacedc/pkg/params"
	"github.com/ChicagoDave/spacedc/pkg/terrestrial"
	"github.com/ChicagoDave/spacedc/pkg/thermal"
)

// MaxSteps bounds the number of points in one sweep.
const MaxSteps = 1000

// ErrInvalidSteps is returned for a step count outside [2, MaxSteps].
var ErrInvalidSteps = errors.New("invalid step count")

// Request describes a sweep of Parameter from From to To inclusive.
type Request struct {
	Parameter string  `json:"parameter"`
	From      float64 `json:"from"`
	To        float64 `json:"to"`
	Steps     int     `json:"steps"`
}

// Point is the headline output at one parameter value.
type Point struct {
	Value            float64 `json:"value"`
	OrbitalTotal     float64 `json:"orbital_total"`
	TerrestrialTotal float64 `json:"terrestrial_total"`
	OrbitalCostPerW  float64 `json:"orbital_cost_per_w"`
	TerrestrialPerW  float64 `json:"terrestrial_cost_per_w"`
	OrbitalLCOE      float64 `json:"orbital_lcoe"`
	TerrestrialLCOE  float64 `json:"terrestrial_lcoe"`
	BreakevenPerKg   float64 `json:"breakeven_per_kg"`
	EquilibriumC     float64 `json:"equilibrium_c"`
	ThermalOK        bool    `json:"thermal_ok"`
}

// Result is a completed sweep.
type Result struct {
	Request Request `json:"request"`
	Points  []Point `json:"points"`
}

// Values returns the evenly spaced parameter values of the request.
func (r Request) Values() ([]float64, error) {
	if r.Steps < 2 || r.Steps > MaxSteps {
		return nil, fmt.Errorf("%w: %d (want 2-%d)", ErrInvalidSteps, r.Steps, MaxSteps)
	}
	return floats.Span(make([]float64, r.Steps), r.From, r.To), nil
}

// Run evaluates base at every value of the swept parameter. base is not
// modified. Integer parameters are rounded at each point. Every point is
// checked against params.CheckLimits before any is evaluated.
func Run(base params.ParameterSet, c params.Constants, req Request) (*Result, error) {
	values, err := req.Values()
	if err != nil {
		return nil, err
	}
	if _, err := base.Get(req.Parameter); err != nil {
		return nil, err
	}

	sets := make([]params.ParameterSet, len(values))
	for i, v := range values {
		sets[i] = base
		if err := sets[i].Set(req.Parameter, v); err != nil {
			return nil, err
		}
		if err := sets[i].CheckLimits(); err != nil {
			return nil, err
		}
	}

	res := &Result{Request: req, Points: make([]Point, 0, len(values))}
	for i, v := range values {
		res.Points = append(res.Points, evaluate(sets[i], c, v))
	}
	return res, nil
}

func evaluate(p params.ParameterSet, c params.Constants, v float64) Point {
	orb := orbital.Estimate(p, c)
	terr := terrestrial.Estimate(p, c)
	th := thermal.SolveArea(p, c, orb.Engineering.ArrayAreaM2)
	return Point{
		Value:            v,
		OrbitalTotal:     orb.Costs.Total,
		TerrestrialTotal: terr.Total,
		OrbitalCostPerW:  orb.CostPerW,
		TerrestrialPerW:  terr.CostPerW,
		OrbitalLCOE:      orb.LCOE,
		TerrestrialLCOE:  terr.LCOE,
		BreakevenPerKg:   breakeven.Solve(p, c).LaunchCostPerKg,
		EquilibriumC:     th.EquilibriumC,
		ThermalOK:        th.Sufficient,
	}
}
