// Package engine runs the orbital, terrestrial, breakeven and thermal
// models against one parameter snapshot and reports analytical findings.
package engine

import (
	"github.com/ChicagoDave/spacedc/pkg/breakeven"
	"github.com/ChicagoDave/spacedc/pkg/orbital"
	"github.com/ChicagoDave/spacedc/pkg/params"
	"github.com/ChicagoDave/spacedc/pkg/terrestrial"
	"github.com/ChicagoDave/spacedc/pkg/thermal"
	"github.com/ChicagoDave/spacedc/pkg/validation"
)

// Comparison bundles every result family for one parameter set.
type Comparison struct {
	Params      params.ParameterSet `json:"params"`
	Orbital     *orbital.Result     `json:"orbital"`
	Terrestrial *terrestrial.Result `json:"terrestrial"`
	Breakeven   *breakeven.Result   `json:"breakeven"`
	Thermal     *thermal.Result     `json:"thermal"`
	Summary     Summary             `json:"summary"`
}

// Summary holds the headline comparison figures.
type Summary struct {
	// CostRatio is orbital total / terrestrial total.
	CostRatio      float64 `json:"cost_ratio"`
	CostDelta      float64 `json:"cost_delta"`
	CostPerWDelta  float64 `json:"cost_per_w_delta"`
	OrbitalCheaper bool    `json:"orbital_cheaper"`
}

// Compare evaluates every model. Compute never fails; degenerate results
// are reported as analytical findings alongside the numbers.
func Compare(p params.ParameterSet, c params.Constants) (*Comparison, *validation.Report) {
	report := validation.NewReport()

	orb := orbital.Estimate(p, c)
	cmp := &Comparison{
		Params:      p,
		Orbital:     orb,
		Terrestrial: terrestrial.Estimate(p, c),
		Breakeven:   breakeven.Solve(p, c),
		Thermal:     thermal.SolveArea(p, c, orb.Engineering.ArrayAreaM2),
	}

	cmp.Summary = Summary{
		CostRatio:      cmp.Orbital.Costs.Total / cmp.Terrestrial.Total,
		CostDelta:      cmp.Orbital.Costs.Total - cmp.Terrestrial.Total,
		CostPerWDelta:  cmp.Orbital.CostPerW - cmp.Terrestrial.CostPerW,
		OrbitalCheaper: cmp.Orbital.Costs.Total < cmp.Terrestrial.Total,
	}

	analyze(cmp, report)
	return cmp, report
}
