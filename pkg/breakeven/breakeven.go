// Package breakeven solves for the launch price at which the orbital fleet
// costs the same as the terrestrial datacenter.
package breakeven

import (
	"github.com/ChicagoDave/spacedc/pkg/orbital"
	"github.com/ChicagoDave/spacedc/pkg/params"
	"github.com/ChicagoDave/spacedc/pkg/terrestrial"
)

// Result is the breakeven solution.
type Result struct {
	// LaunchCostPerKg is negative when orbital is costlier even with free
	// launch.
	LaunchCostPerKg  float64 `json:"launch_cost_per_kg"`
	Achievable       bool    `json:"achievable"`
	TerrestrialTotal float64 `json:"terrestrial_total"`
	OrbitalFixed     float64 `json:"orbital_fixed"`
	RequiredPowerW   float64 `json:"required_power_w"`
	TotalMassKg      float64 `json:"total_mass_kg"`
}

// Solve returns L = (C_terrestrial - C_orbital_without_launch) / mass,
// holding every parameter but the launch price fixed.
//
// Orbital hardware is priced on the required (un-rounded) initial power;
// mass uses the whole-unit fleet. Operations, replacement and NRE are part
// of the fixed cost so that L substituted into orbital.Estimate reproduces
// the terrestrial total to within one unit's hardware.
func Solve(p params.ParameterSet, c params.Constants) *Result {
	terr := terrestrial.Estimate(p, c)

	d := orbital.Degrade(p)
	unitW := p.Orbital.SatellitePowerKW * orbital.WattsPerKW
	fleet := orbital.SizeFleet(p.TargetPowerW(), d.SunlightAdjusted, unitW, p.Orbital.SpecificPowerWPerKg)

	hardware := p.Orbital.SatelliteCostPerW * fleet.RequiredPowerW
	rec := orbital.RecurringCosts(p, c, hardware)
	fixed := hardware + rec.Operations + rec.Replacement + p.Orbital.NRECostM*orbital.DollarsPerMillion

	l := (terr.Total - fixed) / fleet.TotalMassKg
	return &Result{
		LaunchCostPerKg:  l,
		Achievable:       l >= 0,
		TerrestrialTotal: terr.Total,
		OrbitalFixed:     fixed,
		RequiredPowerW:   fleet.RequiredPowerW,
		TotalMassKg:      fleet.TotalMassKg,
	}
}
