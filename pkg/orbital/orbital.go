package orbital

import (
	"math"

	"github.com/ChicagoDave/spacedc/pkg/params"
)

// Costs itemizes the orbital cost decomposition. Total is the exact sum of
// the five terms.
type Costs struct {
	Hardware    float64 `json:"hardware"`
	Launch      float64 `json:"launch"`
	Operations  float64 `json:"operations"`
	Replacement float64 `json:"replacement"`
	NRE         float64 `json:"nre"`
	Total       float64 `json:"total"`
}

// Engineering holds physical figures derived from the sized fleet.
type Engineering struct {
	ArrayPerUnitM2 float64 `json:"array_per_unit_m2"`
	ArrayAreaM2    float64 `json:"array_area_m2"`
	ArrayAreaKm2   float64 `json:"array_area_km2"`
	Launches       float64 `json:"launches"`
	LOXGallons     float64 `json:"lox_gallons"`
	MethaneGallons float64 `json:"methane_gallons"`
	DegradationPct float64 `json:"degradation_margin_pct"`
	GPUMarginPct   float64 `json:"gpu_margin_pct"`
	SolarMarginPct float64 `json:"solar_margin_pct"`
}

// Result is the complete orbital output.
type Result struct {
	Degradation Degradation `json:"degradation"`
	Fleet       Fleet       `json:"fleet"`
	Costs       Costs       `json:"costs"`
	Engineering Engineering `json:"engineering"`

	// BaseCost is hardware plus launch, the up-front capital.
	BaseCost  float64 `json:"base_cost"`
	EnergyMWh float64 `json:"energy_mwh"`
	// CostPerW divides by the delivered target, not installed capacity.
	CostPerW float64 `json:"cost_per_w"`
	LCOE     float64 `json:"lcoe"` // $/MWh
}

// Estimate sizes the orbital fleet and composes its cost for the horizon.
// Degenerate inputs propagate as non-finite values.
func Estimate(p params.ParameterSet, c params.Constants) *Result {
	r := &Result{}
	targetW := p.TargetPowerW()
	unitW := p.Orbital.SatellitePowerKW * WattsPerKW

	r.Degradation = Degrade(p)
	r.Fleet = SizeFleet(targetW, r.Degradation.SunlightAdjusted, unitW, p.Orbital.SpecificPowerWPerKg)

	hardware := p.Orbital.SatelliteCostPerW * r.Fleet.ActualPowerW
	launch := p.Orbital.LaunchCostPerKg * r.Fleet.TotalMassKg
	r.Costs = makeCosts(hardware, launch, RecurringCosts(p, c, hardware), p.Orbital.NRECostM*DollarsPerMillion)
	r.BaseCost = hardware + launch

	r.EnergyMWh = p.TargetPowerMW() * p.TotalHours(c)
	r.CostPerW = r.Costs.Total / targetW
	r.LCOE = r.Costs.Total / r.EnergyMWh

	perUnit := c.ArrayAreaPerKW() * p.Orbital.SatellitePowerKW
	launches := math.Ceil(r.Fleet.TotalMassKg / c.LaunchPayloadKg)
	r.Engineering = Engineering{
		ArrayPerUnitM2: perUnit,
		ArrayAreaM2:    r.Fleet.UnitCount * perUnit,
		ArrayAreaKm2:   r.Fleet.UnitCount * perUnit / M2PerKm2,
		Launches:       launches,
		LOXGallons:     launches * c.LOXGallonsPerLaunch,
		MethaneGallons: launches * c.MethaneGallonsPerLaunch,
		DegradationPct: r.Fleet.MarginPct(targetW),
		GPUMarginPct:   marginPct(r.Degradation.GPU),
		SolarMarginPct: marginPct(r.Degradation.Solar),
	}
	return r
}

// Recurring is the pair of hardware-proportional costs over the horizon.
type Recurring struct {
	Operations  float64
	Replacement float64
}

// RecurringCosts returns operations and failed-hardware replacement costs
// for a fleet whose hardware cost is hardware.
func RecurringCosts(p params.ParameterSet, c params.Constants, hardware float64) Recurring {
	years := float64(p.Years)
	return Recurring{
		Operations:  hardware * c.OrbitalOpsFrac * years,
		Replacement: hardware * (p.Orbital.GPUFailureRate / 100) * years,
	}
}

func makeCosts(hardware, launch float64, rec Recurring, nre float64) Costs {
	return Costs{
		Hardware:    hardware,
		Launch:      launch,
		Operations:  rec.Operations,
		Replacement: rec.Replacement,
		NRE:         nre,
		Total:       hardware + launch + rec.Operations + rec.Replacement + nre,
	}
}
