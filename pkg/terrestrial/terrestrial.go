// Package terrestrial prices a gas-turbine-powered datacenter delivering the
// same average IT load as the orbital fleet.
package terrestrial

import (
	"math"

	"github.com/ChicagoDave/spacedc/pkg/params"
)

const (
	wattsPerKW = 1000.0
	kWhPerMWh  = 1000.0
	wattsPerMW = 1e6
)

// Capex itemizes the five capital buckets. Infrastructure is their sum.
type Capex struct {
	PowerGeneration float64 `json:"power_generation"`
	Electrical      float64 `json:"electrical"`
	Mechanical      float64 `json:"mechanical"`
	Civil           float64 `json:"civil"`
	Network         float64 `json:"network"`
	Infrastructure  float64 `json:"infrastructure"`

	PowerGenerationPerW float64 `json:"power_generation_per_w"`
	FacilityPerW        float64 `json:"facility_per_w"`
}

// Fuel is the gas operating cost over the horizon.
type Fuel struct {
	CostPerMWh   float64 `json:"cost_per_mwh"` // of generated energy
	Total        float64 `json:"total"`
	CostPerWYear float64 `json:"cost_per_w_year"`
	GasBCF       float64 `json:"gas_bcf"`
}

// Result is the complete terrestrial output.
type Result struct {
	Capex Capex   `json:"capex"`
	Fuel  Fuel    `json:"fuel"`
	Total float64 `json:"total"`

	TotalHours    float64 `json:"total_hours"`
	DeliveredMWh  float64 `json:"delivered_mwh"`
	GenerationMWh float64 `json:"generation_mwh"`
	GenerationMW  float64 `json:"generation_mw"`
	Turbines      float64 `json:"turbines"`

	CostPerW float64 `json:"cost_per_w"`
	// LCOE divides by delivered IT energy, not generated energy.
	LCOE float64 `json:"lcoe"`
}

// Estimate prices the terrestrial datacenter for the horizon.
func Estimate(p params.ParameterSet, c params.Constants) *Result {
	t := p.Terrestrial
	targetW := p.TargetPowerW()
	r := &Result{TotalHours: p.TotalHours(c)}

	powerGenPerW := t.GasTurbineCapexPerKW * t.PUE / wattsPerKW
	r.Capex = makeCapex(
		powerGenPerW*targetW,
		t.ElectricalCostPerW*targetW,
		t.MechanicalCostPerW*targetW,
		t.CivilCostPerW*targetW,
		t.NetworkCostPerW*targetW,
	)
	r.Capex.PowerGenerationPerW = powerGenPerW
	r.Capex.FacilityPerW = powerGenPerW + t.ElectricalCostPerW + t.MechanicalCostPerW + t.CivilCostPerW + t.NetworkCostPerW

	r.DeliveredMWh = p.TargetPowerMW() * r.TotalHours * t.CapacityFactor
	r.GenerationMWh = r.DeliveredMWh * t.PUE

	// BTU/kWh × $/MMBtu / 1000 = $/MWh
	fuelPerMWh := t.HeatRateBtuKWh * t.GasPricePerMMBtu / 1000
	r.Fuel = Fuel{
		CostPerMWh:   fuelPerMWh,
		Total:        fuelPerMWh * r.GenerationMWh,
		CostPerWYear: fuelPerMWh * t.PUE * c.HoursPerYear / wattsPerMW,
		GasBCF:       r.GenerationMWh * kWhPerMWh * t.HeatRateBtuKWh / c.BTUPerCF / c.CFPerBCF,
	}

	r.Total = r.Capex.Infrastructure + r.Fuel.Total
	r.CostPerW = r.Total / targetW
	r.LCOE = r.Total / r.DeliveredMWh

	r.GenerationMW = p.TargetPowerMW() * t.PUE
	r.Turbines = math.Ceil(r.GenerationMW / c.TurbinePowerMW)
	return r
}

func makeCapex(powerGen, electrical, mechanical, civil, network float64) Capex {
	return Capex{
		PowerGeneration: powerGen,
		Electrical:      electrical,
		Mechanical:      mechanical,
		Civil:           civil,
		Network:         network,
		Infrastructure:  powerGen + electrical + mechanical + civil + network,
	}
}
