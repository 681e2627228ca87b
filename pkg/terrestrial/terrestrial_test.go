package terrestrial

import (
	"math"
	"testing"

	"github.com/ChicagoDave/spacedc/pkg/params"
)

func TestEstimateReferenceScenario(t *testing.T) {
	r := Estimate(params.Defaults(), params.DefaultConstants())

	if math.Abs(r.Total-15.85e9)/15.85e9 > 0.01 {
		t.Errorf("total = %.4g, want ~15.85e9", r.Total)
	}
	if math.Abs(r.Capex.Infrastructure-14.66e9) > 1 {
		t.Errorf("infrastructure = %.4g, want 14.66e9", r.Capex.Infrastructure)
	}
	if math.Abs(r.Capex.PowerGenerationPerW-2.16) > 1e-12 {
		t.Errorf("power gen $/W = %v, want 2.16", r.Capex.PowerGenerationPerW)
	}
	if math.Abs(r.Capex.FacilityPerW-14.66) > 1e-9 {
		t.Errorf("facility $/W = %v, want 14.66", r.Capex.FacilityPerW)
	}
	if math.Abs(r.Fuel.CostPerMWh-26.66) > 1e-9 {
		t.Errorf("fuel $/MWh = %v, want 26.66", r.Fuel.CostPerMWh)
	}
	if math.Abs(r.Fuel.Total-1.19106216e9) > 1 {
		t.Errorf("fuel total = %.6g, want 1.19106216e9", r.Fuel.Total)
	}
	if r.Turbines != 3 {
		t.Errorf("turbines = %v, want 3", r.Turbines)
	}
	if math.Abs(r.Fuel.GasBCF-276.9912) > 1e-6 {
		t.Errorf("gas = %v BCF, want 276.9912", r.Fuel.GasBCF)
	}
	if math.Abs(r.Fuel.CostPerWYear-0.28025) > 1e-5 {
		t.Errorf("fuel $/W-yr = %v, want ~0.28025", r.Fuel.CostPerWYear)
	}
}

func TestEstimateAdditive(t *testing.T) {
	c := params.DefaultConstants()
	for _, pue := range []float64{1.1, 1.2, 1.5} {
		for _, gas := range []float64{2, 4.3, 15} {
			for _, gw := range []float64{1, 17.5, 1000} {
				p := params.Defaults()
				p.Terrestrial.PUE = pue
				p.Terrestrial.GasPricePerMMBtu = gas
				p.TargetGW = gw

				r := Estimate(p, c)
				k := r.Capex
				buckets := k.PowerGeneration + k.Electrical + k.Mechanical + k.Civil + k.Network
				if buckets != k.Infrastructure {
					t.Errorf("pue=%v gas=%v gw=%v: buckets %v != infrastructure %v", pue, gas, gw, buckets, k.Infrastructure)
				}
				if k.Infrastructure+r.Fuel.Total != r.Total {
					t.Errorf("pue=%v gas=%v gw=%v: capex+fuel != total", pue, gas, gw)
				}
			}
		}
	}
}

func TestEstimateEnergyDenominators(t *testing.T) {
	p := params.Defaults()
	r := Estimate(p, params.DefaultConstants())

	if r.GenerationMWh != r.DeliveredMWh*p.Terrestrial.PUE {
		t.Errorf("generation %v should be delivered × PUE", r.GenerationMWh)
	}
	if r.LCOE != r.Total/r.DeliveredMWh {
		t.Errorf("lcoe = %v, want total / delivered IT energy", r.LCOE)
	}
	if r.CostPerW != r.Total/p.TargetPowerW() {
		t.Errorf("cost/W = %v, want total / target watts", r.CostPerW)
	}
}

func TestEstimateZeroCapacityFactor(t *testing.T) {
	p := params.Defaults()
	p.Terrestrial.CapacityFactor = 0
	r := Estimate(p, params.DefaultConstants())
	if !math.IsInf(r.LCOE, 1) {
		t.Errorf("lcoe = %v, want +Inf with no delivered energy", r.LCOE)
	}
	if r.Fuel.Total != 0 {
		t.Errorf("fuel = %v, want 0", r.Fuel.Total)
	}
}
