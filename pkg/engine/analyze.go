package engine

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/spacedc/pkg/params"
	"github.com/ChicagoDave/spacedc/pkg/validation"
)

// analyze appends analytical findings for a computed comparison.
func analyze(cmp *Comparison, report *validation.Report) {
	checkFinite(cmp, report)
	checkThermal(cmp, report)
	checkBreakeven(cmp, report)
	checkSizing(cmp, report)
}

func checkFinite(cmp *Comparison, report *validation.Report) {
	outputs := []struct {
		path  string
		value float64
		cause string
	}{
		{"orbital.fleet.required_power_w", cmp.Orbital.Fleet.RequiredPowerW, "combined capacity factor is zero"},
		{"orbital.costs.total", cmp.Orbital.Costs.Total, "fleet sizing diverged"},
		{"terrestrial.total", cmp.Terrestrial.Total, "terrestrial inputs are degenerate"},
		{"terrestrial.lcoe", cmp.Terrestrial.LCOE, "no energy is delivered"},
		{"breakeven.launch_cost_per_kg", cmp.Breakeven.LaunchCostPerKg, "fleet mass is zero or infinite"},
		{"thermal.equilibrium_k", cmp.Thermal.EquilibriumK, "array area or emissivity is zero"},
	}
	for _, o := range outputs {
		if !finite(o.value) {
			report.AddError(validation.Result{
				Level:       validation.LevelAnalytical,
				Message:     fmt.Sprintf("%s is not finite: %s", o.path, o.cause),
				Parameter:   o.path,
				ActualValue: fmt.Sprint(o.value),
				Expected:    "finite",
			})
		}
	}
}

func checkThermal(cmp *Comparison, report *validation.Report) {
	th := cmp.Thermal
	if th.Sufficient || !finite(th.MarginC) {
		return
	}
	report.AddWarning(validation.Result{
		Level:        validation.LevelAnalytical,
		Message:      fmt.Sprintf("array equilibrium %.1f °C exceeds radiator limit %.1f °C by %.1f °C", th.EquilibriumC, th.RadiatorLimitC, -th.MarginC),
		Parameter:    "thermal.equilibrium_c",
		ActualValue:  th.EquilibriumC,
		Expected:     fmt.Sprintf("<= %.1f", th.RadiatorLimitC),
		ConflictWith: "thermal.max_die_temp_c",
		Suggestions: []string{
			fmt.Sprintf("Radiating area of about %.2f km² holds the limit at this heat load", th.RequiredAreaM2/1e6),
			"Raise max_die_temp_c or reduce temp_drop_c",
			"Increase emissivity_rad",
		},
	})
}

func checkBreakeven(cmp *Comparison, report *validation.Report) {
	be := cmp.Breakeven
	if be.Achievable || !finite(be.LaunchCostPerKg) {
		return
	}
	report.AddInfo(validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     fmt.Sprintf("orbital costs more than terrestrial even at zero launch cost (breakeven %.0f $/kg)", be.LaunchCostPerKg),
		Parameter:   "breakeven.launch_cost_per_kg",
		ActualValue: be.LaunchCostPerKg,
		Expected:    ">= 0",
	})
}

func checkSizing(cmp *Comparison, report *validation.Report) {
	d := cmp.Orbital.Degradation
	if cmp.Params.Orbital.Sizing != params.SizingReplace || d.GPU >= d.Solar {
		return
	}
	report.AddInfo(validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     fmt.Sprintf("GPU retention %.3f is below solar retention %.3f; fleet is sized for solar and failed GPUs are covered by the replacement budget", d.GPU, d.Solar),
		Parameter:   "orbital.sizing",
		ActualValue: string(params.SizingReplace),
		Suggestions: []string{fmt.Sprintf("Set orbital.sizing=%s to size for the binding constraint", params.SizingBinding)},
	})
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
