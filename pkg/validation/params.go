package validation

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/spacedc/pkg/params"
)

// Range is the span of values a parameter is normally explored over.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

var ranges = map[string]Range{
	"years":     {3, 10, "yr"},
	"target_gw": {1, 1000, "GW"},

	"orbital.launch_cost_per_kg":      {20, 2940, "$/kg"},
	"orbital.satellite_cost_per_w":    {5, 40, "$/W"},
	"orbital.specific_power_w_per_kg": {3, 75, "W/kg"},
	"orbital.satellite_power_kw":      {5, 130, "kW"},
	"orbital.sun_fraction":            {0.55, 1.0, ""},
	"orbital.cell_degradation":        {0, 12, "%/yr"},
	"orbital.gpu_failure_rate":        {0, 10, "%/yr"},
	"orbital.nre_cost_m":              {0, 10000, "$M"},

	"terrestrial.gas_turbine_capex_per_kw": {1450, 2300, "$/kW"},
	"terrestrial.heat_rate_btu_kwh":        {6000, 9000, "BTU/kWh"},
	"terrestrial.gas_price_per_mmbtu":      {2, 15, "$/MMBtu"},
	"terrestrial.pue":                      {1.1, 1.5, ""},

	"thermal.solar_absorptivity": {0.80, 0.98, ""},
	"thermal.emissivity_pv":      {0, 0.95, ""},
	"thermal.emissivity_rad":     {0, 0.98, ""},
	"thermal.pv_efficiency":      {0.20, 0.24, ""},
	"thermal.beta_angle_deg":     {60, 90, "°"},
	"thermal.max_die_temp_c":     {70, 100, "°C"},
	"thermal.temp_drop_c":        {5, 25, "°C"},
}

// Ranges returns a copy of the exploration range table keyed by parameter
// name. Parameters without an entry have no conventional range.
func Ranges() map[string]Range {
	out := make(map[string]Range, len(ranges))
	for k, v := range ranges {
		out[k] = v
	}
	return out
}

// bound is a hard physical limit. Values outside it make results
// meaningless rather than merely unusual.
type bound struct {
	ok       func(float64) bool
	expected string
}

func positive(v float64) bool    { return v > 0 }
func nonNegative(v float64) bool { return v >= 0 }
func unit(v float64) bool        { return v >= 0 && v <= 1 }
func fraction(v float64) bool    { return v > 0 && v <= 1 }
func percentRate(v float64) bool { return v >= 0 && v < 100 }

var bounds = map[string]bound{
	"years":     {func(v float64) bool { return v >= 1 && v <= params.MaxYears }, fmt.Sprintf("[1, %d]", params.MaxYears)},
	"target_gw": {positive, "> 0"},

	"orbital.launch_cost_per_kg":      {nonNegative, ">= 0"},
	"orbital.satellite_cost_per_w":    {nonNegative, ">= 0"},
	"orbital.specific_power_w_per_kg": {positive, "> 0"},
	"orbital.satellite_power_kw":      {positive, "> 0"},
	"orbital.sun_fraction":            {fraction, "(0, 1]"},
	"orbital.cell_degradation":        {percentRate, "[0, 100)"},
	"orbital.gpu_failure_rate":        {percentRate, "[0, 100)"},
	"orbital.nre_cost_m":              {nonNegative, ">= 0"},

	"terrestrial.gas_turbine_capex_per_kw": {nonNegative, ">= 0"},
	"terrestrial.electrical_cost_per_w":    {nonNegative, ">= 0"},
	"terrestrial.mechanical_cost_per_w":    {nonNegative, ">= 0"},
	"terrestrial.civil_cost_per_w":         {nonNegative, ">= 0"},
	"terrestrial.network_cost_per_w":       {nonNegative, ">= 0"},
	"terrestrial.pue":                      {func(v float64) bool { return v >= 1 }, ">= 1"},
	"terrestrial.gas_price_per_mmbtu":      {nonNegative, ">= 0"},
	"terrestrial.heat_rate_btu_kwh":        {positive, "> 0"},
	"terrestrial.capacity_factor":          {fraction, "(0, 1]"},

	"thermal.solar_absorptivity":  {unit, "[0, 1]"},
	"thermal.emissivity_pv":       {unit, "[0, 1]"},
	"thermal.emissivity_rad":      {unit, "[0, 1]"},
	"thermal.pv_efficiency":       {unit, "[0, 1]"},
	"thermal.beta_angle_deg":      {func(v float64) bool { return v >= 0 && v <= 90 }, "[0, 90]"},
	"thermal.orbital_altitude_km": {positive, "> 0"},
	"thermal.temp_drop_c":         {nonNegative, ">= 0"},
	"thermal.orbit_samples":       {func(v float64) bool { return v >= 1 && v <= params.MaxOrbitSamples }, fmt.Sprintf("[1, %d]", params.MaxOrbitSamples)},
}

// ValidateParameters checks a parameter set before it is handed to the
// engine. Values outside physical limits are errors; values outside the
// conventional exploration range are warnings.
func ValidateParameters(p params.ParameterSet) *Report {
	r := NewReport()
	values := p.Values()

	for _, name := range params.Names() {
		v := values[name]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			r.AddError(Result{
				Level:       LevelBounds,
				Message:     fmt.Sprintf("%s is not a finite number", name),
				Parameter:   name,
				ActualValue: fmt.Sprint(v),
				Expected:    "finite",
			})
			continue
		}
		if b, ok := bounds[name]; ok && !b.ok(v) {
			r.AddError(Result{
				Level:       LevelBounds,
				Message:     fmt.Sprintf("%s %g is outside physical limits %s", name, v, b.expected),
				Parameter:   name,
				ActualValue: v,
				Expected:    b.expected,
			})
			continue
		}
		if rg, ok := ranges[name]; ok && !rg.Contains(v) {
			r.AddWarning(Result{
				Level:       LevelRange,
				Message:     fmt.Sprintf("%s %g is outside the explored range %g-%g %s", name, v, rg.Min, rg.Max, rg.Unit),
				Parameter:   name,
				ActualValue: v,
				Expected:    fmt.Sprintf("%g-%g", rg.Min, rg.Max),
			})
		}
	}

	validateSizing(p, r)
	validateThermalConsistency(p, r)
	return r
}

func validateSizing(p params.ParameterSet, r *Report) {
	s := p.Orbital.Sizing
	if s != params.SizingReplace && s != params.SizingBinding {
		r.AddError(Result{
			Level:       LevelBounds,
			Message:     fmt.Sprintf("unknown sizing policy %q", s),
			Parameter:   "orbital.sizing",
			ActualValue: string(s),
			Expected:    fmt.Sprintf("%q or %q", params.SizingReplace, params.SizingBinding),
		})
	}
}

func validateThermalConsistency(p params.ParameterSet, r *Report) {
	th := p.Thermal
	if th.PVEfficiency > th.SolarAbsorptivity {
		r.AddWarning(Result{
			Level:        LevelBounds,
			Message:      fmt.Sprintf("pv_efficiency %.2f exceeds solar_absorptivity %.2f; solar waste heat goes negative", th.PVEfficiency, th.SolarAbsorptivity),
			Parameter:    "thermal.pv_efficiency",
			ActualValue:  th.PVEfficiency,
			ConflictWith: "thermal.solar_absorptivity",
		})
	}
	if th.TempDropC >= th.MaxDieTempC {
		r.AddWarning(Result{
			Level:        LevelBounds,
			Message:      fmt.Sprintf("temp_drop_c %.0f leaves no radiator headroom below max_die_temp_c %.0f", th.TempDropC, th.MaxDieTempC),
			Parameter:    "thermal.temp_drop_c",
			ActualValue:  th.TempDropC,
			ConflictWith: "thermal.max_die_temp_c",
		})
	}
	if th.EmissivityPV+th.EmissivityRad == 0 {
		r.AddError(Result{
			Level:     LevelBounds,
			Message:   "emissivity_pv and emissivity_rad are both zero; the plate cannot radiate",
			Parameter: "thermal.emissivity_rad",
			Expected:  "emissivity_pv + emissivity_rad > 0",
		})
	}
}
