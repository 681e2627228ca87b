package params

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownParameter is returned when a name does not address a field.
var ErrUnknownParameter = errors.New("unknown parameter")

type field struct {
	get func(*ParameterSet) float64
	set func(*ParameterSet, float64)
}

func floatField(ptr func(*ParameterSet) *float64) field {
	return field{
		get: func(p *ParameterSet) float64 { return *ptr(p) },
		set: func(p *ParameterSet, v float64) { *ptr(p) = v },
	}
}

func intField(ptr func(*ParameterSet) *int) field {
	return field{
		get: func(p *ParameterSet) float64 { return float64(*ptr(p)) },
		set: func(p *ParameterSet, v float64) { *ptr(p) = roundInt(v) },
	}
}

// roundInt rounds to the nearest int, saturating at the int32 range so that
// huge inputs stay large rather than wrapping. NaN becomes 0.
func roundInt(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(math.Max(math.MinInt32, math.Min(math.MaxInt32, v))))
}

// fields maps dotted YAML paths to numeric fields. Read-only after init.
var fields = map[string]field{
	"years":     intField(func(p *ParameterSet) *int { return &p.Years }),
	"target_gw": floatField(func(p *ParameterSet) *float64 { return &p.TargetGW }),

	"orbital.launch_cost_per_kg":      floatField(func(p *ParameterSet) *float64 { return &p.Orbital.LaunchCostPerKg }),
	"orbital.satellite_cost_per_w":    floatField(func(p *ParameterSet) *float64 { return &p.Orbital.SatelliteCostPerW }),
	"orbital.specific_power_w_per_kg": floatField(func(p *ParameterSet) *float64 { return &p.Orbital.SpecificPowerWPerKg }),
	"orbital.satellite_power_kw":      floatField(func(p *ParameterSet) *float64 { return &p.Orbital.SatellitePowerKW }),
	"orbital.sun_fraction":            floatField(func(p *ParameterSet) *float64 { return &p.Orbital.SunFraction }),
	"orbital.cell_degradation":        floatField(func(p *ParameterSet) *float64 { return &p.Orbital.CellDegradation }),
	"orbital.gpu_failure_rate":        floatField(func(p *ParameterSet) *float64 { return &p.Orbital.GPUFailureRate }),
	"orbital.nre_cost_m":              floatField(func(p *ParameterSet) *float64 { return &p.Orbital.NRECostM }),

	"terrestrial.gas_turbine_capex_per_kw": floatField(func(p *ParameterSet) *float64 { return &p.Terrestrial.GasTurbineCapexPerKW }),
	"terrestrial.electrical_cost_per_w":    floatField(func(p *ParameterSet) *float64 { return &p.Terrestrial.ElectricalCostPerW }),
	"terrestrial.mechanical_cost_per_w":    floatField(func(p *ParameterSet) *float64 { return &p.Terrestrial.MechanicalCostPerW }),
	"terrestrial.civil_cost_per_w":         floatField(func(p *ParameterSet) *float64 { return &p.Terrestrial.CivilCostPerW }),
	"terrestrial.network_cost_per_w":       floatField(func(p *ParameterSet) *float64 { return &p.Terrestrial.NetworkCostPerW }),
	"terrestrial.pue":                      floatField(func(p *ParameterSet) *float64 { return &p.Terrestrial.PUE }),
	"terrestrial.gas_price_per_mmbtu":      floatField(func(p *ParameterSet) *float64 { return &p.Terrestrial.GasPricePerMMBtu }),
	"terrestrial.heat_rate_btu_kwh":        floatField(func(p *ParameterSet) *float64 { return &p.Terrestrial.HeatRateBtuKWh }),
	"terrestrial.capacity_factor":          floatField(func(p *ParameterSet) *float64 { return &p.Terrestrial.CapacityFactor }),

	"thermal.solar_absorptivity":  floatField(func(p *ParameterSet) *float64 { return &p.Thermal.SolarAbsorptivity }),
	"thermal.emissivity_pv":       floatField(func(p *ParameterSet) *float64 { return &p.Thermal.EmissivityPV }),
	"thermal.emissivity_rad":      floatField(func(p *ParameterSet) *float64 { return &p.Thermal.EmissivityRad }),
	"thermal.pv_efficiency":       floatField(func(p *ParameterSet) *float64 { return &p.Thermal.PVEfficiency }),
	"thermal.beta_angle_deg":      floatField(func(p *ParameterSet) *float64 { return &p.Thermal.BetaAngleDeg }),
	"thermal.orbital_altitude_km": floatField(func(p *ParameterSet) *float64 { return &p.Thermal.OrbitalAltitudeKm }),
	"thermal.max_die_temp_c":      floatField(func(p *ParameterSet) *float64 { return &p.Thermal.MaxDieTempC }),
	"thermal.temp_drop_c":         floatField(func(p *ParameterSet) *float64 { return &p.Thermal.TempDropC }),
	"thermal.orbit_samples":       intField(func(p *ParameterSet) *int { return &p.Thermal.OrbitSamples }),
}

const sizingName = "orbital.sizing"

// Names returns every numeric parameter name in sorted order.
func Names() []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the value of the named numeric parameter.
func (p *ParameterSet) Get(name string) (float64, error) {
	f, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	return f.get(p), nil
}

// Set assigns the named numeric parameter. The value is not range-checked.
// Integer parameters are rounded to the nearest whole number and saturate
// at the int32 range.
func (p *ParameterSet) Set(name string, v float64) error {
	f, ok := fields[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	f.set(p, v)
	return nil
}

// Apply sets every entry of values, stopping at the first unknown name.
func (p *ParameterSet) Apply(values map[string]float64) error {
	for name, v := range values {
		if err := p.Set(name, v); err != nil {
			return err
		}
	}
	return nil
}

// SetString parses raw and assigns it to name. It also accepts the
// non-numeric orbital.sizing parameter.
func (p *ParameterSet) SetString(name, raw string) error {
	if name == sizingName {
		s := Sizing(strings.ToLower(strings.TrimSpace(raw)))
		if s != SizingReplace && s != SizingBinding {
			return fmt.Errorf("invalid sizing %q (want %q or %q)", raw, SizingReplace, SizingBinding)
		}
		p.Orbital.Sizing = s
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return p.Set(name, v)
}

// ParseAssignment applies a "name=value" string.
func (p *ParameterSet) ParseAssignment(assignment string) error {
	name, raw, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("invalid assignment %q (want name=value)", assignment)
	}
	return p.SetString(strings.TrimSpace(name), raw)
}

// Values returns a snapshot of every numeric parameter keyed by name.
func (p *ParameterSet) Values() map[string]float64 {
	out := make(map[string]float64, len(fields))
	for name, f := range fields {
		out[name] = f.get(p)
	}
	return out
}
