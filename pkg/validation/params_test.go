package validation

import (
	"math"
	"testing"

	"github.com/ChicagoDave/spacedc/pkg/params"
)

func assertHasFinding(t *testing.T, results []Result, parameter string) {
	t.Helper()
	for _, r := range results {
		if r.Parameter == parameter {
			return
		}
	}
	t.Errorf("expected finding for %s, got %v", parameter, results)
}

func TestValidateParametersDefaults(t *testing.T) {
	r := ValidateParameters(params.Defaults())
	if !r.Valid {
		t.Errorf("defaults should be valid, got %d errors: %v", len(r.Errors), r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("defaults should sit inside every range, got %v", r.Warnings)
	}
}

func TestValidateParametersBounds(t *testing.T) {
	tests := []struct {
		name  string
		param string
		value float64
	}{
		{"zero sun fraction", "orbital.sun_fraction", 0},
		{"sun fraction above one", "orbital.sun_fraction", 1.2},
		{"total degradation", "orbital.cell_degradation", 100},
		{"negative launch", "orbital.launch_cost_per_kg", -5},
		{"emissivity above one", "thermal.emissivity_pv", 1.7},
		{"PUE below one", "terrestrial.pue", 0.9},
		{"zero horizon", "years", 0},
		{"no samples", "thermal.orbit_samples", 0},
		{"horizon past limit", "years", params.MaxYears + 1},
		{"too many samples", "thermal.orbit_samples", 1e15},
		{"beta past 90", "thermal.beta_angle_deg", 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params.Defaults()
			if err := p.Set(tt.param, tt.value); err != nil {
				t.Fatal(err)
			}
			r := ValidateParameters(p)
			if r.Valid {
				t.Fatalf("%s=%v should be invalid", tt.param, tt.value)
			}
			assertHasFinding(t, r.Errors, tt.param)
		})
	}
}

func TestValidateParametersRangeWarning(t *testing.T) {
	p := params.Defaults()
	p.Orbital.LaunchCostPerKg = 5000
	p.Thermal.BetaAngleDeg = 30

	r := ValidateParameters(p)
	if !r.Valid {
		t.Errorf("out-of-range but physical values should stay valid: %v", r.Errors)
	}
	assertHasFinding(t, r.Warnings, "orbital.launch_cost_per_kg")
	assertHasFinding(t, r.Warnings, "thermal.beta_angle_deg")
	for _, w := range r.Warnings {
		if w.Level != LevelRange {
			t.Errorf("warning %q level = %s, want %s", w.Message, w.Level, LevelRange)
		}
	}
}

func TestValidateParametersNonFinite(t *testing.T) {
	p := params.Defaults()
	p.TargetGW = math.Inf(1)
	r := ValidateParameters(p)
	assertHasFinding(t, r.Errors, "target_gw")
}

func TestValidateParametersSizing(t *testing.T) {
	p := params.Defaults()
	p.Orbital.Sizing = "greedy"
	r := ValidateParameters(p)
	if r.Valid {
		t.Fatal("unknown sizing policy should be invalid")
	}
	assertHasFinding(t, r.Errors, "orbital.sizing")
}

func TestValidateParametersThermalConsistency(t *testing.T) {
	p := params.Defaults()
	p.Thermal.PVEfficiency = 0.95
	p.Thermal.SolarAbsorptivity = 0.9
	p.Thermal.TempDropC = 90

	r := ValidateParameters(p)
	assertHasFinding(t, r.Warnings, "thermal.pv_efficiency")
	assertHasFinding(t, r.Warnings, "thermal.temp_drop_c")

	p = params.Defaults()
	p.Thermal.EmissivityPV = 0
	p.Thermal.EmissivityRad = 0
	r = ValidateParameters(p)
	assertHasFinding(t, r.Errors, "thermal.emissivity_rad")
}

func TestRangesCoverKnownParameters(t *testing.T) {
	known := make(map[string]bool)
	for _, n := range params.Names() {
		known[n] = true
	}
	for name, rg := range Ranges() {
		if !known[name] {
			t.Errorf("range for unknown parameter %q", name)
		}
		if rg.Min > rg.Max {
			t.Errorf("%s: min %v > max %v", name, rg.Min, rg.Max)
		}
	}
	for name := range bounds {
		if !known[name] {
			t.Errorf("bound for unknown parameter %q", name)
		}
	}
}
