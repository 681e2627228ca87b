package params

import (
	"errors"
	"math"
	"testing"
)

func TestLoadProject(t *testing.T) {
	p, c, err := LoadProject("../../examples/baseline")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if p.Years != 5 {
		t.Errorf("years = %d, want 5", p.Years)
	}
	if p.TargetGW != 1 {
		t.Errorf("target_gw = %v, want 1", p.TargetGW)
	}
	if p.Orbital.SpecificPowerWPerKg != 36.5 {
		t.Errorf("specific_power_w_per_kg = %v, want 36.5", p.Orbital.SpecificPowerWPerKg)
	}
	if p.Orbital.Sizing != SizingReplace {
		t.Errorf("sizing = %q, want %q", p.Orbital.Sizing, SizingReplace)
	}
	if p.Terrestrial.HeatRateBtuKWh != 6200 {
		t.Errorf("heat_rate_btu_kwh = %v, want 6200", p.Terrestrial.HeatRateBtuKWh)
	}
	if p.Thermal.OrbitSamples != 72 {
		t.Errorf("orbit_samples = %d, want 72", p.Thermal.OrbitSamples)
	}

	// No constants.yaml in the baseline project.
	if c != DefaultConstants() {
		t.Error("expected default constants when constants.yaml is absent")
	}
}

func TestLoadProjectPartialOverrides(t *testing.T) {
	p, c, err := LoadProject("../../examples/conservative")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if p.Orbital.SunFraction != 0.60 {
		t.Errorf("sun_fraction = %v, want 0.60", p.Orbital.SunFraction)
	}
	if p.Orbital.Sizing != SizingBinding {
		t.Errorf("sizing = %q, want %q", p.Orbital.Sizing, SizingBinding)
	}
	// Unset keys fall back to defaults.
	if p.Orbital.SatellitePowerKW != 27 {
		t.Errorf("satellite_power_kw = %v, want default 27", p.Orbital.SatellitePowerKW)
	}
	if p.Terrestrial.PUE != 1.2 {
		t.Errorf("pue = %v, want default 1.2", p.Terrestrial.PUE)
	}

	if c.LaunchPayloadKg != 50000 {
		t.Errorf("launch_payload_kg = %v, want 50000", c.LaunchPayloadKg)
	}
	if c.SolarIrradianceWM2 != 1361 {
		t.Errorf("solar_irradiance_w_m2 = %v, want default 1361", c.SolarIrradianceWM2)
	}
}

func TestLoadProjectMissing(t *testing.T) {
	_, _, err := LoadProject("/nonexistent/path")
	if err == nil {
		t.Error("expected error for missing project directory")
	}
}

func TestParseNormalizesZeroValues(t *testing.T) {
	p, err := Parse([]byte("orbital:\n  sizing: \"\"\nthermal:\n  orbit_samples: 0\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Orbital.Sizing != SizingReplace {
		t.Errorf("sizing = %q, want %q", p.Orbital.Sizing, SizingReplace)
	}
	if p.Thermal.OrbitSamples != DefaultOrbitSamples {
		t.Errorf("orbit_samples = %d, want %d", p.Thermal.OrbitSamples, DefaultOrbitSamples)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("years: [1, 2")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	p := Defaults()
	for _, name := range Names() {
		if err := p.Set(name, 3); err != nil {
			t.Fatalf("Set(%q): %v", name, err)
		}
		got, err := p.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if got != 3 {
			t.Errorf("%s = %v after Set(3)", name, got)
		}
	}
}

func TestSetDoesNotValidate(t *testing.T) {
	p := Defaults()
	if err := p.Set("thermal.emissivity_pv", 1.7); err != nil {
		t.Fatalf("Set returned error for out-of-range value: %v", err)
	}
	if p.Thermal.EmissivityPV != 1.7 {
		t.Errorf("emissivity_pv = %v, want 1.7", p.Thermal.EmissivityPV)
	}
}

func TestSetIntegerRounds(t *testing.T) {
	p := Defaults()
	if err := p.Set("years", 6.6); err != nil {
		t.Fatal(err)
	}
	if p.Years != 7 {
		t.Errorf("years = %d, want 7", p.Years)
	}
}

func TestUnknownParameter(t *testing.T) {
	p := Defaults()
	if _, err := p.Get("orbital.warp_drive"); !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("Get error = %v, want ErrUnknownParameter", err)
	}
	if err := p.Set("warp", 1); !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("Set error = %v, want ErrUnknownParameter", err)
	}
}

func TestParseAssignment(t *testing.T) {
	p := Defaults()
	if err := p.ParseAssignment("orbital.launch_cost_per_kg = 200"); err != nil {
		t.Fatal(err)
	}
	if p.Orbital.LaunchCostPerKg != 200 {
		t.Errorf("launch_cost_per_kg = %v, want 200", p.Orbital.LaunchCostPerKg)
	}
	if err := p.ParseAssignment("orbital.sizing=Binding"); err != nil {
		t.Fatal(err)
	}
	if p.Orbital.Sizing != SizingBinding {
		t.Errorf("sizing = %q, want %q", p.Orbital.Sizing, SizingBinding)
	}

	for _, bad := range []string{"no-equals", "orbital.sizing=maybe", "years=abc"} {
		if err := p.ParseAssignment(bad); err == nil {
			t.Errorf("ParseAssignment(%q) expected error", bad)
		}
	}
}

func TestValuesSnapshot(t *testing.T) {
	p := Defaults()
	vals := p.Values()
	if len(vals) != len(Names()) {
		t.Fatalf("Values has %d entries, want %d", len(vals), len(Names()))
	}
	vals["years"] = 99
	if p.Years != 5 {
		t.Error("mutating the snapshot changed the parameter set")
	}
}

func TestWithPreset(t *testing.T) {
	base := Defaults()
	p, err := base.WithPreset("v3")
	if err != nil {
		t.Fatal(err)
	}
	if p.Orbital.SpecificPowerWPerKg != 45 || p.Orbital.SatelliteCostPerW != 18 || p.Orbital.SatellitePowerKW != 60 {
		t.Errorf("v3 preset not applied: %+v", p.Orbital)
	}
	if base.Orbital.SpecificPowerWPerKg != 36.5 {
		t.Error("WithPreset mutated its receiver")
	}

	if _, err := base.WithPreset("v9"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("error = %v, want ErrUnknownPreset", err)
	}
}

func TestPresetsConsistentWithMass(t *testing.T) {
	for name, pr := range Presets() {
		derived := pr.PowerKW * 1000 / pr.MassKg
		if d := derived - pr.SpecificPowerWPerKg; d > 0.5 || d < -0.5 {
			t.Errorf("%s: power/mass = %.2f W/kg, preset says %.2f", name, derived, pr.SpecificPowerWPerKg)
		}
	}
}

func TestArrayAreaPerKW(t *testing.T) {
	c := DefaultConstants()
	if got := c.ArrayAreaPerKW() * c.RefSatellitePowerKW; math.Abs(got-c.RefSatelliteArrayM2) > 1e-9 {
		t.Errorf("reference array area = %v, want %v", got, c.RefSatelliteArrayM2)
	}
}

func TestSetIntegerSaturates(t *testing.T) {
	p := Defaults()
	if err := p.Set("years", 1e15); err != nil {
		t.Fatal(err)
	}
	if p.Years != math.MaxInt32 {
		t.Errorf("years = %d, want %d", p.Years, math.MaxInt32)
	}
	if err := p.Set("thermal.orbit_samples", -1e300); err != nil {
		t.Fatal(err)
	}
	if p.Thermal.OrbitSamples != math.MinInt32 {
		t.Errorf("orbit_samples = %d, want %d", p.Thermal.OrbitSamples, math.MinInt32)
	}
	if err := p.Set("years", math.NaN()); err != nil {
		t.Fatal(err)
	}
	if p.Years != 0 {
		t.Errorf("years = %d after NaN, want 0", p.Years)
	}
}

func TestCheckLimits(t *testing.T) {
	if err := Defaults().CheckLimits(); err != nil {
		t.Fatalf("defaults: %v", err)
	}

	tests := []struct {
		name  string
		value float64
		ok    bool
	}{
		{"years", MaxYears, true},
		{"years", MaxYears + 1, false},
		{"years", 1e15, false},
		{"thermal.orbit_samples", MaxOrbitSamples, true},
		{"thermal.orbit_samples", MaxOrbitSamples + 1, false},
		{"thermal.orbit_samples", 1e15, false},
	}
	for _, tt := range tests {
		p := Defaults()
		if err := p.Set(tt.name, tt.value); err != nil {
			t.Fatal(err)
		}
		err := p.CheckLimits()
		if tt.ok && err != nil {
			t.Errorf("%s=%g: unexpected error %v", tt.name, tt.value, err)
		}
		if !tt.ok && !errors.Is(err, ErrLimitExceeded) {
			t.Errorf("%s=%g: error = %v, want ErrLimitExceeded", tt.name, tt.value, err)
		}
	}
}
