package params

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPreset is returned for a preset label that is not defined.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset describes one satellite hardware generation.
type Preset struct {
	Label               string  `json:"label"`
	SpecificPowerWPerKg float64 `json:"specific_power_w_per_kg"`
	CostPerW            float64 `json:"cost_per_w"`
	PowerKW             float64 `json:"power_kw"`
	MassKg              float64 `json:"mass_kg"`
}

// Figures for v1 and v3 are public estimates; v2-mini matches the
// reference satellite in DefaultConstants.
var presets = map[string]Preset{
	"v1": {
		Label:               "Starlink v1.5",
		SpecificPowerWPerKg: 19.2,
		CostPerW:            30,
		PowerKW:             5.4,
		MassKg:              281,
	},
	"v2-mini": {
		Label:               "Starlink V2 Mini",
		SpecificPowerWPerKg: 36.5,
		CostPerW:            22,
		PowerKW:             27,
		MassKg:              740,
	},
	"v3": {
		Label:               "Starlink V3 (projected)",
		SpecificPowerWPerKg: 45,
		CostPerW:            18,
		PowerKW:             60,
		MassKg:              1333,
	},
}

// Presets returns a copy of the hardware preset table.
func Presets() map[string]Preset {
	out := make(map[string]Preset, len(presets))
	for k, v := range presets {
		out[k] = v
	}
	return out
}

// PresetNames returns preset identifiers in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// WithPreset returns a copy of p with the orbital hardware fields taken
// from the named preset.
func (p ParameterSet) WithPreset(name string) (ParameterSet, error) {
	pr, ok := presets[name]
	if !ok {
		return p, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	p.Orbital.SpecificPowerWPerKg = pr.SpecificPowerWPerKg
	p.Orbital.SatelliteCostPerW = pr.CostPerW
	p.Orbital.SatellitePowerKW = pr.PowerKW
	return p, nil
}
