package orbital

import "math"

// Fleet is the sized orbital constellation.
//
// UnitCount is a float64 so that a degenerate capacity factor carries +Inf
// through the ceiling instead of overflowing an integer.
type Fleet struct {
	RequiredPowerW float64 `json:"required_power_w"`
	ActualPowerW   float64 `json:"actual_power_w"`
	UnitPowerW     float64 `json:"unit_power_w"`
	UnitCount      float64 `json:"unit_count"`
	MassPerUnitKg  float64 `json:"mass_per_unit_kg"`
	TotalMassKg    float64 `json:"total_mass_kg"`
}

// SizeFleet sizes a fleet that delivers targetW on average when each unit's
// output is derated by capacityFactor. Units are rounded up, so
// ActualPowerW >= RequiredPowerW with less than one unit of excess.
//
// capacityFactor == 0 yields +Inf power, count and mass.
func SizeFleet(targetW, capacityFactor, unitPowerW, specificPowerWPerKg float64) Fleet {
	required := targetW / capacityFactor
	count := math.Ceil(required / unitPowerW)
	massPerUnit := unitPowerW / specificPowerWPerKg
	return Fleet{
		RequiredPowerW: required,
		ActualPowerW:   count * unitPowerW,
		UnitPowerW:     unitPowerW,
		UnitCount:      count,
		MassPerUnitKg:  massPerUnit,
		TotalMassKg:    count * massPerUnit,
	}
}

// MarginPct is the installed power in excess of targetW, in percent.
func (f Fleet) MarginPct(targetW float64) float64 {
	return (f.ActualPowerW/targetW - 1) * 100
}
