package params

import "github.com/ChicagoDave/spacedc/pkg/geometry"

// Sizing selects which retention factor drives orbital fleet sizing.
type Sizing string

const (
	// SizingReplace sizes for solar-cell degradation only. Failed compute
	// hardware is covered by the replacement budget.
	SizingReplace Sizing = "replace"
	// SizingBinding sizes for the lower of the solar and GPU retention factors.
	SizingBinding Sizing = "binding"
)

// ParameterSet is the flat input record for every computation.
// Values are not range-checked here; see pkg/validation.
type ParameterSet struct {
	Years    int     `yaml:"years" json:"years"`
	TargetGW float64 `yaml:"target_gw" json:"target_gw"`

	Orbital     OrbitalParams     `yaml:"orbital" json:"orbital"`
	Terrestrial TerrestrialParams `yaml:"terrestrial" json:"terrestrial"`
	Thermal     ThermalParams     `yaml:"thermal" json:"thermal"`
}

type OrbitalParams struct {
	LaunchCostPerKg     float64 `yaml:"launch_cost_per_kg" json:"launch_cost_per_kg"`
	SatelliteCostPerW   float64 `yaml:"satellite_cost_per_w" json:"satellite_cost_per_w"`
	SpecificPowerWPerKg float64 `yaml:"specific_power_w_per_kg" json:"specific_power_w_per_kg"`
	SatellitePowerKW    float64 `yaml:"satellite_power_kw" json:"satellite_power_kw"`
	SunFraction         float64 `yaml:"sun_fraction" json:"sun_fraction"`
	CellDegradation     float64 `yaml:"cell_degradation" json:"cell_degradation"`
	GPUFailureRate      float64 `yaml:"gpu_failure_rate" json:"gpu_failure_rate"`
	NRECostM            float64 `yaml:"nre_cost_m" json:"nre_cost_m"`
	Sizing              Sizing  `yaml:"sizing" json:"sizing"`
}

type TerrestrialParams struct {
	GasTurbineCapexPerKW float64 `yaml:"gas_turbine_capex_per_kw" json:"gas_turbine_capex_per_kw"`
	ElectricalCostPerW   float64 `yaml:"electrical_cost_per_w" json:"electrical_cost_per_w"`
	MechanicalCostPerW   float64 `yaml:"mechanical_cost_per_w" json:"mechanical_cost_per_w"`
	CivilCostPerW        float64 `yaml:"civil_cost_per_w" json:"civil_cost_per_w"`
	NetworkCostPerW      float64 `yaml:"network_cost_per_w" json:"network_cost_per_w"`
	PUE                  float64 `yaml:"pue" json:"pue"`
	GasPricePerMMBtu     float64 `yaml:"gas_price_per_mmbtu" json:"gas_price_per_mmbtu"`
	HeatRateBtuKWh       float64 `yaml:"heat_rate_btu_kwh" json:"heat_rate_btu_kwh"`
	CapacityFactor       float64 `yaml:"capacity_factor" json:"capacity_factor"`
}

type ThermalParams struct {
	SolarAbsorptivity float64 `yaml:"solar_absorptivity" json:"solar_absorptivity"`
	EmissivityPV      float64 `yaml:"emissivity_pv" json:"emissivity_pv"`
	EmissivityRad     float64 `yaml:"emissivity_rad" json:"emissivity_rad"`
	PVEfficiency      float64 `yaml:"pv_efficiency" json:"pv_efficiency"`
	BetaAngleDeg      float64 `yaml:"beta_angle_deg" json:"beta_angle_deg"`
	OrbitalAltitudeKm float64 `yaml:"orbital_altitude_km" json:"orbital_altitude_km"`
	MaxDieTempC       float64 `yaml:"max_die_temp_c" json:"max_die_temp_c"`
	TempDropC         float64 `yaml:"temp_drop_c" json:"temp_drop_c"`
	OrbitSamples      int     `yaml:"orbit_samples" json:"orbit_samples"`
}

// TargetPowerMW returns the delivered-average target in megawatts.
func (p ParameterSet) TargetPowerMW() float64 {
	return p.TargetGW * 1000
}

// TargetPowerW returns the delivered-average target in watts.
func (p ParameterSet) TargetPowerW() float64 {
	return p.TargetGW * 1e9
}

// TotalHours returns the analysis horizon in hours.
func (p ParameterSet) TotalHours(c Constants) float64 {
	return float64(p.Years) * c.HoursPerYear
}

// Defaults returns the reference scenario.
func Defaults() ParameterSet {
	return ParameterSet{
		Years:    5,
		TargetGW: 1,
		Orbital: OrbitalParams{
			LaunchCostPerKg:     500,
			SatelliteCostPerW:   22,
			SpecificPowerWPerKg: 36.5,
			SatellitePowerKW:    27,
			SunFraction:         0.98,
			CellDegradation:     2.5,
			GPUFailureRate:      9,
			NRECostM:            1000,
			Sizing:              SizingReplace,
		},
		Terrestrial: TerrestrialParams{
			GasTurbineCapexPerKW: 1800,
			ElectricalCostPerW:   5.25,
			MechanicalCostPerW:   3.0,
			CivilCostPerW:        2.5,
			NetworkCostPerW:      1.75,
			PUE:                  1.2,
			GasPricePerMMBtu:     4.30,
			HeatRateBtuKWh:       6200,
			CapacityFactor:       0.85,
		},
		Thermal: ThermalParams{
			SolarAbsorptivity: 0.92,
			EmissivityPV:      0.85,
			EmissivityRad:     0.90,
			PVEfficiency:      0.22,
			BetaAngleDeg:      90,
			OrbitalAltitudeKm: 550,
			MaxDieTempC:       85,
			TempDropC:         10,
			OrbitSamples:      DefaultOrbitSamples,
		},
	}
}

// DefaultOrbitSamples is the number of orbit positions used by the view
// factor average when a scenario leaves it unset.
const DefaultOrbitSamples = geometry.DefaultSamples
