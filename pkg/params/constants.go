package params

// Constants holds physical and reference-hardware values.
// Treat a Constants value as immutable for the duration of a computation.
type Constants struct {
	HoursPerYear float64 `yaml:"hours_per_year" json:"hours_per_year"`

	// Reference satellite, used only for proportional scaling.
	RefSatelliteMassKg  float64 `yaml:"ref_satellite_mass_kg" json:"ref_satellite_mass_kg"`
	RefSatellitePowerKW float64 `yaml:"ref_satellite_power_kw" json:"ref_satellite_power_kw"`
	RefSatelliteArrayM2 float64 `yaml:"ref_satellite_array_m2" json:"ref_satellite_array_m2"`

	// Launch vehicle.
	LaunchPayloadKg         float64 `yaml:"launch_payload_kg" json:"launch_payload_kg"`
	LOXGallonsPerLaunch     float64 `yaml:"lox_gallons_per_launch" json:"lox_gallons_per_launch"`
	MethaneGallonsPerLaunch float64 `yaml:"methane_gallons_per_launch" json:"methane_gallons_per_launch"`

	// Gas plant.
	TurbinePowerMW float64 `yaml:"turbine_power_mw" json:"turbine_power_mw"`
	BTUPerCF       float64 `yaml:"btu_per_cf" json:"btu_per_cf"`
	CFPerBCF       float64 `yaml:"cf_per_bcf" json:"cf_per_bcf"`

	OrbitalOpsFrac float64 `yaml:"orbital_ops_frac" json:"orbital_ops_frac"` // of hardware, per year

	// Space environment.
	SolarIrradianceWM2 float64 `yaml:"solar_irradiance_w_m2" json:"solar_irradiance_w_m2"`
	EarthIRFluxWM2     float64 `yaml:"earth_ir_flux_w_m2" json:"earth_ir_flux_w_m2"`
	EarthAlbedo        float64 `yaml:"earth_albedo" json:"earth_albedo"`
	SpaceTempK         float64 `yaml:"space_temp_k" json:"space_temp_k"`
	StefanBoltzmann    float64 `yaml:"stefan_boltzmann" json:"stefan_boltzmann"`
	EarthRadiusKm      float64 `yaml:"earth_radius_km" json:"earth_radius_km"`

	// EdgeOnViewFactorFloor is the fraction of the nadir view factor a face
	// keeps when it points edge-on or away from Earth. Calibration knob.
	EdgeOnViewFactorFloor float64 `yaml:"edge_on_view_factor_floor" json:"edge_on_view_factor_floor"`
}

// DefaultConstants returns the reference constants.
func DefaultConstants() Constants {
	return Constants{
		HoursPerYear: 8760,

		RefSatelliteMassKg:  740,
		RefSatellitePowerKW: 27,
		RefSatelliteArrayM2: 116,

		LaunchPayloadKg:         100_000,
		LOXGallonsPerLaunch:     787_000,
		MethaneGallonsPerLaunch: 755_000,

		TurbinePowerMW: 430,
		BTUPerCF:       1000,
		CFPerBCF:       1e9,

		OrbitalOpsFrac: 0.01,

		SolarIrradianceWM2: 1361,
		EarthIRFluxWM2:     237,
		EarthAlbedo:        0.30,
		SpaceTempK:         3,
		StefanBoltzmann:    5.67e-8,
		EarthRadiusKm:      6371.0,

		EdgeOnViewFactorFloor: 0.05,
	}
}

// ArrayAreaPerKW is the reference array area divided by the reference
// power. Fleet array area scales linearly with installed power; no actual
// per-unit array design is simulated.
func (c Constants) ArrayAreaPerKW() float64 {
	return c.RefSatelliteArrayM2 / c.RefSatellitePowerKW
}
