// Package thermal solves the radiative equilibrium of the orbital array,
// modeled as a single sun-tracking bifacial plate: face A is the PV side
// (always sun-facing), face B the radiator side (always anti-sun).
package thermal

import (
	"math"

	"github.com/ChicagoDave/spacedc/pkg/geometry"
	"github.com/ChicagoDave/spacedc/pkg/orbital"
	"github.com/ChicagoDave/spacedc/pkg/params"
)

const celsiusOffset = 273.15

// HeatLoads are the heat inputs to the plate, in watts.
type HeatLoads struct {
	SolarWaste float64 `json:"solar_waste"`
	EarthIR    float64 `json:"earth_ir"`
	Albedo     float64 `json:"albedo"`
	HeatLoop   float64 `json:"heat_loop"`
	Total      float64 `json:"total"`
}

// Result is the complete thermal output.
type Result struct {
	ViewFactors geometry.OrbitAverage `json:"view_factors"`

	AreaM2          float64 `json:"area_m2"`
	RequiredAreaM2  float64 `json:"required_area_m2"`
	PowerGeneratedW float64 `json:"power_generated_w"`

	Heat HeatLoads `json:"heat"`

	RadiatedA     float64 `json:"radiated_a"`
	RadiatedB     float64 `json:"radiated_b"`
	RadiatedTotal float64 `json:"radiated_total"`

	EquilibriumK   float64 `json:"equilibrium_k"`
	EquilibriumC   float64 `json:"equilibrium_c"`
	RadiatorLimitC float64 `json:"radiator_limit_c"`
	MarginC        float64 `json:"margin_c"`
	MarginPct      float64 `json:"margin_pct"`
	Sufficient     bool    `json:"sufficient"`
}

// Solve evaluates the plate whose area is the sized orbital fleet's array.
func Solve(p params.ParameterSet, c params.Constants) *Result {
	fleet := orbital.Estimate(p, c)
	return SolveArea(p, c, fleet.Engineering.ArrayAreaM2)
}

// SolveArea evaluates a plate of the given area. Zero area yields NaN
// temperatures and an insufficient result.
func SolveArea(p params.ParameterSet, c params.Constants, areaM2 float64) *Result {
	th := p.Thermal
	r := &Result{AreaM2: areaM2}

	r.ViewFactors = geometry.AverageViewFactors(c.EarthRadiusKm, th.OrbitalAltitudeKm, th.BetaAngleDeg,
		th.OrbitSamples, c.EdgeOnViewFactorFloor)
	vfA, vfB := r.ViewFactors.FaceA, r.ViewFactors.FaceB

	s := c.SolarIrradianceWM2
	r.PowerGeneratedW = s * th.PVEfficiency * areaM2

	// Albedo reaches only the sun-facing face; cos β approximates how much
	// of the sunlit disk lies under the track.
	cosBeta := math.Cos(th.BetaAngleDeg * math.Pi / 180)
	r.Heat = makeHeatLoads(
		s*th.SolarAbsorptivity*areaM2-r.PowerGeneratedW,
		c.EarthIRFluxWM2*(vfA*th.EmissivityPV+vfB*th.EmissivityRad)*areaM2,
		s*c.EarthAlbedo*vfA*cosBeta*th.SolarAbsorptivity*areaM2,
		r.PowerGeneratedW,
	)

	emissivity := th.EmissivityPV + th.EmissivityRad
	r.EquilibriumK = EquilibriumTemp(r.Heat.Total, areaM2, emissivity, c.StefanBoltzmann, c.SpaceTempK)
	r.EquilibriumC = r.EquilibriumK - celsiusOffset

	r.RadiatedA = RadiatedPower(c.StefanBoltzmann, areaM2, th.EmissivityPV, r.EquilibriumK, c.SpaceTempK)
	r.RadiatedB = RadiatedPower(c.StefanBoltzmann, areaM2, th.EmissivityRad, r.EquilibriumK, c.SpaceTempK)
	r.RadiatedTotal = r.RadiatedA + r.RadiatedB

	r.RadiatorLimitC = th.MaxDieTempC - th.TempDropC
	r.MarginC = r.RadiatorLimitC - r.EquilibriumC
	r.MarginPct = r.MarginC / r.RadiatorLimitC * 100
	r.Sufficient = r.MarginC >= 0

	r.RequiredAreaM2 = RequiredArea(r.Heat.Total, emissivity, r.RadiatorLimitC+celsiusOffset,
		c.StefanBoltzmann, c.SpaceTempK)
	return r
}

// EquilibriumTemp solves Q = σ·A·(ε_A+ε_B)·(T⁴ - Ts⁴) for T in kelvin.
func EquilibriumTemp(heatW, areaM2, emissivitySum, sigma, spaceK float64) float64 {
	return math.Pow(heatW/(sigma*areaM2*emissivitySum)+math.Pow(spaceK, 4), 0.25)
}

// RadiatedPower is the net power one face at tempK radiates to space.
func RadiatedPower(sigma, areaM2, emissivity, tempK, spaceK float64) float64 {
	return sigma * areaM2 * emissivity * (math.Pow(tempK, 4) - math.Pow(spaceK, 4))
}

// RequiredArea is the plate area that holds the equilibrium at targetK for a
// fixed heat input. The heat input itself scales with area, so this is only
// valid near the operating point it was evaluated at.
func RequiredArea(heatW, emissivitySum, targetK, sigma, spaceK float64) float64 {
	return heatW / (sigma * emissivitySum * (math.Pow(targetK, 4) - math.Pow(spaceK, 4)))
}

func makeHeatLoads(solarWaste, earthIR, albedo, heatLoop float64) HeatLoads {
	return HeatLoads{
		SolarWaste: solarWaste,
		EarthIR:    earthIR,
		Albedo:     albedo,
		HeatLoop:   heatLoop,
		Total:      solarWaste + earthIR + albedo + heatLoop,
	}
}
