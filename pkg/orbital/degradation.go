package orbital

import (
	"math"

	"github.com/ChicagoDave/spacedc/pkg/params"
)

// AverageRetention returns the mean fraction of year-0 capacity still
// available over a horizon of years, given an annual loss of ratePct
// percent: (1/n)·Σ r^k for k in [0, n), with r = 1 - ratePct/100.
//
// The year-0 term is always 1, so ratePct == 0 yields exactly 1.
// years < 1 yields NaN.
func AverageRetention(ratePct float64, years int) float64 {
	if years < 1 {
		return math.NaN()
	}
	r := 1 - ratePct/100
	if r == 1 {
		return 1
	}
	if years > params.MaxYears {
		// Closed form keeps oversized horizons O(1).
		return (1 - math.Pow(r, float64(years))) / (1 - r) / float64(years)
	}
	sum, term := 0.0, 1.0
	for k := 0; k < years; k++ {
		sum += term
		term *= r
	}
	return sum / float64(years)
}

// Degradation holds the retention factors that drive fleet sizing.
type Degradation struct {
	Solar   float64 `json:"solar"`   // cell degradation retention
	GPU     float64 `json:"gpu"`     // compute survival retention
	Binding float64 `json:"binding"` // min(Solar, GPU)

	// Sizing is the retention factor actually used to size the fleet,
	// selected by the scenario's sizing policy.
	Sizing float64 `json:"sizing"`
	// SunlightAdjusted is Sizing × sun fraction, the combined capacity
	// factor applied to the target power.
	SunlightAdjusted float64 `json:"sunlight_adjusted"`
}

// Degrade computes retention factors for the orbital fleet.
func Degrade(p params.ParameterSet) Degradation {
	d := Degradation{
		Solar: AverageRetention(p.Orbital.CellDegradation, p.Years),
		GPU:   AverageRetention(p.Orbital.GPUFailureRate, p.Years),
	}
	d.Binding = math.Min(d.Solar, d.GPU)

	switch p.Orbital.Sizing {
	case params.SizingBinding:
		d.Sizing = d.Binding
	default:
		d.Sizing = d.Solar
	}
	d.SunlightAdjusted = d.Sizing * p.Orbital.SunFraction
	return d
}

// marginPct is the over-provisioning, in percent, needed to offset an
// average retention factor.
func marginPct(factor float64) float64 {
	return (1/factor - 1) * 100
}
