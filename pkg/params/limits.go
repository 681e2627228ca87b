package params

import (
	"errors"
	"fmt"

	"github.com/ChicagoDave/spacedc/pkg/geometry"
)

// Upper limits on the integer parameters that size per-call work.
const (
	MaxYears        = 100
	MaxOrbitSamples = geometry.MaxSamples
)

// ErrLimitExceeded is returned by CheckLimits.
var ErrLimitExceeded = errors.New("parameter exceeds limit")

// CheckLimits rejects integer parameters large enough to exhaust memory or
// time in one computation. Other values are left to pkg/validation.
func (p ParameterSet) CheckLimits() error {
	if p.Years > MaxYears {
		return fmt.Errorf("%w: years %d > %d", ErrLimitExceeded, p.Years, MaxYears)
	}
	if p.Thermal.OrbitSamples > MaxOrbitSamples {
		return fmt.Errorf("%w: thermal.orbit_samples %d > %d", ErrLimitExceeded, p.Thermal.OrbitSamples, MaxOrbitSamples)
	}
	return nil
}
