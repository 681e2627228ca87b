package orbital

// Unit conversions used by the orbital aggregator.
const (
	WattsPerKW        = 1000.0
	WattsPerMW        = 1e6
	DollarsPerMillion = 1e6
	M2PerKm2          = 1e6
)
