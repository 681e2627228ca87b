// Package geometry computes Earth view factors for a flat plate in a
// circular orbit, instantaneous and averaged over one revolution.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Orbit sample counts. AverageViewFactors clamps to MaxSamples.
const (
	DefaultSamples = 72
	MaxSamples     = 100_000
)

// EarthAngularRadius returns the half-angle (radians) subtended by Earth
// from a circular orbit at altitudeKm.
func EarthAngularRadius(earthRadiusKm, altitudeKm float64) float64 {
	return math.Asin(earthRadiusKm / (earthRadiusKm + altitudeKm))
}

// NadirViewFactor is the view factor from a nadir-pointing flat plate to
// Earth, sin²θ. It is the largest value any plate orientation reaches.
func NadirViewFactor(earthRadiusKm, altitudeKm float64) float64 {
	s := math.Sin(EarthAngularRadius(earthRadiusKm, altitudeKm))
	return s * s
}

// TiltedPlateViewFactor scales the nadir view factor by the cosine of the
// plate's tilt from nadir. A plate that is edge-on or facing away
// (cosTilt <= 0) keeps floor × nadir, since Earth's disk is wide enough to
// stay partly in view.
//
// First-order Lambertian approximation; floor is a calibration knob.
func TiltedPlateViewFactor(nadirVF, cosTilt, floor float64) float64 {
	if cosTilt <= 0 {
		return nadirVF * floor
	}
	return nadirVF * cosTilt
}

// OrbitAverage is the orbit-averaged Earth view factor of each face of a
// sun-tracking bifacial plate.
type OrbitAverage struct {
	NadirVF float64 `json:"nadir_vf"`
	FaceA   float64 `json:"face_a"` // sun-facing
	FaceB   float64 `json:"face_b"` // anti-sun
	// Total is FaceA+FaceB for display. The faces see different parts of
	// the sky, so this is not a physical view factor.
	Total   float64 `json:"total"`
	Samples int     `json:"samples"`
}

// Anomalies returns n true-anomaly samples evenly spaced over [0, 2π).
func Anomalies(n int) []float64 {
	if n < 1 {
		return nil
	}
	nu := floats.Span(make([]float64, n+1), 0, 2*math.Pi)
	return nu[:n]
}

// AverageViewFactors integrates the tilted-plate view factor over one orbit
// for face A (always sun-facing) and face B (always anti-sun) at the given
// beta angle. cosγ = cosβ·cosν is face A's tilt cosine; face B uses -cosγ.
// Both are taken straight from the cosine so that the sign survives near
// β = 90°, where cosγ crosses zero every quarter orbit.
//
// samples < 1 falls back to DefaultSamples; samples above MaxSamples are
// clamped. The result records the count actually used.
func AverageViewFactors(earthRadiusKm, altitudeKm, betaDeg float64, samples int, floor float64) OrbitAverage {
	if samples < 1 {
		samples = DefaultSamples
	}
	if samples > MaxSamples {
		samples = MaxSamples
	}
	nadir := NadirViewFactor(earthRadiusKm, altitudeKm)
	cosBeta := math.Cos(betaDeg * math.Pi / 180)

	nu := Anomalies(samples)
	faceA := make([]float64, samples)
	faceB := make([]float64, samples)
	for i, v := range nu {
		cosGamma := cosBeta * math.Cos(v)
		faceA[i] = TiltedPlateViewFactor(nadir, cosGamma, floor)
		faceB[i] = TiltedPlateViewFactor(nadir, -cosGamma, floor)
	}

	n := float64(samples)
	a := floats.Sum(faceA) / n
	b := floats.Sum(faceB) / n
	return OrbitAverage{
		NadirVF: nadir,
		FaceA:   a,
		FaceB:   b,
		Total:   a + b,
		Samples: samples,
	}
}
