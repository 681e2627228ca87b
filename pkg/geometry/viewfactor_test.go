package geometry

import (
	"math"
	"testing"
)

const (
	earthRadiusKm = 6371.0
	edgeOnFloor   = 0.05
)

func TestEarthAngularRadius(t *testing.T) {
	// 550 km LEO: asin(6371/6921) ≈ 67.00°
	theta := EarthAngularRadius(earthRadiusKm, 550) * 180 / math.Pi
	if math.Abs(theta-67.00) > 0.01 {
		t.Errorf("angular radius = %.3f°, want ~67.00°", theta)
	}

	// Grazing altitude sees a full hemisphere.
	if got := EarthAngularRadius(earthRadiusKm, 0); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("angular radius at 0 km = %v, want π/2", got)
	}
}

func TestNadirViewFactor(t *testing.T) {
	vf := NadirViewFactor(earthRadiusKm, 550)
	if math.Abs(vf-0.8474) > 1e-4 {
		t.Errorf("nadir VF at 550 km = %.5f, want ~0.8474", vf)
	}

	// Decreases with altitude.
	prev := 1.0
	for _, h := range []float64{200, 550, 1200, 20000, 35786} {
		got := NadirViewFactor(earthRadiusKm, h)
		if got >= prev {
			t.Errorf("nadir VF at %.0f km = %v, not below %v", h, got, prev)
		}
		prev = got
	}
}

func TestTiltedPlateViewFactor(t *testing.T) {
	nadir := NadirViewFactor(earthRadiusKm, 550)
	tests := []struct {
		name    string
		cosTilt float64
		want    float64
	}{
		{"nadir", 1, nadir},
		{"tilted 60°", 0.5, nadir * 0.5},
		{"edge-on", 0, nadir * edgeOnFloor},
		{"facing away", -0.7, nadir * edgeOnFloor},
		{"zenith", -1, nadir * edgeOnFloor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TiltedPlateViewFactor(nadir, tt.cosTilt, edgeOnFloor)
			if math.Abs(got-tt.want) > 1e-15 {
				t.Errorf("VF = %v, want %v", got, tt.want)
			}
		})
	}
}

// The edge-on floor is an approximation, not a measured constant: this
// test pins current behavior so a change to it is deliberate.
func TestTiltedPlateFloorIsApproximation(t *testing.T) {
	nadir := NadirViewFactor(earthRadiusKm, 550)
	if got := TiltedPlateViewFactor(nadir, -1, 0); got != 0 {
		t.Errorf("floor=0 facing away VF = %v, want 0", got)
	}
	if got := TiltedPlateViewFactor(nadir, 1e-9, edgeOnFloor); got >= nadir*edgeOnFloor {
		t.Errorf("just-positive cosine VF = %v should sit below the floor %v", got, nadir*edgeOnFloor)
	}
}

func TestAnomalies(t *testing.T) {
	nu := Anomalies(72)
	if len(nu) != 72 {
		t.Fatalf("len = %d, want 72", len(nu))
	}
	if nu[0] != 0 {
		t.Errorf("first sample = %v, want 0", nu[0])
	}
	step := 2 * math.Pi / 72
	for i := 1; i < len(nu); i++ {
		if math.Abs(nu[i]-nu[i-1]-step) > 1e-12 {
			t.Fatalf("uneven spacing at %d: %v", i, nu[i]-nu[i-1])
		}
	}
	if nu[71] >= 2*math.Pi {
		t.Error("last sample should exclude 2π")
	}

	if Anomalies(0) != nil {
		t.Error("Anomalies(0) should be nil")
	}
	if got := Anomalies(1); len(got) != 1 || got[0] != 0 {
		t.Errorf("Anomalies(1) = %v, want [0]", got)
	}
}

func TestAverageViewFactorsTerminatorSymmetry(t *testing.T) {
	avg := AverageViewFactors(earthRadiusKm, 550, 90, 72, edgeOnFloor)
	nadir := NadirViewFactor(earthRadiusKm, 550)

	if math.Abs(avg.FaceA-avg.FaceB) > 1e-12 {
		t.Errorf("β=90°: face A %.6f != face B %.6f", avg.FaceA, avg.FaceB)
	}
	// Each face spends half the orbit at the floor and half edge-on.
	if avg.FaceA > nadir*edgeOnFloor {
		t.Errorf("β=90°: face A %.6f above edge-on floor %.6f", avg.FaceA, nadir*edgeOnFloor)
	}
	if math.Abs(avg.FaceA-nadir*edgeOnFloor/2) > 1e-9 {
		t.Errorf("β=90°: face A %.6f, want ~%.6f", avg.FaceA, nadir*edgeOnFloor/2)
	}
	if avg.Total != avg.FaceA+avg.FaceB {
		t.Error("total should be the display sum of both faces")
	}
}

func TestAverageViewFactorsLowBeta(t *testing.T) {
	hot := AverageViewFactors(earthRadiusKm, 550, 60, 72, edgeOnFloor)
	cold := AverageViewFactors(earthRadiusKm, 550, 90, 72, edgeOnFloor)
	if hot.FaceA <= cold.FaceA {
		t.Errorf("β=60° face A %.4f should exceed β=90° %.4f", hot.FaceA, cold.FaceA)
	}
	// Sun-tracking geometry is mirror-symmetric about the terminator.
	if math.Abs(hot.FaceA-hot.FaceB) > 1e-12 {
		t.Errorf("β=60°: face A %.6f != face B %.6f", hot.FaceA, hot.FaceB)
	}
	if math.Abs(hot.FaceA-0.15596) > 1e-4 {
		t.Errorf("β=60° face A = %.5f, want ~0.15596", hot.FaceA)
	}
}

func TestAverageViewFactorsConverges(t *testing.T) {
	ref := AverageViewFactors(earthRadiusKm, 550, 70, 3600, edgeOnFloor)
	prevErr := math.Inf(1)
	for _, n := range []int{8, 72, 720} {
		got := AverageViewFactors(earthRadiusKm, 550, 70, n, edgeOnFloor)
		err := math.Abs(got.FaceA - ref.FaceA)
		if err > prevErr {
			t.Errorf("N=%d error %.2e grew from %.2e", n, err, prevErr)
		}
		prevErr = err
	}
	if prevErr/ref.FaceA > 1e-3 {
		t.Errorf("N=720 relative error %.2e too large", prevErr/ref.FaceA)
	}
}

func TestAverageViewFactorsDefaultSamples(t *testing.T) {
	got := AverageViewFactors(earthRadiusKm, 550, 75, 0, edgeOnFloor)
	if got.Samples != DefaultSamples {
		t.Errorf("samples = %d, want %d", got.Samples, DefaultSamples)
	}
	want := AverageViewFactors(earthRadiusKm, 550, 75, 72, edgeOnFloor)
	if got != want {
		t.Errorf("zero samples = %+v, want %+v", got, want)
	}
}

func TestAverageViewFactorsClampsSamples(t *testing.T) {
	got := AverageViewFactors(earthRadiusKm, 550, 75, MaxSamples*10, edgeOnFloor)
	if got.Samples != MaxSamples {
		t.Errorf("samples = %d, want %d", got.Samples, MaxSamples)
	}
}
