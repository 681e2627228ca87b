package sweep

import (
	"errors"
	"math"
	"testing"

	"github.com/ChicagoDave/spacedc/pkg/params"
)

func TestRequestValues(t *testing.T) {
	vals, err := Request{Parameter: "years", From: 3, To: 10, Steps: 8}.Values()
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range vals {
		if math.Abs(v-float64(3+i)) > 1e-12 {
			t.Errorf("value %d = %v, want %d", i, v, 3+i)
		}
	}

	for _, steps := range []int{-1, 0, 1, MaxSteps + 1} {
		if _, err := (Request{Steps: steps}).Values(); !errors.Is(err, ErrInvalidSteps) {
			t.Errorf("steps=%d: error = %v, want ErrInvalidSteps", steps, err)
		}
	}
}

func TestRunLaunchCost(t *testing.T) {
	base := params.Defaults()
	c := params.DefaultConstants()
	res, err := Run(base, c, Request{Parameter: "orbital.launch_cost_per_kg", From: 20, To: 2940, Steps: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Points) != 5 {
		t.Fatalf("points = %d, want 5", len(res.Points))
	}

	for i := 1; i < len(res.Points); i++ {
		prev, cur := res.Points[i-1], res.Points[i]
		if cur.OrbitalTotal <= prev.OrbitalTotal {
			t.Errorf("orbital total should rise with launch cost: %v then %v", prev.OrbitalTotal, cur.OrbitalTotal)
		}
		if cur.TerrestrialTotal != prev.TerrestrialTotal {
			t.Error("terrestrial total should not depend on launch cost")
		}
		if cur.BreakevenPerKg != prev.BreakevenPerKg {
			t.Error("breakeven should not depend on the launch cost being swept")
		}
	}

	if base.Orbital.LaunchCostPerKg != 500 {
		t.Error("Run modified the base parameter set")
	}
}

func TestRunIntegerParameter(t *testing.T) {
	res, err := Run(params.Defaults(), params.DefaultConstants(), Request{Parameter: "years", From: 3, To: 4, Steps: 3})
	if err != nil {
		t.Fatal(err)
	}
	// 3, 3.5, 4 round to 3, 4, 4.
	if res.Points[1].OrbitalTotal != res.Points[2].OrbitalTotal {
		t.Error("3.5 years should round to 4")
	}
}

func TestRunUnknownParameter(t *testing.T) {
	_, err := Run(params.Defaults(), params.DefaultConstants(), Request{Parameter: "orbital.warp", From: 0, To: 1, Steps: 2})
	if !errors.Is(err, params.ErrUnknownParameter) {
		t.Errorf("error = %v, want ErrUnknownParameter", err)
	}
}

func TestRunRejectsOversizedIntegers(t *testing.T) {
	base := params.Defaults()
	c := params.DefaultConstants()
	for _, name := range []string{"years", "thermal.orbit_samples"} {
		req := Request{Parameter: name, From: 10, To: 1e15, Steps: 3}
		if _, err := Run(base, c, req); !errors.Is(err, params.ErrLimitExceeded) {
			t.Errorf("%s: error = %v, want ErrLimitExceeded", name, err)
		}
	}
}
