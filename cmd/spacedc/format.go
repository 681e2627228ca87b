package main

import (
	"fmt"
	"io"
	"math"

	"github.com/ChicagoDave/spacedc/pkg/breakeven"
	"github.com/ChicagoDave/spacedc/pkg/engine"
	"github.com/ChicagoDave/spacedc/pkg/orbital"
	"github.com/ChicagoDave/spacedc/pkg/params"
	"github.com/ChicagoDave/spacedc/pkg/sweep"
	"github.com/ChicagoDave/spacedc/pkg/terrestrial"
	"github.com/ChicagoDave/spacedc/pkg/thermal"
	"github.com/ChicagoDave/spacedc/pkg/validation"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printFinding(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, e := range r.Warnings {
			printFinding(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printFinding(w io.Writer, f validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", f.Level, f.Message)
	if f.Parameter != "" {
		fmt.Fprintf(w, "    -> %s = %v\n", f.Parameter, f.ActualValue)
	}
	if f.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", f.Expected)
	}
	if f.ConflictWith != "" {
		fmt.Fprintf(w, "    conflicts with: %s\n", f.ConflictWith)
	}
	for _, s := range f.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}

func printComparison(w io.Writer, cmp *engine.Comparison) {
	orb, terr := cmp.Orbital, cmp.Terrestrial

	fmt.Fprintf(w, "Orbital vs. Terrestrial (%d years, %.3g GW)\n", cmp.Params.Years, cmp.Params.TargetGW)
	fmt.Fprintln(w, "=========================================")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-22s %14s %14s\n", "", "Orbital", "Terrestrial")
	fmt.Fprintf(w, "%-22s %14s %14s\n", "----------------------", "--------------", "--------------")
	rows := []struct {
		label string
		orb   string
		terr  string
	}{
		{"Total cost", "$" + formatMoney(orb.Costs.Total), "$" + formatMoney(terr.Total)},
		{"Cost per watt", fmt.Sprintf("$%.2f", orb.CostPerW), fmt.Sprintf("$%.2f", terr.CostPerW)},
		{"LCOE ($/MWh)", fmt.Sprintf("%.2f", orb.LCOE), fmt.Sprintf("%.2f", terr.LCOE)},
		{"Energy delivered", formatEnergy(orb.EnergyMWh), formatEnergy(terr.DeliveredMWh)},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%-22s %14s %14s\n", row.label, row.orb, row.terr)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary")
	fmt.Fprintln(w, "-------")
	fmt.Fprintf(w, "  Cost ratio (orb/terr):  %.2fx\n", cmp.Summary.CostRatio)
	fmt.Fprintf(w, "  Cost delta:             $%s\n", formatMoney(cmp.Summary.CostDelta))
	fmt.Fprintf(w, "  Breakeven launch cost:  $%.2f/kg\n", cmp.Breakeven.LaunchCostPerKg)
	fmt.Fprintf(w, "  Array temperature:      %.2f °C (limit %.2f °C, %s)\n",
		cmp.Thermal.EquilibriumC, cmp.Thermal.RadiatorLimitC, sufficiency(cmp.Thermal.Sufficient))
	if cmp.Summary.OrbitalCheaper {
		fmt.Fprintln(w, "  Orbital is cheaper.")
	} else {
		fmt.Fprintln(w, "  Terrestrial is cheaper.")
	}
}

func printOrbital(w io.Writer, r *orbital.Result) {
	fmt.Fprintln(w, "Orbital Fleet")
	fmt.Fprintln(w, "=============")
	fmt.Fprintln(w)

	printCostTable(w, []costRow{
		{"Hardware", r.Costs.Hardware},
		{"Launch", r.Costs.Launch},
		{"Operations", r.Costs.Operations},
		{"Replacement", r.Costs.Replacement},
		{"NRE", r.Costs.NRE},
		{"TOTAL", r.Costs.Total},
	})

	d, f, e := r.Degradation, r.Fleet, r.Engineering
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sizing")
	fmt.Fprintln(w, "------")
	fmt.Fprintf(w, "  Solar retention:        %.4f\n", d.Solar)
	fmt.Fprintf(w, "  GPU retention:          %.4f\n", d.GPU)
	fmt.Fprintf(w, "  Sizing factor:          %.4f (x sun fraction = %.4f)\n", d.Sizing, d.SunlightAdjusted)
	fmt.Fprintf(w, "  Required power:         %s\n", formatPower(f.RequiredPowerW))
	fmt.Fprintf(w, "  Satellites:             %.0f x %s\n", f.UnitCount, formatPower(f.UnitPowerW))
	fmt.Fprintf(w, "  Fleet mass:             %s\n", formatMass(f.TotalMassKg))
	fmt.Fprintf(w, "  Launches:               %.0f\n", e.Launches)
	fmt.Fprintf(w, "  Array area:             %.2f km²\n", e.ArrayAreaKm2)
	fmt.Fprintf(w, "  Degradation margin:     %.2f%%\n", e.DegradationPct)
	fmt.Fprintf(w, "  Cost per watt:          $%.2f\n", r.CostPerW)
	fmt.Fprintf(w, "  LCOE:                   $%.2f/MWh\n", r.LCOE)
}

func printTerrestrial(w io.Writer, r *terrestrial.Result) {
	fmt.Fprintln(w, "Terrestrial Datacenter")
	fmt.Fprintln(w, "======================")
	fmt.Fprintln(w)

	printCostTable(w, []costRow{
		{"Power generation", r.Capex.PowerGeneration},
		{"Electrical", r.Capex.Electrical},
		{"Mechanical", r.Capex.Mechanical},
		{"Civil", r.Capex.Civil},
		{"Network", r.Capex.Network},
		{"Infrastructure", r.Capex.Infrastructure},
		{"Fuel", r.Fuel.Total},
		{"TOTAL", r.Total},
	})

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Operations")
	fmt.Fprintln(w, "----------")
	fmt.Fprintf(w, "  Generation capacity:    %.0f MW (%.0f turbines)\n", r.GenerationMW, r.Turbines)
	fmt.Fprintf(w, "  Energy delivered:       %s\n", formatEnergy(r.DeliveredMWh))
	fmt.Fprintf(w, "  Energy generated:       %s\n", formatEnergy(r.GenerationMWh))
	fmt.Fprintf(w, "  Fuel:                   $%.2f/MWh, %.1f BCF gas\n", r.Fuel.CostPerMWh, r.Fuel.GasBCF)
	fmt.Fprintf(w, "  Cost per watt:          $%.2f\n", r.CostPerW)
	fmt.Fprintf(w, "  LCOE:                   $%.2f/MWh\n", r.LCOE)
}

func printThermal(w io.Writer, r *thermal.Result) {
	fmt.Fprintln(w, "Array Thermal Equilibrium")
	fmt.Fprintln(w, "=========================")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Array area:             %.0f m²\n", r.AreaM2)
	fmt.Fprintf(w, "  Earth view factor:      A %.4f / B %.4f (nadir %.4f)\n",
		r.ViewFactors.FaceA, r.ViewFactors.FaceB, r.ViewFactors.NadirVF)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-18s %14s\n", "Heat load", "Watts")
	fmt.Fprintf(w, "%-18s %14s\n", "------------------", "--------------")
	for _, row := range []costRow{
		{"Solar waste", r.Heat.SolarWaste},
		{"Earth IR", r.Heat.EarthIR},
		{"Albedo", r.Heat.Albedo},
		{"Heat loop", r.Heat.HeatLoop},
		{"TOTAL", r.Heat.Total},
	} {
		fmt.Fprintf(w, "%-18s %14s\n", row.label, formatPower(row.value))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Equilibrium:            %.2f °C (%.2f K)\n", r.EquilibriumC, r.EquilibriumK)
	fmt.Fprintf(w, "  Radiator limit:         %.2f °C\n", r.RadiatorLimitC)
	fmt.Fprintf(w, "  Margin:                 %.2f °C (%.1f%%)\n", r.MarginC, r.MarginPct)
	fmt.Fprintf(w, "  Area for limit:         %.0f m²\n", r.RequiredAreaM2)
	fmt.Fprintf(w, "  Radiator:               %s\n", sufficiency(r.Sufficient))
}

func printBreakeven(w io.Writer, r *breakeven.Result) {
	fmt.Fprintln(w, "Launch Cost Breakeven")
	fmt.Fprintln(w, "=====================")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Breakeven launch cost:  $%.2f/kg\n", r.LaunchCostPerKg)
	fmt.Fprintf(w, "  Terrestrial total:      $%s\n", formatMoney(r.TerrestrialTotal))
	fmt.Fprintf(w, "  Orbital before launch:  $%s\n", formatMoney(r.OrbitalFixed))
	fmt.Fprintf(w, "  Fleet mass:             %s\n", formatMass(r.TotalMassKg))
	if !r.Achievable {
		fmt.Fprintln(w, "  Not achievable: orbital costs more than terrestrial even with free launch.")
	}
}

func printPresets(w io.Writer, presets map[string]params.Preset) {
	fmt.Fprintf(w, "%-8s %-24s %10s %8s %10s %10s\n", "Name", "Label", "W/kg", "$/W", "Power", "Mass")
	for _, name := range params.PresetNames() {
		p, ok := presets[name]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%-8s %-24s %10.1f %8.2f %10s %10s\n",
			name, p.Label, p.SpecificPowerWPerKg, p.CostPerW, formatPower(p.PowerKW*1000), formatMass(p.MassKg))
	}
}

func printSweep(w io.Writer, r *sweep.Result) {
	fmt.Fprintf(w, "Sweep of %s\n\n", r.Request.Parameter)
	fmt.Fprintf(w, "%12s %12s %12s %10s %12s %8s\n", "Value", "Orbital", "Terrestrial", "Ratio", "Breakeven", "T (°C)")
	for _, pt := range r.Points {
		fmt.Fprintf(w, "%12.4g %12s %12s %10.2f %12.2f %8.1f\n",
			pt.Value, formatMoney(pt.OrbitalTotal), formatMoney(pt.TerrestrialTotal),
			pt.OrbitalTotal/pt.TerrestrialTotal, pt.BreakevenPerKg, pt.EquilibriumC)
	}
}

type costRow struct {
	label string
	value float64
}

func printCostTable(w io.Writer, rows []costRow) {
	fmt.Fprintf(w, "%-18s %14s\n", "Category", "Cost")
	fmt.Fprintf(w, "%-18s %14s\n", "------------------", "--------------")
	for _, row := range rows {
		fmt.Fprintf(w, "%-18s %14s\n", row.label, formatMoney(row.value))
	}
}

func sufficiency(ok bool) string {
	if ok {
		return "sufficient"
	}
	return "INSUFFICIENT"
}

// scaled formats v with the largest unit whose threshold |v| reaches.
// units must be ordered from largest to smallest.
func scaled(v float64, units []unitScale, fallback string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	for _, u := range units {
		if math.Abs(v) >= u.factor {
			return fmt.Sprintf(u.format, v/u.factor)
		}
	}
	return fmt.Sprintf(fallback, v)
}

type unitScale struct {
	factor float64
	format string
}

var (
	moneyUnits = []unitScale{
		{1e12, "%.2fT"},
		{1e9, "%.2fB"},
		{1e6, "%.2fM"},
		{1e3, "%.0fK"},
	}
	massUnits = []unitScale{
		{1e9, "%.2f Mt"},
		{1e6, "%.2f kt"},
		{1e3, "%.1f t"},
	}
	energyUnits = []unitScale{
		{1e6, "%.2f TWh"},
		{1e3, "%.2f GWh"},
	}
	powerUnits = []unitScale{
		{1e9, "%.2f GW"},
		{1e6, "%.2f MW"},
		{1e3, "%.1f kW"},
	}
)

func formatMoney(v float64) string {
	return scaled(v, moneyUnits, "%.0f")
}

// formatMass takes kilograms.
func formatMass(kg float64) string {
	return scaled(kg, massUnits, "%.0f kg")
}

// formatEnergy takes megawatt-hours.
func formatEnergy(mwh float64) string {
	return scaled(mwh, energyUnits, "%.0f MWh")
}

func formatPower(w float64) string {
	return scaled(w, powerUnits, "%.0f W")
}
