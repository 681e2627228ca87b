// Package validation collects scenario findings into a Report, split by
// severity.
package validation

import "fmt"

// Level names the check that produced a finding.
type Level string

const (
	// LevelBounds findings are physical impossibilities, such as an
	// emissivity above 1 or a non-positive power draw. They are errors: the
	// engine's output for the scenario is meaningless.
	LevelBounds Level = "bounds"
	// LevelRange findings are values outside the range the model was
	// calibrated over. They are warnings: the numbers are computable but
	// extrapolated.
	LevelRange Level = "range"
	// LevelAnalytical findings come from inspecting engine output rather
	// than inputs: non-finite costs, a radiator that cannot hold the die
	// limit, a breakeven launch price below zero.
	LevelAnalytical Level = "analytical"
)

// Severity indicates how critical a validation result is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single validation finding.
type Result struct {
	Level    Level    `json:"level"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	// Parameter is the dotted scenario name the finding is about
	// ("orbital.sun_fraction"). Analytical findings name the result path
	// instead ("orbital.costs.total").
	Parameter string `json:"parameter"`
	// ActualValue is the offending input or output value.
	ActualValue any `json:"actual_value,omitempty"`
	// Expected describes the accepted interval or condition, e.g. "(0, 1]".
	Expected string `json:"expected,omitempty"`
	// ConflictWith names a second parameter that, together with Parameter,
	// makes the scenario infeasible.
	ConflictWith string   `json:"conflict_with,omitempty"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

// Report collects findings for one scenario. Valid is false once any
// error has been added.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport creates an empty valid report.
func NewReport() *Report {
	return &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
}

// AddError adds an error result and marks the report invalid.
func (r *Report) AddError(result Result) { r.add(SeverityError, result) }

// AddWarning adds a warning result.
func (r *Report) AddWarning(result Result) { r.add(SeverityWarning, result) }

// AddInfo adds an informational result.
func (r *Report) AddInfo(result Result) { r.add(SeverityInfo, result) }

func (r *Report) add(sev Severity, result Result) {
	result.Severity = sev
	switch sev {
	case SeverityError:
		r.Errors = append(r.Errors, result)
		r.Valid = false
	case SeverityWarning:
		r.Warnings = append(r.Warnings, result)
	default:
		r.Info = append(r.Info, result)
	}
	r.updateSummary()
}

// Merge combines another report into this one.
func (r *Report) Merge(other *Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	if !other.Valid {
		r.Valid = false
	}
	r.updateSummary()
}

// Findings returns every result ordered errors, warnings, info.
func (r *Report) Findings() []Result {
	out := make([]Result, 0, len(r.Errors)+len(r.Warnings)+len(r.Info))
	out = append(out, r.Errors...)
	out = append(out, r.Warnings...)
	return append(out, r.Info...)
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings, %d info",
		len(r.Errors), len(r.Warnings), len(r.Info))
}
