package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/ChicagoDave/spacedc/pkg/breakeven"
	"github.com/ChicagoDave/spacedc/pkg/engine"
	"github.com/ChicagoDave/spacedc/pkg/orbital"
	"github.com/ChicagoDave/spacedc/pkg/params"
	"github.com/ChicagoDave/spacedc/pkg/sweep"
	"github.com/ChicagoDave/spacedc/pkg/terrestrial"
	"github.com/ChicagoDave/spacedc/pkg/thermal"
	"github.com/ChicagoDave/spacedc/pkg/validation"
)

const maxBodyBytes = 64 << 10

// computeRequest is the body of every POST compute route. Each part is
// optional and applied in order over the server's base scenario: preset,
// then a partial parameter set, then dotted-name overrides.
type computeRequest struct {
	Preset string             `json:"preset,omitempty"`
	Params json.RawMessage    `json:"params,omitempty"`
	Set    map[string]float64 `json:"set,omitempty"`
}

type sweepRequest struct {
	computeRequest
	Sweep sweep.Request `json:"sweep"`
}

// errNonFinite marks a result that JSON cannot represent.
var errNonFinite = errors.New("result contains non-finite values")

// resolve builds the parameter set for one request.
func (s *Server) resolve(req computeRequest) (params.ParameterSet, error) {
	p := s.base
	if req.Preset != "" {
		var err error
		if p, err = p.WithPreset(req.Preset); err != nil {
			return params.ParameterSet{}, err
		}
	}
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return params.ParameterSet{}, fmt.Errorf("decoding params: %w", err)
		}
	}
	if err := p.Apply(req.Set); err != nil {
		return params.ParameterSet{}, err
	}
	p.Normalize()
	if err := p.SetString("orbital.sizing", string(p.Orbital.Sizing)); err != nil {
		return params.ParameterSet{}, err
	}
	if err := p.CheckLimits(); err != nil {
		return params.ParameterSet{}, err
	}
	return p, nil
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return fmt.Errorf("body exceeds %d bytes", maxBodyBytes)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding body: %w", err)
	}
	return nil
}

// decodeParams reads a computeRequest and resolves it, writing a 400 on
// failure.
func (s *Server) decodeParams(w http.ResponseWriter, r *http.Request) (params.ParameterSet, bool) {
	var req computeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return params.ParameterSet{}, false
	}
	p, err := s.resolve(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return params.ParameterSet{}, false
	}
	return p, true
}

// compare runs the engine and records metrics for each model.
func (s *Server) compare(p params.ParameterSet) (*engine.Comparison, *validation.Report) {
	cmp, report := engine.Compare(p, s.constants)
	s.metrics.ObserveComputation("orbital", finite(cmp.Orbital.Costs.Total))
	s.metrics.ObserveComputation("terrestrial", finite(cmp.Terrestrial.Total))
	s.metrics.ObserveComputation("breakeven", finite(cmp.Breakeven.LaunchCostPerKg))
	s.metrics.ObserveComputation("thermal", finite(cmp.Thermal.EquilibriumK))
	if report.Valid {
		s.metrics.ObserveComparison(cmp.Orbital.Costs.Total, cmp.Terrestrial.Total, cmp.Breakeven.LaunchCostPerKg)
	}
	return cmp, report
}

// report validates p and merges the engine's analytical findings. It
// records no metrics.
func (s *Server) report(p params.ParameterSet) *validation.Report {
	report := validation.ValidateParameters(p)
	_, analytic := engine.Compare(p, s.constants)
	report.Merge(analytic)
	return report
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleParams(w http.ResponseWriter, _ *http.Request) {
	p := s.base
	writeJSON(w, http.StatusOK, map[string]any{
		"project": s.project,
		"params":  p,
		"values":  p.Values(),
		"ranges":  validation.Ranges(),
	})
}

func (s *Server) handleConstants(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.constants)
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, params.Presets())
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	p, ok := s.decodeParams(w, r)
	if !ok {
		return
	}
	cmp, report := s.compare(p)
	writeResult(w, map[string]any{"comparison": cmp, "report": report}, func() *validation.Report { return report })
}

func (s *Server) handleOrbital(w http.ResponseWriter, r *http.Request) {
	p, ok := s.decodeParams(w, r)
	if !ok {
		return
	}
	res := orbital.Estimate(p, s.constants)
	s.metrics.ObserveComputation("orbital", finite(res.Costs.Total))
	writeResult(w, res, func() *validation.Report { return s.report(p) })
}

func (s *Server) handleTerrestrial(w http.ResponseWriter, r *http.Request) {
	p, ok := s.decodeParams(w, r)
	if !ok {
		return
	}
	res := terrestrial.Estimate(p, s.constants)
	s.metrics.ObserveComputation("terrestrial", finite(res.Total))
	writeResult(w, res, func() *validation.Report { return s.report(p) })
}

func (s *Server) handleThermal(w http.ResponseWriter, r *http.Request) {
	p, ok := s.decodeParams(w, r)
	if !ok {
		return
	}
	res := thermal.Solve(p, s.constants)
	s.metrics.ObserveComputation("thermal", finite(res.EquilibriumK))
	writeResult(w, res, func() *validation.Report { return s.report(p) })
}

func (s *Server) handleBreakeven(w http.ResponseWriter, r *http.Request) {
	p, ok := s.decodeParams(w, r)
	if !ok {
		return
	}
	res := breakeven.Solve(p, s.constants)
	s.metrics.ObserveComputation("breakeven", finite(res.LaunchCostPerKg))
	writeResult(w, res, func() *validation.Report { return s.report(p) })
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	p, ok := s.decodeParams(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.report(p))
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req sweepRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Sweep.Steps > s.maxSweepSteps {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("steps %d exceeds limit %d", req.Sweep.Steps, s.maxSweepSteps))
		return
	}
	p, err := s.resolve(req.computeRequest)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := sweep.Run(p, s.constants, req.Sweep)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.metrics.ObserveComputation("sweep", true)
	writeResult(w, res, func() *validation.Report { return s.report(p) })
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>spacedc</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>spacedc</h1>
<p>Orbital vs. terrestrial compute. POST a scenario to <code>/api/compare</code> or connect to <code>/api/live</code>.</p>
</div>
</body></html>`)
}

// marshal encodes v, reporting non-finite floats as errNonFinite.
func marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		var uve *json.UnsupportedValueError
		if errors.As(err, &uve) {
			return nil, errNonFinite
		}
		return nil, err
	}
	return data, nil
}

// writeResult writes v, or a 422 carrying the scenario's validation report
// when v holds values JSON cannot represent. report runs only on that path.
func writeResult(w http.ResponseWriter, v any, report func() *validation.Report) {
	data, err := marshal(v)
	if errors.Is(err, errNonFinite) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  err.Error(),
			"report": report(),
		})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
