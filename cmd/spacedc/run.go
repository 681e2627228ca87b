package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ChicagoDave/spacedc/internal/config"
	"github.com/ChicagoDave/spacedc/internal/logging"
	"github.com/ChicagoDave/spacedc/internal/metrics"
	"github.com/ChicagoDave/spacedc/internal/server"
	"github.com/ChicagoDave/spacedc/pkg/breakeven"
	"github.com/ChicagoDave/spacedc/pkg/engine"
	"github.com/ChicagoDave/spacedc/pkg/orbital"
	"github.com/ChicagoDave/spacedc/pkg/params"
	"github.com/ChicagoDave/spacedc/pkg/sweep"
	"github.com/ChicagoDave/spacedc/pkg/terrestrial"
	"github.com/ChicagoDave/spacedc/pkg/thermal"
	"github.com/ChicagoDave/spacedc/pkg/validation"
)

var errInvalidScenario = errors.New("scenario has validation errors")

type sweepFlags struct {
	param string
	from  float64
	to    float64
	steps int
}

func (o *globalOptions) logger() *slog.Logger {
	return logging.New(logging.Config{Level: o.logLevel})
}

// loadScenario resolves the parameter set: project file (or defaults), then
// the preset, then each --set override in order.
func loadScenario(opts *globalOptions, project string) (params.ParameterSet, params.Constants, error) {
	logger := opts.logger()
	p, c := params.Defaults(), params.DefaultConstants()

	if project != "" {
		var err error
		p, c, err = params.LoadProject(project)
		if err != nil {
			logger.Debug("project load failed", "project", project, "error", err)
			return params.ParameterSet{}, params.Constants{}, fmt.Errorf("loading project: %w", err)
		}
	}
	if opts.preset != "" {
		var err error
		if p, err = p.WithPreset(opts.preset); err != nil {
			return params.ParameterSet{}, params.Constants{}, err
		}
	}
	for _, a := range opts.set {
		if err := p.ParseAssignment(a); err != nil {
			return params.ParameterSet{}, params.Constants{}, fmt.Errorf("--set: %w", err)
		}
	}
	if err := p.CheckLimits(); err != nil {
		return params.ParameterSet{}, params.Constants{}, err
	}
	return p, c, nil
}

func runCompare(w io.Writer, opts *globalOptions, project string) error {
	p, c, err := loadScenario(opts, project)
	if err != nil {
		return err
	}
	cmp, report := engine.Compare(p, c)
	if opts.json {
		return printJSON(w, map[string]any{"comparison": cmp, "report": report})
	}

	printComparison(w, cmp)
	if len(report.Findings()) > 0 {
		fmt.Fprintln(w)
		printValidationReport(w, report)
	}
	return nil
}

func runOrbital(w io.Writer, opts *globalOptions, project string) error {
	p, c, err := loadScenario(opts, project)
	if err != nil {
		return err
	}
	res := orbital.Estimate(p, c)
	if opts.json {
		return printJSON(w, res)
	}
	printOrbital(w, res)
	return nil
}

func runTerrestrial(w io.Writer, opts *globalOptions, project string) error {
	p, c, err := loadScenario(opts, project)
	if err != nil {
		return err
	}
	res := terrestrial.Estimate(p, c)
	if opts.json {
		return printJSON(w, res)
	}
	printTerrestrial(w, res)
	return nil
}

func runThermal(w io.Writer, opts *globalOptions, project string) error {
	p, c, err := loadScenario(opts, project)
	if err != nil {
		return err
	}
	res := thermal.Solve(p, c)
	if opts.json {
		return printJSON(w, res)
	}
	printThermal(w, res)
	return nil
}

func runBreakeven(w io.Writer, opts *globalOptions, project string) error {
	p, c, err := loadScenario(opts, project)
	if err != nil {
		return err
	}
	res := breakeven.Solve(p, c)
	if opts.json {
		return printJSON(w, res)
	}
	printBreakeven(w, res)
	return nil
}

func runValidate(w io.Writer, opts *globalOptions, project string) error {
	p, c, err := loadScenario(opts, project)
	if err != nil {
		return err
	}

	report := validation.ValidateParameters(p)
	_, analytic := engine.Compare(p, c)
	report.Merge(analytic)

	if opts.json {
		if err := printJSON(w, report); err != nil {
			return err
		}
	} else {
		printValidationReport(w, report)
	}
	if !report.Valid {
		return errInvalidScenario
	}
	return nil
}

func runPresets(w io.Writer, opts *globalOptions) error {
	if opts.json {
		return printJSON(w, params.Presets())
	}
	printPresets(w, params.Presets())
	return nil
}

func runSweep(w io.Writer, opts *globalOptions, project string, f sweepFlags) error {
	p, c, err := loadScenario(opts, project)
	if err != nil {
		return err
	}
	res, err := sweep.Run(p, c, sweep.Request{
		Parameter: f.param,
		From:      f.from,
		To:        f.to,
		Steps:     f.steps,
	})
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	if opts.json {
		return printJSON(w, res)
	}
	printSweep(w, res)
	return nil
}

// runServe resolves settings (defaults, spacedc.yaml, SPACEDC_* env, then
// flags) and serves until interrupted.
func runServe(cmd *cobra.Command, opts *globalOptions, configFile, project string) error {
	v := config.New(configFile)
	if err := v.BindPFlag("server.port", cmd.Flags().Lookup("port")); err != nil {
		return err
	}
	if err := v.BindPFlag("log.format", cmd.Flags().Lookup("log-format")); err != nil {
		return err
	}
	if err := v.BindPFlag("log.level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}
	settings, err := config.Load(v)
	if err != nil {
		return err
	}
	if project == "" {
		project = settings.Project
	}

	logger := logging.New(logging.Config{Level: settings.Log.Level, Format: settings.Log.Format})
	opts.logLevel = settings.Log.Level

	p, c, err := loadScenario(opts, project)
	if err != nil {
		return err
	}
	report := validation.ValidateParameters(p)
	for _, f := range report.Findings() {
		logger.Warn("base scenario", "parameter", f.Parameter, "message", f.Message)
	}

	m, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}
	srv, err := server.New(server.Options{
		Addr:              settings.Server.Addr(),
		Project:           project,
		Base:              p,
		Constants:         c,
		Logger:            logger,
		Metrics:           m,
		RequestsPerSecond: settings.Limits.RequestsPerSecond,
		Burst:             settings.Limits.Burst,
		MaxSweepSteps:     settings.Limits.MaxSweepSteps,
		TrustProxy:        settings.Server.TrustProxy,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
