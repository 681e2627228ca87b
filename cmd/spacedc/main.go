package main

import (
	"os"

	"github.com/spf13/cobra"
)

// globalOptions are the flags shared by every scenario command.
type globalOptions struct {
	preset   string
	set      []string
	json     bool
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:          "spacedc",
		Short:        "Orbital vs. terrestrial datacenter cost and thermal model",
		SilenceUsage: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.preset, "preset", "", "satellite hardware preset (v1, v2-mini, v3)")
	pf.StringArrayVar(&opts.set, "set", nil, "override a parameter, name=value (repeatable)")
	pf.BoolVar(&opts.json, "json", false, "print JSON instead of tables")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(compareCmd(opts))
	rootCmd.AddCommand(orbitalCmd(opts))
	rootCmd.AddCommand(terrestrialCmd(opts))
	rootCmd.AddCommand(thermalCmd(opts))
	rootCmd.AddCommand(breakevenCmd(opts))
	rootCmd.AddCommand(validateCmd(opts))
	rootCmd.AddCommand(presetsCmd(opts))
	rootCmd.AddCommand(sweepCmd(opts))
	rootCmd.AddCommand(serveCmd(opts))
	return rootCmd
}

func compareCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [project-path]",
		Short: "Compare orbital and terrestrial cost, breakeven and thermal margin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.OutOrStdout(), opts, projectArg(args))
		},
	}
}

func orbitalCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "orbital [project-path]",
		Short: "Size and price the orbital fleet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrbital(cmd.OutOrStdout(), opts, projectArg(args))
		},
	}
}

func terrestrialCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "terrestrial [project-path]",
		Short: "Price the gas-turbine datacenter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerrestrial(cmd.OutOrStdout(), opts, projectArg(args))
		},
	}
}

func thermalCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "thermal [project-path]",
		Short: "Solve the array's radiative equilibrium temperature",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThermal(cmd.OutOrStdout(), opts, projectArg(args))
		},
	}
}

func breakevenCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "breakeven [project-path]",
		Short: "Solve for the launch price that equalizes total cost",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBreakeven(cmd.OutOrStdout(), opts, projectArg(args))
		},
	}
}

func validateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Check a scenario against physical bounds and slider ranges",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), opts, projectArg(args))
		},
	}
}

func presetsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List satellite hardware presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPresets(cmd.OutOrStdout(), opts)
		},
	}
}

func sweepCmd(opts *globalOptions) *cobra.Command {
	var req sweepFlags

	cmd := &cobra.Command{
		Use:   "sweep [project-path]",
		Short: "Evaluate the comparison across a range of one parameter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd.OutOrStdout(), opts, projectArg(args), req)
		},
	}

	cmd.Flags().StringVar(&req.param, "param", "orbital.launch_cost_per_kg", "parameter to sweep")
	cmd.Flags().Float64Var(&req.from, "from", 20, "first value")
	cmd.Flags().Float64Var(&req.to, "to", 2940, "last value")
	cmd.Flags().IntVar(&req.steps, "steps", 10, "number of points")
	return cmd
}

func serveCmd(opts *globalOptions) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local HTTP and WebSocket server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts, configFile, projectArg(args))
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "settings file (default ./spacedc.yaml)")
	cmd.Flags().IntP("port", "p", 3000, "HTTP server port")
	cmd.Flags().String("log-format", "text", "log format (text or json)")
	return cmd
}

func projectArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
