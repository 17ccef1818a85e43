package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cargosim/cargosim/sim"
	"github.com/cargosim/cargosim/sim/manifest"
	"github.com/cargosim/cargosim/sim/telemetry"
	"github.com/cargosim/cargosim/sim/trace"
)

var (
	// CLI flags shared by run and estimate
	configPath  string   // Optional cargosim.yaml; explicitly set flags override it
	seed        int64    // Master seed for all trial streams
	logLevel    string   // Log verbosity level
	trials      int      // Monte Carlo trials per (manifest, vehicle) pair
	manifests   []string // Manifest files, text or YAML
	vehicles    []string // Vehicle variants to compare
	maxVehicles int      // Fleet size past which packing is declared infeasible
	maxAttempts int      // Attempts per vehicle before giving up (0 = unlimited)
	precheck    bool     // Reject items heavier than a fresh vehicle's margin up front
	traceLevel  string   // Trace verbosity (none, trials, attempts)
	metricsOut  string   // Prometheus textfile output path
	reload      bool     // Re-read each manifest file before every trial
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cargosim",
	Short: "Monte Carlo cost simulator for cargo launch campaigns",
}

// runCmd flies every manifest once with each vehicle variant
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single trial for each manifest and vehicle",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustResolveConfig(cmd)
		if err := runSingle(cfg, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("run failed: %v", err)
		}
	},
}

// estimateCmd averages the total cost over many trials
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the mean total cost over repeated trials",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustResolveConfig(cmd)
		if err := runEstimates(cfg, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("estimate failed: %v", err)
		}
		logrus.Info("Estimates complete.")
	},
}

func mustResolveConfig(cmd *cobra.Command) Config {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", cfg.LogLevel)
	}
	logrus.SetLevel(level)
	return cfg
}

// resolveConfig merges the optional config file with CLI flags. Without a
// config file every flag applies; with one, only flags the user set
// explicitly override it.
func resolveConfig(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = loadConfig(configPath); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	apply := func(name string) bool {
		return configPath == "" || flags.Changed(name)
	}
	if apply("seed") {
		cfg.Seed = seed
	}
	if apply("log") {
		cfg.LogLevel = logLevel
	}
	if apply("trials") {
		cfg.Trials = trials
	}
	if apply("manifest") {
		cfg.Manifests = manifests
	}
	if apply("vehicle") {
		cfg.Vehicles = vehicles
	}
	if apply("max-vehicles") {
		cfg.MaxVehicles = maxVehicles
	}
	if apply("max-attempts") {
		cfg.MaxAttempts = maxAttempts
	}
	if apply("precheck") {
		cfg.Precheck = precheck
	}
	if apply("trace") {
		cfg.Trace = traceLevel
	}
	if apply("metrics-out") {
		cfg.MetricsOut = metricsOut
	}
	if apply("reload-manifests") {
		cfg.ReloadManifests = reload
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if len(cfg.Manifests) == 0 {
		return cfg, errors.New("at least one --manifest is required")
	}
	if len(cfg.Vehicles) == 0 {
		return cfg, errors.New("at least one --vehicle is required")
	}
	return cfg, nil
}

// runSingle loads each manifest once and flies one trial per vehicle variant.
func runSingle(cfg Config, w io.Writer) error {
	variants, err := cfg.Variants()
	if err != nil {
		return err
	}
	metrics := sim.NewMetrics()
	d := cfg.newDriver(metrics)
	runner := *d.Runner
	runner.Recorder = metrics
	src := d.RNG.ForSubsystem(sim.SubsystemSingle)

	for _, path := range cfg.Manifests {
		m, err := manifest.LoadFile(path)
		if err != nil {
			return err
		}
		for _, v := range variants {
			fleet, err := packSource(d.Loader, m.Name, m, v)
			if err != nil {
				return err
			}
			report, err := runner.Run(fleet, src)
			if err != nil {
				return fmt.Errorf("%s: %w", m.Name, err)
			}
			metrics.ObserveTrial(0, v, report)
			printReport(w, m.Name, v, fleet, report)
		}
	}
	metrics.Print(w)
	return nil
}

// packSource fetches a fresh item list from source and packs it into v vehicles.
func packSource(loader *sim.Loader, name string, source sim.ManifestSource, v sim.Variant) (sim.Fleet, error) {
	items, err := source.Items()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	fleet, err := loader.Pack(items, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return fleet, nil
}

// runEstimates runs the full (manifest x vehicle) matrix and prints the
// mean-cost table.
func runEstimates(cfg Config, w io.Writer) error {
	variants, err := cfg.Variants()
	if err != nil {
		return err
	}

	prom := telemetry.NewPrometheusRecorder(telemetry.DefaultNamespace)
	mt := trace.NewMissionTrace(trace.TraceConfig{Level: trace.TraceLevel(cfg.Trace)})
	recorders := sim.MultiRecorder{prom}
	if cfg.Trace != "" && cfg.Trace != string(trace.TraceLevelNone) {
		recorders = append(recorders, traceRecorder{trace: mt})
	}

	fmt.Fprintf(w, "Running %d simulations for each vehicle type and manifest...\n", cfg.Trials)
	var estimates []*sim.Estimate
	for _, path := range cfg.Manifests {
		m, err := manifest.LoadFile(path)
		if err != nil {
			return err
		}
		var src sim.ManifestSource = m
		if cfg.ReloadManifests {
			src = manifest.FileSource{Path: path}
		}
		for _, v := range variants {
			// A fresh driver per pair keeps every pair's trial streams
			// independent of the order pairs are listed in.
			d := cfg.newDriver(recorders)
			est, err := d.Estimate(m.Name, src, v, cfg.Trials)
			if err != nil {
				return fmt.Errorf("%s with %s: %w", m.Name, v, err)
			}
			estimates = append(estimates, est)
		}
	}
	printEstimates(w, estimates)

	if cfg.Trace != "" && cfg.Trace != string(trace.TraceLevelNone) {
		s := trace.Summarize(mt)
		fmt.Fprintf(w, "=== Trace Summary ===\n")
		fmt.Fprintf(w, "Trials traced        : %d\n", s.TotalTrials)
		if s.TotalAttempts > 0 {
			fmt.Fprintf(w, "Attempts traced      : %d (%d launch failures, %d landing failures)\n",
				s.TotalAttempts, s.LaunchFailures, s.LandingFailures)
			fmt.Fprintf(w, "Attempts per mission : %.3f (max %d)\n", s.MeanAttempts, s.MaxAttempt)
		}
	}
	if cfg.MetricsOut != "" {
		if err := prom.WriteTextfile(cfg.MetricsOut); err != nil {
			return err
		}
		logrus.Infof("metrics written to %s", cfg.MetricsOut)
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := DefaultConfig()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a cargosim.yaml config file")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", defaults.Seed, "Seed for launch and landing draws")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", defaults.LogLevel, "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringSliceVar(&manifests, "manifest", nil, "Manifest file (name=weight lines, or .yaml); repeatable")
	rootCmd.PersistentFlags().StringSliceVar(&vehicles, "vehicle", defaults.Vehicles, "Vehicle variant (generic, u1, u2); repeatable")
	rootCmd.PersistentFlags().IntVar(&maxVehicles, "max-vehicles", defaults.MaxVehicles, "Fleet size past which packing is declared infeasible")
	rootCmd.PersistentFlags().IntVar(&maxAttempts, "max-attempts", defaults.MaxAttempts, "Attempts per vehicle before giving up (0 = retry until success)")
	rootCmd.PersistentFlags().BoolVar(&precheck, "precheck", defaults.Precheck, "Reject items heavier than a fresh vehicle's payload margin before packing")

	estimateCmd.Flags().IntVar(&trials, "trials", defaults.Trials, "Number of Monte Carlo trials per manifest and vehicle")
	estimateCmd.Flags().StringVar(&traceLevel, "trace", defaults.Trace, "Trace level (none, trials, attempts)")
	estimateCmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write Prometheus metrics to this textfile")
	estimateCmd.Flags().BoolVar(&reload, "reload-manifests", defaults.ReloadManifests, "Re-read manifest files before every trial")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(estimateCmd)
}
