package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/cargosim/cargosim/sim"
	"github.com/cargosim/cargosim/sim/trace"
)

// Config represents the full cargosim.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Seed        int64    `yaml:"seed"`
	Trials      int      `yaml:"trials" validate:"min=1"`
	MaxVehicles int      `yaml:"max_vehicles" validate:"min=0"`
	MaxAttempts int      `yaml:"max_attempts" validate:"min=0"`
	Precheck    bool     `yaml:"precheck"`
	LogLevel    string   `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	Trace       string   `yaml:"trace" validate:"tracelevel"`
	Manifests   []string `yaml:"manifests" validate:"dive,required"`
	Vehicles    []string `yaml:"vehicles" validate:"dive,required,variant"`
	MetricsOut  string   `yaml:"metrics_out"`

	ReloadManifests bool `yaml:"reload_manifests"`
}

// DefaultConfig mirrors the CLI flag defaults.
func DefaultConfig() Config {
	return Config{
		Seed:        42,
		Trials:      1000,
		MaxVehicles: sim.DefaultMaxVehicles,
		Precheck:    true,
		LogLevel:    "warn",
		Trace:       string(trace.TraceLevelNone),
		Vehicles:    []string{string(sim.VariantTypeA), string(sim.VariantTypeB)},
	}
}

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("variant", func(fl validator.FieldLevel) bool {
		return sim.IsValidVariant(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("tracelevel", func(fl validator.FieldLevel) bool {
		return trace.IsValidTraceLevel(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// loadConfig parses path over DefaultConfig, so omitted keys keep their
// defaults. Uses strict field checking: typos must cause errors.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Variants resolves the configured vehicle names.
func (c *Config) Variants() ([]sim.Variant, error) {
	variants := make([]sim.Variant, 0, len(c.Vehicles))
	for _, name := range c.Vehicles {
		v, err := sim.ParseVariant(name)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// newDriver builds a driver from the loader and runner settings.
func (c *Config) newDriver(rec sim.Recorder) *sim.Driver {
	d := sim.NewDriver(sim.NewSimulationKey(c.Seed))
	d.Loader = &sim.Loader{MaxVehicles: c.MaxVehicles, Precheck: c.Precheck}
	d.Runner = &sim.MissionRunner{MaxAttempts: c.MaxAttempts}
	d.Recorder = rec
	return d
}
