package sim

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// ErrInvalidTrials is returned when an estimate is requested for fewer than one trial.
var ErrInvalidTrials = errors.New("trial count must be at least 1")

// ManifestSource supplies a fresh, caller-owned item list on every call.
type ManifestSource interface {
	Items() ([]Item, error)
}

// Estimate summarizes the per-trial total costs of one (manifest, variant) pair.
type Estimate struct {
	RunID    string
	Manifest string
	Variant  Variant
	Trials   int
	Vehicles int // Fleet size; identical across trials since packing is deterministic

	Mean   float64
	StdDev float64
	StdErr float64
	Min    float64
	Max    float64
	Costs  []float64 // Per-trial total cost, in trial order

	LaunchFailures  int
	LandingFailures int
	Elapsed         time.Duration
}

// Driver repeats load-and-fly trials and averages their cost.
type Driver struct {
	Loader   *Loader
	Runner   *MissionRunner
	RNG      *PartitionedRNG
	Recorder Recorder
}

// NewDriver returns a driver with default loader and runner seeded by key.
func NewDriver(key SimulationKey) *Driver {
	return &Driver{
		Loader:   NewLoader(),
		Runner:   NewMissionRunner(),
		RNG:      NewPartitionedRNG(key),
		Recorder: NopRecorder{},
	}
}

// Estimate runs trials independent trials of source packed into v vehicles.
// name labels the manifest in the result. Manifest, packing and retry-limit
// errors abort the estimate.
func (d *Driver) Estimate(name string, source ManifestSource, v Variant, trials int) (*Estimate, error) {
	if trials < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidTrials, trials)
	}
	rec := d.Recorder
	if rec == nil {
		rec = NopRecorder{}
	}
	loader := d.Loader
	if loader == nil {
		loader = NewLoader()
	}
	runner := MissionRunner{}
	if d.Runner != nil {
		runner = *d.Runner
	}
	// A recorder already on the runner keeps receiving attempts and trials.
	if runner.Recorder != nil {
		if _, nop := runner.Recorder.(NopRecorder); !nop {
			rec = MultiRecorder{runner.Recorder, rec}
		}
	}
	runner.Recorder = rec
	rng := d.RNG
	if rng == nil {
		rng = NewPartitionedRNG(NewSimulationKey(0))
	}

	est := &Estimate{
		RunID:    uuid.New().String(),
		Manifest: name,
		Variant:  v,
		Trials:   trials,
		Costs:    make([]float64, 0, trials),
	}
	start := time.Now()
	logrus.Infof("[%s] estimating %s with %s vehicles over %d trials", est.RunID, name, v, trials)

	for i := 0; i < trials; i++ {
		items, err := source.Items()
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		fleet, err := loader.Pack(items, v)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		stream := SubsystemTrial(i)
		report, err := runner.runTrial(i, fleet, rng.ForSubsystem(stream))
		rng.Release(stream)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		rec.ObserveTrial(i, v, report)

		est.Vehicles = len(fleet)
		est.Costs = append(est.Costs, report.TotalCost)
		est.LaunchFailures += report.LaunchFailures
		est.LandingFailures += report.LandingFailures
		logrus.Debugf("[%s] trial %d: %d vehicles, cost %.2f, %d failures", est.RunID, i, len(fleet), report.TotalCost, report.Failures())
	}

	est.Mean, est.StdDev = stat.MeanStdDev(est.Costs, nil)
	if trials == 1 {
		est.StdDev = 0
	}
	est.StdErr = est.StdDev / math.Sqrt(float64(trials))
	est.Min, est.Max = est.Costs[0], est.Costs[0]
	for _, c := range est.Costs[1:] {
		est.Min = math.Min(est.Min, c)
		est.Max = math.Max(est.Max, c)
	}
	est.Elapsed = time.Since(start)
	logrus.Infof("[%s] %s/%s mean cost %.2f (stderr %.2f)", est.RunID, name, v, est.Mean, est.StdErr)
	return est, nil
}

// ExpectedCost is the analytic mean cost of flying fleet under the
// ScaledThreshold model: each vehicle is retried until success, so its
// attempt count is geometric with success probability P(launch)*P(land).
func ExpectedCost(fleet Fleet) float64 {
	total := 0.0
	for _, vh := range fleet {
		p := SuccessProbability(vh.Variant, vh.Spec.LaunchFailRate, vh.LoadRatio()) *
			SuccessProbability(vh.Variant, vh.Spec.LandFailRate, vh.LoadRatio())
		total += vh.Spec.Cost / p
	}
	return total
}

// SuccessProbability is the chance that a single draw passes for the given
// variant, fail rate and load ratio.
func SuccessProbability(v Variant, rate, loadRatio float64) float64 {
	if _, ok := v.Model().(NeverFails); ok {
		return 1
	}
	threshold := rate * loadRatio
	if threshold <= 0 {
		return 1
	}
	passing := 101 - math.Ceil(threshold)
	if passing <= 0 {
		return 0
	}
	return passing / 101
}
