// Tracks mission-wide statistics such as attempts, failures and cost.

package sim

import (
	"fmt"
	"io"
)

// Metrics aggregates attempt and trial statistics for final reporting.
// It implements Recorder so it can be attached to a runner or driver.
type Metrics struct {
	Attempts        int     // Launch/land cycles flown
	Successes       int     // Vehicles delivered
	LaunchFailures  int     // Attempts lost on launch
	LandingFailures int     // Attempts lost on landing
	Trials          int     // Trials observed
	TotalCost       float64 // Sum of all attempt costs
	MaxAttempts     int     // Most attempts any single vehicle needed

	perVehicle map[[2]int]int // (trial, vehicle) -> attempts so far
}

// NewMetrics returns an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{perVehicle: make(map[[2]int]int)}
}

func (m *Metrics) ObserveAttempt(a Attempt) {
	if m.perVehicle == nil {
		m.perVehicle = make(map[[2]int]int)
	}
	m.Attempts++
	m.TotalCost += a.Cost
	switch a.Outcome {
	case OutcomeSuccess:
		m.Successes++
	case OutcomeLaunchFailed:
		m.LaunchFailures++
	case OutcomeLandingFailed:
		m.LandingFailures++
	}
	key := [2]int{a.Trial, a.Vehicle}
	m.perVehicle[key]++
	if n := m.perVehicle[key]; n > m.MaxAttempts {
		m.MaxAttempts = n
	}
	if a.Outcome == OutcomeSuccess {
		delete(m.perVehicle, key)
	}
}

func (m *Metrics) ObserveTrial(int, Variant, MissionReport) {
	m.Trials++
}

// Print writes aggregated metrics to w.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Mission Metrics ===")
	fmt.Fprintf(w, "Trials               : %d\n", m.Trials)
	fmt.Fprintf(w, "Successful Missions  : %d\n", m.Successes)
	fmt.Fprintf(w, "Failures             : %d (%d launch, %d landing)\n",
		m.LaunchFailures+m.LandingFailures, m.LaunchFailures, m.LandingFailures)
	if m.Successes > 0 {
		fmt.Fprintf(w, "Attempts per Mission : %.3f\n", float64(m.Attempts)/float64(m.Successes))
		fmt.Fprintf(w, "Max Attempts         : %d\n", m.MaxAttempts)
	}
}
