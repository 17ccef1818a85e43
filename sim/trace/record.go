// Package trace provides per-attempt recording for mission analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// AttemptRecord captures a single launch/land cycle of one vehicle.
type AttemptRecord struct {
	Trial     int
	Vehicle   int
	Attempt   int // 1-based attempt number for this vehicle
	Variant   string
	LoadRatio float64
	Cost      float64
	Outcome   string // "success", "launch_failed", "landing_failed"
}

// TrialRecord captures the outcome of one full trial.
type TrialRecord struct {
	Trial    int
	Variant  string
	Vehicles int
	Cost     float64
	Failures int
}
