package sim

// Outcome classifies a single mission attempt.
type Outcome string

const (
	OutcomeSuccess       Outcome = "success"
	OutcomeLaunchFailed  Outcome = "launch_failed"
	OutcomeLandingFailed Outcome = "landing_failed"
)

// Attempt describes one launch/land cycle of one vehicle.
type Attempt struct {
	Trial     int // Monte Carlo trial index; 0 for single runs
	Vehicle   int // Index into the fleet
	Number    int // 1-based attempt number for this vehicle
	Variant   Variant
	LoadRatio float64
	Cost      float64
	Outcome   Outcome
}

// Recorder observes mission attempts and finished trials.
// Implementations live in sim/trace and sim/telemetry.
type Recorder interface {
	ObserveAttempt(a Attempt)
	ObserveTrial(trial int, v Variant, report MissionReport)
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) ObserveAttempt(Attempt) {}
func (NopRecorder) ObserveTrial(int, Variant, MissionReport) {}

// MultiRecorder fans observations out to several recorders in order.
type MultiRecorder []Recorder

func (m MultiRecorder) ObserveAttempt(a Attempt) {
	for _, r := range m {
		r.ObserveAttempt(a)
	}
}

func (m MultiRecorder) ObserveTrial(trial int, v Variant, report MissionReport) {
	for _, r := range m {
		r.ObserveTrial(trial, v, report)
	}
}
