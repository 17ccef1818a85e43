package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrRetryLimitExceeded is returned when a vehicle uses up MaxAttempts
// without a successful launch and landing.
var ErrRetryLimitExceeded = errors.New("retry limit exceeded")

// MissionReport is the outcome of flying one fleet.
type MissionReport struct {
	TotalCost       float64 // Cost of every attempt, failed or not
	Successes       int     // Vehicles that launched and landed
	LaunchFailures  int
	LandingFailures int
	Attempts        []int // Attempts per vehicle, in fleet order
}

// Failures is the total number of failed attempts.
func (r MissionReport) Failures() int {
	return r.LaunchFailures + r.LandingFailures
}

// MissionRunner flies each vehicle of a fleet until it succeeds.
//
// Per vehicle: launch; if the launch succeeds, land. Every attempt charges
// the vehicle's cost once. A failed launch or landing retries the same
// vehicle; a success moves on to the next one.
type MissionRunner struct {
	// MaxAttempts caps attempts per vehicle. Zero retries until success.
	MaxAttempts int
	Recorder    Recorder
}

// NewMissionRunner returns a runner that retries without limit.
func NewMissionRunner() *MissionRunner {
	return &MissionRunner{Recorder: NopRecorder{}}
}

// Run flies fleet using src for every draw. An empty fleet yields a zero
// report. On ErrRetryLimitExceeded the partial report is returned alongside
// the error.
func (mr *MissionRunner) Run(fleet Fleet, src DrawSource) (MissionReport, error) {
	return mr.runTrial(0, fleet, src)
}

func (mr *MissionRunner) runTrial(trial int, fleet Fleet, src DrawSource) (MissionReport, error) {
	report := MissionReport{Attempts: make([]int, 0, len(fleet))}
	rec := mr.Recorder
	if rec == nil {
		rec = NopRecorder{}
	}

	for i, vh := range fleet {
		attempts := 0
		for {
			if mr.MaxAttempts > 0 && attempts >= mr.MaxAttempts {
				report.Attempts = append(report.Attempts, attempts)
				return report, fmt.Errorf("%w: vehicle %d (%s) failed %d attempts", ErrRetryLimitExceeded, i, vh.Variant, attempts)
			}
			attempts++
			report.TotalCost += vh.Spec.Cost

			outcome := OutcomeSuccess
			if !vh.Launch(src) {
				outcome = OutcomeLaunchFailed
				report.LaunchFailures++
			} else if !vh.Land(src) {
				outcome = OutcomeLandingFailed
				report.LandingFailures++
			}
			rec.ObserveAttempt(Attempt{
				Trial:     trial,
				Vehicle:   i,
				Number:    attempts,
				Variant:   vh.Variant,
				LoadRatio: vh.LoadRatio(),
				Cost:      vh.Spec.Cost,
				Outcome:   outcome,
			})
			if outcome == OutcomeSuccess {
				report.Successes++
				break
			}
			logrus.Tracef("vehicle %d attempt %d: %s", i, attempts, outcome)
		}
		report.Attempts = append(report.Attempts, attempts)
	}
	return report, nil
}
