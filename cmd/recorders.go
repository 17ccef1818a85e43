package cmd

import (
	"github.com/cargosim/cargosim/sim"
	"github.com/cargosim/cargosim/sim/trace"
)

// traceRecorder adapts a MissionTrace to sim.Recorder.
type traceRecorder struct {
	trace *trace.MissionTrace
}

func (r traceRecorder) ObserveAttempt(a sim.Attempt) {
	r.trace.RecordAttempt(trace.AttemptRecord{
		Trial:     a.Trial,
		Vehicle:   a.Vehicle,
		Attempt:   a.Number,
		Variant:   a.Variant.String(),
		LoadRatio: a.LoadRatio,
		Cost:      a.Cost,
		Outcome:   string(a.Outcome),
	})
}

func (r traceRecorder) ObserveTrial(trial int, v sim.Variant, report sim.MissionReport) {
	r.trace.RecordTrial(trace.TrialRecord{
		Trial:    trial,
		Variant:  v.String(),
		Vehicles: len(report.Attempts),
		Cost:     report.TotalCost,
		Failures: report.Failures(),
	})
}
