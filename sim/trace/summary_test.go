package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalAttempts != 0 || summary.TotalTrials != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
	if summary.OutcomeByVariant == nil {
		t.Error("expected non-nil outcome map")
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	mt := NewMissionTrace(TraceConfig{Level: TraceLevelAttempts})

	// WHEN summarized
	summary := Summarize(mt)

	// THEN all counts are zero
	if summary.TotalAttempts != 0 {
		t.Errorf("expected 0 attempts, got %d", summary.TotalAttempts)
	}
	if summary.MeanAttempts != 0 || summary.MeanTrialCost != 0 {
		t.Error("expected 0 means")
	}
	if len(summary.OutcomeByVariant) != 0 {
		t.Error("expected empty outcome distribution")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN two vehicles: the first needs three attempts, the second one
	mt := NewMissionTrace(TraceConfig{Level: TraceLevelAttempts})
	mt.RecordAttempt(AttemptRecord{Vehicle: 0, Attempt: 1, Variant: "u2", Outcome: "launch_failed"})
	mt.RecordAttempt(AttemptRecord{Vehicle: 0, Attempt: 2, Variant: "u2", Outcome: "landing_failed"})
	mt.RecordAttempt(AttemptRecord{Vehicle: 0, Attempt: 3, Variant: "u2", Outcome: "success"})
	mt.RecordAttempt(AttemptRecord{Vehicle: 1, Attempt: 1, Variant: "u2", Outcome: "success"})
	mt.RecordTrial(TrialRecord{Trial: 0, Variant: "u2", Vehicles: 2, Cost: 400, Failures: 2})
	mt.RecordTrial(TrialRecord{Trial: 1, Variant: "u2", Vehicles: 2, Cost: 200})

	// WHEN summarized
	summary := Summarize(mt)

	// THEN counts match
	if summary.TotalAttempts != 4 {
		t.Errorf("expected 4 attempts, got %d", summary.TotalAttempts)
	}
	if summary.Successes != 2 || summary.LaunchFailures != 1 || summary.LandingFailures != 1 {
		t.Errorf("unexpected outcome counts: %+v", summary)
	}
	if summary.MeanAttempts != 2.0 {
		t.Errorf("expected mean attempts 2.0, got %v", summary.MeanAttempts)
	}
	if summary.MaxAttempt != 3 {
		t.Errorf("expected max attempt 3, got %d", summary.MaxAttempt)
	}
	if summary.OutcomeByVariant["u2"]["success"] != 2 {
		t.Errorf("expected 2 u2 successes, got %d", summary.OutcomeByVariant["u2"]["success"])
	}
	if summary.TotalTrials != 2 || summary.MeanTrialCost != 300 {
		t.Errorf("expected 2 trials with mean 300, got %d and %v", summary.TotalTrials, summary.MeanTrialCost)
	}
}
