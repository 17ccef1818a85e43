package trace

// TraceSummary aggregates statistics from a MissionTrace.
type TraceSummary struct {
	TotalAttempts    int
	Successes        int
	LaunchFailures   int
	LandingFailures  int
	MeanAttempts     float64 // attempts per successful vehicle
	MaxAttempt       int     // highest attempt number seen
	TotalTrials      int
	MeanTrialCost    float64
	OutcomeByVariant map[string]map[string]int // variant → outcome → count
}

// Summarize computes aggregate statistics from a MissionTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(mt *MissionTrace) *TraceSummary {
	summary := &TraceSummary{
		OutcomeByVariant: make(map[string]map[string]int),
	}
	if mt == nil {
		return summary
	}

	summary.TotalAttempts = len(mt.Attempts)
	for _, a := range mt.Attempts {
		switch a.Outcome {
		case "success":
			summary.Successes++
		case "launch_failed":
			summary.LaunchFailures++
		case "landing_failed":
			summary.LandingFailures++
		}
		if a.Attempt > summary.MaxAttempt {
			summary.MaxAttempt = a.Attempt
		}
		byOutcome, ok := summary.OutcomeByVariant[a.Variant]
		if !ok {
			byOutcome = make(map[string]int)
			summary.OutcomeByVariant[a.Variant] = byOutcome
		}
		byOutcome[a.Outcome]++
	}
	if summary.Successes > 0 {
		summary.MeanAttempts = float64(summary.TotalAttempts) / float64(summary.Successes)
	}

	summary.TotalTrials = len(mt.Trials)
	if summary.TotalTrials > 0 {
		total := 0.0
		for _, tr := range mt.Trials {
			total += tr.Cost
		}
		summary.MeanTrialCost = total / float64(summary.TotalTrials)
	}

	return summary
}
