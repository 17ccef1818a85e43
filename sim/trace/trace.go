package trace

// TraceLevel controls the verbosity of mission tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTrials captures one record per finished trial.
	TraceLevelTrials TraceLevel = "trials"
	// TraceLevelAttempts captures every launch/land attempt plus trial records.
	TraceLevelAttempts TraceLevel = "attempts"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:     true,
	TraceLevelTrials:   true,
	TraceLevelAttempts: true,
	"":                 true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// MissionTrace collects attempt and trial records during an estimate.
type MissionTrace struct {
	Config   TraceConfig
	Attempts []AttemptRecord
	Trials   []TrialRecord
}

// NewMissionTrace creates a MissionTrace ready for recording.
func NewMissionTrace(config TraceConfig) *MissionTrace {
	return &MissionTrace{
		Config:   config,
		Attempts: make([]AttemptRecord, 0),
		Trials:   make([]TrialRecord, 0),
	}
}

// RecordAttempt appends an attempt record. Ignored below TraceLevelAttempts.
func (mt *MissionTrace) RecordAttempt(record AttemptRecord) {
	if mt.Config.Level != TraceLevelAttempts {
		return
	}
	mt.Attempts = append(mt.Attempts, record)
}

// RecordTrial appends a trial record. Ignored when tracing is off.
func (mt *MissionTrace) RecordTrial(record TrialRecord) {
	if mt.Config.Level == TraceLevelNone || mt.Config.Level == "" {
		return
	}
	mt.Trials = append(mt.Trials, record)
}
