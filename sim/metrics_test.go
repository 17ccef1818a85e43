package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cargosim/cargosim/sim/internal/testutil"
)

func TestMetrics_ObserveAttempt_TracksPerVehicleMax(t *testing.T) {
	m := NewMetrics()
	m.ObserveAttempt(Attempt{Trial: 0, Vehicle: 0, Outcome: OutcomeLaunchFailed, Cost: 5})
	m.ObserveAttempt(Attempt{Trial: 0, Vehicle: 0, Outcome: OutcomeLandingFailed, Cost: 5})
	m.ObserveAttempt(Attempt{Trial: 0, Vehicle: 0, Outcome: OutcomeSuccess, Cost: 5})
	m.ObserveAttempt(Attempt{Trial: 1, Vehicle: 0, Outcome: OutcomeSuccess, Cost: 5})
	m.ObserveTrial(0, VariantTypeA, MissionReport{})
	m.ObserveTrial(1, VariantTypeA, MissionReport{})

	assert.Equal(t, 4, m.Attempts)
	assert.Equal(t, 2, m.Successes)
	assert.Equal(t, 1, m.LaunchFailures)
	assert.Equal(t, 1, m.LandingFailures)
	assert.Equal(t, 3, m.MaxAttempts)
	assert.Equal(t, 20.0, m.TotalCost)
	assert.Equal(t, 2, m.Trials)
}

func TestMetrics_ZeroValue_Usable(t *testing.T) {
	var m Metrics
	m.ObserveAttempt(Attempt{Outcome: OutcomeSuccess})
	assert.Equal(t, 1, m.Successes)
}

func TestMetrics_Print(t *testing.T) {
	m := NewMetrics()
	m.ObserveAttempt(Attempt{Outcome: OutcomeLaunchFailed})
	m.ObserveAttempt(Attempt{Outcome: OutcomeSuccess})
	m.ObserveTrial(0, VariantTypeA, MissionReport{})

	var buf bytes.Buffer
	m.Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "Successful Missions  : 1")
	assert.Contains(t, out, "Failures             : 1 (1 launch, 0 landing)")
	assert.Contains(t, out, "Attempts per Mission : 2.000")
}

func TestMultiRecorder_FansOut(t *testing.T) {
	a, b := NewMetrics(), NewMetrics()
	rec := MultiRecorder{a, NopRecorder{}, b}

	runner := &MissionRunner{Recorder: rec}
	_, err := runner.Run(Fleet{NewVehicle(VariantGeneric), NewVehicle(VariantGeneric)}, testutil.NewFixedDraws(0))
	assert.NoError(t, err)
	rec.ObserveTrial(0, VariantGeneric, MissionReport{})

	assert.Equal(t, 2, a.Successes)
	assert.Equal(t, 2, b.Successes)
	assert.Equal(t, 1, a.Trials)
	assert.Equal(t, 1, b.Trials)
}
