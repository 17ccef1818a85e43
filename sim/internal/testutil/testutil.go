// Package testutil provides shared test infrastructure for the cargo simulator.
// It consolidates deterministic draw sources and assertion helpers used across
// sim/ and its sub-package tests.
package testutil

import (
	"math"
	"testing"
)

// FixedDraws replays a fixed sequence of draws, repeating the last value
// once exhausted. Calls counts every draw taken.
type FixedDraws struct {
	Values []int
	Calls  int
}

// NewFixedDraws returns a source replaying values.
func NewFixedDraws(values ...int) *FixedDraws {
	return &FixedDraws{Values: values}
}

// Intn returns the next scripted value. Panics if the value is outside [0, n)
// or no values were scripted, so a test notices an unexpected draw.
func (f *FixedDraws) Intn(n int) int {
	if len(f.Values) == 0 {
		panic("testutil: FixedDraws has no values")
	}
	idx := f.Calls
	if idx >= len(f.Values) {
		idx = len(f.Values) - 1
	}
	f.Calls++
	v := f.Values[idx]
	if v < 0 || v >= n {
		panic("testutil: FixedDraws value out of range")
	}
	return v
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
