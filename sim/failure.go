package sim

// FailureModel decides whether a single launch or landing succeeds.
// rate is the variant's fail rate (percent) and loadRatio is
// CurrentLoad / MaxCapacity at the time of the attempt.
type FailureModel interface {
	Succeeds(rate, loadRatio float64, src DrawSource) bool
}

// NeverFails always succeeds and consumes no draws.
type NeverFails struct{}

func (NeverFails) Succeeds(_, _ float64, _ DrawSource) bool {
	return true
}

// ScaledThreshold draws a uniform integer in [0, 100] and succeeds iff
// rate*loadRatio <= draw. The threshold is not normalized: with rate=5 and a
// full vehicle the attempt fails only on draws 0..4, i.e. 5 of 101 outcomes.
type ScaledThreshold struct{}

func (ScaledThreshold) Succeeds(rate, loadRatio float64, src DrawSource) bool {
	draw := src.Intn(101)
	return rate*loadRatio <= float64(draw)
}
