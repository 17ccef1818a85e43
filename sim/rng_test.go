package sim

import (
	"math"
	"math/rand"
	"testing"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// BDD: Same key+name produces same sequence
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 3; i++ {
		a := rng1.ForSubsystem(SubsystemTrial(0)).Intn(101)
		b := rng2.ForSubsystem(SubsystemTrial(0)).Intn(101)
		if a != b {
			t.Errorf("Draw %d: got %v and %v, want identical", i, a, b)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// BDD: Drawing from trial 0 doesn't affect trial 1
	rngA := NewPartitionedRNG(NewSimulationKey(42))
	rngB := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemTrial(0)).Float64()
	}
	for i := 0; i < 5; i++ {
		rngB.ForSubsystem(SubsystemTrial(1)).Float64()
	}

	aFirst := rngA.ForSubsystem(SubsystemTrial(1)).Float64()
	bSixth := rngB.ForSubsystem(SubsystemTrial(1)).Float64()

	fresh := NewPartitionedRNG(NewSimulationKey(42))
	expectedFirst := fresh.ForSubsystem(SubsystemTrial(1)).Float64()

	if aFirst != expectedFirst {
		t.Errorf("A's trial_1 first value = %v, want %v (isolation broken)", aFirst, expectedFirst)
	}
	if bSixth == expectedFirst {
		t.Error("B's 6th trial_1 value equals 1st value - unexpected")
	}
}

func TestPartitionedRNG_DerivedSeed(t *testing.T) {
	// BDD: every subsystem is seeded with master XOR fnv1a64(name)
	seed := int64(42)
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	direct := newRandFromSeed(seed ^ fnv1a64(SubsystemSingle))

	for i := 0; i < 10; i++ {
		got := rng.ForSubsystem(SubsystemSingle).Float64()
		want := direct.Float64()
		if got != want {
			t.Errorf("Value %d: partitioned = %v, direct = %v", i, got, want)
		}
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	// BDD: Same name returns same *rand.Rand instance
	rng := NewPartitionedRNG(NewSimulationKey(42))

	rng1 := rng.ForSubsystem(SubsystemSingle)
	rng2 := rng.ForSubsystem(SubsystemSingle)

	if rng1 != rng2 {
		t.Error("ForSubsystem returned different instances for same name")
	}
}

func TestPartitionedRNG_Release_RestartsStream(t *testing.T) {
	// BDD: a released stream starts over from its first value
	rng := NewPartitionedRNG(NewSimulationKey(42))
	first := rng.ForSubsystem(SubsystemTrial(3)).Float64()
	rng.ForSubsystem(SubsystemTrial(3)).Float64()

	rng.Release(SubsystemTrial(3))

	if len(rng.subsystems) != 0 {
		t.Errorf("After Release, have %d subsystems, want 0", len(rng.subsystems))
	}
	if again := rng.ForSubsystem(SubsystemTrial(3)).Float64(); again != first {
		t.Errorf("Released stream restarted at %v, want %v", again, first)
	}
}

func TestPartitionedRNG_Key(t *testing.T) {
	seed := int64(12345)
	rng := NewPartitionedRNG(NewSimulationKey(seed))

	if rng.Key() != SimulationKey(seed) {
		t.Errorf("Key() = %v, want %v", rng.Key(), seed)
	}
}

func TestPartitionedRNG_NegativeSeed(t *testing.T) {
	// BDD: MinInt64 seed works correctly
	rng := NewPartitionedRNG(NewSimulationKey(math.MinInt64))

	val := rng.ForSubsystem(SubsystemTrial(0)).Intn(101)
	if val < 0 || val > 100 {
		t.Errorf("Intn(101) returned %v, want [0, 100]", val)
	}
}

func TestPartitionedRNG_LazyInitialization(t *testing.T) {
	// BDD: Subsystems map is empty until ForSubsystem is called
	rng := NewPartitionedRNG(NewSimulationKey(42))

	if len(rng.subsystems) != 0 {
		t.Errorf("New PartitionedRNG has %d subsystems, want 0", len(rng.subsystems))
	}

	rng.ForSubsystem(SubsystemSingle)

	if len(rng.subsystems) != 1 {
		t.Errorf("After one ForSubsystem call, have %d subsystems, want 1", len(rng.subsystems))
	}
}

// === fnv1a64 Tests ===

func TestFnv1a64_Collision(t *testing.T) {
	// Different subsystem names should produce different hashes (spot check)
	names := []string{
		SubsystemSingle,
		"trial_0",
		"trial_1",
		"trial_10",
		"trial_100",
		"",
	}

	hashes := make(map[int64]string)
	for _, name := range names {
		h := fnv1a64(name)
		if existing, ok := hashes[h]; ok {
			t.Errorf("Hash collision: %q and %q both hash to %d", name, existing, h)
		}
		hashes[h] = name
	}
}

// === SubsystemTrial Tests ===

func TestSubsystemTrial(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{0, "trial_0"},
		{1, "trial_1"},
		{999, "trial_999"},
	}

	for _, tt := range tests {
		if got := SubsystemTrial(tt.id); got != tt.want {
			t.Errorf("SubsystemTrial(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

// === Benchmark ===

func BenchmarkPartitionedRNG_ForSubsystem_CacheHit(b *testing.B) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	rng.ForSubsystem(SubsystemSingle)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rng.ForSubsystem(SubsystemSingle)
	}
}

// === Helper ===

// newRandFromSeed creates a *rand.Rand with the given seed.
func newRandFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
