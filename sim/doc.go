// Package sim provides the core Monte Carlo cost model for cargo delivery.
//
// # Reading Guide
//
// Start with these files to understand the model:
//   - vehicle.go: Vehicle state (base load, current load, capacity) and launch/land
//   - loader.go: Greedy first-fit packing of items into a Fleet
//   - mission.go: Retry-until-success flight of a Fleet and cost accounting
//   - driver.go: Repeated trials and the averaged Estimate
//
// # Randomness
//
// Every draw goes through a DrawSource. The Driver hands each trial its own
// stream from a PartitionedRNG, so a given seed reproduces every trial cost
// exactly. Tests inject fixed sources directly into Vehicle and MissionRunner.
//
// # Observation
//
// MissionRunner and Driver report each attempt and each finished trial to a
// Recorder. Implementations:
//   - Metrics (this package): in-memory counters printed by the CLI
//   - sim/trace/: per-attempt decision trace and summary
//   - sim/telemetry/: Prometheus counters and histograms
//
// Manifest parsing lives in sim/manifest/.
package sim
