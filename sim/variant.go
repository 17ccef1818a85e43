package sim

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownVariant is returned by ParseVariant for unrecognized names.
var ErrUnknownVariant = errors.New("unknown vehicle variant")

// Variant selects one of the fixed vehicle configurations.
type Variant string

const (
	VariantGeneric Variant = "generic" // Never fails; used as a baseline
	VariantTypeA   Variant = "u1"
	VariantTypeB   Variant = "u2"
)

// VehicleSpec holds the constants that distinguish one variant from another.
// Fail rates are percentages in [0, 100].
type VehicleSpec struct {
	Cost           float64
	BaseLoad       float64 // Empty weight, counted against MaxCapacity
	MaxCapacity    float64
	LaunchFailRate float64
	LandFailRate   float64
}

// PayloadMargin is the heaviest single item a fresh vehicle can take.
func (s VehicleSpec) PayloadMargin() float64 {
	return s.MaxCapacity - s.BaseLoad
}

var variantSpecs = map[Variant]VehicleSpec{
	VariantGeneric: {Cost: 10.0, BaseLoad: 8000, MaxCapacity: 10000, LaunchFailRate: 0.0, LandFailRate: 0.0},
	VariantTypeA:   {Cost: 100_000_000.0, BaseLoad: 10000, MaxCapacity: 18000, LaunchFailRate: 5.0, LandFailRate: 1.0},
	VariantTypeB:   {Cost: 120_000_000.0, BaseLoad: 18000, MaxCapacity: 29000, LaunchFailRate: 4.0, LandFailRate: 8.0},
}

var variantModels = map[Variant]FailureModel{
	VariantGeneric: NeverFails{},
	VariantTypeA:   ScaledThreshold{},
	VariantTypeB:   ScaledThreshold{},
}

var variantAliases = map[string]Variant{
	"generic": VariantGeneric,
	"rocket":  VariantGeneric,
	"u1":      VariantTypeA,
	"type-a":  VariantTypeA,
	"u2":      VariantTypeB,
	"type-b":  VariantTypeB,
}

// Spec returns the constants for v. Panics on an unknown variant; use
// ParseVariant at the boundary.
func (v Variant) Spec() VehicleSpec {
	spec, ok := variantSpecs[v]
	if !ok {
		panic(fmt.Sprintf("unknown vehicle variant %q", string(v)))
	}
	return spec
}

// Model returns the failure model for v.
func (v Variant) Model() FailureModel {
	if m, ok := variantModels[v]; ok {
		return m
	}
	panic(fmt.Sprintf("unknown vehicle variant %q", string(v)))
}

func (v Variant) String() string { return string(v) }

// IsValidVariant returns true if name (or one of its aliases) names a variant.
func IsValidVariant(name string) bool {
	_, ok := variantAliases[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// ParseVariant resolves a CLI or config spelling to a Variant.
func ParseVariant(name string) (Variant, error) {
	v, ok := variantAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w %q; valid: %s", ErrUnknownVariant, name, strings.Join(ValidVariantNames(), ", "))
	}
	return v, nil
}

// ValidVariantNames returns every accepted spelling, sorted.
func ValidVariantNames() []string {
	names := make([]string, 0, len(variantAliases))
	for name := range variantAliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
