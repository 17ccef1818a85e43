package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultMaxVehicles is the fleet size past which the loader gives up.
const DefaultMaxVehicles = 100

// ErrInfeasiblePacking means the manifest cannot be packed into vehicles of
// the requested variant. It is an expected outcome for adversarial manifests.
var ErrInfeasiblePacking = errors.New("infeasible packing")

// Fleet is the ordered list of vehicles produced by the loader.
type Fleet []*Vehicle

// TotalCost is the cost of flying every vehicle once.
func (f Fleet) TotalCost() float64 {
	total := 0.0
	for _, vh := range f {
		total += vh.Spec.Cost
	}
	return total
}

// Items flattens the fleet's payload in vehicle order.
func (f Fleet) Items() []Item {
	var items []Item
	for _, vh := range f {
		items = append(items, vh.Items...)
	}
	return items
}

// Loader packs items into vehicles with single-pass greedy first-fit.
type Loader struct {
	// MaxVehicles bounds the fleet. Packing aborts when a new vehicle is
	// needed while more than MaxVehicles have already been filled.
	// Zero means DefaultMaxVehicles.
	MaxVehicles int
	// Precheck rejects items heavier than a fresh vehicle's payload margin
	// before any vehicle is filled.
	Precheck bool
}

// NewLoader returns a loader with the default vehicle cap and the
// feasibility pre-check enabled.
func NewLoader() *Loader {
	return &Loader{MaxVehicles: DefaultMaxVehicles, Precheck: true}
}

func (l *Loader) maxVehicles() int {
	if l.MaxVehicles <= 0 {
		return DefaultMaxVehicles
	}
	return l.MaxVehicles
}

// Pack fills vehicles of variant v one at a time. Each vehicle takes every
// remaining item that still fits, scanning in manifest order. items is not
// modified. On ErrInfeasiblePacking the returned fleet is nil.
func (l *Loader) Pack(items []Item, v Variant) (Fleet, error) {
	spec := v.Spec()
	if l.Precheck {
		for i, it := range items {
			if it.Weight > spec.PayloadMargin() {
				return nil, fmt.Errorf("%w: item %d (%s, weight %v) exceeds %s payload margin %v",
					ErrInfeasiblePacking, i, it.Name, it.Weight, v, spec.PayloadMargin())
			}
		}
	}

	pending := append([]Item(nil), items...)
	fleet := Fleet{}
	for len(pending) > 0 {
		if len(fleet) > l.maxVehicles() {
			logrus.Warnf("manifest needs more than %d %s vehicles; %d items left unpacked", l.maxVehicles(), v, len(pending))
			return nil, fmt.Errorf("%w: more than %d %s vehicles required", ErrInfeasiblePacking, l.maxVehicles(), v)
		}
		vh := NewVehicle(v)
		rest := pending[:0]
		for _, it := range pending {
			if !vh.Load(it) {
				rest = append(rest, it)
			}
		}
		pending = rest
		fleet = append(fleet, vh)
	}
	logrus.Debugf("packed %d items into %d %s vehicles", len(items), len(fleet), v)
	return fleet, nil
}
