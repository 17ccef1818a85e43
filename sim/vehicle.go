package sim

import "fmt"

// Vehicle is a single launch vehicle being loaded and flown.
// CurrentLoad starts at the variant's base load and only grows through Load.
type Vehicle struct {
	Variant     Variant
	Spec        VehicleSpec
	CurrentLoad float64
	Items       []Item // Payload in load order

	model FailureModel
}

// NewVehicle creates an empty vehicle of the given variant.
func NewVehicle(v Variant) *Vehicle {
	spec := v.Spec()
	return &Vehicle{
		Variant:     v,
		Spec:        spec,
		CurrentLoad: spec.BaseLoad,
		model:       v.Model(),
	}
}

// CanCarry reports whether item fits without exceeding MaxCapacity.
func (vh *Vehicle) CanCarry(item Item) bool {
	return vh.CurrentLoad+item.Weight <= vh.Spec.MaxCapacity
}

// Load adds item to the vehicle. Returns false and leaves the vehicle
// unchanged if the item does not fit.
func (vh *Vehicle) Load(item Item) bool {
	if !vh.CanCarry(item) {
		return false
	}
	vh.CurrentLoad += item.Weight
	vh.Items = append(vh.Items, item)
	return true
}

// LoadRatio is CurrentLoad / MaxCapacity, base load included.
func (vh *Vehicle) LoadRatio() float64 {
	return vh.CurrentLoad / vh.Spec.MaxCapacity
}

// Payload is the carried weight excluding the base load.
func (vh *Vehicle) Payload() float64 {
	return vh.CurrentLoad - vh.Spec.BaseLoad
}

// Margin is the remaining capacity.
func (vh *Vehicle) Margin() float64 {
	return vh.Spec.MaxCapacity - vh.CurrentLoad
}

// Launch attempts a launch. Each call is an independent draw.
func (vh *Vehicle) Launch(src DrawSource) bool {
	return vh.failureModel().Succeeds(vh.Spec.LaunchFailRate, vh.LoadRatio(), src)
}

// Land attempts a landing. Each call is an independent draw.
func (vh *Vehicle) Land(src DrawSource) bool {
	return vh.failureModel().Succeeds(vh.Spec.LandFailRate, vh.LoadRatio(), src)
}

// failureModel falls back to the variant's model for vehicles built as literals.
func (vh *Vehicle) failureModel() FailureModel {
	if vh.model == nil {
		vh.model = vh.Variant.Model()
	}
	return vh.model
}

func (vh *Vehicle) String() string {
	return fmt.Sprintf("Vehicle: (Variant: %s, Load: %v/%v, Items: %d)", vh.Variant, vh.CurrentLoad, vh.Spec.MaxCapacity, len(vh.Items))
}
