package sim

import "fmt"

// Item is one unit of payload. Items are values: the loader copies them into
// vehicles and never mutates them.
type Item struct {
	Name   string  // Manifest label (may be empty for synthetic items)
	Weight float64 // Payload weight, always positive
}

// NewItems builds unnamed items from raw weights.
func NewItems(weights ...float64) []Item {
	items := make([]Item, len(weights))
	for i, w := range weights {
		items[i] = Item{Name: fmt.Sprintf("item_%d", i), Weight: w}
	}
	return items
}

// TotalWeight sums the weights of items.
func TotalWeight(items []Item) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Weight
	}
	return total
}

func (it Item) String() string {
	return fmt.Sprintf("Item: (Name: %s, Weight: %v)", it.Name, it.Weight)
}
