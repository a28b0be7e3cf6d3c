package pos

import "github.com/HRU007/tofu-pos/internal/catalog"

// CartItem is one priced, configured dish instance.
//
// TotalPrice is denormalized: it is written exactly once per mutation,
// always through catalog.ItemTotal, never read stale. Addons never
// holds a zero-quantity entry.
type CartItem struct {
	CartID     int64          `json:"cartId"`
	Dish       catalog.Dish   `json:"dish"`
	Spice      string         `json:"spice"`
	Addons     map[string]int `json:"addons"`
	TotalPrice int            `json:"totalPrice"`
}

// Clone returns a value copy with its own addon map, so holders of the
// copy cannot reach back into the original.
func (i CartItem) Clone() CartItem {
	out := i
	out.Addons = make(map[string]int, len(i.Addons))
	for id, qty := range i.Addons {
		out.Addons[id] = qty
	}
	return out
}

// CloneItems deep-copies a slice of items.
func CloneItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	for idx, it := range items {
		out[idx] = it.Clone()
	}
	return out
}
