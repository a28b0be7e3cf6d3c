package catalog

// ItemTotal prices one configured dish: base price plus one line per
// addon entry. PURE function, recomputed on every call.
//
// An addon id that does not resolve contributes zero. The catalog is
// closed and static, so an unknown id is stale data, not a reason to
// fail the whole item.
func ItemTotal(dish Dish, addons map[string]int) int {
	total := dish.Price
	for id, qty := range addons {
		addon, ok := AddonByID(id)
		if !ok {
			continue
		}
		total += addon.Price * qty
	}
	return total
}
