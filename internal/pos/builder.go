package pos

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/HRU007/tofu-pos/internal/catalog"
)

var ErrNoDishSelected = errors.New("no dish selected")

// lastCartID guards cart id uniqueness when two commits land in the
// same nanosecond tick.
var lastCartID atomic.Int64

func nextCartID() int64 {
	for {
		id := time.Now().UnixNano()
		last := lastCartID.Load()
		if id <= last {
			id = last + 1
		}
		if lastCartID.CompareAndSwap(last, id) {
			return id
		}
	}
}

// Builder stages one dish configuration before it becomes a CartItem.
// It backs both the "add to order" flow and the item sub-editor of the
// order correction flow.
type Builder struct {
	dish   *catalog.Dish
	spice  string
	addons map[string]int

	// editID is the preserved cart id in edit mode, zero in add mode.
	editID int64
}

// NewBuilder starts an empty add-mode configuration.
func NewBuilder() *Builder {
	return &Builder{
		spice:  catalog.DefaultSpice,
		addons: make(map[string]int),
	}
}

// EditBuilder starts from an existing item. Commit keeps the item's
// cart id so identity stays stable across edits.
func EditBuilder(item CartItem) *Builder {
	dish := item.Dish
	b := &Builder{
		dish:   &dish,
		spice:  item.Spice,
		addons: make(map[string]int, len(item.Addons)),
		editID: item.CartID,
	}
	for id, qty := range item.Addons {
		b.addons[id] = qty
	}
	return b
}

// SelectDish opens the configurator for a dish, resetting spice to the
// default and clearing all addons.
func (b *Builder) SelectDish(dish catalog.Dish) {
	b.dish = &dish
	b.spice = catalog.DefaultSpice
	b.addons = make(map[string]int)
}

// SelectSpice sets the spice level. Unknown ids are ignored, exactly
// one level stays selected at all times.
func (b *Builder) SelectSpice(id string) {
	if _, ok := catalog.SpiceByID(id); ok {
		b.spice = id
	}
}

// AdjustAddon applies a delta to one addon quantity, clamped at zero.
// A quantity of zero removes the key entirely; the map never stores
// zero-quantity entries.
func (b *Builder) AdjustAddon(id string, delta int) {
	qty := b.addons[id] + delta
	if qty <= 0 {
		delete(b.addons, id)
		return
	}
	b.addons[id] = qty
}

// Addons exposes a copy of the staged addon map.
func (b *Builder) Addons() map[string]int {
	out := make(map[string]int, len(b.addons))
	for id, qty := range b.addons {
		out[id] = qty
	}
	return out
}

// Commit freezes the staged selection into a priced CartItem. Without
// a selected dish there is nothing to commit.
func (b *Builder) Commit() (CartItem, error) {
	if b.dish == nil {
		return CartItem{}, ErrNoDishSelected
	}

	id := b.editID
	if id == 0 {
		id = nextCartID()
	}

	item := CartItem{
		CartID:     id,
		Dish:       *b.dish,
		Spice:      b.spice,
		Addons:     b.Addons(),
		TotalPrice: catalog.ItemTotal(*b.dish, b.addons),
	}
	return item, nil
}
