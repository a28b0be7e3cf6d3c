package pos

import "errors"

var ErrEmptyCart = errors.New("cart is empty")

// Cart is the ordered set of items for one in-progress transaction. It
// lives only between "start order" and "submit or abandon".
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add appends an item.
func (c *Cart) Add(item CartItem) {
	c.items = append(c.items, item)
}

// Remove drops the item with the given cart id. Removing an absent id
// is a no-op; the id always comes from a rendered cart line.
func (c *Cart) Remove(cartID int64) {
	kept := c.items[:0]
	for _, it := range c.items {
		if it.CartID != cartID {
			kept = append(kept, it)
		}
	}
	c.items = kept
}

// Items returns a value copy of the current contents.
func (c *Cart) Items() []CartItem {
	return CloneItems(c.items)
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Total is recomputed on every read. Cheap, and can never desync from
// the items.
func (c *Cart) Total() int {
	total := 0
	for _, it := range c.items {
		total += it.TotalPrice
	}
	return total
}

// Checkout takes an atomic snapshot of the cart and clears it. The
// snapshot owns its items by value, so later cart activity cannot
// touch a submitted order.
func (c *Cart) Checkout() ([]CartItem, int, error) {
	if len(c.items) == 0 {
		return nil, 0, ErrEmptyCart
	}
	items := CloneItems(c.items)
	total := c.Total()
	c.items = nil
	return items, total, nil
}
