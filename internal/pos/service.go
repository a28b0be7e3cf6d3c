package pos

import (
	"errors"
	"sync"

	"github.com/HRU007/tofu-pos/internal/catalog"
)

var ErrUnknownDish = errors.New("unknown dish")

// Service owns the single in-progress cart. One operator, one device:
// the mutex only protects the HTTP surface, there is no multi-writer
// scenario in the domain.
type Service struct {
	mu   sync.Mutex
	cart *Cart
}

func NewService() *Service {
	return &Service{cart: NewCart()}
}

// AddItem stages a full dish configuration through the builder and
// commits it into the cart.
func (s *Service) AddItem(dishID, spice string, addons map[string]int) (CartItem, error) {
	dish, ok := catalog.DishByID(dishID)
	if !ok {
		return CartItem{}, ErrUnknownDish
	}

	b := NewBuilder()
	b.SelectDish(dish)
	b.SelectSpice(spice)
	for id, qty := range addons {
		b.AdjustAddon(id, qty)
	}

	item, err := b.Commit()
	if err != nil {
		return CartItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(item)
	return item, nil
}

func (s *Service) RemoveItem(cartID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(cartID)
}

// View returns the current items and total.
func (s *Service) View() ([]CartItem, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items(), s.cart.Total()
}

// Checkout snapshots and clears the cart in one step.
func (s *Service) Checkout() ([]CartItem, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Checkout()
}

// Restore puts a checkout snapshot back, used when the ledger append
// behind a submission fails.
func (s *Service) Restore(items []CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		s.cart.Add(it)
	}
}
