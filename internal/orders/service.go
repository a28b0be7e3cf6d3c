package orders

import (
	"sort"
	"sync"
	"time"

	"github.com/HRU007/tofu-pos/internal/pos"
)

// Service owns the order ledger and the open edit sessions.
type Service struct {
	repo Repository
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]*EditSession
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		now:      time.Now,
		sessions: make(map[string]*EditSession),
	}
}

// Submit freezes a checked-out cart into a new ledger record. The
// total is recomputed here rather than trusted from the cart.
func (s *Service) Submit(items []pos.CartItem) (*OrderRecord, error) {
	if len(items) == 0 {
		return nil, pos.ErrEmptyCart
	}

	now := s.now()
	order := &OrderRecord{
		ID:          NewID(now),
		Timestamp:   now,
		Items:       pos.CloneItems(items),
		TotalAmount: RecomputeTotal(items),
	}

	if err := s.repo.Append(order); err != nil {
		return nil, err
	}
	return order, nil
}

// List returns the ledger in insertion order.
func (s *Service) List() ([]*OrderRecord, error) {
	return s.repo.List()
}

// ListRecentFirst sorts for presentation: newest sale first, insertion
// order as the stable tiebreak for equal timestamps.
func (s *Service) ListRecentFirst() ([]*OrderRecord, error) {
	records, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	return records, nil
}

func (s *Service) Get(id string) (*OrderRecord, error) {
	return s.repo.Get(id)
}

// Delete removes a record; absent ids are a no-op.
func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}
