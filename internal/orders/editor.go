package orders

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/HRU007/tofu-pos/internal/pos"
)

var (
	ErrNoSession   = errors.New("edit session not found")
	ErrItemMissing = errors.New("item not in working copy")
)

// EditSession is the Editing state of one order correction: a detached
// working copy of the record's items and timestamp. Nothing touches
// the ledger until Save; Cancel discards everything.
type EditSession struct {
	ID        string         `json:"session"`
	OrderID   string         `json:"orderId"`
	Timestamp time.Time      `json:"timestamp"`
	items     []pos.CartItem // working copy
}

// Items returns a value copy of the working set.
func (e *EditSession) Items() []pos.CartItem {
	return pos.CloneItems(e.items)
}

// Total is derived from the working copy on every read.
func (e *EditSession) Total() int {
	return RecomputeTotal(e.items)
}

func (e *EditSession) item(cartID int64) (pos.CartItem, bool) {
	for _, it := range e.items {
		if it.CartID == cartID {
			return it.Clone(), true
		}
	}
	return pos.CartItem{}, false
}

func (e *EditSession) upsert(item pos.CartItem) {
	for i, it := range e.items {
		if it.CartID == item.CartID {
			e.items[i] = item
			return
		}
	}
	e.items = append(e.items, item)
}

func (e *EditSession) remove(cartID int64) {
	kept := e.items[:0]
	for _, it := range e.items {
		if it.CartID != cartID {
			kept = append(kept, it)
		}
	}
	e.items = kept
}

// --------------------------------------------------
// Session lifecycle (Closed → Editing → Saved | Cancelled)
// --------------------------------------------------

// OpenEdit detaches a working copy of an order and hands back a
// session handle for the correction flow.
func (s *Service) OpenEdit(orderID string) (*EditSession, error) {
	order, err := s.repo.Get(orderID)
	if err != nil {
		return nil, err
	}

	session := &EditSession{
		ID:        uuid.New().String(),
		OrderID:   order.ID,
		Timestamp: order.Timestamp,
		items:     pos.CloneItems(order.Items),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session, nil
}

// Session looks up an open session.
func (s *Service) Session(id string) (*EditSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNoSession
	}
	return session, nil
}

// SetTimestamp moves the sale instant in the working copy.
func (s *Service) SetTimestamp(sessionID string, ts time.Time) error {
	session, err := s.Session(sessionID)
	if err != nil {
		return err
	}
	session.Timestamp = ts
	return nil
}

// AddSessionItem stages a brand-new line item through the builder, so
// it goes out priced like any other.
func (s *Service) AddSessionItem(sessionID string, builder *pos.Builder) (pos.CartItem, error) {
	session, err := s.Session(sessionID)
	if err != nil {
		return pos.CartItem{}, err
	}

	item, err := builder.Commit()
	if err != nil {
		return pos.CartItem{}, err
	}
	session.upsert(item)
	return item, nil
}

// EditSessionItem reconfigures one existing line item. The rebuilt
// item keeps its cart id, so identity is stable across edits.
func (s *Service) EditSessionItem(sessionID string, cartID int64, configure func(*pos.Builder)) (pos.CartItem, error) {
	session, err := s.Session(sessionID)
	if err != nil {
		return pos.CartItem{}, err
	}

	current, ok := session.item(cartID)
	if !ok {
		return pos.CartItem{}, ErrItemMissing
	}

	b := pos.EditBuilder(current)
	configure(b)

	item, err := b.Commit()
	if err != nil {
		return pos.CartItem{}, err
	}
	session.upsert(item)
	return item, nil
}

// RemoveSessionItem drops a line from the working copy.
func (s *Service) RemoveSessionItem(sessionID string, cartID int64) error {
	session, err := s.Session(sessionID)
	if err != nil {
		return err
	}
	session.remove(cartID)
	return nil
}

// SaveEdit recomputes the total from the working copy, replaces the
// ledger record wholesale, and closes the session.
func (s *Service) SaveEdit(sessionID string) (*OrderRecord, error) {
	session, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}

	updated := &OrderRecord{
		ID:          session.OrderID,
		Timestamp:   session.Timestamp,
		Items:       pos.CloneItems(session.items),
		TotalAmount: RecomputeTotal(session.items),
	}

	if err := s.repo.Update(updated); err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return updated, nil
}

// CancelEdit discards the working copy with zero effect on the ledger.
// Cancelling an unknown session is a no-op.
func (s *Service) CancelEdit(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}
