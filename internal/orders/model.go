package orders

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/HRU007/tofu-pos/internal/pos"
)

// OrderRecord is a completed sale. Immutable through the sale flow;
// the admin correction flow may replace it wholesale via Update.
//
// TotalAmount always equals the sum of item totals. It is recomputed
// by RecomputeTotal at every mutation site and nowhere else.
type OrderRecord struct {
	ID          string         `json:"id"`
	Timestamp   time.Time      `json:"timestamp"`
	Items       []pos.CartItem `json:"items"`
	TotalAmount int            `json:"totalAmount"`
}

// Clone returns a deep value copy.
func (o *OrderRecord) Clone() *OrderRecord {
	return &OrderRecord{
		ID:          o.ID,
		Timestamp:   o.Timestamp,
		Items:       pos.CloneItems(o.Items),
		TotalAmount: o.TotalAmount,
	}
}

// RecomputeTotal is the single entry point for the order total
// invariant: totalAmount == Σ items[i].totalPrice.
func RecomputeTotal(items []pos.CartItem) int {
	total := 0
	for _, it := range items {
		total += it.TotalPrice
	}
	return total
}

var lastIDMilli atomic.Int64

// NewID derives a unique order id from the wall clock, bumping past
// the previous id when two sales land in the same millisecond.
func NewID(now time.Time) string {
	ms := now.UnixMilli()
	for {
		last := lastIDMilli.Load()
		if ms <= last {
			ms = last + 1
		}
		if lastIDMilli.CompareAndSwap(last, ms) {
			return fmt.Sprintf("ord-%d", ms)
		}
	}
}
