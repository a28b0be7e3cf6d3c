package stock

import (
	"fmt"
	"sync/atomic"
	"time"
)

// StockEntry is one restocking event. Cost is the total spend for the
// entry, not a unit cost; nothing links it to quantity.
type StockEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Cost      int       `json:"cost"`
}

// FrequentStockItem is a learned shortcut for fast re-entry of a
// recurring ingredient. Keyed by name, deduplicated on insert.
type FrequentStockItem struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// DefaultUnit is used when the operator leaves the unit blank.
const DefaultUnit = "個"

var lastIDMilli atomic.Int64

// NewID derives a unique entry id from the wall clock.
func NewID(now time.Time) string {
	ms := now.UnixMilli()
	for {
		last := lastIDMilli.Load()
		if ms <= last {
			ms = last + 1
		}
		if lastIDMilli.CompareAndSwap(last, ms) {
			return fmt.Sprintf("stk-%d", ms)
		}
	}
}
