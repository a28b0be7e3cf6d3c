package analytics

import (
	"sort"
	"time"

	"github.com/HRU007/tofu-pos/internal/orders"
	"github.com/HRU007/tofu-pos/internal/stock"
)

// Service computes read-only projections over both ledgers. It never
// mutates them; edits flow through the ledgers' own services.
type Service struct {
	orders orders.Repository
	stock  stock.Repository
	now    func() time.Time
}

func NewService(orderRepo orders.Repository, stockRepo stock.Repository) *Service {
	return &Service{orders: orderRepo, stock: stockRepo, now: time.Now}
}

// ProductCount is one row of the sales ranking.
type ProductCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SalesSummary is the analytics view over a filtered slice of the
// order ledger.
type SalesSummary struct {
	TotalRevenue int                   `json:"totalRevenue"`
	TotalCount   int                   `json:"totalCount"`
	Products     []ProductCount        `json:"products"`
	Orders       []*orders.OrderRecord `json:"orders"`
}

// SalesSummary filters the order ledger by the range and aggregates
// revenue, item volume and the per-product ranking. Ranking ties keep
// first-seen order, which is stable across calls.
func (s *Service) SalesSummary(r Range) (*SalesSummary, error) {
	records, err := s.orders.List()
	if err != nil {
		return nil, err
	}

	now := s.now()
	filtered := records[:0:0]
	for _, o := range records {
		if r.Contains(o.Timestamp, now) {
			filtered = append(filtered, o)
		}
	}

	summary := &SalesSummary{}
	counts := make(map[string]int)
	var order []string
	for _, o := range filtered {
		summary.TotalRevenue += o.TotalAmount
		summary.TotalCount += len(o.Items)
		for _, it := range o.Items {
			if _, seen := counts[it.Dish.Name]; !seen {
				order = append(order, it.Dish.Name)
			}
			counts[it.Dish.Name]++
		}
	}

	summary.Products = make([]ProductCount, 0, len(order))
	for _, name := range order {
		summary.Products = append(summary.Products, ProductCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(summary.Products, func(i, j int) bool {
		return summary.Products[i].Count > summary.Products[j].Count
	})

	// Newest first for the order list, insertion order as tiebreak.
	sorted := make([]*orders.OrderRecord, len(filtered))
	copy(sorted, filtered)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	summary.Orders = sorted

	return summary, nil
}

// IngredientTotal is the cumulative restocked quantity for one name.
// The unit comes from the first-seen entry of that name.
type IngredientTotal struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// StockSummary is the all-time expense view: total spend plus the
// per-ingredient cumulative quantities. Not range-filtered.
type StockSummary struct {
	TotalCost int               `json:"totalCost"`
	Items     []IngredientTotal `json:"items"`
}

func (s *Service) StockSummary() (*StockSummary, error) {
	entries, err := s.stock.List()
	if err != nil {
		return nil, err
	}

	summary := &StockSummary{}
	index := make(map[string]int)
	for _, e := range entries {
		summary.TotalCost += e.Cost
		i, seen := index[e.Name]
		if !seen {
			i = len(summary.Items)
			index[e.Name] = i
			summary.Items = append(summary.Items, IngredientTotal{Name: e.Name, Unit: e.Unit})
		}
		summary.Items[i].Quantity += e.Quantity
	}
	return summary, nil
}

// FinanceSnapshot is the current calendar month's income, expense and
// the difference. Recomputed on every call: there is no month-rollover
// event to react to.
type FinanceSnapshot struct {
	Income  int `json:"income"`
	Expense int `json:"expense"`
	Profit  int `json:"profit"`
}

func (s *Service) MonthlyFinance() (*FinanceSnapshot, error) {
	records, err := s.orders.List()
	if err != nil {
		return nil, err
	}
	entries, err := s.stock.List()
	if err != nil {
		return nil, err
	}

	now := s.now()
	snap := &FinanceSnapshot{}
	for _, o := range records {
		if sameMonth(o.Timestamp, now) {
			snap.Income += o.TotalAmount
		}
	}
	for _, e := range entries {
		if sameMonth(e.Timestamp, now) {
			snap.Expense += e.Cost
		}
	}
	snap.Profit = snap.Income - snap.Expense
	return snap, nil
}

// sameMonth compares calendar month and year on the operator's clock.
// A 30-day window would bleed across month boundaries; this must not.
func sameMonth(ts, now time.Time) bool {
	ts = ts.In(now.Location())
	return ts.Month() == now.Month() && ts.Year() == now.Year()
}
