package analytics

import (
	"testing"
	"time"

	"github.com/HRU007/tofu-pos/internal/catalog"
	"github.com/HRU007/tofu-pos/internal/orders"
	"github.com/HRU007/tofu-pos/internal/pos"
	"github.com/HRU007/tofu-pos/internal/stock"
)

func orderAt(t *testing.T, ts time.Time, dishIDs ...string) *orders.OrderRecord {
	t.Helper()
	var items []pos.CartItem
	for _, id := range dishIDs {
		dish, ok := catalog.DishByID(id)
		if !ok {
			t.Fatalf("dish %s not found", id)
		}
		b := pos.NewBuilder()
		b.SelectDish(dish)
		item, err := b.Commit()
		if err != nil {
			t.Fatalf("commit failed: %v", err)
		}
		items = append(items, item)
	}
	return &orders.OrderRecord{
		ID:          orders.NewID(ts),
		Timestamp:   ts,
		Items:       items,
		TotalAmount: orders.RecomputeTotal(items),
	}
}

func newFixture(t *testing.T, now time.Time) (*Service, *orders.InMemoryRepository, *stock.InMemoryRepository) {
	t.Helper()
	orderRepo := orders.NewInMemoryRepository()
	stockRepo := stock.NewInMemoryRepository()
	service := NewService(orderRepo, stockRepo)
	service.now = func() time.Time { return now }
	return service, orderRepo, stockRepo
}

func TestSalesSummary_RevenueAndVolume(t *testing.T) {
	now := time.Date(2024, 3, 15, 20, 0, 0, 0, time.Local)
	service, orderRepo, _ := newFixture(t, now)

	today := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	lastWeek := time.Date(2024, 3, 8, 12, 0, 0, 0, time.Local)
	orderRepo.Append(orderAt(t, today, "m1", "m4"))   // 160, 2 items
	orderRepo.Append(orderAt(t, today, "m1"))         // 100, 1 item
	orderRepo.Append(orderAt(t, lastWeek, "m2"))      // outside "today"

	summary, err := service.SalesSummary(Range{Preset: "today"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalRevenue != 260 {
		t.Errorf("expected revenue 260, got %d", summary.TotalRevenue)
	}
	if summary.TotalCount != 3 {
		t.Errorf("expected 3 items sold, got %d", summary.TotalCount)
	}
	if len(summary.Orders) != 2 {
		t.Errorf("expected 2 filtered orders, got %d", len(summary.Orders))
	}
}

func TestSalesSummary_RankingFirstSeenTiebreak(t *testing.T) {
	now := time.Date(2024, 3, 15, 20, 0, 0, 0, time.Local)
	service, orderRepo, _ := newFixture(t, now)

	ts := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	// 綜合煲 x2, then 麻辣招牌 x2 and 麻辣總匯 x1.
	orderRepo.Append(orderAt(t, ts, "m4", "m1"))
	orderRepo.Append(orderAt(t, ts, "m4", "m1", "m2"))

	summary, err := service.SalesSummary(Range{Preset: "today"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summary.Products) != 3 {
		t.Fatalf("expected 3 ranked products, got %d", len(summary.Products))
	}
	// Equal counts keep first-seen order: 綜合煲 before 麻辣招牌.
	if summary.Products[0].Name != "綜合煲" || summary.Products[1].Name != "麻辣招牌" {
		t.Errorf("tie not broken by first-seen order: %v", summary.Products)
	}
	if summary.Products[2].Name != "麻辣總匯" || summary.Products[2].Count != 1 {
		t.Errorf("unexpected tail of ranking: %v", summary.Products)
	}
}

func TestStockSummary_UnitFromFirstSeen(t *testing.T) {
	now := time.Date(2024, 3, 15, 20, 0, 0, 0, time.Local)
	service, _, stockRepo := newFixture(t, now)

	stockRepo.Append(&stock.StockEntry{ID: "stk-1", Timestamp: now, Name: "高麗菜", Quantity: 2, Unit: "顆", Cost: 100})
	stockRepo.Append(&stock.StockEntry{ID: "stk-2", Timestamp: now, Name: "高麗菜", Quantity: 3, Unit: "箱", Cost: 200})
	stockRepo.Append(&stock.StockEntry{ID: "stk-3", Timestamp: now, Name: "豆卷", Quantity: 1, Unit: "包", Cost: 50})

	summary, err := service.StockSummary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalCost != 350 {
		t.Errorf("expected total cost 350, got %d", summary.TotalCost)
	}
	if len(summary.Items) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(summary.Items))
	}
	cabbage := summary.Items[0]
	if cabbage.Name != "高麗菜" || cabbage.Quantity != 5 || cabbage.Unit != "顆" {
		t.Errorf("expected cumulative 5 顆 (unit from first entry), got %+v", cabbage)
	}
}

func TestMonthlyFinance_CalendarMonthOnly(t *testing.T) {
	// Early in the month: a 30-day window would reach into February.
	now := time.Date(2024, 3, 3, 12, 0, 0, 0, time.Local)
	service, orderRepo, stockRepo := newFixture(t, now)

	inMonth := time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local)
	prevMonth := time.Date(2024, 2, 28, 10, 0, 0, 0, time.Local)

	orderRepo.Append(orderAt(t, inMonth, "m1"))    // 100 income
	orderRepo.Append(orderAt(t, prevMonth, "m1"))  // excluded
	stockRepo.Append(&stock.StockEntry{ID: "stk-1", Timestamp: inMonth, Name: "鴨血", Quantity: 10, Unit: "片", Cost: 60})
	stockRepo.Append(&stock.StockEntry{ID: "stk-2", Timestamp: prevMonth, Name: "鴨血", Quantity: 10, Unit: "片", Cost: 999})

	snap, err := service.MonthlyFinance()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.Income != 100 || snap.Expense != 60 || snap.Profit != 40 {
		t.Errorf("expected 100/60/40, got %+v", snap)
	}
}
