package orders

import (
	"testing"
	"time"

	"github.com/HRU007/tofu-pos/internal/catalog"
	"github.com/HRU007/tofu-pos/internal/pos"
)

func buildItem(t *testing.T, dishID string, addons map[string]int) pos.CartItem {
	t.Helper()
	dish, ok := catalog.DishByID(dishID)
	if !ok {
		t.Fatalf("dish %s not found", dishID)
	}
	b := pos.NewBuilder()
	b.SelectDish(dish)
	for id, qty := range addons {
		b.AdjustAddon(id, qty)
	}
	item, err := b.Commit()
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	return item
}

func TestSubmit_AppendsExactlyOne(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	items := []pos.CartItem{
		buildItem(t, "m1", map[string]int{"a1": 2, "a10": 1}), // 170
		buildItem(t, "m4", nil),                               // 60
	}

	order, err := service.Submit(items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.TotalAmount != 230 {
		t.Errorf("expected totalAmount 230, got %d", order.TotalAmount)
	}
	if order.ID == "" {
		t.Error("expected an id")
	}

	records, _ := repo.List()
	if len(records) != 1 {
		t.Fatalf("expected ledger length 1, got %d", len(records))
	}
	if len(records[0].Items) != 2 {
		t.Fatalf("expected 2 items in record, got %d", len(records[0].Items))
	}
}

func TestSubmit_Empty(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	if _, err := service.Submit(nil); err != pos.ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSubmit_RecordIsDetachedFromCartItems(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	item := buildItem(t, "m1", map[string]int{"a1": 1})
	if _, err := service.Submit([]pos.CartItem{item}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the caller's item after submit must not reach history.
	item.Addons["a1"] = 50

	records, _ := repo.List()
	if records[0].Items[0].Addons["a1"] != 1 {
		t.Error("ledger record shares state with submitted cart item")
	}
}

func TestDelete_AbsentIsNoop(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	if _, err := service.Submit([]pos.CartItem{buildItem(t, "m4", nil)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.Delete("ord-does-not-exist"); err != nil {
		t.Fatalf("delete of absent id should be a no-op, got %v", err)
	}

	records, _ := repo.List()
	if len(records) != 1 {
		t.Fatalf("no-op delete changed ledger length: %d", len(records))
	}
}

func TestListRecentFirst_StableTiebreak(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	first := &OrderRecord{ID: "ord-1", Timestamp: ts, Items: []pos.CartItem{}}
	second := &OrderRecord{ID: "ord-2", Timestamp: ts, Items: []pos.CartItem{}}
	later := &OrderRecord{ID: "ord-3", Timestamp: ts.Add(time.Hour), Items: []pos.CartItem{}}

	for _, o := range []*OrderRecord{first, second, later} {
		if err := repo.Append(o); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	records, err := service.ListRecentFirst()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := []string{records[0].ID, records[1].ID, records[2].ID}
	want := []string{"ord-3", "ord-1", "ord-2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestNewID_UniquePerCall(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID(now)
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
