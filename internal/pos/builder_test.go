package pos

import (
	"math/rand"
	"testing"

	"github.com/HRU007/tofu-pos/internal/catalog"
)

func TestCommit_WithoutDish(t *testing.T) {
	b := NewBuilder()
	if _, err := b.Commit(); err != ErrNoDishSelected {
		t.Fatalf("expected ErrNoDishSelected, got %v", err)
	}
}

func TestCommit_PricesItem(t *testing.T) {
	dish, _ := catalog.DishByID("m1")

	b := NewBuilder()
	b.SelectDish(dish)
	b.AdjustAddon("a1", 2)
	b.AdjustAddon("a10", 1)

	item, err := b.Commit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.TotalPrice != 170 {
		t.Errorf("expected total 170, got %d", item.TotalPrice)
	}
	if item.Spice != catalog.DefaultSpice {
		t.Errorf("expected default spice %q, got %q", catalog.DefaultSpice, item.Spice)
	}
	if item.CartID == 0 {
		t.Error("expected a fresh cart id")
	}
}

func TestSelectDish_ResetsSelection(t *testing.T) {
	first, _ := catalog.DishByID("m1")
	second, _ := catalog.DishByID("m2")

	b := NewBuilder()
	b.SelectDish(first)
	b.SelectSpice("大辣")
	b.AdjustAddon("a3", 4)

	b.SelectDish(second)

	item, err := b.Commit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Spice != catalog.DefaultSpice {
		t.Errorf("spice not reset, got %q", item.Spice)
	}
	if len(item.Addons) != 0 {
		t.Errorf("addons not reset, got %v", item.Addons)
	}
	if item.TotalPrice != second.Price {
		t.Errorf("expected bare dish price %d, got %d", second.Price, item.TotalPrice)
	}
}

func TestAdjustAddon_NeverStoresZero(t *testing.T) {
	dish, _ := catalog.DishByID("m3")

	b := NewBuilder()
	b.SelectDish(dish)

	rng := rand.New(rand.NewSource(42))
	ids := []string{"a1", "a2", "a3", "a4", "a5"}
	for i := 0; i < 500; i++ {
		b.AdjustAddon(ids[rng.Intn(len(ids))], rng.Intn(7)-3)
		for id, qty := range b.Addons() {
			if qty <= 0 {
				t.Fatalf("addon map holds non-positive entry %s=%d", id, qty)
			}
		}
	}
}

func TestAdjustAddon_ZeroDeltaIsIdempotent(t *testing.T) {
	dish, _ := catalog.DishByID("m1")

	b := NewBuilder()
	b.SelectDish(dish)
	b.AdjustAddon("a1", 2)

	before, _ := b.Commit()
	for i := 0; i < 10; i++ {
		b.AdjustAddon("a1", 0)
	}
	after, _ := b.Commit()

	if before.TotalPrice != after.TotalPrice || len(after.Addons) != 1 || after.Addons["a1"] != 2 {
		t.Errorf("zero delta changed state: before=%+v after=%+v", before, after)
	}
}

func TestAdjustAddon_ReduceToZeroRemovesKey(t *testing.T) {
	dish, _ := catalog.DishByID("m1")

	b := NewBuilder()
	b.SelectDish(dish)
	b.AdjustAddon("a4", 2)
	b.AdjustAddon("a4", -1)
	b.AdjustAddon("a4", -1)

	if _, ok := b.Addons()["a4"]; ok {
		t.Error("a4 should have been removed at quantity zero")
	}
}

func TestEditBuilder_PreservesCartID(t *testing.T) {
	dish, _ := catalog.DishByID("m1")

	b := NewBuilder()
	b.SelectDish(dish)
	original, _ := b.Commit()

	eb := EditBuilder(original)
	eb.AdjustAddon("a1", 1)
	edited, err := eb.Commit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if edited.CartID != original.CartID {
		t.Errorf("edit changed identity: %d != %d", edited.CartID, original.CartID)
	}
	if edited.TotalPrice != original.TotalPrice+30 {
		t.Errorf("expected recomputed total %d, got %d", original.TotalPrice+30, edited.TotalPrice)
	}
}

func TestNextCartID_Monotonic(t *testing.T) {
	prev := nextCartID()
	for i := 0; i < 1000; i++ {
		id := nextCartID()
		if id <= prev {
			t.Fatalf("cart ids not strictly increasing: %d then %d", prev, id)
		}
		prev = id
	}
}
