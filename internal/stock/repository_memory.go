package stock

import "errors"

var ErrNotFound = errors.New("stock entry not found")

// InMemoryRepository keeps both ledgers in process memory. Used by
// tests and when running without a database. It starts with the same
// frequent-item defaults the schema seeds.
type InMemoryRepository struct {
	entries  []*StockEntry
	frequent []FrequentStockItem
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		frequent: []FrequentStockItem{
			{Name: "高麗菜", Unit: "顆"},
			{Name: "豆卷", Unit: "包"},
		},
	}
}

func (r *InMemoryRepository) Append(entry *StockEntry) error {
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *InMemoryRepository) List() ([]*StockEntry, error) {
	out := make([]*StockEntry, len(r.entries))
	for i, e := range r.entries {
		cp := *e
		out[i] = &cp
	}
	return out, nil
}

func (r *InMemoryRepository) Get(id string) (*StockEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) Update(entry *StockEntry) error {
	for i, e := range r.entries {
		if e.ID == entry.ID {
			cp := *entry
			r.entries[i] = &cp
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Delete(id string) error {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *InMemoryRepository) ListFrequent() ([]FrequentStockItem, error) {
	out := make([]FrequentStockItem, len(r.frequent))
	copy(out, r.frequent)
	return out, nil
}

func (r *InMemoryRepository) AddFrequent(item FrequentStockItem) error {
	for _, f := range r.frequent {
		if f.Name == item.Name {
			return nil
		}
	}
	r.frequent = append(r.frequent, item)
	return nil
}
