package orders

import "errors"

var ErrNotFound = errors.New("order not found")

// InMemoryRepository keeps the ledger in process memory. Used by tests
// and when running without a database.
type InMemoryRepository struct {
	records []*OrderRecord
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Append(order *OrderRecord) error {
	r.records = append(r.records, order.Clone())
	return nil
}

func (r *InMemoryRepository) List() ([]*OrderRecord, error) {
	out := make([]*OrderRecord, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Clone()
	}
	return out, nil
}

func (r *InMemoryRepository) Get(id string) (*OrderRecord, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			return rec.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) Update(order *OrderRecord) error {
	for i, rec := range r.records {
		if rec.ID == order.ID {
			r.records[i] = order.Clone()
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Delete(id string) error {
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return nil
}
