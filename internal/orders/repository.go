package orders

// Repository defines the order ledger storage operations.
//
// List returns records in insertion order; for equal timestamps that
// order is the stable tiebreak. Update replaces the matching record
// wholesale and trusts the caller to have recomputed the total.
// Delete of an absent id is a no-op.
type Repository interface {
	Append(order *OrderRecord) error
	List() ([]*OrderRecord, error)
	Get(id string) (*OrderRecord, error)
	Update(order *OrderRecord) error
	Delete(id string) error
}
