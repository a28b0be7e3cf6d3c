package stock

// Repository defines the stock ledger and frequent-item storage.
//
// List returns entries in insertion order. Delete of an absent id is a
// no-op. AddFrequent deduplicates by name.
type Repository interface {
	Append(entry *StockEntry) error
	List() ([]*StockEntry, error)
	Get(id string) (*StockEntry, error)
	Update(entry *StockEntry) error
	Delete(id string) error

	ListFrequent() ([]FrequentStockItem, error)
	AddFrequent(item FrequentStockItem) error
}
