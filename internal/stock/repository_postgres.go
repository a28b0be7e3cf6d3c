package stock

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Restocking events
// --------------------------------------------------
func (r *PostgresRepository) Append(entry *StockEntry) error {
	query := `
		INSERT INTO stock_entries (id, ts, name, quantity, unit, cost)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(
		context.Background(),
		query,
		entry.ID,
		entry.Timestamp,
		entry.Name,
		entry.Quantity,
		entry.Unit,
		entry.Cost,
	)
	return err
}

func (r *PostgresRepository) List() ([]*StockEntry, error) {
	query := `
		SELECT id, ts, name, quantity, unit, cost
		FROM stock_entries
		ORDER BY seq
	`

	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*StockEntry

	for rows.Next() {
		var e StockEntry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Name, &e.Quantity, &e.Unit, &e.Cost); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (r *PostgresRepository) Get(id string) (*StockEntry, error) {
	query := `
		SELECT id, ts, name, quantity, unit, cost
		FROM stock_entries
		WHERE id = $1
	`

	var e StockEntry
	err := r.db.QueryRow(context.Background(), query, id).
		Scan(&e.ID, &e.Timestamp, &e.Name, &e.Quantity, &e.Unit, &e.Cost)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PostgresRepository) Update(entry *StockEntry) error {
	query := `
		UPDATE stock_entries
		SET ts = $2, quantity = $3, unit = $4, cost = $5
		WHERE id = $1
	`

	tag, err := r.db.Exec(
		context.Background(),
		query,
		entry.ID,
		entry.Timestamp,
		entry.Quantity,
		entry.Unit,
		entry.Cost,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(id string) error {
	_, err := r.db.Exec(
		context.Background(),
		`DELETE FROM stock_entries WHERE id = $1`,
		id,
	)
	return err
}

// --------------------------------------------------
// Frequent-item shortcuts
// --------------------------------------------------
func (r *PostgresRepository) ListFrequent() ([]FrequentStockItem, error) {
	rows, err := r.db.Query(
		context.Background(),
		`SELECT name, unit FROM frequent_stock_items ORDER BY seq`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []FrequentStockItem
	for rows.Next() {
		var f FrequentStockItem
		if err := rows.Scan(&f.Name, &f.Unit); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) AddFrequent(item FrequentStockItem) error {
	query := `
		INSERT INTO frequent_stock_items (name, unit)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
	`
	_, err := r.db.Exec(context.Background(), query, item.Name, item.Unit)
	return err
}
