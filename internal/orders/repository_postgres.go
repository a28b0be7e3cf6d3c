package orders

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/HRU007/tofu-pos/internal/pos"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Append a completed sale
// --------------------------------------------------
func (r *PostgresRepository) Append(order *OrderRecord) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO orders (id, ts, items, total_amount)
		VALUES ($1, $2, $3, $4)
	`

	_, err = r.db.Exec(
		context.Background(),
		query,
		order.ID,
		order.Timestamp,
		items,
		order.TotalAmount,
	)
	return err
}

// --------------------------------------------------
// Full history, insertion order
// --------------------------------------------------
func (r *PostgresRepository) List() ([]*OrderRecord, error) {
	query := `
		SELECT id, ts, items, total_amount
		FROM orders
		ORDER BY seq
	`

	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*OrderRecord

	for rows.Next() {
		var rec OrderRecord
		var items []byte
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &items, &rec.TotalAmount); err != nil {
			return nil, err
		}
		// A row with unreadable items degrades to being skipped,
		// never to a crash of the whole history view.
		if err := json.Unmarshal(items, &rec.Items); err != nil {
			log.Printf("orders: skipping corrupt record %s: %v", rec.ID, err)
			continue
		}
		if rec.Items == nil {
			rec.Items = []pos.CartItem{}
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (r *PostgresRepository) Get(id string) (*OrderRecord, error) {
	query := `
		SELECT id, ts, items, total_amount
		FROM orders
		WHERE id = $1
	`

	var rec OrderRecord
	var items []byte
	err := r.db.QueryRow(context.Background(), query, id).
		Scan(&rec.ID, &rec.Timestamp, &items, &rec.TotalAmount)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &rec.Items); err != nil {
		return nil, err
	}
	return &rec, nil
}

// --------------------------------------------------
// Wholesale replace (admin correction)
// --------------------------------------------------
func (r *PostgresRepository) Update(order *OrderRecord) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}

	query := `
		UPDATE orders
		SET ts = $2, items = $3, total_amount = $4
		WHERE id = $1
	`

	tag, err := r.db.Exec(
		context.Background(),
		query,
		order.ID,
		order.Timestamp,
		items,
		order.TotalAmount,
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
		`DELETE FROM orders WHERE id = $1`,
		id,
	)
	return err
}
