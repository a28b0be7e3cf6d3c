package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates the three persisted slots: order history, stock
// history, and the learned frequent-item list.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// ORDER HISTORY
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			seq BIGSERIAL PRIMARY KEY,
			id TEXT UNIQUE NOT NULL,
			ts TIMESTAMPTZ NOT NULL,
			items JSONB NOT NULL,
			total_amount BIGINT NOT NULL
		)
	`
	if _, err := pool.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	// -------------------------------
	// STOCK HISTORY
	// -------------------------------
	stockSQL := `
		CREATE TABLE IF NOT EXISTS stock_entries (
			seq BIGSERIAL PRIMARY KEY,
			id TEXT UNIQUE NOT NULL,
			ts TIMESTAMPTZ NOT NULL,
			name TEXT NOT NULL,
			quantity DOUBLE PRECISION NOT NULL,
			unit TEXT NOT NULL,
			cost BIGINT NOT NULL
		)
	`
	if _, err := pool.Exec(ctx, stockSQL); err != nil {
		return err
	}

	// -------------------------------
	// FREQUENT ITEMS (seeded defaults)
	// -------------------------------
	frequentSQL := `
		CREATE TABLE IF NOT EXISTS frequent_stock_items (
			seq BIGSERIAL PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			unit TEXT NOT NULL
		)
	`
	if _, err := pool.Exec(ctx, frequentSQL); err != nil {
		return err
	}

	seedSQL := `
		INSERT INTO frequent_stock_items (name, unit)
		VALUES ('高麗菜', '顆'), ('豆卷', '包')
		ON CONFLICT (name) DO NOTHING
	`
	if _, err := pool.Exec(ctx, seedSQL); err != nil {
		return err
	}

	log.Println("schema initialized")
	return nil
}
