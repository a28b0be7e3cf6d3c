package main

import (
	"context"
	"log"
	"os"

	"github.com/HRU007/tofu-pos/internal/analytics"
	"github.com/HRU007/tofu-pos/internal/db"
	"github.com/HRU007/tofu-pos/internal/export"
	"github.com/HRU007/tofu-pos/internal/orders"
	"github.com/HRU007/tofu-pos/internal/pos"
	"github.com/HRU007/tofu-pos/internal/router"
	"github.com/HRU007/tofu-pos/internal/stock"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── LOGGER ─────────────────────────
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("logger init failed:", err)
	}
	defer logger.Sync()

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── REPOS ─────────────────────────
	orderRepo := orders.NewPostgresRepository(pgDB)
	stockRepo := stock.NewPostgresRepository(pgDB)

	// ───────────────────────── SHEETS EXPORT ─────────────────────────
	var exporter export.Exporter
	credsFile := os.Getenv("SHEETS_CREDENTIALS_FILE")
	tokenFile := os.Getenv("SHEETS_TOKEN_FILE")
	if credsFile != "" {
		sheets, err := export.NewSheetsExporter(context.Background(), credsFile, tokenFile)
		if err != nil {
			logger.Warn("sheets export disabled", zap.Error(err))
		} else {
			exporter = sheets
		}
	} else {
		logger.Warn("SHEETS_CREDENTIALS_FILE not set, export disabled")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	posService := pos.NewService()
	orderService := orders.NewService(orderRepo)
	stockService := stock.NewService(stockRepo)
	analyticsService := analytics.NewService(orderRepo, stockRepo)
	exportService := export.NewService(orderRepo, stockRepo, exporter)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(logger, router.Handlers{
		POS:       pos.NewHandler(posService),
		Orders:    orders.NewHandler(orderService, posService),
		Stock:     stock.NewHandler(stockService),
		Analytics: analytics.NewHandler(analyticsService),
		Export:    export.NewHandler(exportService),
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("🚀 API running at http://localhost:" + port)
	r.Run(":" + port)
}
