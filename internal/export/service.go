package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HRU007/tofu-pos/internal/orders"
	"github.com/HRU007/tofu-pos/internal/stock"
)

var ErrNotConfigured = errors.New("spreadsheet export is not configured")

// Service reads a consistent snapshot of both ledgers and hands the
// flattened tables to the exporter. Fire-and-forget from the core's
// point of view: success or failure, ledger state is untouched.
type Service struct {
	orders   orders.Repository
	stock    stock.Repository
	exporter Exporter
	now      func() time.Time
}

func NewService(orderRepo orders.Repository, stockRepo stock.Repository, exporter Exporter) *Service {
	return &Service{
		orders:   orderRepo,
		stock:    stockRepo,
		exporter: exporter,
		now:      time.Now,
	}
}

// ExportReport builds and uploads the report, returning the created
// spreadsheet id.
func (s *Service) ExportReport(ctx context.Context) (string, error) {
	if s.exporter == nil {
		return "", ErrNotConfigured
	}

	records, err := s.orders.List()
	if err != nil {
		return "", err
	}
	entries, err := s.stock.List()
	if err != nil {
		return "", err
	}

	title := fmt.Sprintf("Tofu POS 報表 - %s", s.now().Local().Format("2006/01/02"))
	return s.exporter.Export(ctx, title, SalesTable(records), StockTable(entries))
}
