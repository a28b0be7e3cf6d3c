package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HRU007/tofu-pos/internal/analytics"
	"github.com/HRU007/tofu-pos/internal/export"
	"github.com/HRU007/tofu-pos/internal/orders"
	"github.com/HRU007/tofu-pos/internal/pos"
	"github.com/HRU007/tofu-pos/internal/stock"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zaptest"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orderRepo := orders.NewInMemoryRepository()
	stockRepo := stock.NewInMemoryRepository()

	posService := pos.NewService()
	orderService := orders.NewService(orderRepo)
	stockService := stock.NewService(stockRepo)
	analyticsService := analytics.NewService(orderRepo, stockRepo)
	exportService := export.NewService(orderRepo, stockRepo, nil)

	return NewRouter(zaptest.NewLogger(t), Handlers{
		POS:       pos.NewHandler(posService),
		Orders:    orders.NewHandler(orderService, posService),
		Stock:     stock.NewHandler(stockService),
		Analytics: analytics.NewHandler(analyticsService),
		Export:    export.NewHandler(exportService),
	})
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestCheckoutFlow(t *testing.T) {
	r := newTestRouter(t)

	addBody, _ := json.Marshal(map[string]any{
		"dish_id": "m1",
		"spice":   "小辣",
		"addons":  map[string]int{"a1": 2},
	})
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(addBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("add item: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/cart/checkout", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/orders", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list orders: expected 200, got %d", w.Code)
	}

	var listed struct {
		Orders []orders.OrderRecord `json:"orders"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode orders: %v", err)
	}
	if len(listed.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(listed.Orders))
	}
	if listed.Orders[0].TotalAmount != 160 {
		t.Fatalf("expected total 160, got %d", listed.Orders[0].TotalAmount)
	}

	// Cart must be empty after checkout.
	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var cart struct {
		Items []pos.CartItem `json:"items"`
		Total int            `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(cart.Items) != 0 || cart.Total != 0 {
		t.Fatalf("expected empty cart after checkout, got %d items total %d", len(cart.Items), cart.Total)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/cart/checkout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", w.Code)
	}
}
