package router

import (
	"github.com/HRU007/tofu-pos/internal/analytics"
	"github.com/HRU007/tofu-pos/internal/export"
	"github.com/HRU007/tofu-pos/internal/middleware"
	"github.com/HRU007/tofu-pos/internal/orders"
	"github.com/HRU007/tofu-pos/internal/pos"
	"github.com/HRU007/tofu-pos/internal/stock"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers groups the per-feature handlers wired into the route tree.
type Handlers struct {
	POS       *pos.Handler
	Orders    *orders.Handler
	Stock     *stock.Handler
	Analytics *analytics.Handler
	Export    *export.Handler
}

func NewRouter(logger *zap.Logger, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Default())

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// -------------------------------
	// POINT OF SALE
	// -------------------------------
	r.GET("/menu", h.POS.Menu)
	r.GET("/cart", h.POS.ViewCart)
	r.POST("/cart/items", h.POS.AddItem)
	r.DELETE("/cart/items/:cartId", h.POS.RemoveItem)
	r.POST("/cart/checkout", h.Orders.SubmitCart)

	// -------------------------------
	// ORDER HISTORY
	// -------------------------------
	r.GET("/orders", h.Orders.List)
	r.DELETE("/orders/:id", h.Orders.Delete)
	r.POST("/orders/:id/edit", h.Orders.OpenEdit)
	r.GET("/orders/edit/:session", h.Orders.ViewSession)
	r.PUT("/orders/edit/:session/timestamp", h.Orders.SetTimestamp)
	r.POST("/orders/edit/:session/items", h.Orders.AddSessionItem)
	r.PUT("/orders/edit/:session/items/:cartId", h.Orders.EditSessionItem)
	r.DELETE("/orders/edit/:session/items/:cartId", h.Orders.RemoveSessionItem)
	r.POST("/orders/edit/:session/save", h.Orders.SaveEdit)
	r.POST("/orders/edit/:session/cancel", h.Orders.CancelEdit)

	// -------------------------------
	// STOCK
	// -------------------------------
	r.GET("/stock", h.Stock.List)
	r.POST("/stock", h.Stock.Add)
	r.PUT("/stock/:id", h.Stock.Update)
	r.DELETE("/stock/:id", h.Stock.Delete)
	r.GET("/stock/frequent", h.Stock.Frequent)

	// -------------------------------
	// ANALYTICS & EXPORT
	// -------------------------------
	r.GET("/analytics/sales", h.Analytics.Sales)
	r.GET("/analytics/stock", h.Analytics.Stock)
	r.GET("/analytics/finance", h.Analytics.Finance)
	r.POST("/export", h.Export.Export)

	return r
}
