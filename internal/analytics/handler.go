package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Sales over a time range
// --------------------------------------------------
func (h *Handler) Sales(c *gin.Context) {
	r := Range{
		Preset: c.DefaultQuery("range", "today"),
		Start:  c.Query("start"),
		End:    c.Query("end"),
	}

	summary, err := h.service.SalesSummary(r)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// --------------------------------------------------
// All-time stock expense view
// --------------------------------------------------
func (h *Handler) Stock(c *gin.Context) {
	summary, err := h.service.StockSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// --------------------------------------------------
// Current calendar month income / expense / profit
// --------------------------------------------------
func (h *Handler) Finance(c *gin.Context) {
	snap, err := h.service.MonthlyFinance()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}
