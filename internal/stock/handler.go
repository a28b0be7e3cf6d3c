package stock

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Recent history, grouped per day
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	groups, err := h.service.ListGroupedByDay()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": groups})
}

// --------------------------------------------------
// Record a restocking event
// --------------------------------------------------
func (h *Handler) Add(c *gin.Context) {
	var req struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
		Cost     int     `json:"cost"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	entry, err := h.service.Append(req.Name, req.Quantity, req.Unit, req.Cost)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// --------------------------------------------------
// Edit date / quantity / cost (name is locked)
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var req struct {
		Date     string  `json:"date"`
		Quantity float64 `json:"quantity"`
		Cost     int     `json:"cost"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ts, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	entry, err := h.service.Update(c.Param("id"), ts, req.Quantity, req.Cost)
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// --------------------------------------------------
// Quick-add shortcuts
// --------------------------------------------------
func (h *Handler) Frequent(c *gin.Context) {
	items, err := h.service.QuickItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
