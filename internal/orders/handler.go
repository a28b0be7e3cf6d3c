package orders

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HRU007/tofu-pos/internal/catalog"
	"github.com/HRU007/tofu-pos/internal/pos"
)

type Handler struct {
	service *Service
	cart    *pos.Service
}

func NewHandler(service *Service, cart *pos.Service) *Handler {
	return &Handler{service: service, cart: cart}
}

// --------------------------------------------------
// Submit the current cart as a sale
// --------------------------------------------------
func (h *Handler) SubmitCart(c *gin.Context) {
	items, _, err := h.cart.Checkout()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.service.Submit(items)
	if err != nil {
		// Local state must survive a failed append.
		h.cart.Restore(items)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// --------------------------------------------------
// History (newest first)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	records, err := h.service.ListRecentFirst()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": records})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// --------------------------------------------------
// Correction flow: open a detached working copy
// --------------------------------------------------
func (h *Handler) OpenEdit(c *gin.Context) {
	session, err := h.service.OpenEdit(c.Param("id"))
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":   session.ID,
		"orderId":   session.OrderID,
		"timestamp": session.Timestamp,
		"items":     session.Items(),
		"total":     session.Total(),
	})
}

func (h *Handler) ViewSession(c *gin.Context) {
	session, err := h.service.Session(c.Param("session"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":   session.ID,
		"orderId":   session.OrderID,
		"timestamp": session.Timestamp,
		"items":     session.Items(),
		"total":     session.Total(),
	})
}

// --------------------------------------------------
// Move the sale instant (date + time, operator's clock)
// --------------------------------------------------
func (h *Handler) SetTimestamp(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ts, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Time, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date or time"})
		return
	}

	if err := h.service.SetTimestamp(c.Param("session"), ts); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type sessionItemRequest struct {
	DishID string         `json:"dish_id"`
	Spice  string         `json:"spice"`
	Addons map[string]int `json:"addons"`
}

// --------------------------------------------------
// Add a new line item to the working copy
// --------------------------------------------------
func (h *Handler) AddSessionItem(c *gin.Context) {
	var req sessionItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	dish, ok := catalog.DishByID(req.DishID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown dish"})
		return
	}

	b := pos.NewBuilder()
	b.SelectDish(dish)
	b.SelectSpice(req.Spice)
	for id, qty := range req.Addons {
		b.AdjustAddon(id, qty)
	}

	item, err := h.service.AddSessionItem(c.Param("session"), b)
	if err == ErrNoSession {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// --------------------------------------------------
// Reconfigure one existing line item
// --------------------------------------------------
func (h *Handler) EditSessionItem(c *gin.Context) {
	cartID, err := strconv.ParseInt(c.Param("cartId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart id"})
		return
	}

	var req sessionItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, err := h.service.EditSessionItem(c.Param("session"), cartID, func(b *pos.Builder) {
		if dish, ok := catalog.DishByID(req.DishID); ok {
			b.SelectDish(dish)
		}
		b.SelectSpice(req.Spice)
		for id, qty := range req.Addons {
			b.AdjustAddon(id, qty)
		}
	})
	switch err {
	case nil:
	case ErrNoSession, ErrItemMissing:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (h *Handler) RemoveSessionItem(c *gin.Context) {
	cartID, err := strconv.ParseInt(c.Param("cartId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart id"})
		return
	}

	if err := h.service.RemoveSessionItem(c.Param("session"), cartID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// --------------------------------------------------
// Save or discard the working copy
// --------------------------------------------------
func (h *Handler) SaveEdit(c *gin.Context) {
	order, err := h.service.SaveEdit(c.Param("session"))
	if err == ErrNoSession {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *Handler) CancelEdit(c *gin.Context) {
	h.service.CancelEdit(c.Param("session"))
	c.Status(http.StatusNoContent)
}
