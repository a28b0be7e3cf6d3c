package pos

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HRU007/tofu-pos/internal/catalog"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Menu (static reference data)
// --------------------------------------------------
func (h *Handler) Menu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"dishes":       catalog.Dishes,
		"spice_levels": catalog.SpiceLevels,
		"addons":       catalog.Addons,
	})
}

// --------------------------------------------------
// Current cart
// --------------------------------------------------
func (h *Handler) ViewCart(c *gin.Context) {
	items, total := h.service.View()
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
		"count": len(items),
	})
}

// --------------------------------------------------
// Add a configured dish
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	var req struct {
		DishID string         `json:"dish_id"`
		Spice  string         `json:"spice"`
		Addons map[string]int `json:"addons"`
	}

	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, err := h.service.AddItem(req.DishID, req.Spice, req.Addons)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// --------------------------------------------------
// Remove one cart line
// --------------------------------------------------
func (h *Handler) RemoveItem(c *gin.Context) {
	cartID, err := strconv.ParseInt(c.Param("cartId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart id"})
		return
	}

	h.service.RemoveItem(cartID)
	c.Status(http.StatusNoContent)
}
