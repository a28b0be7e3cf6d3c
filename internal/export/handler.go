package export

import (
	"errors"
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
// Build and upload the spreadsheet report
// --------------------------------------------------
func (h *Handler) Export(c *gin.Context) {
	id, err := h.service.ExportReport(c.Request.Context())
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"spreadsheet_id": id,
			"message":        "成功建立試算表並上傳資料",
		})
	case errors.Is(err, ErrDeclined):
		// The operator closed the consent prompt; nothing to report.
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
	case errors.Is(err, ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "上傳失敗: " + err.Error(),
		})
	}
}
