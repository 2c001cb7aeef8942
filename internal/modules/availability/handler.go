package availability

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"courtflow/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/availability", h.GetAvailability)
}

func (h *Handler) GetAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "date query parameter is required")
		return
	}

	slots, err := h.service.ForDate(c.Request.Context(), dateStr)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to compute availability")
		return
	}

	c.Header("Cache-Control", "no-store")
	response.Success(c, http.StatusOK, slots)
}
