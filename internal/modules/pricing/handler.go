package pricing

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
	rg.POST("/pricing/quote", h.Quote)
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "End time must be after start time")
		case errors.Is(err, ErrCourtNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Court not found")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to calculate price")
		}
		return
	}

	response.Success(c, http.StatusOK, quote)
}
