package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.PATCH("/bookings/:id/cancel", h.CancelBooking)
	rg.POST("/waitlist", h.AddToWaitlist)
	rg.GET("/waitlist", h.GetWaitlist)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	details, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, details)
}

type cancelRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid booking id")
		return
	}
	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "user_id is required")
		return
	}

	details, err := h.service.Cancel(c.Request.Context(), id, req.UserID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, details)
}

func (h *Handler) ListBookings(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "userId query parameter is required")
		return
	}
	includeHistory := c.Query("includeHistory") == "true"

	bookings, err := h.service.ListUserBookings(c.Request.Context(), userID, includeHistory)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) AddToWaitlist(c *gin.Context) {
	var req WaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	entry, err := h.service.AddToWaitlist(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, entry)
}

func (h *Handler) GetWaitlist(c *gin.Context) {
	courtID, err := strconv.ParseInt(c.Query("courtId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "courtId query parameter is required")
		return
	}
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "start must be RFC3339")
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "end must be RFC3339")
		return
	}

	entries, err := h.service.Waitlist(c.Request.Context(), courtID, start, end)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, entries)
}

// handleError maps the error taxonomy to HTTP codes; the message always
// names the failing sub-constraint so the caller can correct and retry.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, response.CodeConflict, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Unexpected failure, safe to retry")
	}
}
