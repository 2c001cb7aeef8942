package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"courtflow/internal/pkg/response"
	"courtflow/internal/pkg/validator"
)

type Handler struct {
	service *Service
	loc     *time.Location
}

func NewHandler(service *Service, loc *time.Location) *Handler {
	return &Handler{service: service, loc: loc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/courts", h.ListCourts)
	rg.POST("/courts", h.CreateCourt)
	rg.PUT("/courts/:id", h.UpdateCourt)
	rg.DELETE("/courts/:id", h.DeleteCourt)

	rg.GET("/coaches", h.ListCoaches)
	rg.POST("/coaches", h.CreateCoach)
	rg.PUT("/coaches/:id", h.UpdateCoach)
	rg.DELETE("/coaches/:id", h.DeleteCoach)

	rg.GET("/equipment", h.ListEquipment)
	rg.POST("/equipment", h.CreateEquipment)
	rg.PUT("/equipment/:id", h.UpdateEquipment)
	rg.DELETE("/equipment/:id", h.DeleteEquipment)

	rg.GET("/pricing-rules", h.ListRules)
	rg.POST("/pricing-rules", h.CreateRule)
	rg.PUT("/pricing-rules/:id", h.UpdateRule)
	rg.DELETE("/pricing-rules/:id", h.DeleteRule)

	rg.GET("/stats", h.Stats)
}

func (h *Handler) ListCourts(c *gin.Context) {
	courts, err := h.service.Courts(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, courts)
}

func (h *Handler) CreateCourt(c *gin.Context) {
	var in CourtInput
	if !bind(c, &in) {
		return
	}
	court, err := h.service.CreateCourt(c.Request.Context(), in)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, court)
}

func (h *Handler) UpdateCourt(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in CourtInput
	if !bind(c, &in) {
		return
	}
	court, err := h.service.UpdateCourt(c.Request.Context(), id, in)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, court)
}

func (h *Handler) DeleteCourt(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCourt(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) ListCoaches(c *gin.Context) {
	coaches, err := h.service.Coaches(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, coaches)
}

func (h *Handler) CreateCoach(c *gin.Context) {
	var in CoachInput
	if !bind(c, &in) {
		return
	}
	coach, err := h.service.CreateCoach(c.Request.Context(), in)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, coach)
}

func (h *Handler) UpdateCoach(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in CoachInput
	if !bind(c, &in) {
		return
	}
	coach, err := h.service.UpdateCoach(c.Request.Context(), id, in)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, coach)
}

func (h *Handler) DeleteCoach(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCoach(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) ListEquipment(c *gin.Context) {
	items, err := h.service.Equipment(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) CreateEquipment(c *gin.Context) {
	var in EquipmentInput
	if !bind(c, &in) {
		return
	}
	item, err := h.service.CreateEquipment(c.Request.Context(), in)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) UpdateEquipment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in EquipmentInput
	if !bind(c, &in) {
		return
	}
	item, err := h.service.UpdateEquipment(c.Request.Context(), id, in)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) DeleteEquipment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteEquipment(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) ListRules(c *gin.Context) {
	rules, err := h.service.Rules(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rules)
}

func (h *Handler) CreateRule(c *gin.Context) {
	var in RuleInput
	if !bind(c, &in) {
		return
	}
	rule, err := h.service.CreateRule(c.Request.Context(), in)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rule)
}

func (h *Handler) UpdateRule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in RuleInput
	if !bind(c, &in) {
		return
	}
	rule, err := h.service.UpdateRule(c.Request.Context(), id, in)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rule)
}

func (h *Handler) DeleteRule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRule(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), time.Now().In(h.loc))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid id")
		return 0, false
	}
	return id, true
}

// bind decodes and validates the payload; reports field-level errors.
func bind(c *gin.Context, in any) bool {
	if err := c.ShouldBindJSON(in); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return false
	}
	if fields := validator.Validate(in); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Validation failed", fields)
		return false
	}
	return true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Record not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Unexpected failure")
	}
}
