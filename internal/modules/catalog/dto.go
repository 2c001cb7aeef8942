package catalog

import (
	"time"

	"courtflow/internal/domain"
)

type CourtInput struct {
	Name        string  `json:"name" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=INDOOR OUTDOOR"`
	Status      string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE MAINTENANCE"`
	BaseRate    float64 `json:"base_rate" validate:"required,gt=0"`
	Description string  `json:"description"`
}

type AvailabilityWindowInput struct {
	DayOfWeek    string     `json:"day_of_week" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime    string     `json:"start_time" validate:"required"`
	EndTime      string     `json:"end_time" validate:"required"`
	IsActive     bool       `json:"is_active"`
	IsOverride   bool       `json:"is_override"`
	SpecificDate *time.Time `json:"specific_date,omitempty"`
}

type CoachInput struct {
	Name           string                    `json:"name" validate:"required"`
	Bio            string                    `json:"bio"`
	Specialization string                    `json:"specialization"`
	HourlyRate     float64                   `json:"hourly_rate" validate:"required,gt=0"`
	Status         string                    `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	Availability   []AvailabilityWindowInput `json:"availability"`
}

type EquipmentInput struct {
	Name          string  `json:"name" validate:"required"`
	Type          string  `json:"type" validate:"required,oneof=RACKET SHOES SHUTTLECOCK TOWEL"`
	Size          string  `json:"size"`
	TotalQuantity int     `json:"total_quantity" validate:"required,gt=0"`
	PricePerHour  float64 `json:"price_per_hour" validate:"required,gte=0"`
	PerSlotMax    int     `json:"per_slot_max" validate:"required,gt=0"`
	Status        string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	Description   string  `json:"description"`
}

// RuleInput carries the condition union: only the fields belonging to
// Kind are honored; the rest are cleared at write time so the evaluator
// never sees a stray payload.
type RuleInput struct {
	Name         string            `json:"name" validate:"required"`
	Kind         string            `json:"kind" validate:"required,oneof=TIME_OF_DAY WEEKEND COURT_TYPE DURATION CUSTOM"`
	IsActive     bool              `json:"is_active"`
	Priority     int               `json:"priority"`
	Amount       float64           `json:"amount" validate:"gte=0"`
	IsPercentage bool              `json:"is_percentage"`
	WindowStart  *string           `json:"window_start,omitempty"`
	WindowEnd    *string           `json:"window_end,omitempty"`
	CourtType    *domain.CourtType `json:"court_type,omitempty"`
	MinHours     *float64          `json:"min_hours,omitempty"`
}
