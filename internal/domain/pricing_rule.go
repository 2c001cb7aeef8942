package domain

import "time"

type RuleKind string

const (
	RuleTimeOfDay RuleKind = "TIME_OF_DAY"
	RuleWeekend   RuleKind = "WEEKEND"
	RuleCourtType RuleKind = "COURT_TYPE"
	RuleDuration  RuleKind = "DURATION"
	RuleCustom    RuleKind = "CUSTOM"
)

// PricingRule is a stackable surcharge. The condition is a union keyed by
// Kind: TIME_OF_DAY uses WindowStart/WindowEnd, COURT_TYPE uses CourtType,
// DURATION uses MinHours, WEEKEND and CUSTOM carry no payload. Unused
// fields stay nil. Priority orders the breakdown presentation only; every
// active matching rule is applied.
type PricingRule struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" validate:"required"`
	Kind         RuleKind   `json:"kind" validate:"required,oneof=TIME_OF_DAY WEEKEND COURT_TYPE DURATION CUSTOM"`
	IsActive     bool       `json:"is_active"`
	Priority     int        `json:"priority"`
	Amount       float64    `json:"amount" validate:"gte=0"`
	IsPercentage bool       `json:"is_percentage"`
	WindowStart  *string    `json:"window_start,omitempty"` // "HH:MM", TIME_OF_DAY only
	WindowEnd    *string    `json:"window_end,omitempty"`   // "HH:MM", TIME_OF_DAY only
	CourtType    *CourtType `json:"court_type,omitempty"`   // COURT_TYPE only
	MinHours     *float64   `json:"min_hours,omitempty"`    // DURATION only
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (PricingRule) TableName() string { return "pricing_rules" }
