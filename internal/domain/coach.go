package domain

import "time"

type CoachStatus string

const (
	CoachActive   CoachStatus = "ACTIVE"
	CoachInactive CoachStatus = "INACTIVE"
)

type Coach struct {
	ID             int64               `json:"id" gorm:"primaryKey"`
	Name           string              `json:"name" validate:"required"`
	Bio            string              `json:"bio,omitempty" gorm:"type:text"`
	Specialization string              `json:"specialization,omitempty"`
	HourlyRate     float64             `json:"hourly_rate" validate:"required,gt=0"`
	Status         CoachStatus         `json:"status"`
	Availability   []CoachAvailability `json:"availability,omitempty" gorm:"foreignKey:CoachID"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func (Coach) TableName() string { return "coaches" }

// CoachAvailability is one schedule window. Weekly windows repeat on
// DayOfWeek; an override window (IsOverride + SpecificDate) replaces the
// weekly pattern entirely on that one calendar date.
type CoachAvailability struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	CoachID      int64      `json:"coach_id" gorm:"index"`
	DayOfWeek    string     `json:"day_of_week" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime    string     `json:"start_time" validate:"required"` // "HH:MM"
	EndTime      string     `json:"end_time" validate:"required"`   // "HH:MM"
	IsActive     bool       `json:"is_active"`
	IsOverride   bool       `json:"is_override"`
	SpecificDate *time.Time `json:"specific_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (CoachAvailability) TableName() string { return "coach_availability" }
