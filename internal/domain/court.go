package domain

import "time"

type CourtType string

const (
	CourtIndoor  CourtType = "INDOOR"
	CourtOutdoor CourtType = "OUTDOOR"
)

type CourtStatus string

const (
	CourtActive      CourtStatus = "ACTIVE"
	CourtInactive    CourtStatus = "INACTIVE"
	CourtMaintenance CourtStatus = "MAINTENANCE"
)

type Court struct {
	ID          int64       `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" validate:"required"`
	Type        CourtType   `json:"type" validate:"required,oneof=INDOOR OUTDOOR"`
	Status      CourtStatus `json:"status"`
	BaseRate    float64     `json:"base_rate" validate:"required,gt=0"`
	Description string      `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (Court) TableName() string { return "courts" }
