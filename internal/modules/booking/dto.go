package booking

import (
	"encoding/json"
	"time"

	"courtflow/internal/domain"
)

type EquipmentRequest struct {
	EquipmentID int64 `json:"equipment_id" binding:"required"`
	Quantity    int   `json:"quantity" binding:"required,gt=0"`
}

type CreateBookingRequest struct {
	UserID    string             `json:"user_id" binding:"required"`
	CourtID   int64              `json:"court_id" binding:"required"`
	StartTime time.Time          `json:"start_time" binding:"required"`
	EndTime   time.Time          `json:"end_time" binding:"required"`
	CoachID   *int64             `json:"coach_id,omitempty"`
	Equipment []EquipmentRequest `json:"equipment,omitempty"`
}

type WaitlistRequest struct {
	UserID    string    `json:"user_id" binding:"required"`
	CourtID   int64     `json:"court_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type ItemDetail struct {
	EquipmentID   int64   `json:"equipment_id"`
	EquipmentName string  `json:"equipment_name,omitempty"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	LinePrice     float64 `json:"line_price"`
}

// BookingDetails is the fully-populated reservation record returned to
// callers: resolved court and coach names plus equipment line items and
// the stored price breakdown snapshot.
type BookingDetails struct {
	ID             int64                `json:"id"`
	Reference      string               `json:"reference"`
	UserID         string               `json:"user_id"`
	Status         domain.BookingStatus `json:"status"`
	CourtID        int64                `json:"court_id"`
	CourtName      string               `json:"court_name,omitempty"`
	CoachID        *int64               `json:"coach_id,omitempty"`
	CoachName      string               `json:"coach_name,omitempty"`
	StartTime      time.Time            `json:"start_time"`
	EndTime        time.Time            `json:"end_time"`
	TotalPrice     float64              `json:"total_price"`
	PriceBreakdown json.RawMessage      `json:"price_breakdown,omitempty"`
	Items          []ItemDetail         `json:"items,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	CancelledAt    *time.Time           `json:"cancelled_at,omitempty"`
}
