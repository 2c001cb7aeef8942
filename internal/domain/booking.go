package domain

import (
	"encoding/json"
	"time"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCanceled  BookingStatus = "CANCELED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// Occupies reports whether a booking in this status blocks its court,
// coach and equipment for the window. Only CONFIRMED occupies; waitlisted
// requests live in waitlist_entries and hold queue position only.
func (s BookingStatus) Occupies() bool { return s == BookingConfirmed }

type Booking struct {
	ID        int64         `json:"id" gorm:"primaryKey"`
	Reference string        `json:"reference" gorm:"size:36;uniqueIndex"`
	UserID    string        `json:"user_id" gorm:"index"`
	CourtID   int64         `json:"court_id" gorm:"index"`
	CoachID   *int64        `json:"coach_id,omitempty" gorm:"index"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Status    BookingStatus `json:"status" gorm:"index"`

	// TotalPrice and PriceBreakdown are an immutable snapshot of the rule
	// evaluation at booking time; later rule edits never touch them.
	TotalPrice     float64         `json:"total_price"`
	PriceBreakdown json.RawMessage `json:"price_breakdown,omitempty" gorm:"type:text"`

	Items []BookingItem `json:"items,omitempty" gorm:"foreignKey:BookingID"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

func (Booking) TableName() string { return "bookings" }

type BookingItem struct {
	ID          int64   `json:"id" gorm:"primaryKey"`
	BookingID   int64   `json:"booking_id" gorm:"index"`
	EquipmentID int64   `json:"equipment_id" gorm:"index"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LinePrice   float64 `json:"line_price"`
}

func (BookingItem) TableName() string { return "booking_items" }
