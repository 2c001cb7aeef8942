package domain

import "time"

type WaitlistStatus string

const (
	WaitlistWaiting  WaitlistStatus = "WAITING"
	WaitlistPromoted WaitlistStatus = "PROMOTED"
)

// WaitlistEntry queues a request for an exact (court, window). CreatedAt
// defines FIFO promotion order.
type WaitlistEntry struct {
	ID        int64          `json:"id" gorm:"primaryKey"`
	UserID    string         `json:"user_id" gorm:"index"`
	CourtID   int64          `json:"court_id" gorm:"index"`
	StartTime time.Time      `json:"start_time"`
	EndTime   time.Time      `json:"end_time"`
	Status    WaitlistStatus `json:"status" gorm:"index"`
	CreatedAt time.Time      `json:"created_at"`
}

func (WaitlistEntry) TableName() string { return "waitlist_entries" }
