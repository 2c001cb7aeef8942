package availability

import (
	"context"
	"time"

	"courtflow/internal/domain"
)

// Store is the read surface of the availability calculator. The whole
// computation is read-only and safely retryable.
type Store interface {
	ActiveCourts(ctx context.Context) ([]domain.Court, error)
	ActiveCoaches(ctx context.Context) ([]domain.Coach, error)
	ActiveEquipment(ctx context.Context) ([]domain.Equipment, error)
	OccupyingBookingsOverlapping(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}
