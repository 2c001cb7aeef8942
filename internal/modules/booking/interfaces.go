package booking

import (
	"context"
	"time"

	"courtflow/internal/domain"
	"courtflow/internal/repository"
)

// Store is everything the transaction manager needs from the data layer.
// Transaction yields a Store bound to one atomic unit of work; calling it
// again on a tx-bound Store opens a savepoint, which is how a failed
// waitlist promotion is contained without rolling back the cancellation.
type Store interface {
	Transaction(ctx context.Context, fn func(tx Store) error) error

	CourtByID(ctx context.Context, id int64) (*domain.Court, error)
	CoachByID(ctx context.Context, id int64) (*domain.Coach, error)
	EquipmentByID(ctx context.Context, id int64) (*domain.Equipment, error)

	CourtOccupied(ctx context.Context, courtID int64, start, end time.Time) (bool, error)
	CoachOccupied(ctx context.Context, coachID int64, start, end time.Time) (bool, error)
	EquipmentReservedQuantity(ctx context.Context, equipmentID int64, start, end time.Time) (int, error)

	ActiveRules(ctx context.Context) ([]domain.PricingRule, error)

	CreateBooking(ctx context.Context, b *domain.Booking) error
	BookingByID(ctx context.Context, id int64) (*domain.Booking, error)
	MarkBookingCanceled(ctx context.Context, id int64) error
	UserBookings(ctx context.Context, userID string, includeHistory bool, now time.Time) ([]domain.Booking, error)

	AddWaitlistEntry(ctx context.Context, e *domain.WaitlistEntry) error
	NextWaitingEntry(ctx context.Context, courtID int64, start, end time.Time) (*domain.WaitlistEntry, error)
	MarkWaitlistPromoted(ctx context.Context, id int64) error
	WaitingEntries(ctx context.Context, courtID int64, start, end time.Time) ([]domain.WaitlistEntry, error)

	CourtsByIDs(ctx context.Context, ids []int64) ([]domain.Court, error)
	CoachesByIDs(ctx context.Context, ids []int64) ([]domain.Coach, error)
	EquipmentByIDs(ctx context.Context, ids []int64) ([]domain.Equipment, error)
}

// gormStore adapts *repository.Store to the module interface, rebinding
// Transaction so the callback receives a tx-bound Store.
type gormStore struct {
	*repository.Store
}

func NewStore(st *repository.Store) Store {
	return gormStore{Store: st}
}

func (g gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return g.Store.Transaction(ctx, func(tx *repository.Store) error {
		return fn(gormStore{Store: tx})
	})
}
