package repository

import (
	"context"
	"time"

	"courtflow/internal/domain"
)

// OccupyingBookingsOverlapping loads every occupying booking whose
// interval intersects [from,to), line items included. A booking that
// spans midnight into the window still matches.
func (s *Store) OccupyingBookingsOverlapping(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("status = ?", domain.BookingConfirmed).
		Where("start_time < ? AND end_time > ?", to, from).
		Order("start_time").
		Find(&bookings).Error
	return bookings, err
}

// CourtOccupied reports whether any occupying booking on the court
// overlaps [start,end).
func (s *Store) CourtOccupied(ctx context.Context, courtID int64, start, end time.Time) (bool, error) {
	var cnt int64
	err := s.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("court_id = ?", courtID).
		Where("status = ?", domain.BookingConfirmed).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&cnt).Error
	return cnt > 0, err
}

func (s *Store) CoachOccupied(ctx context.Context, coachID int64, start, end time.Time) (bool, error) {
	var cnt int64
	err := s.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("coach_id = ?", coachID).
		Where("status = ?", domain.BookingConfirmed).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&cnt).Error
	return cnt > 0, err
}

// CreateBooking inserts the booking row together with its line items.
func (s *Store) CreateBooking(ctx context.Context, b *domain.Booking) error {
	return s.db.WithContext(ctx).Create(b).Error
}

func (s *Store) BookingByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := s.db.WithContext(ctx).Preload("Items").First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// MarkBookingCanceled flips the status and stamps the cancellation time.
func (s *Store) MarkBookingCanceled(ctx context.Context, id int64) error {
	now := time.Now()
	return s.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       domain.BookingCanceled,
			"cancelled_at": &now,
			"updated_at":   now,
		}).Error
}

// UserBookings lists a user's bookings newest first; unless history is
// requested, only bookings that have not yet started are returned.
func (s *Store) UserBookings(ctx context.Context, userID string, includeHistory bool, now time.Time) ([]domain.Booking, error) {
	q := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID)
	if !includeHistory {
		q = q.Where("start_time >= ?", now)
	}
	var bookings []domain.Booking
	err := q.Order("start_time DESC").Find(&bookings).Error
	return bookings, err
}

// CompletePastBookings flips CONFIRMED bookings whose end time has passed
// to COMPLETED and returns how many rows changed.
func (s *Store) CompletePastBookings(ctx context.Context, now time.Time) (int64, error) {
	tx := s.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("status = ?", domain.BookingConfirmed).
		Where("end_time <= ?", now).
		Updates(map[string]any{
			"status":     domain.BookingCompleted,
			"updated_at": now,
		})
	return tx.RowsAffected, tx.Error
}
