package repository

import (
	"context"
	"time"

	"courtflow/internal/domain"
)

type FacilityStats struct {
	TotalBookings int64   `json:"total_bookings"`
	TotalRevenue  float64 `json:"total_revenue"`
	ActiveCourts  int64   `json:"active_courts"`
	ActiveCoaches int64   `json:"active_coaches"`
}

// FacilityStatsForPeriod aggregates booking volume and revenue for
// bookings created in [from,to), counting CONFIRMED and COMPLETED only.
func (s *Store) FacilityStatsForPeriod(ctx context.Context, from, to time.Time) (*FacilityStats, error) {
	out := &FacilityStats{}

	revenueStatuses := []domain.BookingStatus{domain.BookingConfirmed, domain.BookingCompleted}

	if err := s.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Where("status IN ?", revenueStatuses).
		Count(&out.TotalBookings).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("created_at >= ? AND created_at < ?", from, to).
		Where("status IN ?", revenueStatuses).
		Scan(&out.TotalRevenue).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Model(&domain.Court{}).
		Where("status = ?", domain.CourtActive).
		Count(&out.ActiveCourts).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Model(&domain.Coach{}).
		Where("status = ?", domain.CoachActive).
		Count(&out.ActiveCoaches).Error; err != nil {
		return nil, err
	}

	return out, nil
}
