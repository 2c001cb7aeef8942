package availability

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"courtflow/internal/domain"
	"courtflow/internal/pkg/timeutil"
)

var ErrValidation = errors.New("invalid availability request")

type Service struct {
	store       Store
	loc         *time.Location
	openHour    int
	closeHour   int
	slotMinutes int
	log         *slog.Logger
}

func NewService(store Store, loc *time.Location, openHour, closeHour, slotMinutes int, log *slog.Logger) *Service {
	return &Service{
		store:       store,
		loc:         loc,
		openHour:    openHour,
		closeHour:   closeHour,
		slotMinutes: slotMinutes,
		log:         log,
	}
}

// ForDate computes the per-slot availability matrix for one facility-local
// calendar day.
func (s *Service) ForDate(ctx context.Context, dateStr string) ([]Slot, error) {
	day, err := timeutil.ParseLocalDate(dateStr, s.loc)
	if err != nil {
		return nil, ErrValidation
	}

	startOfDay := day
	endOfDay := day.AddDate(0, 0, 1)

	courts, err := s.store.ActiveCourts(ctx)
	if err != nil {
		return nil, err
	}
	coaches, err := s.store.ActiveCoaches(ctx)
	if err != nil {
		return nil, err
	}
	equipment, err := s.store.ActiveEquipment(ctx)
	if err != nil {
		return nil, err
	}
	// Overlap with the day, not "starts within the day": a booking that
	// spans midnight still consumes its share of this day's slots.
	bookings, err := s.store.OccupyingBookingsOverlapping(ctx, startOfDay, endOfDay)
	if err != nil {
		return nil, err
	}

	labels := timeutil.SlotsForDay(s.openHour, s.closeHour, s.slotMinutes)
	slots := make([]Slot, 0, len(labels))

	for _, label := range labels {
		minutes, _ := timeutil.MinutesSinceMidnight(label)
		slotStart := timeutil.AtMinutes(day, minutes)
		slotEnd := slotStart.Add(time.Duration(s.slotMinutes) * time.Minute)

		freeCourts := make([]int64, 0, len(courts))
		for _, court := range courts {
			if !courtBooked(bookings, court.ID, slotStart, slotEnd) {
				freeCourts = append(freeCourts, court.ID)
			}
		}

		freeCoaches := make([]int64, 0, len(coaches))
		for _, coach := range coaches {
			if coachBooked(bookings, coach.ID, slotStart, slotEnd) {
				continue
			}
			if !ScheduleAllows(&coach, slotStart) {
				continue
			}
			freeCoaches = append(freeCoaches, coach.ID)
		}

		usage := equipmentUsage(bookings, slotStart, slotEnd)
		freeEquipment := make([]EquipmentAvailability, 0, len(equipment))
		for _, eq := range equipment {
			remaining := eq.TotalQuantity - usage[eq.ID]
			if remaining < 0 {
				remaining = 0
			}
			freeEquipment = append(freeEquipment, EquipmentAvailability{
				ID:        eq.ID,
				Name:      eq.Name,
				Type:      eq.Type,
				Available: remaining,
			})
		}

		slots = append(slots, Slot{
			Time:               label,
			Available:          len(freeCourts) > 0,
			AvailableCourts:    freeCourts,
			AvailableCoaches:   freeCoaches,
			AvailableEquipment: freeEquipment,
		})
	}

	return slots, nil
}

func courtBooked(bookings []domain.Booking, courtID int64, slotStart, slotEnd time.Time) bool {
	for _, b := range bookings {
		if b.CourtID == courtID && timeutil.Overlaps(b.StartTime, b.EndTime, slotStart, slotEnd) {
			return true
		}
	}
	return false
}

func coachBooked(bookings []domain.Booking, coachID int64, slotStart, slotEnd time.Time) bool {
	for _, b := range bookings {
		if b.CoachID != nil && *b.CoachID == coachID && timeutil.Overlaps(b.StartTime, b.EndTime, slotStart, slotEnd) {
			return true
		}
	}
	return false
}

func equipmentUsage(bookings []domain.Booking, slotStart, slotEnd time.Time) map[int64]int {
	usage := make(map[int64]int)
	for _, b := range bookings {
		if !timeutil.Overlaps(b.StartTime, b.EndTime, slotStart, slotEnd) {
			continue
		}
		for _, item := range b.Items {
			usage[item.EquipmentID] += item.Quantity
		}
	}
	return usage
}

// ScheduleAllows reports whether the coach's schedule permits working at
// the instant `at`. A coach with no windows is schedule-available whenever
// active. An active override window pinned to at's calendar date replaces
// the weekly pattern for that date entirely.
func ScheduleAllows(coach *domain.Coach, at time.Time) bool {
	if len(coach.Availability) == 0 {
		return true
	}

	clock := at.Format("15:04")

	overridesForDate := make([]domain.CoachAvailability, 0, 1)
	for _, w := range coach.Availability {
		if w.IsActive && w.IsOverride && w.SpecificDate != nil && timeutil.SameLocalDate(at, *w.SpecificDate) {
			overridesForDate = append(overridesForDate, w)
		}
	}
	if len(overridesForDate) > 0 {
		for _, w := range overridesForDate {
			if timeutil.TimeInRange(clock, w.StartTime, w.EndTime) {
				return true
			}
		}
		return false
	}

	weekday := timeutil.DayOfWeek(at)
	for _, w := range coach.Availability {
		if !w.IsActive || w.IsOverride {
			continue
		}
		if w.DayOfWeek == weekday && timeutil.TimeInRange(clock, w.StartTime, w.EndTime) {
			return true
		}
	}
	return false
}
