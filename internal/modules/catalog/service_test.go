package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtflow/internal/database"
	"courtflow/internal/domain"
	"courtflow/internal/repository"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewService(repository.NewStore(db))
}

func strPtr(s string) *string { return &s }

func TestCourtCRUD(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	court, err := service.CreateCourt(ctx, CourtInput{
		Name: "Indoor Premium Court", Type: "INDOOR", BaseRate: 4000,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CourtActive, court.Status) // default when omitted

	court, err = service.UpdateCourt(ctx, court.ID, CourtInput{
		Name: "Indoor Premium Court", Type: "INDOOR", BaseRate: 4200, Status: "MAINTENANCE",
	})
	require.NoError(t, err)
	assert.Equal(t, 4200.0, court.BaseRate)
	assert.Equal(t, domain.CourtMaintenance, court.Status)

	courts, err := service.Courts(ctx)
	require.NoError(t, err)
	assert.Len(t, courts, 1)

	require.NoError(t, service.DeleteCourt(ctx, court.ID))
	courts, err = service.Courts(ctx)
	require.NoError(t, err)
	assert.Empty(t, courts)
}

func TestCreateCoach_ValidatesWindows(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	_, err := service.CreateCoach(ctx, CoachInput{
		Name: "Sarah Chen", HourlyRate: 5000,
		Availability: []AvailabilityWindowInput{
			{DayOfWeek: "MONDAY", StartTime: "17:00", EndTime: "09:00", IsActive: true},
		},
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CreateCoach(ctx, CoachInput{
		Name: "Sarah Chen", HourlyRate: 5000,
		Availability: []AvailabilityWindowInput{
			{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "17:00", IsActive: true, IsOverride: true},
		},
	})
	assert.ErrorIs(t, err, ErrValidation)

	coach, err := service.CreateCoach(ctx, CoachInput{
		Name: "Sarah Chen", HourlyRate: 5000,
		Availability: []AvailabilityWindowInput{
			{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "17:00", IsActive: true},
		},
	})
	require.NoError(t, err)
	assert.Len(t, coach.Availability, 1)
}

func TestUpdateCoach_ReplacesWindows(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	coach, err := service.CreateCoach(ctx, CoachInput{
		Name: "Sarah Chen", HourlyRate: 5000,
		Availability: []AvailabilityWindowInput{
			{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "17:00", IsActive: true},
			{DayOfWeek: "TUESDAY", StartTime: "09:00", EndTime: "17:00", IsActive: true},
		},
	})
	require.NoError(t, err)

	updated, err := service.UpdateCoach(ctx, coach.ID, CoachInput{
		Name: "Sarah Chen", HourlyRate: 5500,
		Availability: []AvailabilityWindowInput{
			{DayOfWeek: "FRIDAY", StartTime: "10:00", EndTime: "14:00", IsActive: true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 5500.0, updated.HourlyRate)
	require.Len(t, updated.Availability, 1)
	assert.Equal(t, "FRIDAY", updated.Availability[0].DayOfWeek)
}

func TestCreateRule_ConditionUnion(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	// TIME_OF_DAY requires a window
	_, err := service.CreateRule(ctx, RuleInput{
		Name: "Peak", Kind: "TIME_OF_DAY", Amount: 800, IsActive: true,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CreateRule(ctx, RuleInput{
		Name: "Peak", Kind: "TIME_OF_DAY", Amount: 800, IsActive: true,
		WindowStart: strPtr("21:00"), WindowEnd: strPtr("18:00"),
	})
	assert.ErrorIs(t, err, ErrValidation)

	rule, err := service.CreateRule(ctx, RuleInput{
		Name: "Peak", Kind: "TIME_OF_DAY", Amount: 800, IsActive: true,
		WindowStart: strPtr("18:00"), WindowEnd: strPtr("21:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "18:00", *rule.WindowStart)

	// COURT_TYPE requires a valid court type
	_, err = service.CreateRule(ctx, RuleInput{
		Name: "Indoor", Kind: "COURT_TYPE", Amount: 10, IsPercentage: true,
	})
	assert.ErrorIs(t, err, ErrValidation)

	// DURATION requires min_hours > 0
	zero := 0.0
	_, err = service.CreateRule(ctx, RuleInput{
		Name: "Long", Kind: "DURATION", Amount: 500, MinHours: &zero,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRule_DropsStrayConditionFields(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	indoor := domain.CourtIndoor
	min := 2.0
	rule, err := service.CreateRule(ctx, RuleInput{
		Name: "Weekend Premium", Kind: "WEEKEND", Amount: 15, IsPercentage: true, IsActive: true,
		WindowStart: strPtr("18:00"), WindowEnd: strPtr("21:00"),
		CourtType: &indoor, MinHours: &min,
	})
	require.NoError(t, err)
	assert.Nil(t, rule.WindowStart)
	assert.Nil(t, rule.WindowEnd)
	assert.Nil(t, rule.CourtType)
	assert.Nil(t, rule.MinHours)
}

func TestStats_CurrentMonthOnly(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	court, err := service.CreateCourt(ctx, CourtInput{
		Name: "Outdoor Court A", Type: "OUTDOOR", BaseRate: 2800,
	})
	require.NoError(t, err)

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	b := &domain.Booking{
		Reference: "r1", UserID: "user-1", CourtID: court.ID,
		StartTime: now.Add(24 * time.Hour), EndTime: now.Add(25 * time.Hour),
		Status: domain.BookingConfirmed, TotalPrice: 2800,
	}
	require.NoError(t, service.store.CreateBooking(ctx, b))
	require.NoError(t, service.store.DB().Model(b).Update("created_at", now).Error)

	stats, err := service.Stats(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalBookings)
	assert.Equal(t, 2800.0, stats.TotalRevenue)
	assert.Equal(t, int64(1), stats.ActiveCourts)
}
