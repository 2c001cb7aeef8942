package pricing

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"courtflow/internal/domain"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) CourtByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}

func (m *MockStore) CoachByID(ctx context.Context, id int64) (*domain.Coach, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coach), args.Error(1)
}

func (m *MockStore) EquipmentByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockStore) ActiveRules(ctx context.Context) ([]domain.PricingRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricingRule), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQuote_Success(t *testing.T) {
	store := new(MockStore)
	store.On("CourtByID", mock.Anything, int64(1)).
		Return(&domain.Court{ID: 1, Type: domain.CourtOutdoor, BaseRate: 2800, Status: domain.CourtActive}, nil)
	store.On("ActiveRules", mock.Anything).Return([]domain.PricingRule{}, nil)

	service := NewService(store, time.UTC, testLogger())

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	resp, err := service.Quote(context.Background(), QuoteRequest{
		CourtID:   1,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})

	assert.NoError(t, err)
	assert.Equal(t, 2800.0, resp.TotalPrice)
	assert.Empty(t, resp.SkippedEquipment)
}

func TestQuote_CourtNotFound(t *testing.T) {
	store := new(MockStore)
	store.On("CourtByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(store, time.UTC, testLogger())

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	_, err := service.Quote(context.Background(), QuoteRequest{
		CourtID:   99,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestQuote_InvalidWindow(t *testing.T) {
	service := NewService(new(MockStore), time.UTC, testLogger())

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	_, err := service.Quote(context.Background(), QuoteRequest{
		CourtID:   1,
		StartTime: start,
		EndTime:   start,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestQuote_SkipsUnresolvedEquipment(t *testing.T) {
	store := new(MockStore)
	store.On("CourtByID", mock.Anything, int64(1)).
		Return(&domain.Court{ID: 1, Type: domain.CourtOutdoor, BaseRate: 2800}, nil)
	store.On("EquipmentByID", mock.Anything, int64(7)).
		Return(&domain.Equipment{ID: 7, Name: "Professional Racket", PricePerHour: 400, Status: domain.EquipmentActive}, nil)
	store.On("EquipmentByID", mock.Anything, int64(8)).Return(nil, gorm.ErrRecordNotFound)
	store.On("EquipmentByID", mock.Anything, int64(9)).
		Return(&domain.Equipment{ID: 9, Name: "Old Racket", PricePerHour: 100, Status: domain.EquipmentInactive}, nil)
	store.On("ActiveRules", mock.Anything).Return([]domain.PricingRule{}, nil)

	service := NewService(store, time.UTC, testLogger())

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	resp, err := service.Quote(context.Background(), QuoteRequest{
		CourtID:   1,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Equipment: []EquipmentRequest{
			{EquipmentID: 7, Quantity: 2},
			{EquipmentID: 8, Quantity: 1},
			{EquipmentID: 9, Quantity: 1},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, []int64{8, 9}, resp.SkippedEquipment)
	assert.Equal(t, 800.0, resp.EquipmentCost)
	assert.Equal(t, 3600.0, resp.TotalPrice)
}

func TestQuote_SkipsUnknownCoach(t *testing.T) {
	store := new(MockStore)
	store.On("CourtByID", mock.Anything, int64(1)).
		Return(&domain.Court{ID: 1, Type: domain.CourtOutdoor, BaseRate: 2800}, nil)
	store.On("CoachByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)
	store.On("ActiveRules", mock.Anything).Return([]domain.PricingRule{}, nil)

	service := NewService(store, time.UTC, testLogger())

	coachID := int64(42)
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	resp, err := service.Quote(context.Background(), QuoteRequest{
		CourtID:   1,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		CoachID:   &coachID,
	})

	assert.NoError(t, err)
	assert.Equal(t, 0.0, resp.CoachFee)
	assert.Equal(t, 2800.0, resp.TotalPrice)
}

func TestQuote_RulesMatchInFacilityZone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	assert.NoError(t, err)

	store := new(MockStore)
	store.On("CourtByID", mock.Anything, int64(1)).
		Return(&domain.Court{ID: 1, Type: domain.CourtOutdoor, BaseRate: 2800, Status: domain.CourtActive}, nil)
	store.On("ActiveRules", mock.Anything).Return([]domain.PricingRule{
		{Name: "Weekend Premium", Kind: domain.RuleWeekend, IsActive: true, Priority: 9, Amount: 15, IsPercentage: true},
	}, nil)

	service := NewService(store, tokyo, testLogger())

	// Friday 23:00 UTC is Saturday 08:00 in Tokyo: the facility clock,
	// not the caller's offset, decides the weekend surcharge.
	start := time.Date(2026, 3, 6, 23, 0, 0, 0, time.UTC)
	resp, err := service.Quote(context.Background(), QuoteRequest{
		CourtID:   1,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})

	assert.NoError(t, err)
	require.Len(t, resp.Surcharges, 1)
	assert.Equal(t, "Weekend Premium", resp.Surcharges[0].Name)
	assert.Equal(t, 3220.0, resp.TotalPrice)

	// One day earlier the same UTC clock lands on a Tokyo Friday morning.
	weekday := time.Date(2026, 3, 5, 23, 0, 0, 0, time.UTC)
	resp, err = service.Quote(context.Background(), QuoteRequest{
		CourtID:   1,
		StartTime: weekday,
		EndTime:   weekday.Add(time.Hour),
	})

	assert.NoError(t, err)
	assert.Empty(t, resp.Surcharges)
	assert.Equal(t, 2800.0, resp.TotalPrice)
}
