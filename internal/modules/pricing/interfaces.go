package pricing

import (
	"context"

	"courtflow/internal/domain"
)

// Store is the read surface the quote service needs.
type Store interface {
	CourtByID(ctx context.Context, id int64) (*domain.Court, error)
	CoachByID(ctx context.Context, id int64) (*domain.Coach, error)
	EquipmentByID(ctx context.Context, id int64) (*domain.Equipment, error)
	ActiveRules(ctx context.Context) ([]domain.PricingRule, error)
}
