package repository

import (
	"context"

	"courtflow/internal/domain"
)

// ActiveRules returns active pricing rules ordered by priority descending,
// id ascending for a stable tie-break. The order fixes how surcharges are
// presented in a breakdown; every returned rule is still evaluated.
func (s *Store) ActiveRules(ctx context.Context) ([]domain.PricingRule, error) {
	var rules []domain.PricingRule
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("priority DESC, id ASC").
		Find(&rules).Error
	return rules, err
}

func (s *Store) Rules(ctx context.Context) ([]domain.PricingRule, error) {
	var rules []domain.PricingRule
	err := s.db.WithContext(ctx).Order("priority DESC, id ASC").Find(&rules).Error
	return rules, err
}

func (s *Store) RuleByID(ctx context.Context, id int64) (*domain.PricingRule, error) {
	var r domain.PricingRule
	if err := s.db.WithContext(ctx).First(&r, id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) CreateRule(ctx context.Context, r *domain.PricingRule) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *Store) UpdateRule(ctx context.Context, r *domain.PricingRule) error {
	return s.db.WithContext(ctx).Save(r).Error
}

func (s *Store) DeleteRule(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Delete(&domain.PricingRule{}, id).Error
}
