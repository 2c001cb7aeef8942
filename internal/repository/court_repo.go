package repository

import (
	"context"

	"courtflow/internal/domain"
)

func (s *Store) ActiveCourts(ctx context.Context) ([]domain.Court, error) {
	var courts []domain.Court
	err := s.db.WithContext(ctx).
		Where("status = ?", domain.CourtActive).
		Order("id").
		Find(&courts).Error
	return courts, err
}

func (s *Store) CourtByID(ctx context.Context, id int64) (*domain.Court, error) {
	var c domain.Court
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CourtsByIDs(ctx context.Context, ids []int64) ([]domain.Court, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var courts []domain.Court
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&courts).Error
	return courts, err
}

func (s *Store) Courts(ctx context.Context) ([]domain.Court, error) {
	var courts []domain.Court
	err := s.db.WithContext(ctx).Order("id").Find(&courts).Error
	return courts, err
}

func (s *Store) CreateCourt(ctx context.Context, c *domain.Court) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *Store) UpdateCourt(ctx context.Context, c *domain.Court) error {
	return s.db.WithContext(ctx).Save(c).Error
}

func (s *Store) DeleteCourt(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Delete(&domain.Court{}, id).Error
}
