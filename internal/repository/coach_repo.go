package repository

import (
	"context"

	"courtflow/internal/domain"
)

func (s *Store) ActiveCoaches(ctx context.Context) ([]domain.Coach, error) {
	var coaches []domain.Coach
	err := s.db.WithContext(ctx).
		Preload("Availability").
		Where("status = ?", domain.CoachActive).
		Order("id").
		Find(&coaches).Error
	return coaches, err
}

func (s *Store) CoachByID(ctx context.Context, id int64) (*domain.Coach, error) {
	var c domain.Coach
	if err := s.db.WithContext(ctx).Preload("Availability").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CoachesByIDs(ctx context.Context, ids []int64) ([]domain.Coach, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var coaches []domain.Coach
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&coaches).Error
	return coaches, err
}

func (s *Store) Coaches(ctx context.Context) ([]domain.Coach, error) {
	var coaches []domain.Coach
	err := s.db.WithContext(ctx).Preload("Availability").Order("id").Find(&coaches).Error
	return coaches, err
}

func (s *Store) CreateCoach(ctx context.Context, c *domain.Coach) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *Store) UpdateCoach(ctx context.Context, c *domain.Coach) error {
	return s.db.WithContext(ctx).Save(c).Error
}

// DeleteCoach removes the coach and its schedule windows.
func (s *Store) DeleteCoach(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).
		Where("coach_id = ?", id).
		Delete(&domain.CoachAvailability{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&domain.Coach{}, id).Error
}

// ReplaceCoachAvailability swaps a coach's full window set.
func (s *Store) ReplaceCoachAvailability(ctx context.Context, coachID int64, windows []domain.CoachAvailability) error {
	if err := s.db.WithContext(ctx).
		Where("coach_id = ?", coachID).
		Delete(&domain.CoachAvailability{}).Error; err != nil {
		return err
	}
	if len(windows) == 0 {
		return nil
	}
	for i := range windows {
		windows[i].ID = 0
		windows[i].CoachID = coachID
	}
	return s.db.WithContext(ctx).Create(&windows).Error
}
