package repository

import (
	"context"
	"time"

	"courtflow/internal/domain"
)

func (s *Store) ActiveEquipment(ctx context.Context) ([]domain.Equipment, error) {
	var items []domain.Equipment
	err := s.db.WithContext(ctx).
		Where("status = ?", domain.EquipmentActive).
		Order("id").
		Find(&items).Error
	return items, err
}

func (s *Store) EquipmentByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var e domain.Equipment
	if err := s.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) EquipmentByIDs(ctx context.Context, ids []int64) ([]domain.Equipment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []domain.Equipment
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

// EquipmentReservedQuantity sums the units of one equipment pool held by
// occupying bookings that overlap [start,end). Availability is always
// recomputed from this, never from a stored counter.
func (s *Store) EquipmentReservedQuantity(ctx context.Context, equipmentID int64, start, end time.Time) (int, error) {
	var reserved int64
	err := s.db.WithContext(ctx).
		Table("booking_items").
		Select("COALESCE(SUM(booking_items.quantity), 0)").
		Joins("JOIN bookings ON bookings.id = booking_items.booking_id").
		Where("booking_items.equipment_id = ?", equipmentID).
		Where("bookings.status = ?", domain.BookingConfirmed).
		Where("bookings.start_time < ? AND bookings.end_time > ?", end, start).
		Scan(&reserved).Error
	return int(reserved), err
}

func (s *Store) EquipmentAll(ctx context.Context) ([]domain.Equipment, error) {
	var items []domain.Equipment
	err := s.db.WithContext(ctx).Order("id").Find(&items).Error
	return items, err
}

func (s *Store) CreateEquipment(ctx context.Context, e *domain.Equipment) error {
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *Store) UpdateEquipment(ctx context.Context, e *domain.Equipment) error {
	return s.db.WithContext(ctx).Save(e).Error
}

func (s *Store) DeleteEquipment(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Delete(&domain.Equipment{}, id).Error
}
