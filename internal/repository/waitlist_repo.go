package repository

import (
	"context"
	"time"

	"courtflow/internal/domain"
)

func (s *Store) AddWaitlistEntry(ctx context.Context, e *domain.WaitlistEntry) error {
	return s.db.WithContext(ctx).Create(e).Error
}

// NextWaitingEntry returns the oldest WAITING entry for exactly this court
// and window, or nil when the queue is empty.
func (s *Store) NextWaitingEntry(ctx context.Context, courtID int64, start, end time.Time) (*domain.WaitlistEntry, error) {
	var entries []domain.WaitlistEntry
	err := s.db.WithContext(ctx).
		Where("court_id = ?", courtID).
		Where("start_time = ? AND end_time = ?", start, end).
		Where("status = ?", domain.WaitlistWaiting).
		Order("created_at ASC, id ASC").
		Limit(1).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

func (s *Store) MarkWaitlistPromoted(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).
		Model(&domain.WaitlistEntry{}).
		Where("id = ?", id).
		Update("status", domain.WaitlistPromoted).Error
}

// WaitingEntries lists the FIFO queue for a court and window.
func (s *Store) WaitingEntries(ctx context.Context, courtID int64, start, end time.Time) ([]domain.WaitlistEntry, error) {
	var entries []domain.WaitlistEntry
	err := s.db.WithContext(ctx).
		Where("court_id = ?", courtID).
		Where("start_time = ? AND end_time = ?", start, end).
		Where("status = ?", domain.WaitlistWaiting).
		Order("created_at ASC, id ASC").
		Find(&entries).Error
	return entries, err
}
