package pricing

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"courtflow/internal/domain"
)

type Service struct {
	store Store
	loc   *time.Location
	log   *slog.Logger
}

func NewService(store Store, loc *time.Location, log *slog.Logger) *Service {
	return &Service{store: store, loc: loc, log: log}
}

// Quote prices a prospective booking without reserving anything. The call
// is read-only and idempotent. Equipment resolution is lenient here: an
// id that does not resolve to an active item contributes zero cost and is
// reported back, so a stale client basket never fails the preview. The
// booking path resolves strictly instead.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrValidation
	}

	court, err := s.store.CourtByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	// Weekend and time-of-day matching read the facility's local clock,
	// regardless of the offset the caller sent. The booking path does the
	// same conversion, so a quote always equals the booking it leads to.
	in := Input{
		Court: *court,
		Start: req.StartTime.In(s.loc),
		End:   req.EndTime.In(s.loc),
	}

	if req.CoachID != nil {
		coach, err := s.store.CoachByID(ctx, *req.CoachID)
		switch {
		case err == nil:
			in.Coach = coach
		case errors.Is(err, gorm.ErrRecordNotFound):
			s.log.Warn("quote: coach not found, skipping fee", "coach_id", *req.CoachID)
		default:
			return nil, err
		}
	}

	var skipped []int64
	for _, item := range req.Equipment {
		eq, err := s.store.EquipmentByID(ctx, item.EquipmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				skipped = append(skipped, item.EquipmentID)
				continue
			}
			return nil, err
		}
		if eq.Status != domain.EquipmentActive {
			skipped = append(skipped, item.EquipmentID)
			continue
		}
		in.Items = append(in.Items, Line{Equipment: *eq, Quantity: item.Quantity})
	}

	rules, err := s.store.ActiveRules(ctx)
	if err != nil {
		return nil, err
	}

	return &QuoteResponse{
		Breakdown:        Evaluate(in, rules),
		SkippedEquipment: skipped,
	}, nil
}
