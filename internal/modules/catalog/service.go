package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courtflow/internal/domain"
	"courtflow/internal/pkg/timeutil"
	"courtflow/internal/repository"
)

var ErrValidation = errors.New("invalid catalog input")

// Service is the master-data management surface: courts, coaches,
// equipment and pricing rules. The reservation engine only ever reads
// these rows; all mutation happens here.
type Service struct {
	store *repository.Store
}

func NewService(store *repository.Store) *Service {
	return &Service{store: store}
}

/* ---------- courts ---------- */

func (s *Service) Courts(ctx context.Context) ([]domain.Court, error) {
	return s.store.Courts(ctx)
}

func (s *Service) CreateCourt(ctx context.Context, in CourtInput) (*domain.Court, error) {
	c := &domain.Court{
		Name:        in.Name,
		Type:        domain.CourtType(in.Type),
		Status:      courtStatusOrDefault(in.Status),
		BaseRate:    in.BaseRate,
		Description: in.Description,
	}
	if err := s.store.CreateCourt(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateCourt(ctx context.Context, id int64, in CourtInput) (*domain.Court, error) {
	c, err := s.store.CourtByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Type = domain.CourtType(in.Type)
	c.Status = courtStatusOrDefault(in.Status)
	c.BaseRate = in.BaseRate
	c.Description = in.Description
	if err := s.store.UpdateCourt(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) DeleteCourt(ctx context.Context, id int64) error {
	return s.store.DeleteCourt(ctx, id)
}

func courtStatusOrDefault(status string) domain.CourtStatus {
	if status == "" {
		return domain.CourtActive
	}
	return domain.CourtStatus(status)
}

/* ---------- coaches ---------- */

func (s *Service) Coaches(ctx context.Context) ([]domain.Coach, error) {
	return s.store.Coaches(ctx)
}

func (s *Service) CreateCoach(ctx context.Context, in CoachInput) (*domain.Coach, error) {
	windows, err := toWindows(in.Availability)
	if err != nil {
		return nil, err
	}
	c := &domain.Coach{
		Name:           in.Name,
		Bio:            in.Bio,
		Specialization: in.Specialization,
		HourlyRate:     in.HourlyRate,
		Status:         coachStatusOrDefault(in.Status),
		Availability:   windows,
	}
	if err := s.store.CreateCoach(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateCoach(ctx context.Context, id int64, in CoachInput) (*domain.Coach, error) {
	c, err := s.store.CoachByID(ctx, id)
	if err != nil {
		return nil, err
	}
	windows, err := toWindows(in.Availability)
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Bio = in.Bio
	c.Specialization = in.Specialization
	c.HourlyRate = in.HourlyRate
	c.Status = coachStatusOrDefault(in.Status)
	c.Availability = nil
	if err := s.store.UpdateCoach(ctx, c); err != nil {
		return nil, err
	}
	if err := s.store.ReplaceCoachAvailability(ctx, c.ID, windows); err != nil {
		return nil, err
	}
	c.Availability = windows
	return c, nil
}

func (s *Service) DeleteCoach(ctx context.Context, id int64) error {
	return s.store.DeleteCoach(ctx, id)
}

func coachStatusOrDefault(status string) domain.CoachStatus {
	if status == "" {
		return domain.CoachActive
	}
	return domain.CoachStatus(status)
}

func toWindows(inputs []AvailabilityWindowInput) ([]domain.CoachAvailability, error) {
	windows := make([]domain.CoachAvailability, 0, len(inputs))
	for _, w := range inputs {
		startMin, err := timeutil.MinutesSinceMidnight(w.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: window start %q", ErrValidation, w.StartTime)
		}
		endMin, err := timeutil.MinutesSinceMidnight(w.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: window end %q", ErrValidation, w.EndTime)
		}
		if endMin <= startMin {
			return nil, fmt.Errorf("%w: window %s-%s is empty", ErrValidation, w.StartTime, w.EndTime)
		}
		if w.IsOverride && w.SpecificDate == nil {
			return nil, fmt.Errorf("%w: override window needs a specific date", ErrValidation)
		}
		windows = append(windows, domain.CoachAvailability{
			DayOfWeek:    w.DayOfWeek,
			StartTime:    w.StartTime,
			EndTime:      w.EndTime,
			IsActive:     w.IsActive,
			IsOverride:   w.IsOverride,
			SpecificDate: w.SpecificDate,
		})
	}
	return windows, nil
}

/* ---------- equipment ---------- */

func (s *Service) Equipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.store.EquipmentAll(ctx)
}

func (s *Service) CreateEquipment(ctx context.Context, in EquipmentInput) (*domain.Equipment, error) {
	e := &domain.Equipment{
		Name:          in.Name,
		Type:          domain.EquipmentType(in.Type),
		Size:          in.Size,
		TotalQuantity: in.TotalQuantity,
		PricePerHour:  in.PricePerHour,
		PerSlotMax:    in.PerSlotMax,
		Status:        equipmentStatusOrDefault(in.Status),
		Description:   in.Description,
	}
	if err := s.store.CreateEquipment(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) UpdateEquipment(ctx context.Context, id int64, in EquipmentInput) (*domain.Equipment, error) {
	e, err := s.store.EquipmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Name = in.Name
	e.Type = domain.EquipmentType(in.Type)
	e.Size = in.Size
	e.TotalQuantity = in.TotalQuantity
	e.PricePerHour = in.PricePerHour
	e.PerSlotMax = in.PerSlotMax
	e.Status = equipmentStatusOrDefault(in.Status)
	e.Description = in.Description
	if err := s.store.UpdateEquipment(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) DeleteEquipment(ctx context.Context, id int64) error {
	return s.store.DeleteEquipment(ctx, id)
}

func equipmentStatusOrDefault(status string) domain.EquipmentStatus {
	if status == "" {
		return domain.EquipmentActive
	}
	return domain.EquipmentStatus(status)
}

/* ---------- pricing rules ---------- */

func (s *Service) Rules(ctx context.Context) ([]domain.PricingRule, error) {
	return s.store.Rules(ctx)
}

func (s *Service) CreateRule(ctx context.Context, in RuleInput) (*domain.PricingRule, error) {
	r, err := toRule(in)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateRule(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) UpdateRule(ctx context.Context, id int64, in RuleInput) (*domain.PricingRule, error) {
	existing, err := s.store.RuleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r, err := toRule(in)
	if err != nil {
		return nil, err
	}
	r.ID = existing.ID
	r.CreatedAt = existing.CreatedAt
	if err := s.store.UpdateRule(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) DeleteRule(ctx context.Context, id int64) error {
	return s.store.DeleteRule(ctx, id)
}

// toRule validates the condition union at write time so the evaluator can
// trust whatever it loads. Fields that do not belong to the kind are
// dropped.
func toRule(in RuleInput) (*domain.PricingRule, error) {
	r := &domain.PricingRule{
		Name:         in.Name,
		Kind:         domain.RuleKind(in.Kind),
		IsActive:     in.IsActive,
		Priority:     in.Priority,
		Amount:       in.Amount,
		IsPercentage: in.IsPercentage,
	}
	switch r.Kind {
	case domain.RuleTimeOfDay:
		if in.WindowStart == nil || in.WindowEnd == nil {
			return nil, fmt.Errorf("%w: TIME_OF_DAY rule needs window_start and window_end", ErrValidation)
		}
		startMin, err := timeutil.MinutesSinceMidnight(*in.WindowStart)
		if err != nil {
			return nil, fmt.Errorf("%w: window_start %q", ErrValidation, *in.WindowStart)
		}
		endMin, err := timeutil.MinutesSinceMidnight(*in.WindowEnd)
		if err != nil {
			return nil, fmt.Errorf("%w: window_end %q", ErrValidation, *in.WindowEnd)
		}
		if endMin <= startMin {
			return nil, fmt.Errorf("%w: window %s-%s is empty", ErrValidation, *in.WindowStart, *in.WindowEnd)
		}
		r.WindowStart = in.WindowStart
		r.WindowEnd = in.WindowEnd
	case domain.RuleCourtType:
		if in.CourtType == nil || (*in.CourtType != domain.CourtIndoor && *in.CourtType != domain.CourtOutdoor) {
			return nil, fmt.Errorf("%w: COURT_TYPE rule needs a valid court_type", ErrValidation)
		}
		r.CourtType = in.CourtType
	case domain.RuleDuration:
		if in.MinHours == nil || *in.MinHours <= 0 {
			return nil, fmt.Errorf("%w: DURATION rule needs min_hours > 0", ErrValidation)
		}
		r.MinHours = in.MinHours
	}
	return r, nil
}

/* ---------- stats ---------- */

// Stats aggregates the current calendar month in the facility's zone.
func (s *Service) Stats(ctx context.Context, now time.Time) (*repository.FacilityStats, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	return s.store.FacilityStatsForPeriod(ctx, monthStart, monthEnd)
}
