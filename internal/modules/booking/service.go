package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"courtflow/internal/domain"
	"courtflow/internal/modules/availability"
	"courtflow/internal/modules/pricing"
)

// Service is the reservation transaction manager. Every Create and Cancel
// runs its validation reads and writes inside one store transaction, with
// the partial unique index on (court_id, start_time, CONFIRMED) as the
// backstop for races that slip past the overlap scan.
type Service struct {
	store       Store
	loc         *time.Location
	slotMinutes int
	log         *slog.Logger
}

func NewService(store Store, loc *time.Location, slotMinutes int, log *slog.Logger) *Service {
	return &Service{
		store:       store,
		loc:         loc,
		slotMinutes: slotMinutes,
		log:         log,
	}
}

// Create books a court, optional coach and optional equipment for the
// window, returning the fully-populated reservation.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*BookingDetails, error) {
	if err := s.validateWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	var details *BookingDetails
	err := s.store.Transaction(ctx, func(tx Store) error {
		d, err := s.reserveTx(ctx, tx, req)
		if err != nil {
			return err
		}
		details = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("booking created",
		"booking_id", details.ID, "court_id", details.CourtID,
		"user_id", details.UserID, "start", details.StartTime)
	return details, nil
}

// validateWindow rejects misaligned input outright rather than snapping:
// silently moving the window would change what the caller pays for.
func (s *Service) validateWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return &ValidationError{Message: "start and end times are required"}
	}
	if !end.After(start) {
		return &ValidationError{Message: "end time must be after start time"}
	}
	local := start.In(s.loc)
	if local.Second() != 0 || local.Nanosecond() != 0 ||
		(local.Hour()*60+local.Minute())%s.slotMinutes != 0 {
		return &ValidationError{Message: fmt.Sprintf("start time must align to the %d-minute slot grid", s.slotMinutes)}
	}
	if end.Sub(start)%(time.Duration(s.slotMinutes)*time.Minute) != 0 {
		return &ValidationError{Message: fmt.Sprintf("duration must be a multiple of %d minutes", s.slotMinutes)}
	}
	return nil
}

// reserveTx validates against live data and inserts the reservation, all
// on the caller's transaction. The public Create path and waitlist
// promotion both come through here; promotion must never open a second
// independent transaction that could contend with the cancellation.
func (s *Service) reserveTx(ctx context.Context, tx Store, req CreateBookingRequest) (*BookingDetails, error) {
	court, err := tx.CourtByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "court", ID: req.CourtID}
		}
		return nil, err
	}
	if court.Status != domain.CourtActive {
		return nil, &ConflictError{Constraint: "court", Message: fmt.Sprintf("court %q is not open for booking", court.Name)}
	}

	occupied, err := tx.CourtOccupied(ctx, court.ID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, &ConflictError{Constraint: "court", Message: "court is already booked for this time slot"}
	}

	var coach *domain.Coach
	if req.CoachID != nil {
		coach, err = tx.CoachByID(ctx, *req.CoachID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entity: "coach", ID: *req.CoachID}
			}
			return nil, err
		}
		if coach.Status != domain.CoachActive {
			return nil, &ConflictError{Constraint: "coach", Message: fmt.Sprintf("coach %s is not taking bookings", coach.Name)}
		}
		busy, err := tx.CoachOccupied(ctx, coach.ID, req.StartTime, req.EndTime)
		if err != nil {
			return nil, err
		}
		if busy {
			return nil, &ConflictError{Constraint: "coach", Message: fmt.Sprintf("coach %s is already booked for this time slot", coach.Name)}
		}
		if !availability.ScheduleAllows(coach, req.StartTime.In(s.loc)) {
			return nil, &ConflictError{Constraint: "coach", Message: fmt.Sprintf("coach %s has no availability at this time", coach.Name)}
		}
	}

	lines := make([]pricing.Line, 0, len(req.Equipment))
	for _, item := range req.Equipment {
		eq, err := tx.EquipmentByID(ctx, item.EquipmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entity: "equipment", ID: item.EquipmentID}
			}
			return nil, err
		}
		if eq.Status != domain.EquipmentActive {
			return nil, &NotFoundError{Entity: "equipment", ID: item.EquipmentID}
		}
		if item.Quantity > eq.PerSlotMax {
			return nil, &ConflictError{
				Constraint: "equipment",
				Message:    fmt.Sprintf("%s: requested %d exceeds the per-booking limit of %d", eq.Name, item.Quantity, eq.PerSlotMax),
			}
		}
		reserved, err := tx.EquipmentReservedQuantity(ctx, eq.ID, req.StartTime, req.EndTime)
		if err != nil {
			return nil, err
		}
		if available := eq.TotalQuantity - reserved; item.Quantity > available {
			return nil, &ConflictError{
				Constraint: "equipment",
				Message:    fmt.Sprintf("%s: requested %d, only %d available", eq.Name, item.Quantity, available),
			}
		}
		lines = append(lines, pricing.Line{Equipment: *eq, Quantity: item.Quantity})
	}

	rules, err := tx.ActiveRules(ctx)
	if err != nil {
		return nil, err
	}
	breakdown := pricing.Evaluate(pricing.Input{
		Court: *court,
		Start: req.StartTime.In(s.loc),
		End:   req.EndTime.In(s.loc),
		Coach: coach,
		Items: lines,
	}, rules)

	snapshot, err := json.Marshal(breakdown)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		Reference:      uuid.NewString(),
		UserID:         req.UserID,
		CourtID:        court.ID,
		CoachID:        req.CoachID,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Status:         domain.BookingConfirmed,
		TotalPrice:     breakdown.TotalPrice,
		PriceBreakdown: snapshot,
	}
	for _, line := range lines {
		unit, lineTotal := pricing.LineCost(line.Equipment, line.Quantity, req.StartTime, req.EndTime)
		b.Items = append(b.Items, domain.BookingItem{
			EquipmentID: line.Equipment.ID,
			Quantity:    line.Quantity,
			UnitPrice:   unit.Major(),
			LinePrice:   lineTotal.Major(),
		})
	}

	if err := tx.CreateBooking(ctx, b); err != nil {
		if isUniqueViolation(err) {
			// Lost the race: another transaction committed an occupying
			// booking for the same slot after our overlap scan.
			return nil, &ConflictError{Constraint: "court", Message: "court is already booked for this time slot"}
		}
		return nil, err
	}

	details := &BookingDetails{
		ID:             b.ID,
		Reference:      b.Reference,
		UserID:         b.UserID,
		Status:         b.Status,
		CourtID:        court.ID,
		CourtName:      court.Name,
		CoachID:        b.CoachID,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		TotalPrice:     b.TotalPrice,
		PriceBreakdown: b.PriceBreakdown,
		CreatedAt:      b.CreatedAt,
	}
	if coach != nil {
		details.CoachName = coach.Name
	}
	for i, item := range b.Items {
		details.Items = append(details.Items, ItemDetail{
			EquipmentID:   item.EquipmentID,
			EquipmentName: lines[i].Equipment.Name,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			LinePrice:     item.LinePrice,
		})
	}
	return details, nil
}

// Cancel flips the booking to CANCELED and, atomically with it, promotes
// the oldest WAITING waitlist entry for the identical window if one
// exists. A failed promotion is contained in a savepoint and logged; the
// cancellation itself always commits.
func (s *Service) Cancel(ctx context.Context, bookingID int64, userID string) (*BookingDetails, error) {
	var details *BookingDetails
	err := s.store.Transaction(ctx, func(tx Store) error {
		b, err := tx.BookingByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "booking", ID: bookingID}
			}
			return err
		}
		if b.UserID != userID {
			return &AuthorizationError{Message: "only the booking owner can cancel it"}
		}
		if b.Status == domain.BookingCanceled {
			return &ValidationError{Message: "booking is already canceled"}
		}
		if b.Status == domain.BookingCompleted {
			return &ValidationError{Message: "completed bookings cannot be canceled"}
		}

		if err := tx.MarkBookingCanceled(ctx, b.ID); err != nil {
			return err
		}
		now := time.Now()
		b.Status = domain.BookingCanceled
		b.CancelledAt = &now

		entry, err := tx.NextWaitingEntry(ctx, b.CourtID, b.StartTime, b.EndTime)
		if err != nil {
			return err
		}
		if entry != nil {
			perr := tx.Transaction(ctx, func(ptx Store) error {
				if _, err := s.reserveTx(ctx, ptx, CreateBookingRequest{
					UserID:    entry.UserID,
					CourtID:   entry.CourtID,
					StartTime: entry.StartTime,
					EndTime:   entry.EndTime,
				}); err != nil {
					return err
				}
				return ptx.MarkWaitlistPromoted(ctx, entry.ID)
			})
			if perr != nil {
				s.log.Warn("waitlist promotion failed, entry stays WAITING",
					"entry_id", entry.ID, "court_id", entry.CourtID, "error", perr)
			} else {
				s.log.Info("waitlist entry promoted",
					"entry_id", entry.ID, "user_id", entry.UserID, "court_id", entry.CourtID)
			}
		}

		d, err := s.detailsFor(ctx, tx, b)
		if err != nil {
			return err
		}
		details = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

// AddToWaitlist queues a request for an exact window. By definition the
// court is unavailable, so no conflict check is made.
func (s *Service) AddToWaitlist(ctx context.Context, req WaitlistRequest) (*domain.WaitlistEntry, error) {
	if err := s.validateWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	entry := &domain.WaitlistEntry{
		UserID:    req.UserID,
		CourtID:   req.CourtID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    domain.WaitlistWaiting,
	}
	if err := s.store.AddWaitlistEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Waitlist lists the WAITING queue for a court and window, FIFO.
func (s *Service) Waitlist(ctx context.Context, courtID int64, start, end time.Time) ([]domain.WaitlistEntry, error) {
	return s.store.WaitingEntries(ctx, courtID, start, end)
}

// ListUserBookings returns the user's bookings, newest start first, with
// resolved names and line items.
func (s *Service) ListUserBookings(ctx context.Context, userID string, includeHistory bool) ([]BookingDetails, error) {
	bookings, err := s.store.UserBookings(ctx, userID, includeHistory, time.Now().In(s.loc))
	if err != nil {
		return nil, err
	}

	courtIDs := make([]int64, 0, len(bookings))
	coachIDs := make([]int64, 0)
	equipmentIDs := make([]int64, 0)
	for _, b := range bookings {
		courtIDs = append(courtIDs, b.CourtID)
		if b.CoachID != nil {
			coachIDs = append(coachIDs, *b.CoachID)
		}
		for _, item := range b.Items {
			equipmentIDs = append(equipmentIDs, item.EquipmentID)
		}
	}

	courts, coaches, equipment, err := s.loadNames(ctx, s.store, courtIDs, coachIDs, equipmentIDs)
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(bookings))
	for i := range bookings {
		out = append(out, *assemble(&bookings[i], courts, coaches, equipment))
	}
	return out, nil
}

func (s *Service) detailsFor(ctx context.Context, tx Store, b *domain.Booking) (*BookingDetails, error) {
	var coachIDs, equipmentIDs []int64
	if b.CoachID != nil {
		coachIDs = append(coachIDs, *b.CoachID)
	}
	for _, item := range b.Items {
		equipmentIDs = append(equipmentIDs, item.EquipmentID)
	}
	courts, coaches, equipment, err := s.loadNames(ctx, tx, []int64{b.CourtID}, coachIDs, equipmentIDs)
	if err != nil {
		return nil, err
	}
	return assemble(b, courts, coaches, equipment), nil
}

func (s *Service) loadNames(ctx context.Context, st Store, courtIDs, coachIDs, equipmentIDs []int64) (map[int64]domain.Court, map[int64]domain.Coach, map[int64]domain.Equipment, error) {
	courtRows, err := st.CourtsByIDs(ctx, courtIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	coachRows, err := st.CoachesByIDs(ctx, coachIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	equipmentRows, err := st.EquipmentByIDs(ctx, equipmentIDs)
	if err != nil {
		return nil, nil, nil, err
	}

	courts := make(map[int64]domain.Court, len(courtRows))
	for _, c := range courtRows {
		courts[c.ID] = c
	}
	coaches := make(map[int64]domain.Coach, len(coachRows))
	for _, c := range coachRows {
		coaches[c.ID] = c
	}
	equipment := make(map[int64]domain.Equipment, len(equipmentRows))
	for _, e := range equipmentRows {
		equipment[e.ID] = e
	}
	return courts, coaches, equipment, nil
}

func assemble(b *domain.Booking, courts map[int64]domain.Court, coaches map[int64]domain.Coach, equipment map[int64]domain.Equipment) *BookingDetails {
	d := &BookingDetails{
		ID:             b.ID,
		Reference:      b.Reference,
		UserID:         b.UserID,
		Status:         b.Status,
		CourtID:        b.CourtID,
		CoachID:        b.CoachID,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		TotalPrice:     b.TotalPrice,
		PriceBreakdown: b.PriceBreakdown,
		CreatedAt:      b.CreatedAt,
		CancelledAt:    b.CancelledAt,
	}
	if c, ok := courts[b.CourtID]; ok {
		d.CourtName = c.Name
	}
	if b.CoachID != nil {
		if c, ok := coaches[*b.CoachID]; ok {
			d.CoachName = c.Name
		}
	}
	for _, item := range b.Items {
		detail := ItemDetail{
			EquipmentID: item.EquipmentID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LinePrice:   item.LinePrice,
		}
		if e, ok := equipment[item.EquipmentID]; ok {
			detail.EquipmentName = e.Name
		}
		d.Items = append(d.Items, detail)
	}
	return d
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
