package pricing

import (
	"time"

	"courtflow/internal/domain"
	"courtflow/internal/pkg/money"
	"courtflow/internal/pkg/timeutil"
)

// Surcharge is one applied rule in a breakdown.
type Surcharge struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Kind   string  `json:"kind"`
}

// Breakdown is the full price decomposition for a booking window. It is
// stored verbatim on the booking row as the audit snapshot.
type Breakdown struct {
	BasePrice     float64     `json:"base_price"`
	CourtType     string      `json:"court_type"`
	Surcharges    []Surcharge `json:"surcharges"`
	EquipmentCost float64     `json:"equipment_cost"`
	CoachFee      float64     `json:"coach_fee"`
	TotalPrice    float64     `json:"total_price"`
}

// Line is a resolved equipment request.
type Line struct {
	Equipment domain.Equipment
	Quantity  int
}

// Input carries everything Evaluate needs, pre-resolved by the caller.
// Loading is the caller's concern so the booking transaction can evaluate
// against the same snapshot it validates with.
type Input struct {
	Court domain.Court
	Start time.Time
	End   time.Time
	Coach *domain.Coach
	Items []Line
}

// Evaluate computes the price breakdown. Rules must arrive in presentation
// order (priority descending); every active rule is tested and all matches
// stack additively. Arithmetic is fixed-point throughout.
func Evaluate(in Input, rules []domain.PricingRule) Breakdown {
	minutes := int64(in.End.Sub(in.Start).Minutes())

	base := money.FromMajor(in.Court.BaseRate).MulMinutes(minutes)

	out := Breakdown{
		BasePrice:  base.Major(),
		CourtType:  string(in.Court.Type),
		Surcharges: []Surcharge{},
	}

	total := base

	for _, rule := range rules {
		if !ruleMatches(rule, in.Court.Type, in.Start, minutes) {
			continue
		}
		var amount money.Cents
		if rule.IsPercentage {
			amount = base.Percent(money.BasisPoints(rule.Amount))
		} else {
			amount = money.FromMajor(rule.Amount).MulMinutes(minutes)
		}
		if amount <= 0 {
			continue
		}
		out.Surcharges = append(out.Surcharges, Surcharge{
			Name:   rule.Name,
			Amount: amount.Major(),
			Kind:   string(rule.Kind),
		})
		total = total.Add(amount)
	}

	var equipmentCost money.Cents
	for _, line := range in.Items {
		lineCost := money.FromMajor(line.Equipment.PricePerHour).
			MulQuantity(int64(line.Quantity)).
			MulMinutes(minutes)
		equipmentCost = equipmentCost.Add(lineCost)
	}
	out.EquipmentCost = equipmentCost.Major()
	total = total.Add(equipmentCost)

	if in.Coach != nil {
		fee := money.FromMajor(in.Coach.HourlyRate).MulMinutes(minutes)
		out.CoachFee = fee.Major()
		total = total.Add(fee)
	}

	out.TotalPrice = total.Major()
	return out
}

// LineCost prices a single equipment line for the window, used when
// persisting booking items.
func LineCost(eq domain.Equipment, quantity int, start, end time.Time) (unit, line money.Cents) {
	minutes := int64(end.Sub(start).Minutes())
	unit = money.FromMajor(eq.PricePerHour).MulMinutes(minutes)
	line = unit.MulQuantity(int64(quantity))
	return unit, line
}

// ruleMatches evaluates the rule's condition union against the booking.
// A rule whose kind-specific payload is absent matches unconditionally.
func ruleMatches(rule domain.PricingRule, courtType domain.CourtType, start time.Time, minutes int64) bool {
	switch rule.Kind {
	case domain.RuleTimeOfDay:
		if rule.WindowStart == nil || rule.WindowEnd == nil {
			return true
		}
		clock := start.Format("15:04")
		return timeutil.TimeInRange(clock, *rule.WindowStart, *rule.WindowEnd)
	case domain.RuleWeekend:
		return timeutil.IsWeekend(start)
	case domain.RuleCourtType:
		if rule.CourtType == nil {
			return true
		}
		return *rule.CourtType == courtType
	case domain.RuleDuration:
		if rule.MinHours == nil {
			return true
		}
		return float64(minutes) >= *rule.MinHours*60
	default: // CUSTOM and anything unknown
		return true
	}
}
