package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"courtflow/internal/domain"
)

func strPtr(s string) *string { return &s }

func weekendRule() domain.PricingRule {
	return domain.PricingRule{
		Name: "Weekend Premium", Kind: domain.RuleWeekend,
		IsActive: true, Priority: 9, Amount: 15, IsPercentage: true,
	}
}

func peakRule() domain.PricingRule {
	return domain.PricingRule{
		Name: "Peak Hours Surcharge", Kind: domain.RuleTimeOfDay,
		IsActive: true, Priority: 10, Amount: 800,
		WindowStart: strPtr("18:00"), WindowEnd: strPtr("21:00"),
	}
}

func TestEvaluate_StackedSurcharges(t *testing.T) {
	court := domain.Court{ID: 3, Name: "Outdoor Court A", Type: domain.CourtOutdoor, BaseRate: 2800}

	// Saturday 19:00, one hour: weekend and peak both match.
	start := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	out := Evaluate(Input{Court: court, Start: start, End: end}, []domain.PricingRule{peakRule(), weekendRule()})

	assert.Equal(t, 2800.0, out.BasePrice)
	assert.Len(t, out.Surcharges, 2)
	assert.Equal(t, "Peak Hours Surcharge", out.Surcharges[0].Name)
	assert.Equal(t, 800.0, out.Surcharges[0].Amount)
	assert.Equal(t, "Weekend Premium", out.Surcharges[1].Name)
	assert.Equal(t, 420.0, out.Surcharges[1].Amount)
	assert.Equal(t, 4020.0, out.TotalPrice)
}

func TestEvaluate_NoMatchingRules(t *testing.T) {
	court := domain.Court{Type: domain.CourtOutdoor, BaseRate: 2800}

	// Tuesday 10:00: neither weekend nor peak.
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	out := Evaluate(Input{Court: court, Start: start, End: end}, []domain.PricingRule{peakRule(), weekendRule()})

	assert.Equal(t, 5600.0, out.BasePrice)
	assert.Empty(t, out.Surcharges)
	assert.Equal(t, 5600.0, out.TotalPrice)
}

func TestEvaluate_PercentageAppliesToBaseOnly(t *testing.T) {
	court := domain.Court{Type: domain.CourtIndoor, BaseRate: 4000}
	coach := domain.Coach{ID: 1, Name: "Sarah Chen", HourlyRate: 5000}

	// Saturday: weekend premium must be 15% of the base, not of the
	// coach-inclusive total.
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	out := Evaluate(Input{Court: court, Start: start, End: end, Coach: &coach}, []domain.PricingRule{weekendRule()})

	assert.Equal(t, 4000.0, out.BasePrice)
	assert.Equal(t, 600.0, out.Surcharges[0].Amount)
	assert.Equal(t, 5000.0, out.CoachFee)
	assert.Equal(t, 9600.0, out.TotalPrice)
}

func TestEvaluate_FlatSurchargeScalesWithDuration(t *testing.T) {
	court := domain.Court{Type: domain.CourtOutdoor, BaseRate: 2800}

	// Saturday 18:00, two hours in the peak window.
	start := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	out := Evaluate(Input{Court: court, Start: start, End: end}, []domain.PricingRule{peakRule()})

	assert.Equal(t, 1600.0, out.Surcharges[0].Amount)
	assert.Equal(t, 7200.0, out.TotalPrice)
}

func TestEvaluate_CourtTypeRule(t *testing.T) {
	indoor := domain.CourtIndoor
	rule := domain.PricingRule{
		Name: "Indoor Court Premium", Kind: domain.RuleCourtType,
		IsActive: true, Priority: 8, Amount: 10, IsPercentage: true,
		CourtType: &indoor,
	}

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	out := Evaluate(Input{
		Court: domain.Court{Type: domain.CourtIndoor, BaseRate: 4000},
		Start: start, End: end,
	}, []domain.PricingRule{rule})
	assert.Equal(t, 400.0, out.Surcharges[0].Amount)

	out = Evaluate(Input{
		Court: domain.Court{Type: domain.CourtOutdoor, BaseRate: 2800},
		Start: start, End: end,
	}, []domain.PricingRule{rule})
	assert.Empty(t, out.Surcharges)
}

func TestEvaluate_DurationRule(t *testing.T) {
	minHours := 2.0
	rule := domain.PricingRule{
		Name: "Long Session Fee", Kind: domain.RuleDuration,
		IsActive: true, Amount: 500, MinHours: &minHours,
	}

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	court := domain.Court{Type: domain.CourtOutdoor, BaseRate: 2800}

	out := Evaluate(Input{Court: court, Start: start, End: start.Add(2 * time.Hour)}, []domain.PricingRule{rule})
	assert.Len(t, out.Surcharges, 1)

	out = Evaluate(Input{Court: court, Start: start, End: start.Add(time.Hour)}, []domain.PricingRule{rule})
	assert.Empty(t, out.Surcharges)
}

func TestEvaluate_TimeOfDayUsesStartOnly(t *testing.T) {
	court := domain.Court{Type: domain.CourtOutdoor, BaseRate: 2800}

	// Starts at 17:00, runs into the 18:00 window: the start clock governs.
	start := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	out := Evaluate(Input{Court: court, Start: start, End: start.Add(2 * time.Hour)}, []domain.PricingRule{peakRule()})
	assert.Empty(t, out.Surcharges)

	// Starts at 20:00, ends past the window: still matches.
	start = time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	out = Evaluate(Input{Court: court, Start: start, End: start.Add(2 * time.Hour)}, []domain.PricingRule{peakRule()})
	assert.Len(t, out.Surcharges, 1)
}

func TestEvaluate_EquipmentAndCoach(t *testing.T) {
	court := domain.Court{Type: domain.CourtIndoor, BaseRate: 4000}
	coach := domain.Coach{ID: 2, Name: "Michael Rodriguez", HourlyRate: 4000}
	racket := domain.Equipment{ID: 1, Name: "Professional Racket", PricePerHour: 400}
	shoes := domain.Equipment{ID: 3, Name: "Court Shoes", PricePerHour: 300}

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	out := Evaluate(Input{
		Court: court, Start: start, End: end, Coach: &coach,
		Items: []Line{
			{Equipment: racket, Quantity: 2},
			{Equipment: shoes, Quantity: 1},
		},
	}, nil)

	assert.Equal(t, 8000.0, out.BasePrice)
	// 2 rackets * 400 * 2h + 1 pair * 300 * 2h
	assert.Equal(t, 2200.0, out.EquipmentCost)
	assert.Equal(t, 8000.0, out.CoachFee)
	assert.Equal(t, 18200.0, out.TotalPrice)
}

func TestEvaluate_InactiveRuleNeverReachesEvaluator(t *testing.T) {
	// Rules arrive pre-filtered to active only; a zero-amount rule that
	// does slip in must not produce a zero-value surcharge line.
	court := domain.Court{Type: domain.CourtOutdoor, BaseRate: 2800}
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	zero := weekendRule()
	zero.Amount = 0

	out := Evaluate(Input{Court: court, Start: start, End: start.Add(time.Hour)}, []domain.PricingRule{zero})
	assert.Empty(t, out.Surcharges)
}

func TestLineCost(t *testing.T) {
	eq := domain.Equipment{PricePerHour: 400}
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	unit, line := LineCost(eq, 3, start, start.Add(90*time.Minute))
	assert.Equal(t, 600.0, unit.Major())
	assert.Equal(t, 1800.0, line.Major())
}
