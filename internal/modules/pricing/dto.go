package pricing

import "time"

type EquipmentRequest struct {
	EquipmentID int64 `json:"equipment_id" binding:"required"`
	Quantity    int   `json:"quantity" binding:"required,gt=0"`
}

type QuoteRequest struct {
	CourtID   int64              `json:"court_id" binding:"required"`
	StartTime time.Time          `json:"start_time" binding:"required"`
	EndTime   time.Time          `json:"end_time" binding:"required"`
	CoachID   *int64             `json:"coach_id,omitempty"`
	Equipment []EquipmentRequest `json:"equipment,omitempty"`
}

// QuoteResponse is the lenient preview shape: unresolved equipment does
// not fail the call, it is priced at zero and reported in SkippedEquipment.
type QuoteResponse struct {
	Breakdown
	SkippedEquipment []int64 `json:"skipped_equipment_ids,omitempty"`
}
