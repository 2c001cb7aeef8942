package availability

import "courtflow/internal/domain"

type EquipmentAvailability struct {
	ID        int64                `json:"id"`
	Name      string               `json:"name"`
	Type      domain.EquipmentType `json:"type"`
	Available int                  `json:"available"`
}

// Slot describes one grid position of the day: whether any court is free,
// and the exact free courts, free coaches and remaining equipment so the
// caller can filter by its own constraints.
type Slot struct {
	Time               string                  `json:"time"`
	Available          bool                    `json:"available"`
	AvailableCourts    []int64                 `json:"available_courts"`
	AvailableCoaches   []int64                 `json:"available_coaches"`
	AvailableEquipment []EquipmentAvailability `json:"available_equipment"`
}
