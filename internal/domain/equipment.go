package domain

import "time"

type EquipmentType string

const (
	EquipmentRacket      EquipmentType = "RACKET"
	EquipmentShoes       EquipmentType = "SHOES"
	EquipmentShuttlecock EquipmentType = "SHUTTLECOCK"
	EquipmentTowel       EquipmentType = "TOWEL"
)

type EquipmentStatus string

const (
	EquipmentActive   EquipmentStatus = "ACTIVE"
	EquipmentInactive EquipmentStatus = "INACTIVE"
)

// Equipment is a rentable inventory pool. Available quantity is never
// stored; it is recomputed from overlapping confirmed bookings so the
// count cannot drift.
type Equipment struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" validate:"required"`
	Type          EquipmentType   `json:"type" validate:"required,oneof=RACKET SHOES SHUTTLECOCK TOWEL"`
	Size          string          `json:"size,omitempty"`
	TotalQuantity int             `json:"total_quantity" validate:"required,gt=0"`
	PricePerHour  float64         `json:"price_per_hour" validate:"required,gte=0"`
	PerSlotMax    int             `json:"per_slot_max" validate:"required,gt=0"`
	Status        EquipmentStatus `json:"status"`
	Description   string          `json:"description,omitempty" gorm:"type:text"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (Equipment) TableName() string { return "equipment" }
