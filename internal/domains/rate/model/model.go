package model

import (
	"github.com/adokuru/affordaily-api/shared/model"
)

const (
	TableName  = "room_rates"
	EntityName = "rate"

	FieldID           = "id"
	FieldBedType      = "bed_type"
	FieldRatePerNight = "rate_per_night"
	FieldIsActive     = "is_active"
)

// RoomRate carries the nightly price for a bed type in minor currency units.
// Exactly one active rate per bed type is the invariant; anything else is a
// configuration fault surfaced as an integrity violation.
type RoomRate struct {
	ID           string `db:"id"`
	BedType      string `db:"bed_type"`
	RatePerNight int64  `db:"rate_per_night"`
	IsActive     bool   `db:"is_active"`
	model.Metadata
}
