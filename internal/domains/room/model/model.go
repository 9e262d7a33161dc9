package model

import (
	"github.com/adokuru/affordaily-api/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomNumber  = "room_number"
	FieldBedType     = "bed_type"
	FieldIsAvailable = "is_available"
	FieldDescription = "description"
)

const (
	BedTypeA = "A"
	BedTypeB = "B"
)

type Room struct {
	ID          string `db:"id"`
	RoomNumber  string `db:"room_number"`
	BedType     string `db:"bed_type"`
	IsAvailable bool   `db:"is_available"`
	Description string `db:"description"`
	model.Metadata
}

// OccupancyStat is a per-bed-type aggregate over the room inventory.
type OccupancyStat struct {
	BedType   string `db:"bed_type"`
	Total     int    `db:"total"`
	Available int    `db:"available"`
	Occupied  int    `db:"occupied"`
}
