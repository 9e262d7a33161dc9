package model

import (
	"time"

	"github.com/adokuru/affordaily-api/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID              = "id"
	FieldName            = "name"
	FieldPhone           = "phone"
	FieldEmail           = "email"
	FieldIDPhotoRef      = "id_photo_ref"
	FieldNotes           = "notes"
	FieldTotalStays      = "total_stays"
	FieldTotalSpent      = "total_spent"
	FieldLastStay        = "last_stay"
	FieldIsBlacklisted   = "is_blacklisted"
	FieldBlacklistReason = "blacklist_reason"
)

// Guest is a person known to the hostel, keyed by phone number. The same
// record backs both booking holders and visitors.
type Guest struct {
	ID              string     `db:"id"`
	Name            string     `db:"name"`
	Phone           string     `db:"phone"`
	Email           string     `db:"email"`
	IDPhotoRef      string     `db:"id_photo_ref"`
	Notes           string     `db:"notes"`
	TotalStays      int        `db:"total_stays"`
	TotalSpent      int64      `db:"total_spent"`
	LastStay        *time.Time `db:"last_stay"`
	IsBlacklisted   bool       `db:"is_blacklisted"`
	BlacklistReason string     `db:"blacklist_reason"`
	model.Metadata
}
