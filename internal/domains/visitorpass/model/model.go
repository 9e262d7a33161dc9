package model

import (
	"time"

	"github.com/adokuru/affordaily-api/shared/model"
)

const (
	TableName  = "visitor_passes"
	EntityName = "visitorpass"

	FieldID           = "id"
	FieldBookingID    = "booking_id"
	FieldGuestID      = "guest_id"
	FieldCheckInTime  = "check_in_time"
	FieldCheckOutTime = "check_out_time"
	FieldIsActive     = "is_active"
)

// VisitorPass tracks a non-staying visitor inside the building, tied to the
// hosting booking. Visitor identity lives in the guest registry.
type VisitorPass struct {
	ID           string     `db:"id"`
	BookingID    string     `db:"booking_id"`
	GuestID      string     `db:"guest_id"`
	VisitorName  string     `db:"visitor_name"  table:"guests" column:"name"`
	VisitorPhone string     `db:"visitor_phone" table:"guests" column:"phone"`
	CheckInTime  time.Time  `db:"check_in_time"`
	CheckOutTime *time.Time `db:"check_out_time"`
	IsActive     bool       `db:"is_active"`
	model.Metadata
}

func (VisitorPass) GetJoinQuery() string {
	return "JOIN guests ON guests.id = visitor_passes.guest_id"
}
