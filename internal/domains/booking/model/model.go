package model

import (
	"time"

	"github.com/adokuru/affordaily-api/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                    = "id"
	FieldBookingReference      = "booking_reference"
	FieldGuestID               = "guest_id"
	FieldRoomID                = "room_id"
	FieldGuestName             = "guest_name"
	FieldGuestPhone            = "guest_phone"
	FieldIDPhotoRef            = "id_photo_ref"
	FieldCheckInTime           = "check_in_time"
	FieldCheckOutTime          = "check_out_time"
	FieldScheduledCheckoutTime = "scheduled_checkout_time"
	FieldNumberOfNights        = "number_of_nights"
	FieldStatus                = "status"
	FieldTotalAmount           = "total_amount"
	FieldAmountPaid            = "amount_paid"
	FieldDamageNotes           = "damage_notes"
	FieldKeyReturned           = "key_returned"
	FieldAutoCheckoutTime      = "auto_checkout_time"
	FieldAutoCheckoutReason    = "auto_checkout_reason"
)

// Booking lifecycle.
//
//	active ──────────┬─> early_checkout   (manual, before scheduled checkout)
//	  │ midnight     └─> completed        (manual, on/after scheduled checkout)
//	  v
//	pending_checkout ┬─> completed        (manual, key returned)
//	  │ noon         └─> early_checkout
//	  v
//	auto_checkout                         (key never returned)
const (
	StatusActive          = "active"
	StatusPendingCheckout = "pending_checkout"
	StatusCompleted       = "completed"
	StatusEarlyCheckout   = "early_checkout"
	StatusAutoCheckout    = "auto_checkout"
)

type Booking struct {
	ID                    string     `db:"id"`
	BookingReference      string     `db:"booking_reference"`
	GuestID               string     `db:"guest_id"`
	RoomID                string     `db:"room_id"`
	GuestName             string     `db:"guest_name"`
	GuestPhone            string     `db:"guest_phone"`
	IDPhotoRef            string     `db:"id_photo_ref"`
	CheckInTime           time.Time  `db:"check_in_time"`
	CheckOutTime          *time.Time `db:"check_out_time"`
	ScheduledCheckoutTime time.Time  `db:"scheduled_checkout_time"`
	NumberOfNights        int        `db:"number_of_nights"`
	Status                string     `db:"status"`
	TotalAmount           int64      `db:"total_amount"`
	AmountPaid            int64      `db:"amount_paid"`
	DamageNotes           string     `db:"damage_notes"`
	KeyReturned           bool       `db:"key_returned"`
	AutoCheckoutTime      *time.Time `db:"auto_checkout_time"`
	AutoCheckoutReason    string     `db:"auto_checkout_reason"`
	model.Metadata
}

// IsOpen reports whether the booking still occupies a room.
func (b *Booking) IsOpen() bool {
	return b.Status == StatusActive || b.Status == StatusPendingCheckout
}

// Balance is the outstanding amount in minor currency units.
func (b *Booking) Balance() int64 {
	return b.TotalAmount - b.AmountPaid
}
