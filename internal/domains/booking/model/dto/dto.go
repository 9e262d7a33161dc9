package dto

import (
	"time"

	"github.com/adokuru/affordaily-api/internal/domains/booking/model"
	"github.com/adokuru/affordaily-api/shared"
	"github.com/adokuru/affordaily-api/shared/constant"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
)

type CheckInRequest struct {
	GuestName        string `json:"guest_name"         validate:"required,max=255"`
	GuestPhone       string `json:"guest_phone"        validate:"required,max=32"`
	IDPhotoRef       string `json:"id_photo_ref"       validate:"omitempty,max=255"`
	PreferredBedType string `json:"preferred_bed_type" validate:"omitempty,oneof=A B"`
	NumberOfNights   int    `json:"number_of_nights"   validate:"required,gt=0"`
	PaymentMethod    string `json:"payment_method"     validate:"required,oneof=cash transfer"`
	PayerName        string `json:"payer_name"         validate:"omitempty,max=255"`
	Reference        string `json:"reference"          validate:"omitempty,max=64"`
}

type ExtendRequest struct {
	AdditionalNights int    `json:"additional_nights" validate:"required,gt=0"`
	PaymentMethod    string `json:"payment_method"    validate:"required,oneof=cash transfer"`
}

type CheckoutRequest struct {
	KeyReturned   bool   `json:"key_returned"`
	EarlyCheckout bool   `json:"early_checkout"`
	DamageNotes   string `json:"damage_notes" validate:"omitempty"`
}

type BookingResponse struct {
	ID                    string  `json:"id"`
	BookingReference      string  `json:"booking_reference"`
	GuestID               string  `json:"guest_id"`
	RoomID                string  `json:"room_id"`
	GuestName             string  `json:"guest_name"`
	GuestPhone            string  `json:"guest_phone"`
	IDPhotoRef            string  `json:"id_photo_ref,omitempty"`
	CheckInTime           string  `json:"check_in_time"`
	CheckOutTime          *string `json:"check_out_time"`
	ScheduledCheckoutTime string  `json:"scheduled_checkout_time"`
	NumberOfNights        int     `json:"number_of_nights"`
	Status                string  `json:"status"`
	TotalAmount           int64   `json:"total_amount"`
	AmountPaid            int64   `json:"amount_paid"`
	Balance               int64   `json:"balance"`
	DamageNotes           string  `json:"damage_notes,omitempty"`
	KeyReturned           bool    `json:"key_returned"`
	AutoCheckoutTime      *string `json:"auto_checkout_time,omitempty"`
	AutoCheckoutReason    string  `json:"auto_checkout_reason,omitempty"`
	gDto.Metadata
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := t.Format(constant.DateFormat)

	return &formatted
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.BookingReference = model.BookingReference
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.GuestName = model.GuestName
	r.GuestPhone = model.GuestPhone
	r.IDPhotoRef = model.IDPhotoRef
	r.CheckInTime = model.CheckInTime.Format(constant.DateFormat)
	r.CheckOutTime = formatTimePtr(model.CheckOutTime)
	r.ScheduledCheckoutTime = model.ScheduledCheckoutTime.Format(constant.DateFormat)
	r.NumberOfNights = model.NumberOfNights
	r.Status = model.Status
	r.TotalAmount = model.TotalAmount
	r.AmountPaid = model.AmountPaid
	r.Balance = model.Balance()
	r.DamageNotes = model.DamageNotes
	r.KeyReturned = model.KeyReturned
	r.AutoCheckoutTime = formatTimePtr(model.AutoCheckoutTime)
	r.AutoCheckoutReason = model.AutoCheckoutReason
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// SweepResponse reports how many bookings a scheduled sweep transitioned.
type SweepResponse struct {
	AsOf        string `json:"as_of"`
	Transitions int    `json:"transitions"`
}
