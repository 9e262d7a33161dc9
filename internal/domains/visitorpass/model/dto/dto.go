package dto

import (
	"github.com/adokuru/affordaily-api/internal/domains/visitorpass/model"
	"github.com/adokuru/affordaily-api/shared/constant"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
)

type IssueVisitorPassRequest struct {
	BookingID    string `json:"booking_id"    validate:"required,uuid"`
	VisitorName  string `json:"visitor_name"  validate:"required,max=255"`
	VisitorPhone string `json:"visitor_phone" validate:"required,max=32"`
	IDPhotoRef   string `json:"id_photo_ref"  validate:"omitempty,max=255"`
}

type VisitorPassResponse struct {
	ID           string  `json:"id"`
	BookingID    string  `json:"booking_id"`
	GuestID      string  `json:"guest_id"`
	VisitorName  string  `json:"visitor_name"`
	VisitorPhone string  `json:"visitor_phone"`
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	IsActive     bool    `json:"is_active"`
	gDto.Metadata
}

func (r *VisitorPassResponse) FromModel(model model.VisitorPass) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.GuestID = model.GuestID
	r.VisitorName = model.VisitorName
	r.VisitorPhone = model.VisitorPhone
	r.CheckInTime = model.CheckInTime.Format(constant.DateFormat)

	if model.CheckOutTime != nil {
		checkOut := model.CheckOutTime.Format(constant.DateFormat)
		r.CheckOutTime = &checkOut
	}

	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetVisitorPassesResponse struct {
	Passes []VisitorPassResponse `json:"passes"`
}

func (r *GetVisitorPassesResponse) FromModels(models []model.VisitorPass) {
	r.Passes = make([]VisitorPassResponse, len(models))
	for i, mod := range models {
		r.Passes[i].FromModel(mod)
	}
}
