package dto

import (
	"github.com/adokuru/affordaily-api/internal/domains/guest/model"
	"github.com/adokuru/affordaily-api/shared/constant"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
)

type GuestResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	IDPhotoRef      string  `json:"id_photo_ref"`
	Notes           string  `json:"notes"`
	TotalStays      int     `json:"total_stays"`
	TotalSpent      int64   `json:"total_spent"`
	LastStay        *string `json:"last_stay"`
	IsBlacklisted   bool    `json:"is_blacklisted"`
	BlacklistReason string  `json:"blacklist_reason"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Email = model.Email
	r.IDPhotoRef = model.IDPhotoRef
	r.Notes = model.Notes
	r.TotalStays = model.TotalStays
	r.TotalSpent = model.TotalSpent
	r.IsBlacklisted = model.IsBlacklisted
	r.BlacklistReason = model.BlacklistReason

	if model.LastStay != nil {
		lastStay := model.LastStay.Format(constant.DateFormat)
		r.LastStay = &lastStay
	}

	r.Metadata.FromModel(model.Metadata)
}
