package dto

import (
	"github.com/google/uuid"

	"github.com/adokuru/affordaily-api/internal/domains/rate/model"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
	gModel "github.com/adokuru/affordaily-api/shared/model"
	"github.com/adokuru/affordaily-api/shared/timezone"
)

type RateInput struct {
	BedType      string `json:"bed_type"       validate:"required,oneof=A B"`
	RatePerNight int64  `json:"rate_per_night" validate:"required,gt=0"`
}

// UpdateRatesRequest replaces the whole active rate table in one shot.
type UpdateRatesRequest struct {
	Rates []RateInput `json:"rates" validate:"required,min=1,dive"`
}

func (r *UpdateRatesRequest) ToModels(user string) []model.RoomRate {
	models := make([]model.RoomRate, len(r.Rates))

	for i, rate := range r.Rates {
		models[i] = model.RoomRate{
			ID:           uuid.NewString(),
			BedType:      rate.BedType,
			RatePerNight: rate.RatePerNight,
			IsActive:     true,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return models
}

type RateResponse struct {
	ID           string `json:"id"`
	BedType      string `json:"bed_type"`
	RatePerNight int64  `json:"rate_per_night"`
	IsActive     bool   `json:"is_active"`
	gDto.Metadata
}

func (r *RateResponse) FromModel(model model.RoomRate) {
	r.ID = model.ID
	r.BedType = model.BedType
	r.RatePerNight = model.RatePerNight
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetRatesResponse struct {
	Rates []RateResponse `json:"rates"`
}

func (r *GetRatesResponse) FromModels(models []model.RoomRate) {
	r.Rates = make([]RateResponse, len(models))
	for i, mod := range models {
		r.Rates[i].FromModel(mod)
	}
}

type QuoteResponse struct {
	BedType      string `json:"bed_type"`
	Nights       int    `json:"nights"`
	RatePerNight int64  `json:"rate_per_night"`
	TotalAmount  int64  `json:"total_amount"`
}
