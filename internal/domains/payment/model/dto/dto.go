package dto

import (
	"github.com/adokuru/affordaily-api/internal/domains/payment/model"
	"github.com/adokuru/affordaily-api/shared"
	"github.com/adokuru/affordaily-api/shared/constant"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
)

type RecordPaymentRequest struct {
	BookingID     string `json:"booking_id"     validate:"required,uuid"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash transfer"`
	Amount        int64  `json:"amount"         validate:"required,gt=0"`
	PayerName     string `json:"payer_name"     validate:"omitempty,max=255"`
	Reference     string `json:"reference"      validate:"omitempty,max=64"`
	Confirmed     bool   `json:"confirmed"`
}

type UpdatePaymentRequest struct {
	PaymentMethod string `db:"payment_method" json:"payment_method" validate:"omitempty,oneof=cash transfer"`
	Amount        int64  `db:"amount"         json:"amount"         validate:"omitempty,gt=0"`
	PayerName     string `db:"payer_name"     json:"payer_name"     validate:"omitempty,max=255"`
	Reference     string `db:"reference"      json:"reference"      validate:"omitempty,max=64"`
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	BookingID     string  `json:"booking_id"`
	PaymentMethod string  `json:"payment_method"`
	Amount        int64   `json:"amount"`
	PayerName     string  `json:"payer_name"`
	Reference     string  `json:"reference"`
	IsConfirmed   bool    `json:"is_confirmed"`
	ConfirmedAt   *string `json:"confirmed_at"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.PaymentMethod = model.PaymentMethod
	r.Amount = model.Amount
	r.PayerName = model.PayerName
	r.Reference = model.Reference
	r.IsConfirmed = model.IsConfirmed

	if model.ConfirmedAt != nil {
		confirmedAt := model.ConfirmedAt.Format(constant.DateFormat)
		r.ConfirmedAt = &confirmedAt
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
