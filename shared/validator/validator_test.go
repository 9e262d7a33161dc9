package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adokuru/affordaily-api/shared/validator"
)

type checkInPayload struct {
	GuestName     string `json:"guest_name"     validate:"required,max=100"`
	GuestPhone    string `json:"guest_phone"    validate:"required,max=20"`
	Nights        int    `json:"nights"         validate:"required,gte=1"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash transfer"`
	PayerName     string `json:"payer_name"     validate:"required"`
}

func TestValidate_ValidBody(t *testing.T) {
	body := strings.NewReader(`{
		"guest_name": "Ada Obi",
		"guest_phone": "08030000001",
		"nights": 3,
		"payment_method": "cash",
		"payer_name": "Ada Obi"
	}`)

	payload := checkInPayload{}
	err := validator.Validate(body, &payload)

	assert.NoError(t, err)
	assert.Equal(t, 3, payload.Nights)
}

func TestValidate_InvalidJSON(t *testing.T) {
	payload := checkInPayload{}
	err := validator.Validate(strings.NewReader(`{nope`), &payload)

	assert.Error(t, err)
}

func TestValidateStruct_Failures(t *testing.T) {
	tests := []struct {
		name    string
		payload checkInPayload
	}{
		{
			name: "missing guest name",
			payload: checkInPayload{
				GuestPhone:    "08030000001",
				Nights:        1,
				PaymentMethod: "cash",
				PayerName:     "Ada",
			},
		},
		{
			name: "unknown payment method",
			payload: checkInPayload{
				GuestName:     "Ada Obi",
				GuestPhone:    "08030000001",
				Nights:        1,
				PaymentMethod: "barter",
				PayerName:     "Ada",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, validator.ValidateStruct(&tt.payload))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar(2, "gt=0"))
	assert.Error(t, validator.ValidateVar(0, "gt=0"))
}
