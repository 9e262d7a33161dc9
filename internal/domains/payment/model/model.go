package model

import (
	"time"

	"github.com/adokuru/affordaily-api/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldPaymentMethod = "payment_method"
	FieldAmount        = "amount"
	FieldPayerName     = "payer_name"
	FieldReference     = "reference"
	FieldIsConfirmed   = "is_confirmed"
	FieldConfirmedAt   = "confirmed_at"
)

const (
	MethodCash     = "cash"
	MethodTransfer = "transfer"
)

// Payment is one ledger entry against a booking. Only confirmed entries count
// toward the booking's paid total; pending transfers sit unconfirmed until
// reception verifies them.
type Payment struct {
	ID            string     `db:"id"`
	BookingID     string     `db:"booking_id"`
	PaymentMethod string     `db:"payment_method"`
	Amount        int64      `db:"amount"`
	PayerName     string     `db:"payer_name"`
	Reference     string     `db:"reference"`
	IsConfirmed   bool       `db:"is_confirmed"`
	ConfirmedAt   *time.Time `db:"confirmed_at"`
	model.Metadata
}
