package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Booking=MockBookingRepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/adokuru/affordaily-api/infras/otel"
	"github.com/adokuru/affordaily-api/infras/postgres"
	"github.com/adokuru/affordaily-api/internal/domains/booking/model"
	"github.com/adokuru/affordaily-api/shared/constant"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
	"github.com/adokuru/affordaily-api/shared/logger"
	gRepo "github.com/adokuru/affordaily-api/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	UpdateTxCount(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Booking, error)
	IncrementPaidTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, delta int64, modifiedBy string) error
	AddNightsTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, nights int, amount int64, newScheduled time.Time, modifiedBy string) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const selectBookingColumns = `id, booking_reference, guest_id, room_id, guest_name, guest_phone, id_photo_ref,
	check_in_time, check_out_time, scheduled_checkout_time, number_of_nights, status,
	total_amount, amount_paid, damage_notes, key_returned, auto_checkout_time, auto_checkout_reason,
	created_at, modified_at, created_by, modified_by`

// GetForUpdateTx reads a booking with a row lock so concurrent lifecycle
// operations on the same booking serialize. A zero-value booking means the id
// does not exist.
func (repo *repositoryImpl) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetForUpdateTx")
	defer scope.End()

	query := "SELECT " + selectBookingColumns + " FROM bookings WHERE id = $1 FOR UPDATE"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var booking model.Booking

	err := sqltx.GetContext(ctx, &booking, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Booking{}, fmt.Errorf("failed to get booking for update: %w", err)
	}

	return booking, nil
}

// IncrementPaidTx adjusts the running paid total; delta is negative when an
// unconfirmed correction retracts a confirmed amount.
func (repo *repositoryImpl) IncrementPaidTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, delta int64, modifiedBy string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.IncrementPaidTx")
	defer scope.End()

	query := `UPDATE bookings
		SET amount_paid = amount_paid + $1, modified_at = NOW(), modified_by = $2
		WHERE id = $3`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := sqltx.ExecContext(ctx, query, delta, modifiedBy, bookingID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to increment booking paid amount: %w", err)
	}

	return nil
}

// AddNightsTx extends an active booking: nights, charge and paid totals grow
// together and the scheduled checkout moves out. Guarded on status so an
// extension races cleanly with a sweep; zero affected rows means the booking
// was no longer active.
func (repo *repositoryImpl) AddNightsTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, nights int, amount int64, newScheduled time.Time, modifiedBy string) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.AddNightsTx")
	defer scope.End()

	query := `UPDATE bookings
		SET number_of_nights = number_of_nights + $1,
			total_amount = total_amount + $2,
			amount_paid = amount_paid + $2,
			scheduled_checkout_time = $3,
			modified_at = NOW(),
			modified_by = $4
		WHERE id = $5 AND status = $6`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := sqltx.ExecContext(ctx, query, nights, amount, newScheduled, modifiedBy, bookingID, model.StatusActive)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to extend booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}
