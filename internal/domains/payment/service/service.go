package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/adokuru/affordaily-api/config"
	"github.com/adokuru/affordaily-api/infras/otel"
	"github.com/adokuru/affordaily-api/infras/postgres"
	bookingRepo "github.com/adokuru/affordaily-api/internal/domains/booking/repository"
	"github.com/adokuru/affordaily-api/internal/domains/payment/model"
	"github.com/adokuru/affordaily-api/internal/domains/payment/model/dto"
	"github.com/adokuru/affordaily-api/internal/domains/payment/repository"
	"github.com/adokuru/affordaily-api/shared"
	"github.com/adokuru/affordaily-api/shared/cache"
	"github.com/adokuru/affordaily-api/shared/constant"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
	"github.com/adokuru/affordaily-api/shared/failure"
	gModel "github.com/adokuru/affordaily-api/shared/model"
)

const (
	cacheGetPayments = "payment:gets"
)

type Payment interface {
	Record(ctx context.Context, req dto.RecordPaymentRequest) (dto.PaymentResponse, error)
	Confirm(ctx context.Context, id string) (dto.PaymentResponse, error)
	Update(ctx context.Context, id string, req dto.UpdatePaymentRequest) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.PaymentResponse, error)
	GetByBooking(ctx context.Context, bookingID string, params gDto.QueryParams) (dto.GetPaymentsResponse, error)
	RecordConfirmedTx(ctx context.Context, tx *sqlx.Tx, bookingID, method string, amount int64, payerName, reference string) (model.Payment, error)
}

type serviceImpl struct {
	repo        repository.Payment
	bookingRepo bookingRepo.Booking
	txRunner    postgres.TxRunner
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	now         func() time.Time
}

func New(repo repository.Payment, bookingRepo bookingRepo.Booking, txRunner postgres.TxRunner, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, now func() time.Time) Payment {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		txRunner:    txRunner,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		now:         now,
	}
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetPayments)
	}()
}

// Record appends a ledger entry against a booking. The amount may not exceed
// the outstanding balance; a confirmed entry also bumps the booking's paid
// total inside the same transaction.
func (s *serviceImpl) Record(ctx context.Context, req dto.RecordPaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Record")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var payment model.Payment

	err = s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err := s.bookingRepo.GetForUpdateTx(ctx, tx, req.BookingID)
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == "" {
			return failure.NotFound("booking") //nolint:wrapcheck
		}

		if req.Amount > booking.Balance() {
			return failure.Conflict("payment amount exceeds remaining balance") //nolint:wrapcheck
		}

		now := s.now()
		payment = model.Payment{
			ID:            uuid.NewString(),
			BookingID:     req.BookingID,
			PaymentMethod: req.PaymentMethod,
			Amount:        req.Amount,
			PayerName:     req.PayerName,
			Reference:     req.Reference,
			IsConfirmed:   req.Confirmed,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}

		if req.Confirmed {
			payment.ConfirmedAt = &now

			if err := s.bookingRepo.IncrementPaidTx(ctx, tx, booking.ID, req.Amount, user); err != nil {
				return fmt.Errorf("failed to increment paid amount: %w", err)
			}
		}

		if err := s.repo.InsertTx(ctx, tx, payment); err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", req.BookingID).Msg("failed to record payment")

		return res, err
	}

	s.invalidate(ctx)
	res.FromModel(payment)

	return res, nil
}

// Confirm marks a pending entry confirmed and credits the booking exactly
// once. Confirming twice is an invalid state, not a no-op, so a double credit
// can never slip through.
func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var payment model.Payment

	err = s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		payment, err = s.repo.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to get payment: %w", err)
		}

		if payment.ID == "" {
			return failure.NotFound("payment") //nolint:wrapcheck
		}

		if payment.IsConfirmed {
			return failure.InvalidState("payment is already confirmed") //nolint:wrapcheck
		}

		now := s.now()
		mod := map[string]any{
			model.FieldIsConfirmed:   true,
			model.FieldConfirmedAt:   now,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.UpdateTx(ctx, tx, mod, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to confirm payment: %w", err)
		}

		if err := s.bookingRepo.IncrementPaidTx(ctx, tx, payment.BookingID, payment.Amount, user); err != nil {
			return fmt.Errorf("failed to increment paid amount: %w", err)
		}

		payment.IsConfirmed = true
		payment.ConfirmedAt = &now

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("paymentID", id).Msg("failed to confirm payment")

		return res, err
	}

	s.invalidate(ctx)
	res.FromModel(payment)

	return res, nil
}

// Update edits a pending entry. Confirmed entries are immutable; corrections
// to them go through a new ledger entry.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdatePaymentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		payment, err := s.repo.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to get payment: %w", err)
		}

		if payment.ID == "" {
			return failure.NotFound("payment") //nolint:wrapcheck
		}

		if payment.IsConfirmed {
			return failure.InvalidState("confirmed payments cannot be edited") //nolint:wrapcheck
		}

		if req.Amount > 0 && req.Amount != payment.Amount {
			booking, err := s.bookingRepo.GetForUpdateTx(ctx, tx, payment.BookingID)
			if err != nil {
				return fmt.Errorf("failed to get booking: %w", err)
			}

			if req.Amount > booking.Balance() {
				return failure.Conflict("payment amount exceeds remaining balance") //nolint:wrapcheck
			}
		}

		mod := shared.TransformFields(req, user)

		if err := s.repo.UpdateTx(ctx, tx, mod, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("paymentID", id).Msg("failed to update payment")

		return err
	}

	s.invalidate(ctx)

	return nil
}

// Delete removes a pending entry. The paid total never moved for it, so
// nothing needs adjusting.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		payment, err := s.repo.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to get payment: %w", err)
		}

		if payment.ID == "" {
			return failure.NotFound("payment") //nolint:wrapcheck
		}

		if payment.IsConfirmed {
			return failure.InvalidState("confirmed payments cannot be deleted") //nolint:wrapcheck
		}

		if err := s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to delete payment: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("paymentID", id).Msg("failed to delete payment")

		return err
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("paymentID", id).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == "" {
		return res, failure.NotFound("payment") //nolint:wrapcheck
	}

	res.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID string, params gDto.QueryParams) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.GetByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByField(bookingID, model.FieldBookingID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetPayments, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

// RecordConfirmedTx writes the confirmed ledger entry backing a check-in or
// extension charge. The caller already accounts for the paid total, so this
// only appends the entry.
func (s *serviceImpl) RecordConfirmedTx(ctx context.Context, tx *sqlx.Tx, bookingID, method string, amount int64, payerName, reference string) (model.Payment, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.RecordConfirmedTx")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.now()

	payment := model.Payment{
		ID:            uuid.NewString(),
		BookingID:     bookingID,
		PaymentMethod: method,
		Amount:        amount,
		PayerName:     payerName,
		Reference:     reference,
		IsConfirmed:   true,
		ConfirmedAt:   &now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err := s.repo.InsertTx(ctx, tx, payment); err != nil {
		return model.Payment{}, fmt.Errorf("failed to insert payment: %w", err)
	}

	s.invalidate(ctx)

	return payment, nil
}
