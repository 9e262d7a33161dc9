package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/adokuru/affordaily-api/infras/otel"
	"github.com/adokuru/affordaily-api/infras/postgres"
	bookingModel "github.com/adokuru/affordaily-api/internal/domains/booking/model"
	bookingRepo "github.com/adokuru/affordaily-api/internal/domains/booking/repository"
	guestService "github.com/adokuru/affordaily-api/internal/domains/guest/service"
	"github.com/adokuru/affordaily-api/internal/domains/visitorpass/model"
	"github.com/adokuru/affordaily-api/internal/domains/visitorpass/model/dto"
	"github.com/adokuru/affordaily-api/internal/domains/visitorpass/repository"
	"github.com/adokuru/affordaily-api/shared"
	"github.com/adokuru/affordaily-api/shared/constant"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
	"github.com/adokuru/affordaily-api/shared/failure"
	gModel "github.com/adokuru/affordaily-api/shared/model"
)

type VisitorPass interface {
	Issue(ctx context.Context, req dto.IssueVisitorPassRequest) (dto.VisitorPassResponse, error)
	Checkout(ctx context.Context, id string) error
	GetActiveByBooking(ctx context.Context, bookingID string) (dto.GetVisitorPassesResponse, error)
	CloseAllForBookingTx(ctx context.Context, tx *sqlx.Tx, bookingID string, at time.Time) error
}

type serviceImpl struct {
	repo        repository.VisitorPass
	bookingRepo bookingRepo.Booking
	guestSvc    guestService.Guest
	txRunner    postgres.TxRunner
	otel        otel.Otel
	now         func() time.Time
}

func New(repo repository.VisitorPass, bookingRepo bookingRepo.Booking, guestSvc guestService.Guest, txRunner postgres.TxRunner, otel otel.Otel, now func() time.Time) VisitorPass {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		guestSvc:    guestSvc,
		txRunner:    txRunner,
		otel:        otel,
		now:         now,
	}
}

func activePassFilter(bookingID, guestID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldBookingID,
			Value:    bookingID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldIsActive,
			Value:    true,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if guestID != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldGuestID,
			Value:    guestID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

// Issue admits a visitor against an active booking. The visitor is resolved
// in the guest registry by phone, must not be blacklisted, and may hold only
// one open pass per booking.
func (s *serviceImpl) Issue(ctx context.Context, req dto.IssueVisitorPassRequest) (res dto.VisitorPassResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".visitorpass.Issue")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var pass model.VisitorPass

	err = s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err := s.bookingRepo.GetForUpdateTx(ctx, tx, req.BookingID)
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == "" {
			return failure.NotFound("booking") //nolint:wrapcheck
		}

		if booking.Status != bookingModel.StatusActive {
			return failure.InvalidState("visitor passes require an active booking") //nolint:wrapcheck
		}

		guest, err := s.guestSvc.FindOrCreateTx(ctx, tx, req.VisitorName, req.VisitorPhone, req.IDPhotoRef)
		if err != nil {
			return fmt.Errorf("failed to resolve visitor: %w", err)
		}

		if guest.IsBlacklisted {
			return failure.Conflict("visitor is blacklisted: " + guest.BlacklistReason) //nolint:wrapcheck
		}

		hasActive, err := s.repo.Exist(ctx, activePassFilter(req.BookingID, guest.ID))
		if err != nil {
			return fmt.Errorf("failed to check active pass: %w", err)
		}

		if hasActive {
			return failure.Conflict("visitor already holds an active pass for this booking") //nolint:wrapcheck
		}

		now := s.now()
		pass = model.VisitorPass{
			ID:           uuid.NewString(),
			BookingID:    req.BookingID,
			GuestID:      guest.ID,
			VisitorName:  guest.Name,
			VisitorPhone: guest.Phone,
			CheckInTime:  now,
			IsActive:     true,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}

		if err := s.repo.InsertTx(ctx, tx, pass); err != nil {
			return fmt.Errorf("failed to insert visitor pass: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", req.BookingID).Msg("failed to issue visitor pass")

		return res, err
	}

	res.FromModel(pass)

	return res, nil
}

func (s *serviceImpl) Checkout(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".visitorpass.Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	pass, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("passID", id).Msg("failed to get visitor pass")

		return fmt.Errorf("failed to get visitor pass: %w", err)
	}

	if pass.ID == "" {
		return failure.NotFound("visitor pass") //nolint:wrapcheck
	}

	if !pass.IsActive {
		return failure.InvalidState("visitor pass is already closed") //nolint:wrapcheck
	}

	now := s.now()
	mod := map[string]any{
		model.FieldIsActive:      false,
		model.FieldCheckOutTime:  now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, mod, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("passID", id).Msg("failed to close visitor pass")

		return fmt.Errorf("failed to close visitor pass: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetActiveByBooking(ctx context.Context, bookingID string) (res dto.GetVisitorPassesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".visitorpass.GetActiveByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.TableName + "." + model.FieldCheckInTime, SortDir: "ASC"}, activePassFilter(bookingID, ""))
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to get visitor passes")

		return res, fmt.Errorf("failed to get visitor passes: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

// CloseAllForBookingTx closes every open pass when the hosting booking
// closes. Runs inside the booking's own transaction.
func (s *serviceImpl) CloseAllForBookingTx(ctx context.Context, tx *sqlx.Tx, bookingID string, at time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".visitorpass.CloseAllForBookingTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	mod := map[string]any{
		model.FieldIsActive:      false,
		model.FieldCheckOutTime:  at,
		constant.FieldModifiedAt: at,
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.UpdateTx(ctx, tx, mod, activePassFilter(bookingID, "")); err != nil {
		return fmt.Errorf("failed to close visitor passes for booking: %w", err)
	}

	return nil
}
