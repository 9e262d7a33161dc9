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
	"github.com/adokuru/affordaily-api/internal/domains/guest/model"
	"github.com/adokuru/affordaily-api/internal/domains/guest/model/dto"
	"github.com/adokuru/affordaily-api/internal/domains/guest/repository"
	"github.com/adokuru/affordaily-api/shared"
	"github.com/adokuru/affordaily-api/shared/constant"
	"github.com/adokuru/affordaily-api/shared/failure"
	gModel "github.com/adokuru/affordaily-api/shared/model"
	"github.com/adokuru/affordaily-api/shared/timezone"
)

// Guest exposes the internal guest registry operations consumed by the
// booking and visitor pass flows. Guests are never created directly over
// HTTP; they materialize on first check-in or visit.
type Guest interface {
	FindOrCreateTx(ctx context.Context, tx *sqlx.Tx, name, phone, idPhotoRef string) (model.Guest, error)
	IncrementStatsTx(ctx context.Context, tx *sqlx.Tx, guestID string, spent int64, stayAt time.Time) error
	GetByPhone(ctx context.Context, phone string) (dto.GuestResponse, error)
}

type serviceImpl struct {
	repo repository.Guest
	otel otel.Otel
}

func New(repo repository.Guest, otel otel.Otel) Guest {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// FindOrCreateTx resolves a guest by phone, creating the record when none
// exists. A returning guest keeps the name and photo reference captured on
// their first visit.
func (s *serviceImpl) FindOrCreateTx(ctx context.Context, tx *sqlx.Tx, name, phone, idPhotoRef string) (res model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.FindOrCreateTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	guest, err := s.repo.GetByPhoneTx(ctx, tx, phone)
	if err != nil {
		log.Error().Err(err).Msg("failed to find guest by phone")

		return res, fmt.Errorf("failed to find guest by phone: %w", err)
	}

	if guest.ID != "" {
		return guest, nil
	}

	guest = model.Guest{
		ID:         uuid.NewString(),
		Name:       name,
		Phone:      phone,
		IDPhotoRef: idPhotoRef,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.InsertTx(ctx, tx, guest); err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return res, fmt.Errorf("failed to create guest: %w", err)
	}

	return guest, nil
}

func (s *serviceImpl) IncrementStatsTx(ctx context.Context, tx *sqlx.Tx, guestID string, spent int64, stayAt time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.IncrementStatsTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.IncrementStatsTx(ctx, tx, guestID, spent, stayAt); err != nil {
		log.Error().Err(err).Msg("failed to increment guest stats")

		return fmt.Errorf("failed to increment guest stats: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetByPhone(ctx context.Context, phone string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetByPhone")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.repo.Get(ctx, shared.FilterByField(phone, model.FieldPhone, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest by phone")

		return res, fmt.Errorf("failed to get guest by phone: %w", err)
	}

	if guest.ID == "" {
		return res, failure.NotFound("guest") //nolint:wrapcheck
	}

	res.FromModel(guest)

	return res, nil
}
