package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Rate=MockRateService

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/adokuru/affordaily-api/config"
	"github.com/adokuru/affordaily-api/infras/otel"
	"github.com/adokuru/affordaily-api/infras/postgres"
	"github.com/adokuru/affordaily-api/internal/domains/rate/model"
	"github.com/adokuru/affordaily-api/internal/domains/rate/model/dto"
	"github.com/adokuru/affordaily-api/internal/domains/rate/repository"
	"github.com/adokuru/affordaily-api/shared"
	"github.com/adokuru/affordaily-api/shared/cache"
	"github.com/adokuru/affordaily-api/shared/constant"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
	"github.com/adokuru/affordaily-api/shared/failure"
	"github.com/adokuru/affordaily-api/shared/timezone"
)

const (
	cacheGetRates = "rate:gets"
)

type Rate interface {
	GetActive(ctx context.Context) (dto.GetRatesResponse, error)
	UpdateRates(ctx context.Context, req dto.UpdateRatesRequest) error
	Quote(ctx context.Context, bedType string, nights int) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	repo     repository.Rate
	txRunner postgres.TxRunner
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Rate, txRunner postgres.TxRunner, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Rate {
	return &serviceImpl{
		repo:     repo,
		txRunner: txRunner,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func activeRatesFilter(bedType string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldIsActive,
			Value:    true,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if bedType != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldBedType,
			Value:    bedType,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

func (s *serviceImpl) GetActive(ctx context.Context) (res dto.GetRatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rate.GetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetRates, &res)
	if err == nil {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldBedType, SortDir: "ASC"}, activeRatesFilter(""))
	if err != nil {
		log.Error().Err(err).Msg("failed to get active rates")

		return res, fmt.Errorf("failed to get active rates: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetRates, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rates to cache")
		}
	}()

	return res, nil
}

// UpdateRates deactivates every active rate and installs the new set as one
// transaction, so a quote can never observe a half-replaced rate table.
func (s *serviceImpl) UpdateRates(ctx context.Context, req dto.UpdateRatesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rate.UpdateRates")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	seen := map[string]bool{}
	for _, rate := range req.Rates {
		if seen[rate.BedType] {
			return failure.BadRequestFromString("duplicate bed type in rate set: " + rate.BedType) //nolint:wrapcheck
		}

		seen[rate.BedType] = true
	}

	err = s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		mod := map[string]any{
			model.FieldIsActive:      false,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.UpdateTx(ctx, tx, mod, activeRatesFilter("")); err != nil {
			return fmt.Errorf("failed to deactivate rates: %w", err)
		}

		if err := s.repo.InsertBulkTx(ctx, tx, req.ToModels(user)); err != nil {
			return fmt.Errorf("failed to insert rates: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update rates")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetRates)
	}()

	return nil
}

// Quote prices a stay as active rate x nights in minor currency units.
func (s *serviceImpl) Quote(ctx context.Context, bedType string, nights int) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rate.Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	if nights <= 0 {
		return res, failure.BadRequestFromString("nights must be greater than zero") //nolint:wrapcheck
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, activeRatesFilter(bedType))
	if err != nil {
		log.Error().Err(err).Msg("failed to get active rate")

		return res, fmt.Errorf("failed to get active rate: %w", err)
	}

	if len(models) != 1 {
		err = failure.InternalError(errors.Errorf("rate table integrity violation: %d active rates for bed type %s", len(models), bedType))
		log.Error().Err(err).Str("bedType", bedType).Int("activeRates", len(models)).Msg("rate table integrity violation")

		return res, err //nolint:wrapcheck
	}

	rate := models[0]

	return dto.QuoteResponse{
		BedType:      bedType,
		Nights:       nights,
		RatePerNight: rate.RatePerNight,
		TotalAmount:  rate.RatePerNight * int64(nights),
	}, nil
}
