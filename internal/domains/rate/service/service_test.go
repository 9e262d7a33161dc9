package service_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adokuru/affordaily-api/config"
	otelMocks "github.com/adokuru/affordaily-api/infras/otel/mocks"
	postgresMocks "github.com/adokuru/affordaily-api/infras/postgres/mocks"
	"github.com/adokuru/affordaily-api/internal/domains/rate/mocks"
	"github.com/adokuru/affordaily-api/internal/domains/rate/model"
	"github.com/adokuru/affordaily-api/internal/domains/rate/model/dto"
	"github.com/adokuru/affordaily-api/internal/domains/rate/service"
	roomModel "github.com/adokuru/affordaily-api/internal/domains/room/model"
	cacheMocks "github.com/adokuru/affordaily-api/shared/cache/mocks"
	"github.com/adokuru/affordaily-api/shared/failure"
)

type rateFixture struct {
	repo     *mocks.MockRate
	txRunner *postgresMocks.MockTxRunner
	cache    *cacheMocks.MockRedisCache
	svc      service.Rate
}

func newRateFixture(t *testing.T, ctrl *gomock.Controller) *rateFixture {
	t.Helper()

	f := &rateFixture{
		repo:     mocks.NewMockRate(ctrl),
		txRunner: postgresMocks.NewMockTxRunner(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.txRunner, cfg, f.cache, otelMocks.NewOtel())

	return f
}

func TestRateService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("prices a stay as rate times nights", func(t *testing.T) {
		f := newRateFixture(t, ctrl)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.RoomRate{{BedType: roomModel.BedTypeA, RatePerNight: 2000, IsActive: true}}, nil)

		res, err := f.svc.Quote(context.Background(), roomModel.BedTypeA, 3)
		require.NoError(t, err)

		assert.Equal(t, int64(2000), res.RatePerNight)
		assert.Equal(t, int64(6000), res.TotalAmount)
		assert.Equal(t, 3, res.Nights)
	})

	t.Run("rejects zero or negative nights", func(t *testing.T) {
		f := newRateFixture(t, ctrl)

		_, err := f.svc.Quote(context.Background(), roomModel.BedTypeA, 0)
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("a missing active rate is an integrity violation", func(t *testing.T) {
		f := newRateFixture(t, ctrl)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.RoomRate{}, nil)

		_, err := f.svc.Quote(context.Background(), roomModel.BedTypeB, 2)
		require.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})

	t.Run("duplicate active rates are an integrity violation", func(t *testing.T) {
		f := newRateFixture(t, ctrl)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.RoomRate{{RatePerNight: 2000}, {RatePerNight: 2500}}, nil)

		_, err := f.svc.Quote(context.Background(), roomModel.BedTypeA, 2)
		require.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestRateService_UpdateRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("replaces the active rate table in one transaction", func(t *testing.T) {
		f := newRateFixture(t, ctrl)

		f.txRunner.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			})

		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		f.repo.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, models []model.RoomRate) error {
				require.Len(t, models, 2)
				assert.True(t, models[0].IsActive)
				assert.True(t, models[1].IsActive)

				return nil
			})

		err := f.svc.UpdateRates(context.Background(), dto.UpdateRatesRequest{
			Rates: []dto.RateInput{
				{BedType: roomModel.BedTypeA, RatePerNight: 2000},
				{BedType: roomModel.BedTypeB, RatePerNight: 3500},
			},
		})
		require.NoError(t, err)
	})

	t.Run("rejects a rate set with a duplicate bed type", func(t *testing.T) {
		f := newRateFixture(t, ctrl)

		err := f.svc.UpdateRates(context.Background(), dto.UpdateRatesRequest{
			Rates: []dto.RateInput{
				{BedType: roomModel.BedTypeA, RatePerNight: 2000},
				{BedType: roomModel.BedTypeA, RatePerNight: 2500},
			},
		})
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestRateService_GetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("lists active rates on a cache miss", func(t *testing.T) {
		f := newRateFixture(t, ctrl)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.RoomRate{
				{BedType: roomModel.BedTypeA, RatePerNight: 2000, IsActive: true},
				{BedType: roomModel.BedTypeB, RatePerNight: 3500, IsActive: true},
			}, nil)

		res, err := f.svc.GetActive(context.Background())
		require.NoError(t, err)
		assert.Len(t, res.Rates, 2)
		assert.Equal(t, roomModel.BedTypeA, res.Rates[0].BedType)
	})
}
