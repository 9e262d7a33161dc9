package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adokuru/affordaily-api/config"
	otelMocks "github.com/adokuru/affordaily-api/infras/otel/mocks"
	"github.com/adokuru/affordaily-api/internal/domains/room/mocks"
	"github.com/adokuru/affordaily-api/internal/domains/room/model"
	"github.com/adokuru/affordaily-api/internal/domains/room/model/dto"
	"github.com/adokuru/affordaily-api/internal/domains/room/service"
	cacheMocks "github.com/adokuru/affordaily-api/shared/cache/mocks"
	"github.com/adokuru/affordaily-api/shared/constant"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
	"github.com/adokuru/affordaily-api/shared/failure"
)

type roomFixture struct {
	repo  *mocks.MockRoom
	cache *cacheMocks.MockRedisCache
	svc   service.Room
}

func newRoomFixture(t *testing.T, ctrl *gomock.Controller) *roomFixture {
	t.Helper()

	f := &roomFixture{
		repo:  mocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, cfg, f.cache, otelMocks.NewOtel())

	return f
}

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := dto.CreateRoomRequest{RoomNumber: "107", BedType: model.BedTypeA}

	t.Run("creates a room", func(t *testing.T) {
		f := newRoomFixture(t, ctrl)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		var inserted model.Room
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				inserted = room

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

		err := f.svc.Create(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, "107", inserted.RoomNumber)
		assert.Equal(t, model.BedTypeA, inserted.BedType)
		assert.True(t, inserted.IsAvailable)
		assert.Equal(t, "admin-1", inserted.CreatedBy)
	})

	t.Run("rejects a duplicate room number", func(t *testing.T) {
		f := newRoomFixture(t, ctrl)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := f.svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestRoomService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("lists rooms on a cache miss", func(t *testing.T) {
		f := newRoomFixture(t, ctrl)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError).
			Times(2)
		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Room{{ID: "room-1"}, {ID: "room-2"}}, nil)

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
		require.NoError(t, err)
		assert.Len(t, res.Rooms, 2)
		assert.Equal(t, 2, res.TotalData)
	})
}

func TestRoomService_GetOccupancyStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("aggregates occupancy per bed type", func(t *testing.T) {
		f := newRoomFixture(t, ctrl)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)
		f.repo.EXPECT().
			GetOccupancyStats(gomock.Any()).
			Return([]model.OccupancyStat{
				{BedType: model.BedTypeA, Total: 10, Available: 4, Occupied: 6},
				{BedType: model.BedTypeB, Total: 5, Available: 5, Occupied: 0},
			}, nil)

		res, err := f.svc.GetOccupancyStats(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 15, res.Total)
		assert.Equal(t, 9, res.Available)
		assert.Equal(t, 6, res.Occupied)
		assert.InDelta(t, 40.0, res.OccupancyRate, 0.0001)
		assert.Len(t, res.Stats, 2)
	})
}
