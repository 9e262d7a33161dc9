package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "github.com/adokuru/affordaily-api/infras/otel/mocks"
	"github.com/adokuru/affordaily-api/internal/domains/guest/mocks"
	"github.com/adokuru/affordaily-api/internal/domains/guest/model"
	"github.com/adokuru/affordaily-api/internal/domains/guest/service"
	"github.com/adokuru/affordaily-api/shared/constant"
	"github.com/adokuru/affordaily-api/shared/failure"
)

func TestGuestService_FindOrCreateTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns the existing guest for a known phone", func(t *testing.T) {
		repo := mocks.NewMockGuestRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		existing := model.Guest{ID: "guest-1", Name: "Ada Obi", Phone: "+2348011111111"}

		repo.EXPECT().
			GetByPhoneTx(gomock.Any(), gomock.Any(), "+2348011111111").
			Return(existing, nil)

		guest, err := svc.FindOrCreateTx(context.Background(), nil, "Ada Obi", "+2348011111111", "")
		require.NoError(t, err)
		assert.Equal(t, existing, guest)
	})

	t.Run("creates a new guest for an unknown phone", func(t *testing.T) {
		repo := mocks.NewMockGuestRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		repo.EXPECT().
			GetByPhoneTx(gomock.Any(), gomock.Any(), "+2348022222222").
			Return(model.Guest{}, nil)

		var inserted model.Guest
		repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, guest model.Guest) error {
				inserted = guest

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "reception-1")

		guest, err := svc.FindOrCreateTx(ctx, nil, "Chidi Eze", "+2348022222222", "photo-1")
		require.NoError(t, err)

		assert.NotEmpty(t, guest.ID)
		assert.Equal(t, "Chidi Eze", inserted.Name)
		assert.Equal(t, "+2348022222222", inserted.Phone)
		assert.Equal(t, "photo-1", inserted.IDPhotoRef)
		assert.Equal(t, "reception-1", inserted.CreatedBy)
	})
}

func TestGuestService_GetByPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns the registry record for a phone", func(t *testing.T) {
		repo := mocks.NewMockGuestRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{ID: "guest-1", Name: "Ada Obi", Phone: "+2348011111111", TotalStays: 3, TotalSpent: 18000}, nil)

		res, err := svc.GetByPhone(context.Background(), "+2348011111111")
		require.NoError(t, err)
		assert.Equal(t, "Ada Obi", res.Name)
		assert.Equal(t, 3, res.TotalStays)
		assert.Equal(t, int64(18000), res.TotalSpent)
	})

	t.Run("returns not found for an unknown phone", func(t *testing.T) {
		repo := mocks.NewMockGuestRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)

		_, err := svc.GetByPhone(context.Background(), "+2348000000000")
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestGuestService_IncrementStatsTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("forwards the stay totals to the repository", func(t *testing.T) {
		repo := mocks.NewMockGuestRepository(ctrl)
		svc := service.New(repo, otelMocks.NewOtel())

		stayAt := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

		repo.EXPECT().
			IncrementStatsTx(gomock.Any(), gomock.Any(), "guest-1", int64(6000), stayAt).
			Return(nil)

		err := svc.IncrementStatsTx(context.Background(), nil, "guest-1", 6000, stayAt)
		require.NoError(t, err)
	})
}
