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
	postgresMocks "github.com/adokuru/affordaily-api/infras/postgres/mocks"
	bookingMocks "github.com/adokuru/affordaily-api/internal/domains/booking/mocks"
	bookingModel "github.com/adokuru/affordaily-api/internal/domains/booking/model"
	guestMocks "github.com/adokuru/affordaily-api/internal/domains/guest/mocks"
	guestModel "github.com/adokuru/affordaily-api/internal/domains/guest/model"
	"github.com/adokuru/affordaily-api/internal/domains/visitorpass/mocks"
	"github.com/adokuru/affordaily-api/internal/domains/visitorpass/model"
	"github.com/adokuru/affordaily-api/internal/domains/visitorpass/model/dto"
	"github.com/adokuru/affordaily-api/internal/domains/visitorpass/service"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
	"github.com/adokuru/affordaily-api/shared/failure"
)

type visitorFixture struct {
	repo        *mocks.MockVisitorPassRepository
	bookingRepo *bookingMocks.MockBookingRepository
	guestSvc    *guestMocks.MockGuest
	txRunner    *postgresMocks.MockTxRunner
	svc         service.VisitorPass
	now         time.Time
}

func newVisitorFixture(t *testing.T, ctrl *gomock.Controller) *visitorFixture {
	t.Helper()

	f := &visitorFixture{
		repo:        mocks.NewMockVisitorPassRepository(ctrl),
		bookingRepo: bookingMocks.NewMockBookingRepository(ctrl),
		guestSvc:    guestMocks.NewMockGuest(ctrl),
		txRunner:    postgresMocks.NewMockTxRunner(ctrl),
		now:         time.Date(2025, 3, 11, 18, 0, 0, 0, time.UTC),
	}

	f.svc = service.New(f.repo, f.bookingRepo, f.guestSvc, f.txRunner, otelMocks.NewOtel(), func() time.Time { return f.now })

	return f
}

func (f *visitorFixture) runTransaction() {
	f.txRunner.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func TestVisitorPassService_Issue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := dto.IssueVisitorPassRequest{
		BookingID:    "booking-1",
		VisitorName:  "Chidi Eze",
		VisitorPhone: "+2348022222222",
	}

	activeBooking := bookingModel.Booking{ID: "booking-1", Status: bookingModel.StatusActive}
	visitor := guestModel.Guest{ID: "guest-9", Name: "Chidi Eze", Phone: "+2348022222222"}

	t.Run("issues a pass against an active booking", func(t *testing.T) {
		f := newVisitorFixture(t, ctrl)
		f.runTransaction()

		f.bookingRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-1").
			Return(activeBooking, nil)
		f.guestSvc.EXPECT().
			FindOrCreateTx(gomock.Any(), gomock.Any(), req.VisitorName, req.VisitorPhone, "").
			Return(visitor, nil)
		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		var inserted model.VisitorPass
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, pass model.VisitorPass) error {
				inserted = pass

				return nil
			})

		res, err := f.svc.Issue(context.Background(), req)
		require.NoError(t, err)

		assert.True(t, inserted.IsActive)
		assert.Equal(t, "guest-9", inserted.GuestID)
		assert.Equal(t, f.now, inserted.CheckInTime)
		assert.Equal(t, "Chidi Eze", res.VisitorName)
	})

	t.Run("rejects a pass for a booking pending checkout", func(t *testing.T) {
		f := newVisitorFixture(t, ctrl)
		f.runTransaction()

		pending := activeBooking
		pending.Status = bookingModel.StatusPendingCheckout

		f.bookingRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-1").
			Return(pending, nil)

		_, err := f.svc.Issue(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("rejects a blacklisted visitor", func(t *testing.T) {
		f := newVisitorFixture(t, ctrl)
		f.runTransaction()

		f.bookingRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-1").
			Return(activeBooking, nil)
		f.guestSvc.EXPECT().
			FindOrCreateTx(gomock.Any(), gomock.Any(), req.VisitorName, req.VisitorPhone, "").
			Return(guestModel.Guest{ID: "guest-9", IsBlacklisted: true, BlacklistReason: "trespassing"}, nil)

		_, err := f.svc.Issue(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
		assert.Contains(t, err.Error(), "blacklisted")
	})

	t.Run("rejects a second open pass for the same visitor and booking", func(t *testing.T) {
		f := newVisitorFixture(t, ctrl)
		f.runTransaction()

		f.bookingRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-1").
			Return(activeBooking, nil)
		f.guestSvc.EXPECT().
			FindOrCreateTx(gomock.Any(), gomock.Any(), req.VisitorName, req.VisitorPhone, "").
			Return(visitor, nil)
		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := f.svc.Issue(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("returns not found for an unknown booking", func(t *testing.T) {
		f := newVisitorFixture(t, ctrl)
		f.runTransaction()

		f.bookingRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-1").
			Return(bookingModel.Booking{}, nil)

		_, err := f.svc.Issue(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestVisitorPassService_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("closes an open pass", func(t *testing.T) {
		f := newVisitorFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.VisitorPass{ID: "pass-1", IsActive: true}, nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, false, mod[model.FieldIsActive])
				assert.Equal(t, f.now, mod[model.FieldCheckOutTime])

				return nil
			})

		err := f.svc.Checkout(context.Background(), "pass-1")
		require.NoError(t, err)
	})

	t.Run("closing a closed pass fails", func(t *testing.T) {
		f := newVisitorFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.VisitorPass{ID: "pass-1", IsActive: false}, nil)

		err := f.svc.Checkout(context.Background(), "pass-1")
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestVisitorPassService_CloseAllForBookingTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("closes every open pass for the booking", func(t *testing.T) {
		f := newVisitorFixture(t, ctrl)

		at := time.Date(2025, 3, 13, 12, 0, 0, 0, time.UTC)

		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, false, mod[model.FieldIsActive])
				assert.Equal(t, at, mod[model.FieldCheckOutTime])

				return nil
			})

		err := f.svc.CloseAllForBookingTx(context.Background(), nil, "booking-1", at)
		require.NoError(t, err)
	})
}

func TestVisitorPassService_GetActiveByBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("lists open passes for a booking", func(t *testing.T) {
		f := newVisitorFixture(t, ctrl)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.VisitorPass{{ID: "pass-1", IsActive: true}}, nil)

		res, err := f.svc.GetActiveByBooking(context.Background(), "booking-1")
		require.NoError(t, err)
		assert.Len(t, res.Passes, 1)
	})
}
