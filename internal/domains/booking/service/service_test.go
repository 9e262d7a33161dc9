package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adokuru/affordaily-api/config"
	kafkaMocks "github.com/adokuru/affordaily-api/infras/kafka/mocks"
	otelMocks "github.com/adokuru/affordaily-api/infras/otel/mocks"
	postgresMocks "github.com/adokuru/affordaily-api/infras/postgres/mocks"
	bookingMocks "github.com/adokuru/affordaily-api/internal/domains/booking/mocks"
	"github.com/adokuru/affordaily-api/internal/domains/booking/model"
	"github.com/adokuru/affordaily-api/internal/domains/booking/model/dto"
	"github.com/adokuru/affordaily-api/internal/domains/booking/service"
	guestMocks "github.com/adokuru/affordaily-api/internal/domains/guest/mocks"
	guestModel "github.com/adokuru/affordaily-api/internal/domains/guest/model"
	paymentMocks "github.com/adokuru/affordaily-api/internal/domains/payment/mocks"
	paymentModel "github.com/adokuru/affordaily-api/internal/domains/payment/model"
	rateMocks "github.com/adokuru/affordaily-api/internal/domains/rate/mocks"
	rateDto "github.com/adokuru/affordaily-api/internal/domains/rate/model/dto"
	roomMocks "github.com/adokuru/affordaily-api/internal/domains/room/mocks"
	roomModel "github.com/adokuru/affordaily-api/internal/domains/room/model"
	visitorMocks "github.com/adokuru/affordaily-api/internal/domains/visitorpass/mocks"
	cacheMocks "github.com/adokuru/affordaily-api/shared/cache/mocks"
	"github.com/adokuru/affordaily-api/shared/constant"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
	"github.com/adokuru/affordaily-api/shared/failure"
)

type bookingFixture struct {
	repo       *bookingMocks.MockBookingRepository
	roomRepo   *roomMocks.MockRoom
	guestSvc   *guestMocks.MockGuest
	rateSvc    *rateMocks.MockRateService
	paymentSvc *paymentMocks.MockPayment
	visitorSvc *visitorMocks.MockVisitorPass
	txRunner   *postgresMocks.MockTxRunner
	producer   *kafkaMocks.MockClient
	cache      *cacheMocks.MockRedisCache
	svc        service.Booking
	now        time.Time
}

func newBookingFixture(t *testing.T, ctrl *gomock.Controller) *bookingFixture {
	t.Helper()

	f := &bookingFixture{
		repo:       bookingMocks.NewMockBookingRepository(ctrl),
		roomRepo:   roomMocks.NewMockRoom(ctrl),
		guestSvc:   guestMocks.NewMockGuest(ctrl),
		rateSvc:    rateMocks.NewMockRateService(ctrl),
		paymentSvc: paymentMocks.NewMockPayment(ctrl),
		visitorSvc: visitorMocks.NewMockVisitorPass(ctrl),
		txRunner:   postgresMocks.NewMockTxRunner(ctrl),
		producer:   kafkaMocks.NewMockClient(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
		now:        time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.BookingTopic = "booking-events"

	// cache invalidation and event publishing run on goroutines after commit
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.producer.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(
		f.repo, f.roomRepo, f.guestSvc, f.rateSvc, f.paymentSvc, f.visitorSvc,
		f.txRunner, f.producer, cfg, f.cache, otelMocks.NewOtel(),
		func() time.Time { return f.now },
	)

	return f
}

func (f *bookingFixture) runTransaction() {
	f.txRunner.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func TestBookingService_CheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := dto.CheckInRequest{
		GuestName:        "Ada Obi",
		GuestPhone:       "+2348011111111",
		PreferredBedType: roomModel.BedTypeA,
		NumberOfNights:   3,
		PaymentMethod:    paymentModel.MethodCash,
	}

	t.Run("opens a fully paid booking with noon checkout", func(t *testing.T) {
		f := newBookingFixture(t, ctrl)
		f.runTransaction()

		guest := guestModel.Guest{ID: "guest-1", Name: req.GuestName, Phone: req.GuestPhone}
		room := roomModel.Room{ID: "room-7", RoomNumber: "107", BedType: roomModel.BedTypeA}

		f.guestSvc.EXPECT().
			FindOrCreateTx(gomock.Any(), gomock.Any(), req.GuestName, req.GuestPhone, "").
			Return(guest, nil)
		f.roomRepo.EXPECT().
			ClaimAvailableTx(gomock.Any(), gomock.Any(), roomModel.BedTypeA).
			Return(room, nil)
		f.rateSvc.EXPECT().
			Quote(gomock.Any(), roomModel.BedTypeA, 3).
			Return(rateDto.QuoteResponse{BedType: roomModel.BedTypeA, Nights: 3, RatePerNight: 2000, TotalAmount: 6000}, nil)
		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		var inserted model.Booking
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
				inserted = booking

				return nil
			})

		f.paymentSvc.EXPECT().
			RecordConfirmedTx(gomock.Any(), gomock.Any(), gomock.Any(), paymentModel.MethodCash, int64(6000), req.GuestName, "").
			Return(paymentModel.Payment{}, nil)
		f.guestSvc.EXPECT().
			IncrementStatsTx(gomock.Any(), gomock.Any(), "guest-1", int64(6000), f.now).
			Return(nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "reception-1")

		res, err := f.svc.CheckIn(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, model.StatusActive, inserted.Status)
		assert.Equal(t, int64(6000), inserted.TotalAmount)
		assert.Equal(t, int64(6000), inserted.AmountPaid)
		assert.Equal(t, time.Date(2025, 3, 13, constant.CheckoutHour, 0, 0, 0, time.UTC), inserted.ScheduledCheckoutTime)
		assert.Contains(t, inserted.BookingReference, "BK-")
		assert.Equal(t, "guest-1", inserted.GuestID)
		assert.Equal(t, "room-7", inserted.RoomID)

		assert.Equal(t, int64(0), res.Balance)
		assert.Equal(t, model.StatusActive, res.Status)
	})

	t.Run("rejects check-in when no rooms are available", func(t *testing.T) {
		f := newBookingFixture(t, ctrl)
		f.runTransaction()

		f.guestSvc.EXPECT().
			FindOrCreateTx(gomock.Any(), gomock.Any(), req.GuestName, req.GuestPhone, "").
			Return(guestModel.Guest{ID: "guest-1"}, nil)
		f.roomRepo.EXPECT().
			ClaimAvailableTx(gomock.Any(), gomock.Any(), roomModel.BedTypeA).
			Return(roomModel.Room{}, nil)

		_, err := f.svc.CheckIn(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("rejects blacklisted guests", func(t *testing.T) {
		f := newBookingFixture(t, ctrl)
		f.runTransaction()

		f.guestSvc.EXPECT().
			FindOrCreateTx(gomock.Any(), gomock.Any(), req.GuestName, req.GuestPhone, "").
			Return(guestModel.Guest{ID: "guest-1", IsBlacklisted: true, BlacklistReason: "unpaid damages"}, nil)

		_, err := f.svc.CheckIn(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
		assert.Contains(t, err.Error(), "blacklisted")
	})
}

func TestBookingService_Extend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := dto.ExtendRequest{AdditionalNights: 2, PaymentMethod: paymentModel.MethodTransfer}

	active := model.Booking{
		ID:                    "booking-1",
		BookingReference:      "BK-A1B2C3D4",
		RoomID:                "room-7",
		GuestName:             "Ada Obi",
		Status:                model.StatusActive,
		NumberOfNights:        3,
		TotalAmount:           6000,
		AmountPaid:            6000,
		ScheduledCheckoutTime: time.Date(2025, 3, 13, constant.CheckoutHour, 0, 0, 0, time.UTC),
	}

	t.Run("adds paid nights and moves the scheduled checkout", func(t *testing.T) {
		f := newBookingFixture(t, ctrl)
		f.runTransaction()

		newScheduled := time.Date(2025, 3, 15, constant.CheckoutHour, 0, 0, 0, time.UTC)

		f.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-1").
			Return(active, nil)
		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{ID: "room-7", BedType: roomModel.BedTypeA}, nil)
		f.rateSvc.EXPECT().
			Quote(gomock.Any(), roomModel.BedTypeA, 2).
			Return(rateDto.QuoteResponse{TotalAmount: 4000}, nil)
		f.repo.EXPECT().
			AddNightsTx(gomock.Any(), gomock.Any(), "booking-1", 2, int64(4000), newScheduled, gomock.Any()).
			Return(int64(1), nil)
		f.paymentSvc.EXPECT().
			RecordConfirmedTx(gomock.Any(), gomock.Any(), "booking-1", paymentModel.MethodTransfer, int64(4000), "Ada Obi", "").
			Return(paymentModel.Payment{}, nil)

		res, err := f.svc.Extend(context.Background(), "booking-1", req)
		require.NoError(t, err)

		assert.Equal(t, 5, res.NumberOfNights)
		assert.Equal(t, int64(10000), res.TotalAmount)
		assert.Equal(t, int64(10000), res.AmountPaid)
		assert.Equal(t, int64(0), res.Balance)
		assert.Equal(t, newScheduled.Format(constant.DateFormat), res.ScheduledCheckoutTime)
	})

	t.Run("rejects extending a closed booking", func(t *testing.T) {
		f := newBookingFixture(t, ctrl)
		f.runTransaction()

		closed := active
		closed.Status = model.StatusCompleted

		f.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-1").
			Return(closed, nil)

		_, err := f.svc.Extend(context.Background(), "booking-1", req)
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("returns not found for unknown booking", func(t *testing.T) {
		f := newBookingFixture(t, ctrl)
		f.runTransaction()

		f.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "missing").
			Return(model.Booking{}, nil)

		_, err := f.svc.Extend(context.Background(), "missing", req)
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	open := model.Booking{
		ID:                    "booking-1",
		RoomID:                "room-7",
		Status:                model.StatusActive,
		ScheduledCheckoutTime: time.Date(2025, 3, 13, constant.CheckoutHour, 0, 0, 0, time.UTC),
	}

	expectClose := func(f *bookingFixture) {
		f.repo.EXPECT().
			UpdateTxCount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)
		f.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		f.visitorSvc.EXPECT().
			CloseAllForBookingTx(gomock.Any(), gomock.Any(), "booking-1", gomock.Any()).
			Return(nil)
	}

	t.Run("records early checkout when flagged by reception", func(t *testing.T) {
		f := newBookingFixture(t, ctrl)
		f.runTransaction()
		f.now = time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

		f.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-1").
			Return(open, nil)
		expectClose(f)

		res, err := f.svc.Checkout(context.Background(), "booking-1", dto.CheckoutRequest{KeyReturned: true, EarlyCheckout: true})
		require.NoError(t, err)

		assert.Equal(t, model.StatusEarlyCheckout, res.Status)
		assert.True(t, res.KeyReturned)
		require.NotNil(t, res.CheckOutTime)
	})

	t.Run("records a completed stay when not flagged early", func(t *testing.T) {
		f := newBookingFixture(t, ctrl)
		f.runTransaction()
		f.now = time.Date(2025, 3, 13, constant.CheckoutHour, 30, 0, 0, time.UTC)

		pending := open
		pending.Status = model.StatusPendingCheckout

		f.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-1").
			Return(pending, nil)
		expectClose(f)

		res, err := f.svc.Checkout(context.Background(), "booking-1", dto.CheckoutRequest{KeyReturned: true, DamageNotes: "broken lamp"})
		require.NoError(t, err)

		assert.Equal(t, model.StatusCompleted, res.Status)
		assert.Equal(t, "broken lamp", res.DamageNotes)
	})

	t.Run("rejects checking out a closed booking", func(t *testing.T) {
		f := newBookingFixture(t, ctrl)
		f.runTransaction()

		closed := open
		closed.Status = model.StatusAutoCheckout

		f.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-1").
			Return(closed, nil)

		_, err := f.svc.Checkout(context.Background(), "booking-1", dto.CheckoutRequest{})
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func filterOn(t *testing.T, group gDto.FilterGroup, field string) gDto.Filter {
	t.Helper()

	for _, raw := range group.Filters {
		if fl, ok := raw.(gDto.Filter); ok && fl.Field == field {
			return fl
		}
	}

	t.Fatalf("no filter on %s", field)

	return gDto.Filter{}
}

func TestBookingService_RunMidnightSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	asOf := time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)

	t.Run("moves due bookings to pending checkout", func(t *testing.T) {
		f := newBookingFixture(t, ctrl)
		f.runTransaction()

		f.repo.EXPECT().
			UpdateTxCount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) (int64, error) {
				assert.Equal(t, model.StatusPendingCheckout, mod[model.FieldStatus])

				statusFilter := filterOn(t, filter, model.FieldStatus)
				assert.Equal(t, gDto.FilterOperatorEq, statusFilter.Operator)
				assert.Equal(t, model.StatusActive, statusFilter.Value)

				dueFilter := filterOn(t, filter, model.FieldScheduledCheckoutTime)
				assert.Equal(t, gDto.FilterOperatorDateEq, dueFilter.Operator)
				assert.Equal(t, "2025-03-13", dueFilter.Value)

				return 4, nil
			})

		res, err := f.svc.RunMidnightSweep(context.Background(), asOf)
		require.NoError(t, err)
		assert.Equal(t, 4, res.Transitions)
	})

	t.Run("a rerun with nothing due is a no-op", func(t *testing.T) {
		f := newBookingFixture(t, ctrl)
		f.runTransaction()

		f.repo.EXPECT().
			UpdateTxCount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		res, err := f.svc.RunMidnightSweep(context.Background(), asOf)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Transitions)
	})
}

func TestBookingService_RunNoonSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	asOf := time.Date(2025, 3, 13, constant.CheckoutHour, 0, 0, 0, time.UTC)

	overdue := []model.Booking{
		{ID: "booking-1", RoomID: "room-1", Status: model.StatusPendingCheckout},
		{ID: "booking-2", RoomID: "room-2", Status: model.StatusPendingCheckout},
	}

	t.Run("force-closes overdue bookings and frees their rooms", func(t *testing.T) {
		f := newBookingFixture(t, ctrl)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				statusFilter := filterOn(t, filter, model.FieldStatus)
				assert.Equal(t, gDto.FilterOperatorEq, statusFilter.Operator)
				assert.Equal(t, model.StatusPendingCheckout, statusFilter.Value)

				return overdue, nil
			})

		f.txRunner.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			}).
			Times(2)

		f.repo.EXPECT().
			UpdateTxCount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) (int64, error) {
				assert.Equal(t, model.StatusAutoCheckout, mod[model.FieldStatus])
				assert.Equal(t, constant.AutoCheckoutReason, mod[model.FieldAutoCheckoutReason])

				guard := filterOn(t, filter, model.FieldStatus)
				assert.Equal(t, model.StatusPendingCheckout, guard.Value)

				return 1, nil
			}).
			Times(2)
		f.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)
		f.visitorSvc.EXPECT().
			CloseAllForBookingTx(gomock.Any(), gomock.Any(), gomock.Any(), asOf).
			Return(nil).
			Times(2)

		res, err := f.svc.RunNoonSweep(context.Background(), asOf)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Transitions)
	})

	t.Run("a booking scheduled exactly at the sweep time is left alone", func(t *testing.T) {
		f := newBookingFixture(t, ctrl)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				overdueFilter := filterOn(t, filter, model.FieldScheduledCheckoutTime)
				assert.Equal(t, gDto.FilterOperatorLess, overdueFilter.Operator)
				assert.Equal(t, asOf, overdueFilter.Value)

				// strictly less-than excludes the boundary row
				return nil, nil
			})

		res, err := f.svc.RunNoonSweep(context.Background(), asOf)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Transitions)
	})

	t.Run("skips bookings already handled by a concurrent run", func(t *testing.T) {
		f := newBookingFixture(t, ctrl)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(overdue[:1], nil)

		f.txRunner.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			})

		f.repo.EXPECT().
			UpdateTxCount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		res, err := f.svc.RunNoonSweep(context.Background(), asOf)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Transitions)
	})

	t.Run("one failing booking does not block the rest", func(t *testing.T) {
		f := newBookingFixture(t, ctrl)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(overdue, nil)

		f.txRunner.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			}).
			Times(2)

		gomock.InOrder(
			f.repo.EXPECT().
				UpdateTxCount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(int64(0), errors.New("deadlock detected")),
			f.repo.EXPECT().
				UpdateTxCount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(int64(1), nil),
		)
		f.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		f.visitorSvc.EXPECT().
			CloseAllForBookingTx(gomock.Any(), gomock.Any(), "booking-2", asOf).
			Return(nil)

		res, err := f.svc.RunNoonSweep(context.Background(), asOf)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Transitions)
	})
}
