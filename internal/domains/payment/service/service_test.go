package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adokuru/affordaily-api/config"
	otelMocks "github.com/adokuru/affordaily-api/infras/otel/mocks"
	postgresMocks "github.com/adokuru/affordaily-api/infras/postgres/mocks"
	bookingMocks "github.com/adokuru/affordaily-api/internal/domains/booking/mocks"
	bookingModel "github.com/adokuru/affordaily-api/internal/domains/booking/model"
	"github.com/adokuru/affordaily-api/internal/domains/payment/mocks"
	"github.com/adokuru/affordaily-api/internal/domains/payment/model"
	"github.com/adokuru/affordaily-api/internal/domains/payment/model/dto"
	"github.com/adokuru/affordaily-api/internal/domains/payment/service"
	cacheMocks "github.com/adokuru/affordaily-api/shared/cache/mocks"
	"github.com/adokuru/affordaily-api/shared/constant"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
	"github.com/adokuru/affordaily-api/shared/failure"
)

type paymentFixture struct {
	repo        *mocks.MockPaymentRepository
	bookingRepo *bookingMocks.MockBookingRepository
	txRunner    *postgresMocks.MockTxRunner
	cache       *cacheMocks.MockRedisCache
	svc         service.Payment
	now         time.Time
}

func newPaymentFixture(t *testing.T, ctrl *gomock.Controller) *paymentFixture {
	t.Helper()

	f := &paymentFixture{
		repo:        mocks.NewMockPaymentRepository(ctrl),
		bookingRepo: bookingMocks.NewMockBookingRepository(ctrl),
		txRunner:    postgresMocks.NewMockTxRunner(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		now:         time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(
		f.repo, f.bookingRepo, f.txRunner, cfg, f.cache, otelMocks.NewOtel(),
		func() time.Time { return f.now },
	)

	return f
}

func (f *paymentFixture) runTransaction() {
	f.txRunner.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func TestPaymentService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	booking := bookingModel.Booking{
		ID:          "booking-1",
		Status:      bookingModel.StatusActive,
		TotalAmount: 10000,
		AmountPaid:  6000,
	}

	t.Run("records a pending entry without touching the paid total", func(t *testing.T) {
		f := newPaymentFixture(t, ctrl)
		f.runTransaction()

		f.bookingRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-1").
			Return(booking, nil)

		var inserted model.Payment
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, payment model.Payment) error {
				inserted = payment

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "reception-1")

		res, err := f.svc.Record(ctx, dto.RecordPaymentRequest{
			BookingID:     "booking-1",
			PaymentMethod: model.MethodTransfer,
			Amount:        3000,
			PayerName:     "Ada Obi",
			Reference:     "TRF-991",
		})
		require.NoError(t, err)

		assert.False(t, inserted.IsConfirmed)
		assert.Nil(t, inserted.ConfirmedAt)
		assert.Equal(t, "reception-1", inserted.CreatedBy)
		assert.Equal(t, int64(3000), res.Amount)
	})

	t.Run("a confirmed entry credits the booking in the same transaction", func(t *testing.T) {
		f := newPaymentFixture(t, ctrl)
		f.runTransaction()

		f.bookingRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-1").
			Return(booking, nil)
		f.bookingRepo.EXPECT().
			IncrementPaidTx(gomock.Any(), gomock.Any(), "booking-1", int64(4000), gomock.Any()).
			Return(nil)
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Record(context.Background(), dto.RecordPaymentRequest{
			BookingID:     "booking-1",
			PaymentMethod: model.MethodCash,
			Amount:        4000,
			Confirmed:     true,
		})
		require.NoError(t, err)
		assert.True(t, res.IsConfirmed)
		require.NotNil(t, res.ConfirmedAt)
	})

	t.Run("rejects an amount over the outstanding balance", func(t *testing.T) {
		f := newPaymentFixture(t, ctrl)
		f.runTransaction()

		f.bookingRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-1").
			Return(booking, nil)

		_, err := f.svc.Record(context.Background(), dto.RecordPaymentRequest{
			BookingID:     "booking-1",
			PaymentMethod: model.MethodCash,
			Amount:        4001,
		})
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("returns not found for an unknown booking", func(t *testing.T) {
		f := newPaymentFixture(t, ctrl)
		f.runTransaction()

		f.bookingRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "missing").
			Return(bookingModel.Booking{}, nil)

		_, err := f.svc.Record(context.Background(), dto.RecordPaymentRequest{
			BookingID:     "missing",
			PaymentMethod: model.MethodCash,
			Amount:        100,
		})
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPaymentService_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pending := model.Payment{
		ID:            "payment-1",
		BookingID:     "booking-1",
		PaymentMethod: model.MethodTransfer,
		Amount:        3000,
	}

	t.Run("confirms a pending entry and credits the booking once", func(t *testing.T) {
		f := newPaymentFixture(t, ctrl)
		f.runTransaction()

		f.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "payment-1").
			Return(pending, nil)
		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		f.bookingRepo.EXPECT().
			IncrementPaidTx(gomock.Any(), gomock.Any(), "booking-1", int64(3000), gomock.Any()).
			Return(nil)

		res, err := f.svc.Confirm(context.Background(), "payment-1")
		require.NoError(t, err)
		assert.True(t, res.IsConfirmed)
		require.NotNil(t, res.ConfirmedAt)
		assert.Equal(t, f.now.Format(constant.DateFormat), *res.ConfirmedAt)
	})

	t.Run("confirming twice fails instead of double crediting", func(t *testing.T) {
		f := newPaymentFixture(t, ctrl)
		f.runTransaction()

		confirmed := pending
		confirmed.IsConfirmed = true

		f.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "payment-1").
			Return(confirmed, nil)

		_, err := f.svc.Confirm(context.Background(), "payment-1")
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestPaymentService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("edits a pending entry", func(t *testing.T) {
		f := newPaymentFixture(t, ctrl)
		f.runTransaction()

		f.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "payment-1").
			Return(model.Payment{ID: "payment-1", BookingID: "booking-1", Amount: 3000}, nil)
		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Update(context.Background(), "payment-1", dto.UpdatePaymentRequest{PayerName: "Ada O."})
		require.NoError(t, err)
	})

	t.Run("a raised amount is checked against the remaining balance", func(t *testing.T) {
		f := newPaymentFixture(t, ctrl)
		f.runTransaction()

		f.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "payment-1").
			Return(model.Payment{ID: "payment-1", BookingID: "booking-1", Amount: 3000}, nil)
		f.bookingRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-1").
			Return(bookingModel.Booking{ID: "booking-1", TotalAmount: 10000, AmountPaid: 6000}, nil)

		err := f.svc.Update(context.Background(), "payment-1", dto.UpdatePaymentRequest{Amount: 5000})
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("confirmed entries are immutable", func(t *testing.T) {
		f := newPaymentFixture(t, ctrl)
		f.runTransaction()

		f.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "payment-1").
			Return(model.Payment{ID: "payment-1", IsConfirmed: true}, nil)

		err := f.svc.Update(context.Background(), "payment-1", dto.UpdatePaymentRequest{Amount: 100})
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestPaymentService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("deletes a pending entry", func(t *testing.T) {
		f := newPaymentFixture(t, ctrl)
		f.runTransaction()

		f.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "payment-1").
			Return(model.Payment{ID: "payment-1"}, nil)
		f.repo.EXPECT().
			DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Delete(context.Background(), "payment-1")
		require.NoError(t, err)
	})

	t.Run("confirmed entries cannot be deleted", func(t *testing.T) {
		f := newPaymentFixture(t, ctrl)
		f.runTransaction()

		f.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "payment-1").
			Return(model.Payment{ID: "payment-1", IsConfirmed: true}, nil)

		err := f.svc.Delete(context.Background(), "payment-1")
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestPaymentService_GetByBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("lists the ledger for a booking", func(t *testing.T) {
		f := newPaymentFixture(t, ctrl)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)
		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Payment{{ID: "payment-1"}, {ID: "payment-2"}}, nil)
		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.GetByBooking(context.Background(), "booking-1", gDto.QueryParams{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, res.Payments, 2)
		assert.Equal(t, 2, res.TotalData)
	})
}

func TestPaymentService_RecordConfirmedTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("writes a confirmed entry for a booking charge", func(t *testing.T) {
		f := newPaymentFixture(t, ctrl)

		var inserted model.Payment
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, payment model.Payment) error {
				inserted = payment

				return nil
			})

		payment, err := f.svc.RecordConfirmedTx(context.Background(), nil, "booking-1", model.MethodCash, 6000, "Ada Obi", "TRF-001")
		require.NoError(t, err)

		assert.True(t, inserted.IsConfirmed)
		require.NotNil(t, inserted.ConfirmedAt)
		assert.Equal(t, "TRF-001", inserted.Reference)
		assert.Equal(t, int64(6000), payment.Amount)
		assert.Equal(t, "booking-1", payment.BookingID)
	})
}
