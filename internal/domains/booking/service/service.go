package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/adokuru/affordaily-api/config"
	"github.com/adokuru/affordaily-api/infras/kafka"
	"github.com/adokuru/affordaily-api/infras/otel"
	"github.com/adokuru/affordaily-api/infras/postgres"
	"github.com/adokuru/affordaily-api/internal/domains/booking/model"
	"github.com/adokuru/affordaily-api/internal/domains/booking/model/dto"
	"github.com/adokuru/affordaily-api/internal/domains/booking/repository"
	guestService "github.com/adokuru/affordaily-api/internal/domains/guest/service"
	paymentService "github.com/adokuru/affordaily-api/internal/domains/payment/service"
	rateService "github.com/adokuru/affordaily-api/internal/domains/rate/service"
	roomModel "github.com/adokuru/affordaily-api/internal/domains/room/model"
	roomRepo "github.com/adokuru/affordaily-api/internal/domains/room/repository"
	visitorService "github.com/adokuru/affordaily-api/internal/domains/visitorpass/service"
	"github.com/adokuru/affordaily-api/shared"
	"github.com/adokuru/affordaily-api/shared/cache"
	"github.com/adokuru/affordaily-api/shared/constant"
	gDto "github.com/adokuru/affordaily-api/shared/dto"
	"github.com/adokuru/affordaily-api/shared/failure"
	gModel "github.com/adokuru/affordaily-api/shared/model"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheRoomOccupancy = "room:occupancy"
)

const (
	EventCheckedIn      = "booking.checked_in"
	EventExtended       = "booking.extended"
	EventCheckedOut     = "booking.checked_out"
	EventAutoCheckedOut = "booking.auto_checked_out"
)

const (
	schedulerActor = "scheduler"

	referenceAttempts = 5
)

type lifecycleEvent struct {
	Event            string `json:"event"`
	BookingID        string `json:"booking_id"`
	BookingReference string `json:"booking_reference"`
	RoomID           string `json:"room_id"`
	Status           string `json:"status"`
	OccurredAt       string `json:"occurred_at"`
}

type Booking interface {
	CheckIn(ctx context.Context, req dto.CheckInRequest) (dto.BookingResponse, error)
	Extend(ctx context.Context, id string, req dto.ExtendRequest) (dto.BookingResponse, error)
	Checkout(ctx context.Context, id string, req dto.CheckoutRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetActive(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	RunMidnightSweep(ctx context.Context, asOf time.Time) (dto.SweepResponse, error)
	RunNoonSweep(ctx context.Context, asOf time.Time) (dto.SweepResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	roomRepo   roomRepo.Room
	guestSvc   guestService.Guest
	rateSvc    rateService.Rate
	paymentSvc paymentService.Payment
	visitorSvc visitorService.VisitorPass
	txRunner   postgres.TxRunner
	producer   kafka.Client
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	now        func() time.Time
}

//nolint:revive
func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	guestSvc guestService.Guest,
	rateSvc rateService.Rate,
	paymentSvc paymentService.Payment,
	visitorSvc visitorService.VisitorPass,
	txRunner postgres.TxRunner,
	producer kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	now func() time.Time,
) Booking {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		guestSvc:   guestSvc,
		rateSvc:    rateSvc,
		paymentSvc: paymentSvc,
		visitorSvc: visitorSvc,
		txRunner:   txRunner,
		producer:   producer,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		now:        now,
	}
}

// scheduledCheckoutFor pins the stay's end to noon: check-in day plus the
// booked nights, at the fixed checkout hour in the property's timezone.
func scheduledCheckoutFor(checkIn time.Time, nights int) time.Time {
	return time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day()+nights, constant.CheckoutHour, 0, 0, 0, checkIn.Location())
}

func (s *serviceImpl) generateReference(ctx context.Context) (string, error) {
	for range referenceAttempts {
		ref := "BK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])

		exists, err := s.repo.Exist(ctx, shared.FilterByField(ref, model.FieldBookingReference, model.TableName))
		if err != nil {
			return "", fmt.Errorf("failed to check booking reference: %w", err)
		}

		if !exists {
			return ref, nil
		}
	}

	return "", failure.InternalError(fmt.Errorf("failed to generate unique booking reference after %d attempts", referenceAttempts)) //nolint:wrapcheck
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheRoomOccupancy)
	}()
}

func (s *serviceImpl) publish(ctx context.Context, event string, booking model.Booking, at time.Time) {
	go func() {
		c := context.WithoutCancel(ctx)

		msg := kafka.Message{
			Key: booking.ID,
			Value: lifecycleEvent{
				Event:            event,
				BookingID:        booking.ID,
				BookingReference: booking.BookingReference,
				RoomID:           booking.RoomID,
				Status:           booking.Status,
				OccurredAt:       at.Format(constant.DateFormat),
			},
		}

		if err := s.producer.SendMessages(c, s.cfg.Kafka.BookingTopic, msg); err != nil {
			log.Error().Err(err).Str("event", event).Str("bookingID", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

// CheckIn runs the whole walk-in flow as one transaction: resolve the guest,
// claim a room, price the stay, open the booking pre-paid in full and write
// the matching confirmed ledger entry.
func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var booking model.Booking

	err = s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		guest, err := s.guestSvc.FindOrCreateTx(ctx, tx, req.GuestName, req.GuestPhone, req.IDPhotoRef)
		if err != nil {
			return fmt.Errorf("failed to resolve guest: %w", err)
		}

		if guest.IsBlacklisted {
			return failure.Conflict("guest is blacklisted: " + guest.BlacklistReason) //nolint:wrapcheck
		}

		room, err := s.roomRepo.ClaimAvailableTx(ctx, tx, req.PreferredBedType)
		if err != nil {
			return fmt.Errorf("failed to claim room: %w", err)
		}

		if room.ID == "" {
			return failure.Conflict("no rooms available") //nolint:wrapcheck
		}

		quote, err := s.rateSvc.Quote(ctx, room.BedType, req.NumberOfNights)
		if err != nil {
			return fmt.Errorf("failed to quote stay: %w", err)
		}

		reference, err := s.generateReference(ctx)
		if err != nil {
			return err
		}

		now := s.now()
		booking = model.Booking{
			ID:                    uuid.NewString(),
			BookingReference:      reference,
			GuestID:               guest.ID,
			RoomID:                room.ID,
			GuestName:             req.GuestName,
			GuestPhone:            req.GuestPhone,
			IDPhotoRef:            req.IDPhotoRef,
			CheckInTime:           now,
			ScheduledCheckoutTime: scheduledCheckoutFor(now, req.NumberOfNights),
			NumberOfNights:        req.NumberOfNights,
			Status:                model.StatusActive,
			TotalAmount:           quote.TotalAmount,
			AmountPaid:            quote.TotalAmount,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		payer := req.PayerName
		if payer == "" {
			payer = req.GuestName
		}

		if _, err := s.paymentSvc.RecordConfirmedTx(ctx, tx, booking.ID, req.PaymentMethod, quote.TotalAmount, payer, req.Reference); err != nil {
			return fmt.Errorf("failed to record check-in payment: %w", err)
		}

		if err := s.guestSvc.IncrementStatsTx(ctx, tx, guest.ID, quote.TotalAmount, now); err != nil {
			return fmt.Errorf("failed to update guest stats: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("guestPhone", req.GuestPhone).Msg("failed to check in")

		return res, err
	}

	s.invalidate(ctx)
	s.publish(ctx, EventCheckedIn, booking, booking.CheckInTime)
	res.FromModel(booking)

	return res, nil
}

// Extend adds nights to an active booking. The extra charge is collected up
// front, so the charge and paid totals move together and the scheduled
// checkout shifts by whole days at noon.
func (s *serviceImpl) Extend(ctx context.Context, id string, req dto.ExtendRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Extend")
	defer scope.End()
	defer scope.TraceIfError(err)

	var booking model.Booking

	err = s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.repo.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == "" {
			return failure.NotFound("booking") //nolint:wrapcheck
		}

		if booking.Status != model.StatusActive {
			return failure.InvalidState("only active bookings can be extended") //nolint:wrapcheck
		}

		room, err := s.roomRepo.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}

		quote, err := s.rateSvc.Quote(ctx, room.BedType, req.AdditionalNights)
		if err != nil {
			return fmt.Errorf("failed to quote extension: %w", err)
		}

		user, _ := ctx.Value(constant.ContextKeyUserID).(string)
		newScheduled := booking.ScheduledCheckoutTime.AddDate(0, 0, req.AdditionalNights)

		affected, err := s.repo.AddNightsTx(ctx, tx, booking.ID, req.AdditionalNights, quote.TotalAmount, newScheduled, user)
		if err != nil {
			return fmt.Errorf("failed to extend booking: %w", err)
		}

		if affected == 0 {
			return failure.InvalidState("only active bookings can be extended") //nolint:wrapcheck
		}

		if _, err := s.paymentSvc.RecordConfirmedTx(ctx, tx, booking.ID, req.PaymentMethod, quote.TotalAmount, booking.GuestName, ""); err != nil {
			return fmt.Errorf("failed to record extension payment: %w", err)
		}

		booking.NumberOfNights += req.AdditionalNights
		booking.TotalAmount += quote.TotalAmount
		booking.AmountPaid += quote.TotalAmount
		booking.ScheduledCheckoutTime = newScheduled

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to extend booking")

		return res, err
	}

	s.invalidate(ctx)
	s.publish(ctx, EventExtended, booking, s.now())
	res.FromModel(booking)

	return res, nil
}

// Checkout closes a booking at the desk. Reception marks the departure as
// early when the guest leaves before the scheduled checkout; the room frees
// up and any open visitor passes close with the booking.
func (s *serviceImpl) Checkout(ctx context.Context, id string, req dto.CheckoutRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var booking model.Booking

	err = s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.repo.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == "" {
			return failure.NotFound("booking") //nolint:wrapcheck
		}

		if !booking.IsOpen() {
			return failure.InvalidState("booking is already closed") //nolint:wrapcheck
		}

		now := s.now()

		status := model.StatusCompleted
		if req.EarlyCheckout {
			status = model.StatusEarlyCheckout
		}

		mod := map[string]any{
			model.FieldStatus:        status,
			model.FieldCheckOutTime:  now,
			model.FieldKeyReturned:   req.KeyReturned,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if req.DamageNotes != "" {
			mod[model.FieldDamageNotes] = req.DamageNotes
		}

		affected, err := s.repo.UpdateTxCount(ctx, tx, mod, openBookingFilter(booking.ID))
		if err != nil {
			return fmt.Errorf("failed to close booking: %w", err)
		}

		if affected == 0 {
			return failure.InvalidState("booking is already closed") //nolint:wrapcheck
		}

		if err := s.freeRoomTx(ctx, tx, booking.RoomID, user, now); err != nil {
			return err
		}

		if err := s.visitorSvc.CloseAllForBookingTx(ctx, tx, booking.ID, now); err != nil {
			return fmt.Errorf("failed to close visitor passes: %w", err)
		}

		booking.Status = status
		booking.CheckOutTime = &now
		booking.KeyReturned = req.KeyReturned

		if req.DamageNotes != "" {
			booking.DamageNotes = req.DamageNotes
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to check out booking")

		return res, err
	}

	s.invalidate(ctx)
	s.publish(ctx, EventCheckedOut, booking, *booking.CheckOutTime)
	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) freeRoomTx(ctx context.Context, tx *sqlx.Tx, roomID, user string, at time.Time) error {
	mod := map[string]any{
		roomModel.FieldIsAvailable: true,
		constant.FieldModifiedAt:   at,
		constant.FieldModifiedBy:   user,
	}

	if err := s.roomRepo.UpdateTx(ctx, tx, mod, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)); err != nil {
		return fmt.Errorf("failed to free room: %w", err)
	}

	return nil
}

func openBookingFilter(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    []string{model.StatusActive, model.StatusPendingCheckout},
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

// RunMidnightSweep flips every active booking whose scheduled checkout falls
// on asOf's date to pending_checkout. One guarded UPDATE, so overlapping or
// repeated runs converge on the same state.
func (s *serviceImpl) RunMidnightSweep(ctx context.Context, asOf time.Time) (res dto.SweepResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.RunMidnightSweep")
	defer scope.End()
	defer scope.TraceIfError(err)

	var moved int64

	err = s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		filter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldStatus,
					Value:    model.StatusActive,
					Operator: gDto.FilterOperatorEq,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldScheduledCheckoutTime,
					Value:    asOf.Format(constant.DateOnlyFormat),
					Operator: gDto.FilterOperatorDateEq,
					Table:    model.TableName,
				},
			},
			Operator: gDto.FilterGroupOperatorAnd,
		}

		mod := map[string]any{
			model.FieldStatus:        model.StatusPendingCheckout,
			constant.FieldModifiedAt: asOf,
			constant.FieldModifiedBy: schedulerActor,
		}

		moved, err = s.repo.UpdateTxCount(ctx, tx, mod, filter)
		if err != nil {
			return fmt.Errorf("failed to mark bookings pending checkout: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Time("asOf", asOf).Msg("midnight sweep failed")

		return res, err
	}

	if moved > 0 {
		s.invalidate(ctx)
	}

	log.Info().Time("asOf", asOf).Int64("moved", moved).Msg("midnight sweep completed")

	return dto.SweepResponse{AsOf: asOf.Format(constant.DateFormat), Transitions: int(moved)}, nil
}

// RunNoonSweep force-closes bookings still pending_checkout strictly past
// their scheduled checkout. Each booking closes in its own transaction
// guarded on status, so a partial failure never blocks the rest and re-runs
// skip already-handled rows.
func (s *serviceImpl) RunNoonSweep(ctx context.Context, asOf time.Time) (res dto.SweepResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.RunNoonSweep")
	defer scope.End()
	defer scope.TraceIfError(err)

	overdueFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusPendingCheckout,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldScheduledCheckoutTime,
				Value:    asOf,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	overdue, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.TableName + "." + model.FieldScheduledCheckoutTime, SortDir: "ASC"}, overdueFilter)
	if err != nil {
		log.Error().Err(err).Time("asOf", asOf).Msg("failed to list overdue bookings")

		return res, fmt.Errorf("failed to list overdue bookings: %w", err)
	}

	closed := 0

	for _, booking := range overdue {
		var affected int64

		err := s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
			mod := map[string]any{
				model.FieldStatus:             model.StatusAutoCheckout,
				model.FieldCheckOutTime:       asOf,
				model.FieldAutoCheckoutTime:   asOf,
				model.FieldAutoCheckoutReason: constant.AutoCheckoutReason,
				constant.FieldModifiedAt:      asOf,
				constant.FieldModifiedBy:      schedulerActor,
			}

			filter := gDto.FilterGroup{
				Filters: []any{
					gDto.Filter{
						Field:    model.FieldID,
						Value:    booking.ID,
						Operator: gDto.FilterOperatorEq,
						Table:    model.TableName,
					},
					gDto.Filter{
						Field:    model.FieldStatus,
						ArgName:  "status_guard",
						Value:    model.StatusPendingCheckout,
						Operator: gDto.FilterOperatorEq,
						Table:    model.TableName,
					},
				},
				Operator: gDto.FilterGroupOperatorAnd,
			}

			affected, err = s.repo.UpdateTxCount(ctx, tx, mod, filter)
			if err != nil {
				return fmt.Errorf("failed to auto-checkout booking: %w", err)
			}

			if affected == 0 {
				return nil
			}

			if err := s.freeRoomTx(ctx, tx, booking.RoomID, schedulerActor, asOf); err != nil {
				return err
			}

			if err := s.visitorSvc.CloseAllForBookingTx(ctx, tx, booking.ID, asOf); err != nil {
				return fmt.Errorf("failed to close visitor passes: %w", err)
			}

			return nil
		})
		if err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("noon sweep skipped booking")

			continue
		}

		if affected > 0 {
			closed++
			booking.Status = model.StatusAutoCheckout
			s.publish(ctx, EventAutoCheckedOut, booking, asOf)
		}
	}

	if closed > 0 {
		s.invalidate(ctx)
	}

	log.Info().Time("asOf", asOf).Int("closed", closed).Msg("noon sweep completed")

	return dto.SweepResponse{AsOf: asOf.Format(constant.DateFormat), Transitions: closed}, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return res, failure.NotFound("booking") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetActive(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    []string{model.StatusActive, model.StatusPendingCheckout},
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}

	return s.GetAll(ctx, params, filter)
}
