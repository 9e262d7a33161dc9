package sweep

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/adokuru/affordaily-api/infras/otel"
	"github.com/adokuru/affordaily-api/internal/domains/booking/service"
	"github.com/adokuru/affordaily-api/shared/constant"
	"github.com/adokuru/affordaily-api/shared/failure"
	"github.com/adokuru/affordaily-api/shared/timezone"
	"github.com/adokuru/affordaily-api/transport/http/response"
)

// Handler exposes the lifecycle sweeps as internal endpoints so an external
// cron can drive them when the in-process scheduler is disabled.
type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/internal/sweeps", func(routerGroup chi.Router) {
		routerGroup.Post("/midnight", handler.RunMidnightSweep)
		routerGroup.Post("/noon", handler.RunNoonSweep)
	})
}

// asOfOrNow reads the optional as_of query parameter. A late-running cron can
// replay a sweep for the intended moment instead of the current one.
func asOfOrNow(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return timezone.Now(), nil
	}

	asOf, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("as_of must be an RFC3339 timestamp")
	}

	return timezone.ToAppTime(asOf), nil
}

// RunMidnightSweep triggers the pending-checkout transition.
// @Summary Run the midnight sweep
// @Description Move active bookings whose scheduled checkout falls today to pending checkout.
// @Tags Sweep
// @Accept json
// @Produce json
// @Param as_of query string false "Sweep moment as RFC3339, defaults to now"
// @Success 200 {object} response.Data[dto.SweepResponse] "Sweep result"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/internal/sweeps/midnight [post]
// @Security ApiKeyAuth
func (handler *Handler) RunMidnightSweep(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunMidnightSweep")
	defer scope.End()

	asOf, err := asOfOrNow(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	result, err := handler.service.RunMidnightSweep(ctx, asOf)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to run midnight sweep")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Midnight sweep completed")

	response.WithJSON(w, http.StatusOK, result)
}

// RunNoonSweep triggers the auto-checkout transition.
// @Summary Run the noon sweep
// @Description Force-close pending checkout bookings past their scheduled checkout.
// @Tags Sweep
// @Accept json
// @Produce json
// @Param as_of query string false "Sweep moment as RFC3339, defaults to now"
// @Success 200 {object} response.Data[dto.SweepResponse] "Sweep result"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/internal/sweeps/noon [post]
// @Security ApiKeyAuth
func (handler *Handler) RunNoonSweep(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunNoonSweep")
	defer scope.End()

	asOf, err := asOfOrNow(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	result, err := handler.service.RunNoonSweep(ctx, asOf)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to run noon sweep")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Noon sweep completed")

	response.WithJSON(w, http.StatusOK, result)
}
