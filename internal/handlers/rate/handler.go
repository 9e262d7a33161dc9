package rate

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/adokuru/affordaily-api/infras/otel"
	"github.com/adokuru/affordaily-api/internal/domains/rate/model/dto"
	"github.com/adokuru/affordaily-api/internal/domains/rate/service"
	"github.com/adokuru/affordaily-api/shared/constant"
	"github.com/adokuru/affordaily-api/shared/failure"
	"github.com/adokuru/affordaily-api/shared/validator"
	"github.com/adokuru/affordaily-api/transport/http/response"
)

type Handler struct {
	service service.Rate
	otel    otel.Otel
}

func New(service service.Rate, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rates", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRates)
		routerGroup.Put("/", handler.UpdateRates)
		routerGroup.Get("/quote", handler.Quote)
	})
}

// GetRates returns the active rate per bed type.
// @Summary Get active rates
// @Description Retrieve the currently active nightly rate for each bed type.
// @Tags Rate
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetRatesResponse] "Active rates"
// @Failure 500 {object} response.Error
// @Router /v1/rates [get]
func (handler *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRates")
	defer scope.End()

	rates, err := handler.service.GetActive(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rates retrieved successfully")

	response.WithJSON(w, http.StatusOK, rates)
}

// UpdateRates replaces the active rate set.
// @Summary Update nightly rates
// @Description Deactivate the current rates and activate the submitted set. Open bookings keep their locked-in price.
// @Tags Rate
// @Accept json
// @Produce json
// @Param request body dto.UpdateRatesRequest true "Update Rates Request"
// @Success 200 {object} response.Message "Rates updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rates [put]
// @Security BearerAuth
func (handler *Handler) UpdateRates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRates")
	defer scope.End()

	req := dto.UpdateRatesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateRates(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update rates")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rates updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Rates updated successfully")
}

// Quote prices a stay without creating anything.
// @Summary Quote a stay
// @Description Calculate the total for a bed type and number of nights at the active rate.
// @Tags Rate
// @Accept json
// @Produce json
// @Param bed_type query string true "Bed type (A or B)"
// @Param nights query integer true "Number of nights"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Stay quote"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rates/quote [get]
func (handler *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	bedType := r.URL.Query().Get("bed_type")

	nights, err := strconv.Atoi(r.URL.Query().Get("nights"))
	if err != nil {
		err = failure.BadRequestFromString("nights must be an integer")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	quote, err := handler.service.Quote(ctx, bedType, nights)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote stay")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stay quoted successfully")

	response.WithJSON(w, http.StatusOK, quote)
}
