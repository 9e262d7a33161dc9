package visitorpass

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/adokuru/affordaily-api/infras/otel"
	"github.com/adokuru/affordaily-api/internal/domains/visitorpass/model/dto"
	"github.com/adokuru/affordaily-api/internal/domains/visitorpass/service"
	"github.com/adokuru/affordaily-api/shared/constant"
	"github.com/adokuru/affordaily-api/shared/failure"
	"github.com/adokuru/affordaily-api/shared/validator"
	"github.com/adokuru/affordaily-api/transport/http/response"
)

type Handler struct {
	service service.VisitorPass
	otel    otel.Otel
}

func New(service service.VisitorPass, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/visitor-passes", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.IssuePass)
		routerGroup.Get("/active", handler.GetActivePasses)
		routerGroup.Post("/{id}/checkout", handler.CheckoutPass)
	})
}

// IssuePass issues a visitor pass against an active booking.
// @Summary Issue a visitor pass
// @Description Issue a pass for a visitor to an active booking. The visitor is registered as a guest by phone.
// @Tags VisitorPass
// @Accept json
// @Produce json
// @Param request body dto.IssueVisitorPassRequest true "Issue Visitor Pass Request"
// @Success 201 {object} response.Data[dto.VisitorPassResponse] "Visitor pass issued"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visitor-passes [post]
// @Security BearerAuth
func (handler *Handler) IssuePass(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IssuePass")
	defer scope.End()

	req := dto.IssueVisitorPassRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	pass, err := handler.service.Issue(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to issue visitor pass")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Visitor pass issued successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, pass)
}

// GetActivePasses lists the active passes of a booking.
// @Summary Get active visitor passes
// @Description Retrieve the active visitor passes for a booking.
// @Tags VisitorPass
// @Accept json
// @Produce json
// @Param booking_id query string true "Booking ID"
// @Success 200 {object} response.Data[dto.GetVisitorPassesResponse] "List of active passes"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visitor-passes/active [get]
func (handler *Handler) GetActivePasses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivePasses")
	defer scope.End()

	bookingID := r.URL.Query().Get("booking_id")
	if bookingID == "" {
		err := failure.BadRequestFromString("booking_id is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	passes, err := handler.service.GetActiveByBooking(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get visitor passes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Visitor passes retrieved successfully")

	response.WithJSON(w, http.StatusOK, passes)
}

// CheckoutPass closes a visitor pass.
// @Summary Check out a visitor
// @Description Close an active visitor pass.
// @Tags VisitorPass
// @Accept json
// @Produce json
// @Param id path string true "Visitor Pass ID"
// @Success 200 {object} response.Message "Visitor checked out successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visitor-passes/{id}/checkout [post]
// @Security BearerAuth
func (handler *Handler) CheckoutPass(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckoutPass")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Checkout(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out visitor")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Visitor checked out successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Visitor checked out successfully")
}
