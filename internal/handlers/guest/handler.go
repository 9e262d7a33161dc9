package guest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/adokuru/affordaily-api/infras/otel"
	"github.com/adokuru/affordaily-api/internal/domains/guest/service"
	"github.com/adokuru/affordaily-api/shared/constant"
	"github.com/adokuru/affordaily-api/shared/failure"
	"github.com/adokuru/affordaily-api/transport/http/response"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Get("/search", handler.Search)
	})
}

// Search looks up a guest record by phone number.
// @Summary Search guests by phone
// @Description Look up the registry record, stay history and blacklist status for a phone number.
// @Tags Guest
// @Accept json
// @Produce json
// @Param phone query string true "Guest phone number"
// @Success 200 {object} response.Data[dto.GuestResponse] "Guest record"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/search [get]
// @Security BearerAuth
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	phone := r.URL.Query().Get("phone")
	if phone == "" {
		err := failure.BadRequestFromString("phone is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	guest, err := handler.service.GetByPhone(ctx, phone)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest retrieved successfully")

	response.WithJSON(w, http.StatusOK, guest)
}
