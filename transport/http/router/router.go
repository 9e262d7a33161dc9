package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/adokuru/affordaily-api/internal/handlers/booking"
	"github.com/adokuru/affordaily-api/internal/handlers/guest"
	"github.com/adokuru/affordaily-api/internal/handlers/payment"
	"github.com/adokuru/affordaily-api/internal/handlers/rate"
	"github.com/adokuru/affordaily-api/internal/handlers/room"
	"github.com/adokuru/affordaily-api/internal/handlers/sweep"
	"github.com/adokuru/affordaily-api/internal/handlers/visitorpass"
	"github.com/adokuru/affordaily-api/transport/http/middleware"
)

type DomainHandlers struct {
	Room        room.Handler
	Rate        rate.Handler
	Guest       guest.Handler
	Booking     booking.Handler
	Payment     payment.Handler
	VisitorPass visitorpass.Handler
	Sweep       sweep.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Rate.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.VisitorPass.Router(routerGroup)

		routerGroup.Group(func(internalGroup chi.Router) {
			internalGroup.Use(r.AuthRole.Internal)
			r.DomainHandlers.Sweep.Router(internalGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
