//go:build wireinject
// +build wireinject

package di

import (
	"time"

	"github.com/google/wire"

	"github.com/adokuru/affordaily-api/config"
	"github.com/adokuru/affordaily-api/infras/jwt"
	"github.com/adokuru/affordaily-api/infras/kafka"
	"github.com/adokuru/affordaily-api/infras/otel"
	"github.com/adokuru/affordaily-api/infras/postgres"
	"github.com/adokuru/affordaily-api/infras/redis"
	"github.com/adokuru/affordaily-api/permissions"
	"github.com/adokuru/affordaily-api/shared/cache"
	"github.com/adokuru/affordaily-api/shared/timezone"
	"github.com/adokuru/affordaily-api/transport/http"
	"github.com/adokuru/affordaily-api/transport/http/middleware"
	"github.com/adokuru/affordaily-api/transport/http/router"
	"github.com/adokuru/affordaily-api/transport/scheduler"

	bookingRepository "github.com/adokuru/affordaily-api/internal/domains/booking/repository"
	bookingService "github.com/adokuru/affordaily-api/internal/domains/booking/service"
	guestRepository "github.com/adokuru/affordaily-api/internal/domains/guest/repository"
	guestService "github.com/adokuru/affordaily-api/internal/domains/guest/service"
	paymentRepository "github.com/adokuru/affordaily-api/internal/domains/payment/repository"
	paymentService "github.com/adokuru/affordaily-api/internal/domains/payment/service"
	rateRepository "github.com/adokuru/affordaily-api/internal/domains/rate/repository"
	rateService "github.com/adokuru/affordaily-api/internal/domains/rate/service"
	roomRepository "github.com/adokuru/affordaily-api/internal/domains/room/repository"
	roomService "github.com/adokuru/affordaily-api/internal/domains/room/service"
	visitorPassRepository "github.com/adokuru/affordaily-api/internal/domains/visitorpass/repository"
	visitorPassService "github.com/adokuru/affordaily-api/internal/domains/visitorpass/service"

	bookingHandler "github.com/adokuru/affordaily-api/internal/handlers/booking"
	guestHandler "github.com/adokuru/affordaily-api/internal/handlers/guest"
	paymentHandler "github.com/adokuru/affordaily-api/internal/handlers/payment"
	rateHandler "github.com/adokuru/affordaily-api/internal/handlers/rate"
	roomHandler "github.com/adokuru/affordaily-api/internal/handlers/room"
	sweepHandler "github.com/adokuru/affordaily-api/internal/handlers/sweep"
	visitorPassHandler "github.com/adokuru/affordaily-api/internal/handlers/visitorpass"
)

// App bundles the two long-running transports built from one object graph.
type App struct {
	HTTP      *http.HTTP
	Scheduler *scheduler.Scheduler
}

func provideNow() func() time.Time {
	return timezone.Now
}

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.TxRunner), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	provideNow,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var rateDomain = wire.NewSet(
	rateRepository.New,
	rateService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var visitorPassDomain = wire.NewSet(
	visitorPassRepository.New,
	visitorPassService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	rateDomain,
	guestDomain,
	paymentDomain,
	visitorPassDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	rateHandler.New,
	guestHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	visitorPassHandler.New,
	sweepHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		scheduler.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
